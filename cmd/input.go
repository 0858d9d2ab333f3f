package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a seam over term.ReadPassword for tests.
var readPassword = term.ReadPassword

// readLine prints prompt to w and reads one trimmed line. A final line
// without a newline is still returned.
func readLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}

	return scanLine(reader)
}

func scanLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// readSecret reads a password without echo when stdin is a terminal and
// falls back to a plain line otherwise.
func (a *app) readSecret(prompt string, w io.Writer) (string, error) {
	if file, ok := a.stdinRaw.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if _, err := fmt.Fprint(w, prompt+": "); err != nil {
			return "", err
		}
		secret, err := readPassword(int(file.Fd()))
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}

	line, err := a.stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

type promptConfirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func (c *promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	answer, err := readLine(c.in, prompt+" [y/N]", c.out)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
