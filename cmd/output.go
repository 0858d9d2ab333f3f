package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	screenadapter "github.com/bnema/minitwitter-cli/internal/adapters/render/screen"
	"github.com/bnema/minitwitter-cli/internal/application"
	"github.com/bnema/minitwitter-cli/internal/domain"
)

func (a *app) writeScreen(w io.Writer, asJSON bool) error {
	screen := a.orchestrator.Snapshot()

	if asJSON {
		encoded, err := json.MarshalIndent(screenOutput{ActiveView: screen.ActiveView(), Screen: screen}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode screen: %w", err)
		}
		_, err = fmt.Fprintln(w, string(encoded))
		return err
	}

	rendered, err := a.screenRender(screen, screenadapter.RenderOptions{ShowIDs: true, Width: terminalWidth(w)})
	if err != nil {
		return fmt.Errorf("render screen: %w", err)
	}
	_, err = fmt.Fprintln(w, rendered)

	return err
}

type screenOutput struct {
	ActiveView domain.View
	Screen     application.Screen
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}

	return width
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// userError keeps only the text meant for the user. A superseded request is
// not a failure.
func userError(err error) error {
	if err == nil || errors.Is(err, application.ErrSuperseded) {
		return nil
	}

	return errors.New(domain.Message(err))
}
