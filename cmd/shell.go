package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/minitwitter-cli/internal/domain"
	"github.com/bnema/minitwitter-cli/internal/presentation"
)

const (
	anonymousHelp = "Available commands: login, register, help, exit"
	signedInHelp  = "Available commands: feed, profile, post <text>, count <text>, delete <id>, edit, cancel, logout, help, exit"
)

func newShellCmd(p *appProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := p.get(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a.restoreSession(ctx)

			sh := &shell{app: a, out: cmd.OutOrStdout(), prompts: cmd.ErrOrStderr(), json: p.opts.jsonOutput}
			if err := sh.printScreen(); err != nil {
				return err
			}

			return sh.run(ctx)
		},
	}
}

type shell struct {
	app     *app
	out     io.Writer
	prompts io.Writer
	json    bool
}

// run reads one command per line until EOF, exit or quit. Command errors are
// printed and the loop continues.
func (s *shell) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(s.prompts, s.prompt()+" ")
		line, err := scanLine(s.app.stdin)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		name, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		if name == "" {
			continue
		}

		quit, err := s.dispatch(ctx, name, rest)
		if quit {
			fmt.Fprintln(s.out, "Bye!")
			return nil
		}
		if err := s.report(err); err != nil {
			return err
		}
	}
}

func (s *shell) prompt() string {
	if session, ok := s.app.orchestrator.Session(); ok {
		return fmt.Sprintf("mt @%s>", session.User.Username)
	}

	return "mt (anonymous)>"
}

func (s *shell) dispatch(ctx context.Context, name, rest string) (bool, error) {
	o := s.app.orchestrator

	switch name {
	case "help":
		if o.Snapshot().SignedIn() {
			fmt.Fprintln(s.out, signedInHelp)
		} else {
			fmt.Fprintln(s.out, anonymousHelp)
		}
		return false, errNoScreen
	case "login":
		return false, s.login(ctx)
	case "register":
		return false, s.register(ctx)
	case "feed":
		return false, o.Navigate(ctx, domain.ViewFeed)
	case "profile":
		return false, o.Navigate(ctx, domain.ViewProfile)
	case "post":
		if rest != "" {
			o.SetComposeContent(rest)
		}
		return false, o.CreatePost(ctx)
	case "count":
		o.SetComposeContent(rest)
		counter := o.Snapshot().Compose.Counter
		fmt.Fprintln(s.out, counterLine(counter))
		return false, errNoScreen
	case "delete":
		if rest == "" {
			return false, errors.New("usage: delete <post-id>")
		}
		_, err := o.DeletePost(ctx, domain.PostID(rest))
		return false, err
	case "edit":
		return false, s.editProfile(ctx)
	case "cancel":
		o.CancelEditProfile()
		return false, nil
	case "logout":
		return false, o.Logout(ctx)
	case "exit", "quit":
		return true, nil
	default:
		fmt.Fprintln(s.out, "Unknown command:", name)
		return false, errNoScreen
	}
}

// errNoScreen marks commands that print their own output.
var errNoScreen = errors.New("no screen")

func (s *shell) report(err error) error {
	if errors.Is(err, errNoScreen) {
		return nil
	}
	if err := s.printScreen(); err != nil {
		return err
	}
	if msg := userError(err); msg != nil {
		fmt.Fprintln(s.out, "error:", msg)
	}

	return nil
}

func (s *shell) printScreen() error {
	if err := s.app.writeScreen(s.out, s.json); err != nil {
		return err
	}
	s.app.orchestrator.DismissNotice()

	return nil
}

func (s *shell) login(ctx context.Context) error {
	o := s.app.orchestrator
	if err := o.Navigate(ctx, domain.ViewLogin); err != nil {
		return err
	}

	email, err := readLine(s.app.stdin, "Email", s.prompts)
	if err != nil {
		return err
	}
	password, err := s.app.readSecret("Password", s.prompts)
	if err != nil {
		return err
	}

	return o.Login(ctx, domain.Credentials{Email: email, Password: password})
}

func (s *shell) register(ctx context.Context) error {
	o := s.app.orchestrator
	if err := o.Navigate(ctx, domain.ViewRegister); err != nil {
		return err
	}

	username, err := readLine(s.app.stdin, "Username", s.prompts)
	if err != nil {
		return err
	}
	email, err := readLine(s.app.stdin, "Email", s.prompts)
	if err != nil {
		return err
	}
	password, err := s.app.readSecret("Password", s.prompts)
	if err != nil {
		return err
	}

	return o.Register(ctx, domain.Registration{Username: username, Email: email, Password: password})
}

// editProfile prompts for each field with the current value as default.
func (s *shell) editProfile(ctx context.Context) error {
	o := s.app.orchestrator
	if o.Snapshot().ActiveView() != domain.ViewProfile {
		if err := o.Navigate(ctx, domain.ViewProfile); err != nil {
			return err
		}
	}
	if err := o.BeginEditProfile(); err != nil {
		return err
	}

	form := o.Snapshot().Edit
	username, err := readLine(s.app.stdin, fmt.Sprintf("Username [%s]", form.Username), s.prompts)
	if err != nil {
		return err
	}
	email, err := readLine(s.app.stdin, fmt.Sprintf("Email [%s]", form.Email), s.prompts)
	if err != nil {
		return err
	}

	return submitProfileEdit(ctx, s.app, username, email)
}

func counterLine(c presentation.Counter) string {
	if c.AtLimit {
		return c.Text + " (limit reached)"
	}

	return c.Text
}
