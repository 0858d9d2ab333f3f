package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/minitwitter-cli/internal/application"
)

const restoringLabel = "Restoring session"

type actionOptions struct {
	// label names the action on the progress line.
	label string
	// interactive actions read stdin and must not run under the progress line.
	interactive bool
}

// runAction restores the stored session, runs action, prints the resulting
// screen and then reports the action's error.
func runAction(cmd *cobra.Command, p *appProvider, opts actionOptions, action func(context.Context, *app) error) error {
	a, err := p.get(cmd)
	if err != nil {
		return err
	}

	steps := []step{
		{label: restoringLabel, run: func(ctx context.Context) error {
			a.restoreSession(ctx)
			return nil
		}},
		{label: opts.label, run: func(ctx context.Context) error {
			return action(ctx, a)
		}},
	}

	var actionErr error
	if !opts.interactive && !p.opts.jsonOutput && isTerminal(cmd.ErrOrStderr()) {
		actionErr = runSteps(cmd.Context(), cmd.ErrOrStderr(), steps)
	} else {
		actionErr = runStepsPlain(cmd.Context(), steps)
	}

	if err := a.writeScreen(cmd.OutOrStdout(), p.opts.jsonOutput); err != nil {
		return err
	}

	return userError(actionErr)
}

// restoreSession runs Startup. A stored session that cannot be restored is
// logged and leaves the Login view active.
func (a *app) restoreSession(ctx context.Context) {
	if err := a.orchestrator.Startup(ctx); err != nil {
		if !errors.Is(err, application.ErrSuperseded) {
			a.logger.Warn("restore session", zap.Error(err))
		}
		return
	}

	if session, ok := a.orchestrator.Session(); ok {
		a.logger.Debug("session restored",
			zap.String("username", session.User.Username),
			zap.String("subject", a.inspector.Subject(session.Token)),
		)
	}
}
