package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/minitwitter-cli/internal/domain"
)

func newProfileCmd(p *appProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile and your posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, p, actionOptions{label: "Loading profile"}, func(ctx context.Context, a *app) error {
				return a.orchestrator.Navigate(ctx, domain.ViewProfile)
			})
		},
	}

	cmd.AddCommand(newProfileEditCmd(p))

	return cmd
}

func newProfileEditCmd(p *appProvider) *cobra.Command {
	var username string
	var email string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change your username or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, p, actionOptions{label: "Saving profile"}, func(ctx context.Context, a *app) error {
				if err := a.orchestrator.Navigate(ctx, domain.ViewProfile); err != nil {
					return err
				}
				return submitProfileEdit(ctx, a, username, email)
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "new username (unchanged when omitted)")
	cmd.Flags().StringVar(&email, "email", "", "new email (unchanged when omitted)")
	cmd.MarkFlagsOneRequired("username", "email")

	return cmd
}

// submitProfileEdit opens the edit form prefilled from the session and
// submits it with the non-empty overrides applied.
func submitProfileEdit(ctx context.Context, a *app, username, email string) error {
	if err := a.orchestrator.BeginEditProfile(); err != nil {
		return err
	}

	form := a.orchestrator.Snapshot().Edit
	update := domain.ProfileUpdate{Username: form.Username, Email: form.Email}
	if username != "" {
		update.Username = username
	}
	if email != "" {
		update.Email = email
	}

	return a.orchestrator.SubmitProfile(ctx, update)
}
