package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/minitwitter-cli/internal/domain"
)

func newLoginCmd(p *appProvider) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and show the feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				a, err := p.get(cmd)
				if err != nil {
					return err
				}
				password, err = a.readSecret("Password", cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			return runAction(cmd, p, actionOptions{label: "Signing in"}, func(ctx context.Context, a *app) error {
				return a.orchestrator.Login(ctx, domain.Credentials{Email: email, Password: password})
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRegisterCmd(p *appProvider) *cobra.Command {
	var username string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				a, err := p.get(cmd)
				if err != nil {
					return err
				}
				password, err = a.readSecret("Password", cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			return runAction(cmd, p, actionOptions{label: "Creating account"}, func(ctx context.Context, a *app) error {
				if err := a.orchestrator.Navigate(ctx, domain.ViewRegister); err != nil {
					return err
				}
				return a.orchestrator.Register(ctx, domain.Registration{
					Username: username,
					Email:    email,
					Password: password,
				})
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "public username")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", fmt.Sprintf("password, at least %d characters (prompted when omitted)", domain.MinPasswordLength))
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(p *appProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, p, actionOptions{label: "Signing out"}, func(ctx context.Context, a *app) error {
				return a.orchestrator.Logout(ctx)
			})
		},
	}
}
