package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/minitwitter-cli/internal/domain"
)

func newFeedCmd(p *appProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Show every post, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, p, actionOptions{label: "Loading feed"}, func(ctx context.Context, a *app) error {
				return a.orchestrator.Navigate(ctx, domain.ViewFeed)
			})
		},
	}
}

func newPostCmd(p *appProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "post <content...>",
		Short: fmt.Sprintf("Publish a post of up to %d characters", domain.MaxPostLength),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")
			return runAction(cmd, p, actionOptions{label: "Publishing post"}, func(ctx context.Context, a *app) error {
				a.orchestrator.SetComposeContent(content)
				return a.orchestrator.CreatePost(ctx)
			})
		},
	}
}

func newDeleteCmd(p *appProvider) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.PostID(strings.TrimSpace(args[0]))
			return runAction(cmd, p, actionOptions{label: "Deleting post", interactive: !yes}, func(ctx context.Context, a *app) error {
				a.confirmer.assumeYes = yes
				deleted, err := a.orchestrator.DeletePost(ctx, id)
				if err != nil {
					return err
				}
				if !deleted {
					a.logger.Info("delete declined")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
