package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/minitwitter-cli/internal/fakeapi"
)

const (
	defaultDevServerAddr = "127.0.0.1:3000"
	demoPassword         = "secret1"
	shutdownTimeout      = 5 * time.Second
)

func newDevServerCmd(p *appProvider) *cobra.Command {
	var addr string
	var seed bool
	var tokenTTL time.Duration

	cmd := &cobra.Command{
		Use:   "dev-server",
		Short: "Run an in-memory MiniTwitter API for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := p.get(cmd)
			if err != nil {
				return err
			}

			srv := fakeapi.New(fakeapi.Config{TokenTTL: tokenTTL, Logger: a.logger.Named("dev-server")})
			if seed {
				if err := seedDemoData(srv, time.Now()); err != nil {
					return fmt.Errorf("seed demo data: %w", err)
				}
			}

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Serving MiniTwitter API on http://%s/api\n", listener.Addr())
			if seed {
				fmt.Fprintf(out, "Demo accounts: ana@example.com, bruno@example.com (password %s)\n", demoPassword)
			}

			return serveUntilDone(cmd.Context(), &http.Server{
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}, listener, a.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultDevServerAddr, "listen address")
	cmd.Flags().BoolVar(&seed, "seed", false, "create demo users and posts")
	cmd.Flags().DurationVar(&tokenTTL, "token-ttl", fakeapi.DefaultTokenTTL, "lifetime of issued tokens")

	return cmd
}

// serveUntilDone serves until ctx is cancelled, then shuts the server down.
func serveUntilDone(ctx context.Context, server *http.Server, listener net.Listener, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down dev server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown dev server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func seedDemoData(srv *fakeapi.Server, now time.Time) error {
	anaID, _, err := srv.SeedUser("ana", "ana@example.com", demoPassword)
	if err != nil {
		return err
	}
	brunoID, _, err := srv.SeedUser("bruno", "bruno@example.com", demoPassword)
	if err != nil {
		return err
	}

	posts := []struct {
		author  string
		content string
		age     time.Duration
	}{
		{author: anaID, content: "Hello, MiniTwitter!", age: 2 * time.Hour},
		{author: brunoID, content: "First post from the terminal.", age: time.Hour},
		{author: anaID, content: "Posts are capped at 280 characters.", age: 10 * time.Minute},
	}
	for _, p := range posts {
		if _, err := srv.SeedPost(p.author, p.content, now.Add(-p.age)); err != nil {
			return err
		}
	}

	return nil
}
