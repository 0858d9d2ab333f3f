package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	configtoml "github.com/bnema/minitwitter-cli/internal/adapters/config/toml"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd, closeApp := newRootCmd()
	defer closeApp()

	return rootCmd.ExecuteContext(ctx)
}

type rootOptions struct {
	configPath string
	apiURL     string
	logLevel   string
	jsonOutput bool
}

// appProvider wires the application on first use so that persistent flags
// are parsed before configuration is resolved.
type appProvider struct {
	opts *rootOptions
	app  *app
}

func (p *appProvider) get(cmd *cobra.Command) (*app, error) {
	if p.app != nil {
		return p.app, nil
	}

	a, err := wireApp(p.wireOptions(cmd))
	if err != nil {
		return nil, err
	}
	p.app = a

	return a, nil
}

// configRepo opens the config file even when its current contents do not
// load, so that `config set` can repair them.
func (p *appProvider) configRepo(cmd *cobra.Command) (*configtoml.Repository, error) {
	if p.app != nil {
		return p.app.configRepo, nil
	}

	return openConfig(p.wireOptions(cmd))
}

func (p *appProvider) wireOptions(cmd *cobra.Command) wireOptions {
	return wireOptions{
		ConfigPath: p.opts.configPath,
		Flags:      cmd.Flags(),
		Stdin:      cmd.InOrStdin(),
		Stderr:     cmd.ErrOrStderr(),
	}
}

func (p *appProvider) close() {
	if p.app != nil {
		p.app.close()
		p.app = nil
	}
}

// newRootCmd returns the command tree and a func that releases the wired
// app. The release runs whether or not the command failed.
func newRootCmd() (*cobra.Command, func()) {
	opts := &rootOptions{}
	provider := &appProvider{opts: opts}

	rootCmd := &cobra.Command{
		Use:           "mt",
		Short:         "MiniTwitter CLI (mt): read and write short posts from the terminal",
		Long:          "mt is a terminal client for a MiniTwitter server. It keeps your session token between runs, shows the shared feed and your profile, and lets you publish and delete posts of up to 280 characters.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.minitwitter/config.toml)")
	flags.StringVar(&opts.apiURL, "api-url", "", "API base URL, including the /api prefix")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print the resulting screen as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(provider),
		newRegisterCmd(provider),
		newLogoutCmd(provider),
		newFeedCmd(provider),
		newPostCmd(provider),
		newDeleteCmd(provider),
		newProfileCmd(provider),
		newShellCmd(provider),
		newConfigCmd(provider),
		newDevServerCmd(provider),
	)

	return rootCmd, provider.close
}
