package cmd

import (
	"bufio"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bnema/minitwitter-cli/internal/adapters/api/rest"
	configtoml "github.com/bnema/minitwitter-cli/internal/adapters/config/toml"
	screenadapter "github.com/bnema/minitwitter-cli/internal/adapters/render/screen"
	"github.com/bnema/minitwitter-cli/internal/adapters/tokenclaims"
	chainstore "github.com/bnema/minitwitter-cli/internal/adapters/tokenstore/chain"
	filestore "github.com/bnema/minitwitter-cli/internal/adapters/tokenstore/file"
	passstore "github.com/bnema/minitwitter-cli/internal/adapters/tokenstore/pass"
	"github.com/bnema/minitwitter-cli/internal/application"
	"github.com/bnema/minitwitter-cli/internal/logging"
	"github.com/bnema/minitwitter-cli/internal/ports"
	"github.com/bnema/minitwitter-cli/internal/presentation"
	"github.com/bnema/minitwitter-cli/internal/version"
)

type app struct {
	orchestrator *application.Orchestrator
	configRepo   *configtoml.Repository
	config       configtoml.Config
	logger       *zap.Logger
	confirmer    *promptConfirmer
	inspector    *tokenclaims.Inspector
	stdin        *bufio.Reader
	stdinRaw     io.Reader
	screenRender func(application.Screen, screenadapter.RenderOptions) (string, error)
}

type wireOptions struct {
	ConfigPath string
	Flags      *pflag.FlagSet
	Stdin      io.Reader
	Stderr     io.Writer
}

// flagKeys maps persistent flags onto config keys so that an explicit flag
// wins over the environment and the config file.
var flagKeys = map[string]string{
	"api-url":   configtoml.KeyAPIBaseURL,
	"log-level": configtoml.KeyLogLevel,
}

// openConfig binds the persistent flags and opens the config file without
// validating its contents.
func openConfig(opts wireOptions) (*configtoml.Repository, error) {
	v := viper.New()
	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	repo, err := configtoml.NewRepository(v, opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("wire config repository: %w", err)
	}

	return repo, nil
}

func wireApp(opts wireOptions) (*app, error) {
	repo, err := openConfig(opts)
	if err != nil {
		return nil, err
	}

	config, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(config.LogLevel, config.LogFormat, opts.Stderr)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	tokens, err := newTokenStore(config)
	if err != nil {
		return nil, fmt.Errorf("wire token store: %w", err)
	}

	client := rest.Client{
		BaseURL:        config.APIBaseURL,
		HTTPClient:     &http.Client{},
		RequestTimeout: config.APITimeout,
		UserAgent:      version.UserAgent(),
		Logger:         logger.Named("api"),
	}

	stdin := bufio.NewReader(opts.Stdin)
	confirmer := &promptConfirmer{in: stdin, out: opts.Stderr}
	inspector := tokenclaims.NewInspector()
	format := presentation.DefaultFormat()
	format.Layout = config.TimeLayout

	orchestrator := application.NewOrchestrator(client, tokens, application.Options{
		Confirmer: confirmer,
		Clock:     ports.SystemClock{},
		Inspector: inspector,
		Logger:    logger.Named("session"),
		Format:    format,
	})

	return &app{
		orchestrator: orchestrator,
		configRepo:   repo,
		config:       config,
		logger:       logger,
		confirmer:    confirmer,
		inspector:    inspector,
		stdin:        stdin,
		stdinRaw:     opts.Stdin,
		screenRender: screenadapter.Render,
	}, nil
}

func newTokenStore(config configtoml.Config) (ports.TokenStore, error) {
	switch config.TokenBackend {
	case configtoml.BackendPass:
		return passstore.NewStore(config.TokenPassEntry), nil
	case configtoml.BackendChain:
		return chainstore.NewPassFirstWithFileFallback(config.TokenPassEntry, config.TokenDir, config.TokenKey)
	default:
		return filestore.NewStore(config.TokenDir, config.TokenKey)
	}
}

func (a *app) close() {
	// Sync on a terminal stderr reports EINVAL; nothing useful to do with it.
	_ = a.logger.Sync()
}
