package toml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	filestore "github.com/bnema/minitwitter-cli/internal/adapters/tokenstore/file"
)

const (
	configType      = "toml"
	configDir       = ".minitwitter"
	configFile      = "config.toml"
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
	envPrefix       = "MT"
)

const (
	KeyAPIBaseURL     = "api.base_url"
	KeyAPITimeout     = "api.timeout"
	KeyTokenBackend   = "token.backend"
	KeyTokenKey       = "token.key"
	KeyTokenDir       = "token.dir"
	KeyTokenPassEntry = "token.pass_entry"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyTimeLayout     = "display.time_layout"
)

const (
	BackendFile  = "file"
	BackendPass  = "pass"
	BackendChain = "chain"
)

var ErrUnknownKey = errors.New("unknown config key")

type Config struct {
	APIBaseURL     string
	APITimeout     time.Duration
	TokenBackend   string
	TokenKey       string
	TokenDir       string
	TokenPassEntry string
	LogLevel       string
	LogFormat      string
	TimeLayout     string
}

type Entry struct {
	Key   string
	Value string
}

// Entries lists the effective settings in a stable order.
func (c Config) Entries() []Entry {
	return []Entry{
		{Key: KeyAPIBaseURL, Value: c.APIBaseURL},
		{Key: KeyAPITimeout, Value: c.APITimeout.String()},
		{Key: KeyTokenBackend, Value: c.TokenBackend},
		{Key: KeyTokenKey, Value: c.TokenKey},
		{Key: KeyTokenDir, Value: c.TokenDir},
		{Key: KeyTokenPassEntry, Value: c.TokenPassEntry},
		{Key: KeyLogLevel, Value: c.LogLevel},
		{Key: KeyLogFormat, Value: c.LogFormat},
		{Key: KeyTimeLayout, Value: c.TimeLayout},
	}
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%s: invalid url %q", KeyAPIBaseURL, c.APIBaseURL)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("%s: must be positive", KeyAPITimeout)
	}
	switch c.TokenBackend {
	case BackendFile, BackendPass, BackendChain:
	default:
		return fmt.Errorf("%s: unsupported backend %q (want file, pass or chain)", KeyTokenBackend, c.TokenBackend)
	}
	if err := filestore.ValidateKey(c.TokenKey); err != nil {
		return fmt.Errorf("%s: %w", KeyTokenKey, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%s: unsupported format %q (want console or json)", KeyLogFormat, c.LogFormat)
	}
	if strings.TrimSpace(c.TimeLayout) == "" {
		return fmt.Errorf("%s: must not be empty", KeyTimeLayout)
	}

	return nil
}

type Repository struct {
	cfg  *viper.Viper
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// NewRepository reads the config file at path, or ~/.minitwitter/config.toml
// when path is empty. Values resolve as flags bound on cfg, then MT_*
// environment variables, then the file, then defaults.
func NewRepository(cfg *viper.Viper, path string) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	if strings.TrimSpace(path) == "" {
		path = filepath.Join(homeDir, configDir, configFile)
	}
	path, err = normalizeConfigPath(path)
	if err != nil {
		return nil, err
	}

	cfg.SetConfigFile(path)
	cfg.SetConfigType(configType)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg, homeDir)

	repo := &Repository{cfg: cfg, path: path, mu: lockForPath(path)}
	if err := repo.reload(); err != nil {
		return nil, err
	}

	return repo, nil
}

func setDefaults(cfg *viper.Viper, homeDir string) {
	cfg.SetDefault(KeyAPIBaseURL, "http://localhost:3000/api")
	cfg.SetDefault(KeyAPITimeout, "30s")
	cfg.SetDefault(KeyTokenBackend, BackendFile)
	cfg.SetDefault(KeyTokenKey, "token")
	cfg.SetDefault(KeyTokenDir, filepath.Join(homeDir, configDir, "secrets"))
	cfg.SetDefault(KeyTokenPassEntry, "minitwitter/token")
	cfg.SetDefault(KeyLogLevel, "warn")
	cfg.SetDefault(KeyLogFormat, "console")
	cfg.SetDefault(KeyTimeLayout, "02/01/2006 15:04")
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Load() (Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	timeout, err := time.ParseDuration(r.cfg.GetString(KeyAPITimeout))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyAPITimeout, err)
	}

	config := Config{
		APIBaseURL:     strings.TrimSpace(r.cfg.GetString(KeyAPIBaseURL)),
		APITimeout:     timeout,
		TokenBackend:   strings.ToLower(strings.TrimSpace(r.cfg.GetString(KeyTokenBackend))),
		TokenKey:       strings.TrimSpace(r.cfg.GetString(KeyTokenKey)),
		TokenDir:       expandHome(r.cfg.GetString(KeyTokenDir)),
		TokenPassEntry: strings.TrimSpace(r.cfg.GetString(KeyTokenPassEntry)),
		LogLevel:       strings.ToLower(strings.TrimSpace(r.cfg.GetString(KeyLogLevel))),
		LogFormat:      strings.ToLower(strings.TrimSpace(r.cfg.GetString(KeyLogFormat))),
		TimeLayout:     r.cfg.GetString(KeyTimeLayout),
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Set persists one key to the config file. The value is validated against
// the rest of the effective configuration before anything is written.
func (r *Repository) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	if err := file.set(key, value); err != nil {
		return err
	}
	if err := r.validateCandidate(key, value); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.writeSchema(file); err != nil {
		return err
	}

	return r.readInConfig()
}

func (r *Repository) validateCandidate(key string, value string) error {
	candidate := viper.New()
	for _, setting := range r.cfg.AllKeys() {
		candidate.Set(setting, r.cfg.Get(setting))
	}
	candidate.Set(key, value)

	timeout, err := time.ParseDuration(candidate.GetString(KeyAPITimeout))
	if err != nil {
		return fmt.Errorf("%s: %w", KeyAPITimeout, err)
	}

	return Config{
		APIBaseURL:   strings.TrimSpace(candidate.GetString(KeyAPIBaseURL)),
		APITimeout:   timeout,
		TokenBackend: strings.ToLower(strings.TrimSpace(candidate.GetString(KeyTokenBackend))),
		TokenKey:     strings.TrimSpace(candidate.GetString(KeyTokenKey)),
		LogLevel:     strings.ToLower(strings.TrimSpace(candidate.GetString(KeyLogLevel))),
		LogFormat:    strings.ToLower(strings.TrimSpace(candidate.GetString(KeyLogFormat))),
		TimeLayout:   candidate.GetString(KeyTimeLayout),
	}.Validate()
}

func (r *Repository) reload() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.readInConfig()
}

func (r *Repository) readInConfig() error {
	if err := r.cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &configNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	return nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read config file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode config file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizeConfigPath(path string) (string, error) {
	absPath, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
