package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	API     apiSchema     `toml:"api,omitempty"`
	Token   tokenSchema   `toml:"token,omitempty"`
	Log     logSchema     `toml:"log,omitempty"`
	Display displaySchema `toml:"display,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type apiSchema struct {
	BaseURL string `toml:"base_url,omitempty"`
	Timeout string `toml:"timeout,omitempty"`
}

type tokenSchema struct {
	Backend   string `toml:"backend,omitempty"`
	Key       string `toml:"key,omitempty"`
	Dir       string `toml:"dir,omitempty"`
	PassEntry string `toml:"pass_entry,omitempty"`
}

type logSchema struct {
	Level  string `toml:"level,omitempty"`
	Format string `toml:"format,omitempty"`
}

type displaySchema struct {
	TimeLayout string `toml:"time_layout,omitempty"`
}

func (s *fileSchema) set(key string, value string) error {
	switch key {
	case KeyAPIBaseURL:
		s.API.BaseURL = value
	case KeyAPITimeout:
		s.API.Timeout = value
	case KeyTokenBackend:
		s.Token.Backend = value
	case KeyTokenKey:
		s.Token.Key = value
	case KeyTokenDir:
		s.Token.Dir = value
	case KeyTokenPassEntry:
		s.Token.PassEntry = value
	case KeyLogLevel:
		s.Log.Level = value
	case KeyLogFormat:
		s.Log.Format = value
	case KeyTimeLayout:
		s.Display.TimeLayout = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	return nil
}
