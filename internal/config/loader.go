package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/mapstructure"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads the YAML config at path. Unknown keys are rejected and relative
// archive and log paths are resolved against the directory holding the file.
func (l *Loader) Load(path string) (*Config, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	cfg.TarFilePath = resolveRelative(base, cfg.TarFilePath)
	cfg.LogFilePath = resolveRelative(base, cfg.LogFilePath)

	return cfg, nil
}

func resolveRelative(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Load is a convenience function using the default loader
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// LoadEnv reads KAIRO_* overrides on top of DefaultEnv.
func LoadEnv() (Env, error) {
	env := DefaultEnv()
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	return env, nil
}

// ConfigPathFor picks the config file: the first CLI argument wins over KAIRO_CONFIG.
func (e Env) ConfigPathFor(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return e.ConfigPath
}
