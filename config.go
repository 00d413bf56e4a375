//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/obinnaokechukwu/ampgo/internal/bindings"
)

// Config holds boot settings for the binding layer, usually loaded from a
// YAML document:
//
//	library:
//	  paths:
//	    - /opt/amplitude/lib
//	log:
//	  level: info
//	pool:
//	  threads: 4
type Config struct {
	Library LibraryConfig `yaml:"library"`
	Log     LogConfig     `yaml:"log"`
	Pool    PoolConfig    `yaml:"pool"`
}

// LibraryConfig controls how the Amplitude shared library is located.
type LibraryConfig struct {
	// Paths lists directories searched right after the
	// AMPLITUDE_LIBRARY_PATH environment variable.
	Paths []string `yaml:"paths"`
}

// LogConfig controls the diagnostics logger installed at boot.
type LogConfig struct {
	// Level is one of off, debug, info, warn, error. Empty means off.
	Level string `yaml:"level"`
}

// PoolConfig sizes the default thread pool created by InitWithConfig.
type PoolConfig struct {
	// Threads is the worker thread count. Zero skips pool creation.
	Threads uint32 `yaml:"threads"`
}

// DefaultConfig returns the settings InitWithConfig uses when a field is
// left empty.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig decodes a Config from YAML.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("ampgo: decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile decodes a Config from a YAML file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("ampgo: opening config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) validate() error {
	switch c.Log.Level {
	case "", "off", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("ampgo: unknown log level %q", c.Log.Level)
	}
	return nil
}

func (c Config) buildLogger() (*zap.Logger, error) {
	if c.Log.Level == "" || c.Log.Level == "off" {
		return nil, nil
	}
	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("ampgo: parsing log level: %w", err)
	}
	zc.Level = level
	return zc.Build()
}

// InitWithConfig applies cfg and boots the binding layer. When
// cfg.Pool.Threads is non-zero the returned Pool is ready for use and owned
// by the caller; otherwise it is nil.
func InitWithConfig(cfg Config) (*Pool, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log, err := cfg.buildLogger()
	if err != nil {
		return nil, err
	}
	if log != nil {
		SetLogger(log)
	}

	if len(cfg.Library.Paths) > 0 {
		bindings.SetSearchPaths(cfg.Library.Paths)
	}

	if err := Init(); err != nil {
		return nil, err
	}

	if cfg.Pool.Threads == 0 {
		return nil, nil
	}
	return NewPool(cfg.Pool.Threads)
}
