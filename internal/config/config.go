// Package config loads server settings from defaults, an optional TOML file
// and environment variables, in that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appName    = "rgbimage-mcp"
	configFile = "config.toml"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "RGBIMAGE_MCP_CONFIG"

	// EnvLogLevel overrides Config.LogLevel.
	EnvLogLevel = "RGBIMAGE_MCP_LOG_LEVEL"

	// envLegacyLogLevel is still honoured when EnvLogLevel is unset.
	envLegacyLogLevel = "IMAGE_MCP_LOG_LEVEL"
)

// Log levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
)

// Config holds the server settings.
type Config struct {
	// LogLevel is "info" or "debug".
	LogLevel string `toml:"log_level"`

	// StoreCapacity is the number of named images kept before the least
	// recently used one is evicted.
	StoreCapacity int `toml:"store_capacity"`

	// MaxPixels caps height*width of any stored image.
	MaxPixels int `toml:"max_pixels"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      LevelInfo,
		StoreCapacity: 64,
		MaxPixels:     2048 * 2048,
	}
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == LevelDebug
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	switch c.LogLevel {
	case LevelDebug, LevelInfo:
	default:
		return fmt.Errorf("invalid log_level %q: want %q or %q", c.LogLevel, LevelInfo, LevelDebug)
	}
	if c.StoreCapacity <= 0 {
		return fmt.Errorf("invalid store_capacity %d: must be positive", c.StoreCapacity)
	}
	if c.MaxPixels <= 0 {
		return fmt.Errorf("invalid max_pixels %d: must be positive", c.MaxPixels)
	}
	return nil
}

// Load builds the configuration. It reads the file named by
// RGBIMAGE_MCP_CONFIG, or config.toml in the user config directory, if that
// file exists. A missing file is not an error; an explicitly named one that
// is missing is.
func Load() (Config, error) {
	path, explicit := Path()

	cfg := Default()
	if err := readFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads path on top of the defaults and environment. The file must
// exist.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := readFile(path, &cfg); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Path returns the config file location and whether it was set explicitly
// through RGBIMAGE_MCP_CONFIG.
func Path() (path string, explicit bool) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, true
	}
	return filepath.Join(configDir(), configFile), false
}

func readFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func applyEnv(cfg *Config) {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	} else if lvl := os.Getenv(envLegacyLogLevel); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	}
}

func configDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), appName)
}

func xdgOrFallback(xdg string, fallback string) string {
	if dir := os.Getenv(xdg); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return fallback
}
