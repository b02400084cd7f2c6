package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk braidkit configuration, read from
// ~/.config/braidkit/config.toml. Flags override config values, which
// override the built-in defaults.
//
// Example:
//
//	[defaults]
//	backend = "fixed64"
//	basis = "default"
//	measure = "intaxis"
//
//	[entropy]
//	tol = 1e-8
//	max_iter = 300
//	conv_req = 3
//
//	[cache]
//	enabled = true
//
//	[serve]
//	addr = ":8080"
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Entropy  EntropyConfig  `toml:"entropy"`
	Cache    CacheConfig    `toml:"cache"`
	Serve    ServeConfig    `toml:"serve"`
}

// DefaultsConfig selects the representation, basis and length functional
// used when no flag is given.
type DefaultsConfig struct {
	Backend string `toml:"backend"`
	Basis   string `toml:"basis"`
	Measure string `toml:"measure"`
}

// EntropyConfig tunes the iterative entropy estimate.
type EntropyConfig struct {
	Tol     float64 `toml:"tol"`
	MaxIter int     `toml:"max_iter"`
	ConvReq int     `toml:"conv_req"`
}

// CacheConfig controls the local result cache.
type CacheConfig struct {
	Enabled   bool   `toml:"enabled"`
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
}

// ServeConfig configures the HTTP API server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{Enabled: true},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads and decodes a config file. A missing file is not an
// error: the built-in defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the user's config file, falling back to the
// built-in defaults on any error. Configuration problems never stop the
// CLI from running.
func LoadConfigOrDefault() *Config {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(filepath.Join(dir, "config.toml"))
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
