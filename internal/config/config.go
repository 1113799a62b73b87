package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete larek configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Server  ServerConfig  `mapstructure:"server"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls how the client talks to the shop API
type APIConfig struct {
	// BaseURL is the root of the shop API (GET /products, POST /order)
	BaseURL string `mapstructure:"base_url"`
	// CDNURL is prepended to product image paths
	CDNURL string `mapstructure:"cdn_url"`
	// TimeoutSeconds bounds each request (0 = no timeout)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// ServerConfig controls the demo API server started by `larek serve`
type ServerConfig struct {
	// Addr is the listen address
	Addr string `mapstructure:"addr"`
	// Catalog is a YAML or JSON product file; empty uses the built-in catalog
	Catalog string `mapstructure:"catalog"`
	// Watch reloads the catalog when the file changes
	Watch bool `mapstructure:"watch"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Currency is the unit shown after prices (default: "synapses")
	Currency string `mapstructure:"currency"`
	// CardWidth is the width of a gallery card in columns (default: 30, min: 20, max: 60)
	CardWidth int `mapstructure:"card_width"`
	// Theme is the color theme for the TUI
	// Options: "default", "mono"
	Theme string `mapstructure:"theme"`
	// Bell rings the terminal bell when a request fails
	Bell bool `mapstructure:"bell"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns on the log file
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level written: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is where larek.log is written (empty = config dir)
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080/api/weblarek",
			CDNURL:         "http://localhost:8080/content/weblarek",
			TimeoutSeconds: 10,
		},
		Server: ServerConfig{
			Addr:    ":8080",
			Catalog: "", // Built-in catalog
			Watch:   false,
		},
		TUI: TUIConfig{
			Currency:  "synapses",
			CardWidth: 30,
			Theme:     "default",
			Bell:      true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// Timeout returns the request timeout as a time.Duration (0 means none)
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogDir returns the directory for the log file
func (c *LoggingConfig) LogDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return ConfigDir()
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.cdn_url", defaults.API.CDNURL)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)

	// Server defaults
	viper.SetDefault("server.addr", defaults.Server.Addr)
	viper.SetDefault("server.catalog", defaults.Server.Catalog)
	viper.SetDefault("server.watch", defaults.Server.Watch)

	// TUI defaults
	viper.SetDefault("tui.currency", defaults.TUI.Currency)
	viper.SetDefault("tui.card_width", defaults.TUI.CardWidth)
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.bell", defaults.TUI.Bell)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "larek")
	}
	// Fall back to ~/.config/larek
	home, err := os.UserHomeDir()
	if err != nil {
		return ".larek"
	}
	return filepath.Join(home, ".config", "larek")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
