// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"windowprice/internal/errors"
	"windowprice/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" toml:"version"`

	// Pricing contains pricing display settings
	Pricing PricingConfig `json:"pricing" toml:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output" toml:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" toml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" toml:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Currency is the ISO code printed next to totals
	Currency string `json:"currency" toml:"currency"`

	// DisplayPlaces is the number of decimal places shown for prices
	DisplayPlaces int32 `json:"display_places" toml:"display_places"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" toml:"default_format"`

	// ShowBreakdown prints every line item, not just the total
	ShowBreakdown bool `json:"show_breakdown" toml:"show_breakdown"`

	// NoColor disables ANSI colors in the cli format
	NoColor bool `json:"no_color" toml:"no_color"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" toml:"addr"`

	// ReadTimeoutSeconds bounds request reads
	ReadTimeoutSeconds int `json:"read_timeout_seconds" toml:"read_timeout_seconds"`

	// MaxBodyBytes bounds request bodies
	MaxBodyBytes int64 `json:"max_body_bytes" toml:"max_body_bytes"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Currency:      "USD",
			DisplayPlaces: 2,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowBreakdown: true,
		},
		Server: ServerConfig{
			Addr:               ":8080",
			ReadTimeoutSeconds: 10,
			MaxBodyBytes:       1 << 20,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.windowprice.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".windowprice.json")
}

// EnvPrefix prefixes every environment override
const EnvPrefix = "WINDOWPRICE_"

// isTOML reports whether path should be read and written as TOML. Every
// other extension is JSON.
func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load loads configuration from a JSON or TOML file. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if isTOML(path) {
		err = toml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "invalid config file "+path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Pricing.DisplayPlaces < 0 || c.Pricing.DisplayPlaces > 6 {
		return errors.Config("pricing.display_places must be between 0 and 6").
			WithContext("display_places", c.Pricing.DisplayPlaces)
	}
	switch c.Output.DefaultFormat {
	case "cli", "json", "markdown":
	default:
		return errors.Config("output.default_format must be cli, json or markdown").
			WithContext("default_format", c.Output.DefaultFormat)
	}
	if c.Server.ReadTimeoutSeconds < 0 {
		return errors.Config("server.read_timeout_seconds must not be negative")
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadEnvFiles reads KEY=value files into the process environment.
// Variables already set win, and missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return errors.Wrap(errors.TypeConfig, "invalid env file "+path, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from WINDOWPRICE_* variables, then validates.
// NO_COLOR disables colors whatever its value.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvPrefix + "ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "CURRENCY"); ok {
		c.Pricing.Currency = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "FORMAT"); ok {
		c.Output.DefaultFormat = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "DISPLAY_PLACES"); ok {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return errors.Wrap(errors.TypeConfig, EnvPrefix+"DISPLAY_PLACES must be an integer", err)
		}
		c.Pricing.DisplayPlaces = int32(n)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Output.NoColor = true
	}
	return c.Validate()
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
