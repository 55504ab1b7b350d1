// Package config loads toyc settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kolkov/toyc"
	"github.com/kolkov/toyc/internal/token"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "TOYC_CONFIG"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config holds the complete toyc configuration
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Output   OutputConfig   `toml:"output"`
}

// AnalysisConfig holds front end settings
type AnalysisConfig struct {
	Dialect          Dialect `toml:"dialect"`
	FallthroughCheck *bool   `toml:"fallthrough_check"`
}

// OutputConfig holds report settings
type OutputConfig struct {
	Format  string `toml:"format"`
	Color   *bool  `toml:"color"`
	Tokens  bool   `toml:"tokens"`
	Summary *bool  `toml:"summary"`
	AST     *bool  `toml:"ast"`
}

// Dialect wraps token.Dialect for TOML parsing
type Dialect struct {
	token.Dialect
}

// UnmarshalText parses a dialect name
func (d *Dialect) UnmarshalText(text []byte) error {
	var err error
	d.Dialect, err = token.ParseDialect(string(text))
	return err
}

// MarshalText formats the dialect as its name
func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.Dialect.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Decode parses configuration from TOML text.
func Decode(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by TOYC_CONFIG, or the first default
// location that exists. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		defaultPaths := []string{"./toyc.toml"}
		if home, err := os.UserHomeDir(); err == nil {
			defaultPaths = append(defaultPaths, filepath.Join(home, ".config", "toyc", "config.toml"))
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Analysis.FallthroughCheck == nil {
		c.Analysis.FallthroughCheck = toyc.Bool(true)
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Color == nil {
		c.Output.Color = toyc.Bool(true)
	}
	if c.Output.Summary == nil {
		c.Output.Summary = toyc.Bool(true)
	}
	if c.Output.AST == nil {
		c.Output.AST = toyc.Bool(true)
	}
}

// Validate reports settings that cannot be honored.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, yaml or json)", c.Output.Format)
}

// AnalysisConfig returns the settings for toyc.AnalyzeWithConfig.
func (c *Config) AnalysisConfig() *toyc.Config {
	return &toyc.Config{
		Dialect:          c.Analysis.Dialect.Dialect,
		FallthroughCheck: c.Analysis.FallthroughCheck,
	}
}
