// Package config provides configuration loading and management for
// semvocab. The file format is YAML; precedence is defaults, then the
// user-level file, then the project-level file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semvocab/gateway"
	"github.com/c360studio/semvocab/rules"
)

// Config represents the complete semvocab configuration.
type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	Log     LogConfig     `yaml:"log"`
	Export  ExportConfig  `yaml:"export"`
}

// GatewayConfig configures the validation gateway.
type GatewayConfig struct {
	// Strictness is one of strict, warn, report.
	Strictness string `yaml:"strictness"`
	// EnabledCategories optionally restricts checks to these rule
	// categories (empty = all).
	EnabledCategories []string `yaml:"enabled_categories"`
	// SkipRules lists rule ids to suppress.
	SkipRules []string `yaml:"skip_rules"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// ExportConfig configures the vocabulary exporters.
type ExportConfig struct {
	// Format is one of markdown, turtle, ntriples, jsonld.
	Format string `yaml:"format"`
	// Output is the destination path ("-" = stdout).
	Output string `yaml:"output"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Strictness: string(gateway.StrictnessWarn),
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Format: "markdown",
			Output: "-",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.GatewayConfiguration(); err != nil {
		return err
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Export.Format {
	case "markdown", "turtle", "ntriples", "jsonld":
	default:
		return fmt.Errorf("export.format %q is not supported", c.Export.Format)
	}
	return nil
}

// GatewayConfiguration converts the gateway section to the gateway's
// runtime configuration, validating it in the process.
func (c *Config) GatewayConfiguration() (gateway.Configuration, error) {
	cfg := gateway.Configuration{
		Strictness: gateway.Strictness(c.Gateway.Strictness),
		SkipRules:  append([]string(nil), c.Gateway.SkipRules...),
	}
	for _, cat := range c.Gateway.EnabledCategories {
		cfg.EnabledCategories = append(cfg.EnabledCategories, rules.Category(cat))
	}
	if err := cfg.Validate(); err != nil {
		return gateway.Configuration{}, err
	}
	return cfg, nil
}

// Merge overlays non-zero fields from other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Gateway.Strictness != "" {
		c.Gateway.Strictness = other.Gateway.Strictness
	}
	if len(other.Gateway.EnabledCategories) > 0 {
		c.Gateway.EnabledCategories = other.Gateway.EnabledCategories
	}
	if len(other.Gateway.SkipRules) > 0 {
		c.Gateway.SkipRules = other.Gateway.SkipRules
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.Output != "" {
		c.Export.Output = other.Export.Output
	}
}

// LoadFromFile loads configuration from a YAML file on top of defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}

// SaveToFile saves the configuration to a YAML file, creating parent
// directories as needed.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
