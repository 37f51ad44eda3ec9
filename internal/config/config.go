// Package config provides configuration loading for Centinela.
// It supports a layered configuration approach with priority:
// CLI flags > environment variables (CENTINELA_*) > config file (~/.centinela.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all Centinela configuration options.
type Config struct {
	// GeminiAPIKey authenticates against the generation service. Resolve it
	// through ResolveAPIKey so the GEMINI_API_KEY fallback also works.
	GeminiAPIKey string        `mapstructure:"gemini_api_key" yaml:"gemini_api_key"`
	Model        string        `mapstructure:"model" yaml:"model"`
	OutputFormat string        `mapstructure:"output_format" yaml:"output_format"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Addr         string        `mapstructure:"addr" yaml:"addr"`
	Username     string        `mapstructure:"username" yaml:"username"`
	Password     string        `mapstructure:"password" yaml:"password"`
}

// Defaults returns a Config populated with default values.
func Defaults() Config {
	return Config{
		Model:        "gemini-2.5-flash",
		OutputFormat: "table",
		Timeout:      120 * time.Second,
		Addr:         ":3000",
		Username:     "admin",
		Password:     "centinela",
	}
}

// Load reads configuration from ~/.centinela.yaml and environment variables.
// It does NOT apply CLI flag overrides — call ApplyFlags for that.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".centinela")
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("CENTINELA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)

	v.SetEnvPrefix("CENTINELA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ApplyFlags overrides config values with any CLI flags that were explicitly set.
func ApplyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("model") {
		val, _ := flags.GetString("model")
		cfg.Model = val
	}
	if flags.Changed("output") {
		val, _ := flags.GetString("output")
		cfg.OutputFormat = val
	}
	if flags.Changed("timeout") {
		val, _ := flags.GetDuration("timeout")
		cfg.Timeout = val
	}
}

// ResolveAPIKey is the single credential-resolution function for the Gemini
// key. It prefers the configured value and falls back to the plain
// GEMINI_API_KEY environment variable. Validation (the AIzaSy prefix check)
// is the gateway's concern; this only resolves the raw value.
func (c *Config) ResolveAPIKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// ConfigFilePath returns the default config file path (~/.centinela.yaml).
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".centinela.yaml"
	}
	return filepath.Join(home, ".centinela.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model", "gemini-2.5-flash")
	v.SetDefault("output_format", "table")
	v.SetDefault("timeout", 120*time.Second)
	v.SetDefault("addr", ":3000")
	v.SetDefault("username", "admin")
	v.SetDefault("password", "centinela")
}
