package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dt-pm-tools/ticket-transfer/internal/transfer"
)

// Config holds the directory layout used by a transfer run.
type Config struct {
	ResolvedDir  string `yaml:"resolvedDir"  mapstructure:"resolvedDir"`
	ConvertedDir string `yaml:"convertedDir" mapstructure:"convertedDir"`
}

// DefaultPath returns the default config file path (~/.ticket-transfer.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ticket-transfer.yaml"
	}
	return filepath.Join(home, ".ticket-transfer.yaml")
}

// Load reads config from the YAML file and applies env var overrides.
// configPath may be empty to use the default path. A missing file yields
// the working-directory defaults.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = DefaultPath()
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("resolvedDir", transfer.DefaultResolvedDir)
	v.SetDefault("convertedDir", transfer.DefaultConvertedDir)

	// Env var overrides
	v.BindEnv("resolvedDir", "TICKET_RESOLVED_DIR")
	v.BindEnv("convertedDir", "TICKET_CONVERTED_DIR")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate checks that both directories are set.
func (c Config) Validate() error {
	if c.ResolvedDir == "" {
		return fmt.Errorf("resolved tickets directory is required (set resolvedDir or TICKET_RESOLVED_DIR)")
	}
	if c.ConvertedDir == "" {
		return fmt.Errorf("converted directory is required (set convertedDir or TICKET_CONVERTED_DIR)")
	}
	return nil
}

// Transfer returns the run configuration for this layout.
func (c Config) Transfer() transfer.Config {
	return transfer.Config{
		ResolvedDir:  c.ResolvedDir,
		ConvertedDir: c.ConvertedDir,
	}
}

// Save writes the config to the given path (or default path if empty).
func Save(cfg Config, configPath string) error {
	if configPath == "" {
		configPath = DefaultPath()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
