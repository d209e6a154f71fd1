package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/funil/internal/config/colors"
)

// DefaultAPIURL is the backend used when neither the config file nor
// FUNIL_API_URL names one.
const DefaultAPIURL = "http://localhost:3001"

// Environment overrides
const (
	EnvAPIURL    = "FUNIL_API_URL"
	EnvThemeFile = "FUNIL_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	APIURL string `yaml:"api_url"`
	// RequestTimeout bounds each backend call. Zero means no timeout.
	RequestTimeout time.Duration      `yaml:"request_timeout"`
	KeyMappings    KeyMappings        `yaml:"key_mappings"`
	ColorScheme    colors.ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		APIURL:      DefaultAPIURL,
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		slog.Debug("no config directory, using defaults", "error", err)
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path.
// A missing file yields the default config.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("request_timeout must not be negative, got %s", cfg.RequestTimeout)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML, creating parent directories
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "funil", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "funil", "config.yaml"), nil
}

// applyEnv applies FUNIL_API_URL and merges the theme named by FUNIL_THEME_FILE
func (c *Config) applyEnv() {
	if url := os.Getenv(EnvAPIURL); url != "" {
		c.APIURL = url
	}

	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}
	data, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}
	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(data, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	c.ColorScheme.MergeFrom(themeConfig.Theme)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
