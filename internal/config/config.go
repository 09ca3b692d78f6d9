package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/thenoetrevino/alphaslider/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const appName = "alphaslider"

// Config represents the application configuration
type Config struct {
	Slider      SliderConfig       `yaml:"slider" toml:"slider"`
	List        ListConfig         `yaml:"list" toml:"list"`
	Database    string             `yaml:"database,omitempty" toml:"database,omitempty"`
	KeyMappings KeyMappings        `yaml:"key_mappings" toml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme" toml:"theme"`
}

// SliderConfig controls the label row.
type SliderConfig struct {
	// Alphabet fixes the label set, one label per character.
	// Empty means labels are derived from the contacts' initials.
	Alphabet string `yaml:"alphabet,omitempty" toml:"alphabet,omitempty"`

	// Spacing is the gap between labels, in cells. nil means default.
	Spacing *int `yaml:"spacing,omitempty" toml:"spacing,omitempty"`

	// Inset is the untouchable margin on each side of the row, in cells.
	Inset *int `yaml:"inset,omitempty" toml:"inset,omitempty"`
}

// ListConfig controls the sectioned list.
type ListConfig struct {
	// EntryLines is 1 (name only) or 2 (name and detail)
	EntryLines int `yaml:"entry_lines,omitempty" toml:"entry_lines,omitempty"`
}

const (
	DefaultSpacing    = 1
	DefaultInset      = 2
	DefaultEntryLines = 2
)

// Default returns a config with every field set to its default.
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from ALPHASLIDER_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("ALPHASLIDER_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if no file exists
func Load() (*Config, error) {
	configPath, err := findConfigPath()
	if err != nil || configPath == "" {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path. The format is chosen by
// extension: .toml is TOML, anything else is YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Load theme from ALPHASLIDER_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory as YAML
func (c *Config) Save() error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o644)
}

// Labels returns the fixed label set from Slider.Alphabet, or nil when
// labels should be derived from the data.
func (c *Config) Labels() []string {
	if c.Slider.Alphabet == "" {
		return nil
	}
	labels := make([]string, 0, len(c.Slider.Alphabet))
	for _, r := range c.Slider.Alphabet {
		labels = append(labels, string(r))
	}
	return labels
}

// configDir returns the directory holding the config file
func configDir() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName), nil
}

// findConfigPath returns the first existing config file, YAML before TOML.
// It returns "" when neither exists.
func findConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}

	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Slider.Spacing == nil {
		spacing := DefaultSpacing
		c.Slider.Spacing = &spacing
	}
	if c.Slider.Inset == nil {
		inset := DefaultInset
		c.Slider.Inset = &inset
	}
	if c.List.EntryLines < 1 || c.List.EntryLines > 2 {
		c.List.EntryLines = DefaultEntryLines
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
