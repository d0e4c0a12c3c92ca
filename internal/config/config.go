// Package config loads roster's YAML configuration
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDataFile is the roster file used when nothing else is configured
	DefaultDataFile = "students.txt"

	// DefaultThresholdStep is how far one key press moves the browser threshold
	DefaultThresholdStep = 0.1

	// DataFileEnv overrides the configured roster file
	DataFileEnv = "ROSTER_FILE"

	// ThemeFileEnv points at a YAML file whose theme section is merged over the config
	ThemeFileEnv = "ROSTER_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	DataFile    string       `yaml:"data_file"`
	ArchiveDB   string       `yaml:"archive_db"`
	LogLevel    string       `yaml:"log_level"`
	Browse      BrowseConfig `yaml:"browse"`
	ColorScheme ColorScheme  `yaml:"theme"`
}

// BrowseConfig holds settings for the interactive roster browser
type BrowseConfig struct {
	ThresholdStep float64     `yaml:"threshold_step"`
	MinGrade      float64     `yaml:"min_grade"`
	KeyMappings   KeyMappings `yaml:"key_mappings"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from ROSTER_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		config.applyEnv()
		return config, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path
// Returns default config if file doesn't exist
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		config.applyEnv()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()
	config.applyEnv()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "roster", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "roster", "config.yaml"), nil
}

// defaultArchivePath returns ~/.roster/archive.db, or a path relative to the
// working directory when the home directory is unknown
func defaultArchivePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".roster", "archive.db")
	}
	return filepath.Join(homeDir, ".roster", "archive.db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataFile == "" {
		c.DataFile = DefaultDataFile
	}
	if c.ArchiveDB == "" {
		c.ArchiveDB = defaultArchivePath()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Browse.ThresholdStep <= 0 {
		c.Browse.ThresholdStep = DefaultThresholdStep
	}
	c.Browse.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// applyEnv lets ROSTER_FILE override the configured data file
func (c *Config) applyEnv() {
	if dataFile := os.Getenv(DataFileEnv); dataFile != "" {
		c.DataFile = dataFile
	}
}
