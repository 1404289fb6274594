package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Defaults applied when the config file is missing or leaves a field empty
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the launcher configuration
type Config struct {
	JavaHome   string `json:"java_home"`  // JDK/JRE root; empty means look up java on PATH
	LogLevel   string `json:"log_level"`  // debug, info, warn or error
	LogFormat  string `json:"log_format"` // text or json
	configPath string
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	return &Config{
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
		configPath: getConfigPath(),
	}
}

// Load loads the configuration from the user's config directory
func Load() (*Config, error) {
	return LoadFile(getConfigPath())
}

// LoadFile loads the configuration from configPath. A missing file is not an error.
func LoadFile(configPath string) (*Config, error) {
	cfg := Default()
	cfg.configPath = configPath

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Remove BOM if present (UTF-8 BOM is EF BB BF)
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	cfg.JavaHome = strings.TrimSpace(cfg.JavaHome)
	if cfg.JavaHome != "" {
		cfg.JavaHome = filepath.Clean(cfg.JavaHome)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	return cfg, nil
}

// Path returns the file this configuration was loaded from
func (c *Config) Path() string {
	return c.configPath
}

// getConfigPath returns the path to the configuration file
// Following XDG Base Directory specification
func getConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome != "" {
		return filepath.Join(configHome, "parseczi", "parseczi.json")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return filepath.Join(homeDir, ".config", "parseczi", "parseczi.json")
}
