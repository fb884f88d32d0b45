package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	DB     DBConfig     `yaml:"db"`
	Input  InputConfig  `yaml:"input"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server LogSettings `yaml:"server"`
	Events LogSettings `yaml:"events"`
	Trace  bool        `yaml:"trace"`
}

// LogSettings holds settings for a specific logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DBConfig holds database settings.
type DBConfig struct {
	Path string `yaml:"path"`
}

// InputConfig holds controller translation tuning. The defaults match the
// tuning the viewer installations have shipped with for years; change them
// only with a controller in hand.
type InputConfig struct {
	Sensitivity       float64  `yaml:"sensitivity"`
	MovementCount     int      `yaml:"movement_count"`
	MovementThreshold float64  `yaml:"movement_threshold"`
	MovementCooldown  Duration `yaml:"movement_cooldown"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "localhost:1935",
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
			Events: LogSettings{
				Path: "./logs/events.log",
			},
		},
		DB: DBConfig{
			Path: "./data/panomaster.db",
		},
		Input: InputConfig{
			Sensitivity:       0.0032,
			MovementCount:     10,
			MovementThreshold: 1.0,
			MovementCooldown:  Duration(250 * time.Millisecond),
		},
	}
}

// Load reads the configuration from path, falling back to defaults for
// missing values. On first run the merged configuration is written back so
// operators have a file to edit.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Read existing file if it exists
	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Write back so newly introduced settings show up in the file
	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	// Env overrides (applied after the write-back, never saved to disk)
	if addr := os.Getenv("PANOMASTER_ADDR"); addr != "" {
		cfg.Server.Address = addr
	}
	if dbPath := os.Getenv("PANOMASTER_DB"); dbPath != "" {
		cfg.DB.Path = dbPath
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// GenerateDefault writes a default config file unless one already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // File exists, do nothing
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return Save(path, DefaultConfig())
}
