package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application configuration
type Config struct {
	ContentDir   string `json:"content_dir"`   // plaintext content modules (json)
	EncryptedDir string `json:"encrypted_dir"` // generated encrypted artifacts
	SessionPath  string `json:"session_path"`  // persisted session markers
	ConfigPath   string `json:"-"`             // Not stored, just for reference
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		ContentDir:   "data",
		EncryptedDir: filepath.Join("data", "encrypted"),
		SessionPath:  filepath.Join(homeDir, ".foliovault", "session.json"),
		ConfigPath:   filepath.Join(homeDir, ".foliovault", "config.json"),
	}
}

// LoadConfig loads configuration from file
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(cfg.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig() error {
	dir := filepath.Dir(c.ConfigPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.ConfigPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
