package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents runtime configuration for the service.
type Config struct {
	BasicConfig BasicConfig               `json:"basic_config"`
	Providers   map[string]ProviderConfig `json:"providers"`
}

type ProviderConfig struct {
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
}

type BasicConfig struct {
	ServerAddress string `json:"server_address"`
	AllowedOrigin string `json:"allowed_origin"`
	Provider      string `json:"provider"`
	APIKeyFile    string `json:"api_key_file"`
}

// Load reads configuration from the provided path (defaults to config.json).
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.BasicConfig.Provider == "" {
		return nil, fmt.Errorf("provider must be configured")
	}
	if _, ok := cfg.Providers[cfg.BasicConfig.Provider]; !ok {
		return nil, fmt.Errorf("provider %s has no entry in providers", cfg.BasicConfig.Provider)
	}
	if cfg.BasicConfig.APIKeyFile == "" {
		return nil, fmt.Errorf("api_key_file must be configured")
	}

	if !filepath.IsAbs(cfg.BasicConfig.APIKeyFile) {
		cfg.BasicConfig.APIKeyFile = filepath.Join(filepath.Dir(absPath), cfg.BasicConfig.APIKeyFile)
	}

	return &cfg, nil
}

// ReadAPIKey loads the provider credential from the configured key file.
// The service refuses to start without it.
func (c *Config) ReadAPIKey() (string, error) {
	raw, err := os.ReadFile(c.BasicConfig.APIKeyFile)
	if err != nil {
		return "", fmt.Errorf("read api key %s: %w", c.BasicConfig.APIKeyFile, err)
	}
	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", fmt.Errorf("api key file %s is empty", c.BasicConfig.APIKeyFile)
	}
	return key, nil
}
