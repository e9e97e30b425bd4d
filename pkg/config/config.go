// Package config provides configuration management for the sboxlab CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the main configuration structure.
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for generation and analysis.
type DefaultSettings struct {
	Matrix    string `json:"matrix"`    // Catalog key, default: k44
	Constant  uint8  `json:"constant"`  // Affine constant, default: 0x63
	Generator uint8  `json:"generator"` // Field generator, default: 3
	Poly      uint16 `json:"poly"`      // Irreducible polynomial, default: 0x11B
}

// UIConfig contains user interface settings.
type UIConfig struct {
	UseColor bool `json:"use_color"` // Enable colored output
	JSON     bool `json:"json"`      // Default to JSON output
}

// Manager handles configuration and preset loading and saving.
type Manager struct {
	config     *Config
	configPath string
	presets    map[string]*MatrixPreset
}

// NewManager loads the configuration from the user config directory,
// creating defaults on first run.
func NewManager() (*Manager, error) {
	configPath, err := configFilePath()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(configPath)
}

// NewManagerAt works like NewManager with an explicit config file path,
// which also keeps tests away from the real user config directory.
func NewManagerAt(configPath string) (*Manager, error) {
	m := &Manager{
		configPath: configPath,
		presets:    make(map[string]*MatrixPreset),
	}

	if err := m.LoadConfig(); err != nil {
		m.config = DefaultConfig()
		if err := m.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	if err := m.LoadPresets(); err != nil {
		// Presets are optional, start empty.
		m.presets = make(map[string]*MatrixPreset)
	}

	return m, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Matrix:    "k44",
			Constant:  0x63,
			Generator: 0x03,
			Poly:      0x11B,
		},
		UI: UIConfig{
			UseColor: true,
			JSON:     false,
		},
	}
}

// LoadConfig loads the configuration from disk.
func (m *Manager) LoadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	m.config = config
	return nil
}

// SaveConfig saves the configuration to disk.
func (m *Manager) SaveConfig() error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration.
func (m *Manager) GetConfig() *Config {
	return m.config
}

// SetConfig replaces the configuration.
func (m *Manager) SetConfig(config *Config) {
	m.config = config
}

func configFilePath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, "sboxlab", "config.json"), nil
}
