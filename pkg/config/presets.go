package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/lyonad/sboxlab/pkg/crypto/gf256"
	"github.com/lyonad/sboxlab/pkg/crypto/sbox"
)

// MatrixPreset is a saved affine specification: matrix rows plus constant,
// together with the fingerprint of the table it generates under the default
// field so that a preset can be recognized even after renaming.
type MatrixPreset struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Rows        [8]byte   `json:"rows"`
	Constant    byte      `json:"constant"`
	Created     time.Time `json:"created"`
	Fingerprint string    `json:"fingerprint"`
}

// SavePreset stores a named affine specification and persists the preset
// file. An existing preset of the same name is replaced.
func (m *Manager) SavePreset(name, description string, rows [8]byte, constant byte) (*MatrixPreset, error) {
	if name == "" {
		return nil, fmt.Errorf("preset name cannot be empty")
	}

	table := sbox.Generate(sbox.Matrix(rows), constant, gf256.AES())
	preset := &MatrixPreset{
		Name:        name,
		Description: description,
		Rows:        rows,
		Constant:    constant,
		Created:     time.Now().UTC(),
		Fingerprint: table.Fingerprint(),
	}

	m.presets[name] = preset
	if err := m.SavePresets(); err != nil {
		return nil, err
	}
	return preset, nil
}

// GetPreset looks up a preset by name.
func (m *Manager) GetPreset(name string) (*MatrixPreset, bool) {
	p, ok := m.presets[name]
	return p, ok
}

// DeletePreset removes a preset and persists the change.
func (m *Manager) DeletePreset(name string) error {
	if _, ok := m.presets[name]; !ok {
		return fmt.Errorf("preset %q does not exist", name)
	}
	delete(m.presets, name)
	return m.SavePresets()
}

// ListPresets returns all presets sorted by name.
func (m *Manager) ListPresets() []*MatrixPreset {
	out := make([]*MatrixPreset, 0, len(m.presets))
	for _, p := range m.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LoadPresets loads the preset file next to the config file.
func (m *Manager) LoadPresets() error {
	data, err := os.ReadFile(m.presetsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	presets := make(map[string]*MatrixPreset)
	if err := json.Unmarshal(data, &presets); err != nil {
		return fmt.Errorf("failed to parse presets: %w", err)
	}

	m.presets = presets
	return nil
}

// SavePresets writes the preset file to disk.
func (m *Manager) SavePresets() error {
	if err := os.MkdirAll(filepath.Dir(m.presetsPath()), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(m.presets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	if err := os.WriteFile(m.presetsPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write presets: %w", err)
	}
	return nil
}

func (m *Manager) presetsPath() string {
	return filepath.Join(filepath.Dir(m.configPath), "presets.json")
}
