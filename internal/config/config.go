// Package config persists the dashboard's per-user preferences: theme,
// view mode, saved widget layout, and custom shortcut bindings. Everything
// lives in a single JSON file under the user's home directory; there is no
// other durable store.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gridwatch/gridwatch/internal/errors"
	"github.com/gridwatch/gridwatch/internal/logger"
)

// SchemaVersion is the config file schema version. Files written with a
// different version are treated as absent and replaced with defaults on
// the next save, never surfaced as a parse error.
const SchemaVersion = 1

// Config holds the persisted dashboard preferences.
type Config struct {
	SchemaVersion int    `json:"schema_version"`
	Theme         string `json:"theme,omitempty"`     // UI theme name (e.g., "tron", "matrix")
	ViewMode      string `json:"view_mode,omitempty"` // last applied view mode name

	// Layout and CustomShortcuts are opaque payloads owned by the layout
	// and shortcut packages; config just stores the bytes.
	Layout          json.RawMessage `json:"layout,omitempty"`
	CustomShortcuts json.RawMessage `json:"custom_shortcuts,omitempty"`

	AudioEnabled         bool `json:"audio_enabled,omitempty"`
	NotificationsEnabled bool `json:"notifications_enabled,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gridwatch"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't
// exist. Malformed files and schema-version mismatches fall back to
// defaults rather than failing startup.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Exposed for tests.
func LoadFrom(path string) (*Config, error) {
	cfg := defaultConfig(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		logger.Warn("Config: discarding malformed config at %s: %v", path, err)
		return defaultConfig(path), nil
	}
	if cfg.SchemaVersion != SchemaVersion {
		logger.Warn("Config: discarding config with schema version %d", cfg.SchemaVersion)
		return defaultConfig(path), nil
	}

	return cfg, nil
}

func defaultConfig(path string) *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		filePath:      path,
	}
}

// Save writes the config to disk.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Clear resets the config to defaults and removes the file. Used by the
// --reset maintenance flag.
func (c *Config) Clear() error {
	c.mu.Lock()
	c.Theme = ""
	c.ViewMode = ""
	c.Layout = nil
	c.CustomShortcuts = nil
	c.AudioEnabled = false
	c.NotificationsEnabled = false
	path := c.filePath
	c.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// GetTheme returns the saved theme name.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme stores the theme name.
func (c *Config) SetTheme(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = name
}

// GetViewMode returns the last applied view mode name.
func (c *Config) GetViewMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ViewMode
}

// SetViewMode stores the view mode name.
func (c *Config) SetViewMode(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ViewMode = name
}

// GetAudioEnabled returns whether the ambient audio cue is on.
func (c *Config) GetAudioEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AudioEnabled
}

// SetAudioEnabled stores the audio flag.
func (c *Config) SetAudioEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.AudioEnabled = enabled
}

// GetNotificationsEnabled returns whether desktop notifications are on.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled stores the notifications flag.
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// LayoutData implements layout.Store.
func (c *Config) LayoutData() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Layout
}

// SetLayoutData implements layout.Store. A nil payload deletes the key.
func (c *Config) SetLayoutData(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Layout = data
}

// CustomShortcutData implements shortcut.Store.
func (c *Config) CustomShortcutData() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CustomShortcuts
}

// SetCustomShortcutData implements shortcut.Store.
func (c *Config) SetCustomShortcutData(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CustomShortcuts = data
}

// Persist implements the Store interfaces' flush method.
func (c *Config) Persist() error {
	return c.Save()
}
