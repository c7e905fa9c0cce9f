package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gridwatch/gridwatch/internal/errors"
)

func testConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(testConfigPath(t))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.SchemaVersion != SchemaVersion {
		t.Errorf("schema version = %d, want %d", cfg.SchemaVersion, SchemaVersion)
	}
	if cfg.GetTheme() != "" || cfg.GetViewMode() != "" {
		t.Error("fresh config should have no saved theme or view mode")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := testConfigPath(t)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	cfg.SetTheme("matrix")
	cfg.SetViewMode("technical")
	cfg.SetAudioEnabled(true)
	cfg.SetLayoutData([]byte(`{"schema_version":1,"columns":[]}`))
	cfg.SetCustomShortcutData([]byte(`{"F12":{"chord":"F12","action":"showHelp","description":"x"}}`))
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom after save: %v", err)
	}
	if loaded.GetTheme() != "matrix" {
		t.Errorf("theme = %q, want matrix", loaded.GetTheme())
	}
	if loaded.GetViewMode() != "technical" {
		t.Errorf("view mode = %q, want technical", loaded.GetViewMode())
	}
	if !loaded.GetAudioEnabled() {
		t.Error("audio flag lost in round trip")
	}
	if len(loaded.LayoutData()) == 0 {
		t.Error("layout payload lost in round trip")
	}
	if len(loaded.CustomShortcutData()) == 0 {
		t.Error("custom shortcut payload lost in round trip")
	}
}

func TestLoadFrom_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := testConfigPath(t)
	if err := os.WriteFile(path, []byte("{this is not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("malformed config should not fail load: %v", err)
	}
	if cfg.GetTheme() != "" {
		t.Error("malformed config should yield defaults")
	}
}

func TestLoadFrom_SchemaMismatchFallsBackToDefaults(t *testing.T) {
	path := testConfigPath(t)
	old, _ := json.Marshal(map[string]interface{}{
		"schema_version": 99,
		"theme":          "cyberpunk",
	})
	if err := os.WriteFile(path, old, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.GetTheme() != "" {
		t.Error("mismatched schema version should be treated as absent")
	}
}

func TestSetLayoutData_NilDeletes(t *testing.T) {
	cfg, err := LoadFrom(testConfigPath(t))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	cfg.SetLayoutData([]byte(`{}`))
	cfg.SetLayoutData(nil)
	if cfg.LayoutData() != nil {
		t.Error("nil payload should delete the layout key")
	}
}

func TestClear(t *testing.T) {
	path := testConfigPath(t)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg.SetTheme("solarized")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := cfg.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Clear should remove the config file")
	}
	if cfg.GetTheme() != "" {
		t.Error("Clear should reset in-memory state")
	}
}

func TestLoadFrom_UnreadablePathWrapsError(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	if err == nil {
		t.Fatal("loading a directory path should fail")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("error kind = %v, want KindConfig", errors.GetKind(err))
	}
}

func TestSave_UnwritablePathWrapsError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := defaultConfig(filepath.Join(blocker, "sub", "config.json"))
	err := cfg.Save()
	if err == nil {
		t.Fatal("saving under a regular file should fail")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("error kind = %v, want KindConfig", errors.GetKind(err))
	}
}
