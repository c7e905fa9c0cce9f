package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gridwatch/gridwatch/internal/config"
	"github.com/gridwatch/gridwatch/internal/logger"
)

func TestVersionTemplate(t *testing.T) {
	version, commit, date = "1.2.3", "abc123", "2026-08-28"
	out := versionTemplate()
	if !strings.Contains(out, "1.2.3") || !strings.Contains(out, "abc123") {
		t.Errorf("version template missing fields: %q", out)
	}

	commit = "none"
	out = versionTemplate()
	if strings.Contains(out, "commit") {
		t.Errorf("dev builds should omit commit info: %q", out)
	}
}

func TestExportConfigWritesFile(t *testing.T) {
	logger.Reset()
	if err := logger.Init(filepath.Join(t.TempDir(), "test.log")); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	defer logger.Close()

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	cfg.SetTheme("matrix")

	dir := t.TempDir()
	if err := exportConfig(cfg, dir); err != nil {
		t.Fatalf("export config: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "gridwatch-config-") {
		t.Fatalf("expected one stamped config export, got %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "matrix") {
		t.Error("export should carry the saved theme")
	}
}
