package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a missing file so only defaults apply
	t.Setenv("FILESCOUT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartPath == "" {
		t.Error("start path default should not be empty")
	}
	if !cfg.ConfirmDelete {
		t.Error("confirm_delete should default to true")
	}
	if cfg.TimeFormat != "2006-01-02 15:04:05" {
		t.Errorf("time_format = %q", cfg.TimeFormat)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`
start_path = "/srv/data"
confirm_delete = false
time_format = "02/01/2006 15:04"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FILESCOUT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartPath != "/srv/data" {
		t.Errorf("start_path = %q", cfg.StartPath)
	}
	if cfg.ConfirmDelete {
		t.Error("confirm_delete should be false")
	}
	if cfg.TimeFormat != "02/01/2006 15:04" {
		t.Errorf("time_format = %q", cfg.TimeFormat)
	}
}
