package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load on missing file returned error: %v", err)
	}
	want := Defaults()
	if cfg.Desktops != want.Desktops || cfg.DefaultMode != want.DefaultMode {
		t.Fatalf("Load on missing file did not return built-in defaults: %+v", cfg)
	}
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "driftwm.yaml")
	contents := "desktops: 6\nborder_width: 4\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Desktops != 6 {
		t.Errorf("Desktops = %d, want 6", cfg.Desktops)
	}
	if cfg.BorderWidth != 4 {
		t.Errorf("BorderWidth = %d, want 4", cfg.BorderWidth)
	}
	// Untouched fields keep their built-in defaults.
	want := Defaults()
	if cfg.MasterSize != want.MasterSize {
		t.Errorf("MasterSize = %v, want untouched default %v", cfg.MasterSize, want.MasterSize)
	}
	if cfg.DefaultMode != want.DefaultMode {
		t.Errorf("DefaultMode = %v, want untouched default %v", cfg.DefaultMode, want.DefaultMode)
	}
}

func TestLoadModeOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "driftwm.yaml")
	if err := os.WriteFile(path, []byte("default_mode: GRID\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultMode != GRID {
		t.Errorf("DefaultMode = %v, want GRID", cfg.DefaultMode)
	}
}

func TestLoadUnknownModeNameKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "driftwm.yaml")
	if err := os.WriteFile(path, []byte("default_mode: NONSENSE\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultMode != Defaults().DefaultMode {
		t.Errorf("DefaultMode = %v, want unchanged built-in default", cfg.DefaultMode)
	}
}
