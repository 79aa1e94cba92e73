package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Sane80x24(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rows != 24 || cfg.Cols != 80 {
		t.Errorf("default size = %dx%d, want 24x80", cfg.Rows, cfg.Cols)
	}
	if cfg.AutoRestartOnSuccess {
		t.Errorf("auto-restart should default to false")
	}
}

func TestLoadTOML_OverridesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridterm.toml")
	contents := `
rows = 40
cols = 120
success_patterns = ["BUILD OK", "READY"]
auto_restart_on_success = true
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadTOML(path)
	if err != nil {
		t.Fatalf("LoadTOML: %v", err)
	}
	if cfg.Rows != 40 || cfg.Cols != 120 {
		t.Errorf("size = %dx%d, want 40x120", cfg.Rows, cfg.Cols)
	}
	if !cfg.AutoRestartOnSuccess {
		t.Errorf("auto_restart_on_success should be true")
	}
	if len(cfg.SuccessPatterns) != 2 || cfg.SuccessPatterns[0] != "BUILD OK" {
		t.Errorf("success patterns = %v, want [BUILD OK READY]", cfg.SuccessPatterns)
	}
}

func TestLoadTOML_MissingFileErrors(t *testing.T) {
	_, err := LoadTOML(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Errorf("expected an error loading a nonexistent file")
	}
}
