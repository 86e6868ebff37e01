package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Property != "" || len(cfg.ModuleDirs) != 0 {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadResolvesRelativeDirs(t *testing.T) {
	dir := t.TempDir()
	content := "property: Needs\nmodule_dirs:\n  - modules\n  - /abs/shared\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Property != "Needs" {
		t.Fatalf("unexpected property: %q", cfg.Property)
	}
	if cfg.ModuleDirs[0] != filepath.Join(dir, "modules") {
		t.Fatalf("relative dir not resolved: %v", cfg.ModuleDirs)
	}
	if cfg.ModuleDirs[1] != "/abs/shared" {
		t.Fatalf("absolute dir must stay untouched: %v", cfg.ModuleDirs)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}
