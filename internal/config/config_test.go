package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.General.DefaultBudget != nil {
		t.Fatalf("default budget = %v, want nil", *cfg.General.DefaultBudget)
	}
	if Exists() {
		t.Fatal("Exists() = true with no file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	budget := 250.5
	cfg := DefaultConfig()
	cfg.General.DefaultBudget = &budget
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Export.Path = filepath.Join(dir, "h.db")

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DefaultBudget == nil || *got.General.DefaultBudget != 250.5 {
		t.Fatalf("default budget not round-tripped: %+v", got.General)
	}
	if got.Appearance.Theme != "tokyo-night" || got.Export.Path != cfg.Export.Path {
		t.Fatalf("got %+v", got)
	}
	if GetDefaultBudget(got) != "250.5" {
		t.Fatalf("GetDefaultBudget = %q", GetDefaultBudget(got))
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CSPEND_BUDGET", "75")
	t.Setenv("CSPEND_THEME", "terminal")
	t.Setenv("CSPEND_EXPORT", "/tmp/x.db")

	budget := 10.0
	cfg := DefaultConfig()
	cfg.General.DefaultBudget = &budget

	if got := GetDefaultBudget(cfg); got != "75" {
		t.Fatalf("budget = %q, want 75", got)
	}
	if got := GetTheme(cfg); got != "terminal" {
		t.Fatalf("theme = %q, want terminal", got)
	}
	if got := GetExportPath(cfg); got != "/tmp/x.db" {
		t.Fatalf("export = %q", got)
	}
}
