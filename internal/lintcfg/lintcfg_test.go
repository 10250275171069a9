package lintcfg

import (
	"os"
	"path/filepath"
	"testing"

	"lintwire/lint"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[lints]
static_name = "deny"
empty_block = "allow"
neg_literal = "warn"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	levels, err := cfg.Levels()
	if err != nil {
		t.Fatalf("Levels() = %v", err)
	}
	want := map[string]lint.Level{
		"static_name": lint.LevelDeny,
		"empty_block": lint.LevelAllow,
		"neg_literal": lint.LevelWarn,
	}
	for name, level := range want {
		if levels[name] != level {
			t.Errorf("%s = %v, want %v", name, levels[name], level)
		}
	}
}

func TestLoad_UnknownLevel(t *testing.T) {
	path := writeConfig(t, `
[lints]
static_name = "fatal"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("unknown level word should be refused")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("missing file should error")
	}
}
