package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Method != "telex" || cfg.Style != "new" {
		t.Errorf("defaults = %s/%s, want telex/new", cfg.Method, cfg.Style)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &Config{
		Method:      "vni",
		Style:       "old",
		HistoryPath: "/tmp/govi-history.db",
		MethodFiles: []string{"my-vni.yaml"},
	}
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Method != want.Method || got.Style != want.Style {
		t.Errorf("loaded %s/%s, want %s/%s", got.Method, got.Style, want.Method, want.Style)
	}
	if got.HistoryPath != want.HistoryPath {
		t.Errorf("history path = %q, want %q", got.HistoryPath, want.HistoryPath)
	}
	if len(got.MethodFiles) != 1 || got.MethodFiles[0] != "my-vni.yaml" {
		t.Errorf("method files = %v, want [my-vni.yaml]", got.MethodFiles)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}
	// Overwrite with something unparseable.
	if err := os.WriteFile(path, []byte("method: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed config")
	}
}

func TestHistoryPathOverride(t *testing.T) {
	cfg := &Config{HistoryPath: "/tmp/custom.db"}
	path, err := cfg.DefaultHistoryPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/tmp/custom.db" {
		t.Errorf("history path = %q, want the override", path)
	}
}
