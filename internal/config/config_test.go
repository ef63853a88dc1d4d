package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[output]
format = "json"

[batch]
jobs = 3
cache = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "auto" || cfg.Output.MaxDiagnostics != 100 {
		t.Fatalf("output = %+v", cfg.Output)
	}
	if cfg.Batch.Jobs != 3 || !cfg.Batch.Cache || cfg.Batch.Ext != ".var" {
		t.Fatalf("batch = %+v", cfg.Batch)
	}
	if cfg.Serve.Addr != "127.0.0.1:8765" || cfg.Path != path {
		t.Fatalf("serve/path = %+v %q", cfg.Serve, cfg.Path)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "[output]\nfromat = \"json\"\n", "unknown keys: output.fromat"},
		{"bad format", "[output]\nformat = \"xml\"\n", "[output].format"},
		{"bad color", "[output]\ncolor = \"maybe\"\n", "[output].color"},
		{"negative jobs", "[batch]\njobs = -1\n", "[batch].jobs"},
		{"ext without dot", "[batch]\next = \"var\"\n", "[batch].ext"},
		{"syntax", "[output\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[serve]\naddr = \":9000\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover("", nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Serve.Addr != ":9000" {
		t.Fatalf("addr = %q", cfg.Serve.Addr)
	}
}

func TestDiscoverExplicitMissing(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "none.toml"), ""); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}
