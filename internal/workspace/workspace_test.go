package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/manfredsteyer/polygraph-rules/internal/conformance"
)

func TestParseConfig_valid(t *testing.T) {
	data := []byte(`
version: 1
rules:
  - rule: angular-version-rule
    options:
      version: 17.0.0
      prefix: "@angular/"
      manifest: apps/web/package.json
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Rules) != 1 {
		t.Fatalf("rules count = %d, want 1", len(cfg.Rules))
	}
	opts := cfg.Rules[0].Options
	if opts.Version != "17.0.0" {
		t.Errorf("version = %q, want %q", opts.Version, "17.0.0")
	}
	if opts.Prefix != "@angular/" {
		t.Errorf("prefix = %q, want %q", opts.Prefix, "@angular/")
	}
	if opts.Manifest != "apps/web/package.json" {
		t.Errorf("manifest = %q", opts.Manifest)
	}
}

func TestParseConfig_invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing version", `
rules:
  - rule: angular-version-rule
    options: {version: 17.0.0}
`},
		{"no rules", `
version: 1
rules: []
`},
		{"missing rule name", `
version: 1
rules:
  - options: {version: 17.0.0}
`},
		{"unknown rule", `
version: 1
rules:
  - rule: react-version-rule
    options: {version: 18.0.0}
`},
		{"duplicate rule", `
version: 1
rules:
  - rule: angular-version-rule
    options: {version: 17.0.0}
  - rule: angular-version-rule
    options: {version: 16.0.0}
`},
		{"missing expected version", `
version: 1
rules:
  - rule: angular-version-rule
`},
		{"escaping manifest", `
version: 1
rules:
  - rule: angular-version-rule
    options: {version: 17.0.0, manifest: ../package.json}
`},
		{"malformed yaml", "version: [1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.yaml)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSaveConfigAndLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig("angular-version-rule", conformance.Options{Version: "17.0.0"})
	if err := SaveConfig(filepath.Join(dir, ConfigFile), cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	ctx, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ctx.Root != dir {
		t.Errorf("root = %q, want %q", ctx.Root, dir)
	}
	if ctx.Config.Rules[0].Options.Version != "17.0.0" {
		t.Errorf("version = %q", ctx.Config.Rules[0].Options.Version)
	}
}

func TestSaveConfig_rejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := SaveConfig(path, NewConfig("angular-version-rule", conformance.Options{})); err == nil {
		t.Fatal("expected error for missing version")
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Error("invalid config should not be written")
	}
}

func TestLoad_missingConfig(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestContext_ManifestPath(t *testing.T) {
	ctx, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ctx.ManifestPath(conformance.Options{}), filepath.Join(ctx.Root, "package.json"); got != want {
		t.Errorf("ManifestPath() = %q, want %q", got, want)
	}
	if got, want := ctx.ManifestPath(conformance.Options{Manifest: "web/package.yaml"}), filepath.Join(ctx.Root, "web", "package.yaml"); got != want {
		t.Errorf("ManifestPath() = %q, want %q", got, want)
	}
}
