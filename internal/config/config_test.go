package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadReadsSettings(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "indent: 4\nwidth: 100\nexclude:\n  - generated/**\n")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Indent != 4 || cfg.Width != 100 {
		t.Fatalf("unexpected settings: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Exclude, []string{"generated/**"}) {
		t.Fatalf("unexpected exclude: %v", cfg.Exclude)
	}
}

func TestLoadNormalizesOutOfRangeValues(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "indent: -3\nwidth: 0\n")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Indent != 2 {
		t.Fatalf("expected indent normalized to 2, got %d", cfg.Indent)
	}
	if cfg.Width != -1 {
		t.Fatalf("expected width normalized to -1, got %d", cfg.Width)
	}
}

func TestLoadOmittedFieldsKeepDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "exclude: [tmp/]\n")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Indent != 2 || cfg.Width != -1 {
		t.Fatalf("expected defaults for omitted fields, got %+v", cfg)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "indent: [not, a, number\n")

	if _, err := Load(root); err == nil {
		t.Fatalf("expected error for malformed settings file")
	}
}

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, File), []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}
