package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"layerpaint/internal/core"
	"layerpaint/internal/layer"
	"layerpaint/internal/store"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paint.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestResolvePrecedence(t *testing.T) {
	path := writeConfig(t, `
width = 32
height = 24
policy = "type-toggle"
background = "#102030"
undo_capacity = 10
`)
	t.Setenv("PAINT_HEIGHT", "16")
	t.Setenv("PAINT_POLICY", "overwrite")

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-policy", "additive"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := cfg.Resolve(fs); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if cfg.Width != 32 {
		t.Fatalf("width = %d, want file value 32", cfg.Width)
	}
	if cfg.Height != 16 {
		t.Fatalf("height = %d, want env value 16", cfg.Height)
	}
	if cfg.Policy != store.Additive {
		t.Fatalf("policy = %s, want flag value additive", cfg.Policy)
	}
	if cfg.Background != layer.RGB(0x10, 0x20, 0x30) {
		t.Fatalf("background = %s", cfg.Background.Hex())
	}
	if cfg.UndoCapacity != 10 || cfg.ReplayCapacity != 1000 {
		t.Fatalf("capacities = %d/%d", cfg.UndoCapacity, cfg.ReplayCapacity)
	}

	sc := cfg.Session()
	if sc.Grid.Width != 32 || sc.Grid.Height != 16 || sc.Grid.Policy != store.Additive {
		t.Fatalf("session grid config = %+v", sc.Grid)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "widht = 3\n")
	if err := NewConfig().LoadFile(path); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestResolveRejectsBadPolicy(t *testing.T) {
	t.Setenv("PAINT_POLICY", "blend")
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := cfg.Resolve(fs); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Session().Grid.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestResolveValidatesSize(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "0"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := cfg.Resolve(fs); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}
