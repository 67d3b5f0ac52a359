package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"sandfall/internal/sims/sand"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Scene != sand.SceneSandbox {
		t.Errorf("expected scene sandbox, got %s", cfg.Scene)
	}
	if cfg.MaxTicks <= 0 {
		t.Error("max ticks per frame should be positive")
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-scene", "pool", "-w", "80", "-seed", "9", "-material", "water", "-density", "0.5"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scene != "pool" || cfg.Width != 80 || cfg.Seed != 9 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Brush.Material != "water" || cfg.Brush.Density != 0.5 {
		t.Fatalf("brush flags not applied: %+v", cfg.Brush)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandfall.yaml")
	cfg := NewConfig()
	cfg.Scene = sand.SceneHourglass
	cfg.Width = 96
	cfg.Brush.Radius = 7
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("loaded %+v, expected %+v", loaded, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("scene: dunes\nbrush:\n  material: stone\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := NewConfig()
	if cfg.Scene != "dunes" || cfg.Brush.Material != "stone" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Width != def.Width || cfg.Brush.Radius != def.Brush.Radius {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"unknown material", func(c *Config) { c.Brush.Material = "lava" }},
	}
	for _, tt := range tests {
		cfg := NewConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestNewSimBuildsScene(t *testing.T) {
	cfg := NewConfig()
	cfg.Scene = sand.ScenePool
	cfg.Width, cfg.Height = 48, 32
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.CountMat(sand.Water) == 0 {
		t.Fatal("pool scene was not laid out")
	}

	cfg.Scene = "nope"
	if _, err := cfg.NewSim(); err == nil {
		t.Fatal("expected error for unknown scene")
	}
}

func TestParseArgsLayersFileUnderFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sand.yaml")
	body := "scene: dunes\nwidth: 64\nbrush:\n  radius: 9\n  material: stone\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := ParseArgs("sand", []string{"-config", path, "-w", "32"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.Scene != "dunes" || cfg.Brush.Radius != 9 || cfg.Brush.Material != "stone" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Width != 32 {
		t.Fatalf("flag should override file width, got %d", cfg.Width)
	}
	if cfg.Height != sand.DefaultConfig().Height {
		t.Fatalf("unset height should keep default, got %d", cfg.Height)
	}
}

func TestParseArgsErrors(t *testing.T) {
	if _, err := ParseArgs("sand", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatal("missing config file should fail")
	}
	if _, err := ParseArgs("sand", []string{"-material", "lava"}); err == nil {
		t.Fatal("unknown material should fail validation")
	}
}
