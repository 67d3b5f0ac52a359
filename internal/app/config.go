package app

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

// Config represents the parameters shared by the GUI and the headless tools.
type Config struct {
	Scene  string `yaml:"scene"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`

	Scale    int `yaml:"scale"`
	TPS      int `yaml:"tps"`
	MaxTicks int `yaml:"max_ticks_per_frame"`
	HUDWidth int `yaml:"hud_width"`

	Brush BrushConfig `yaml:"brush"`
}

// BrushConfig holds the starting brush settings.
type BrushConfig struct {
	Radius   int     `yaml:"radius"`
	Density  float64 `yaml:"density"`
	Material string  `yaml:"material"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := sand.DefaultConfig()
	return &Config{
		Scene:    def.Scene,
		Width:    def.Width,
		Height:   def.Height,
		Seed:     def.Seed,
		Scale:    4,
		TPS:      60,
		MaxTicks: 4,
		HUDWidth: 220,
		Brush: BrushConfig{
			Radius:   4,
			Density:  1,
			Material: sand.Sand.String(),
		},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to load")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.MaxTicks, "max-ticks", c.MaxTicks, "most ticks applied in one frame")
	fs.IntVar(&c.Brush.Radius, "radius", c.Brush.Radius, "starting brush radius")
	fs.Float64Var(&c.Brush.Density, "density", c.Brush.Density, "starting brush density (0-1]")
	fs.StringVar(&c.Brush.Material, "material", c.Brush.Material, "starting brush material")
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseArgs builds a Config from command-line args. A -config file is applied
// over the defaults first; explicit flags then override the file.
func ParseArgs(name string, args []string) (*Config, error) {
	var path string
	probe := flag.NewFlagSet(name, flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	probe.StringVar(&path, "config", "", "YAML config file")
	NewConfig().Bind(probe)
	if err := probe.Parse(args); err != nil {
		return nil, err
	}

	cfg := NewConfig()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", path, "YAML config file")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	if _, ok := sand.ParseMaterial(c.Brush.Material); !ok {
		return fmt.Errorf("unknown brush material %q", c.Brush.Material)
	}
	return nil
}

// SimMap renders the simulation settings in the registry's key/value form.
func (c *Config) SimMap() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"scene": c.Scene,
	}
}

// NewSim builds the configured scene through the registry and lays it out.
func (c *Config) NewSim() (*sand.Simulation, error) {
	built, err := core.New(c.Scene, c.SimMap())
	if err != nil {
		return nil, err
	}
	sim, ok := built.(*sand.Simulation)
	if !ok {
		return nil, fmt.Errorf("scene %q is not a sand simulation", c.Scene)
	}
	sim.Reset(c.Seed)
	return sim, nil
}
