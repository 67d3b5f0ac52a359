package sand

import (
	"strconv"
	"strings"
)

// Config controls the sand simulation dimensions, seed and starting scene.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Scene names the layout built by Reset. See SceneNames.
	Scene string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 160,
		Seed:   1337,
		Scene:  SceneSandbox,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if v = strings.TrimSpace(v); v != "" {
			c.Scene = v
		}
	}
	return c
}
