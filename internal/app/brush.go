package app

import (
	"strconv"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

const (
	maxBrushRadius = 64
	minDensity     = 0.05
)

// Brush is the user's current paint tool. It backs the HUD brush controls.
type Brush struct {
	Radius   int
	Density  float64
	Material sand.Material
}

// NewBrush builds a brush from config, falling back to sand for unknown names.
func NewBrush(cfg BrushConfig) *Brush {
	m, ok := sand.ParseMaterial(cfg.Material)
	if !ok {
		m = sand.Sand
	}
	b := &Brush{Material: m}
	b.SetIntParameter("radius", cfg.Radius)
	b.SetFloatParameter("density", cfg.Density)
	return b
}

// Apply paints the brush disc at cell (x, y).
func (b *Brush) Apply(sim *sand.Simulation, x, y int) {
	sim.PaintCircle(x, y, b.Radius, b.Material, b.Density)
}

// Erase clears a solid disc at cell (x, y).
func (b *Brush) Erase(sim *sand.Simulation, x, y int) {
	sim.PaintCircle(x, y, b.Radius, sand.Empty, 1)
}

// ParameterControls lists the HUD-adjustable brush settings.
func (b *Brush) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxBrushRadius, HasMin: true, HasMax: true},
		{Key: "density", Label: "Brush density", Type: core.ParamTypeFloat, Step: 0.05, Min: minDensity, Max: 1, HasMin: true, HasMax: true},
		{Key: "material", Label: "Material", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(len(sand.Materials()) - 1), HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates radius or material, clamping to the control bounds.
func (b *Brush) SetIntParameter(key string, value int) bool {
	switch key {
	case "radius":
		b.Radius = min(max(value, 0), maxBrushRadius)
		return true
	case "material":
		m := sand.Material(value)
		if value < 0 || !m.Valid() {
			return false
		}
		b.Material = m
		return true
	}
	return false
}

// SetFloatParameter updates the density, clamping to (0, 1].
func (b *Brush) SetFloatParameter(key string, value float64) bool {
	if key != "density" {
		return false
	}
	b.Density = min(max(value, minDensity), 1)
	return true
}

// Parameters reports the brush settings.
func (b *Brush) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Brush",
		Params: []core.Parameter{
			{Key: "radius", Label: "Brush radius", Type: core.ParamTypeInt, Value: strconv.Itoa(b.Radius)},
			{Key: "density", Label: "Brush density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(b.Density, 'f', -1, 64)},
			{Key: "material", Label: "Material", Type: core.ParamTypeInt, Value: strconv.Itoa(int(b.Material))},
			{Key: "material_name", Label: "Painting", Type: core.ParamTypeString, Value: b.Material.String()},
		},
	}}}
}
