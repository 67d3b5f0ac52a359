package sand

import (
	"image/color"
	"strings"
)

// Material identifies what occupies a cell. The numeric values are part of
// the host contract and must not be renumbered.
type Material uint8

const (
	Empty Material = 0
	Wall  Material = 1
	Sand  Material = 2
	Water Material = 3
	Stone Material = 4
)

// Boundary is what Cell reports for coordinates outside the grid. It behaves
// as an immovable obstacle and can never be painted.
const Boundary Material = 0xFF

// Class is the mobility category that selects a material's movement rule.
type Class uint8

const (
	ClassEmpty Class = iota
	ClassStatic
	ClassGranular
	ClassLiquid
)

func (c Class) String() string {
	switch c {
	case ClassEmpty:
		return "empty"
	case ClassStatic:
		return "static"
	case ClassGranular:
		return "granular"
	case ClassLiquid:
		return "liquid"
	default:
		return "unknown"
	}
}

// Properties holds the static behaviour of one material.
type Properties struct {
	Name  string
	Class Class
	// Rank orders materials by density; a granular cell sinks through a
	// liquid of strictly lower rank.
	Rank  uint8
	Color color.RGBA
	// Dispersion is how far a liquid may slide sideways in one tick.
	Dispersion int
}

var materialTable = [...]Properties{
	Empty: {Name: "empty", Class: ClassEmpty, Rank: 0, Color: color.RGBA{R: 0, G: 0, B: 0, A: 255}},
	Wall:  {Name: "wall", Class: ClassStatic, Rank: 255, Color: color.RGBA{R: 96, G: 96, B: 108, A: 255}},
	Sand:  {Name: "sand", Class: ClassGranular, Rank: 20, Color: color.RGBA{R: 194, G: 178, B: 128, A: 255}},
	Water: {Name: "water", Class: ClassLiquid, Rank: 10, Color: color.RGBA{R: 48, G: 96, B: 220, A: 255}, Dispersion: 4},
	Stone: {Name: "stone", Class: ClassStatic, Rank: 255, Color: color.RGBA{R: 136, G: 134, B: 128, A: 255}},
}

var palette = buildPalette()

func buildPalette() []color.RGBA {
	p := make([]color.RGBA, len(materialTable))
	for i, props := range materialTable {
		p[i] = props.Color
	}
	return p
}

// Lookup returns the properties of m. ok is false for ids outside the table,
// including Boundary.
func Lookup(m Material) (Properties, bool) {
	if int(m) >= len(materialTable) {
		return Properties{}, false
	}
	return materialTable[m], true
}

// Valid reports whether m is a paintable table entry.
func (m Material) Valid() bool { return int(m) < len(materialTable) }

func (m Material) String() string {
	if m == Boundary {
		return "boundary"
	}
	if !m.Valid() {
		return "unknown"
	}
	return materialTable[m].Name
}

// Materials lists every table entry in id order.
func Materials() []Material {
	out := make([]Material, len(materialTable))
	for i := range out {
		out[i] = Material(i)
	}
	return out
}

// ParseMaterial resolves a material by name (case-insensitive).
func ParseMaterial(name string) (Material, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, props := range materialTable {
		if props.Name == name {
			return Material(i), true
		}
	}
	return 0, false
}

// Palette exposes the colour palette indexed by material id.
func Palette() []color.RGBA { return palette }

// classOf treats anything outside the table as an obstacle.
func classOf(m Material) Class {
	if !m.Valid() {
		return ClassStatic
	}
	return materialTable[m].Class
}

func rankOf(m Material) uint8 {
	if !m.Valid() {
		return 255
	}
	return materialTable[m].Rank
}

func dispersionOf(m Material) int {
	if !m.Valid() {
		return 0
	}
	return materialTable[m].Dispersion
}
