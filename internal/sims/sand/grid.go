package sand

import "sandfall/internal/core"

// Grid is the authoritative W×H array of materials.
type Grid struct {
	cells *core.ByteGrid
}

func newGrid(w, h int) *Grid {
	return &Grid{cells: core.NewByteGrid(w, h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.H }

// Get returns the material at (x, y), or Boundary outside the grid.
func (g *Grid) Get(x, y int) Material {
	v, ok := g.cells.At(x, y)
	if !ok {
		return Boundary
	}
	return Material(v)
}

// Set writes m at (x, y). Out-of-range writes are dropped.
func (g *Grid) Set(x, y int, m Material) bool {
	return g.cells.Put(x, y, uint8(m))
}

func (g *Grid) index(x, y int) int { return g.cells.Index(x, y) }

func (g *Grid) raw() []uint8 { return g.cells.Cells() }

func (g *Grid) swap(i, j int) {
	data := g.cells.Cells()
	data[i], data[j] = data[j], data[i]
}
