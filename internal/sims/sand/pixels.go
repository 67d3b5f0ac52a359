package sand

import (
	"errors"

	"sandfall/internal/render"
)

// ErrStaleView is returned by PixelView.Bytes after the simulation has been
// mutated since the view was acquired.
var ErrStaleView = errors.New("sand: pixel view is stale, reacquire it with Pixels")

// RebuildPixels recolours the pixel buffer from the current grid.
func (s *Simulation) RebuildPixels() {
	render.FillPalette(s.pixels, s.grid.raw(), palette)
}

// Pixels returns a borrowed view of the RGBA8 pixel buffer as of the last
// RebuildPixels call.
func (s *Simulation) Pixels() PixelView {
	return PixelView{sim: s, gen: s.gen, buf: s.pixels}
}

// PixelView is a read-only handle on the pixel buffer. It goes stale after
// any Step, SetCell, PaintCircle, Clear or Reset on its simulation.
type PixelView struct {
	sim *Simulation
	gen uint64
	buf []byte
}

// Stale reports whether the view must be reacquired.
func (v PixelView) Stale() bool {
	return v.sim == nil || v.sim.gen != v.gen
}

// Bytes returns the RGBA8 buffer, 4 bytes per cell in row-major order.
func (v PixelView) Bytes() ([]byte, error) {
	if v.Stale() {
		return nil, ErrStaleView
	}
	return v.buf, nil
}

// Len returns the buffer length in bytes.
func (v PixelView) Len() int { return len(v.buf) }
