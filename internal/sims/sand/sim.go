package sand

import (
	"errors"
	"fmt"

	"sandfall/internal/core"
	prng "sandfall/pkg/core"
)

// MaxCells bounds the grid size accepted by the constructor.
const MaxCells = 1 << 26

// ErrInvalidSize is returned when a simulation cannot be allocated at the
// requested dimensions.
var ErrInvalidSize = errors.New("sand: invalid grid size")

// ErrUnknownScene is returned when a config names a scene that does not exist.
var ErrUnknownScene = errors.New("sand: unknown scene")

// paintStream keeps brush draws off the stepper's sequence.
const paintStream = 1

// Simulation owns a grid of materials and the generators that drive it. All
// methods are meant to be called from a single goroutine.
type Simulation struct {
	cfg Config

	grid    *Grid
	stepper *Stepper
	paint   *prng.RNG
	pixels  []byte

	frame uint64
	// gen counts mutating calls; PixelView compares against it.
	gen uint64
}

// New returns an empty w×h simulation using the default seed.
func New(w, h int) (*Simulation, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation configured from the provided options.
// The grid starts fully Empty with the tick counter at zero; call Reset to
// lay out the configured scene.
func NewWithConfig(cfg Config) (*Simulation, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxCells/cfg.Height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.Scene == "" {
		cfg.Scene = SceneSandbox
	}
	if _, ok := scenes[cfg.Scene]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, cfg.Scene)
	}
	total := cfg.Width * cfg.Height
	return &Simulation{
		cfg:     cfg,
		grid:    newGrid(cfg.Width, cfg.Height),
		stepper: NewStepper(cfg.Seed, total),
		paint:   prng.NewRNGStream(cfg.Seed, paintStream),
		pixels:  make([]byte, total*4),
	}, nil
}

// Name returns the scene identifier.
func (s *Simulation) Name() string { return s.cfg.Scene }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.grid.Width(), H: s.grid.Height()} }

// Width returns the number of columns.
func (s *Simulation) Width() int { return s.grid.Width() }

// Height returns the number of rows.
func (s *Simulation) Height() int { return s.grid.Height() }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Cells exposes the current material ids in row-major order. Callers must
// treat the slice as read-only.
func (s *Simulation) Cells() []uint8 { return s.grid.raw() }

// Cell returns the material at (x, y), or Boundary outside the grid.
func (s *Simulation) Cell(x, y int) Material { return s.grid.Get(x, y) }

// Reset clears the grid, rewinds both generators and lays out the configured
// scene. A zero seed falls back to the configured one.
func (s *Simulation) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.stepper.Seed(effective)
	s.paint.Seed(effective)
	s.grid.cells.Clear()
	s.frame = 0
	s.gen++
	if build, ok := scenes[s.cfg.Scene]; ok {
		build(s)
	}
}

// Clear empties the grid without touching the generators or tick counter.
func (s *Simulation) Clear() {
	s.grid.cells.Clear()
	s.gen++
}

// Step advances the simulation by exactly ticks updates.
func (s *Simulation) Step(ticks uint) {
	if ticks == 0 {
		return
	}
	for i := uint(0); i < ticks; i++ {
		s.stepper.Update(s.grid)
		s.frame++
	}
	s.gen++
}

// Activity returns the number of cell moves made by the most recent tick.
func (s *Simulation) Activity() int { return s.stepper.Activity() }

// SetCell writes m at (x, y). Out-of-range coordinates and unknown materials
// are ignored.
func (s *Simulation) SetCell(x, y int, m Material) {
	if !m.Valid() {
		return
	}
	if s.grid.Set(x, y, m) {
		s.gen++
	}
}
