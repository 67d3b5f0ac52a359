package sand

import prng "sandfall/pkg/core"

// Stepper applies the movement rule to a Grid one update at a time.
//
// Cells are visited row by row from the floor up. A cell that has moved in
// the current update, either on its own or because a sinking grain pushed it
// aside, carries the update's epoch in stamps and is skipped for the rest of
// the update, so nothing hops twice.
type Stepper struct {
	rng      *prng.RNG
	stamps   []uint32
	epoch    uint32
	activity int
}

// NewStepper returns a Stepper for grids of the given cell count whose tie
// breaks draw from seed.
func NewStepper(seed int64, cells int) *Stepper {
	return &Stepper{rng: prng.NewRNG(seed), stamps: make([]uint32, cells)}
}

// Seed rewinds the tie-break generator.
func (s *Stepper) Seed(seed int64) {
	s.rng.Seed(seed)
}

// Activity returns the number of cell moves made by the most recent update.
func (s *Stepper) Activity() int { return s.activity }

// Update advances g by one tick and returns the number of moves made.
func (s *Stepper) Update(g *Grid) int {
	if len(s.stamps) != len(g.raw()) {
		s.stamps = make([]uint32, len(g.raw()))
		s.epoch = 0
	}
	s.epoch++
	if s.epoch == 0 {
		clear(s.stamps)
		s.epoch = 1
	}

	w, h := g.Width(), g.Height()
	moves := 0
	for y := h - 1; y >= 0; y-- {
		// One coin per row keeps the sweep free of a fixed left/right bias.
		if s.rng.Bool() {
			for x := 0; x < w; x++ {
				moves += s.visit(g, x, y)
			}
			continue
		}
		for x := w - 1; x >= 0; x-- {
			moves += s.visit(g, x, y)
		}
	}
	s.activity = moves
	return moves
}

func (s *Stepper) visit(g *Grid, x, y int) int {
	i := g.index(x, y)
	if s.stamps[i] == s.epoch {
		return 0
	}
	m := Material(g.raw()[i])
	switch classOf(m) {
	case ClassGranular:
		return s.fall(g, x, y, m)
	case ClassLiquid:
		return s.flow(g, x, y, m)
	default:
		return 0
	}
}

// fall moves a granular cell straight down, sinking through lighter liquid,
// or else diagonally down into empty space.
func (s *Stepper) fall(g *Grid, x, y int, m Material) int {
	below := g.Get(x, y+1)
	if below == Empty || s.sinksInto(g, m, x, y+1, below) {
		s.move(g, x, y, x, y+1)
		return 1
	}

	left := g.Get(x-1, y+1) == Empty
	right := g.Get(x+1, y+1) == Empty
	dx := 0
	switch {
	case left && right:
		dx = 1
		if s.rng.Bool() {
			dx = -1
		}
	case left:
		dx = -1
	case right:
		dx = 1
	default:
		return 0
	}
	s.move(g, x, y, x+dx, y+1)
	return 1
}

func (s *Stepper) sinksInto(g *Grid, m Material, x, y int, target Material) bool {
	if classOf(target) != ClassLiquid || rankOf(target) >= rankOf(m) {
		return false
	}
	return s.stamps[g.index(x, y)] != s.epoch
}

// flow drops a liquid cell into empty space below, or slides it sideways by
// up to its dispersion through empty cells.
func (s *Stepper) flow(g *Grid, x, y int, m Material) int {
	if g.Get(x, y+1) == Empty {
		s.move(g, x, y, x, y+1)
		return 1
	}
	reach := dispersionOf(m)
	if reach <= 0 {
		return 0
	}
	dir := 1
	if s.rng.Bool() {
		dir = -1
	}
	for _, d := range [2]int{dir, -dir} {
		if tx := farthestEmpty(g, x, y, d, reach); tx != x {
			s.move(g, x, y, tx, y)
			return 1
		}
	}
	return 0
}

func farthestEmpty(g *Grid, x, y, dir, reach int) int {
	tx := x
	for k := 1; k <= reach; k++ {
		if g.Get(x+dir*k, y) != Empty {
			break
		}
		tx = x + dir*k
	}
	return tx
}

// move swaps (x, y) with (tx, ty) and freezes whatever ended up non-empty.
func (s *Stepper) move(g *Grid, x, y, tx, ty int) {
	from, to := g.index(x, y), g.index(tx, ty)
	g.swap(from, to)
	s.stamps[to] = s.epoch
	if g.raw()[from] != uint8(Empty) {
		s.stamps[from] = s.epoch
	}
}
