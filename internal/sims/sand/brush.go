package sand

// PaintCircle sets every cell within radius of (x, y) to m. Each offset is
// painted with probability density; density >= 1 paints a solid disc.
// Offsets outside the grid are skipped and unknown materials are ignored.
func (s *Simulation) PaintCircle(x, y, radius int, m Material, density float64) {
	if !m.Valid() || radius < 0 || density <= 0 {
		return
	}
	solid := density >= 1
	r2 := radius * radius

	y0, y1 := max(y-radius, 0), min(y+radius, s.grid.Height()-1)
	x0, x1 := max(x-radius, 0), min(x+radius, s.grid.Width()-1)
	for yp := y0; yp <= y1; yp++ {
		dy := yp - y
		for xp := x0; xp <= x1; xp++ {
			dx := xp - x
			if dx*dx+dy*dy > r2 {
				continue
			}
			if !solid && s.paint.Float64() >= density {
				continue
			}
			s.grid.Set(xp, yp, m)
		}
	}
	s.gen++
}

// Paint is PaintCircle with a solid fill.
func (s *Simulation) Paint(x, y, radius int, m Material) {
	s.PaintCircle(x, y, radius, m, 1)
}

// line draws a one-cell-wide segment between two points.
func (s *Simulation) line(x0, y0, x1, y1 int, m Material) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.SetCell(x0, y0, m)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// thickLine draws a two-cell-wide segment so grains cannot slip
// diagonally between its steps.
func (s *Simulation) thickLine(x0, y0, x1, y1 int, m Material) {
	s.line(x0, y0, x1, y1, m)
	s.line(x0+1, y0, x1+1, y1, m)
}

// rect fills the axis-aligned box [x0,x1]×[y0,y1].
func (s *Simulation) rect(x0, y0, x1, y1 int, m Material) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetCell(x, y, m)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
