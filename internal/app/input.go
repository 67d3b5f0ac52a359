package app

import "sandfall/internal/sims/sand"

// materialForDigit maps the number row to material ids: 0 erases, 1-4 pick
// wall, sand, water and stone.
func materialForDigit(d int) (sand.Material, bool) {
	m := sand.Material(d)
	if d < 0 || !m.Valid() {
		return 0, false
	}
	return m, true
}

// cellAt converts a cursor position in screen pixels into grid coordinates.
// ok is false when the cursor is outside the grid area.
func cellAt(px, py, scale, w, h int) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// strokeCells returns the cells between two successive cursor samples so a
// fast drag paints a continuous trail.
func strokeCells(x0, y0, x1, y1, spacing int) [][2]int {
	if spacing < 1 {
		spacing = 1
	}
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy)) / spacing
	if steps == 0 {
		return [][2]int{{x1, y1}}
	}
	out := make([][2]int, 0, steps+1)
	for i := 1; i <= steps; i++ {
		out = append(out, [2]int{x0 + dx*i/steps, y0 + dy*i/steps})
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
