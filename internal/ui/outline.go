package ui

import "image"

// circleOutline returns the midpoint-circle ring of radius r around (cx, cy).
func circleOutline(cx, cy, r int) []image.Point {
	if r <= 0 {
		return []image.Point{{X: cx, Y: cy}}
	}
	seen := make(map[image.Point]struct{})
	var pts []image.Point
	add := func(x, y int) {
		p := image.Point{X: cx + x, Y: cy + y}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		add(x, y)
		add(y, x)
		add(-y, x)
		add(-x, y)
		add(-x, -y)
		add(-y, -x)
		add(y, -x)
		add(x, -y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return pts
}
