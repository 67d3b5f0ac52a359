package sand

import (
	"sort"

	"sandfall/internal/core"
)

// Scene names accepted by Config.Scene.
const (
	SceneSandbox   = "sandbox"
	SceneHourglass = "hourglass"
	ScenePool      = "pool"
	SceneDunes     = "dunes"
)

var scenes = map[string]func(s *Simulation){
	SceneSandbox:   func(*Simulation) {},
	SceneHourglass: buildHourglass,
	ScenePool:      buildPool,
	SceneDunes:     buildDunes,
}

// SceneNames lists the available scenes in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildHourglass draws two funnels meeting at a narrow neck and fills the
// upper bulb with sand.
func buildHourglass(s *Simulation) {
	w, h := s.Width(), s.Height()
	cx, neck := w/2, h/2
	gap := max(w/64, 1)

	s.thickLine(0, 0, cx-gap-1, neck, Wall)
	s.thickLine(w-1, 0, cx+gap+1, neck, Wall)
	s.thickLine(cx-gap-1, neck, 0, h-1, Wall)
	s.thickLine(cx+gap+1, neck, w-1, h-1, Wall)

	// Fill the upper bulb between the funnel walls.
	for y := 1; y < neck-1; y++ {
		for x := 0; x < w; x++ {
			if s.Cell(x, y) != Empty {
				continue
			}
			if insideFunnel(x, y, w, cx, gap, neck) && y < neck*2/3 {
				s.SetCell(x, y, Sand)
			}
		}
	}
}

// insideFunnel reports whether (x, y) lies between the two upper walls.
func insideFunnel(x, y, w, cx, gap, neck int) bool {
	if neck <= 0 {
		return false
	}
	left := (cx - gap - 1) * y / neck
	right := w - 1 - (w-1-(cx+gap+1))*y/neck
	return x > left && x < right
}

// buildPool lays a stone basin on the floor, fills it with water and drops
// an aerated ball of sand above it.
func buildPool(s *Simulation) {
	w, h := s.Width(), s.Height()
	left, right := w/6, w-1-w/6
	top := h - 1 - h/3

	s.rect(left, h-2, right, h-1, Stone)
	s.rect(left, top, left+1, h-1, Stone)
	s.rect(right-1, top, right, h-1, Stone)
	s.rect(left+2, top+h/12, right-2, h-3, Water)

	s.PaintCircle(w/2, h/6, max(h/10, 1), Sand, 0.7)
}

// buildDunes scatters aerated sand patches over a wall floor.
func buildDunes(s *Simulation) {
	w, h := s.Width(), s.Height()
	s.rect(0, h-1, w-1, h-1, Wall)

	count := max(w/24, 1)
	minR, maxR := max(h/20, 1), max(h/8, 2)
	for p := 0; p < count; p++ {
		x := s.paint.IntN(w)
		y := s.paint.IntN(max(h/2, 1))
		radius := minR + s.paint.IntN(maxR-minR+1)
		s.PaintCircle(x, y, radius, Sand, 0.6)
	}
}

func init() {
	for _, name := range SceneNames() {
		scene := name
		core.Register(scene, func(cfg map[string]string) (core.Sim, error) {
			c := FromMap(cfg)
			c.Scene = scene
			sim, err := NewWithConfig(c)
			if err != nil {
				return nil, err
			}
			return sim, nil
		})
	}
}
