package sand

import (
	"errors"
	"slices"
	"testing"
)

func TestRebuildPixels(t *testing.T) {
	sim := newTestSim(t, 3, 1, 1)
	sim.SetCell(0, 0, Sand)
	sim.SetCell(2, 0, Water)
	sim.RebuildPixels()

	buf, err := sim.Pixels().Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	var want []byte
	for _, m := range []Material{Sand, Empty, Water} {
		c := Palette()[m]
		want = append(want, c.R, c.G, c.B, c.A)
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}

func TestRebuildPixelsIsPure(t *testing.T) {
	sim := newTestSim(t, 16, 16, 2)
	sim.PaintCircle(8, 8, 5, Sand, 0.5)
	before := slices.Clone(sim.Cells())

	sim.RebuildPixels()
	first, err := sim.Pixels().Bytes()
	if err != nil {
		t.Fatal(err)
	}
	first = slices.Clone(first)
	sim.RebuildPixels()
	second, _ := sim.Pixels().Bytes()

	if !slices.Equal(first, second) {
		t.Fatal("rebuilding twice produced different pixels")
	}
	if !slices.Equal(before, sim.Cells()) {
		t.Fatal("RebuildPixels modified the grid")
	}
}

func TestPixelViewGoesStale(t *testing.T) {
	sim := newTestSim(t, 4, 4, 1)
	mutations := []struct {
		name string
		fn   func()
	}{
		{"step", func() { sim.Step(1) }},
		{"set cell", func() { sim.SetCell(1, 1, Sand) }},
		{"paint", func() { sim.Paint(2, 2, 1, Water) }},
		{"clear", func() { sim.Clear() }},
		{"reset", func() { sim.Reset(3) }},
	}
	for _, m := range mutations {
		view := sim.Pixels()
		if _, err := view.Bytes(); err != nil {
			t.Fatalf("%s: fresh view returned %v", m.name, err)
		}
		m.fn()
		if !view.Stale() {
			t.Fatalf("%s: view should be stale", m.name)
		}
		if _, err := view.Bytes(); !errors.Is(err, ErrStaleView) {
			t.Fatalf("%s: expected ErrStaleView, got %v", m.name, err)
		}
		if _, err := sim.Pixels().Bytes(); err != nil {
			t.Fatalf("%s: reacquired view returned %v", m.name, err)
		}
	}

	var zero PixelView
	if !zero.Stale() {
		t.Fatal("zero PixelView must report stale")
	}
}
