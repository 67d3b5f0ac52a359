package sand

import (
	"errors"
	"testing"
)

func newTestSim(t *testing.T, w, h int, seed int64) *Simulation {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = seed
	sim, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig(%dx%d): %v", w, h, err)
	}
	return sim
}

func TestNewStartsEmpty(t *testing.T) {
	sim, err := New(8, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sim.Width() != 8 || sim.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 8x6", sim.Width(), sim.Height())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if got := sim.Cell(x, y); got != Empty {
				t.Fatalf("cell (%d,%d) = %v, expected empty", x, y, got)
			}
		}
	}
	if sim.Frame() != 0 || sim.Tick() != 0 {
		t.Fatalf("tick counter starts at %d, expected 0", sim.Frame())
	}
	if got := sim.Pixels().Len(); got != 8*6*4 {
		t.Fatalf("pixel buffer length %d, expected %d", got, 8*6*4)
	}
}

func TestNewRejectsInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, 3},
		{"too many cells", MaxCells, 2},
	}
	for _, tt := range tests {
		sim, err := New(tt.w, tt.h)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%s: expected ErrInvalidSize, got %v", tt.name, err)
		}
		if sim != nil {
			t.Errorf("%s: expected nil simulation on error", tt.name)
		}
	}
}

func TestNewRejectsUnknownScene(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene = "volcano"
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("expected ErrUnknownScene, got %v", err)
	}
}

func TestCellOutOfRangeIsBoundary(t *testing.T) {
	sim := newTestSim(t, 4, 4, 1)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, -100}} {
		if got := sim.Cell(p[0], p[1]); got != Boundary {
			t.Fatalf("Cell(%d,%d) = %v, expected boundary", p[0], p[1], got)
		}
	}
	sim.SetCell(-1, 2, Sand)
	sim.SetCell(2, 4, Sand)
	if n := sim.CountMat(Sand); n != 0 {
		t.Fatalf("out-of-range SetCell wrote %d cells", n)
	}
}

func TestUnknownMaterialRejected(t *testing.T) {
	sim := newTestSim(t, 4, 4, 1)
	view := sim.Pixels()

	sim.SetCell(1, 1, Material(9))
	sim.SetCell(1, 1, Boundary)
	sim.PaintCircle(2, 2, 3, Material(200), 1)

	for i, c := range sim.Cells() {
		if c != uint8(Empty) {
			t.Fatalf("cell %d = %d after rejected writes", i, c)
		}
	}
	if view.Stale() {
		t.Fatal("rejected writes must not invalidate pixel views")
	}
	if n := sim.CountMat(Material(9)); n != 0 {
		t.Fatalf("CountMat(unknown) = %d, expected 0", n)
	}
}

func TestCounterCorrectness(t *testing.T) {
	sim := newTestSim(t, 20, 20, 3)
	const k = 37
	for i := 0; i < k; i++ {
		sim.SetCell(i%20, i/20*3, Sand)
	}
	if got := sim.CountMat(Sand); got != k {
		t.Fatalf("CountMat(Sand) = %d, expected %d", got, k)
	}
	if got := sim.CountMat(Empty); got != 20*20-k {
		t.Fatalf("CountMat(Empty) = %d, expected %d", got, 20*20-k)
	}

	counts := sim.Counts()
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 20*20 {
		t.Fatalf("Counts() sums to %d, expected %d", total, 20*20)
	}
	if counts[Sand] != k {
		t.Fatalf("Counts()[Sand] = %d, expected %d", counts[Sand], k)
	}
}

func TestTickCounter(t *testing.T) {
	sim := newTestSim(t, 4, 4, 1)
	sim.Step(1)
	sim.Step(5)
	sim.Step(0)
	if got := sim.Tick(); got != 6 {
		t.Fatalf("Tick() = %d, expected 6", got)
	}
	sim.Reset(9)
	if got := sim.Frame(); got != 0 {
		t.Fatalf("Frame() after Reset = %d, expected 0", got)
	}
}

func TestParametersReportCounts(t *testing.T) {
	sim := newTestSim(t, 10, 10, 1)
	sim.Paint(5, 5, 2, Water)

	snap := sim.Parameters()
	p, ok := snap.Lookup("count_water")
	if !ok {
		t.Fatal("expected count_water parameter")
	}
	if p.Value != "13" {
		t.Fatalf("count_water = %s, expected 13", p.Value)
	}
	if _, ok := snap.Lookup("count_empty"); ok {
		t.Fatal("empty cells should not be tallied")
	}
	if p, _ := snap.Lookup("scene"); p.Value != SceneSandbox {
		t.Fatalf("scene = %q, expected %q", p.Value, SceneSandbox)
	}
}
