package app

import (
	"testing"

	"sandfall/internal/sims/sand"
)

func TestMaterialForDigit(t *testing.T) {
	tests := []struct {
		digit int
		want  sand.Material
		ok    bool
	}{
		{0, sand.Empty, true},
		{1, sand.Wall, true},
		{2, sand.Sand, true},
		{3, sand.Water, true},
		{4, sand.Stone, true},
		{5, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := materialForDigit(tt.digit)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("digit %d: got %v,%v expected %v,%v", tt.digit, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{7, 3, 1, 0, true},
		{39, 19, 9, 4, true},
		{40, 0, 0, 0, false},
		{0, 20, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := cellAt(tt.px, tt.py, 4, 10, 5)
		if ok != tt.ok || (ok && (x != tt.x || y != tt.y)) {
			t.Errorf("cellAt(%d,%d) = %d,%d,%v expected %d,%d,%v", tt.px, tt.py, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
	if _, _, ok := cellAt(1, 1, 0, 10, 10); ok {
		t.Error("zero scale must not map")
	}
}

func TestStrokeCells(t *testing.T) {
	pts := strokeCells(0, 0, 10, 0, 2)
	if len(pts) != 5 {
		t.Fatalf("expected 5 samples, got %v", pts)
	}
	if pts[len(pts)-1] != [2]int{10, 0} {
		t.Fatalf("stroke must end at the cursor, got %v", pts[len(pts)-1])
	}
	if got := strokeCells(3, 3, 3, 3, 1); len(got) != 1 || got[0] != [2]int{3, 3} {
		t.Fatalf("stationary stroke = %v", got)
	}
}
