package sand

import "testing"

func TestMaterialIDsAreFixed(t *testing.T) {
	tests := []struct {
		m     Material
		id    uint8
		name  string
		class Class
	}{
		{Empty, 0, "empty", ClassEmpty},
		{Wall, 1, "wall", ClassStatic},
		{Sand, 2, "sand", ClassGranular},
		{Water, 3, "water", ClassLiquid},
		{Stone, 4, "stone", ClassStatic},
	}
	for _, tt := range tests {
		if uint8(tt.m) != tt.id {
			t.Errorf("%s has id %d, expected %d", tt.name, tt.m, tt.id)
		}
		props, ok := Lookup(tt.m)
		if !ok {
			t.Fatalf("Lookup(%d) failed", tt.id)
		}
		if props.Name != tt.name || props.Class != tt.class {
			t.Errorf("Lookup(%d) = %+v", tt.id, props)
		}
		if parsed, ok := ParseMaterial(" " + tt.name + " "); !ok || parsed != tt.m {
			t.Errorf("ParseMaterial(%q) = %v, %v", tt.name, parsed, ok)
		}
	}
	if len(Materials()) != len(Palette()) {
		t.Fatalf("palette has %d entries for %d materials", len(Palette()), len(Materials()))
	}
}

func TestUnknownMaterialsBehaveAsObstacles(t *testing.T) {
	if Boundary.Valid() {
		t.Fatal("boundary must not be paintable")
	}
	if _, ok := Lookup(Material(5)); ok {
		t.Fatal("Lookup(5) should fail")
	}
	if classOf(Boundary) != ClassStatic {
		t.Fatalf("boundary class = %v, expected static", classOf(Boundary))
	}
	if _, ok := ParseMaterial("lava"); ok {
		t.Fatal("ParseMaterial(lava) should fail")
	}
	if Boundary.String() != "boundary" || Material(9).String() != "unknown" {
		t.Fatal("unexpected names for non-table materials")
	}
}

func TestSandOutranksWater(t *testing.T) {
	if rankOf(Sand) <= rankOf(Water) {
		t.Fatalf("sand rank %d must exceed water rank %d", rankOf(Sand), rankOf(Water))
	}
	if dispersionOf(Water) <= 0 {
		t.Fatal("water needs a positive dispersion")
	}
	if dispersionOf(Sand) != 0 {
		t.Fatal("only liquids disperse")
	}
}
