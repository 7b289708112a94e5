package chartcore

import (
	"strings"
	"testing"
)

func TestRhombusVertices(t *testing.T) {
	v := RhombusVertices(100, 50, 10, 10)
	want := [4]XY{{100, 45}, {105, 50}, {100, 55}, {95, 50}}
	if v != want {
		t.Fatalf("vertices = %v, want %v", v, want)
	}
}

func TestRhombusPath(t *testing.T) {
	p := RhombusPath(100, 50, 10, 10)
	if !strings.HasPrefix(p, "M 100 45") || !strings.HasSuffix(p, "Z") {
		t.Fatalf("unexpected path %q", p)
	}
	if strings.Count(p, "L") != 3 {
		t.Fatalf("diamond path needs three line commands: %q", p)
	}
}

func TestInRhombus(t *testing.T) {
	cases := []struct {
		px, py float64
		want   bool
	}{
		{100, 50, true},  // center
		{100, 45, true},  // top vertex
		{105, 50, true},  // right vertex
		{103, 53, false}, // inside bounding box, outside diamond
		{110, 50, false}, // past right vertex
	}
	for _, c := range cases {
		if got := InRhombus(c.px, c.py, 100, 50, 10, 10); got != c.want {
			t.Fatalf("InRhombus(%v,%v) = %v, want %v", c.px, c.py, got, c.want)
		}
	}
}

func TestLayoutConstants(t *testing.T) {
	if PlotWidth != 910 || PlotHeight != 320 {
		t.Fatalf("plot area = %dx%d, want 910x320", PlotWidth, PlotHeight)
	}
}
