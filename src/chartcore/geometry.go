package chartcore

import "fmt"

// Fixed chart layout. The canvas is 1000x400; margins leave a 910x320 plot.
const (
	CanvasWidth  = 1000
	CanvasHeight = 400

	MarginTop    = 20
	MarginRight  = 30
	MarginBottom = 60
	MarginLeft   = 60

	PlotWidth  = CanvasWidth - MarginLeft - MarginRight
	PlotHeight = CanvasHeight - MarginTop - MarginBottom

	// MarkerSize is the height and width of a diamond marker.
	MarkerSize = 10
)

// XY is one point in plot pixel space.
type XY struct {
	X, Y float64
}

// RhombusVertices returns the four corners of a diamond centered at (x, y):
// top, right, bottom, left.
func RhombusVertices(x, y, height, width float64) [4]XY {
	return [4]XY{
		{x, y - height/2},
		{x + width/2, y},
		{x, y + height/2},
		{x - width/2, y},
	}
}

// RhombusPath renders the diamond outline as an SVG path string.
func RhombusPath(x, y, height, width float64) string {
	v := RhombusVertices(x, y, height, width)
	return fmt.Sprintf("M %g %g L %g %g L %g %g L %g %g Z",
		v[0].X, v[0].Y, v[1].X, v[1].Y, v[2].X, v[2].Y, v[3].X, v[3].Y)
}

// InRhombus reports whether (px, py) falls inside a diamond centered at
// (x, y). The diamond is the |dx|/(w/2) + |dy|/(h/2) <= 1 region.
func InRhombus(px, py, x, y, height, width float64) bool {
	dx := px - x
	dy := py - y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx/(width/2)+dy/(height/2) <= 1
}
