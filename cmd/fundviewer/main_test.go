package main

import (
	"image/color"
	"testing"

	fyne "fyne.io/fyne/v2"

	"github.com/diaanaelena/demo-charts/src/chartcore"
)

func TestPlotCoordsUnscaledView(t *testing.T) {
	// View matches the canvas exactly, so plot coords are just margin-shifted.
	size := fyne.NewSize(chartcore.CanvasWidth, chartcore.CanvasHeight)
	px, py, inside := plotCoords(fyne.NewPos(chartcore.MarginLeft, chartcore.MarginTop), size)
	if !inside {
		t.Fatalf("pointer on the plot origin must be inside")
	}
	if px != 0 || py != 0 {
		t.Fatalf("plot coords = (%v,%v), want (0,0)", px, py)
	}
}

func TestPlotCoordsLetterboxed(t *testing.T) {
	// View twice as wide as needed: image is centered with 500px bars either side.
	size := fyne.NewSize(2*chartcore.CanvasWidth, chartcore.CanvasHeight)
	px, py, inside := plotCoords(fyne.NewPos(500+chartcore.MarginLeft, chartcore.MarginTop), size)
	if !inside {
		t.Fatalf("pointer over the drawn image must be inside")
	}
	if px != 0 || py != 0 {
		t.Fatalf("plot coords = (%v,%v), want (0,0)", px, py)
	}
	if _, _, inside := plotCoords(fyne.NewPos(10, 10), size); inside {
		t.Fatalf("pointer in the letterbox bar must be outside")
	}
}

func TestPlaceholderSizeAndBackground(t *testing.T) {
	img := placeholder()
	b := img.Bounds()
	if b.Dx() != chartcore.CanvasWidth || b.Dy() != chartcore.CanvasHeight {
		t.Fatalf("placeholder size = %dx%d", b.Dx(), b.Dy())
	}
	if got := img.At(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("corner pixel = %v, want white", got)
	}
}
