package main

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/diaanaelena/demo-charts/src/chartcore"
)

// placeholder renders the blank canvas shown until both datasets are loaded.
func placeholder() image.Image {
	w, h := chartcore.CanvasWidth, chartcore.CanvasHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	text := "Upload both datasets to see the chart"
	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 120, G: 120, B: 120, A: 255}),
		Face: face,
	}
	tw := dr.MeasureString(text).Ceil()
	x := (w - tw) / 2
	y := h/2 + face.Metrics().Ascent.Ceil()/2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return img
}
