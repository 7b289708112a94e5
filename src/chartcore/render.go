package chartcore

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var white = drawing.Color{R: 255, G: 255, B: 255, A: 255}

// RenderPNG rasterizes the scene at the fixed canvas size.
func RenderPNG(sc Scene) (image.Image, error) {
	r, err := chart.PNG(CanvasWidth, CanvasHeight)
	if err != nil {
		return nil, fmt.Errorf("create raster renderer: %w", err)
	}
	if err := draw(r, sc); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("save png: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

// RenderSVG writes the scene as an SVG document.
func RenderSVG(sc Scene, w io.Writer) error {
	r, err := chart.SVG(CanvasWidth, CanvasHeight)
	if err != nil {
		return fmt.Errorf("create svg renderer: %w", err)
	}
	if err := draw(r, sc); err != nil {
		return err
	}
	if err := r.Save(w); err != nil {
		return fmt.Errorf("save svg: %w", err)
	}
	return nil
}

// draw paints one scene onto a renderer. Scene coordinates are plot-space;
// margins shift them onto the canvas here.
func draw(r chart.Renderer, sc Scene) error {
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	// background
	r.SetFillColor(white)
	r.MoveTo(0, 0)
	r.LineTo(CanvasWidth, 0)
	r.LineTo(CanvasWidth, CanvasHeight)
	r.LineTo(0, CanvasHeight)
	r.Close()
	r.Fill()

	// markers under the lines, matching original paint order
	for _, m := range sc.Markers {
		v := RhombusVertices(m.X, m.Y, MarkerSize, MarkerSize)
		r.MoveTo(cx(v[0].X), cy(v[0].Y))
		for _, p := range v[1:] {
			r.LineTo(cx(p.X), cy(p.Y))
		}
		r.Close()
		r.SetFillColor(m.Fill)
		r.SetStrokeColor(m.Stroke)
		r.SetStrokeWidth(MarkerStrokeWidth)
		r.FillStroke()
	}

	for _, pl := range sc.Lines {
		if len(pl.Points) == 0 {
			continue
		}
		r.SetStrokeColor(pl.Stroke)
		r.SetStrokeWidth(pl.StrokeWidth)
		r.MoveTo(cx(pl.Points[0].X), cy(pl.Points[0].Y))
		for _, p := range pl.Points[1:] {
			r.LineTo(cx(p.X), cy(p.Y))
		}
		r.Stroke()
	}

	drawAxes(r, sc, font)

	if sc.HasRef {
		r.SetStrokeColor(RefLineColor)
		r.SetStrokeWidth(1)
		r.SetStrokeDashArray([]float64{5, 5})
		r.MoveTo(cx(sc.RefX), cy(0))
		r.LineTo(cx(sc.RefX), cy(PlotHeight))
		r.Stroke()
		r.SetStrokeDashArray(nil)

		r.SetFont(font)
		r.SetFontSize(AxisFontSize)
		r.SetFontColor(RefLineColor)
		tw := r.MeasureText(sc.RefLabel).Width()
		r.Text(sc.RefLabel, cx(sc.RefX)-tw/2, cy(0)-4)
	}
	return nil
}

func drawAxes(r chart.Renderer, sc Scene, font *truetype.Font) {
	r.SetStrokeColor(AxisColor)
	r.SetStrokeWidth(1)

	// bottom time axis
	r.MoveTo(cx(0), cy(PlotHeight))
	r.LineTo(cx(PlotWidth), cy(PlotHeight))
	r.Stroke()
	r.SetFont(font)
	r.SetFontSize(AxisFontSize)
	r.SetFontColor(AxisColor)
	for _, tk := range sc.XTicks {
		r.SetStrokeColor(AxisColor)
		r.MoveTo(cx(tk.Pos), cy(PlotHeight))
		r.LineTo(cx(tk.Pos), cy(PlotHeight)+5)
		r.Stroke()
		tw := r.MeasureText(tk.Label).Width()
		r.Text(tk.Label, cx(tk.Pos)-tw/2, cy(PlotHeight)+18)
	}

	// left price axis
	r.SetStrokeColor(AxisColor)
	r.MoveTo(cx(0), cy(0))
	r.LineTo(cx(0), cy(PlotHeight))
	r.Stroke()
	for _, tk := range sc.YTicks {
		r.SetStrokeColor(AxisColor)
		r.MoveTo(cx(0)-5, cy(tk.Pos))
		r.LineTo(cx(0), cy(tk.Pos))
		r.Stroke()
		tw := r.MeasureText(tk.Label).Width()
		r.Text(tk.Label, cx(0)-8-tw, cy(tk.Pos)+4)
	}
}

// cx/cy shift plot-space coordinates onto the canvas and round to device
// pixels.
func cx(x float64) int { return MarginLeft + int(math.Round(x)) }
func cy(y float64) int { return MarginTop + int(math.Round(y)) }
