package chartcore

import (
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/diaanaelena/demo-charts/src/chartdata"
)

// Stroke colors of the two continuous lines.
var (
	CompositeLineColor = drawing.ColorFromHex("8da0cb")
	DerivedLineColor   = drawing.ColorFromHex("e78ac3")
	AxisColor          = drawing.ColorFromHex("888888")
	RefLineColor       = drawing.Color{R: 0, G: 0, B: 0, A: 255}
)

const (
	CompositeStrokeWidth = 4
	DerivedStrokeWidth   = 2
	MarkerStrokeWidth    = 1.5
	AxisFontSize         = 10
)

// Config carries the explicit category-to-color mapping for markers, so the
// rendered colors do not depend on data arrival order. Categories missing
// from the map cycle through Palette in first-seen order.
type Config struct {
	MarkerColors map[string]drawing.Color
	Palette      []drawing.Color
}

// DefaultConfig maps the two known equity types onto the stable palette.
func DefaultConfig() Config {
	return Config{
		MarkerColors: map[string]drawing.Color{
			"Common":    drawing.ColorFromHex("66c2a5"),
			"Preferred": drawing.ColorFromHex("fc8d62"),
		},
		Palette: []drawing.Color{
			drawing.ColorFromHex("66c2a5"),
			drawing.ColorFromHex("fc8d62"),
		},
	}
}

// Darken scales each channel down, approximating a two-step darker() of the
// source palette for marker outlines.
func Darken(c drawing.Color) drawing.Color {
	return drawing.Color{
		R: uint8(float64(c.R) * 0.49),
		G: uint8(float64(c.G) * 0.49),
		B: uint8(float64(c.B) * 0.49),
		A: c.A,
	}
}

// Marker is one diamond in plot pixel space, with the observation it shows.
type Marker struct {
	X, Y   float64
	Fill   drawing.Color
	Stroke drawing.Color

	Date       time.Time
	Price      float64
	EquityType string
}

// Polyline is one line path in plot pixel space. Curve records which logical
// series the path belongs to, for hover resolution.
type Polyline struct {
	Points      []XY
	Stroke      drawing.Color
	StrokeWidth float64
	Curve       Curve
}

// Tick is one axis tick: pixel position along the axis plus its label.
type Tick struct {
	Pos   float64
	Label string
}

// Scene is the complete drawable chart for one render pass. It is a value:
// a new upload rebuilds the scene wholesale, nothing is patched in place.
type Scene struct {
	Markers []Marker
	Lines   []Polyline
	XTicks  []Tick
	YTicks  []Tick

	// Dashed vertical marker at the earliest plotted date.
	RefX     float64
	RefLabel string
	HasRef   bool
}

// BuildScene composes markers, the segmented composite series and the full
// derived series into a scene using the given scales. Pure: identical inputs
// produce identical scenes.
func BuildScene(markers []chartdata.Point, composite, derived []chartdata.SeriesPoint, sp ScalePair, cfg Config) Scene {
	var sc Scene

	extra := map[string]drawing.Color{}
	for _, m := range markers {
		if m.Date == nil || m.FundPrice == nil {
			continue
		}
		fill := markerColor(cfg, m.EquityType, extra)
		sc.Markers = append(sc.Markers, Marker{
			X:          sp.X.Pos(*m.Date),
			Y:          sp.Y.Pos(*m.FundPrice),
			Fill:       fill,
			Stroke:     Darken(fill),
			Date:       *m.Date,
			Price:      *m.FundPrice,
			EquityType: m.EquityType,
		})
	}

	// Composite segments draw independently so gaps stay visible; the
	// derived series draws as a single path.
	for _, seg := range SegmentByGap(composite, MaxSeriesGap) {
		sc.Lines = append(sc.Lines, buildLine(seg, sp, compositeY, CompositeLineColor, CompositeStrokeWidth, CurveComposite))
	}
	if len(derived) > 0 {
		sc.Lines = append(sc.Lines, buildLine(derived, sp, derivedY, DerivedLineColor, DerivedStrokeWidth, CurveDerived))
	}

	sc.XTicks = monthTicks(sp.X)
	sc.YTicks = priceTicks(sp.Y)

	if first, ok := EarliestDate(composite, derived); ok {
		sc.HasRef = true
		sc.RefX = sp.X.Pos(first)
		sc.RefLabel = first.Format(chartdata.DateLayout)
	}
	return sc
}

func compositeY(p chartdata.SeriesPoint) *float64 { return p.CompositePrice }
func derivedY(p chartdata.SeriesPoint) *float64   { return p.DerivedPrice }

// buildLine maps series points to pixels. A nil price draws at the zero
// line so the path stays well formed; only segment boundaries produce a
// visible break.
func buildLine(points []chartdata.SeriesPoint, sp ScalePair, price func(chartdata.SeriesPoint) *float64, stroke drawing.Color, width float64, curve Curve) Polyline {
	pl := Polyline{Stroke: stroke, StrokeWidth: width, Curve: curve}
	for _, p := range points {
		if p.Date == nil {
			continue
		}
		y := sp.Y.Pos(0)
		if v := price(p); v != nil {
			y = sp.Y.Pos(*v)
		}
		pl.Points = append(pl.Points, XY{X: sp.X.Pos(*p.Date), Y: y})
	}
	return pl
}

func markerColor(cfg Config, equityType string, extra map[string]drawing.Color) drawing.Color {
	if c, ok := cfg.MarkerColors[equityType]; ok {
		return c
	}
	if c, ok := extra[equityType]; ok {
		return c
	}
	if len(cfg.Palette) == 0 {
		return drawing.ColorBlack
	}
	// Unlisted categories cycle through the palette in first-seen order.
	c := cfg.Palette[len(extra)%len(cfg.Palette)]
	extra[equityType] = c
	return c
}

// monthTicks places a tick on every fifth calendar month (month index
// divisible by five: January, June, November) inside the X domain, labeled
// Jan-2006 style.
func monthTicks(xs TimeScale) []Tick {
	var out []Tick
	t := time.Date(xs.DomainMin.Year(), xs.DomainMin.Month(), 1, 0, 0, 0, 0, xs.DomainMin.Location())
	if t.Before(xs.DomainMin) {
		t = t.AddDate(0, 1, 0)
	}
	for !t.After(xs.DomainMax) {
		if int(t.Month()-1)%5 == 0 {
			out = append(out, Tick{Pos: xs.Pos(t), Label: t.Format("Jan-2006")})
		}
		t = t.AddDate(0, 1, 0)
	}
	return out
}
