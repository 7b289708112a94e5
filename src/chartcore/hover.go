package chartcore

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/diaanaelena/demo-charts/src/chartdata"
)

// Tooltip placement and fade timing, shared by both tooltip panels.
const (
	TooltipOffsetX = 10
	TooltipOffsetY = -28
	TooltipOpacity = 0.9

	TooltipFadeIn  = 200 * time.Millisecond
	TooltipFadeOut = 500 * time.Millisecond
)

// Curve identifies which continuous line the pointer is over.
type Curve int

const (
	CurveComposite Curve = iota
	CurveDerived
)

// MarkerTooltip is the content shown when hovering a diamond marker.
type MarkerTooltip struct {
	Date       time.Time
	Price      float64
	EquityType string
}

// CurveTooltip is the content shown when hovering a line. Both price fields
// are reported even though a given curve only owns one of them.
type CurveTooltip struct {
	Date           time.Time
	CompositePrice *float64
	DerivedPrice   *float64
}

// HitState resolves hover queries for one data snapshot. It holds explicit
// references to the current scales and point slices; a new upload replaces
// the whole value, so handlers never read stale captured state.
type HitState struct {
	Scales    ScalePair
	Markers   []Marker
	Lines     []Polyline
	Composite []chartdata.SeriesPoint
	Derived   []chartdata.SeriesPoint
}

// NewHitState builds the hit-test view over the scene produced from the same
// snapshot.
func NewHitState(sc Scene, scales ScalePair, composite, derived []chartdata.SeriesPoint) *HitState {
	return &HitState{
		Scales:    scales,
		Markers:   sc.Markers,
		Lines:     sc.Lines,
		Composite: composite,
		Derived:   derived,
	}
}

// curveHitSlop widens a path's hover band a little beyond its stroke.
const curveHitSlop = 3

// CurveAt reports which line path lies under (px, py) in plot pixel space.
func (h *HitState) CurveAt(px, py float64) (Curve, bool) {
	for _, pl := range h.Lines {
		band := pl.StrokeWidth/2 + curveHitSlop
		if len(pl.Points) == 1 {
			p := pl.Points[0]
			if math.Hypot(px-p.X, py-p.Y) <= band {
				return pl.Curve, true
			}
			continue
		}
		for i := 1; i < len(pl.Points); i++ {
			if pointSegmentDist(px, py, pl.Points[i-1], pl.Points[i]) <= band {
				return pl.Curve, true
			}
		}
	}
	return 0, false
}

// pointSegmentDist is the distance from (px, py) to the segment a-b.
func pointSegmentDist(px, py float64, a, b XY) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-a.X, py-a.Y)
	}
	t := ((px-a.X)*dx + (py-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(a.X+t*dx), py-(a.Y+t*dy))
}

// MarkerAt returns the tooltip for the marker under (px, py) in plot pixel
// space. Later-drawn markers win when diamonds overlap.
func (h *HitState) MarkerAt(px, py float64) (MarkerTooltip, bool) {
	for i := len(h.Markers) - 1; i >= 0; i-- {
		m := h.Markers[i]
		if InRhombus(px, py, m.X, m.Y, MarkerSize, MarkerSize) {
			return MarkerTooltip{Date: m.Date, Price: m.Price, EquityType: m.EquityType}, true
		}
	}
	return MarkerTooltip{}, false
}

// CurveNearest inverts the pixel X to a time value and resolves the nearest
// point at or before it on the hovered curve. A pointer left of the first
// point yields no tooltip.
func (h *HitState) CurveNearest(curve Curve, px float64) (CurveTooltip, bool) {
	points := h.Composite
	if curve == CurveDerived {
		points = h.Derived
	}
	idx := NearestIndexLeft(points, h.Scales.X.Invert(px))
	if idx < 0 {
		return CurveTooltip{}, false
	}
	p := points[idx]
	return CurveTooltip{
		Date:           *p.Date,
		CompositePrice: p.CompositePrice,
		DerivedPrice:   p.DerivedPrice,
	}, true
}

// NearestIndexLeft returns the index of the last point whose date is at or
// before t, or -1 when t precedes the whole series. Points must be sorted by
// date ascending.
func NearestIndexLeft(points []chartdata.SeriesPoint, t time.Time) int {
	n := sort.Search(len(points), func(i int) bool {
		return points[i].Date.After(t)
	})
	return n - 1
}

// FormatMarkerTooltip renders the marker panel body.
func FormatMarkerTooltip(tt MarkerTooltip) string {
	return "Date: " + tt.Date.Format(chartdata.DateLayout) +
		"\nPrice: " + formatPrice(&tt.Price) +
		"\nType: " + tt.EquityType
}

// FormatCurveTooltip renders the curve panel body.
func FormatCurveTooltip(tt CurveTooltip) string {
	return "Date: " + tt.Date.Format(chartdata.DateLayout) +
		"\nComposite price: " + formatPrice(tt.CompositePrice) +
		"\nDerived price: " + formatPrice(tt.DerivedPrice)
}

func formatPrice(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
