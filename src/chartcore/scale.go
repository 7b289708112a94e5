package chartcore

import (
	"time"

	"github.com/diaanaelena/demo-charts/src/chartdata"
)

// YDomainFloor guarantees a minimum Y span so low-valued datasets still get
// a readable vertical scale.
const YDomainFloor = 150

// TimeScale maps a time domain linearly onto a pixel range.
type TimeScale struct {
	DomainMin time.Time
	DomainMax time.Time
	RangeMin  float64
	RangeMax  float64
}

// Pos maps t into pixel space. A degenerate domain collapses to RangeMin.
func (s TimeScale) Pos(t time.Time) float64 {
	span := s.DomainMax.Sub(s.DomainMin)
	if span <= 0 {
		return s.RangeMin
	}
	f := float64(t.Sub(s.DomainMin)) / float64(span)
	return s.RangeMin + f*(s.RangeMax-s.RangeMin)
}

// Invert maps a pixel position back to a time value.
func (s TimeScale) Invert(px float64) time.Time {
	width := s.RangeMax - s.RangeMin
	if width == 0 {
		return s.DomainMin
	}
	f := (px - s.RangeMin) / width
	return s.DomainMin.Add(time.Duration(f * float64(s.DomainMax.Sub(s.DomainMin))))
}

// LinearScale maps a numeric domain linearly onto a pixel range. For the Y
// axis the range is inverted (RangeMin = chart bottom, RangeMax = top).
type LinearScale struct {
	DomainMin float64
	DomainMax float64
	RangeMin  float64
	RangeMax  float64
}

// Pos maps v into pixel space.
func (s LinearScale) Pos(v float64) float64 {
	span := s.DomainMax - s.DomainMin
	if span == 0 {
		return s.RangeMin
	}
	f := (v - s.DomainMin) / span
	return s.RangeMin + f*(s.RangeMax-s.RangeMin)
}

// ScalePair is the coordinate mapping for one render pass.
type ScalePair struct {
	X TimeScale
	Y LinearScale
}

// BuildScales derives the scale pair from the two continuous series. The X
// domain spans [min date − 6 calendar months, max date] over both series; the
// Y domain spans [0, max(composite max, derived max, YDomainFloor)]. Null
// prices do not contribute to the Y maximum. Returns ok=false when neither
// series has a dated point; the caller must not render in that case.
func BuildScales(composite, derived []chartdata.SeriesPoint) (ScalePair, bool) {
	var minDate, maxDate time.Time
	have := false
	scan := func(pts []chartdata.SeriesPoint) {
		for _, p := range pts {
			if p.Date == nil {
				continue
			}
			d := *p.Date
			if !have {
				minDate, maxDate = d, d
				have = true
				continue
			}
			if d.Before(minDate) {
				minDate = d
			}
			if d.After(maxDate) {
				maxDate = d
			}
		}
	}
	scan(composite)
	scan(derived)
	if !have {
		return ScalePair{}, false
	}

	maxY := float64(YDomainFloor)
	for _, p := range composite {
		if p.CompositePrice != nil && *p.CompositePrice > maxY {
			maxY = *p.CompositePrice
		}
	}
	for _, p := range derived {
		if p.DerivedPrice != nil && *p.DerivedPrice > maxY {
			maxY = *p.DerivedPrice
		}
	}

	return ScalePair{
		X: TimeScale{
			DomainMin: minDate.AddDate(0, -6, 0),
			DomainMax: maxDate,
			RangeMin:  0,
			RangeMax:  PlotWidth,
		},
		Y: LinearScale{
			DomainMin: 0,
			DomainMax: maxY,
			RangeMin:  PlotHeight,
			RangeMax:  0,
		},
	}, true
}

// EarliestDate returns the earliest date across both continuous series, for
// the reference marker. ok=false when no dated point exists.
func EarliestDate(composite, derived []chartdata.SeriesPoint) (time.Time, bool) {
	var min time.Time
	have := false
	for _, pts := range [][]chartdata.SeriesPoint{composite, derived} {
		for _, p := range pts {
			if p.Date == nil {
				continue
			}
			if !have || p.Date.Before(min) {
				min = *p.Date
				have = true
			}
		}
	}
	return min, have
}
