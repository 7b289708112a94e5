package chartdata

import (
	"time"
)

// DateLayout is the day/month/year format used by both input files.
const DateLayout = "02/01/2006"

// Row is one parsed CSV record: column name to string, float64 or nil.
type Row map[string]interface{}

// Point is one discrete fund observation, rendered as a diamond marker.
// A nil Date excludes the point from geometry; the point stays in the slice
// so normalized output keeps a 1:1 correspondence with the input rows.
type Point struct {
	Date       *time.Time
	FundPrice  *float64
	EquityType string
}

// SeriesPoint is one row of the continuous composite/derived dataset.
type SeriesPoint struct {
	Date           *time.Time
	CompositePrice *float64
	DerivedPrice   *float64
}

// ParseDate parses a day/month/year date string. Malformed input degrades to
// nil rather than returning an error.
func ParseDate(s string) *time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// CleanNulls replaces "?" and "N/A" cells with nil, in place, and returns the
// same slice. The continuous dataset uses these tokens for missing prices.
func CleanNulls(rows []Row) []Row {
	for _, r := range rows {
		for k, v := range r {
			if s, ok := v.(string); ok && (s == "?" || s == "N/A") {
				r[k] = nil
			}
		}
	}
	return rows
}

// NormalizeMarkers converts raw rows into marker points, preserving order.
func NormalizeMarkers(rows []Row) []Point {
	out := make([]Point, 0, len(rows))
	for _, r := range rows {
		p := Point{
			Date:      dateField(r, "date"),
			FundPrice: numField(r, "fund_price"),
		}
		if s, ok := r["equity_type"].(string); ok {
			p.EquityType = s
		}
		out = append(out, p)
	}
	return out
}

// NormalizeSeries converts raw rows into continuous series points.
func NormalizeSeries(rows []Row) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, SeriesPoint{
			Date:           dateField(r, "date"),
			CompositePrice: numField(r, "composite_price"),
			DerivedPrice:   numField(r, "derived_price"),
		})
	}
	return out
}

// CompositeSeries filters to points with a date and a composite price.
func CompositeSeries(points []SeriesPoint) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(points))
	for _, p := range points {
		if p.Date != nil && p.CompositePrice != nil {
			out = append(out, p)
		}
	}
	return out
}

// DerivedSeries filters to points with a date and a derived price.
func DerivedSeries(points []SeriesPoint) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(points))
	for _, p := range points {
		if p.Date != nil && p.DerivedPrice != nil {
			out = append(out, p)
		}
	}
	return out
}

func dateField(r Row, key string) *time.Time {
	s, ok := r[key].(string)
	if !ok {
		return nil
	}
	return ParseDate(s)
}

func numField(r Row, key string) *float64 {
	switch v := r[key].(type) {
	case float64:
		f := v
		return &f
	case int:
		f := float64(v)
		return &f
	}
	return nil
}
