package chartcore

import (
	"time"

	"github.com/diaanaelena/demo-charts/src/chartdata"
)

// MaxSeriesGap is the largest date gap a line may span. Three 30-day months,
// not calendar months: the original pipeline compared millisecond deltas.
const MaxSeriesGap = 3 * 30 * 24 * time.Hour

// Segment is a maximal run of a continuous series with no internal gap above
// the threshold.
type Segment []chartdata.SeriesPoint

// SegmentByGap splits a chronologically ordered series into segments. A new
// segment starts whenever the gap to the previous point exceeds threshold.
// Concatenating the result in order reproduces the input exactly.
func SegmentByGap(points []chartdata.SeriesPoint, threshold time.Duration) []Segment {
	var segments []Segment
	var current Segment
	for i, p := range points {
		if i > 0 && p.Date.Sub(*points[i-1].Date) > threshold {
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}
		}
		current = append(current, p)
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}
