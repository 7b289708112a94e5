package chartcore

import (
	"math"
	"testing"
	"time"

	"github.com/diaanaelena/demo-charts/src/chartdata"
)

func sp(t time.Time, composite, derived *float64) chartdata.SeriesPoint {
	return chartdata.SeriesPoint{Date: &t, CompositePrice: composite, DerivedPrice: derived}
}

func fp(v float64) *float64 { return &v }

func TestBuildScalesEmpty(t *testing.T) {
	if _, ok := BuildScales(nil, nil); ok {
		t.Fatalf("no dated points should report ok=false")
	}
}

func TestBuildScalesXDomainPadding(t *testing.T) {
	d := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	scales, ok := BuildScales([]chartdata.SeriesPoint{sp(d, fp(10), nil)}, nil)
	if !ok {
		t.Fatalf("expected scales")
	}
	want := time.Date(2019, 7, 15, 0, 0, 0, 0, time.UTC)
	if !scales.X.DomainMin.Equal(want) {
		t.Fatalf("left edge: got %v want %v", scales.X.DomainMin, want)
	}
}

func TestBuildScalesEndpointMapping(t *testing.T) {
	d1 := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC)
	scales, ok := BuildScales([]chartdata.SeriesPoint{sp(d1, fp(200), nil), sp(d2, fp(100), nil)}, nil)
	if !ok {
		t.Fatalf("expected scales")
	}
	if got := scales.X.Pos(scales.X.DomainMin); got != 0 {
		t.Fatalf("xScale(domain min) = %v, want 0", got)
	}
	if got := scales.X.Pos(d2); math.Abs(got-PlotWidth) > 1e-9 {
		t.Fatalf("xScale(max date) = %v, want %d", got, PlotWidth)
	}
	if got := scales.Y.Pos(0); got != PlotHeight {
		t.Fatalf("yScale(0) = %v, want chart bottom %d", got, PlotHeight)
	}
	if got := scales.Y.Pos(200); got != 0 {
		t.Fatalf("yScale(max) = %v, want chart top 0", got)
	}
}

func TestBuildScalesYFloor(t *testing.T) {
	d := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	scales, ok := BuildScales(
		[]chartdata.SeriesPoint{sp(d, fp(80), nil)},
		[]chartdata.SeriesPoint{sp(d, nil, fp(40))},
	)
	if !ok {
		t.Fatalf("expected scales")
	}
	if scales.Y.DomainMax != YDomainFloor {
		t.Fatalf("Y domain max = %v, want floor %d", scales.Y.DomainMax, YDomainFloor)
	}
}

func TestBuildScalesMaxAboveFloor(t *testing.T) {
	d := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	scales, _ := BuildScales([]chartdata.SeriesPoint{sp(d, fp(480), nil)}, nil)
	if scales.Y.DomainMax != 480 {
		t.Fatalf("Y domain max = %v, want 480", scales.Y.DomainMax)
	}
}

func TestBuildScalesNullPriceExcludedFromMax(t *testing.T) {
	d := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	// A dated point with nil price widens the X domain but not the Y max.
	scales, ok := BuildScales([]chartdata.SeriesPoint{sp(d, nil, nil)}, nil)
	if !ok {
		t.Fatalf("dated point should be enough for scales")
	}
	if scales.Y.DomainMax != YDomainFloor {
		t.Fatalf("nil prices must not affect Y max, got %v", scales.Y.DomainMax)
	}
}

func TestTimeScaleInvertRoundTrip(t *testing.T) {
	d1 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	s := TimeScale{DomainMin: d1, DomainMax: d2, RangeMin: 0, RangeMax: PlotWidth}
	mid := d1.Add(d2.Sub(d1) / 2)
	got := s.Invert(s.Pos(mid))
	if got.Sub(mid) > time.Second || mid.Sub(got) > time.Second {
		t.Fatalf("invert(pos(t)) drifted: %v vs %v", got, mid)
	}
}

func TestEarliestDate(t *testing.T) {
	d1 := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	first, ok := EarliestDate(
		[]chartdata.SeriesPoint{sp(d1, fp(1), nil)},
		[]chartdata.SeriesPoint{sp(d2, nil, fp(2))},
	)
	if !ok || !first.Equal(d2) {
		t.Fatalf("earliest = %v ok=%v, want %v", first, ok, d2)
	}
	if _, ok := EarliestDate(nil, nil); ok {
		t.Fatalf("no points should report ok=false")
	}
}
