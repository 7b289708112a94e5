package chartcore

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/diaanaelena/demo-charts/src/chartdata"
)

func testScene(t *testing.T) Scene {
	t.Helper()
	d1 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	markers := []chartdata.Point{{Date: &d1, FundPrice: fp(100), EquityType: "Common"}}
	composite := []chartdata.SeriesPoint{sp(d1, fp(50), nil), sp(d2, fp(60), nil)}
	derived := []chartdata.SeriesPoint{sp(d1, nil, fp(30)), sp(d2, nil, fp(35))}
	scales, ok := BuildScales(composite, derived)
	if !ok {
		t.Fatalf("expected scales")
	}
	return BuildScene(markers, composite, derived, scales, DefaultConfig())
}

func TestRenderPNGSize(t *testing.T) {
	img, err := RenderPNG(testScene(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != CanvasWidth || b.Dy() != CanvasHeight {
		t.Fatalf("canvas = %dx%d, want %dx%d", b.Dx(), b.Dy(), CanvasWidth, CanvasHeight)
	}
}

func TestRenderSVGOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSVG(testScene(t), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("output is not svg: %.80s", out)
	}
	// the reference label and at least one month tick must be present
	if !strings.Contains(out, "01/01/2021") {
		t.Fatalf("missing reference date label")
	}
	if !strings.Contains(out, "Jan-2021") {
		t.Fatalf("missing month tick label")
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	sc := testScene(t)
	var a, b bytes.Buffer
	if err := RenderSVG(sc, &a); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if err := RenderSVG(sc, &b); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("re-render of the same scene differs")
	}
}
