package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/diaanaelena/demo-charts/src/chartcore"
	"github.com/diaanaelena/demo-charts/src/chartdata"
	"github.com/diaanaelena/demo-charts/src/chartlog"
)

func main() {
	var scatterPath, linesPath, outPNG, outSVG, logLevel string
	flag.StringVar(&scatterPath, "scatter", "", "Path to the fund filings CSV (markers)")
	flag.StringVar(&linesPath, "lines", "", "Path to the composite/derived CSV (lines)")
	flag.StringVar(&outPNG, "out", "chart.png", "PNG output path (empty to skip)")
	flag.StringVar(&outSVG, "svg", "", "SVG output path (empty to skip)")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	chartlog.SetLevel(logLevel)

	if scatterPath == "" || linesPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fundrender -scatter filings.csv -lines composite.csv [-out chart.png] [-svg chart.svg]")
		os.Exit(2)
	}

	markers, series, err := loadDatasets(scatterPath, linesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(markers) == 0 || len(series) == 0 {
		fmt.Println("Nothing to render: both datasets must be non-empty.")
		return
	}

	composite := chartdata.CompositeSeries(series)
	derived := chartdata.DerivedSeries(series)
	scales, ok := chartcore.BuildScales(composite, derived)
	if !ok {
		fmt.Println("Nothing to render: no dated continuous points.")
		return
	}
	scene := chartcore.BuildScene(markers, composite, derived, scales, chartcore.DefaultConfig())
	chartlog.Infof("scene: %d markers, %d paths", len(scene.Markers), len(scene.Lines))

	if outPNG != "" {
		if err := writePNG(scene, outPNG); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		chartlog.Infof("wrote %s", outPNG)
	}
	if outSVG != "" {
		if err := writeSVG(scene, outSVG); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		chartlog.Infof("wrote %s", outSVG)
	}
}

// loadDatasets reads and normalizes the two uploads.
func loadDatasets(scatterPath, linesPath string) ([]chartdata.Point, []chartdata.SeriesPoint, error) {
	markers, err := chartdata.LoadMarkersFile(scatterPath)
	if err != nil {
		return nil, nil, err
	}
	series, err := chartdata.LoadSeriesFile(linesPath)
	if err != nil {
		return nil, nil, err
	}
	return markers, series, nil
}

func writePNG(scene chartcore.Scene, path string) error {
	img, err := chartcore.RenderPNG(scene)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func writeSVG(scene chartcore.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return chartcore.RenderSVG(scene, f)
}
