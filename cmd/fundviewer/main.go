package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/diaanaelena/demo-charts/cmd/fundviewer/uihelpers"
	"github.com/diaanaelena/demo-charts/src/chartcore"
	"github.com/diaanaelena/demo-charts/src/chartdata"
	"github.com/diaanaelena/demo-charts/src/chartlog"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	scatterPath string
	linesPath   string

	markers []chartdata.Point
	series  []chartdata.SeriesPoint

	scene    chartcore.Scene
	hasScene bool
	hit      *chartcore.HitState

	imgCanvas *canvas.Image
	overlay   *hoverOverlay
	tipLayer  *fyne.Container
	markerTip *tooltipPanel
	curveTip  *tooltipPanel

	scatterLabel *widget.Label
	linesLabel   *widget.Label

	tooltipsEnabled bool
}

func main() {
	a := app.NewWithID("com.diaanaelena.fundviewer")
	w := a.NewWindow("Fund Viewer")
	state := &uiState{app: a, window: w}

	state.imgCanvas = canvas.NewImageFromImage(placeholder())
	state.imgCanvas.FillMode = canvas.ImageFillContain
	state.overlay = newHoverOverlay(state)
	state.tipLayer = container.NewWithoutLayout()
	state.markerTip = newTooltipPanel(state.tipLayer)
	state.curveTip = newTooltipPanel(state.tipLayer)

	state.scatterLabel = widget.NewLabel("Filings: (none)")
	state.linesLabel = widget.NewLabel("Composite: (none)")

	loadPrefs(state)
	buildMenus(state)

	stack := container.NewStack(state.imgCanvas, state.overlay, state.tipLayer)
	bottom := container.NewHBox(state.scatterLabel, state.linesLabel)
	w.SetContent(container.NewBorder(nil, bottom, nil, nil, stack))
	w.Resize(fyne.NewSize(chartcore.CanvasWidth, chartcore.CanvasHeight+60))

	loadAll(state)
	w.ShowAndRun()
}

func buildMenus(state *uiState) {
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state, "recentScatter") {
		path := f
		items = append(items, fyne.NewMenuItem("Filings: "+truncatePath(path, 60), func() {
			state.scatterPath = path
			savePrefs(state)
			loadAll(state)
		}))
	}
	for _, f := range recentFiles(state, "recentLines") {
		path := f
		items = append(items, fyne.NewMenuItem("Composite: "+truncatePath(path, 60), func() {
			state.linesPath = path
			savePrefs(state)
			loadAll(state)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() {
		state.app.Preferences().SetString("recentScatter", "")
		state.app.Preferences().SetString("recentLines", "")
		buildMenus(state)
	})
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Filings…", func() { openDataDialog(state, true) }),
		fyne.NewMenuItem("Open Composite…", func() { openDataDialog(state, false) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG…", func() { exportPNG(state) }),
		fyne.NewMenuItem("Export SVG…", func() { exportSVG(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)

	tooltipItem := fyne.NewMenuItem("Show Tooltips", nil)
	tooltipItem.Checked = state.tooltipsEnabled
	tooltipItem.Action = func() {
		state.tooltipsEnabled = !state.tooltipsEnabled
		if !state.tooltipsEnabled {
			state.hideTooltips()
		}
		savePrefs(state)
		buildMenus(state)
	}
	viewMenu := fyne.NewMenu("View", tooltipItem)

	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu, viewMenu))
	if canv := state.window.Canvas(); canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl},
			func(fyne.Shortcut) { openDataDialog(state, true) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl},
			func(fyne.Shortcut) { loadAll(state) })
	}
}

func openDataDialog(state *uiState, scatter bool) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		if scatter {
			state.scatterPath = rc.URI().Path()
			addRecentFile(state, "recentScatter", state.scatterPath)
		} else {
			state.linesPath = rc.URI().Path()
			addRecentFile(state, "recentLines", state.linesPath)
		}
		savePrefs(state)
		buildMenus(state)
		loadAll(state)
	}, state.window)
	d.Show()
}

// loadAll re-reads whichever datasets have a path and rebuilds the chart.
func loadAll(state *uiState) {
	if state.scatterPath != "" {
		markers, err := chartdata.LoadMarkersFile(state.scatterPath)
		if err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		state.markers = markers
		state.scatterLabel.SetText("Filings: " + filepath.Base(state.scatterPath))
	}
	if state.linesPath != "" {
		series, err := chartdata.LoadSeriesFile(state.linesPath)
		if err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		state.series = series
		state.linesLabel.SetText("Composite: " + filepath.Base(state.linesPath))
	}
	rebuild(state)
}

// rebuild regenerates scales, scene, rendered image and hit-test state from
// the current datasets, or falls back to the placeholder when either dataset
// is missing.
func rebuild(state *uiState) {
	state.hideTooltips()
	if len(state.markers) == 0 || len(state.series) == 0 {
		state.hasScene = false
		state.hit = nil
		state.imgCanvas.Image = placeholder()
		state.imgCanvas.Refresh()
		return
	}
	composite := chartdata.CompositeSeries(state.series)
	derived := chartdata.DerivedSeries(state.series)
	scales, ok := chartcore.BuildScales(composite, derived)
	if !ok {
		state.hasScene = false
		state.hit = nil
		state.imgCanvas.Image = placeholder()
		state.imgCanvas.Refresh()
		return
	}
	state.scene = chartcore.BuildScene(state.markers, composite, derived, scales, chartcore.DefaultConfig())
	state.hasScene = true
	state.hit = chartcore.NewHitState(state.scene, scales, composite, derived)

	img, err := chartcore.RenderPNG(state.scene)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.imgCanvas.Image = img
	state.imgCanvas.Refresh()
	chartlog.Infof("rebuilt chart: %d markers, %d paths", len(state.scene.Markers), len(state.scene.Lines))
}

// handleHover maps a pointer position in overlay coordinates to plot pixel
// space and drives both tooltip panels independently.
func (s *uiState) handleHover(pos fyne.Position, size fyne.Size) {
	if s.hit == nil || !s.tooltipsEnabled {
		s.hideTooltips()
		return
	}
	px, py, inside := plotCoords(pos, size)
	if !inside {
		s.hideTooltips()
		return
	}
	tipPos := fyne.NewPos(pos.X+chartcore.TooltipOffsetX, pos.Y+chartcore.TooltipOffsetY)

	if tt, ok := s.hit.MarkerAt(px, py); ok {
		s.markerTip.show(chartcore.FormatMarkerTooltip(tt), tipPos, size)
	} else {
		s.markerTip.hideSoon()
	}

	if curve, ok := s.hit.CurveAt(px, py); ok {
		if tt, ok := s.hit.CurveNearest(curve, px); ok {
			s.curveTip.show(chartcore.FormatCurveTooltip(tt), tipPos, size)
			return
		}
	}
	s.curveTip.hideSoon()
}

// plotCoords maps an overlay pointer position to plot pixel coordinates,
// accounting for contain-fit letterboxing and the chart margins.
func plotCoords(pos fyne.Position, size fyne.Size) (px, py float64, inside bool) {
	ix, iy, inside := uihelpers.ViewToImage(pos.X, pos.Y,
		chartcore.CanvasWidth, chartcore.CanvasHeight, size.Width, size.Height)
	if !inside {
		return 0, 0, false
	}
	return float64(ix) - chartcore.MarginLeft, float64(iy) - chartcore.MarginTop, true
}

func (s *uiState) hideTooltips() {
	if s.markerTip != nil {
		s.markerTip.hideSoon()
	}
	if s.curveTip != nil {
		s.curveTip.hideSoon()
	}
}

func exportPNG(state *uiState) {
	if state.imgCanvas == nil || state.imgCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, state.imgCanvas.Image); err != nil {
			dialog.ShowError(err, state.window)
		}
	}, state.window)
	fs.SetFileName("fund_chart.png")
	fs.Show()
}

func exportSVG(state *uiState) {
	if !state.hasScene {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := chartcore.RenderSVG(state.scene, wc); err != nil {
			dialog.ShowError(err, state.window)
		}
	}, state.window)
	fs.SetFileName("fund_chart.svg")
	fs.Show()
}

func savePrefs(state *uiState) {
	prefs := state.app.Preferences()
	prefs.SetString("lastScatter", state.scatterPath)
	prefs.SetString("lastLines", state.linesPath)
	prefs.SetBool("showTooltips", state.tooltipsEnabled)
}

func loadPrefs(state *uiState) {
	prefs := state.app.Preferences()
	state.scatterPath = prefs.StringWithFallback("lastScatter", "")
	state.linesPath = prefs.StringWithFallback("lastLines", "")
	state.tooltipsEnabled = prefs.BoolWithFallback("showTooltips", true)
	chartlog.SetLevel(prefs.StringWithFallback("logLevel", "info"))
}

// recent files helpers, one list per upload slot
func recentFiles(state *uiState, key string) []string {
	raw := state.app.Preferences().StringWithFallback(key, "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, key, path string) {
	filtered := []string{path}
	for _, f := range recentFiles(state, key) {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	state.app.Preferences().SetString(key, strings.Join(filtered, "\n"))
}

func truncatePath(p string, max int) string {
	if len(p) <= max {
		return p
	}
	return "…" + p[len(p)-max:]
}
