package main

import (
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// hoverOverlay sits on top of the chart image and feeds pointer positions to
// the hit-testing state. It draws nothing itself; the tooltips live on a
// separate layer above it.
type hoverOverlay struct {
	widget.BaseWidget
	state *uiState
}

func newHoverOverlay(state *uiState) *hoverOverlay {
	o := &hoverOverlay{state: state}
	o.ExtendBaseWidget(o)
	return o
}

func (o *hoverOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background to ensure full hit-area for hover events
	bg := canvas.NewRectangle(color.RGBA{})
	return &hoverOverlayRenderer{o: o, bg: bg}
}

type hoverOverlayRenderer struct {
	o  *hoverOverlay
	bg *canvas.Rectangle
}

func (r *hoverOverlayRenderer) Destroy() {}
func (r *hoverOverlayRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
}
func (r *hoverOverlayRenderer) MinSize() fyne.Size          { return fyne.NewSize(0, 0) }
func (r *hoverOverlayRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.bg} }
func (r *hoverOverlayRenderer) Refresh()                     { r.bg.Refresh() }

func (o *hoverOverlay) MouseMoved(ev *desktop.MouseEvent) {
	if o.state != nil {
		o.state.handleHover(ev.Position, o.Size())
	}
}
func (o *hoverOverlay) MouseIn(ev *desktop.MouseEvent) {}
func (o *hoverOverlay) MouseOut() {
	if o.state != nil {
		o.state.hideTooltips()
	}
}

var _ desktop.Hoverable = (*hoverOverlay)(nil)
