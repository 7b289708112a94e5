package main

import (
	"image/color"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/diaanaelena/demo-charts/cmd/fundviewer/uihelpers"
	"github.com/diaanaelena/demo-charts/src/chartcore"
)

const tooltipPad = 8

// tooltipPanel is one floating tooltip. The marker and curve tooltips are
// separate panels with separate fade animations, so showing one never
// disturbs the other's timer.
type tooltipPanel struct {
	bg    *canvas.Rectangle
	texts []*canvas.Text
	anim  *fyne.Animation
	alpha float32
}

func newTooltipPanel(layer *fyne.Container) *tooltipPanel {
	p := &tooltipPanel{
		bg: canvas.NewRectangle(color.NRGBA{R: 249, G: 249, B: 249, A: 0}),
	}
	p.bg.StrokeColor = color.NRGBA{R: 204, G: 204, B: 204, A: 0}
	p.bg.StrokeWidth = 1
	p.bg.CornerRadius = 4
	layer.Add(p.bg)
	for i := 0; i < 3; i++ {
		t := canvas.NewText("", color.NRGBA{A: 0})
		t.TextSize = 12
		p.texts = append(p.texts, t)
		layer.Add(t)
	}
	p.moveOffscreen()
	return p
}

// show places the panel near pos (already offset from the pointer) and fades
// it in, cancelling any pending fade-out.
func (p *tooltipPanel) show(body string, pos fyne.Position, bounds fyne.Size) {
	lines := strings.Split(body, "\n")
	var w, h float32
	for i, txt := range p.texts {
		if i < len(lines) {
			txt.Text = lines[i]
		} else {
			txt.Text = ""
		}
		sz := fyne.MeasureText(txt.Text, txt.TextSize, txt.TextStyle)
		if sz.Width > w {
			w = sz.Width
		}
		h += sz.Height
	}
	w += 2 * tooltipPad
	h += 2 * tooltipPad

	cx, cy := uihelpers.ClampToView(pos.X, pos.Y, w, h, bounds.Width, bounds.Height)
	p.bg.Resize(fyne.NewSize(w, h))
	p.bg.Move(fyne.NewPos(cx, cy))
	lineY := cy + tooltipPad
	for _, txt := range p.texts {
		txt.Move(fyne.NewPos(cx+tooltipPad, lineY))
		lineY += fyne.MeasureText(txt.Text, txt.TextSize, txt.TextStyle).Height
		txt.Refresh()
	}
	p.fadeTo(float32(chartcore.TooltipOpacity), chartcore.TooltipFadeIn, false)
}

// hideSoon fades the panel out and parks it offscreen when done.
func (p *tooltipPanel) hideSoon() {
	if p.alpha == 0 {
		return
	}
	p.fadeTo(0, chartcore.TooltipFadeOut, true)
}

func (p *tooltipPanel) fadeTo(target float32, d time.Duration, offscreenAfter bool) {
	if p.anim != nil {
		p.anim.Stop()
	}
	start := p.alpha
	p.anim = fyne.NewAnimation(d, func(f float32) {
		p.setAlpha(start + (target-start)*f)
		if offscreenAfter && f >= 1 {
			p.moveOffscreen()
		}
	})
	p.anim.Start()
}

func (p *tooltipPanel) moveOffscreen() {
	p.bg.Move(fyne.NewPos(-1000, -1000))
	for _, t := range p.texts {
		t.Move(fyne.NewPos(-1000, -1000))
	}
}

func (p *tooltipPanel) setAlpha(a float32) {
	p.alpha = a
	p.bg.FillColor = color.NRGBA{R: 249, G: 249, B: 249, A: uint8(a * 255)}
	p.bg.StrokeColor = color.NRGBA{R: 204, G: 204, B: 204, A: uint8(a * 255)}
	for _, t := range p.texts {
		t.Color = color.NRGBA{A: uint8(a * 255)}
		t.Refresh()
	}
	p.bg.Refresh()
}
