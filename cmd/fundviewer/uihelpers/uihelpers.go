// Package uihelpers holds the pure coordinate math used by the viewer, kept
// separate from fyne widgets so it stays unit-testable.
package uihelpers

// ContainRect computes where an image of imgW x imgH lands inside a view of
// viewW x viewH under contain-fit scaling: offset, drawn size and the scale
// factor applied to image pixels.
func ContainRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return
}

// ViewToImage maps a pointer position in view coordinates back to image
// pixel coordinates. inside is false when the pointer misses the drawn
// image rectangle.
func ViewToImage(x, y, imgW, imgH, viewW, viewH float32) (ix, iy float32, inside bool) {
	drawX, drawY, drawW, drawH, scale := ContainRect(imgW, imgH, viewW, viewH)
	if scale <= 0 {
		return 0, 0, false
	}
	if x < drawX || x > drawX+drawW || y < drawY || y > drawY+drawH {
		return 0, 0, false
	}
	return (x - drawX) / scale, (y - drawY) / scale, true
}

// ClampToView keeps a w x h panel positioned at (x, y) fully inside the
// view, preferring to flip left/up over clipping.
func ClampToView(x, y, w, h, viewW, viewH float32) (float32, float32) {
	if x+w > viewW {
		x = viewW - w
	}
	if y+h > viewH {
		y = viewH - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
