package uihelpers

import "testing"

func TestContainRectWiderView(t *testing.T) {
	// 1000x400 image in a 2000x400 view: height-bound, centered horizontally
	drawX, drawY, drawW, drawH, scale := ContainRect(1000, 400, 2000, 400)
	if scale != 1 {
		t.Fatalf("scale = %v, want 1", scale)
	}
	if drawW != 1000 || drawH != 400 {
		t.Fatalf("drawn size = %vx%v", drawW, drawH)
	}
	if drawX != 500 || drawY != 0 {
		t.Fatalf("offset = (%v,%v), want (500,0)", drawX, drawY)
	}
}

func TestContainRectScalesDown(t *testing.T) {
	_, _, drawW, drawH, scale := ContainRect(1000, 400, 500, 400)
	if scale != 0.5 {
		t.Fatalf("scale = %v, want 0.5", scale)
	}
	if drawW != 500 || drawH != 200 {
		t.Fatalf("drawn size = %vx%v, want 500x200", drawW, drawH)
	}
}

func TestViewToImage(t *testing.T) {
	ix, iy, inside := ViewToImage(500, 100, 1000, 400, 500, 400)
	if !inside {
		t.Fatalf("expected pointer inside drawn rect")
	}
	if ix != 1000 || iy != 0 {
		t.Fatalf("image coords = (%v,%v), want (1000,0)", ix, iy)
	}
	if _, _, inside := ViewToImage(0, 0, 1000, 400, 500, 400); inside {
		t.Fatalf("pointer above the letterboxed image must be outside")
	}
}

func TestClampToView(t *testing.T) {
	x, y := ClampToView(950, 380, 100, 40, 1000, 400)
	if x != 900 || y != 360 {
		t.Fatalf("clamped to (%v,%v), want (900,360)", x, y)
	}
	x, y = ClampToView(-5, 10, 100, 40, 1000, 400)
	if x != 0 || y != 10 {
		t.Fatalf("clamped to (%v,%v), want (0,10)", x, y)
	}
}
