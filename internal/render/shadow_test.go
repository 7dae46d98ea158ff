package render

import (
	"image"
	"image/color"
	"testing"
)

func TestDropShadowOffsetsBelowPanel(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	panel := image.Rect(10, 10, 20, 20)
	opts := ShadowOptions{Radius: 2, Offset: image.Pt(5, 5), Opacity: 1}

	touched := DropShadow(dst, panel, opts)
	want := image.Rect(13, 13, 27, 27)
	if !touched.Eq(want) {
		t.Fatalf("touched %v, want %v", touched, want)
	}
	if a := dst.RGBAAt(20, 20).A; a == 0 {
		t.Fatal("expected shadow alpha at the centre of the offset panel")
	}
	if a := dst.RGBAAt(5, 5).A; a != 0 {
		t.Fatalf("pixel above-left of panel darkened: alpha %d", a)
	}
}

func TestDropShadowBlurSoftensEdge(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	DropShadow(dst, image.Rect(10, 10, 30, 30), ShadowOptions{Radius: 3, Opacity: 1})
	centre := dst.RGBAAt(20, 20).A
	edge := dst.RGBAAt(9, 20).A
	if edge == 0 || edge >= centre {
		t.Fatalf("edge alpha %d should be between 0 and centre %d", edge, centre)
	}
}

func TestDropShadowNoopWhenOpacityZero(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			dst.SetRGBA(x, y, fill)
		}
	}
	if r := DropShadow(dst, image.Rect(1, 1, 4, 4), ShadowOptions{Radius: 2, Opacity: 0}); !r.Empty() {
		t.Fatalf("expected empty touched region, got %v", r)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := dst.RGBAAt(x, y); got != fill {
				t.Fatalf("pixel mismatch at (%d,%d): got %+v want %+v", x, y, got, fill)
			}
		}
	}
}

func TestBackdropCachesPattern(t *testing.T) {
	light := color.RGBA{220, 220, 220, 255}
	dark := color.RGBA{192, 192, 192, 255}
	b := &Backdrop{Size: 4, Light: light, Dark: dark}
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	b.Draw(dst, image.Rect(2, 2, 18, 18))
	if got := dst.RGBAAt(2, 2); got != light {
		t.Fatalf("origin square = %v, want light", got)
	}
	if got := dst.RGBAAt(6, 2); got != dark {
		t.Fatalf("second square = %v, want dark", got)
	}
	if got := dst.RGBAAt(0, 0); got.A != 0 {
		t.Fatalf("outside rect written: %v", got)
	}
	cached := b.cache
	b.Draw(dst, image.Rect(0, 0, 16, 16))
	if b.cache != cached {
		t.Fatal("expected cached pattern reuse for equal size")
	}
}
