package appstate

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/example/shineypaint/internal/theme"
	"github.com/example/shineypaint/internal/tool"
)

type countingButton struct {
	LabelButton
	draws int
}

func (b *countingButton) Draw(dst *image.RGBA, state ButtonState) {
	b.draws++
	b.LabelButton.Draw(dst, state)
}

func TestCacheButtonDrawsEachStateOnce(t *testing.T) {
	inner := &countingButton{LabelButton: LabelButton{label: "rect", rect: image.Rect(0, 0, 40, 20), theme: theme.Default()}}
	cb := &CacheButton{Button: inner}
	dst := image.NewRGBA(image.Rect(0, 0, 50, 30))
	cb.Draw(dst, StateDefault)
	cb.Draw(dst, StateDefault)
	cb.Draw(dst, StateActive)
	if inner.draws != 2 {
		t.Fatalf("draws = %d, want 2", inner.draws)
	}
	cb.SetRect(image.Rect(10, 10, 50, 30))
	cb.Draw(dst, StateDefault)
	if inner.draws != 3 {
		t.Fatalf("moving the button should invalidate the cache, draws = %d", inner.draws)
	}
	if got := dst.RGBAAt(11, 11); got != theme.Default().ButtonBackground {
		t.Fatalf("button body = %v", got)
	}
}

func TestRenderFrame(t *testing.T) {
	a := newTestState(t, WithCanvasSize("100px", "80px"), WithColor("rgb(10,20,30)"))
	size := a.layout()
	dst := image.NewRGBA(image.Rectangle{Max: size})

	a.canvas.FillRect(0, 0, 10, 10)
	if !a.renderFrame(context.Background(), dst) {
		t.Fatalf("frame reported cancelled")
	}
	canvas := element(t, a, CanvasID).Rect
	if got := dst.RGBAAt(canvas.Min.X+2, canvas.Min.Y+2); !closeTo(got, color.RGBA{10, 20, 30, 255}) {
		t.Errorf("painted canvas pixel = %v", got)
	}
	th := a.Theme()
	if got := dst.RGBAAt(canvas.Min.X+50, canvas.Min.Y+50); got != th.CheckerLight && got != th.CheckerDark {
		t.Errorf("transparent canvas pixel = %v, want checkerboard", got)
	}
	sw := element(t, a, SwatchID).Rect
	if got := dst.RGBAAt(sw.Min.X+5, sw.Min.Y+5); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("swatch pixel = %v", got)
	}

	a.showPicker()
	a.renderFrame(context.Background(), dst)
	ps := element(t, a, PickerSwatchID).Rect
	if got := dst.RGBAAt(ps.Min.X+5, ps.Min.Y+5); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("picker swatch pixel = %v", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if a.renderFrame(ctx, dst) {
		t.Fatalf("cancelled frame reported complete")
	}
}

func TestInvalidFieldUsesThemeHighlight(t *testing.T) {
	a := newTestState(t, WithTool(tool.Rect))
	if err := a.SetField("rect-width", "abc"); err != nil {
		t.Fatal(err)
	}
	size := a.layout()
	dst := image.NewRGBA(image.Rectangle{Max: size})
	a.renderFrame(context.Background(), dst)
	box := inputBox(field(t, a, "rect-width"))
	if got := dst.RGBAAt(box.Min.X, box.Min.Y+box.Dy()/2); got != a.Theme().InputInvalid {
		t.Fatalf("invalid border = %v, want %v", got, a.Theme().InputInvalid)
	}
}
