package appstate

import (
	"context"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/shineypaint/internal/document"
	"github.com/example/shineypaint/internal/render"
	"github.com/example/shineypaint/internal/surface"
	"github.com/example/shineypaint/internal/theme"
)

const checkerSize = 8

type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
	StateActive

	numButtonStates
)

// Button is something drawn differently per interaction state.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [numButtonStates]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [numButtonStates]*image.RGBA{}
	}
}

// LabelButton is a themed button with a centred text label.
type LabelButton struct {
	label string
	rect  image.Rectangle
	theme *theme.Theme
}

func (b *LabelButton) Draw(dst *image.RGBA, state ButtonState) {
	c := b.theme.ButtonBackground
	switch state {
	case StateHover:
		c = b.theme.ButtonBackgroundHover
	case StatePressed:
		c = b.theme.ButtonBackgroundPress
	case StateActive:
		c = b.theme.ButtonActive
	}
	draw.Draw(dst, b.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	strokeBox(dst, b.rect, b.theme.ButtonBorder)
	x := b.rect.Min.X + (b.rect.Dx()-textWidth(b.label))/2
	DrawText(dst, x, b.rect.Min.Y+(b.rect.Dy()-13)/2, b.label, b.theme.ButtonText)
}

func (b *LabelButton) Rect() image.Rectangle { return b.rect }

func (b *LabelButton) SetRect(r image.Rectangle) { b.rect = r }

// DrawText renders text with its top-left corner at (x, y).
func DrawText(dst *image.RGBA, x, y int, text string, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

func strokeBox(dst *image.RGBA, r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	src := &image.Uniform{col}
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(dst, edge, src, image.Point{}, draw.Src)
	}
}

func (a *AppState) button(el *document.Element) *CacheButton {
	cb, ok := a.buttons[el]
	if !ok {
		cb = &CacheButton{Button: &LabelButton{label: el.Text, rect: el.Rect, theme: a.theme}}
		a.buttons[el] = cb
	}
	cb.SetRect(el.Rect)
	return cb
}

func (a *AppState) buttonState(el *document.Element) ButtonState {
	switch {
	case a.input.capture == el:
		return StatePressed
	case el.HasClass(ActiveClass):
		return StateActive
	case a.input.hover == el:
		return StateHover
	}
	return StateDefault
}

// renderFrame paints the whole document into dst. It stops early and
// returns false once ctx is cancelled.
func (a *AppState) renderFrame(ctx context.Context, dst *image.RGBA) bool {
	t := a.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{t.Background}, image.Point{}, draw.Src)

	toolbar := a.doc.ElementByID(ToolbarID)
	draw.Draw(dst, toolbar.Rect, &image.Uniform{t.ToolbarBackground}, image.Point{}, draw.Src)
	for _, el := range toolbar.Children() {
		if el.Hidden {
			continue
		}
		a.drawElement(dst, el)
	}
	if ctx.Err() != nil {
		return false
	}

	canvas := a.doc.ElementByID(CanvasID)
	if !canvas.Rect.Empty() {
		a.backdrop.Draw(dst, canvas.Rect)
		draw.Draw(dst, canvas.Rect, a.canvas.Image(), image.Point{}, draw.Over)
	}
	if ctx.Err() != nil {
		return false
	}

	picker := a.doc.ElementByID(PickerID)
	if !picker.Hidden {
		render.DropShadow(dst, picker.Rect, render.DefaultShadowOptions())
		draw.Draw(dst, picker.Rect, &image.Uniform{t.PickerBackground}, image.Point{}, draw.Src)
		strokeBox(dst, picker.Rect, t.PanelBorder)
		for _, el := range picker.Children() {
			a.drawElement(dst, el)
		}
	}
	return ctx.Err() == nil
}

func (a *AppState) drawElement(dst *image.RGBA, el *document.Element) {
	t := a.theme
	switch el.Kind {
	case document.Button:
		a.button(el).Draw(dst, a.buttonState(el))
	case document.Swatch:
		render.DrawCheckerboard(dst, el.Rect, checkerSize/2, t.CheckerLight, t.CheckerDark)
		if c, err := surface.ParseRGBA(el.Background); err == nil {
			draw.Draw(dst, el.Rect, &image.Uniform{c}, image.Point{}, draw.Over)
		}
		strokeBox(dst, el.Rect, t.ButtonBorder)
	case document.Panel:
		draw.Draw(dst, el.Rect, &image.Uniform{t.PanelBackground}, image.Point{}, draw.Src)
		strokeBox(dst, el.Rect, t.PanelBorder)
		if len(el.Children()) == 0 {
			DrawText(dst, el.Rect.Min.X+pad, el.Rect.Min.Y+(el.Rect.Dy()-13)/2, el.Text, t.Foreground)
		}
		for _, c := range el.Children() {
			a.drawElement(dst, c)
		}
	case document.TextInput:
		a.drawInput(dst, el)
	case document.Slider:
		a.drawSlider(dst, el)
	}
}

func inputBox(el *document.Element) image.Rectangle {
	return image.Rect(el.Rect.Max.X-inputWidth, el.Rect.Min.Y, el.Rect.Max.X, el.Rect.Max.Y)
}

func (a *AppState) drawInput(dst *image.RGBA, el *document.Element) {
	t := a.theme
	DrawText(dst, el.Rect.Min.X, el.Rect.Min.Y+(el.Rect.Dy()-13)/2, el.Text, t.Foreground)
	box := inputBox(el)
	draw.Draw(dst, box, &image.Uniform{t.InputBackground}, image.Point{}, draw.Src)
	border := t.InputBorder
	switch {
	case el.HasClass(InvalidClass):
		border = t.InputInvalid
	case a.input.focus == el:
		border = t.InputFocus
	}
	strokeBox(dst, box, border)
	text := el.Value
	if a.input.focus == el {
		text += "|"
	}
	clip, ok := dst.SubImage(box.Inset(2)).(*image.RGBA)
	if !ok || clip.Bounds().Empty() {
		return
	}
	DrawText(clip, box.Min.X+3, box.Min.Y+(box.Dy()-13)/2, text, t.InputText)
}

func (a *AppState) drawSlider(dst *image.RGBA, el *document.Element) {
	t := a.theme
	DrawText(dst, el.Rect.Min.X-sliderLabel, el.Rect.Min.Y+(el.Rect.Dy()-13)/2, el.Text, t.Foreground)
	mid := el.Rect.Min.Y + el.Rect.Dy()/2
	track := image.Rect(el.Rect.Min.X, mid-2, el.Rect.Max.X, mid+2)
	draw.Draw(dst, track, &image.Uniform{t.SliderTrack}, image.Point{}, draw.Src)
	x := el.Rect.Min.X + sliderPosition(el)
	knob := image.Rect(x-3, el.Rect.Min.Y, x+4, el.Rect.Max.Y)
	draw.Draw(dst, knob, &image.Uniform{t.SliderKnob}, image.Point{}, draw.Src)
}
