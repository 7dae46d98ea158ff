package appstate

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/example/shineypaint/internal/surface"
)

// ErrUnknownSlider is returned for a slider id that maps to no channel.
var ErrUnknownSlider = errors.New("unknown slider")

var sliderIDs = []string{RedSliderID, GreenSliderID, BlueSliderID}

var sliderLabels = map[string]string{RedSliderID: "R", GreenSliderID: "G", BlueSliderID: "B"}

// ColorState is the current paint colour. Alpha is always 1.
type ColorState struct {
	R, G, B int
}

// Style renders the colour as a surface style string.
func (c ColorState) Style() string { return surface.RGBA(c.R, c.G, c.B, 1) }

// RGBA returns the opaque colour.
func (c ColorState) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

func (c *ColorState) channel(sliderID string) (*int, error) {
	switch sliderID {
	case RedSliderID:
		return &c.R, nil
	case GreenSliderID:
		return &c.G, nil
	case BlueSliderID:
		return &c.B, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSlider, sliderID)
}

// SetChannel writes a slider's value into its channel and re-renders the
// swatch, picker swatch and canvas styles. An unknown slider is an error and
// leaves the colour unchanged.
func (a *AppState) SetChannel(sliderID, raw string) error {
	ch, err := a.color.channel(sliderID)
	if err != nil {
		return err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("slider %s: %w", sliderID, err)
	}
	*ch = min(max(v, 0), 255)
	a.applyColor()
	return nil
}

// SetColor replaces all three channels and moves the sliders to match.
func (a *AppState) SetColor(c color.RGBA) {
	a.color = ColorState{R: int(c.R), G: int(c.G), B: int(c.B)}
	a.applyColor()
}

// ApplyStyle parses a colour string and makes it current. Alpha is dropped.
func (a *AppState) ApplyStyle(style string) error {
	c, err := surface.ParseRGBA(style)
	if err != nil {
		return err
	}
	a.SetColor(c)
	return nil
}

func (a *AppState) applyColor() {
	style := a.color.Style()
	for _, id := range []string{SwatchID, PickerSwatchID} {
		if el := a.doc.ElementByID(id); el != nil {
			el.Background = style
		}
	}
	for _, id := range sliderIDs {
		if el := a.doc.ElementByID(id); el != nil {
			ch, _ := a.color.channel(id)
			el.Value = strconv.Itoa(*ch)
		}
	}
	ctx := a.Context()
	if ctx == nil {
		return
	}
	ctx.SetFillStyle(style)
	ctx.SetStrokeStyle(style)
}

// PickerVisible reports whether the colour picker is shown.
func (a *AppState) PickerVisible() bool {
	el := a.doc.ElementByID(PickerID)
	return el != nil && !el.Hidden
}

func (a *AppState) showPicker() {
	if el := a.doc.ElementByID(PickerID); el != nil {
		el.Hidden = false
	}
}

func (a *AppState) hidePicker() {
	if el := a.doc.ElementByID(PickerID); el != nil {
		el.Hidden = true
	}
}

// CopyColor places the current style string on the clipboard.
func (a *AppState) CopyColor() error {
	style := a.color.Style()
	if err := a.clip.WriteText(style); err != nil {
		return err
	}
	a.notifier.Copy(style, a.color.RGBA())
	return nil
}

// PasteColor reads a colour from the clipboard and applies it.
func (a *AppState) PasteColor() error {
	text, err := a.clip.ReadText()
	if err != nil {
		return err
	}
	if err := a.ApplyStyle(text); err != nil {
		return err
	}
	a.notifier.Paste(a.color.Style(), a.color.RGBA())
	return nil
}
