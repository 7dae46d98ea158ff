package theme

import (
	"image/color"
)

// Theme defines the color palette for the application UI.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background behind panels and canvas
	Foreground color.RGBA // Label text

	// Toolbar & buttons
	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonActive          color.RGBA // Selected tool and fill/stroke choice
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Option panels and inputs
	PanelBackground  color.RGBA
	PanelBorder      color.RGBA
	InputBackground  color.RGBA
	InputText        color.RGBA
	InputBorder      color.RGBA
	InputFocus       color.RGBA
	InputInvalid     color.RGBA // Border of a field holding a rejected value
	PickerBackground color.RGBA
	SliderTrack      color.RGBA
	SliderKnob       color.RGBA

	// Canvas
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{210, 210, 210, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonActive:          color.RGBA{120, 160, 220, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		PanelBackground:       color.RGBA{235, 235, 235, 255},
		PanelBorder:           color.RGBA{160, 160, 160, 255},
		InputBackground:       color.RGBA{255, 255, 255, 255},
		InputText:             color.RGBA{0, 0, 0, 255},
		InputBorder:           color.RGBA{120, 120, 120, 255},
		InputFocus:            color.RGBA{60, 110, 200, 255},
		InputInvalid:          color.RGBA{220, 40, 40, 255},
		PickerBackground:      color.RGBA{245, 245, 245, 255},
		SliderTrack:           color.RGBA{170, 170, 170, 255},
		SliderKnob:            color.RGBA{60, 60, 60, 255},
		CheckerLight:          color.RGBA{220, 220, 220, 255},
		CheckerDark:           color.RGBA{192, 192, 192, 255},
	}
}
