package appstate

import (
	"strconv"
	"unicode/utf8"

	"github.com/example/shineypaint/internal/document"
)

// inputState tracks pointer capture, hover and keyboard focus between
// window events.
type inputState struct {
	focus   *document.Element
	hover   *document.Element
	capture *document.Element
}

// Focused returns the text input receiving key presses, or nil.
func (a *AppState) Focused() *document.Element { return a.input.focus }

// PointerPress delivers a button press at window coordinates x, y. The hit
// element captures the pointer until release.
func (a *AppState) PointerPress(x, y float64) {
	el := a.doc.HitTest(int(x), int(y))
	a.input.capture = el
	if el.Kind == document.TextInput {
		a.input.focus = el
	} else {
		a.input.focus = nil
	}
	a.doc.Dispatch(el, &document.Event{Type: document.PointerDown, X: x, Y: y})
	if el.Kind == document.Slider {
		a.slide(el, x)
	}
}

// PointerMove delivers a move to the capturing element, or to whatever is
// under the pointer when no button is held.
func (a *AppState) PointerMove(x, y float64) {
	el := a.input.capture
	if el == nil {
		el = a.doc.HitTest(int(x), int(y))
		a.input.hover = el
	}
	a.doc.Dispatch(el, &document.Event{Type: document.PointerMove, X: x, Y: y})
	if a.input.capture != nil && el.Kind == document.Slider {
		a.slide(el, x)
	}
}

// PointerRelease ends a press. The release goes to the capturing element and
// a click follows on the nearest element containing both the press and the
// release targets.
func (a *AppState) PointerRelease(x, y float64) {
	pressed := a.input.capture
	a.input.capture = nil
	hit := a.doc.HitTest(int(x), int(y))
	a.input.hover = hit
	target := pressed
	if target == nil {
		target = hit
	}
	a.doc.Dispatch(target, &document.Event{Type: document.PointerUp, X: x, Y: y})
	if pressed == nil {
		return
	}
	if common := commonAncestor(pressed, hit); common != nil {
		a.doc.Dispatch(common, &document.Event{Type: document.Click, X: x, Y: y})
	}
}

func commonAncestor(a, b *document.Element) *document.Element {
	for n := a; n != nil; n = n.Parent() {
		if n.Contains(b) {
			return n
		}
	}
	return nil
}

// slide moves a slider to the value under x and fires an input event when
// the value changes.
func (a *AppState) slide(el *document.Element, x float64) {
	span := el.Rect.Dx() - 1
	if span <= 0 {
		return
	}
	pos := min(max(int(x)-el.Rect.Min.X, 0), span)
	v := el.Min + (pos*(el.Max-el.Min)+span/2)/span
	next := strconv.Itoa(v)
	if next == el.Value {
		return
	}
	el.Value = next
	a.doc.Dispatch(el, &document.Event{Type: document.Input})
}

// sliderPosition is the x offset of a slider's knob within its track.
func sliderPosition(el *document.Element) int {
	v, err := strconv.Atoi(el.Value)
	if err != nil || el.Max <= el.Min {
		return 0
	}
	v = min(max(v, el.Min), el.Max)
	return (v - el.Min) * (el.Rect.Dx() - 1) / (el.Max - el.Min)
}

// TypeRune appends r to the focused input. It reports whether an input was
// focused.
func (a *AppState) TypeRune(r rune) bool {
	el := a.input.focus
	if el == nil {
		return false
	}
	el.Value += string(r)
	a.doc.Dispatch(el, &document.Event{Type: document.Input})
	return true
}

// Backspace removes the last rune of the focused input.
func (a *AppState) Backspace() bool {
	el := a.input.focus
	if el == nil {
		return false
	}
	if el.Value == "" {
		return true
	}
	_, size := utf8.DecodeLastRuneInString(el.Value)
	el.Value = el.Value[:len(el.Value)-size]
	a.doc.Dispatch(el, &document.Event{Type: document.Input})
	return true
}

// Blur drops keyboard focus.
func (a *AppState) Blur() bool {
	had := a.input.focus != nil
	a.input.focus = nil
	return had
}
