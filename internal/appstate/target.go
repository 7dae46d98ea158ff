package appstate

import (
	"github.com/example/shineypaint/internal/document"
	"github.com/example/shineypaint/internal/gesture"
	"github.com/example/shineypaint/internal/tool"
)

// canvasTarget exposes the canvas element's pointer events to the gesture
// binder.
type canvasTarget struct {
	el *document.Element
}

var pointerEvents = [...]document.EventType{
	gesture.Press:   document.PointerDown,
	gesture.Move:    document.PointerMove,
	gesture.Release: document.PointerUp,
}

func (c canvasTarget) AddListener(t gesture.EventType, fn func(gesture.Event)) gesture.ListenerID {
	id := c.el.AddEventListener(pointerEvents[t], func(e *document.Event) {
		fn(gesture.Event{Type: t, X: e.X, Y: e.Y})
	})
	return gesture.ListenerID(id)
}

func (c canvasTarget) RemoveListener(id gesture.ListenerID) {
	c.el.RemoveEventListener(document.ListenerID(id))
}

// Origin is the canvas element's top-left corner in window coordinates.
func (c canvasTarget) Origin() tool.Point {
	return tool.Point{X: float64(c.el.Rect.Min.X), Y: float64(c.el.Rect.Min.Y)}
}
