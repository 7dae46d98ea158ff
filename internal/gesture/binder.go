// Package gesture translates raw pointer events on a drawing target into
// tool draws according to each tool's gesture kind.
package gesture

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/example/shineypaint/internal/surface"
	"github.com/example/shineypaint/internal/tool"
)

// EventType classifies a pointer event.
type EventType uint8

const (
	Press EventType = iota
	Move
	Release
)

func (t EventType) String() string {
	switch t {
	case Press:
		return "Press"
	case Move:
		return "Move"
	case Release:
		return "Release"
	default:
		panic("invalid EventType")
	}
}

// Event is a pointer event in the target's client coordinates.
type Event struct {
	Type EventType
	X, Y float64
}

// ListenerID identifies a listener registered on a Target.
type ListenerID uint64

// Target is the element pointer listeners are attached to.
type Target interface {
	AddListener(t EventType, fn func(Event)) ListenerID
	RemoveListener(id ListenerID)
	// Origin is the top-left corner of the drawing surface in client
	// coordinates.
	Origin() tool.Point
}

// FillSource reports the shared fill/stroke choice at draw time.
type FillSource interface {
	Fill() bool
}

// State is the binder's position in its lifecycle.
type State uint8

const (
	Idle State = iota
	ClickBound
	DragBound
	PressReleaseBound
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case ClickBound:
		return "ClickBound"
	case DragBound:
		return "DragBound"
	case PressReleaseBound:
		return "PressReleaseBound"
	default:
		panic("invalid State")
	}
}

func stateFor(g tool.Gesture) State {
	switch g {
	case tool.Click:
		return ClickBound
	case tool.Drag:
		return DragBound
	case tool.PressRelease:
		return PressReleaseBound
	}
	return Idle
}

// Binding is the set of listeners installed for one tool.
type Binding struct {
	// ID identifies the binding; listeners only act while it is the
	// binder's active one.
	ID   uuid.UUID
	Kind tool.Gesture
	Tool *tool.Tool

	owner     *Binder
	target    Target
	listeners []ListenerID
}

// Listeners reports how many listeners the binding still holds.
func (b *Binding) Listeners() int { return len(b.listeners) }

// Dispose removes exactly the listeners this binding added. It is safe to
// call more than once.
func (b *Binding) Dispose() {
	for _, id := range b.listeners {
		b.target.RemoveListener(id)
	}
	b.listeners = nil
}

// listen registers fn with the target. Events delivered after the binding
// has been replaced, for instance by a target that snapshots its listeners
// before dispatch, are dropped.
func (b *Binding) listen(t EventType, fn func(Event)) {
	b.listeners = append(b.listeners, b.target.AddListener(t, func(e Event) {
		if !b.owner.active(b.ID) {
			return
		}
		fn(e)
	}))
}

// Binder keeps at most one tool's listeners attached to a target.
type Binder struct {
	target Target
	ctx    func() surface.Context
	fill   FillSource

	binding *Binding
	down    bool
}

// NewBinder returns an idle binder. ctx is consulted on every draw so the
// surface may be replaced or resized between events.
func NewBinder(target Target, ctx func() surface.Context, fill FillSource) *Binder {
	return &Binder{target: target, ctx: ctx, fill: fill}
}

// Bind tears down the current binding and installs listeners for t. An
// unrecognised gesture kind leaves the binder idle and returns an error.
func (b *Binder) Bind(t *tool.Tool) error {
	b.Unbind()
	if t == nil {
		return errors.New("gesture: bind nil tool")
	}
	bn := &Binding{ID: uuid.New(), Kind: t.Gesture, Tool: t, owner: b, target: b.target}
	switch t.Gesture {
	case tool.Click:
		b.installClick(bn)
	case tool.Drag:
		b.installDrag(bn)
	case tool.PressRelease:
		b.installPressRelease(bn)
	default:
		return fmt.Errorf("gesture: tool %s: %w %d", t.ID, tool.ErrUnknownGesture, t.Gesture)
	}
	b.binding = bn
	return nil
}

// Unbind removes the active binding, if any, and resets drag state.
func (b *Binder) Unbind() {
	if b.binding != nil {
		b.binding.Dispose()
		b.binding = nil
	}
	b.down = false
}

// State reports which gesture kind is bound.
func (b *Binder) State() State {
	if b.binding == nil {
		return Idle
	}
	return stateFor(b.binding.Kind)
}

// Current returns the bound tool or nil.
func (b *Binder) Current() *tool.Tool {
	if b.binding == nil {
		return nil
	}
	return b.binding.Tool
}

// Binding returns the active binding or nil.
func (b *Binder) Binding() *Binding { return b.binding }

func (b *Binder) active(id uuid.UUID) bool {
	return b.binding != nil && b.binding.ID == id
}

// Down reports whether a drag is in progress.
func (b *Binder) Down() bool { return b.down }

func (b *Binder) installClick(bn *Binding) {
	bn.listen(Press, func(e Event) {
		b.draw(bn, tool.Geometry{At: b.resolve(e)})
	})
}

func (b *Binder) installDrag(bn *Binding) {
	bn.listen(Press, func(e Event) {
		b.down = true
		b.draw(bn, tool.Geometry{At: b.resolve(e)})
	})
	bn.listen(Move, func(e Event) {
		if !b.down {
			return
		}
		b.draw(bn, tool.Geometry{At: b.resolve(e)})
	})
	bn.listen(Release, func(Event) {
		b.down = false
	})
}

func (b *Binder) installPressRelease(bn *Binding) {
	var (
		start   tool.Point
		pressed bool
	)
	bn.listen(Press, func(e Event) {
		start, pressed = b.resolve(e), true
	})
	bn.listen(Release, func(e Event) {
		if !pressed {
			return
		}
		pressed = false
		b.draw(bn, tool.Geometry{Start: start, End: b.resolve(e)})
	})
}

func (b *Binder) resolve(e Event) tool.Point {
	o := b.target.Origin()
	return tool.Point{X: e.X - o.X, Y: e.Y - o.Y}
}

func (b *Binder) draw(bn *Binding, geo tool.Geometry) {
	var ctx surface.Context
	if b.ctx != nil {
		ctx = b.ctx()
	}
	fill := b.fill != nil && b.fill.Fill()
	if err := bn.Tool.Draw(ctx, fill, geo); err != nil {
		log.Printf("gesture %s: %s: %v", bn.ID, bn.Tool.ID, err)
	}
}
