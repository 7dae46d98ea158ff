// Package document is a small element tree with bubbling events. It stands in
// for the page hosting the paint surface: named elements, visibility, classes
// and listeners.
package document

import (
	"image"
	"strconv"
	"strings"
)

// EventType names a document event.
type EventType uint8

const (
	Click EventType = iota
	Input
	PointerDown
	PointerMove
	PointerUp
)

var eventNames = [...]string{"click", "input", "pointerdown", "pointermove", "pointerup"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "event(" + strconv.Itoa(int(t)) + ")"
}

// Kind is the role of an element.
type Kind uint8

const (
	Container Kind = iota
	Canvas
	Button
	Panel
	TextInput
	Slider
	Swatch
	Label
)

// Event is dispatched to an element and bubbles towards the root.
type Event struct {
	Type          EventType
	Target        *Element
	CurrentTarget *Element
	// X and Y are window coordinates for pointer events.
	X, Y float64

	stopped bool
}

// StopPropagation prevents the event reaching further ancestors or document
// level listeners.
func (e *Event) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was stopped.
func (e *Event) Stopped() bool { return e.stopped }

// ListenerID identifies a registered listener.
type ListenerID uint64

type listener struct {
	id  ListenerID
	typ EventType
	fn  func(*Event)
}

type listenerSet struct {
	entries []listener
}

func (s *listenerSet) add(id ListenerID, t EventType, fn func(*Event)) {
	s.entries = append(s.entries, listener{id: id, typ: t, fn: fn})
}

func (s *listenerSet) remove(id ListenerID) bool {
	for i, l := range s.entries {
		if l.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *listenerSet) count(t EventType) int {
	n := 0
	for _, l := range s.entries {
		if l.typ == t {
			n++
		}
	}
	return n
}

// fire calls the listeners registered for e.Type. Listeners added or removed
// during the call take effect for the next event.
func (s *listenerSet) fire(e *Event) {
	snapshot := append([]listener(nil), s.entries...)
	for _, l := range snapshot {
		if l.typ != e.Type || !s.has(l.id) {
			continue
		}
		l.fn(e)
	}
}

func (s *listenerSet) has(id ListenerID) bool {
	for _, l := range s.entries {
		if l.id == id {
			return true
		}
	}
	return false
}

// Element is a node of the document.
type Element struct {
	ID     string
	Name   string
	Kind   Kind
	Hidden bool
	// Value is the current text of inputs and the position of sliders.
	Value string
	Text  string
	// Background is a CSS colour string used by swatches.
	Background string
	// Rect is the layout box in window coordinates.
	Rect image.Rectangle
	// Style holds computed style properties such as width and height.
	Style map[string]string
	// Min and Max bound slider values.
	Min, Max int

	doc       *Document
	parent    *Element
	children  []*Element
	classes   map[string]struct{}
	listeners listenerSet
}

func (e *Element) Parent() *Element     { return e.parent }
func (e *Element) Children() []*Element { return e.children }

func (e *Element) AddClass(c string) {
	if e.classes == nil {
		e.classes = make(map[string]struct{})
	}
	e.classes[c] = struct{}{}
}

func (e *Element) RemoveClass(c string) { delete(e.classes, c) }

func (e *Element) HasClass(c string) bool {
	_, ok := e.classes[c]
	return ok
}

// ToggleClass adds or removes c.
func (e *Element) ToggleClass(c string, on bool) {
	if on {
		e.AddClass(c)
	} else {
		e.RemoveClass(c)
	}
}

// AddEventListener registers fn for events of type t reaching e.
func (e *Element) AddEventListener(t EventType, fn func(*Event)) ListenerID {
	id := e.doc.nextID()
	e.listeners.add(id, t, fn)
	return id
}

// RemoveEventListener removes a listener. Unknown ids are ignored.
func (e *Element) RemoveEventListener(id ListenerID) { e.listeners.remove(id) }

// ListenerCount reports how many listeners for t are registered on e.
func (e *Element) ListenerCount(t EventType) int { return e.listeners.count(t) }

// Descendants lists every element below e in document order.
func (e *Element) Descendants() []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(e)
	return out
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Visible reports whether e and all its ancestors are shown.
func (e *Element) Visible() bool {
	for n := e; n != nil; n = n.parent {
		if n.Hidden {
			return false
		}
	}
	return true
}

// Document owns the element tree and document level listeners.
type Document struct {
	root      *Element
	byID      map[string]*Element
	listeners listenerSet
	ids       ListenerID
}

// New returns a document holding only its root element.
func New() *Document {
	d := &Document{byID: make(map[string]*Element)}
	d.root = &Element{doc: d, Kind: Container}
	return d
}

func (d *Document) nextID() ListenerID {
	d.ids++
	return d.ids
}

// Root is the top of the element tree.
func (d *Document) Root() *Element { return d.root }

// Create appends a new element to parent, or to the root when parent is nil.
// An id already in use is reassigned to the new element.
func (d *Document) Create(parent *Element, id, name string, kind Kind) *Element {
	if parent == nil {
		parent = d.root
	}
	el := &Element{ID: id, Name: name, Kind: kind, doc: d, parent: parent}
	parent.children = append(parent.children, el)
	if id != "" {
		d.byID[id] = el
	}
	return el
}

// ElementByID returns nil when no element has id.
func (d *Document) ElementByID(id string) *Element { return d.byID[id] }

// AddEventListener registers fn for every event of type t that bubbles to the
// document.
func (d *Document) AddEventListener(t EventType, fn func(*Event)) ListenerID {
	id := d.nextID()
	d.listeners.add(id, t, fn)
	return id
}

func (d *Document) RemoveEventListener(id ListenerID) { d.listeners.remove(id) }

// Dispatch delivers e to target, then each ancestor, then the document,
// stopping early when a listener stops propagation.
func (d *Document) Dispatch(target *Element, e *Event) {
	if target == nil {
		target = d.root
	}
	e.Target = target
	for n := target; n != nil; n = n.parent {
		e.CurrentTarget = n
		n.listeners.fire(e)
		if e.stopped {
			return
		}
	}
	e.CurrentTarget = nil
	d.listeners.fire(e)
}

// HitTest returns the deepest visible element whose Rect contains the point.
// Later siblings are considered on top of earlier ones. The root is returned
// when nothing else matches.
func (d *Document) HitTest(x, y int) *Element {
	p := image.Pt(x, y)
	var walk func(*Element) *Element
	walk = func(n *Element) *Element {
		for i := len(n.children) - 1; i >= 0; i-- {
			c := n.children[i]
			if c.Hidden {
				continue
			}
			if hit := walk(c); hit != nil {
				return hit
			}
			if p.In(c.Rect) {
				return c
			}
		}
		return nil
	}
	if hit := walk(d.root); hit != nil {
		return hit
	}
	return d.root
}

// ParsePixels reads a CSS length such as "640px", keeping the leading integer
// the way browsers do for computed sizes. ok is false when no digits lead the
// string.
func ParsePixels(s string) (int, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
