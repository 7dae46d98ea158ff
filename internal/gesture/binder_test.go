package gesture

import (
	"errors"
	"sort"
	"testing"

	"github.com/example/shineypaint/internal/surface"
	"github.com/example/shineypaint/internal/tool"
)

type listener struct {
	typ EventType
	fn  func(Event)
}

type fakeTarget struct {
	next      ListenerID
	listeners map[ListenerID]listener
	origin    tool.Point
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{listeners: make(map[ListenerID]listener)}
}

func (f *fakeTarget) AddListener(t EventType, fn func(Event)) ListenerID {
	f.next++
	f.listeners[f.next] = listener{t, fn}
	return f.next
}

func (f *fakeTarget) RemoveListener(id ListenerID) { delete(f.listeners, id) }
func (f *fakeTarget) Origin() tool.Point            { return f.origin }

func (f *fakeTarget) fire(t EventType, x, y float64) {
	ids := make([]ListenerID, 0, len(f.listeners))
	for id := range f.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if l, ok := f.listeners[id]; ok && l.typ == t {
			l.fn(Event{Type: t, X: x, Y: y})
		}
	}
}

type fillFlag bool

func (f *fillFlag) Fill() bool { return bool(*f) }

type draw struct {
	fill bool
	geo  tool.Geometry
}

func recordingTool(id tool.ID, g tool.Gesture, log *[]draw) *tool.Tool {
	return &tool.Tool{
		ID:      id,
		Gesture: g,
		Render: func(_ surface.Context, fill bool, _ *tool.Params, geo tool.Geometry) error {
			*log = append(*log, draw{fill, geo})
			return nil
		},
	}
}

func newBinder(target *fakeTarget, fill FillSource) *Binder {
	return NewBinder(target, func() surface.Context { return nil }, fill)
}

func TestClickDrawsOncePerPress(t *testing.T) {
	target := newFakeTarget()
	target.origin = tool.Point{X: 10, Y: 20}
	fill := fillFlag(true)
	b := newBinder(target, &fill)
	var draws []draw
	if err := b.Bind(recordingTool(tool.Rect, tool.Click, &draws)); err != nil {
		t.Fatal(err)
	}
	if b.State() != ClickBound || len(target.listeners) != 1 {
		t.Fatalf("state %v listeners %d", b.State(), len(target.listeners))
	}
	target.fire(Press, 15, 25)
	target.fire(Move, 30, 30)
	target.fire(Release, 30, 30)
	fill = false
	target.fire(Press, 40, 60)

	if len(draws) != 2 {
		t.Fatalf("draws = %d, want 2", len(draws))
	}
	if draws[0].geo.At != (tool.Point{X: 5, Y: 5}) || !draws[0].fill {
		t.Fatalf("first draw = %+v", draws[0])
	}
	if draws[1].geo.At != (tool.Point{X: 30, Y: 40}) || draws[1].fill {
		t.Fatalf("second draw = %+v", draws[1])
	}
}

func TestDragDrawsWhileDown(t *testing.T) {
	target := newFakeTarget()
	b := newBinder(target, nil)
	var draws []draw
	if err := b.Bind(recordingTool(tool.Pencil, tool.Drag, &draws)); err != nil {
		t.Fatal(err)
	}
	if b.State() != DragBound || len(target.listeners) != 3 {
		t.Fatalf("state %v listeners %d", b.State(), len(target.listeners))
	}

	target.fire(Move, 1, 1)
	if len(draws) != 0 {
		t.Fatal("move before press drew")
	}
	target.fire(Press, 2, 2)
	if len(draws) != 1 || draws[0].geo.At != (tool.Point{X: 2, Y: 2}) || !b.Down() {
		t.Fatalf("press: draws %+v down %v", draws, b.Down())
	}
	target.fire(Move, 3, 3)
	target.fire(Move, 3, 3)
	if len(draws) != 3 {
		t.Fatalf("coincident moves must each draw, got %d draws", len(draws))
	}
	target.fire(Release, 4, 4)
	target.fire(Move, 5, 5)
	if len(draws) != 3 || b.Down() {
		t.Fatalf("draws after release: %d, down %v", len(draws), b.Down())
	}
}

func TestPressReleaseDrawsOnRelease(t *testing.T) {
	target := newFakeTarget()
	b := newBinder(target, nil)
	var draws []draw
	if err := b.Bind(recordingTool(tool.ClearArea, tool.PressRelease, &draws)); err != nil {
		t.Fatal(err)
	}
	if b.State() != PressReleaseBound || len(target.listeners) != 2 {
		t.Fatalf("state %v listeners %d", b.State(), len(target.listeners))
	}
	target.fire(Press, 10, 20)
	target.fire(Move, 15, 25)
	if len(draws) != 0 {
		t.Fatal("drew before release")
	}
	target.fire(Release, 30, 40)
	if len(draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(draws))
	}
	want := tool.Geometry{Start: tool.Point{X: 10, Y: 20}, End: tool.Point{X: 30, Y: 40}}
	if draws[0].geo != want {
		t.Fatalf("geometry = %+v, want %+v", draws[0].geo, want)
	}
	target.fire(Release, 50, 50)
	if len(draws) != 1 {
		t.Fatal("release without press drew")
	}
}

func TestRebindTearsDownFirst(t *testing.T) {
	target := newFakeTarget()
	b := newBinder(target, nil)
	var draws []draw
	tools := []*tool.Tool{
		recordingTool(tool.Pencil, tool.Drag, &draws),
		recordingTool(tool.Rect, tool.Click, &draws),
		recordingTool(tool.Line, tool.PressRelease, &draws),
		recordingTool(tool.Eraser, tool.Drag, &draws),
	}
	want := map[tool.Gesture]int{tool.Click: 1, tool.Drag: 3, tool.PressRelease: 2}
	var prev *Binding
	for _, tl := range tools {
		if err := b.Bind(tl); err != nil {
			t.Fatal(err)
		}
		if prev != nil && prev.Listeners() != 0 {
			t.Fatalf("previous binding kept %d listeners", prev.Listeners())
		}
		if got := len(target.listeners); got != want[tl.Gesture] {
			t.Fatalf("%s: %d listeners attached, want %d", tl.ID, got, want[tl.Gesture])
		}
		if b.Current() != tl {
			t.Fatalf("current = %v", b.Current())
		}
		if prev != nil && prev.ID == b.Binding().ID {
			t.Fatalf("rebinding %s reused binding id %s", tl.ID, prev.ID)
		}
		prev = b.Binding()
	}
	b.Unbind()
	b.Unbind()
	if b.State() != Idle || len(target.listeners) != 0 || b.Current() != nil {
		t.Fatalf("after unbind: state %v listeners %d", b.State(), len(target.listeners))
	}
}

func TestStrayReleaseAfterSwitchIsDropped(t *testing.T) {
	target := newFakeTarget()
	b := newBinder(target, nil)
	var lineDraws, rectDraws []draw
	if err := b.Bind(recordingTool(tool.Line, tool.PressRelease, &lineDraws)); err != nil {
		t.Fatal(err)
	}
	target.fire(Press, 1, 1)
	if err := b.Bind(recordingTool(tool.ClearArea, tool.PressRelease, &rectDraws)); err != nil {
		t.Fatal(err)
	}
	target.fire(Release, 9, 9)
	if len(lineDraws) != 0 || len(rectDraws) != 0 {
		t.Fatalf("stray release drew: line %d clear %d", len(lineDraws), len(rectDraws))
	}
}

func TestSwitchMidDragResetsDown(t *testing.T) {
	target := newFakeTarget()
	b := newBinder(target, nil)
	var draws []draw
	if err := b.Bind(recordingTool(tool.Brush, tool.Drag, &draws)); err != nil {
		t.Fatal(err)
	}
	target.fire(Press, 1, 1)
	if err := b.Bind(recordingTool(tool.Pencil, tool.Drag, &draws)); err != nil {
		t.Fatal(err)
	}
	if b.Down() {
		t.Fatal("down survived teardown")
	}
	target.fire(Move, 2, 2)
	if len(draws) != 1 {
		t.Fatalf("draws = %d, want only the original press", len(draws))
	}
}

func TestUnknownGestureLeavesIdle(t *testing.T) {
	target := newFakeTarget()
	b := newBinder(target, nil)
	var draws []draw
	if err := b.Bind(recordingTool(tool.Rect, tool.Click, &draws)); err != nil {
		t.Fatal(err)
	}
	err := b.Bind(recordingTool(tool.Rect, tool.Gesture(42), &draws))
	if !errors.Is(err, tool.ErrUnknownGesture) {
		t.Fatalf("expected ErrUnknownGesture, got %v", err)
	}
	if b.State() != Idle || len(target.listeners) != 0 {
		t.Fatalf("state %v listeners %d", b.State(), len(target.listeners))
	}
	if err := b.Bind(nil); err == nil {
		t.Fatal("expected error binding nil tool")
	}
}

func TestDrawErrorIsContained(t *testing.T) {
	target := newFakeTarget()
	b := newBinder(target, nil)
	calls := 0
	failing := &tool.Tool{
		ID:      tool.Brush,
		Gesture: tool.Drag,
		Render: func(surface.Context, bool, *tool.Params, tool.Geometry) error {
			calls++
			return tool.ErrUnknownShape
		},
	}
	if err := b.Bind(failing); err != nil {
		t.Fatal(err)
	}
	target.fire(Press, 0, 0)
	target.fire(Move, 1, 1)
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestStateStrings(t *testing.T) {
	for s, want := range map[State]string{
		Idle: "Idle", ClickBound: "ClickBound", DragBound: "DragBound", PressReleaseBound: "PressReleaseBound",
	} {
		if s.String() != want {
			t.Errorf("%d.String() = %q", s, s.String())
		}
	}
}

func TestListenerFromReplacedBindingIsIgnored(t *testing.T) {
	target := newFakeTarget()
	b := newBinder(target, nil)
	var pencilDraws, rectDraws []draw
	if err := b.Bind(recordingTool(tool.Pencil, tool.Drag, &pencilDraws)); err != nil {
		t.Fatal(err)
	}
	var stale []func(Event)
	for _, l := range target.listeners {
		if l.typ == Press {
			stale = append(stale, l.fn)
		}
	}
	if len(stale) != 1 {
		t.Fatalf("press listeners = %d, want 1", len(stale))
	}
	if err := b.Bind(recordingTool(tool.Rect, tool.Click, &rectDraws)); err != nil {
		t.Fatal(err)
	}
	stale[0](Event{Type: Press, X: 3, Y: 4})
	if len(pencilDraws) != 0 || b.Down() {
		t.Fatalf("replaced binding drew %d times, down=%v", len(pencilDraws), b.Down())
	}
	target.fire(Press, 3, 4)
	if len(rectDraws) != 1 {
		t.Fatalf("rect draws = %d, want 1", len(rectDraws))
	}
}
