package appstate

import (
	"image"
	"testing"

	"github.com/example/shineypaint/internal/document"
	"github.com/example/shineypaint/internal/tool"
)

// shownPanels lists the visible option panels and placeholders.
func shownPanels(a *AppState) []string {
	var out []string
	for _, el := range a.Document().ElementByID(ToolbarID).Children() {
		if el.Kind == document.Panel && !el.Hidden {
			out = append(out, el.ID)
		}
	}
	return out
}

func TestShowPanelsForEachTool(t *testing.T) {
	a := newTestState(t)
	for _, tc := range []struct {
		id   tool.ID
		want []string
	}{
		{tool.Rect, []string{"rect-options"}},
		{tool.Pencil, []string{NoOptionsID}},
		{tool.Brush, []string{"brush-options"}},
		{tool.Eraser, []string{NoOptionsID}},
		{tool.ClearArea, []string{NoOptionsID}},
		{tool.Line, []string{"line-options"}},
		{tool.Ellipse, []string{"ellipse-options"}},
		{tool.Arc, []string{"arc-options"}},
		{tool.Circle, []string{"circle-options"}},
	} {
		t.Run(tc.id.String(), func(t *testing.T) {
			if err := a.SelectTool(tc.id); err != nil {
				t.Fatal(err)
			}
			got := shownPanels(a)
			if len(got) != len(tc.want) || got[0] != tc.want[0] {
				t.Fatalf("visible panels = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestShowPanelsForShapeWithoutPanel(t *testing.T) {
	a := newTestState(t)
	rect, _ := a.Registry().Lookup(tool.Rect)
	bare := *rect
	bare.Panel = ""
	a.ShowPanelsFor(&bare)
	got := shownPanels(a)
	if len(got) != 2 || got[0] != NoOptionsID || got[1] != FillStrokeOptionsID {
		t.Fatalf("visible panels = %v, want [%s %s]", got, NoOptionsID, FillStrokeOptionsID)
	}
	a.ShowPanelsFor(nil)
	if got := shownPanels(a); len(got) != 0 {
		t.Fatalf("nil tool left panels visible: %v", got)
	}
}

func TestToolbarInputProtocol(t *testing.T) {
	a := newTestState(t)
	rect, _ := a.Registry().Lookup(tool.Rect)
	in := field(t, a, "rect-width")

	if err := a.SetField("rect-width", "40"); err != nil {
		t.Fatal(err)
	}
	if rect.Params.Width != 40 || in.HasClass(InvalidClass) {
		t.Fatalf("after 40: width=%d invalid=%v", rect.Params.Width, in.HasClass(InvalidClass))
	}

	if err := a.SetField("rect-width", "abc"); err != nil {
		t.Fatal(err)
	}
	if rect.Params.Width != 40 || !in.HasClass(InvalidClass) {
		t.Fatalf("after abc: width=%d invalid=%v", rect.Params.Width, in.HasClass(InvalidClass))
	}

	if err := a.SetField("rect-width", ""); err != nil {
		t.Fatal(err)
	}
	if rect.Params.Width != 40 || in.HasClass(InvalidClass) {
		t.Fatalf("after empty: width=%d invalid=%v", rect.Params.Width, in.HasClass(InvalidClass))
	}
}

func TestToolbarBrushShape(t *testing.T) {
	a := newTestState(t)
	brush, _ := a.Registry().Lookup(tool.Brush)
	if err := a.SetField("brush-shape", "rect"); err != nil {
		t.Fatal(err)
	}
	if brush.Params.Shape != tool.ShapeRect {
		t.Fatalf("shape = %s, want rect", brush.Params.Shape)
	}
	if err := a.SetField("brush-shape", "triangle"); err != nil {
		t.Fatal(err)
	}
	if brush.Params.Shape != tool.ShapeRect {
		t.Fatalf("unknown shape replaced the current one: %s", brush.Params.Shape)
	}
	if field(t, a, "brush-shape").HasClass(InvalidClass) {
		t.Fatalf("an unknown shape is a configuration error, not an invalid field")
	}
}

func TestToolbarIgnoresInputsOutsideFields(t *testing.T) {
	a := newTestState(t)
	a.Document().Dispatch(element(t, a, ToolbarID), &document.Event{Type: document.Input})
	if err := a.SetField("rect-depth", "1"); err == nil {
		t.Fatalf("unknown field should be reported")
	}
}

func TestTypingIntoField(t *testing.T) {
	a := newTestState(t, WithTool(tool.Rect))
	in := field(t, a, "rect-height")
	c := inputBox(in).Min.Add(image.Pt(4, 4))
	a.PointerPress(float64(c.X), float64(c.Y))
	a.PointerRelease(float64(c.X), float64(c.Y))
	if a.Focused() != in {
		t.Fatalf("clicking the field should focus it")
	}
	for range 2 {
		if !a.Backspace() {
			t.Fatalf("backspace not handled")
		}
	}
	a.TypeRune('4')
	a.TypeRune('x')
	if !in.HasClass(InvalidClass) {
		t.Fatalf("4x should be flagged invalid")
	}
	a.Backspace()
	a.TypeRune('0')
	rect, _ := a.Registry().Lookup(tool.Rect)
	if rect.Params.Height != 40 || in.Value != "40" || in.HasClass(InvalidClass) {
		t.Fatalf("height=%d value=%q invalid=%v", rect.Params.Height, in.Value, in.HasClass(InvalidClass))
	}
	if !a.Blur() || a.Focused() != nil {
		t.Fatalf("blur should drop focus")
	}
	if a.TypeRune('9') {
		t.Fatalf("typing without focus should be ignored")
	}
}
