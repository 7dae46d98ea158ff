package appstate

import (
	"fmt"
	"log"

	"github.com/example/shineypaint/internal/document"
	"github.com/example/shineypaint/internal/tool"
)

// ShowPanelsFor hides every option panel and placeholder, then shows the
// panel belonging to t. A tool without a panel gets the no-options
// placeholder, plus the fill/stroke placeholder when it draws shapes.
func (a *AppState) ShowPanelsFor(t *tool.Tool) {
	for _, other := range a.reg.Tools() {
		if other.Panel == "" {
			continue
		}
		if el := a.doc.ElementByID(other.Panel); el != nil {
			el.Hidden = true
		}
	}
	none := a.doc.ElementByID(NoOptionsID)
	fs := a.doc.ElementByID(FillStrokeOptionsID)
	for _, el := range []*document.Element{none, fs} {
		if el != nil {
			el.Hidden = true
		}
	}
	if t == nil {
		return
	}
	if t.Panel != "" {
		if el := a.doc.ElementByID(t.Panel); el != nil {
			el.Hidden = false
			return
		}
	}
	if none != nil {
		none.Hidden = false
	}
	if t.FillMode && fs != nil {
		fs.Hidden = false
	}
}

// SelectTool shows the tool's panels and rebinds the canvas to it. The
// previous binding is always torn down first.
func (a *AppState) SelectTool(id tool.ID) error {
	t, ok := a.reg.Lookup(id)
	if !ok {
		return fmt.Errorf("%w %s", tool.ErrUnknownTool, id)
	}
	a.ShowPanelsFor(t)
	if err := a.binder.Bind(t); err != nil {
		a.active = nil
		return err
	}
	a.active = t
	for _, other := range a.reg.Tools() {
		if el := a.doc.ElementByID(ToolButtonID(other.ID)); el != nil {
			el.ToggleClass(ActiveClass, other.ID == id)
		}
	}
	return nil
}

// handleToolbarInput applies an edited option field to the registry and
// flags the field when its value is rejected.
func (a *AppState) handleToolbarInput(e *document.Event) {
	field := e.Target
	if field == nil || field.Kind != document.TextInput {
		return
	}
	state, err := a.reg.ApplyField(field.Name, field.Value)
	if err != nil {
		log.Printf("toolbar: %s: %v", field.Name, err)
		return
	}
	field.ToggleClass(InvalidClass, state == tool.FieldInvalid)
}

// SetField writes raw into the toolbar input named name and dispatches the
// resulting input event, as typing into it would.
func (a *AppState) SetField(name, raw string) error {
	for _, el := range a.doc.ElementByID(ToolbarID).Descendants() {
		if el.Kind == document.TextInput && el.Name == name {
			el.Value = raw
			a.doc.Dispatch(el, &document.Event{Type: document.Input})
			return nil
		}
	}
	return fmt.Errorf("toolbar: no field %q", name)
}
