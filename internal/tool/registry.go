package tool

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldState is the visual state of a toolbar input after an edit.
type FieldState int

const (
	// FieldClear means the field shows no error highlight.
	FieldClear FieldState = iota
	// FieldInvalid means the value was rejected and the parameter kept.
	FieldInvalid
)

func (s FieldState) String() string {
	if s == FieldInvalid {
		return "invalid"
	}
	return "clear"
}

// Registry owns one Tool per ID for the life of the process.
type Registry struct {
	tools [numIDs]*Tool
}

// NewRegistry builds every tool with its default parameters.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, t := range defaultTools() {
		r.tools[t.ID] = t
	}
	return r
}

func defaultTools() []*Tool {
	return []*Tool{
		{
			ID: Rect, Gesture: Click, Panel: PanelID(Rect), FillMode: true,
			Params:  Params{Width: 25, Height: 25},
			Accepts: []Param{Width, Height},
			Render:  drawRect,
		},
		{ID: Pencil, Gesture: Drag, Render: drawPencil},
		{
			ID: Brush, Gesture: Drag, Panel: PanelID(Brush),
			Params:  Params{Size: 25, Shape: ShapeCircle},
			Accepts: []Param{Size, Shape},
			Render:  drawBrush,
		},
		{ID: Eraser, Gesture: Drag, Render: drawEraser},
		{ID: ClearArea, Gesture: PressRelease, Render: drawClearArea},
		{
			ID: Line, Gesture: PressRelease, Panel: PanelID(Line),
			Params:  Params{Width: 1},
			Accepts: []Param{Width},
			Render:  drawLine,
		},
		{
			ID: Ellipse, Gesture: Click, Panel: PanelID(Ellipse), FillMode: true,
			Params:  Params{RadiusX: 100, RadiusY: 200, Rotation: 0, Start: 0, End: 360},
			Accepts: []Param{RadiusX, RadiusY, Rotation, Start, End},
			Render:  drawEllipse,
		},
		{
			ID: Arc, Gesture: Click, Panel: PanelID(Arc), FillMode: true,
			Params:  Params{Radius: 100, Start: 0, End: 180},
			Accepts: []Param{Radius, Start, End},
			Render:  drawArc,
		},
		{
			ID: Circle, Gesture: Click, Panel: PanelID(Circle), FillMode: true,
			Params:  Params{Radius: 100},
			Accepts: []Param{Radius},
			Render:  drawCircle,
		},
	}
}

// Validate checks that the table is complete and self-consistent.
func (r *Registry) Validate() error {
	panels := make(map[string]ID)
	for i, t := range r.tools {
		id := ID(i)
		if t == nil {
			return fmt.Errorf("registry: %w: %s missing", ErrUnknownTool, id)
		}
		if t.ID != id {
			return fmt.Errorf("registry: slot %s holds %s", id, t.ID)
		}
		if !t.Gesture.Valid() {
			return fmt.Errorf("registry: %s: %w %d", id, ErrUnknownGesture, t.Gesture)
		}
		if t.Render == nil {
			return fmt.Errorf("registry: %s has no renderer", id)
		}
		for _, p := range t.Accepts {
			if p < 0 || p >= numParams {
				return fmt.Errorf("registry: %s: %w %d", id, ErrUnknownParam, int(p))
			}
		}
		if len(t.Accepts) > 0 && t.Panel == "" {
			return fmt.Errorf("registry: %s accepts parameters but has no panel", id)
		}
		if t.Panel == "" {
			continue
		}
		if prev, ok := panels[t.Panel]; ok {
			return fmt.Errorf("registry: panel %q shared by %s and %s", t.Panel, prev, id)
		}
		panels[t.Panel] = id
	}
	return nil
}

// Lookup returns the tool for id.
func (r *Registry) Lookup(id ID) (*Tool, bool) {
	if id < 0 || id >= numIDs || r.tools[id] == nil {
		return nil, false
	}
	return r.tools[id], true
}

// Tools returns every tool in ID order.
func (r *Registry) Tools() []*Tool {
	out := make([]*Tool, 0, numIDs)
	for _, t := range r.tools {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Apply updates one parameter from raw toolbar text, ignoring surrounding
// spaces. Unknown tools and parameters are configuration errors. An empty
// value changes nothing and
// clears the field; a value that does not parse marks the field invalid and
// leaves the parameter untouched.
func (r *Registry) Apply(toolName, paramName, raw string) (FieldState, error) {
	id, err := ParseID(toolName)
	if err != nil {
		return FieldClear, err
	}
	t, ok := r.Lookup(id)
	if !ok {
		return FieldClear, fmt.Errorf("%w %q", ErrUnknownTool, toolName)
	}
	param, err := ParseParam(paramName)
	if err != nil {
		return FieldClear, err
	}
	if !t.Accept(param) {
		return FieldClear, fmt.Errorf("%w %q for tool %s", ErrUnknownParam, paramName, id)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FieldClear, nil
	}
	if param == Shape {
		shape, err := ParseBrushShape(raw)
		if err != nil {
			return FieldClear, err
		}
		t.Params.Shape = shape
		return FieldClear, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return FieldInvalid, nil
	}
	*t.Params.field(param) = v
	return FieldClear, nil
}

// ApplyField decodes a toolbar input name of the form "<tool>-<param>" and
// applies raw to it.
func (r *Registry) ApplyField(name, raw string) (FieldState, error) {
	toolName, paramName, ok := SplitFieldName(name)
	if !ok {
		return FieldClear, fmt.Errorf("%w: malformed field name %q", ErrUnknownParam, name)
	}
	return r.Apply(toolName, paramName, raw)
}

// SplitFieldName splits on the last '-' so tool names containing dashes
// decode correctly.
func SplitFieldName(name string) (toolName, paramName string, ok bool) {
	i := strings.LastIndexByte(name, '-')
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

// FieldName is the toolbar input name for a tool parameter.
func FieldName(id ID, p Param) string { return id.String() + "-" + p.String() }
