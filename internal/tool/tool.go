// Package tool describes the drawing tools, their parameters and how each one
// renders onto a surface.
package tool

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/example/shineypaint/internal/surface"
)

var (
	ErrUnknownTool    = errors.New("unknown tool")
	ErrUnknownParam   = errors.New("unknown parameter")
	ErrUnknownShape   = errors.New("unknown brush shape")
	ErrUnknownGesture = errors.New("unknown gesture kind")
)

// ID identifies a tool.
type ID int

const (
	Rect ID = iota
	Pencil
	Brush
	Eraser
	ClearArea
	Line
	Ellipse
	Arc
	Circle

	numIDs
)

var idNames = [numIDs]string{
	Rect:      "rect",
	Pencil:    "pencil",
	Brush:     "brush",
	Eraser:    "eraser",
	ClearArea: "clear-area",
	Line:      "line",
	Ellipse:   "ellipse",
	Arc:       "arc",
	Circle:    "circle",
}

func (id ID) String() string {
	if id < 0 || id >= numIDs {
		return "ID(" + strconv.Itoa(int(id)) + ")"
	}
	return idNames[id]
}

// IDs returns every tool identifier in declaration order.
func IDs() []ID {
	ids := make([]ID, numIDs)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// ParseID maps a tool name such as "clear-area" to its ID.
func ParseID(s string) (ID, error) {
	for i, n := range idNames {
		if n == s {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownTool, s)
}

// Gesture is the pointer interaction a tool responds to.
type Gesture uint8

const (
	// Click draws once per press.
	Click Gesture = iota
	// Drag draws on press and on every move until release.
	Drag
	// PressRelease draws once on release with both endpoints.
	PressRelease
)

func (g Gesture) String() string {
	switch g {
	case Click:
		return "Click"
	case Drag:
		return "Drag"
	case PressRelease:
		return "PressRelease"
	default:
		panic("invalid Gesture")
	}
}

// Valid reports whether g is one of the declared gesture kinds.
func (g Gesture) Valid() bool { return g <= PressRelease }

// Param names an adjustable tool parameter.
type Param int

const (
	Width Param = iota
	Height
	Size
	Shape
	Radius
	RadiusX
	RadiusY
	Rotation
	Start
	End

	numParams
)

var paramNames = [numParams]string{
	Width:    "width",
	Height:   "height",
	Size:     "size",
	Shape:    "shape",
	Radius:   "radius",
	RadiusX:  "radiusX",
	RadiusY:  "radiusY",
	Rotation: "rotation",
	Start:    "start",
	End:      "end",
}

func (p Param) String() string {
	if p < 0 || p >= numParams {
		return "Param(" + strconv.Itoa(int(p)) + ")"
	}
	return paramNames[p]
}

// ParseParam maps a parameter name to its Param. Names are case sensitive.
func ParseParam(s string) (Param, error) {
	for i, n := range paramNames {
		if n == s {
			return Param(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownParam, s)
}

// BrushShape is the footprint of the brush tool.
type BrushShape uint8

const (
	ShapeCircle BrushShape = iota
	ShapeRect
)

func (s BrushShape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	default:
		return "BrushShape(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseBrushShape accepts exactly "circle" or "rect".
func ParseBrushShape(s string) (BrushShape, error) {
	switch s {
	case "circle":
		return ShapeCircle, nil
	case "rect":
		return ShapeRect, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownShape, s)
}

// Params holds every adjustable value. Each tool reads only the fields it
// accepts. Angles are in degrees.
type Params struct {
	Width    int
	Height   int
	Size     int
	Shape    BrushShape
	Radius   int
	RadiusX  int
	RadiusY  int
	Rotation int
	Start    int
	End      int
}

func (p *Params) field(param Param) *int {
	switch param {
	case Width:
		return &p.Width
	case Height:
		return &p.Height
	case Size:
		return &p.Size
	case Radius:
		return &p.Radius
	case RadiusX:
		return &p.RadiusX
	case RadiusY:
		return &p.RadiusY
	case Rotation:
		return &p.Rotation
	case Start:
		return &p.Start
	case End:
		return &p.End
	}
	return nil
}

// Value formats the current value of param.
func (p *Params) Value(param Param) string {
	if param == Shape {
		return p.Shape.String()
	}
	if f := p.field(param); f != nil {
		return strconv.Itoa(*f)
	}
	return ""
}

// Point is a position in surface coordinates.
type Point struct{ X, Y float64 }

// Geometry carries the resolved pointer positions for one draw. Click and Drag
// tools read At; PressRelease tools read Start and End.
type Geometry struct {
	At         Point
	Start, End Point
}

// DrawFunc renders a tool. fill selects filled over outlined shapes for tools
// that support both.
type DrawFunc func(ctx surface.Context, fill bool, p *Params, geo Geometry) error

// Tool is a named drawing behaviour bound to one gesture kind.
type Tool struct {
	ID      ID
	Gesture Gesture
	Params  Params
	// Panel is the element id of the options panel, empty when the tool has
	// no adjustable parameters.
	Panel string
	// FillMode marks shape tools that honour the fill/stroke choice.
	FillMode bool
	Accepts  []Param
	Render   DrawFunc
}

// Draw renders the tool with its current parameters.
func (t *Tool) Draw(ctx surface.Context, fill bool, geo Geometry) error {
	if t.Render == nil {
		return nil
	}
	return t.Render(ctx, fill, &t.Params, geo)
}

// Accept reports whether the tool exposes param.
func (t *Tool) Accept(param Param) bool {
	for _, p := range t.Accepts {
		if p == param {
			return true
		}
	}
	return false
}

// PanelID returns the options panel element id for a tool.
func PanelID(id ID) string { return id.String() + "-options" }
