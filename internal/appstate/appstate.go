// Package appstate owns the paint application's mutable state: the host
// document, the tool registry, the gesture binder, the raster canvas and the
// colour and fill selections. Run drives it from a shiny window.
package appstate

import (
	"fmt"
	"log"
	"sync"

	"github.com/example/shineypaint/internal/clipboard"
	"github.com/example/shineypaint/internal/config"
	"github.com/example/shineypaint/internal/document"
	"github.com/example/shineypaint/internal/gesture"
	"github.com/example/shineypaint/internal/notify"
	"github.com/example/shineypaint/internal/render"
	"github.com/example/shineypaint/internal/surface"
	"github.com/example/shineypaint/internal/theme"
	"github.com/example/shineypaint/internal/tool"
)

// Element ids of the host document.
const (
	CanvasID            = "paint-canvas"
	ToolbarID           = "toolbar"
	NoOptionsID         = "no-options"
	FillStrokeOptionsID = "fill-stroke-options"
	UseFillID           = "use-fill"
	UseStrokeID         = "use-stroke"
	SwatchID            = "color-swatch"
	PickerID            = "color-picker"
	PickerSwatchID      = "picker-swatch"
	RedSliderID         = "red"
	GreenSliderID       = "green"
	BlueSliderID        = "blue"
	CopyColorID         = "copy-color"
	PasteColorID        = "paste-color"
)

// Classes toggled on elements.
const (
	InvalidClass = "invalid"
	ActiveClass  = "active"
)

// Canvas size used when neither options nor configuration give one.
const (
	DefaultCanvasWidth  = "640px"
	DefaultCanvasHeight = "480px"
)

const defaultTool = tool.Pencil

// ToolButtonID is the element id of the toolbar button selecting id.
func ToolButtonID(id tool.ID) string { return "tool-" + id.String() }

// Clipboard moves colour strings to and from the system clipboard.
type Clipboard interface {
	WriteText(text string) error
	ReadText() (string, error)
}

type systemClipboard struct{}

func (systemClipboard) WriteText(text string) error { return clipboard.WriteText(text) }
func (systemClipboard) ReadText() (string, error)   { return clipboard.ReadText() }

// AppState holds everything the paint UI mutates. Methods are not safe for
// concurrent use; Run serialises event handling and painting itself.
type AppState struct {
	doc    *document.Document
	reg    *tool.Registry
	binder *gesture.Binder
	canvas *render.Canvas
	color  ColorState
	fill   bool
	active *tool.Tool

	theme    *theme.Theme
	notifier *notify.Notifier
	clip     Clipboard

	cfg          *config.Config
	initialTool  tool.ID
	initialColor string
	canvasWidth  string
	canvasHeight string
	demo         bool

	input    inputState
	backdrop render.Backdrop
	buttons  map[*document.Element]*CacheButton

	mu        sync.Mutex
	updateCh  chan struct{}
	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithConfig seeds canvas size, colour, fill mode, initial tool and tool
// parameter overrides from cfg. Later options take precedence.
func WithConfig(cfg *config.Config) Option {
	return func(a *AppState) {
		if cfg == nil {
			return
		}
		a.cfg = cfg
		if cfg.CanvasWidth > 0 {
			a.canvasWidth = fmt.Sprintf("%dpx", cfg.CanvasWidth)
		}
		if cfg.CanvasHeight > 0 {
			a.canvasHeight = fmt.Sprintf("%dpx", cfg.CanvasHeight)
		}
		if cfg.Color != "" {
			a.initialColor = cfg.Color
		}
		a.fill = cfg.Fill
		if cfg.Tool != "" {
			id, err := tool.ParseID(cfg.Tool)
			if err != nil {
				log.Printf("config: %v", err)
				return
			}
			a.initialTool = id
		}
	}
}

// WithTheme selects the UI colours.
func WithTheme(t *theme.Theme) Option {
	return func(a *AppState) {
		if t != nil {
			a.theme = t
		}
	}
}

// WithTool selects the tool bound at start up.
func WithTool(id tool.ID) Option { return func(a *AppState) { a.initialTool = id } }

// WithCanvasSize sets the canvas element's computed width and height, given
// as CSS lengths such as "640px".
func WithCanvasSize(width, height string) Option {
	return func(a *AppState) { a.canvasWidth, a.canvasHeight = width, height }
}

// WithColor sets the starting paint colour in any form surface.ParseRGBA
// accepts.
func WithColor(style string) Option { return func(a *AppState) { a.initialColor = style } }

// WithFill chooses filled (true) or outlined shapes at start up.
func WithFill(fill bool) Option { return func(a *AppState) { a.fill = fill } }

// WithNotifier announces copy and paste of colours.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *AppState) {
		if c != nil {
			a.clip = c
		}
	}
}

// WithDemo paints the sample scene onto the canvas at start up.
func WithDemo() Option { return func(a *AppState) { a.demo = true } }

// WithOnClose is called once when the window goes away.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New builds the host document, sizes the canvas from it and binds the
// initial tool.
func New(opts ...Option) *AppState {
	a := &AppState{
		reg:          tool.NewRegistry(),
		fill:         true,
		theme:        theme.Default(),
		clip:         systemClipboard{},
		initialTool:  defaultTool,
		canvasWidth:  DefaultCanvasWidth,
		canvasHeight: DefaultCanvasHeight,
		buttons:      make(map[*document.Element]*CacheButton),
		updateCh:     make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	a.backdrop = render.Backdrop{Size: checkerSize, Light: a.theme.CheckerLight, Dark: a.theme.CheckerDark}
	if err := a.reg.Validate(); err != nil {
		log.Printf("registry: %v", err)
	}
	if a.cfg != nil {
		if err := a.cfg.ApplyTools(a.reg); err != nil {
			log.Printf("config: %v", err)
		}
	}

	a.doc = document.New()
	a.buildDocument()
	a.sizeCanvas()
	a.binder = gesture.NewBinder(canvasTarget{a.doc.ElementByID(CanvasID)}, a.Context, a)
	a.layout()

	if a.initialColor != "" {
		if err := a.ApplyStyle(a.initialColor); err != nil {
			log.Printf("color: %v", err)
		}
	}
	if a.demo {
		b := a.canvas.Bounds()
		DrawDemo(a.Context(), b.Dx(), b.Dy())
	}
	a.applyColor()
	a.SetFill(a.fill)
	if err := a.SelectTool(a.initialTool); err != nil {
		log.Printf("select tool: %v", err)
	}
	return a
}

// sizeCanvas reads the canvas element's computed size once. A missing or
// malformed dimension leaves the surface unsized.
func (a *AppState) sizeCanvas() {
	el := a.doc.ElementByID(CanvasID)
	w, okW := document.ParsePixels(el.Style["width"])
	h, okH := document.ParsePixels(el.Style["height"])
	if !okW || !okH || w <= 0 || h <= 0 {
		log.Printf("canvas: unsized (width %q, height %q)", el.Style["width"], el.Style["height"])
		a.canvas = render.NewCanvas(0, 0)
		return
	}
	a.canvas = render.NewCanvas(w, h)
}

// Document is the host document.
func (a *AppState) Document() *document.Document { return a.doc }

// Registry is the live tool table.
func (a *AppState) Registry() *tool.Registry { return a.reg }

// Binder is the gesture binder attached to the canvas element.
func (a *AppState) Binder() *gesture.Binder { return a.binder }

// Canvas is the raster backing the canvas element.
func (a *AppState) Canvas() *render.Canvas { return a.canvas }

// Context returns the drawing surface, or nil when there is no canvas.
func (a *AppState) Context() surface.Context {
	if a.canvas == nil {
		return nil
	}
	return a.canvas
}

// Theme returns the UI colours in use.
func (a *AppState) Theme() *theme.Theme { return a.theme }

// Color returns the current colour state.
func (a *AppState) Color() ColorState { return a.color }

// Fill reports whether shape tools fill rather than outline.
func (a *AppState) Fill() bool { return a.fill }

// SetFill switches shape tools between fill and stroke and highlights the
// matching button.
func (a *AppState) SetFill(fill bool) {
	a.fill = fill
	if el := a.doc.ElementByID(UseFillID); el != nil {
		el.ToggleClass(ActiveClass, fill)
	}
	if el := a.doc.ElementByID(UseStrokeID); el != nil {
		el.ToggleClass(ActiveClass, !fill)
	}
}

// ActiveTool returns the selected tool or nil.
func (a *AppState) ActiveTool() *tool.Tool { return a.active }

// NotifyChanged requests a repaint of the window.
func (a *AppState) NotifyChanged() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}
