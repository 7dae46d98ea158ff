package appstate

import (
	"image"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/example/shineypaint/internal/document"
	"github.com/example/shineypaint/internal/tool"
)

const (
	pad          = 4
	buttonHeight = 24
	swatchSize   = 24
	inputWidth   = 48
	sliderHeight = 16
	sliderLabel  = 16
	pickerWidth  = 232
)

var fillStrokeLabels = map[string]string{UseFillID: "Fill", UseStrokeID: "Stroke"}

// buildDocument creates every element the paint UI relies on and attaches
// the document's listeners.
func (a *AppState) buildDocument() {
	d := a.doc
	toolbar := d.Create(nil, ToolbarID, "", document.Container)
	for _, t := range a.reg.Tools() {
		id := t.ID
		btn := d.Create(toolbar, ToolButtonID(id), "", document.Button)
		btn.Text = id.String()
		btn.AddEventListener(document.Click, func(*document.Event) {
			if err := a.SelectTool(id); err != nil {
				log.Printf("select tool: %v", err)
			}
		})
	}
	for _, id := range []string{UseFillID, UseStrokeID} {
		btn := d.Create(toolbar, id, "", document.Button)
		btn.Text = fillStrokeLabels[id]
		fill := id == UseFillID
		btn.AddEventListener(document.Click, func(*document.Event) { a.SetFill(fill) })
	}
	swatch := d.Create(toolbar, SwatchID, "", document.Swatch)
	swatch.AddEventListener(document.Click, func(e *document.Event) {
		a.showPicker()
		e.StopPropagation()
	})

	for _, t := range a.reg.Tools() {
		if t.Panel == "" {
			continue
		}
		panel := d.Create(toolbar, t.Panel, "", document.Panel)
		panel.Hidden = true
		for _, p := range t.Accepts {
			in := d.Create(panel, "", tool.FieldName(t.ID, p), document.TextInput)
			in.Text = p.String()
			in.Value = t.Params.Value(p)
		}
	}
	none := d.Create(toolbar, NoOptionsID, "", document.Panel)
	none.Text = "No options"
	none.Hidden = true
	fs := d.Create(toolbar, FillStrokeOptionsID, "", document.Panel)
	fs.Text = "Fill or stroke"
	fs.Hidden = true
	toolbar.AddEventListener(document.Input, a.handleToolbarInput)

	canvas := d.Create(nil, CanvasID, "", document.Canvas)
	canvas.Style = map[string]string{"width": a.canvasWidth, "height": a.canvasHeight}

	picker := d.Create(nil, PickerID, "", document.Panel)
	picker.Hidden = true
	d.Create(picker, PickerSwatchID, "", document.Swatch)
	for _, id := range sliderIDs {
		sl := d.Create(picker, id, id, document.Slider)
		sl.Min, sl.Max = 0, 255
		sl.Value = "0"
		sl.Text = sliderLabels[id]
		sl.AddEventListener(document.Input, func(e *document.Event) {
			if err := a.SetChannel(e.Target.ID, e.Target.Value); err != nil {
				log.Printf("color: %v", err)
			}
		})
	}
	cp := d.Create(picker, CopyColorID, "", document.Button)
	cp.Text = "Copy"
	cp.AddEventListener(document.Click, func(*document.Event) {
		if err := a.CopyColor(); err != nil {
			log.Printf("copy color: %v", err)
		}
	})
	ps := d.Create(picker, PasteColorID, "", document.Button)
	ps.Text = "Paste"
	ps.AddEventListener(document.Click, func(*document.Event) {
		if err := a.PasteColor(); err != nil {
			log.Printf("paste color: %v", err)
		}
	})

	d.AddEventListener(document.Click, func(e *document.Event) {
		if picker.Contains(e.Target) {
			return
		}
		a.hidePicker()
	})
}

func textWidth(s string) int {
	return (&font.Drawer{Face: basicfont.Face7x13}).MeasureString(s).Ceil()
}

func buttonWidth(label string) int {
	return max(textWidth(label)+16, 48)
}

// layout assigns window rectangles to every element and returns the window
// size needed to show them.
func (a *AppState) layout() image.Point {
	d := a.doc
	toolbar := d.ElementByID(ToolbarID)

	x, y := pad, pad
	for _, t := range a.reg.Tools() {
		btn := d.ElementByID(ToolButtonID(t.ID))
		btn.Rect = image.Rect(x, y, x+buttonWidth(btn.Text), y+buttonHeight)
		x = btn.Rect.Max.X + pad
	}
	width := x

	x, y = pad, y+buttonHeight+pad
	for _, id := range []string{UseFillID, UseStrokeID} {
		btn := d.ElementByID(id)
		btn.Rect = image.Rect(x, y, x+buttonWidth(btn.Text), y+buttonHeight)
		x = btn.Rect.Max.X + pad
	}
	swatch := d.ElementByID(SwatchID)
	swatch.Rect = image.Rect(x+pad, y, x+pad+swatchSize, y+swatchSize)
	panelX := swatch.Rect.Max.X + 2*pad

	for _, el := range toolbar.Children() {
		if el.Kind != document.Panel {
			continue
		}
		px := panelX + pad
		for _, in := range el.Children() {
			w := textWidth(in.Text) + pad + inputWidth
			in.Rect = image.Rect(px, y+2, px+w, y+buttonHeight-2)
			px = in.Rect.Max.X + 2*pad
		}
		if len(el.Children()) == 0 {
			px += textWidth(el.Text) + pad
		}
		el.Rect = image.Rect(panelX, y, px, y+buttonHeight)
		width = max(width, el.Rect.Max.X+pad)
	}
	toolbar.Rect = image.Rect(0, 0, width, y+buttonHeight+pad)

	canvas := d.ElementByID(CanvasID)
	cb := a.canvas.Bounds()
	canvas.Rect = image.Rect(pad, toolbar.Rect.Max.Y+pad, pad+cb.Dx(), toolbar.Rect.Max.Y+pad+cb.Dy())
	width = max(width, canvas.Rect.Max.X+pad)
	toolbar.Rect.Max.X = width

	picker := d.ElementByID(PickerID)
	px, py := swatch.Rect.Min.X, swatch.Rect.Max.Y+pad
	inner := px + pad
	d.ElementByID(PickerSwatchID).Rect = image.Rect(inner, py+pad, px+pickerWidth-pad, py+pad+swatchSize)
	row := py + pad + swatchSize + pad
	for _, id := range sliderIDs {
		sl := d.ElementByID(id)
		sl.Rect = image.Rect(inner+sliderLabel, row, px+pickerWidth-pad, row+sliderHeight)
		row = sl.Rect.Max.Y + pad
	}
	cp := d.ElementByID(CopyColorID)
	cp.Rect = image.Rect(inner, row, inner+buttonWidth(cp.Text), row+buttonHeight)
	ps := d.ElementByID(PasteColorID)
	ps.Rect = image.Rect(cp.Rect.Max.X+pad, row, cp.Rect.Max.X+pad+buttonWidth(ps.Text), row+buttonHeight)
	picker.Rect = image.Rect(px, py, px+pickerWidth, ps.Rect.Max.Y+pad)

	height := max(canvas.Rect.Max.Y, picker.Rect.Max.Y) + pad
	width = max(width, picker.Rect.Max.X+pad)
	a.doc.Root().Rect = image.Rect(0, 0, width, height)
	return image.Pt(width, height)
}
