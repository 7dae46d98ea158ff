// Package surface exposes primitive shape operations over an abstract 2D
// drawing context. Every operation is a no-op when the context is nil.
package surface

import "math"

// Context is the drawing target. Its vocabulary follows the canvas 2D API:
// coordinates have their origin top-left with y growing down, and angles
// passed to Ellipse are in radians.
type Context interface {
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Ellipse(x, y, rx, ry, rotation, start, end float64, anticlockwise bool)
	ClosePath()
	Fill()
	Stroke()

	FillStyle() string
	SetFillStyle(style string)
	StrokeStyle() string
	SetStrokeStyle(style string)
	LineWidth() float64
	SetLineWidth(w float64)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FillRect draws a filled rectangle at x, y with dimensions w and h.
func FillRect(ctx Context, x, y, w, h float64) {
	if ctx == nil {
		return
	}
	ctx.FillRect(x, y, w, h)
}

// StrokeRect draws a rectangle outline at x, y with dimensions w and h.
func StrokeRect(ctx Context, x, y, w, h float64) {
	if ctx == nil {
		return
	}
	ctx.StrokeRect(x, y, w, h)
}

// DrawPixel fills the single pixel at x, y.
func DrawPixel(ctx Context, x, y float64) {
	FillRect(ctx, x, y, 1, 1)
}

// ClearRect erases a rectangular region to transparent.
func ClearRect(ctx Context, x, y, w, h float64) {
	if ctx == nil {
		return
	}
	ctx.ClearRect(x, y, w, h)
}

// ClearPixel erases the single pixel at x, y.
func ClearPixel(ctx Context, x, y float64) {
	ClearRect(ctx, x, y, 1, 1)
}

func ellipsePath(ctx Context, x, y, rx, ry, rotation, start, end float64) {
	ctx.BeginPath()
	ctx.Ellipse(x, y, rx, ry, Radians(rotation), Radians(start), Radians(end), false)
}

// FillEllipse fills the ellipse centred at x, y. rotation, start and end are
// in degrees.
func FillEllipse(ctx Context, x, y, rx, ry, rotation, start, end float64) {
	if ctx == nil {
		return
	}
	ellipsePath(ctx, x, y, rx, ry, rotation, start, end)
	ctx.Fill()
}

// StrokeEllipse outlines the ellipse centred at x, y. rotation, start and end
// are in degrees.
func StrokeEllipse(ctx Context, x, y, rx, ry, rotation, start, end float64) {
	if ctx == nil {
		return
	}
	ellipsePath(ctx, x, y, rx, ry, rotation, start, end)
	ctx.Stroke()
}

// FillArc fills the circular sector from start to end degrees.
func FillArc(ctx Context, x, y, r, start, end float64) {
	FillEllipse(ctx, x, y, r, r, 0, start, end)
}

// StrokeArc outlines the circular arc from start to end degrees.
func StrokeArc(ctx Context, x, y, r, start, end float64) {
	StrokeEllipse(ctx, x, y, r, r, 0, start, end)
}

// FillCircle fills a full circle of radius r.
func FillCircle(ctx Context, x, y, r float64) {
	FillArc(ctx, x, y, r, 0, 360)
}

// StrokeCircle outlines a full circle of radius r.
func StrokeCircle(ctx Context, x, y, r float64) {
	StrokeArc(ctx, x, y, r, 0, 360)
}

// DrawLine strokes a straight line using width as the line thickness. The
// context's previous line width is restored afterwards.
func DrawLine(ctx Context, x0, y0, x1, y1, width float64) {
	if ctx == nil {
		return
	}
	prev := ctx.LineWidth()
	defer ctx.SetLineWidth(prev)
	ctx.SetLineWidth(width)
	ctx.BeginPath()
	ctx.MoveTo(x0, y0)
	ctx.LineTo(x1, y1)
	ctx.Stroke()
}
