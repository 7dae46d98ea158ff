package tool

import (
	"fmt"
	"math"

	"github.com/example/shineypaint/internal/surface"
)

// eraserSize is the side of the square cleared by the eraser.
const eraserSize = 10

func drawRect(ctx surface.Context, fill bool, p *Params, g Geometry) error {
	w, h := float64(p.Width), float64(p.Height)
	if fill {
		surface.FillRect(ctx, g.At.X, g.At.Y, w, h)
	} else {
		surface.StrokeRect(ctx, g.At.X, g.At.Y, w, h)
	}
	return nil
}

func drawPencil(ctx surface.Context, _ bool, _ *Params, g Geometry) error {
	surface.DrawPixel(ctx, g.At.X, g.At.Y)
	return nil
}

// drawBrush treats Size as a radius for circles but as the full side for
// squares.
func drawBrush(ctx surface.Context, _ bool, p *Params, g Geometry) error {
	size := float64(p.Size)
	switch p.Shape {
	case ShapeCircle:
		surface.FillCircle(ctx, g.At.X, g.At.Y, size)
	case ShapeRect:
		surface.FillRect(ctx, g.At.X-size/2, g.At.Y-size/2, size, size)
	default:
		return fmt.Errorf("brush: %w %d", ErrUnknownShape, p.Shape)
	}
	return nil
}

func drawEraser(ctx surface.Context, _ bool, _ *Params, g Geometry) error {
	surface.ClearRect(ctx, g.At.X-eraserSize/2, g.At.Y-eraserSize/2, eraserSize, eraserSize)
	return nil
}

// drawClearArea clears the rectangle spanned by the two corners. A zero width
// or height clears nothing.
func drawClearArea(ctx surface.Context, _ bool, _ *Params, g Geometry) error {
	if g.Start.X == g.End.X || g.Start.Y == g.End.Y {
		return nil
	}
	x0, x1 := math.Min(g.Start.X, g.End.X), math.Max(g.Start.X, g.End.X)
	y0, y1 := math.Min(g.Start.Y, g.End.Y), math.Max(g.Start.Y, g.End.Y)
	surface.ClearRect(ctx, x0, y0, x1-x0, y1-y0)
	return nil
}

func drawLine(ctx surface.Context, _ bool, p *Params, g Geometry) error {
	surface.DrawLine(ctx, g.Start.X, g.Start.Y, g.End.X, g.End.Y, float64(p.Width))
	return nil
}

func drawEllipse(ctx surface.Context, fill bool, p *Params, g Geometry) error {
	rx, ry := float64(p.RadiusX), float64(p.RadiusY)
	rot, start, end := float64(p.Rotation), float64(p.Start), float64(p.End)
	if fill {
		surface.FillEllipse(ctx, g.At.X, g.At.Y, rx, ry, rot, start, end)
	} else {
		surface.StrokeEllipse(ctx, g.At.X, g.At.Y, rx, ry, rot, start, end)
	}
	return nil
}

func drawArc(ctx surface.Context, fill bool, p *Params, g Geometry) error {
	r, start, end := float64(p.Radius), float64(p.Start), float64(p.End)
	if fill {
		surface.FillArc(ctx, g.At.X, g.At.Y, r, start, end)
	} else {
		surface.StrokeArc(ctx, g.At.X, g.At.Y, r, start, end)
	}
	return nil
}

func drawCircle(ctx surface.Context, fill bool, p *Params, g Geometry) error {
	if fill {
		surface.FillCircle(ctx, g.At.X, g.At.Y, float64(p.Radius))
	} else {
		surface.StrokeCircle(ctx, g.At.X, g.At.Y, float64(p.Radius))
	}
	return nil
}
