package appstate

import "github.com/example/shineypaint/internal/surface"

// DrawDemo paints the sample scene: two overlapping squares, a dotted grid
// every 5 pixels, an outlined square, a cleared band and columns of cleared
// dots across the right half.
func DrawDemo(ctx surface.Context, width, height int) {
	if ctx == nil {
		return
	}
	surface.SetFillStyle(ctx, 200, 0, 0)
	surface.FillRect(ctx, 10, 10, 50, 50)

	surface.SetFillStyleAlpha(ctx, 0, 0, 200, 0.5)
	surface.FillRect(ctx, 30, 30, 50, 50)

	surface.DrawPixel(ctx, 500, 500)
	for i := 0; i < width; i += 5 {
		for j := 0; j < height; j += 5 {
			surface.DrawPixel(ctx, float64(i), float64(j))
		}
	}

	surface.SetStrokeStyle(ctx, 255, 0, 0)
	surface.StrokeRect(ctx, 500, 500, 50, 50)
	surface.ClearRect(ctx, 100, 300, 250, 400)

	for i := float64(width) / 2; i < float64(width); i += 15 {
		for j := 0; j < height; j += 5 {
			surface.ClearPixel(ctx, i, float64(j))
		}
	}
}
