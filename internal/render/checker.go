package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// DrawCheckerboard fills rect of dst with alternating squares of light and
// dark. Squares are aligned to rect's origin so the pattern stays fixed
// relative to the canvas it backs.
func DrawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	if size <= 0 {
		size = 8
	}
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x-rect.Min.X)/size+(y-rect.Min.Y)/size)%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}

// Backdrop caches a checkerboard tile the size of the last request.
type Backdrop struct {
	Size        int
	Light, Dark color.Color

	cache *image.RGBA
}

// Draw copies the checkerboard into rect of dst, regenerating the cached
// pattern when the requested size changes.
func (b *Backdrop) Draw(dst *image.RGBA, rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	local := rect.Sub(rect.Min)
	if b.cache == nil || !b.cache.Bounds().Eq(local) {
		b.cache = image.NewRGBA(local)
		DrawCheckerboard(b.cache, local, b.Size, b.Light, b.Dark)
	}
	draw.Draw(dst, rect, b.cache, image.Point{}, draw.Src)
}
