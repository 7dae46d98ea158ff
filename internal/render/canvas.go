// Package render rasterises surface operations onto RGBA images.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/example/shineypaint/internal/surface"
)

const defaultStyle = "#000000"

type point struct{ x, y float64 }

type subpath struct {
	pts    []point
	closed bool
}

// Canvas implements surface.Context over an *image.RGBA. It is not safe for
// concurrent use.
type Canvas struct {
	img *image.RGBA

	fillStyle   string
	strokeStyle string
	fill        color.RGBA
	stroke      color.RGBA
	lineWidth   float64

	path []subpath

	// raster is reused between primitives and resized to each mask.
	raster *vector.Rasterizer
}

var _ surface.Context = (*Canvas)(nil)

// NewCanvas returns a transparent canvas of w by h pixels. Non-positive
// dimensions produce an empty canvas.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{
		img:         image.NewRGBA(image.Rect(0, 0, w, h)),
		fillStyle:   defaultStyle,
		strokeStyle: defaultStyle,
		fill:        color.RGBA{A: 255},
		stroke:      color.RGBA{A: 255},
		lineWidth:   1,
	}
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds reports the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Resize changes the canvas dimensions keeping existing pixels anchored at the
// top-left corner.
func (c *Canvas) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if c.img.Bounds().Dx() == w && c.img.Bounds().Dy() == h {
		return
	}
	next := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(next, next.Bounds(), c.img, image.Point{}, draw.Src)
	c.img = next
}

func (c *Canvas) FillStyle() string   { return c.fillStyle }
func (c *Canvas) StrokeStyle() string { return c.strokeStyle }
func (c *Canvas) LineWidth() float64  { return c.lineWidth }

// SetFillStyle applies style if it parses; otherwise the current fill is kept.
func (c *Canvas) SetFillStyle(style string) {
	col, err := surface.ParseRGBA(style)
	if err != nil {
		return
	}
	c.fillStyle, c.fill = style, col
}

// SetStrokeStyle applies style if it parses; otherwise the current stroke is kept.
func (c *Canvas) SetStrokeStyle(style string) {
	col, err := surface.ParseRGBA(style)
	if err != nil {
		return
	}
	c.strokeStyle, c.stroke = style, col
}

// SetLineWidth ignores zero, negative and non-finite widths.
func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return
	}
	c.lineWidth = w
}

func rectPoints(x, y, w, h float64) []point {
	return []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	if w == 0 || h == 0 {
		return
	}
	var m mask
	m.add(rectPoints(x, y, w, h), true)
	c.paint(&m, c.fill)
}

// StrokeRect outlines the rectangle with the current line width centred on
// its edges.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	var m mask
	hw := c.lineWidth / 2
	m.add(rectPoints(x-hw, y-hw, w+2*hw, h+2*hw), true)
	if w > 2*hw && h > 2*hw {
		m.add(rectPoints(x+hw, y+hw, w-2*hw, h-2*hw), false)
	}
	c.paint(&m, c.stroke)
}

// ClearRect sets every pixel touched by the rectangle to transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) BeginPath() { c.path = c.path[:0] }

func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, subpath{pts: []point{{x, y}}})
}

func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	c.extend(point{x, y})
}

func (c *Canvas) extend(p point) {
	last := &c.path[len(c.path)-1]
	if last.closed {
		start := last.pts[0]
		c.path = append(c.path, subpath{pts: []point{start}})
		last = &c.path[len(c.path)-1]
	}
	last.pts = append(last.pts, p)
}

func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	c.path[len(c.path)-1].closed = true
}

// Ellipse appends an elliptical arc to the current subpath, joining it to the
// previous point with a straight line. Negative radii are ignored.
func (c *Canvas) Ellipse(x, y, rx, ry, rotation, start, end float64, anticlockwise bool) {
	if rx < 0 || ry < 0 {
		return
	}
	sweep := arcSweep(start, end, anticlockwise)
	steps := int(math.Ceil(math.Abs(sweep) * math.Max(rx, ry) / 2))
	if steps < 8 {
		steps = 8
	}
	if steps > 1024 {
		steps = 1024
	}
	sin, cos := math.Sincos(rotation)
	for i := 0; i <= steps; i++ {
		theta := start + sweep*float64(i)/float64(steps)
		ex, ey := rx*math.Cos(theta), ry*math.Sin(theta)
		p := point{x + ex*cos - ey*sin, y + ex*sin + ey*cos}
		if i == 0 && len(c.path) == 0 {
			c.MoveTo(p.x, p.y)
			continue
		}
		c.extend(p)
	}
}

// arcSweep returns the signed angle travelled from start to end.
func arcSweep(start, end float64, anticlockwise bool) float64 {
	const full = 2 * math.Pi
	if !anticlockwise {
		if end-start >= full {
			return full
		}
		s := math.Mod(end-start, full)
		if s < 0 {
			s += full
		}
		return s
	}
	if start-end >= full {
		return -full
	}
	s := math.Mod(start-end, full)
	if s < 0 {
		s += full
	}
	return -s
}

// Fill fills every subpath of the current path with the fill colour.
func (c *Canvas) Fill() {
	var m mask
	for _, sp := range c.path {
		if len(sp.pts) >= 3 {
			m.addRaw(sp.pts)
		}
	}
	c.paint(&m, c.fill)
}

// Stroke outlines the current path with round joins and butt caps.
func (c *Canvas) Stroke() {
	var m mask
	hw := c.lineWidth / 2
	drawn := false
	for _, sp := range c.path {
		pts := sp.pts
		if sp.closed && len(pts) > 2 {
			pts = append(append([]point(nil), pts...), pts[0])
		}
		for i := 1; i < len(pts); i++ {
			if segmentQuad(&m, pts[i-1], pts[i], hw) {
				drawn = true
			}
			if i > 1 || sp.closed {
				m.add(circlePoints(pts[i-1], hw), true)
			}
		}
	}
	if drawn {
		c.paint(&m, c.stroke)
	}
}

func segmentQuad(m *mask, a, b point, hw float64) bool {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return false
	}
	nx, ny := -dy/l*hw, dx/l*hw
	m.add([]point{
		{a.x + nx, a.y + ny},
		{b.x + nx, b.y + ny},
		{b.x - nx, b.y - ny},
		{a.x - nx, a.y - ny},
	}, true)
	return true
}

func circlePoints(p point, radius float64) []point {
	n := int(math.Ceil(radius * 2))
	if n < 8 {
		n = 8
	}
	pts := make([]point, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = point{p.x + radius*cos, p.y + radius*sin}
	}
	return pts
}

// mask collects closed polygons for one rasterised primitive and tracks
// their bounding box.
type mask struct {
	polys                  [][]point
	minX, minY, maxX, maxY float64
}

// add appends a polygon with a fixed winding. The rasteriser sums signed
// coverage, so overlapping shapes must agree on orientation to union and
// disagree to subtract.
func (m *mask) add(pts []point, positive bool) {
	if len(pts) < 3 {
		return
	}
	if (signedArea(pts) >= 0) != positive {
		rev := make([]point, len(pts))
		for i, p := range pts {
			rev[len(pts)-1-i] = p
		}
		pts = rev
	}
	m.addRaw(pts)
}

// addRaw appends a polygon keeping its own winding.
func (m *mask) addRaw(pts []point) {
	if len(m.polys) == 0 {
		m.minX, m.minY = math.Inf(1), math.Inf(1)
		m.maxX, m.maxY = math.Inf(-1), math.Inf(-1)
	}
	for _, p := range pts {
		m.minX, m.maxX = math.Min(m.minX, p.x), math.Max(m.maxX, p.x)
		m.minY, m.maxY = math.Min(m.minY, p.y), math.Max(m.maxY, p.y)
	}
	m.polys = append(m.polys, pts)
}

// bounds is the pixel rectangle covering every polygon.
func (m *mask) bounds() image.Rectangle {
	if len(m.polys) == 0 {
		return image.Rectangle{}
	}
	const limit = 1 << 24
	clamp := func(v float64) int { return int(math.Max(-limit, math.Min(limit, v))) }
	return image.Rect(
		clamp(math.Floor(m.minX)), clamp(math.Floor(m.minY)),
		clamp(math.Ceil(m.maxX)), clamp(math.Ceil(m.maxY)),
	)
}

func signedArea(pts []point) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.x*q.y - q.x*p.y
	}
	return a / 2
}

// paint composites col through m, rasterising only the part of the canvas
// the mask covers.
func (c *Canvas) paint(m *mask, col color.RGBA) {
	if col.A == 0 {
		return
	}
	rect := m.bounds().Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	if c.raster == nil {
		c.raster = vector.NewRasterizer(w, h)
	} else {
		c.raster.Reset(w, h)
	}
	r := c.raster
	r.DrawOp = draw.Over
	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)
	for _, pts := range m.polys {
		r.MoveTo(float32(pts[0].x-ox), float32(pts[0].y-oy))
		for _, p := range pts[1:] {
			r.LineTo(float32(p.x-ox), float32(p.y-oy))
		}
		r.ClosePath()
	}
	r.Draw(c.img, rect, image.NewUniform(premultiply(col)), image.Point{})
}

func premultiply(c color.RGBA) color.RGBA {
	if c.A == 255 {
		return c
	}
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}
