package surface

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA composes a CSS style string. Channels are not range checked.
func RGBA(r, g, b int, a float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(a, 'g', -1, 64))
}

// SetFillStyle sets an opaque fill colour.
func SetFillStyle(ctx Context, r, g, b int) {
	SetFillStyleAlpha(ctx, r, g, b, 1)
}

// SetFillStyleAlpha sets the fill colour including alpha.
func SetFillStyleAlpha(ctx Context, r, g, b int, a float64) {
	if ctx == nil {
		return
	}
	ctx.SetFillStyle(RGBA(r, g, b, a))
}

// SetStrokeStyle sets an opaque stroke colour.
func SetStrokeStyle(ctx Context, r, g, b int) {
	SetStrokeStyleAlpha(ctx, r, g, b, 1)
}

// SetStrokeStyleAlpha sets the stroke colour including alpha.
func SetStrokeStyleAlpha(ctx Context, r, g, b int, a float64) {
	if ctx == nil {
		return
	}
	ctx.SetStrokeStyle(RGBA(r, g, b, a))
}

// ParseRGBA parses rgba(...)/rgb(...) functional notation, #RRGGBB[AA] hex
// and CSS colour names. The returned colour is not premultiplied.
func ParseRGBA(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") {
		return parseHex(spec, s)
	}
	var body string
	var withAlpha bool
	switch {
	case strings.HasPrefix(spec, "rgba(") && strings.HasSuffix(spec, ")"):
		body, withAlpha = spec[len("rgba("):len(spec)-1], true
	case strings.HasPrefix(spec, "rgb(") && strings.HasSuffix(spec, ")"):
		body = spec[len("rgb(") : len(spec)-1]
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	parts := strings.Split(body, ",")
	if (withAlpha && len(parts) != 4) || (!withAlpha && len(parts) != 3) {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		ch[i] = clampByte(v)
	}
	alpha := uint8(255)
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func parseHex(spec, orig string) (color.RGBA, error) {
	hex := spec[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", orig)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", orig)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	}
	return color.RGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
