// Package palette holds RGB colors and piecewise-linear gradients used to
// color points outside the Mandelbrot set.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyGradient = errors.New("gradient has no stops")
	ErrBadHex        = errors.New("malformed hex color")
)

// Color is an opaque 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" (the leading # is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

var _ color.Color = Color{}

// Gradient is an ordered list of stops, from pct 0 (first) to pct 1 (last).
type Gradient []Color

// Validate reports ErrEmptyGradient for a gradient without stops.
func (g Gradient) Validate() error {
	if len(g) == 0 {
		return ErrEmptyGradient
	}
	return nil
}

// Lerp samples the straight line between start and end.
// Channels are computed as signed ints so end < start does not underflow.
func Lerp(start, end Color, pct float64) Color {
	return Color{
		R: lerpChannel(start.R, end.R, pct),
		G: lerpChannel(start.G, end.G, pct),
		B: lerpChannel(start.B, end.B, pct),
	}
}

func lerpChannel(c1, c2 uint8, pct float64) uint8 {
	from, to := int(c1), int(c2)
	return uint8(from + int(math.Round(float64(to-from)*pct)))
}

// Sample returns the color at pct along g.
// pct is clamped to [0, 1]. Sample panics on an empty gradient.
func Sample(g Gradient, pct float64) Color {
	switch len(g) {
	case 0:
		panic(ErrEmptyGradient)
	case 1:
		return g[0]
	}

	pct = clamp(pct)
	if len(g) == 2 {
		return Lerp(g[0], g[1], pct)
	}

	threshold := 1.0 / float64(len(g)-1)
	// pct == 1 would otherwise land one segment past the end
	start := min(int(math.Floor(pct/threshold)), len(g)-2)

	return Lerp(g[start], g[start+1], pct/threshold-float64(start))
}

func clamp(pct float64) float64 {
	switch {
	case math.IsNaN(pct), pct < 0:
		return 0
	case pct > 1:
		return 1
	}
	return pct
}
