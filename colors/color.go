// Package colors implements CSS color model used by gradient codec: color
// space conversions, color token grammar and canonical rendering.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an sRGB color with straight (non premultiplied) alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 255, G: 255, B: 255, A: 1}
)

// RGB constructs opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// IsTransparent reports fully transparent color.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// String returns canonical CSS representation: "transparent" for zero alpha,
// the shortest of keyword and hex for opaque colors, "rgba(r,g,b,a)"
// otherwise.
func (c Color) String() string {
	if c.A <= 0 {
		return "transparent"
	}
	if c.A >= 1 {
		hex := RGBToHex(c.R, c.G, c.B, true)
		if name, ok := shortNames[hex]; ok {
			return name
		}
		return hex
	}

	var sb strings.Builder
	sb.WriteString("rgba(")
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteByte(',')
	sb.WriteString(FormatAlpha(c.A))
	sb.WriteByte(')')
	return sb.String()
}

// Hex returns reduced hex of the color ignoring alpha.
func (c Color) Hex() string {
	return RGBToHex(c.R, c.G, c.B, true)
}

// NRGBA converts to image/color representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(SanitizeAlpha(c.A)*255 + 0.5)}
}

// Equal compares colors the way they are rendered, so all transparent colors
// are equal.
func (c Color) Equal(o Color) bool {
	return c.String() == o.String()
}

// MarshalText renders canonical CSS form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts any valid color token.
func (c *Color) UnmarshalText(text []byte) error {
	v, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("not a valid color: %q", string(text))
	}
	*c = v
	return nil
}
