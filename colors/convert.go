package colors

import (
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBToHSL converts 8 bit RGB to hue in [0, 360), saturation and lightness in
// [0, 100].
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l = c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return h, s * 100, l * 100
}

// HSLToRGB converts hue (degrees), saturation and lightness (percent) to 8 bit
// RGB. Arguments are clamped into their ranges first.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	h = clampNaN(0, 360, h)
	s = clampNaN(0, 100, s)
	l = clampNaN(0, 100, l)
	return colorful.Hsl(h, s/100, l/100).Clamped().RGB255()
}

// RGBToHSB converts 8 bit RGB to hue, saturation and brightness. Gray colors
// always report hue 0.
func RGBToHSB(r, g, b uint8) (h, s, v float64) {
	rr, gg, bb := float64(r), float64(g), float64(b)
	hi := math.Max(rr, math.Max(gg, bb))
	delta := hi - math.Min(rr, math.Min(gg, bb))

	if hi != 0 {
		s = 255 * delta / hi
	}
	if s != 0 {
		switch hi {
		case rr:
			h = (gg - bb) / delta
		case gg:
			h = 2 + (bb-rr)/delta
		default:
			h = 4 + (rr-gg)/delta
		}
	} else {
		h = -1
	}

	h *= 60
	s *= 100.0 / 255
	v = hi * 100 / 255

	if h < 0 {
		h += 360
	}
	if h == 300 && s == 0 {
		h = 0
	}
	return h, s, v
}

// HSBA is a palette position of the color: hue, brightness and the alpha
// derived from saturation.
type HSBA struct {
	H, B, Alpha float64
}

// PaletteData returns palette coordinates for the color.
func PaletteData(c Color) HSBA {
	h, s, b := RGBToHSB(c.R, c.G, c.B)
	return HSBA{H: h, B: b, Alpha: (100 - s) / 100}
}

// HexToRGB converts 3 or 6 digit hex (with or without leading '#') to opaque
// color, anything else yields black.
func HexToRGB(hex string) Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if !hexRe.MatchString(hex) {
		return Black
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Black
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

const hexDigits = "0123456789abcdef"

// RGBToHex returns lower case "#rrggbb", or "#rgb" when reduce is requested and
// possible.
func RGBToHex(r, g, b uint8, reduce bool) string {
	buf := []byte{'#',
		hexDigits[r>>4], hexDigits[r&0x0f],
		hexDigits[g>>4], hexDigits[g&0x0f],
		hexDigits[b>>4], hexDigits[b&0x0f],
	}
	if reduce && buf[1] == buf[2] && buf[3] == buf[4] && buf[5] == buf[6] {
		return string([]byte{'#', buf[1], buf[3], buf[5]})
	}
	return string(buf)
}

// ReduceHex lower cases hex color and collapses it to 3 digits when possible.
// Non hex strings are only lower cased.
func ReduceHex(s string) string {
	s = strings.ToLower(s)
	if len(s) == 7 && s[0] == '#' && s[1] == s[2] && s[3] == s[4] && s[5] == s[6] {
		return string([]byte{'#', s[1], s[3], s[5]})
	}
	return s
}

// SanitizeAlpha clamps alpha into [0, 1] and rounds it to 2 decimals. NaN
// becomes 1.
func SanitizeAlpha(a float64) float64 {
	if math.IsNaN(a) {
		return 1
	}
	return math.Round(clampNaN(0, 1, a)*100) / 100
}

// FormatAlpha renders sanitized alpha without trailing zeros.
func FormatAlpha(a float64) string {
	return strconv.FormatFloat(SanitizeAlpha(a), 'f', -1, 64)
}

func clampNaN(lo, hi, v float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
