package colors

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts a single valid color token into Color. Hex must carry
// leading '#' here, function notations must pass the grammar.
func Parse(token string) (Color, bool) {
	s := strings.ToLower(strings.TrimSpace(token))
	switch {
	case s == "":
		return Color{}, false
	case s == "transparent":
		return Transparent, true
	case s[0] == '#':
		if !IsHex(s) {
			return Color{}, false
		}
		return HexToRGB(s), true
	case IsRGBHSL(s):
		return ParseRGBHSL(s), true
	}
	return Named(s)
}

// ResolveStop resolves color word of a gradient stop. Unrecognized words
// become white.
func ResolveStop(word string) Color {
	if c, ok := Parse(word); ok {
		return c
	}
	return White
}

// ParseRGBHSL extracts values from rgb(a)/hsl(a) notation. It does not
// validate: channels are clamped, missing channels are 0 and missing alpha
// is 1.
func ParseRGBHSL(s string) Color {
	s = strings.ToLower(stripSpaces(s))
	if before, _, found := strings.Cut(s, ",)"); found {
		s = before + ",1)"
	}

	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if end < open {
		end = len(s)
	}
	var body string
	if open >= 0 {
		body = s[open+1 : end]
	}

	values := strings.Split(body, ",")
	for len(values) < 3 {
		values = append(values, "0")
	}
	if len(values) == 3 {
		values = append(values, "1")
	}

	hsl := strings.HasPrefix(s, "hsl")
	var ch [3]float64
	for i := range ch {
		hi := 255.0
		if hsl {
			hi = 100
			if i == 0 {
				hi = 360
			}
		}
		ch[i] = clampNaN(0, hi, math.Trunc(leadingNumber(values[i])))
	}
	alpha := SanitizeAlpha(leadingNumber(values[3]))

	if hsl {
		r, g, b := HSLToRGB(ch[0], ch[1], ch[2])
		return Color{R: r, G: g, B: b, A: alpha}
	}
	return Color{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: alpha}
}

// leadingNumber parses numeric prefix of s, NaN when there is none.
func leadingNumber(s string) float64 {
	end := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || (i == 0 && (c == '-' || c == '+')) {
			end = i + 1
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
