package colors

import (
	"regexp"
	"strings"
)

const (
	reChannel = `(25[0-5]|2[0-4]\d|1\d\d|0?\d?\d)`
	reHue     = `(360|3[0-5]\d|[12]\d\d|0?\d?\d)`
	rePercent = `(100|0?\d?\d)%`
	reAlpha   = `(0(?:\.\d+)?|1(?:\.0+)?|\.\d+)`
)

var (
	hexRe  = regexp.MustCompile(`(?i)^([0-9a-f]{3}|[0-9a-f]{6})$`)
	rgbRe  = regexp.MustCompile(`(?i)^rgb\(` + reChannel + `,` + reChannel + `,` + reChannel + `\)$`)
	rgbaRe = regexp.MustCompile(`(?i)^rgba\(` + reChannel + `,` + reChannel + `,` + reChannel + `,` + reAlpha + `\)$`)
	hslRe  = regexp.MustCompile(`(?i)^hsl\(` + reHue + `,` + rePercent + `,` + rePercent + `\)$`)
	hslaRe = regexp.MustCompile(`(?i)^hsla\(` + reHue + `,` + rePercent + `,` + rePercent + `,` + reAlpha + `\)$`)

	gradientRe        = regexp.MustCompile(`^(repeating-)?(linear|radial|conic)-gradient\(.*\)$`)
	gradientNoConicRe = regexp.MustCompile(`^(repeating-)?(linear|radial)-gradient\(.*\)$`)
)

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// IsHex validates 3 or 6 digit hex color, leading '#' is optional.
func IsHex(s string) bool {
	return hexRe.MatchString(strings.TrimPrefix(s, "#"))
}

// IsRGB validates "rgb(r,g,b)", whitespace is ignored.
func IsRGB(s string) bool {
	return rgbRe.MatchString(stripSpaces(s))
}

// IsRGBA validates "rgba(r,g,b,a)", whitespace is ignored.
func IsRGBA(s string) bool {
	return rgbaRe.MatchString(stripSpaces(s))
}

// IsHSL validates "hsl(h,s%,l%)", whitespace is ignored.
func IsHSL(s string) bool {
	return hslRe.MatchString(stripSpaces(s))
}

// IsHSLA validates "hsla(h,s%,l%,a)", whitespace is ignored.
func IsHSLA(s string) bool {
	return hslaRe.MatchString(stripSpaces(s))
}

// IsRGBHSL is true for any of the functional notations.
func IsRGBHSL(s string) bool {
	return IsRGB(s) || IsRGBA(s) || IsHSL(s) || IsHSLA(s)
}

// IsNamed reports CSS color keyword (case insensitive).
func IsNamed(s string) bool {
	_, ok := Named(s)
	return ok
}

// IsValidColor is the union of all color grammars plus "transparent".
func IsValidColor(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "transparent") || IsHex(s) || IsNamed(s) || IsRGBHSL(s)
}

// IsGradient reports if s looks like a single or stacked gradient function.
// Input is expected to be lower cased and trimmed.
func IsGradient(s string, conic bool) bool {
	if conic {
		return gradientRe.MatchString(s)
	}
	return gradientNoConicRe.MatchString(s)
}

// LooksLikeColor reports if leading word of s is an attempt to specify color,
// whether valid or not: hex, functional notation, keyword or "transparent".
func LooksLikeColor(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	if s[0] == '#' || strings.HasPrefix(s, "rgb") || strings.HasPrefix(s, "hsl") {
		return true
	}
	word, _, _ := strings.Cut(s, " ")
	return word == "transparent" || IsNamed(word)
}
