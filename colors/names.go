package colors

import (
	"strings"

	"golang.org/x/image/colornames"
)

// shortNames maps reduced hex to a keyword when the keyword is strictly
// shorter than hex.
var shortNames = func() map[string]string {
	m := make(map[string]string)
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		hex := RGBToHex(c.R, c.G, c.B, true)
		if len(name) >= len(hex) {
			continue
		}
		if prev, ok := m[hex]; ok && len(prev) <= len(name) {
			continue
		}
		m[hex] = name
	}
	return m
}()

// Named looks up CSS color keyword.
func Named(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "rebeccapurple" {
		return RGB(0x66, 0x33, 0x99), true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return RGB(c.R, c.G, c.B), true
}

// Names returns all known keywords.
func Names() []string {
	return append(append([]string{}, colornames.Names...), "rebeccapurple")
}
