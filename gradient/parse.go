package gradient

import (
	"strings"

	"gradc/colors"
	"gradc/common"
)

// Parse converts CSS gradient text, possibly several stacked gradients, into
// Stack. It never fails: anything it cannot make sense of is replaced with
// defaults.
func Parse(raw string) Stack {
	text := normalize(raw)

	var st Stack
	for _, layer := range splitLayers(text) {
		st.Gradients = append(st.Gradients, parseLayer(layer))
	}
	if len(st.Gradients) == 0 {
		st.Gradients = []Gradient{Default()}
	}
	return st
}

var vendorPrefixes = strings.NewReplacer("-webkit-", "", "-moz-", "")

// normalize lower cases text, removes vendor prefixes, semicolons and
// insignificant whitespace.
func normalize(raw string) string {
	s := strings.ToLower(strings.ReplaceAll(raw, ";", ""))
	s = vendorPrefixes.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	s = trimAround(s, ",")
	s = trimAround(s, "(")

	parts := strings.Split(s, ")")
	for i := range parts {
		if i < len(parts)-1 {
			parts[i] = strings.TrimRight(parts[i], " ")
		}
	}
	return strings.Join(parts, ")")
}

func trimAround(s, sep string) string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, sep)
}

// parseLayer converts a single gradient function into Gradient.
func parseLayer(text string) Gradient {
	name, body, found := strings.Cut(text, "(")
	if !found || body == "" {
		return Default()
	}

	typ := common.GradientTypeLinear
	switch {
	case strings.Contains(name, "radial"):
		typ = common.GradientTypeRadial
	case strings.Contains(name, "conic"):
		typ = common.GradientTypeConic
	}

	g := Gradient{
		Prefix:    DefaultPrefix(typ),
		Repeating: strings.Contains(name, "repeating-") && strings.Contains(name, "gradient"),
	}

	args := splitArgs(strings.TrimSuffix(body, ")"))
	if first := strings.TrimSpace(args[0]); first != "" && !colors.LooksLikeColor(first) {
		g.Prefix = parsePrefix(typ, first)
		args = args[1:]
	}

	g.Stops, g.Hints = parseStops(args, typ)
	if len(g.Stops) == 0 {
		def := Default()
		g.Stops, g.Hints = def.Stops, def.Hints
	}
	return g
}
