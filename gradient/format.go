package gradient

import (
	"math"
	"strings"

	"gradc/colors"
	"gradc/common"
	"gradc/units"
)

// FormatOptions control output compression.
type FormatOptions struct {
	// MultiStops merges two adjacent stops of the same color into
	// "color <a> <b>" shorthand.
	MultiStops bool
}

// Format renders stack as CSS. Depending on mode it produces a single color
// (stop of gradient grad), the selected gradient or the whole stack. When all
// stops in scope share one color the color itself is returned.
func Format(st Stack, mode common.ViewMode, stop, grad int, opts FormatOptions) string {
	if len(st.Gradients) == 0 {
		return colors.Transparent.String()
	}
	grad = clampIndex(grad, len(st.Gradients))

	scope := st.Gradients
	if mode == common.ViewModeSingleGradient {
		scope = scope[grad : grad+1]
	}

	if mode == common.ViewModeColor || sameColor(scope) {
		stops := st.Gradients[grad].Stops
		if len(stops) == 0 {
			return colors.Transparent.String()
		}
		return stops[clampIndex(stop, len(stops))].Color.String()
	}

	layers := make([]string, 0, len(scope))
	for i := range scope {
		layers = append(layers, formatGradient(&scope[i], opts))
	}
	return strings.Join(layers, ", ")
}

// String renders the whole stack with hard edge compression on.
func (st Stack) String() string {
	return Format(st, common.ViewModeAllGradients, st.SelectedStop, st.Selected, FormatOptions{MultiStops: true})
}

// String renders single gradient with hard edge compression on.
func (g Gradient) String() string {
	return Format(Stack{Gradients: []Gradient{g}}, common.ViewModeAllGradients, 0, 0, FormatOptions{MultiStops: true})
}

// Strip renders stops and hints of g as left to right linear gradient, this
// is what editor shows on its stop strip.
func Strip(g Gradient, opts FormatOptions) string {
	strip := Gradient{Prefix: Linear{Angle: 90}, Stops: g.Stops, Hints: g.Hints}
	return Format(Stack{Gradients: []Gradient{strip}}, common.ViewModeAllGradients, 0, 0, opts)
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}

func sameColor(gs []Gradient) bool {
	first := ""
	for i := range gs {
		for _, s := range gs[i].Stops {
			c := s.Color.String()
			if first == "" {
				first = c
			} else if c != first {
				return false
			}
		}
	}
	return true
}

func formatGradient(g *Gradient, opts FormatOptions) string {
	var sb strings.Builder
	if g.Repeating {
		sb.WriteString("repeating-")
	}
	sb.WriteString(g.Type().String())
	sb.WriteString("-gradient(")
	if p := formatPrefix(g.Prefix); p != "" {
		sb.WriteString(p)
		sb.WriteString(", ")
	}

	stops, hints := g.Stops, g.Hints
	if len(stops) == 0 {
		def := Default()
		stops, hints = def.Stops, def.Hints
	}
	sb.WriteString(formatStops(stops, hints, g.Type() == common.GradientTypeConic, opts))
	sb.WriteByte(')')
	return sb.String()
}

func formatPrefix(prefix Prefix) string {
	switch p := prefix.(type) {
	case Linear:
		if units.ToFixed(p.Angle) == 180 {
			return ""
		}
		return units.FormatFixed(p.Angle) + "deg"
	case Radial:
		var words []string
		if p.Shape == common.RadialShapeSize {
			if p.Size.X.Unit == common.PositionUnitPixel && p.Size.Y.Unit == common.PositionUnitPixel && p.Size.X.Value == p.Size.Y.Value {
				words = append(words, p.Size.X.String())
			} else {
				words = append(words, p.Size.X.String(), p.Size.Y.String())
			}
		} else {
			if p.Shape == common.RadialShapeCircle {
				words = append(words, "circle")
			}
			if p.Extent != common.RadialExtentFarthestCorner {
				words = append(words, p.Extent.String())
			}
		}
		if at := formatAt(p.At); at != "" {
			words = append(words, at)
		}
		return strings.Join(words, " ")
	case Conic:
		var words []string
		if a := units.ToFixed(p.Angle); a != 0 && a != 360 {
			words = append(words, "from "+units.FormatFixed(a)+"deg")
		}
		if at := formatAt(p.At); at != "" {
			words = append(words, at)
		}
		return strings.Join(words, " ")
	}
	return ""
}

// formatAt renders position clause, empty when centered.
func formatAt(at Point) string {
	switch {
	case at.X.IsCenter() && at.Y.IsCenter():
		return ""
	case at.Y.IsCenter() && at.X.Unit == common.PositionUnitPercent:
		return "at " + at.X.String()
	}
	return "at " + at.X.String() + " " + at.Y.String()
}

// stopToken is a single comma separated item of the stop list: a color with
// its positions or a hint.
type stopToken struct {
	hint      bool
	color     string
	positions []string
}

func (t stopToken) String() string {
	if t.hint {
		return t.positions[0]
	}
	if len(t.positions) == 0 {
		return t.color
	}
	return t.color + " " + strings.Join(t.positions, " ")
}

func formatStops(stops []Stop, hints []Hint, conic bool, opts FormatOptions) string {
	reduced := reduceHints(stops, hints)
	elide := uniformlySpaced(stops, reduced)

	tokens := make([]stopToken, 0, len(stops)+len(reduced))
	for i, s := range stops {
		t := stopToken{color: s.Color.String()}
		if !elide {
			t.positions = []string{formatStopPosition(s, conic)}
		}
		tokens = append(tokens, t)
		if i < len(reduced) && reduced[i] != nil && !reduced[i].IsDefault() {
			tokens = append(tokens, stopToken{hint: true, positions: []string{units.FormatFixed(reduced[i].Position) + "%"}})
		}
	}

	if opts.MultiStops {
		tokens = mergeHardEdges(tokens)
	}
	trimEdges(tokens)

	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.String())
	}
	return strings.Join(out, ", ")
}

func formatStopPosition(s Stop, conic bool) string {
	switch {
	case conic:
		return units.FormatRound(s.Percent()*3.6) + "deg"
	case s.Unit == common.PositionUnitPixel:
		return units.FormatRound(s.Position) + "px"
	}
	return units.FormatFixed(s.Position) + "%"
}

// reduceHints drops hints between stops of the same rendered color.
func reduceHints(stops []Stop, hints []Hint) []*Hint {
	out := make([]*Hint, len(hints))
	for i := range hints {
		if i+1 < len(stops) && !stops[i].Color.Equal(stops[i+1].Color) {
			out[i] = &hints[i]
		}
	}
	return out
}

// uniformlySpaced reports if positions could be omitted entirely.
func uniformlySpaced(stops []Stop, hints []*Hint) bool {
	for _, h := range hints {
		if h != nil && !h.IsDefault() {
			return false
		}
	}

	total := len(stops) - 1
	if total < 1 {
		return false
	}
	first, last := stops[0], stops[total]
	if first.Unit != common.PositionUnitPercent || last.Unit != common.PositionUnitPercent {
		return false
	}
	if first.Position > 0 || last.Position < 100 {
		return false
	}

	for j := 1; j <= total; j++ {
		s := stops[j]
		if s.Unit != common.PositionUnitPercent || s.Color.Equal(stops[j-1].Color) {
			return false
		}
		if j < total && math.Abs(s.Position-float64(j)*100/float64(total)) > 0.01+1e-9 {
			return false
		}
	}
	return true
}

// mergeHardEdges replaces a pair of adjacent same color stops with the dual
// position shorthand. Runs of three or more are left alone.
func mergeHardEdges(tokens []stopToken) []stopToken {
	out := make([]stopToken, 0, len(tokens))
	for i := 0; i < len(tokens); {
		j := i + 1
		if !tokens[i].hint {
			for j < len(tokens) && !tokens[j].hint && tokens[j].color == tokens[i].color {
				j++
			}
		}
		a, b := tokens[i], tokens[min(i+1, len(tokens)-1)]
		if j-i == 2 && len(a.positions) == 1 && len(b.positions) == 1 {
			out = append(out, stopToken{color: a.color, positions: []string{a.positions[0], b.positions[0]}})
		} else {
			out = append(out, tokens[i:j]...)
		}
		i = j
	}
	return out
}

// trimEdges drops position of the first stop when it is zero and of the last
// one when it is the full length.
func trimEdges(tokens []stopToken) {
	if len(tokens) == 0 {
		return
	}
	if first := &tokens[0]; !first.hint && len(first.positions) == 1 {
		switch first.positions[0] {
		case "0%", "0px", "0deg":
			first.positions = nil
		}
	}
	if last := &tokens[len(tokens)-1]; !last.hint && len(last.positions) == 1 {
		switch last.positions[0] {
		case "100%", "360deg":
			last.positions = nil
		}
	}
}
