package gradient

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"gradc/colors"
	"gradc/common"
	"gradc/units"
)

// stopArg is a classified gradient argument: color with optional position
// words or a hint marker.
type stopArg struct {
	hint  bool
	value float64 // hint marker on percent basis
	color colors.Color
	words []string
}

// hintMark is a hint marker found between two stops.
type hintMark struct {
	set   bool
	value float64
}

// draftStop is a stop which position may not be known yet.
type draftStop struct {
	color colors.Color
	pos   float64
	unit  common.PositionUnit
	has   bool
}

func (d draftStop) percent() float64 {
	return units.ToPercent(d.pos, d.unit)
}

// parseStops converts gradient arguments into stops and hints.
func parseStops(args []string, typ common.GradientType) ([]Stop, []Hint) {
	var items []stopArg
	for _, a := range args {
		if a = strings.TrimSpace(a); a != "" {
			items = append(items, classifyArg(a, typ))
		}
	}

	colorCount := 0
	for _, it := range items {
		if !it.hint {
			colorCount++
		}
	}
	if colorCount == 1 {
		for _, it := range items {
			if !it.hint {
				items = append(items, stopArg{color: it.color, words: []string{"100%"}})
				break
			}
		}
	}

	var (
		drafts  []draftStop
		marks   []hintMark
		pending hintMark
	)
	for _, it := range items {
		if it.hint {
			// leading markers are dropped, the last of consecutive ones wins
			if len(drafts) > 0 {
				pending = hintMark{set: true, value: it.value}
			}
			continue
		}
		if len(drafts) > 0 {
			marks = append(marks, pending)
		}
		pending = hintMark{}

		expanded := expandArg(it, typ)
		drafts = append(drafts, expanded[0])
		if len(expanded) > 1 {
			marks = append(marks, hintMark{})
			drafts = append(drafts, expanded[1])
		}
	}
	if len(drafts) == 0 {
		return nil, nil
	}

	inferPositions(drafts)

	stops := make([]Stop, len(drafts))
	for i, d := range drafts {
		stops[i] = Stop{Color: d.color, Position: d.pos, Unit: d.unit}
	}
	slices.SortStableFunc(stops, func(a, b Stop) int {
		return cmp.Compare(a.Percent(), b.Percent())
	})
	return stops, materializeHints(stops, marks)
}

// classifyArg tells hint markers from colors. Anything starting with a number
// is a hint marker.
func classifyArg(arg string, typ common.GradientType) stopArg {
	if d, ok := units.ParseDimension(arg); ok {
		v := d.Value
		switch {
		case typ == common.GradientTypeConic && !d.IsPercent():
			v = parseAngle(arg, 0) / 360 * 100
		case d.Unit == "px":
			v = units.PixelsToPercent(v)
		}
		return stopArg{hint: true, value: units.Clamp(0, 100, v)}
	}

	words := splitWords(arg)
	if len(words) == 0 {
		return stopArg{color: colors.White}
	}
	return stopArg{color: colors.ResolveStop(words[0]), words: words[1:]}
}

// expandArg returns one stop, or two stops of the same color when argument
// carries two positions.
func expandArg(it stopArg, typ common.GradientType) []draftStop {
	switch {
	case len(it.words) >= 2:
		a, okA := stopPosition(it.words[0], typ)
		if !okA {
			a = draftStop{pos: 0, unit: common.PositionUnitPercent}
		}
		b, okB := stopPosition(it.words[1], typ)
		if !okB {
			b = draftStop{pos: 100, unit: common.PositionUnitPercent}
		}
		a.color, a.has = it.color, true
		b.color, b.has = it.color, true
		if a.percent() < b.percent() {
			return []draftStop{a, b}
		}
		return []draftStop{b, a}
	case len(it.words) == 1:
		if d, ok := stopPosition(it.words[0], typ); ok {
			d.color, d.has = it.color, true
			return []draftStop{d}
		}
	}
	return []draftStop{{color: it.color, unit: common.PositionUnitPercent}}
}

// stopPosition interprets stop position word according to gradient type:
// conic positions are angles, radial positions may be angles.
func stopPosition(word string, typ common.GradientType) (draftStop, bool) {
	d, ok := units.ParseDimension(word)
	if !ok {
		return draftStop{}, false
	}
	switch {
	case typ == common.GradientTypeConic:
		return draftStop{pos: parseAngle(word, 0) / 360 * 100, unit: common.PositionUnitPercent}, true
	case typ == common.GradientTypeRadial && d.Unit == "deg":
		return draftStop{pos: units.Clamp(0, 1, d.Value/360) * 100, unit: common.PositionUnitPercent}, true
	}
	return draftStop{pos: d.Value, unit: d.PositionUnit()}, true
}

// inferPositions clamps known positions, assigns missing ones and makes
// positions non decreasing.
func inferPositions(drafts []draftStop) {
	n := len(drafts)
	if !drafts[0].has {
		drafts[0].pos, drafts[0].unit, drafts[0].has = 0, common.PositionUnitPercent, true
	}
	if !drafts[n-1].has {
		drafts[n-1].pos, drafts[n-1].unit, drafts[n-1].has = 100, common.PositionUnitPercent, true
	}

	for i := range drafts {
		d := &drafts[i]
		if !d.has {
			continue
		}
		if d.unit == common.PositionUnitPixel {
			d.pos = units.Clamp(0, units.MaxPositionPixels, d.pos)
		} else {
			d.pos = units.Clamp(0, 100, units.ToFixed(d.pos))
		}
		if math.IsNaN(d.pos) {
			d.pos = 0
		}
	}

	// runs of stops without positions are spread evenly between neighbors
	for i := 1; i < n; {
		if drafts[i].has {
			i++
			continue
		}
		j := i
		for !drafts[j].has {
			j++
		}
		lo := units.Clamp(0, 100, drafts[i-1].percent())
		hi := units.Clamp(0, 100, drafts[j].percent())
		step := (hi - lo) / float64(j-i+1)
		for k := i; k < j; k++ {
			pos := units.ToFixed(lo + step*float64(k-i+1))
			drafts[k].pos, drafts[k].unit, drafts[k].has = pos, common.PositionUnitPercent, true
		}
		i = j
	}

	for i := 1; i < n; i++ {
		prev, cur := drafts[i-1].percent(), drafts[i].percent()
		if cur >= prev {
			continue
		}
		if drafts[i].unit == common.PositionUnitPixel {
			drafts[i].pos = units.PercentToPixels(prev)
		} else {
			drafts[i].pos = prev
		}
	}
}

// materializeHints turns hint markers into hints between adjacent stops.
func materializeHints(stops []Stop, marks []hintMark) []Hint {
	hints := make([]Hint, 0, len(stops))
	for i := 0; i+1 < len(stops); i++ {
		a, b := stops[i].Percent(), stops[i+1].Percent()
		lo, hi := math.Min(a, b), math.Max(a, b)
		diff := hi - lo

		if i >= len(marks) || !marks[i].set {
			hints = append(hints, Hint{Percentage: 50, Position: lo + units.ToFixed(diff*0.5)})
			continue
		}

		pos := units.Clamp(lo, hi, marks[i].value)
		pct := (pos - lo) / diff * 100
		if math.IsNaN(pct) || math.IsInf(pct, 0) {
			pct = 50
		}
		hints = append(hints, Hint{Percentage: pct, Position: pos})
	}
	return hints
}
