package gradient

import (
	"fmt"

	"gradc/common"
	"gradc/units"
	"gradc/utils/debug"
)

// Dump returns a tree-like debug representation of the stack.
func (st Stack) Dump() string {
	tw := debug.NewTreeWriter()

	tw.Line(0, "Stack: %d gradient(s), selected %d, selected stop %d", len(st.Gradients), st.Selected, st.SelectedStop)
	for i := range st.Gradients {
		g := &st.Gradients[i]
		name := g.Type().String()
		if g.Repeating {
			name = "repeating " + name
		}
		tw.Line(1, "[%d] %s", i, name)
		dumpPrefix(tw, 2, g.Prefix)

		stops := make([]string, 0, len(g.Stops))
		for _, s := range g.Stops {
			stops = append(stops, fmt.Sprintf("%s at %s%s (%s%%)", s.Color, units.FormatFixed(s.Position), s.Unit.Suffix(), units.FormatFixed(s.Percent())))
		}
		tw.List(2, "Stops", stops)

		hints := make([]string, 0, len(g.Hints))
		for _, h := range g.Hints {
			hints = append(hints, fmt.Sprintf("%s%% at %s%%", units.FormatFixed(h.Percentage), units.FormatFixed(h.Position)))
		}
		tw.List(2, "Hints", hints)
	}
	return tw.String()
}

func dumpPrefix(tw *debug.TreeWriter, depth int, prefix Prefix) {
	switch p := prefix.(type) {
	case Linear:
		tw.Line(depth, "Angle: %sdeg (%s)", units.FormatFixed(p.Angle), DirectionOf(p.Angle))
	case Radial:
		tw.Line(depth, "Shape: %s", p.Shape)
		if p.Shape == common.RadialShapeSize {
			tw.Line(depth, "Size: %s %s", p.Size.X, p.Size.Y)
		} else {
			tw.Line(depth, "Extent: %s", p.Extent)
		}
		tw.Line(depth, "At: %s %s", p.At.X, p.At.Y)
	case Conic:
		tw.Line(depth, "From: %sdeg", units.FormatFixed(p.Angle))
		tw.Line(depth, "At: %s %s", p.At.X, p.At.Y)
	}
}

// MarshalYAML adds gradient type to the output, so the prefix could be told
// apart.
func (g Gradient) MarshalYAML() (any, error) {
	return struct {
		Type      common.GradientType `yaml:"type"`
		Repeating bool                `yaml:"repeating"`
		Prefix    Prefix              `yaml:"prefix"`
		Stops     []Stop              `yaml:"stops"`
		Hints     []Hint              `yaml:"hints"`
	}{g.Type(), g.Repeating, g.Prefix, g.Stops, g.Hints}, nil
}
