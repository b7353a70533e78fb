// Package gradient converts CSS gradient text into editable data model and
// back into canonical CSS.
package gradient

import (
	"math"

	"gradc/colors"
	"gradc/common"
	"gradc/units"
)

// Position is a coordinate or a length with its unit.
type Position struct {
	Value float64             `yaml:"value"`
	Unit  common.PositionUnit `yaml:"unit"`
}

func Percent(v float64) Position {
	return Position{Value: v, Unit: common.PositionUnitPercent}
}

func Pixels(v float64) Position {
	return Position{Value: v, Unit: common.PositionUnitPixel}
}

// IsCenter reports 50%.
func (p Position) IsCenter() bool {
	return p.Value == 50 && p.Unit == common.PositionUnitPercent
}

// String renders position as CSS length.
func (p Position) String() string {
	if p.Unit == common.PositionUnitPixel {
		return units.FormatRound(p.Value) + "px"
	}
	return units.FormatFixed(p.Value) + "%"
}

// Point is a pair of positions, used for radial/conic center and radial size.
type Point struct {
	X Position `yaml:"x"`
	Y Position `yaml:"y"`
}

// Center of the gradient box.
var Center = Point{X: Percent(50), Y: Percent(50)}

// DefaultSize of explicitly sized radial gradient.
var DefaultSize = Point{X: Percent(75), Y: Percent(75)}

// Stop is a color stop.
type Stop struct {
	Color    colors.Color        `yaml:"color"`
	Position float64             `yaml:"position"`
	Unit     common.PositionUnit `yaml:"unit"`
}

// Percent returns stop position on percent basis.
func (s Stop) Percent() float64 {
	return units.ToPercent(s.Position, s.Unit)
}

// Hint is a color transition hint between two adjacent stops. Percentage is
// relative to the interval between stops, Position is absolute in percent.
type Hint struct {
	Percentage float64 `yaml:"percentage"`
	Position   float64 `yaml:"position"`
}

// IsDefault reports hint without visual effect.
func (h Hint) IsDefault() bool {
	return h.Percentage == 50
}

// Prefix is the gradient function clause preceding color stops: one of
// Linear, Radial or Conic.
type Prefix interface {
	Type() common.GradientType
	isPrefix()
}

// Linear gradient direction.
type Linear struct {
	Angle float64 `yaml:"angle"`
}

// Radial gradient shape, extent, center and explicit size (used only when
// shape is "size").
type Radial struct {
	Shape  common.RadialShape  `yaml:"shape"`
	Extent common.RadialExtent `yaml:"extent"`
	At     Point               `yaml:"at"`
	Size   Point               `yaml:"size"`
}

// Conic gradient start angle and center.
type Conic struct {
	Angle float64 `yaml:"angle"`
	At    Point   `yaml:"at"`
}

func (Linear) Type() common.GradientType { return common.GradientTypeLinear }
func (Radial) Type() common.GradientType { return common.GradientTypeRadial }
func (Conic) Type() common.GradientType  { return common.GradientTypeConic }

func (Linear) isPrefix() {}
func (Radial) isPrefix() {}
func (Conic) isPrefix()  {}

// DefaultPrefix returns prefix used when gradient text does not have one.
func DefaultPrefix(t common.GradientType) Prefix {
	switch t {
	case common.GradientTypeRadial:
		return Radial{
			Shape:  common.RadialShapeEllipse,
			Extent: common.RadialExtentFarthestCorner,
			At:     Center,
			Size:   DefaultSize,
		}
	case common.GradientTypeConic:
		return Conic{At: Center}
	default:
		return Linear{Angle: 180}
	}
}

// Gradient is a single gradient layer. It always has at least one stop and
// len(Stops)-1 hints.
type Gradient struct {
	Prefix    Prefix `yaml:"prefix"`
	Repeating bool   `yaml:"repeating"`
	Stops     []Stop `yaml:"stops"`
	Hints     []Hint `yaml:"hints"`
}

// Type of the gradient.
func (g *Gradient) Type() common.GradientType {
	if g.Prefix == nil {
		return common.GradientTypeLinear
	}
	return g.Prefix.Type()
}

// Stack is an ordered list of gradient layers, first one is painted on top.
// Selected and SelectedStop are editor state.
type Stack struct {
	Gradients    []Gradient `yaml:"gradients"`
	Selected     int        `yaml:"selected"`
	SelectedStop int        `yaml:"selected_stop"`
}

// DefaultStops are transparent to black.
func DefaultStops() []Stop {
	return []Stop{
		{Color: colors.Transparent, Position: 0, Unit: common.PositionUnitPercent},
		{Color: colors.Black, Position: 100, Unit: common.PositionUnitPercent},
	}
}

// Default returns top to bottom transparent to black gradient.
func Default() Gradient {
	return Gradient{
		Prefix: DefaultPrefix(common.GradientTypeLinear),
		Stops:  DefaultStops(),
		Hints:  []Hint{{Percentage: 50, Position: 50}},
	}
}

// SingleColor returns a one layer stack holding a single stop of color c.
func SingleColor(c colors.Color) Stack {
	return Stack{Gradients: []Gradient{{
		Prefix: DefaultPrefix(common.GradientTypeLinear),
		Stops:  []Stop{{Color: c, Unit: common.PositionUnitPercent}},
		Hints:  []Hint{},
	}}}
}

// Clone returns deep copy of the gradient.
func (g Gradient) Clone() Gradient {
	g.Stops = append([]Stop(nil), g.Stops...)
	g.Hints = append([]Hint(nil), g.Hints...)
	return g
}

// Clone returns deep copy of the stack.
func (st Stack) Clone() Stack {
	gs := make([]Gradient, len(st.Gradients))
	for i := range st.Gradients {
		gs[i] = st.Gradients[i].Clone()
	}
	st.Gradients = gs
	return st
}

// RecomputeHints brings hints in sync with stops. When fromPercentage is set
// hint positions are derived from percentages, otherwise percentages are
// derived from positions.
func (g *Gradient) RecomputeHints(fromPercentage bool) {
	for i := len(g.Hints); i < len(g.Stops)-1; i++ {
		lo, hi := g.interval(i)
		g.Hints = append(g.Hints, Hint{Percentage: 50, Position: lo + (hi-lo)*0.5})
	}
	for i := range g.Hints {
		if i+1 >= len(g.Stops) {
			g.Hints = g.Hints[:i]
			break
		}
		lo, hi := g.interval(i)
		h := &g.Hints[i]
		if fromPercentage {
			h.Position = lo + (hi-lo)*h.Percentage*0.01
			continue
		}
		p := (h.Position - lo) / (hi - lo) * 100
		if math.IsNaN(p) || math.IsInf(p, 0) {
			p = 50
		}
		h.Percentage = units.Clamp(0, 100, p)
	}
}

// interval returns percent basis bounds of the interval after stop i.
func (g *Gradient) interval(i int) (lo, hi float64) {
	a, b := g.Stops[i].Percent(), g.Stops[i+1].Percent()
	return math.Min(a, b), math.Max(a, b)
}
