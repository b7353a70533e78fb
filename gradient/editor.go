package gradient

import (
	"cmp"
	"slices"

	"gradc/common"
	"gradc/units"
)

// NextPosition returns percent position for a stop added after stop index:
// the end of the strip when there is room there, middle of the interval
// otherwise.
func (g *Gradient) NextPosition(index int) float64 {
	n := len(g.Stops)
	if n == 0 {
		return 0
	}
	index = clampIndex(index, n)
	next := min(index+1, n-1)
	end := g.Stops[next].Percent()

	if n < 2 {
		if end < 100 {
			return 100
		}
		return 0
	}
	if next == n-1 && end < 100 {
		return 100
	}

	start := index
	if start == next {
		start = index - 1
	}
	begin := g.Stops[start].Percent()
	return begin + (end-begin)*0.5
}

// AddStop inserts a copy of stop index at NextPosition(index) and returns
// index of the new stop.
func (g *Gradient) AddStop(index int) int {
	if len(g.Stops) == 0 {
		*g = Default()
		return 0
	}
	index = clampIndex(index, len(g.Stops))
	s := Stop{
		Color:    g.Stops[index].Color,
		Position: units.ToFixed(g.NextPosition(index)),
		Unit:     common.PositionUnitPercent,
	}
	return g.InsertStop(s)
}

// InsertStop adds stop keeping stops ordered and returns its index.
func (g *Gradient) InsertStop(s Stop) int {
	at, _ := slices.BinarySearchFunc(g.Stops, s.Percent(), func(e Stop, t float64) int {
		if e.Percent() <= t {
			return -1
		}
		return 1
	})
	g.Stops = slices.Insert(g.Stops, at, s)
	if len(g.Stops) > 1 {
		g.Hints = append(g.Hints, Hint{Percentage: 50})
	}
	g.RecomputeHints(true)
	return at
}

// RemoveStop deletes stop index, the last remaining stop is never removed.
func (g *Gradient) RemoveStop(index int) bool {
	if len(g.Stops) < 2 || index < 0 || index >= len(g.Stops) {
		return false
	}
	g.Stops = slices.Delete(g.Stops, index, index+1)
	// hint after the removed stop goes away, or the one before the last stop
	if h := min(index, len(g.Hints)-1); h >= 0 {
		g.Hints = slices.Delete(g.Hints, h, h+1)
	}
	g.RecomputeHints(true)
	return true
}

// MoveStop changes stop position, stops are kept ordered. It returns new index
// of the moved stop.
func (g *Gradient) MoveStop(index int, position float64, unit common.PositionUnit) int {
	if index < 0 || index >= len(g.Stops) {
		return index
	}
	s := g.Stops[index]
	s.Position = units.Clamp(0, units.MaxFor(unit), position)
	s.Unit = unit
	g.Stops = slices.Delete(g.Stops, index, index+1)
	if len(g.Hints) > 0 {
		g.Hints = g.Hints[:len(g.Hints)-1]
	}
	return g.InsertStop(s)
}

func mirror(pct float64) float64 {
	if pct < 50 {
		return pct + (50-pct)*2
	}
	return pct - (pct-50)*2
}

// Reverse flips gradient direction: stops are mirrored around the middle of
// the strip, hints keep their absolute positions mirrored as well.
func (g *Gradient) Reverse() {
	slices.Reverse(g.Stops)
	slices.Reverse(g.Hints)
	for i := range g.Stops {
		s := &g.Stops[i]
		if s.Unit == common.PositionUnitPixel {
			s.Position = units.PercentToPixels(mirror(units.PixelsToPercent(s.Position)))
		} else {
			s.Position = mirror(s.Position)
		}
	}
	for i := range g.Hints {
		g.Hints[i].Position = mirror(g.Hints[i].Position)
	}
	slices.SortStableFunc(g.Stops, func(a, b Stop) int {
		return cmp.Compare(a.Percent(), b.Percent())
	})
	g.RecomputeHints(false)
}

// AddGradient appends a copy of the selected gradient and selects it.
func (st *Stack) AddGradient() {
	if len(st.Gradients) == 0 {
		st.Gradients = []Gradient{Default()}
		st.Selected, st.SelectedStop = 0, 0
		return
	}
	cur := st.Gradients[clampIndex(st.Selected, len(st.Gradients))]
	st.Gradients = append(st.Gradients, cur.Clone())
	st.Selected, st.SelectedStop = len(st.Gradients)-1, 0
}

// RemoveGradient deletes gradient index, the last one is never removed.
func (st *Stack) RemoveGradient(index int) bool {
	if len(st.Gradients) < 2 || index < 0 || index >= len(st.Gradients) {
		return false
	}
	st.Gradients = slices.Delete(st.Gradients, index, index+1)
	st.Selected = clampIndex(st.Selected, len(st.Gradients))
	st.SelectedStop = 0
	return true
}

// MoveGradient changes stacking order moving gradient from to position to,
// selection follows the moved gradient.
func (st *Stack) MoveGradient(from, to int) bool {
	n := len(st.Gradients)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	g := st.Gradients[from]
	st.Gradients = slices.Insert(slices.Delete(st.Gradients, from, from+1), to, g)
	st.Selected = to
	return true
}

// Direction is a named linear gradient direction used by editor controls.
type Direction string

const (
	DirectionTop         Direction = "top"
	DirectionBottom      Direction = "bottom"
	DirectionLeft        Direction = "left"
	DirectionRight       Direction = "right"
	DirectionRightTop    Direction = "right_top"
	DirectionRightBottom Direction = "right_bottom"
	DirectionLeftBottom  Direction = "left_bottom"
	DirectionLeftTop     Direction = "left_top"
	DirectionDegree      Direction = "degree"
)

var directionAngles = map[Direction]float64{
	DirectionTop:         0,
	DirectionRightTop:    45,
	DirectionRight:       90,
	DirectionRightBottom: 135,
	DirectionBottom:      180,
	DirectionLeftBottom:  225,
	DirectionLeft:        270,
	DirectionLeftTop:     315,
}

// DirectionOf names linear angle, angles which are not multiples of 45
// degrees are DirectionDegree.
func DirectionOf(angle float64) Direction {
	if angle == 360 {
		angle = 0
	}
	for d, a := range directionAngles {
		if a == angle {
			return d
		}
	}
	return DirectionDegree
}

// Angle returns angle for named direction, ok is false for DirectionDegree
// and unknown names.
func (d Direction) Angle() (float64, bool) {
	a, ok := directionAngles[d]
	return a, ok
}
