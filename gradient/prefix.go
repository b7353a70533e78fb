package gradient

import (
	"math"
	"strings"

	"gradc/common"
	"gradc/units"
)

// parsePrefix interprets clause preceding color stops.
func parsePrefix(typ common.GradientType, text string) Prefix {
	if strings.Contains(text, "#") || strings.Contains(text, "rgb") || strings.Contains(text, "hsl") {
		// color inside of the prefix means we cannot trust any of it
		return DefaultPrefix(typ)
	}
	switch typ {
	case common.GradientTypeRadial:
		return parseRadial(text)
	case common.GradientTypeConic:
		return parseConic(text)
	default:
		return Linear{Angle: parseAngle(text, 180)}
	}
}

var sideAngles = map[string]float64{
	"top":          0,
	"right":        90,
	"bottom":       180,
	"left":         270,
	"top right":    45,
	"right top":    45,
	"bottom right": 135,
	"right bottom": 135,
	"bottom left":  225,
	"left bottom":  225,
	"top left":     315,
	"left top":     315,
}

// parseAngle returns angle in degrees within [0, 360]. Supported forms are
// "<n>deg", "to <side> [<side>]", "<n>turn", "<n>grad", "<n>rad" and "<n>%"
// (100% is full circle). Linear and conic prefixes accept the same forms.
func parseAngle(text string, def float64) float64 {
	text = strings.TrimSpace(text)
	number := func() float64 {
		if d, ok := units.ParseDimension(text); ok {
			return d.Value
		}
		return math.NaN()
	}

	angle := def
	switch {
	case strings.Contains(text, "deg"):
		angle = units.Clamp(-360, 360, number())
	case strings.Contains(text, "to "):
		_, sides, _ := strings.Cut(text, "to ")
		if a, ok := sideAngles[strings.Join(strings.Fields(sides), " ")]; ok {
			angle = a
		} else {
			angle = 180
		}
	case strings.Contains(text, "turn"):
		if v := number(); v < 0 || v > 1 {
			angle = 180
		} else {
			angle = v * 360
		}
	case strings.Contains(text, "grad"):
		angle = math.Round(units.Clamp(0, 400, number()) / 400 * 360)
	case strings.Contains(text, "rad"):
		angle = math.Round(units.Clamp(0, 2*math.Pi, number()) * 180 / math.Pi)
	case strings.Contains(text, "%"):
		angle = units.Clamp(0, 100, number()) * 0.01 * 360
	}

	angle = units.Clamp(-360, 360, angle)
	if angle < 0 {
		angle += 360
	}
	if math.IsNaN(angle) {
		return def
	}
	return angle
}

// cutAt splits clause at "at " keyword.
func cutAt(text string) (before, after string, found bool) {
	for i := 0; i+3 <= len(text); i++ {
		if text[i:i+3] == "at " && (i == 0 || text[i-1] == ' ') {
			return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+3:]), true
		}
	}
	return strings.TrimSpace(text), "", false
}

func parseRadial(text string) Radial {
	r := Radial{
		Shape:  radialShape(text),
		Extent: common.RadialExtentFarthestCorner,
		At:     parseAt(text),
		Size:   DefaultSize,
	}
	for _, e := range []common.RadialExtent{
		common.RadialExtentClosestSide,
		common.RadialExtentClosestCorner,
		common.RadialExtentFarthestSide,
	} {
		if strings.Contains(text, e.String()) {
			r.Extent = e
			break
		}
	}
	if r.Shape == common.RadialShapeSize {
		r.Size = radialSize(text)
	}
	return r
}

func radialShape(text string) common.RadialShape {
	switch {
	case strings.Contains(text, "ellipse"):
		return common.RadialShapeEllipse
	case strings.Contains(text, "circle"):
		return common.RadialShapeCircle
	}
	before, _, _ := cutAt(text)
	if before == "" || strings.Contains(before, "side") || strings.Contains(before, "corner") {
		return common.RadialShapeEllipse
	}
	return common.RadialShapeSize
}

// radialSize interprets "<w> [<h>]" of explicitly sized radial gradient.
func radialSize(text string) Point {
	before, _, _ := cutAt(text)
	sizes := strings.Fields(before)

	if len(sizes) == 1 {
		d, ok := units.ParseDimension(sizes[0])
		if !ok || d.Unit != "px" {
			return DefaultSize
		}
		return Point{X: Pixels(d.Value), Y: Pixels(d.Value)}
	}

	dim := func(s string) Position {
		d, ok := units.ParseDimension(s)
		if !ok {
			return Percent(75)
		}
		u := d.PositionUnit()
		return Position{Value: units.Clamp(0, units.MaxFor(u), d.Value), Unit: u}
	}
	return Point{X: dim(sizes[0]), Y: dim(sizes[1])}
}

func parseConic(text string) Conic {
	c := Conic{At: Center}
	before, after, found := cutAt(text)
	if _, angle, ok := strings.Cut(before, "from"); ok {
		c.Angle = parseAngle(angle, 0)
	}
	if found && after != "" {
		c.At = parseAt("at " + after)
	}
	return c
}

// parseAt interprets "at <x> [<y>]" part of the clause, keywords may come in
// any order.
func parseAt(text string) Point {
	_, after, found := cutAt(text)
	if !found {
		return Center
	}
	pos := strings.Fields(after)
	switch len(pos) {
	case 0:
		return Center
	case 1:
		if pos[0] == "top" || pos[0] == "bottom" {
			pos = []string{"50%", pos[0]}
		}
	default:
		if pos[0] == "top" || pos[0] == "bottom" || pos[1] == "left" || pos[1] == "right" {
			pos[0], pos[1] = pos[1], pos[0]
		}
	}

	p := Point{X: atPosition(pos[0]), Y: Percent(50)}
	if len(pos) > 1 {
		p.Y = atPosition(pos[1])
	}
	return p
}

func atPosition(word string) Position {
	switch word {
	case "left", "top":
		return Percent(0)
	case "right", "bottom":
		return Percent(100)
	}
	d, ok := units.ParseDimension(word)
	if !ok {
		return Percent(50)
	}
	return Position{Value: d.Value, Unit: d.PositionUnit()}
}
