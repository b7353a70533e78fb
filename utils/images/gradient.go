package images

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"strconv"

	"github.com/beevik/etree"

	"gradc/colors"
	"gradc/common"
	"gradc/gradient"
	"gradc/units"
)

// GradientSVG renders gradient stack as SVG document of w x h pixels. Layers
// are painted back to front. Conic gradients have no SVG paint server and are
// drawn as their horizontal strip.
func GradientSVG(st gradient.Stack, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %dx%d", w, h)
	}

	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", strconv.Itoa(w))
	svg.CreateAttr("height", strconv.Itoa(h))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", w, h))
	defs := svg.CreateElement("defs")

	box := rect{w: float64(w), h: float64(h)}
	for i := len(st.Gradients) - 1; i >= 0; i-- {
		g := st.Gradients[i]
		if len(g.Stops) == 0 {
			continue
		}
		fill := svg.CreateElement("rect")
		fill.CreateAttr("width", strconv.Itoa(w))
		fill.CreateAttr("height", strconv.Itoa(h))

		if len(g.Stops) == 1 {
			setColor(fill, "fill", "fill-opacity", g.Stops[0].Color)
			continue
		}
		id := "g" + strconv.Itoa(i)
		paintServer(defs, id, &g, box)
		fill.CreateAttr("fill", "url(#"+id+")")
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("unable to write svg: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail rasterizes gradient stack.
func Thumbnail(st gradient.Stack, w, h int) (image.Image, error) {
	data, err := GradientSVG(st, w, h)
	if err != nil {
		return nil, err
	}
	return RasterizeSVGToImage(data, w, h)
}

type rect struct {
	w, h float64
}

func (r rect) resolve(p gradient.Position, length float64) float64 {
	if p.Unit == common.PositionUnitPixel {
		return p.Value
	}
	return p.Value * length / 100
}

type svgStop struct {
	offset float64
	color  colors.Color
}

func paintServer(defs *etree.Element, id string, g *gradient.Gradient, box rect) {
	stops := svgStops(g)

	var el *etree.Element
	switch p := g.Prefix.(type) {
	case gradient.Radial:
		el = defs.CreateElement("radialGradient")
		cx, cy := box.resolve(p.At.X, box.w), box.resolve(p.At.Y, box.h)
		rx, ry := radii(p, cx, cy, box)
		r := math.Max(rx, 1e-3)
		if last := stops[len(stops)-1].offset; g.Repeating && last > 0 {
			r *= last
			stops = rescale(stops, 0)
		}
		el.CreateAttr("cx", formatNumber(cx))
		el.CreateAttr("cy", formatNumber(cy))
		el.CreateAttr("r", formatNumber(r))
		if rx > 0 && math.Abs(rx-ry) > 1e-9 {
			// ellipse is a circle of radius rx squeezed vertically around its center
			el.CreateAttr("gradientTransform", fmt.Sprintf("translate(%s %s) scale(1 %s) translate(%s %s)",
				formatNumber(cx), formatNumber(cy), formatNumber(ry/rx), formatNumber(-cx), formatNumber(-cy)))
		}
	default:
		angle := 90.0
		if l, ok := p.(gradient.Linear); ok {
			angle = l.Angle
		}
		el = defs.CreateElement("linearGradient")
		x1, y1, x2, y2 := linearLine(angle, box)
		if g.Repeating {
			first, last := stops[0].offset, stops[len(stops)-1].offset
			x1, y1, x2, y2 = x1+(x2-x1)*first, y1+(y2-y1)*first, x1+(x2-x1)*last, y1+(y2-y1)*last
			stops = rescale(stops, first)
		}
		el.CreateAttr("x1", formatNumber(x1))
		el.CreateAttr("y1", formatNumber(y1))
		el.CreateAttr("x2", formatNumber(x2))
		el.CreateAttr("y2", formatNumber(y2))
	}
	el.CreateAttr("id", id)
	el.CreateAttr("gradientUnits", "userSpaceOnUse")
	if g.Repeating {
		el.CreateAttr("spreadMethod", "repeat")
	}

	for _, s := range stops {
		stop := el.CreateElement("stop")
		stop.CreateAttr("offset", formatNumber(s.offset))
		setColor(stop, "stop-color", "stop-opacity", s.color)
	}
}

// svgStops converts stops to offsets in [0, 1]. Non default hints become
// extra stops with the middle color.
func svgStops(g *gradient.Gradient) []svgStop {
	out := make([]svgStop, 0, len(g.Stops)*2)
	for i, s := range g.Stops {
		out = append(out, svgStop{offset: units.Clamp(0, 1, s.Percent()/100), color: s.Color})
		if i == len(g.Stops)-1 || i >= len(g.Hints) || g.Hints[i].IsDefault() {
			continue
		}
		out = append(out, svgStop{
			offset: units.Clamp(0, 1, g.Hints[i].Position/100),
			color:  mix(s.Color, g.Stops[i+1].Color),
		})
	}
	return out
}

// rescale maps [from, last offset] onto [0, 1].
func rescale(stops []svgStop, from float64) []svgStop {
	span := stops[len(stops)-1].offset - from
	if span <= 0 {
		return stops
	}
	out := make([]svgStop, len(stops))
	for i, s := range stops {
		out[i] = svgStop{offset: (s.offset - from) / span, color: s.color}
	}
	return out
}

func mix(a, b colors.Color) colors.Color {
	avg := func(x, y uint8) uint8 { return uint8((int(x) + int(y) + 1) / 2) }
	return colors.Color{R: avg(a.R, b.R), G: avg(a.G, b.G), B: avg(a.B, b.B), A: (a.A + b.A) / 2}
}

// linearLine returns gradient line for CSS angle: it passes through the box
// center and its ends touch the perpendiculars through opposite corners.
func linearLine(angle float64, box rect) (x1, y1, x2, y2 float64) {
	rad := angle * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)
	half := (math.Abs(box.w*dx) + math.Abs(box.h*dy)) / 2
	cx, cy := box.w/2, box.h/2
	return cx - dx*half, cy - dy*half, cx + dx*half, cy + dy*half
}

// radii of the ending shape.
func radii(p gradient.Radial, cx, cy float64, box rect) (rx, ry float64) {
	if p.Shape == common.RadialShapeSize {
		return box.resolve(p.Size.X, box.w), box.resolve(p.Size.Y, box.h)
	}

	near := func(c, length float64) float64 { return math.Min(math.Abs(c), math.Abs(length-c)) }
	far := func(c, length float64) float64 { return math.Max(math.Abs(c), math.Abs(length-c)) }
	nx, ny := near(cx, box.w), near(cy, box.h)
	fx, fy := far(cx, box.w), far(cy, box.h)

	circle := p.Shape == common.RadialShapeCircle
	switch p.Extent {
	case common.RadialExtentClosestSide:
		if circle {
			r := math.Min(nx, ny)
			return r, r
		}
		return nx, ny
	case common.RadialExtentFarthestSide:
		if circle {
			r := math.Max(fx, fy)
			return r, r
		}
		return fx, fy
	case common.RadialExtentClosestCorner:
		if circle {
			r := math.Hypot(nx, ny)
			return r, r
		}
		return nx * math.Sqrt2, ny * math.Sqrt2
	default:
		if circle {
			r := math.Hypot(fx, fy)
			return r, r
		}
		return fx * math.Sqrt2, fy * math.Sqrt2
	}
}

func setColor(el *etree.Element, colorAttr, opacityAttr string, c colors.Color) {
	el.CreateAttr(colorAttr, colors.RGBToHex(c.R, c.G, c.B, false))
	if a := colors.SanitizeAlpha(c.A); a < 1 {
		el.CreateAttr(opacityAttr, colors.FormatAlpha(a))
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
