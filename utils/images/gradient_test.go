package images

import (
	"image/color"
	"testing"

	"github.com/beevik/etree"

	"gradc/colors"
	"gradc/gradient"
)

func parseSVG(t *testing.T, data []byte) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		t.Fatalf("invalid svg: %v", err)
	}
	root := doc.SelectElement("svg")
	if root == nil {
		t.Fatalf("no svg root in %s", data)
	}
	return root
}

type stopAttrs struct {
	offset, color, opacity string
}

func stopsOf(el *etree.Element) []stopAttrs {
	var out []stopAttrs
	for _, s := range el.SelectElements("stop") {
		out = append(out, stopAttrs{
			offset:  s.SelectAttrValue("offset", ""),
			color:   s.SelectAttrValue("stop-color", ""),
			opacity: s.SelectAttrValue("stop-opacity", ""),
		})
	}
	return out
}

func equalStops(a, b []stopAttrs) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGradientSVG_Linear(t *testing.T) {
	data, err := GradientSVG(gradient.Parse("linear-gradient(to right, red, blue)"), 100, 10)
	if err != nil {
		t.Fatalf("GradientSVG() error = %v", err)
	}
	root := parseSVG(t, data)
	if got := root.SelectAttrValue("viewBox", ""); got != "0 0 100 10" {
		t.Errorf("viewBox = %q", got)
	}

	lg := root.FindElement("./defs/linearGradient")
	if lg == nil {
		t.Fatalf("no linearGradient in %s", data)
	}
	for attr, want := range map[string]string{"x1": "0", "y1": "5", "x2": "100", "y2": "5", "gradientUnits": "userSpaceOnUse"} {
		if got := lg.SelectAttrValue(attr, ""); got != want {
			t.Errorf("%s = %q, want %q", attr, got, want)
		}
	}
	want := []stopAttrs{{"0", "#ff0000", ""}, {"1", "#0000ff", ""}}
	if got := stopsOf(lg); !equalStops(got, want) {
		t.Errorf("stops = %v, want %v", got, want)
	}
	if lg.SelectAttr("spreadMethod") != nil {
		t.Errorf("non repeating gradient must not set spreadMethod")
	}

	rect := root.SelectElement("rect")
	if got := rect.SelectAttrValue("fill", ""); got != "url(#g0)" {
		t.Errorf("fill = %q", got)
	}
}

func TestGradientSVG_Stops(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []stopAttrs
	}{
		{"hint becomes middle stop", "linear-gradient(red, 30%, blue)", []stopAttrs{{"0", "#ff0000", ""}, {"0.3", "#800080", ""}, {"1", "#0000ff", ""}}},
		{"alpha", "linear-gradient(rgba(255,0,0,0.5), blue 50%)", []stopAttrs{{"0", "#ff0000", "0.5"}, {"0.5", "#0000ff", ""}}},
		{"conic drawn as strip", "conic-gradient(red, blue)", []stopAttrs{{"0", "#ff0000", ""}, {"1", "#0000ff", ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := GradientSVG(gradient.Parse(tt.in), 40, 40)
			if err != nil {
				t.Fatalf("GradientSVG() error = %v", err)
			}
			lg := parseSVG(t, data).FindElement("./defs/linearGradient")
			if lg == nil {
				t.Fatalf("no linearGradient in %s", data)
			}
			if got := stopsOf(lg); !equalStops(got, tt.want) {
				t.Errorf("stops = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradientSVG_Repeating(t *testing.T) {
	data, err := GradientSVG(gradient.Parse("repeating-linear-gradient(90deg, red 0px, blue 20px)"), 100, 10)
	if err != nil {
		t.Fatalf("GradientSVG() error = %v", err)
	}
	lg := parseSVG(t, data).FindElement("./defs/linearGradient")
	if got := lg.SelectAttrValue("spreadMethod", ""); got != "repeat" {
		t.Errorf("spreadMethod = %q", got)
	}
	// 20px is 2.5% of the reference width
	if got := lg.SelectAttrValue("x2", ""); got != "2.5" {
		t.Errorf("x2 = %q, want %q", got, "2.5")
	}
	want := []stopAttrs{{"0", "#ff0000", ""}, {"1", "#0000ff", ""}}
	if got := stopsOf(lg); !equalStops(got, want) {
		t.Errorf("stops = %v, want %v", got, want)
	}
}

func TestGradientSVG_Radial(t *testing.T) {
	data, err := GradientSVG(gradient.Parse("radial-gradient(circle closest-side at 25% 50%, red, blue)"), 100, 50)
	if err != nil {
		t.Fatalf("GradientSVG() error = %v", err)
	}
	rg := parseSVG(t, data).FindElement("./defs/radialGradient")
	if rg == nil {
		t.Fatalf("no radialGradient in %s", data)
	}
	for attr, want := range map[string]string{"cx": "25", "cy": "25", "r": "25"} {
		if got := rg.SelectAttrValue(attr, ""); got != want {
			t.Errorf("%s = %q, want %q", attr, got, want)
		}
	}
	if rg.SelectAttr("gradientTransform") != nil {
		t.Errorf("circle must not be transformed")
	}

	data, err = GradientSVG(gradient.Parse("radial-gradient(closest-side, red, blue)"), 100, 50)
	if err != nil {
		t.Fatalf("GradientSVG() error = %v", err)
	}
	rg = parseSVG(t, data).FindElement("./defs/radialGradient")
	if got := rg.SelectAttrValue("r", ""); got != "50" {
		t.Errorf("r = %q, want %q", got, "50")
	}
	if got := rg.SelectAttrValue("gradientTransform", ""); got != "translate(50 25) scale(1 0.5) translate(-50 -25)" {
		t.Errorf("gradientTransform = %q", got)
	}
}

func TestGradientSVG_Layers(t *testing.T) {
	st := gradient.Parse("linear-gradient(red, blue), radial-gradient(circle, white, black)")
	data, err := GradientSVG(st, 10, 10)
	if err != nil {
		t.Fatalf("GradientSVG() error = %v", err)
	}
	rects := parseSVG(t, data).SelectElements("rect")
	if len(rects) != 2 {
		t.Fatalf("rects = %d, want 2", len(rects))
	}
	if got := rects[0].SelectAttrValue("fill", ""); got != "url(#g1)" {
		t.Errorf("bottom layer fill = %q, want last gradient", got)
	}
	if got := rects[1].SelectAttrValue("fill", ""); got != "url(#g0)" {
		t.Errorf("top layer fill = %q, want first gradient", got)
	}
}

func TestGradientSVG_SingleColor(t *testing.T) {
	data, err := GradientSVG(gradient.SingleColor(colors.Color{R: 255, A: 0.25}), 10, 10)
	if err != nil {
		t.Fatalf("GradientSVG() error = %v", err)
	}
	root := parseSVG(t, data)
	if root.FindElement("./defs/linearGradient") != nil {
		t.Errorf("single color must not produce paint server")
	}
	rect := root.SelectElement("rect")
	if got := rect.SelectAttrValue("fill", ""); got != "#ff0000" {
		t.Errorf("fill = %q", got)
	}
	if got := rect.SelectAttrValue("fill-opacity", ""); got != "0.25" {
		t.Errorf("fill-opacity = %q", got)
	}
}

func TestGradientSVG_EmptyLayer(t *testing.T) {
	st := gradient.Stack{Gradients: []gradient.Gradient{
		{Prefix: gradient.Linear{Angle: 90}},
		{Prefix: gradient.Linear{Angle: 180}, Stops: []gradient.Stop{{Color: colors.RGB(255, 0, 0)}}},
	}}
	data, err := GradientSVG(st, 10, 10)
	if err != nil {
		t.Fatalf("GradientSVG() error = %v", err)
	}
	root := parseSVG(t, data)
	if n := len(root.SelectElements("rect")); n != 1 {
		t.Errorf("rects = %d, want 1", n)
	}
	if el := root.FindElement("//linearGradient"); el != nil {
		t.Error("layer without stops must not produce paint server")
	}
}

func TestGradientSVG_InvalidSize(t *testing.T) {
	if _, err := GradientSVG(gradient.SingleColor(colors.White), 0, 10); err == nil {
		t.Fatal("expected error")
	}
}

func TestThumbnail(t *testing.T) {
	img, err := Thumbnail(gradient.SingleColor(colors.RGB(255, 0, 0)), 8, 4)
	if err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := color.NRGBAModel.Convert(img.At(4, 2)).(color.NRGBA); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel = %v, want red", got)
	}

	img, err = Thumbnail(gradient.Parse("linear-gradient(to right, red, blue)"), 64, 4)
	if err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}
	left := color.NRGBAModel.Convert(img.At(1, 2)).(color.NRGBA)
	right := color.NRGBAModel.Convert(img.At(62, 2)).(color.NRGBA)
	if left.R <= left.B || right.B <= right.R {
		t.Errorf("gradient direction is wrong: left %v, right %v", left, right)
	}
}
