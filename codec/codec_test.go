package codec_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"gradc/codec"
	"gradc/colors"
	"gradc/common"
)

func newCodec(t *testing.T, settings codec.Settings) *codec.Codec {
	t.Helper()
	return codec.New(zaptest.NewLogger(t), settings)
}

func TestGetColorData(t *testing.T) {
	c := newCodec(t, codec.DefaultSettings)

	tests := []struct {
		name     string
		in       string
		output   string
		hex      string
		rgba     colors.Color
		gradient bool
		strip    string
	}{
		{
			name:     "declaration with gradient",
			in:       "background-image: linear-gradient(to right, red, blue);",
			output:   "linear-gradient(90deg, red, #00f)",
			hex:      "#f00",
			rgba:     colors.RGB(255, 0, 0),
			gradient: true,
			strip:    "linear-gradient(90deg, red, #00f)",
		},
		{
			name:     "stacked gradients use last layer",
			in:       "linear-gradient(red, blue), radial-gradient(circle, white, black)",
			output:   "linear-gradient(red, #00f), radial-gradient(circle, #fff, #000)",
			hex:      "#fff",
			rgba:     colors.White,
			gradient: true,
			strip:    "linear-gradient(90deg, #fff, #000)",
		},
		{"declaration with keyword", "background: red;", "red", "#f00", colors.RGB(255, 0, 0), false, "red"},
		{"keyword with spaces", " Navy ", "navy", "#000080", colors.RGB(0, 0, 128), false, "navy"},
		{"hex without hash", "fff", "#fff", "#fff", colors.White, false, "#fff"},
		{"rgba", "rgba(255, 0, 0, 0.5)", "rgba(255,0,0,0.5)", "#f00", colors.Color{R: 255, A: 0.5}, false, "rgba(255,0,0,0.5)"},
		{"hsl", "hsl(120, 100%, 50%)", "#0f0", "#0f0", colors.RGB(0, 255, 0), false, "#0f0"},
		{"invalid hex becomes white", "#ff00gg", "#fff", "#fff", colors.White, false, "#fff"},
		{"empty", "", "transparent", "#000", colors.Transparent, false, "transparent"},
		{"transparent", "transparent", "transparent", "#000", colors.Transparent, false, "transparent"},
		{"garbage", "not a color", "transparent", "#000", colors.Transparent, false, "transparent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.GetColorData(tt.in)
			if res.Output != tt.output {
				t.Errorf("Output = %q, want %q", res.Output, tt.output)
			}
			if res.Hex != tt.hex {
				t.Errorf("Hex = %q, want %q", res.Hex, tt.hex)
			}
			if !res.RGBA.Equal(tt.rgba) {
				t.Errorf("RGBA = %v, want %v", res.RGBA, tt.rgba)
			}
			if res.Gradient != tt.gradient {
				t.Errorf("Gradient = %v, want %v", res.Gradient, tt.gradient)
			}
			if res.Strip.Background != tt.strip {
				t.Errorf("Strip = %q, want %q", res.Strip.Background, tt.strip)
			}
			if res.Preview.Background != tt.output {
				t.Errorf("Preview = %q, want %q", res.Preview.Background, tt.output)
			}
			if len(res.Value.Gradients) == 0 || len(res.Value.Gradients[0].Stops) == 0 {
				t.Fatalf("Value must hold at least one stop: %+v", res.Value)
			}
		})
	}
}

func TestGetColorDataSingleColorValue(t *testing.T) {
	res := codec.GetColorData("red", true)
	if n := len(res.Value.Gradients); n != 1 {
		t.Fatalf("gradients = %d, want 1", n)
	}
	stops := res.Value.Gradients[0].Stops
	if len(stops) != 1 || !stops[0].Color.Equal(colors.RGB(255, 0, 0)) {
		t.Errorf("stops = %+v, want single red stop", stops)
	}
}

func TestGetColorDataConicDisabled(t *testing.T) {
	c := newCodec(t, codec.Settings{Conic: false, MultiStops: true})
	res := c.GetColorData("conic-gradient(red, blue)")
	if res.Gradient || res.Output != "transparent" {
		t.Errorf("GetColorData() = %q (gradient %v), want transparent", res.Output, res.Gradient)
	}

	res = codec.GetColorData("conic-gradient(red, blue)", true)
	if !res.Gradient || res.Output != "conic-gradient(red, #00f)" {
		t.Errorf("GetColorData() = %q (gradient %v), want conic gradient", res.Output, res.Gradient)
	}
}

func TestGetColorDataImportant(t *testing.T) {
	c := newCodec(t, codec.DefaultSettings)
	res := c.GetColorData("linear-gradient(red, blue) !important")
	if !res.Gradient || res.Output != "linear-gradient(red, #00f)" {
		t.Errorf("GetColorData() = %q (gradient %v), want linear gradient", res.Output, res.Gradient)
	}
}

func TestGetColorDataMultiStopsOff(t *testing.T) {
	c := newCodec(t, codec.Settings{Conic: true})
	res := c.GetColorData("linear-gradient(red 0% 50%, blue 50% 100%)")
	want := "linear-gradient(red, red 50%, #00f 50%, #00f)"
	if res.Output != want {
		t.Errorf("Output = %q, want %q", res.Output, want)
	}
	if got := c.Format(res.Value, common.ViewModeColor, 1, 0); got != "red" {
		t.Errorf("Format(color) = %q, want %q", got, "red")
	}
}

func TestGetColorDataLogsInvalidColor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := codec.New(zap.New(core), codec.DefaultSettings)

	c.GetColorData("rgb(300, 0, 0)")
	entries := logs.FilterMessage("Invalid color, using white").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if entries[0].LoggerName != "codec" {
		t.Errorf("logger name = %q, want %q", entries[0].LoggerName, "codec")
	}
}

func TestVerifyBySettings(t *testing.T) {
	withConic := newCodec(t, codec.DefaultSettings)
	noConic := newCodec(t, codec.Settings{MultiStops: true})

	tests := []struct {
		name string
		c    *codec.Codec
		in   string
		mode common.ColorMode
		want string
	}{
		{"color in single mode", withConic, "red", common.ColorModeSingle, "red"},
		{"gradient in single mode", withConic, "Linear-Gradient(red, blue)", common.ColorModeSingle, "transparent"},
		{"gradient in gradient mode", withConic, "linear-gradient(red, blue)", common.ColorModeGradient, "linear-gradient(red, blue)"},
		{"conic supported", withConic, "conic-gradient(red, blue)", common.ColorModeFull, "conic-gradient(red, blue)"},
		{"conic unsupported", noConic, "conic-gradient(red, blue)", common.ColorModeFull, "transparent"},
		{"conic unsupported in single mode", noConic, "conic-gradient(red, blue)", common.ColorModeSingle, "conic-gradient(red, blue)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.VerifyBySettings(tt.in, tt.mode); got != tt.want {
				t.Errorf("VerifyBySettings(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAccepts(t *testing.T) {
	c := newCodec(t, codec.DefaultSettings)

	tests := []struct {
		in   string
		mode common.ColorMode
		want bool
	}{
		{"transparent", common.ColorModeSingle, true},
		{"red", common.ColorModeSingle, true},
		{"#ff", common.ColorModeFull, false},
		{"rgb(1,2,", common.ColorModeFull, false},
		{"background: #abc;", common.ColorModeFull, true},
		{"linear-gradient(red, blue)", common.ColorModeFull, true},
		{"linear-gradient(red, blue)", common.ColorModeSingle, false},
		{"linear-gradient(red", common.ColorModeFull, false},
	}
	for _, tt := range tests {
		if got := c.Accepts(tt.in, tt.mode); got != tt.want {
			t.Errorf("Accepts(%q, %s) = %v, want %v", tt.in, tt.mode, got, tt.want)
		}
	}
}
