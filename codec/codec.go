// Package codec is the single entry point of color/gradient handling: it
// classifies raw CSS text, parses it and produces everything editor needs to
// show the value.
package codec

import (
	"strings"

	"go.uber.org/zap"

	"gradc/colors"
	"gradc/common"
	"gradc/css"
	"gradc/gradient"
)

// Settings are capabilities of the consumer.
type Settings struct {
	// Conic gradients are supported.
	Conic bool
	// MultiStops enables "color <a> <b>" shorthand in output.
	MultiStops bool
}

// DefaultSettings enable everything.
var DefaultSettings = Settings{Conic: true, MultiStops: true}

// Paint is a CSS background declaration ready to be applied.
type Paint struct {
	Background string `yaml:"background"`
}

// Result is produced for any input. Value always holds at least one gradient
// with at least one stop, for plain colors it is a single stop gradient.
type Result struct {
	Value    gradient.Stack `yaml:"value"`
	Output   string         `yaml:"output"`
	Gradient bool           `yaml:"gradient"`
	Hex      string         `yaml:"hex"`
	RGBA     colors.Color   `yaml:"rgba"`
	Preview  Paint          `yaml:"preview"`
	Strip    Paint          `yaml:"strip"`
}

// Codec converts CSS text to Result and back. It is safe for concurrent use.
type Codec struct {
	log      *zap.Logger
	settings Settings
	css      *css.Parser
}

// New creates codec with given settings.
func New(log *zap.Logger, settings Settings) *Codec {
	if log == nil {
		log = zap.NewNop()
	}
	return &Codec{
		log:      log.Named("codec"),
		settings: settings,
		css:      css.NewParser(log),
	}
}

// Settings returns codec settings.
func (c *Codec) Settings() Settings {
	return c.settings
}

func (c *Codec) formatOptions() gradient.FormatOptions {
	return gradient.FormatOptions{MultiStops: c.settings.MultiStops}
}

// GetColorData converts raw CSS text into Result. It never fails, anything
// which could not be interpreted becomes transparent.
func GetColorData(raw string, conic bool) Result {
	return New(nil, Settings{Conic: conic, MultiStops: true}).GetColorData(raw)
}

// GetColorData converts raw CSS text into Result. Property names, braces,
// semicolons and comments around the value are ignored.
func (c *Codec) GetColorData(raw string) Result {
	text := c.css.ExtractValue(raw)
	if text == "" || text == "transparent" {
		if text == "" {
			c.log.Debug("Empty input, using default", zap.String("input", raw))
		}
		return defaultResult()
	}

	if colors.IsGradient(text, c.settings.Conic) {
		st := gradient.Parse(text)
		output := gradient.Format(st, common.ViewModeAllGradients, 0, 0, c.formatOptions())
		last := st.Gradients[len(st.Gradients)-1]
		first := last.Stops[0].Color
		return Result{
			Value:    st,
			Output:   output,
			Gradient: true,
			Hex:      first.Hex(),
			RGBA:     first,
			Preview:  Paint{Background: output},
			Strip:    Paint{Background: gradient.Strip(last, c.formatOptions())},
		}
	}

	compact := strings.Join(strings.Fields(text), "")
	if clr, ok := colors.Named(compact); ok {
		return singleColor(clr)
	}
	if colors.IsHex(compact) {
		return singleColor(colors.HexToRGB(compact))
	}
	if colors.IsRGBHSL(compact) {
		return singleColor(colors.ParseRGBHSL(compact))
	}

	if colors.LooksLikeColor(text) {
		c.log.Debug("Invalid color, using white", zap.String("input", raw))
		return singleColor(colors.White)
	}
	c.log.Debug("Unrecognized input, using default", zap.String("input", raw))
	return defaultResult()
}

func singleColor(clr colors.Color) Result {
	output := clr.String()
	return Result{
		Value:   gradient.SingleColor(clr),
		Output:  output,
		Hex:     clr.Hex(),
		RGBA:    clr,
		Preview: Paint{Background: output},
		Strip:   Paint{Background: output},
	}
}

func defaultResult() Result {
	output := colors.Transparent.String()
	return Result{
		Value:   gradient.SingleColor(colors.Transparent),
		Output:  output,
		Hex:     "#000",
		RGBA:    colors.Transparent,
		Preview: Paint{Background: output},
		Strip:   Paint{Background: output},
	}
}

// Format renders stack the way codec is configured to.
func (c *Codec) Format(st gradient.Stack, mode common.ViewMode, stop, grad int) string {
	return gradient.Format(st, mode, stop, grad, c.formatOptions())
}

// VerifyBySettings replaces values consumer could not handle with
// "transparent": gradients when only colors are accepted and conic gradients
// when they are not supported.
func (c *Codec) VerifyBySettings(raw string, mode common.ColorMode) string {
	if mode != common.ColorModeSingle {
		if !c.settings.Conic && strings.Contains(raw, "conic") {
			c.log.Debug("Conic gradients are not supported", zap.String("input", raw))
			return colors.Transparent.String()
		}
		return raw
	}

	text := css.Clean(raw)
	if colors.IsGradient(text, c.settings.Conic) {
		c.log.Debug("Gradients are not accepted", zap.String("input", raw))
		return colors.Transparent.String()
	}
	return raw
}

// minGradientLength is the length of the shortest gradient worth parsing while
// user is still typing, "linear-gradient(red,red)" is one character longer.
const minGradientLength = 23

// Accepts reports if free typed text is complete enough to be passed to
// GetColorData.
func (c *Codec) Accepts(raw string, mode common.ColorMode) bool {
	text := css.Clean(raw)
	if text == "transparent" {
		return true
	}
	if mode != common.ColorModeSingle && len(text) > minGradientLength && colors.IsGradient(text, c.settings.Conic) {
		return true
	}
	return colors.IsValidColor(text)
}
