package units

import (
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"gradc/common"
)

// Dimension is a leading numeric CSS token: bare number, percentage or number
// with unit.
type Dimension struct {
	Value float64
	Unit  string // lower case, "%" for percentages, empty for bare numbers
}

// IsPercent reports if dimension is a percentage.
func (d Dimension) IsPercent() bool {
	return d.Unit == "%"
}

// PositionUnit maps dimension unit to stop position unit, anything other than
// "px" is treated as percent.
func (d Dimension) PositionUnit() common.PositionUnit {
	if d.Unit == "px" {
		return common.PositionUnitPixel
	}
	return common.PositionUnitPercent
}

// ParseDimension classifies the first token of s. It returns false when s
// does not start with a number.
func ParseDimension(s string) (Dimension, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Dimension{}, false
	}

	l := css.NewLexer(parse.NewInput(strings.NewReader(s)))
	tt, data := l.Next()

	switch tt {
	case css.NumberToken:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return Dimension{}, false
		}
		return Dimension{Value: v}, true
	case css.PercentageToken:
		v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
		if err != nil {
			return Dimension{}, false
		}
		return Dimension{Value: v, Unit: "%"}, true
	case css.DimensionToken:
		v, unit := parseDimension(string(data))
		if unit == "" {
			return Dimension{}, false
		}
		return Dimension{Value: v, Unit: unit}, true
	}
	return Dimension{}, false
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	// Find where number ends
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, ""
	}
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}
