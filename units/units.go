// Package units contains numeric helpers shared by gradient parser and
// serializer: clamping, fixed point rounding and conversion between pixel and
// percent positions.
package units

import (
	"math"
	"strconv"

	"gradc/common"
)

// MaxPositionPixels is the width of the reference strip. Pixel positions are
// translated to percent against it.
const MaxPositionPixels = 800

// Clamp returns v limited to [lo, hi]. NaN is returned unchanged so callers
// could detect it.
func Clamp(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ToFixed rounds v to 2 decimal places.
func ToFixed(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	if f == 0 {
		// get rid of negative zero
		return 0
	}
	return f
}

// FormatFixed formats v with at most 2 decimals, trailing zeros stripped.
func FormatFixed(v float64) string {
	return strconv.FormatFloat(ToFixed(v), 'f', -1, 64)
}

// FormatRound formats v rounded to the nearest integer.
func FormatRound(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// PixelsToPercent converts pixel position to percent of reference width.
func PixelsToPercent(v float64) float64 {
	return v / MaxPositionPixels * 100
}

// PercentToPixels converts percent position to pixels of reference width.
func PercentToPixels(v float64) float64 {
	return MaxPositionPixels * (v * 0.01)
}

// ToPercent brings value expressed in unit to common percent basis.
func ToPercent(v float64, unit common.PositionUnit) float64 {
	if unit == common.PositionUnitPixel {
		return PixelsToPercent(v)
	}
	return v
}

// MaxFor returns upper bound for positions expressed in unit.
func MaxFor(unit common.PositionUnit) float64 {
	if unit == common.PositionUnitPixel {
		return MaxPositionPixels
	}
	return 100
}
