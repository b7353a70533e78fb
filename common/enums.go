// Package common holds enumerations shared by the codec, its configuration
// and the command line tool.
package common

// Kind of CSS gradient function.
// ENUM(linear, radial, conic)
type GradientType int

// Radial gradient ending shape, "size" means explicit width and height.
// ENUM(ellipse, circle, size)
type RadialShape int

// Radial gradient extent keyword.
// ENUM(farthest-corner, farthest-side, closest-corner, closest-side)
type RadialExtent int

// Unit of stop and gradient positions.
// ENUM(percent, pixel)
type PositionUnit int

// Suffix returns CSS unit suffix for the position unit.
func (u PositionUnit) Suffix() string {
	if u == PositionUnitPixel {
		return "px"
	}
	return "%"
}

// Part of the gradient stack that is rendered.
// ENUM(color, single_gradient, all_gradients)
type ViewMode int

// Kind of values editor accepts: colors and gradients, colors only or
// gradients only.
// ENUM(full, single, gradient)
type ColorMode int
