package units

import (
	"math"
	"testing"

	"gradc/common"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		lo, hi, v, want float64
	}{
		{0, 100, 50, 50},
		{0, 100, -5, 0},
		{0, 100, 150, 100},
		{-360, 360, 720, 360},
	}
	for _, tt := range tests {
		if got := Clamp(tt.lo, tt.hi, tt.v); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.lo, tt.hi, tt.v, got, tt.want)
		}
	}
	if !math.IsNaN(Clamp(0, 1, math.NaN())) {
		t.Error("Clamp must keep NaN")
	}
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{33.333333, 33.33},
		{66.666666, 66.67},
		{12.5, 12.5},
		{100, 100},
		{-0.001, 0},
	}
	for _, tt := range tests {
		if got := ToFixed(tt.in); got != tt.want {
			t.Errorf("ToFixed(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := FormatFixed(33.3333); got != "33.33" {
		t.Errorf("FormatFixed = %q", got)
	}
	if got := FormatFixed(50.0); got != "50" {
		t.Errorf("FormatFixed = %q", got)
	}
	if got := FormatFixed(12.50); got != "12.5" {
		t.Errorf("FormatFixed = %q", got)
	}
	if got := FormatRound(89.6); got != "90" {
		t.Errorf("FormatRound = %q", got)
	}
	if got := FormatRound(-0.2); got != "0" {
		t.Errorf("FormatRound = %q", got)
	}
}

func TestPixelPercent(t *testing.T) {
	if got := PixelsToPercent(400); got != 50 {
		t.Errorf("PixelsToPercent(400) = %v", got)
	}
	if got := PercentToPixels(25); got != 200 {
		t.Errorf("PercentToPixels(25) = %v", got)
	}
	if got := ToPercent(80, common.PositionUnitPixel); got != 10 {
		t.Errorf("ToPercent(80px) = %v", got)
	}
	if got := ToPercent(80, common.PositionUnitPercent); got != 80 {
		t.Errorf("ToPercent(80%%) = %v", got)
	}
	if MaxFor(common.PositionUnitPixel) != MaxPositionPixels || MaxFor(common.PositionUnitPercent) != 100 {
		t.Error("MaxFor returned unexpected bounds")
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in     string
		want   Dimension
		wantOK bool
	}{
		{"50%", Dimension{50, "%"}, true},
		{"12.5%", Dimension{12.5, "%"}, true},
		{"20px", Dimension{20, "px"}, true},
		{"90deg", Dimension{90, "deg"}, true},
		{"-45DEG", Dimension{-45, "deg"}, true},
		{".25turn", Dimension{0.25, "turn"}, true},
		{"30", Dimension{30, ""}, true},
		{"  75% ", Dimension{75, "%"}, true},
		{"40% red", Dimension{40, "%"}, true},
		{"red", Dimension{}, false},
		{"#fff", Dimension{}, false},
		{"", Dimension{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDimension(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseDimension(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseDimension(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDimensionPositionUnit(t *testing.T) {
	if (Dimension{10, "px"}).PositionUnit() != common.PositionUnitPixel {
		t.Error("px must map to pixel unit")
	}
	if (Dimension{10, "%"}).PositionUnit() != common.PositionUnitPercent {
		t.Error("% must map to percent unit")
	}
	if !(Dimension{10, "%"}).IsPercent() {
		t.Error("IsPercent failed")
	}
}
