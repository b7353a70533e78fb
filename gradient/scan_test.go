package gradient

import (
	"slices"
	"testing"
)

func TestSplitLayers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "linear-gradient(red,blue)", []string{"linear-gradient(red,blue)"}},
		{
			"stacked",
			"linear-gradient(red,blue),radial-gradient(rgb(1,2,3),blue)",
			[]string{"linear-gradient(red,blue)", "radial-gradient(rgb(1,2,3),blue)"},
		},
		{
			"repeating",
			"linear-gradient(red,blue),repeating-conic-gradient(red,blue)",
			[]string{"linear-gradient(red,blue)", "repeating-conic-gradient(red,blue)"},
		},
		{"keyword inside parentheses", "x(a,linear(b))", []string{"x(a,linear(b))"}},
		{"comma without keyword", "a,b", []string{"a,b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLayers(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("splitLayers(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"to right,rgba(0,0,0,0.5) 10%,blue", []string{"to right", "rgba(0,0,0,0.5) 10%", "blue"}},
		{"red,,blue", []string{"red", "", "blue"}},
		{"", []string{""}},
		{"hsl(1,2%,3%", []string{"hsl(1,2%,3%"}},
	}
	for _, tt := range tests {
		if got := splitArgs(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitArgs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"red 50%", []string{"red", "50%"}},
		{"red  10% 20%", []string{"red", "10%", "20%"}},
		{"rgb(0, 0, 0) 50%", []string{"rgb(0, 0, 0)", "50%"}},
		{"rgb(0, 0, 0)50%", []string{"rgb(0, 0, 0)", "50%"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitWords(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
