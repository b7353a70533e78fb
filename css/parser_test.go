package css_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"gradc/css"
)

func TestParser_Declarations(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []struct {
		name string
		in   string
		want []css.Declaration
	}{
		{
			name: "inline",
			in:   "background: red; COLOR: blue !important",
			want: []css.Declaration{
				{Property: "background", Value: "red"},
				{Property: "color", Value: "blue", Important: true},
			},
		},
		{
			name: "ruleset",
			in:   ".swatch { background-image: linear-gradient(red, blue 50%); }",
			want: []css.Declaration{
				{Selector: ".swatch", Property: "background-image", Value: "linear-gradient(red,blue 50%)"},
			},
		},
		{
			name: "comments and custom properties skipped",
			in:   "--accent: red; /* note */ color: #fff",
			want: []css.Declaration{
				{Property: "color", Value: "#fff"},
			},
		},
		{
			name: "no declarations",
			in:   "red",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Declarations(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Declarations(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParser_ExtractValue(t *testing.T) {
	p := css.NewParser(nil)

	tests := []struct {
		in   string
		want string
	}{
		{"red", "red"},
		{"  #FF0000 ", "#ff0000"},
		{"background: RED;", "red"},
		{"background-color: rgb(0, 0, 0);", "rgb(0,0,0)"},
		{"div { color: blue }", "blue"},
		{"margin: 0; background: linear-gradient(red, blue)", "linear-gradient(red,blue)"},
		{"-webkit-linear-gradient(red, blue);", "linear-gradient(red, blue)"},
		{"linear-gradient(red, blue), ", "linear-gradient(red, blue)"},
		{"/* swatch */ transparent", "transparent"},
		{"linear-gradient(red, blue) !important", "linear-gradient(red, blue)"},
		{"#fff ! IMPORTANT;", "#fff"},
		{"background-image", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := p.ExtractValue(tt.in); got != tt.want {
			t.Errorf("ExtractValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
