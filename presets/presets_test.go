package presets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"gradc/codec"
)

func TestDefaults(t *testing.T) {
	src, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() error = %v", err)
	}
	if n := len(src.Colors.Defaults); n != 50 {
		t.Errorf("default colors = %d, want 50", n)
	}
	if n := len(src.Gradients.Defaults); n != 52 {
		t.Errorf("default gradients = %d, want 52", n)
	}
	if len(src.Colors.Custom) != 0 || len(src.Gradients.Custom) != 0 {
		t.Errorf("built-in custom lists must be empty")
	}
}

func TestProcess(t *testing.T) {
	c := codec.New(zaptest.NewLogger(t), codec.DefaultSettings)

	got := Process(c, []string{"#FFFFFF", "red", "#FFFFFF", "linear-gradient(red, blue)"}, false)
	var names []string
	for _, p := range got {
		names = append(names, p.Name)
	}
	want := []string{"fff", "red", "linear-gradient-red-00f"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if got[0].Input != "#FFFFFF" || got[0].Data.Output != "#fff" {
		t.Errorf("first preset = %q -> %q", got[0].Input, got[0].Data.Output)
	}

	gradients := Process(c, []string{"red", "linear-gradient(red, blue)", "conic-gradient(red, blue)"}, true)
	if len(gradients) != 2 {
		t.Fatalf("gradients = %d, want 2", len(gradients))
	}
	for _, p := range gradients {
		if !p.Data.Gradient {
			t.Errorf("%q is not a gradient", p.Input)
		}
	}

	noConic := codec.New(zaptest.NewLogger(t), codec.Settings{MultiStops: true})
	if n := len(Process(noConic, []string{"conic-gradient(red, blue)"}, true)); n != 0 {
		t.Errorf("conic preset must be dropped when unsupported, got %d", n)
	}
}

func TestProcessStableIDs(t *testing.T) {
	c := codec.New(zaptest.NewLogger(t), codec.DefaultSettings)

	a := Process(c, []string{"#ff0000"}, false)
	b := Process(c, []string{"RED"}, false)
	if a[0].ID != b[0].ID {
		t.Errorf("same color must have same ID: %s != %s", a[0].ID, b[0].ID)
	}
	other := Process(c, []string{"blue"}, false)
	if a[0].ID == other[0].ID {
		t.Errorf("different colors must have different IDs")
	}
}

func TestLoad(t *testing.T) {
	log := zaptest.NewLogger(t)
	c := codec.New(log, codec.DefaultSettings)

	cat, err := Load(log, c, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n := len(cat.Colors.Defaults); n != 50 {
		t.Errorf("colors = %d, want 50", n)
	}
	if n := len(cat.Gradients.Defaults); n != 52 {
		t.Errorf("gradients = %d, want 52", n)
	}

	cat, err = Load(log, c, &Source{
		Colors:    List{Defaults: []string{"red", "blue"}},
		Gradients: List{Custom: []string{"linear-gradient(red, blue)", "green"}},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n := len(cat.Colors.Defaults); n != 2 {
		t.Errorf("configured colors = %d, want 2", n)
	}
	if n := len(cat.Gradients.Defaults); n != 52 {
		t.Errorf("gradients must fall back to built-in, got %d", n)
	}
	if n := len(cat.Gradients.Custom); n != 1 {
		t.Errorf("custom gradients = %d, want 1", n)
	}
}

func TestSorted(t *testing.T) {
	in := []Preset{{Name: "item10"}, {Name: "item2"}, {Name: "item1"}}
	got := Sorted(in)
	want := []string{"item1", "item2", "item10"}
	for i, p := range got {
		if p.Name != want[i] {
			t.Errorf("Sorted()[%d] = %q, want %q", i, p.Name, want[i])
		}
	}
	if in[0].Name != "item10" {
		t.Errorf("Sorted() must not modify input")
	}
}
