// Package presets turns lists of raw CSS colors and gradients into processed
// preset catalogue.
package presets

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"gradc/codec"
)

//go:embed presets.yaml
var defaultPresets []byte

// namespace for stable preset IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("gradc/presets"))

// List is a raw preset group as it comes from configuration.
type List struct {
	Defaults []string `yaml:"defaults"`
	Custom   []string `yaml:"custom"`
}

// Source holds raw colors and gradients.
type Source struct {
	Colors    List `yaml:"colors"`
	Gradients List `yaml:"gradients"`
}

// Preset is a processed entry.
type Preset struct {
	ID    string       `yaml:"id"`
	Name  string       `yaml:"name"`
	Input string       `yaml:"input"`
	Data  codec.Result `yaml:"data"`
}

// Group is processed List.
type Group struct {
	Defaults []Preset `yaml:"defaults"`
	Custom   []Preset `yaml:"custom"`
}

// Catalogue is everything editor offers to pick from.
type Catalogue struct {
	Colors    Group `yaml:"colors"`
	Gradients Group `yaml:"gradients"`
}

// Defaults returns built-in catalogue source.
func Defaults() (*Source, error) {
	var src Source
	dec := yaml.NewDecoder(bytes.NewReader(defaultPresets))
	dec.KnownFields(true)
	if err := dec.Decode(&src); err != nil {
		return nil, fmt.Errorf("unable to decode default presets: %w", err)
	}
	return &src, nil
}

// Process runs every unique entry through codec. When gradientsOnly is set
// entries which are not gradients are dropped.
func Process(c *codec.Codec, list []string, gradientsOnly bool) []Preset {
	seen := make(map[string]struct{}, len(list))
	out := make([]Preset, 0, len(list))
	for _, in := range list {
		if _, ok := seen[in]; ok {
			continue
		}
		seen[in] = struct{}{}

		data := c.GetColorData(in)
		if gradientsOnly && !data.Gradient {
			continue
		}
		out = append(out, Preset{
			ID:    uuid.NewSHA1(namespace, []byte(data.Output)).String(),
			Name:  slug.Make(data.Output),
			Input: in,
			Data:  data,
		})
	}
	return out
}

// Load builds catalogue. Non empty defaults from src replace built-in ones,
// custom lists always come from src.
func Load(log *zap.Logger, c *codec.Codec, src *Source) (*Catalogue, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("presets")

	core, err := Defaults()
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = &Source{}
	}

	pick := func(what string, own, builtin List) List {
		if len(own.Defaults) == 0 {
			own.Defaults = builtin.Defaults
		} else {
			log.Debug("Using configured defaults", zap.String("group", what), zap.Int("count", len(own.Defaults)))
		}
		if own.Custom == nil {
			own.Custom = builtin.Custom
		}
		return own
	}
	colorsList := pick("colors", src.Colors, core.Colors)
	gradientsList := pick("gradients", src.Gradients, core.Gradients)

	cat := &Catalogue{
		Colors: Group{
			Defaults: Process(c, colorsList.Defaults, false),
			Custom:   Process(c, colorsList.Custom, false),
		},
		Gradients: Group{
			Defaults: Process(c, gradientsList.Defaults, true),
			Custom:   Process(c, gradientsList.Custom, true),
		},
	}
	if dropped := len(gradientsList.Defaults) + len(gradientsList.Custom) - len(cat.Gradients.Defaults) - len(cat.Gradients.Custom); dropped > 0 {
		log.Debug("Skipped gradient presets", zap.Int("count", dropped))
	}
	return cat, nil
}

// Sorted returns copy of list in natural order of names.
func Sorted(list []Preset) []Preset {
	out := append([]Preset(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return natural.Less(out[i].Name, out[j].Name)
	})
	return out
}
