// Package config loads program configuration and prepares logging and debug
// reporting.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"gradc/codec"
	"gradc/common"
	"gradc/presets"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	CodecConfig struct {
		Conic      bool             `yaml:"conic"`
		MultiStops bool             `yaml:"multi_stops"`
		Mode       common.ColorMode `yaml:"mode" validate:"gte=0,lte=2"`
	}

	ThumbnailsConfig struct {
		Width       int             `yaml:"width" validate:"min=1,max=4096"`
		Height      int             `yaml:"height" validate:"min=1,max=4096"`
		Format      ThumbnailFormat `yaml:"format" validate:"oneof=0 1"`
		JPEGQuality int             `yaml:"jpeg_quality_level" validate:"min=40,max=100"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Codec      CodecConfig      `yaml:"codec"`
		Thumbnails ThumbnailsConfig `yaml:"thumbnails"`
		Presets    presets.Source   `yaml:"presets"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

// Settings converts codec section into codec capabilities.
func (conf *CodecConfig) Settings() codec.Settings {
	return codec.Settings{Conic: conf.Conic, MultiStops: conf.MultiStops}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are allowed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration expands configuration template to get defaults, then
// superimposes values from the file at the given path (if any) and validates
// the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns expanded configuration template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
