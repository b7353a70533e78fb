package state

import (
	"time"

	"go.uber.org/zap"

	"gradc/codec"
	"gradc/presets"
)

// newLocalEnv creates environment with codec in default configuration, it is
// replaced by Setup once configuration is loaded. Log stays nil until then.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		Codec: codec.New(nil, codec.DefaultSettings),
	}
}

// Setup builds codec from loaded configuration.
func (e *LocalEnv) Setup() {
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	settings := codec.DefaultSettings
	if e.Cfg != nil {
		settings = e.Cfg.Codec.Settings()
	}
	e.Codec = codec.New(e.Log, settings)
	e.catalogue = nil
}

// Catalogue processes preset lists on first use.
func (e *LocalEnv) Catalogue() (*presets.Catalogue, error) {
	if e.catalogue != nil {
		return e.catalogue, nil
	}
	var src *presets.Source
	if e.Cfg != nil {
		src = &e.Cfg.Presets
	}
	cat, err := presets.Load(e.Log, e.Codec, src)
	if err != nil {
		return nil, err
	}
	e.catalogue = cat
	return cat, nil
}
