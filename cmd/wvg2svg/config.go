package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Acurisu/WVG/pkg/wvg"
)

// wvg2svg config.toml key mapping to render options.
type fileConfig struct {
	Pretty         bool    `toml:"pretty"`
	LineWidthScale float64 `toml:"line_width_scale"`
}

// loadOptions overlays the keys present in the file onto zero options, so
// absent keys keep their defaults.
func loadOptions(path string) (wvg.Options, error) {
	var opts wvg.Options

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return wvg.Options{}, fmt.Errorf("load render config: %w", err)
	}

	if meta.IsDefined("pretty") {
		opts.PrettyPrint = raw.Pretty
	}
	if meta.IsDefined("line_width_scale") {
		opts.LineWidthScale = raw.LineWidthScale
	}
	return opts, nil
}
