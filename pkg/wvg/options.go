package wvg

import (
	"github.com/Acurisu/WVG/internal/render"
	"github.com/Acurisu/WVG/internal/svg"
)

// Options configures conversion and markup output. The zero value renders
// one unbroken markup line with unscaled stroke widths.
type Options struct {
	// PrettyPrint indents the markup instead of writing a single line.
	PrettyPrint bool
	// LineWidthScale multiplies the stroke widths mapped from line width
	// attributes. Zero means no scaling.
	LineWidthScale float64
}

func (o Options) renderConfig() render.Config {
	return render.Config{LineWidthScale: o.LineWidthScale}
}

func (o Options) svgOptions() svg.Options {
	return svg.Options{Pretty: o.PrettyPrint}
}
