package wvg

import (
	"github.com/Acurisu/WVG/internal/codec"
	"github.com/Acurisu/WVG/internal/render"
	"github.com/Acurisu/WVG/internal/svg"
)

// Result captures the outcome of ToSVG: the decoded document, the drawing
// primitives derived from it and the rendered markup.
type Result struct {
	Document *codec.Document
	Scene    *render.Scene
	SVG      string
}

// Parse decodes one complete WVG binary document from data. It returns the
// decoded document or a *codec.ParseError carrying the failing bit offset;
// there is no partial result on failure.
func Parse(data []byte) (*codec.Document, error) {
	return codec.Parse(data)
}

// Convert maps a parsed document to its drawing primitives. Primitives keep
// the document element order. All input validation happens during Parse, a
// successfully parsed document always converts.
func Convert(doc *codec.Document, opts Options) *render.Scene {
	return render.Convert(doc, opts.renderConfig())
}

// EncodeSVG renders a scene as SVG markup.
func EncodeSVG(scene *render.Scene, opts Options) string {
	return svg.Encode(scene, opts.svgOptions())
}

// ToSVG runs the full pipeline: parse the buffer, convert the document and
// encode the markup.
func ToSVG(data []byte, opts Options) (Result, error) {
	doc, err := Parse(data)
	if err != nil {
		return Result{}, err
	}
	scene := Convert(doc, opts)
	return Result{Document: doc, Scene: scene, SVG: EncodeSVG(scene, opts)}, nil
}
