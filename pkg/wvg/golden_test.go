package wvg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Acurisu/WVG/internal/codec"
	"github.com/Acurisu/WVG/internal/testutil"
)

// The fixture is the 103 byte EMS vector graphics sample from TS 23.040
// style messaging: a 128x32 black and white drawing with 18 elements.
func loadSample(t *testing.T) []byte {
	t.Helper()
	data := testutil.LoadHex(t, "ems_sample.hex")
	require.Len(t, data, 103)
	return data
}

func TestEMSSampleSVG(t *testing.T) {
	result, err := ToSVG(loadSample(t), Options{})
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	require.NotNil(t, result.Scene)
	require.Len(t, result.Document.Elements, 18)
	require.Len(t, result.Scene.Primitives, 18)

	want := testutil.LoadText(t, "ems_sample.svg")
	require.Equal(t, want, result.SVG)
}

func TestEMSSampleHeader(t *testing.T) {
	doc, err := Parse(loadSample(t))
	require.NoError(t, err)

	require.EqualValues(t, 0, doc.Header.General.Version)
	require.Nil(t, doc.Header.General.TextMode)
	require.Equal(t, codec.SchemeBlackAndWhite, doc.Header.Colors.Scheme)

	masks := doc.Header.Codec.ElementMasks
	require.Len(t, masks, 8)
	require.False(t, masks[0], "local envelope should be disabled")
	require.True(t, masks[1], "polyline should be enabled")
	require.True(t, masks[2], "circular polyline should be enabled")
	require.False(t, masks[3], "bezier should be disabled")
	require.False(t, masks[4], "simple shape should be disabled")
	require.True(t, masks[5], "reuse should be enabled")

	attrs := doc.Header.Codec.Attributes
	require.False(t, attrs.LineType)
	require.False(t, attrs.LineWidth)
	require.False(t, attrs.LineColor)
	require.False(t, attrs.Fill)

	coords := doc.Header.Codec.Coordinates
	require.EqualValues(t, 128, coords.Width)
	require.EqualValues(t, 32, coords.Height)
	require.EqualValues(t, 7, coords.MaxXBits)
	require.EqualValues(t, 5, coords.MaxYBits)
	require.True(t, coords.AllPositive)
	require.EqualValues(t, 7, coords.TranslateBits)
	require.EqualValues(t, 3, coords.OffsetXBitsL1)
	require.EqualValues(t, 3, coords.OffsetYBitsL1)
	require.EqualValues(t, 5, coords.OffsetXBitsL2)
	require.EqualValues(t, 5, coords.OffsetYBitsL2)
}

func TestEMSSampleElements(t *testing.T) {
	doc, err := Parse(loadSample(t))
	require.NoError(t, err)

	el := doc.Elements[0]
	require.Equal(t, "el_0", el.ID)
	dot, ok := el.Data.(*codec.Polyline)
	require.True(t, ok, "el_0 should be a polyline")
	require.Equal(t, []codec.Point{{X: 83, Y: 9}}, dot.Points)

	el = doc.Elements[1]
	require.Equal(t, "el_1", el.ID)
	line, ok := el.Data.(*codec.Polyline)
	require.True(t, ok, "el_1 should be a polyline")
	require.Equal(t, []codec.Point{{X: 83, Y: 14}, {X: 83, Y: 25}}, line.Points)

	el = doc.Elements[2]
	require.Equal(t, "el_2", el.ID)
	arc, ok := el.Data.(*codec.CircularPolyline)
	require.True(t, ok, "el_2 should be a circular polyline")
	require.Len(t, arc.Points, 4)
	require.Equal(t, codec.Point{X: 3, Y: 15}, arc.Points[0].Point)
	require.EqualValues(t, 0, arc.Points[0].CurveOffset)
	require.Equal(t, codec.Point{X: 16, Y: 15}, arc.Points[1].Point)
	require.EqualValues(t, 0, arc.Points[1].CurveOffset)
	require.EqualValues(t, -6, arc.Points[2].CurveOffset)
	require.EqualValues(t, -4, arc.Points[3].CurveOffset)

	el = doc.Elements[13]
	require.Equal(t, "el_13", el.ID)
	reuse, ok := el.Data.(*codec.Reuse)
	require.True(t, ok, "el_13 should be a reuse")
	require.EqualValues(t, 9, reuse.Index)
	require.NotNil(t, reuse.Transform.TranslateX)
	require.EqualValues(t, 41, *reuse.Transform.TranslateX)
	require.Nil(t, reuse.Transform.TranslateY)
}

func TestEMSSampleElementCounts(t *testing.T) {
	doc, err := Parse(loadSample(t))
	require.NoError(t, err)

	var polylines, circulars, reuses int
	for _, el := range doc.Elements {
		switch el.Data.(type) {
		case *codec.Polyline:
			polylines++
		case *codec.CircularPolyline:
			circulars++
		case *codec.Reuse:
			reuses++
		}
	}
	require.Equal(t, 9, polylines)
	require.Equal(t, 6, circulars)
	require.Equal(t, 3, reuses)
}

func TestEMSSampleMarkupFragments(t *testing.T) {
	result, err := ToSVG(loadSample(t), Options{})
	require.NoError(t, err)

	svg := result.SVG
	require.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, svg, `viewBox="0 0 128 32"`)
	require.Contains(t, svg, `<circle id="el_0" cx="83" cy="9" r="1.0"`)
	require.Contains(t, svg, `<path id="el_1" d="M 83 14 l 0 11"`)
	require.Contains(t, svg, `A 6.58 6.58 0 0 0 3 15`)
	require.Contains(t, svg, `<use id="el_13" href="#el_9" transform="translate(41, 0)"`)
}

func TestEMSSamplePretty(t *testing.T) {
	result, err := ToSVG(loadSample(t), Options{PrettyPrint: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(result.SVG, "\n"), "\n")
	require.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`, lines[0])
	require.Equal(t, "</svg>", lines[len(lines)-1])
	require.Contains(t, result.SVG, "\n  <circle id=\"el_0\"")
}
