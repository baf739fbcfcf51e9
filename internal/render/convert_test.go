package render

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Acurisu/WVG/internal/codec"
)

func i32p(v int32) *int32 { return &v }

// testDoc wraps elements in a document with a 100x50 viewport and default
// generic parameters.
func testDoc(elements ...codec.Element) *codec.Document {
	return &codec.Document{
		Header: codec.Header{
			Codec: codec.CodecParams{
				Generic:     codec.DefaultGenericParams(),
				Coordinates: codec.FlatCoordinateParams{Width: 100, Height: 50},
			},
		},
		Elements: elements,
	}
}

func TestConvertLine(t *testing.T) {
	doc := testDoc(codec.Element{
		ID:   "el_0",
		Data: &codec.Polyline{Points: []codec.Point{{X: 0, Y: 0}, {X: 100, Y: 50}}},
	})

	scene := Convert(doc, Config{})
	if scene.Width != 100 || scene.Height != 50 {
		t.Fatalf("viewport = %dx%d, want 100x50", scene.Width, scene.Height)
	}
	if len(scene.Primitives) != 1 {
		t.Fatalf("expected one primitive, got %d", len(scene.Primitives))
	}
	p, ok := scene.Primitives[0].(Path)
	if !ok {
		t.Fatalf("unexpected primitive %T", scene.Primitives[0])
	}
	if p.ID != "el_0" {
		t.Fatalf("id = %q, want el_0", p.ID)
	}
	want := []PathCommand{MoveTo{X: 0, Y: 0}, LineToRel{DX: 100, DY: 50}}
	if !reflect.DeepEqual(p.Commands, want) {
		t.Fatalf("commands = %v, want %v", p.Commands, want)
	}
}

func TestConvertDot(t *testing.T) {
	doc := testDoc(codec.Element{
		ID:   "el_0",
		Data: &codec.Polyline{Points: []codec.Point{{X: 83, Y: 9}}},
	})

	scene := Convert(doc, Config{})
	c, ok := scene.Primitives[0].(Circle)
	if !ok {
		t.Fatalf("unexpected primitive %T", scene.Primitives[0])
	}
	if c.CX != 83 || c.CY != 9 {
		t.Fatalf("center = (%d, %d), want (83, 9)", c.CX, c.CY)
	}
}

func TestConvertEmptyPolylineSkipped(t *testing.T) {
	doc := testDoc(codec.Element{ID: "el_0", Data: &codec.Polyline{}})

	scene := Convert(doc, Config{})
	if len(scene.Primitives) != 0 {
		t.Fatalf("expected no primitives, got %d", len(scene.Primitives))
	}
}

func TestConvertOrderPreserved(t *testing.T) {
	doc := testDoc(
		codec.Element{ID: "el_0", Data: &codec.Polyline{Points: []codec.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}}},
		codec.Element{ID: "el_1", Data: &codec.Polyline{Points: []codec.Point{{X: 3, Y: 3}}}},
		codec.Element{ID: "el_2", Data: &codec.Polyline{Points: []codec.Point{{X: 4, Y: 4}, {X: 5, Y: 5}}}},
	)

	scene := Convert(doc, Config{})
	var ids []string
	for _, p := range scene.Primitives {
		switch v := p.(type) {
		case Path:
			ids = append(ids, v.ID)
		case Circle:
			ids = append(ids, v.ID)
		}
	}
	want := []string{"el_0", "el_1", "el_2"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("primitive order = %v, want %v", ids, want)
	}
}

func TestConvertArcs(t *testing.T) {
	doc := testDoc(codec.Element{
		ID: "el_0",
		Data: &codec.CircularPolyline{Points: []codec.CircularPoint{
			{Point: codec.Point{X: 3, Y: 15}},
			{Point: codec.Point{X: 16, Y: 15}},
			{Point: codec.Point{X: 3, Y: 15}, CurveOffset: -6},
			{Point: codec.Point{X: 16, Y: 22}, CurveOffset: -4},
		}},
	})

	p := Convert(doc, Config{}).Primitives[0].(Path)
	if len(p.Commands) != 4 {
		t.Fatalf("command count = %d, want 4", len(p.Commands))
	}
	if got, want := p.Commands[0], (MoveTo{X: 3, Y: 15}); got != want {
		t.Fatalf("command 0 = %v, want %v", got, want)
	}
	if got, want := p.Commands[1], (LineTo{X: 16, Y: 15}); got != want {
		t.Fatalf("command 1 = %v, want %v", got, want)
	}

	arc, ok := p.Commands[2].(ArcTo)
	if !ok {
		t.Fatalf("command 2 = %T, want arc", p.Commands[2])
	}
	if got := fmt.Sprintf("%.2f", arc.RX); got != "6.58" {
		t.Fatalf("radius = %s, want 6.58", got)
	}
	if arc.LargeArc || arc.Sweep {
		t.Fatalf("flags = %t %t, want false false", arc.LargeArc, arc.Sweep)
	}
	if arc.X != 3 || arc.Y != 15 {
		t.Fatalf("target = (%d, %d), want (3, 15)", arc.X, arc.Y)
	}

	arc = p.Commands[3].(ArcTo)
	if got := fmt.Sprintf("%.2f", arc.RX); got != "8.57" {
		t.Fatalf("radius = %s, want 8.57", got)
	}
}

func TestConvertArcFlags(t *testing.T) {
	segment := func(t *testing.T, curveBits uint8, pts []codec.CircularPoint) PathCommand {
		t.Helper()
		doc := testDoc(codec.Element{ID: "el_0", Data: &codec.CircularPolyline{Points: pts}})
		doc.Header.Codec.Generic.CurveOffsetBits = curveBits
		p, ok := Convert(doc, Config{}).Primitives[0].(Path)
		if !ok {
			t.Fatal("expected a path primitive")
		}
		return p.Commands[1]
	}

	t.Run("sweepPositive", func(t *testing.T) {
		cmd := segment(t, 4, []codec.CircularPoint{
			{Point: codec.Point{X: 0, Y: 0}},
			{Point: codec.Point{X: 10, Y: 0}, CurveOffset: 7},
		})
		arc := cmd.(ArcTo)
		if !arc.Sweep || arc.LargeArc {
			t.Fatalf("flags = large %t sweep %t, want large false sweep true", arc.LargeArc, arc.Sweep)
		}
		if got := fmt.Sprintf("%.2f", arc.RX); got != "5.00" {
			t.Fatalf("radius = %s, want 5.00", got)
		}
	})

	t.Run("largeNegative", func(t *testing.T) {
		cmd := segment(t, 4, []codec.CircularPoint{
			{Point: codec.Point{X: 0, Y: 0}},
			{Point: codec.Point{X: 10, Y: 0}, CurveOffset: -8},
		})
		arc := cmd.(ArcTo)
		if !arc.LargeArc || arc.Sweep {
			t.Fatalf("flags = large %t sweep %t, want large true sweep false", arc.LargeArc, arc.Sweep)
		}
	})

	t.Run("wideOffsets", func(t *testing.T) {
		cmd := segment(t, 5, []codec.CircularPoint{
			{Point: codec.Point{X: 0, Y: 0}},
			{Point: codec.Point{X: 30, Y: 0}, CurveOffset: 15},
		})
		arc := cmd.(ArcTo)
		if got := fmt.Sprintf("%.2f", arc.RX); got != "15.00" {
			t.Fatalf("radius = %s, want 15.00", got)
		}
	})

	t.Run("zeroOffsetIsLine", func(t *testing.T) {
		cmd := segment(t, 4, []codec.CircularPoint{
			{Point: codec.Point{X: 0, Y: 0}},
			{Point: codec.Point{X: 10, Y: 0}},
		})
		if got, want := cmd, (LineTo{X: 10, Y: 0}); got != want {
			t.Fatalf("command = %v, want %v", got, want)
		}
	})

	t.Run("zeroChordIsLine", func(t *testing.T) {
		cmd := segment(t, 4, []codec.CircularPoint{
			{Point: codec.Point{X: 5, Y: 5}},
			{Point: codec.Point{X: 5, Y: 5}, CurveOffset: 3},
		})
		if got, want := cmd, (LineTo{X: 5, Y: 5}); got != want {
			t.Fatalf("command = %v, want %v", got, want)
		}
	})
}

func TestConvertGroupBalancing(t *testing.T) {
	doc := testDoc(
		codec.Element{ID: "el_0", Data: codec.GroupEnd{}}, // stray
		codec.Element{ID: "el_1", Data: &codec.GroupStart{Display: true}},
		codec.Element{ID: "el_2", Data: &codec.Polyline{Points: []codec.Point{{X: 1, Y: 1}}}},
	)

	scene := Convert(doc, Config{})
	if len(scene.Primitives) != 3 {
		t.Fatalf("primitive count = %d, want 3", len(scene.Primitives))
	}
	gs, ok := scene.Primitives[0].(GroupStart)
	if !ok || gs.ID != "el_1" {
		t.Fatalf("primitive 0 = %#v, want group start el_1", scene.Primitives[0])
	}
	if _, ok := scene.Primitives[1].(Circle); !ok {
		t.Fatalf("primitive 1 = %T, want circle", scene.Primitives[1])
	}
	// The open group is closed at the end of the stream.
	if _, ok := scene.Primitives[2].(GroupEnd); !ok {
		t.Fatalf("primitive 2 = %T, want group end", scene.Primitives[2])
	}
}

func TestConvertTransformResolution(t *testing.T) {
	doc := testDoc(codec.Element{
		ID: "el_0",
		Data: &codec.GroupStart{
			Transform: &codec.Transform{
				TranslateX: i32p(7),
				Angle:      i32p(2),
				CX:         i32p(4),
				CY:         i32p(6),
				ScaleX:     i32p(1),
			},
			Display: true,
		},
	})

	tr := Convert(doc, Config{}).Primitives[0].(GroupStart).Transform
	if tr == nil {
		t.Fatal("missing transform")
	}
	if tr.TranslateX != 7 || tr.TranslateY != 0 {
		t.Fatalf("translate = (%d, %d), want (7, 0)", tr.TranslateX, tr.TranslateY)
	}
	// Default angle resolution is 22.5 / 8 degrees per unit.
	if tr.Rotation == nil || tr.Rotation.Degrees != 5.625 {
		t.Fatalf("rotation = %+v, want 5.625 degrees", tr.Rotation)
	}
	if tr.Rotation.CX != 4 || tr.Rotation.CY != 6 {
		t.Fatalf("rotation center = (%d, %d), want (4, 6)", tr.Rotation.CX, tr.Rotation.CY)
	}
	// Default scale resolution is 0.25 per unit.
	if tr.ScaleX == nil || *tr.ScaleX != 1.25 {
		t.Fatalf("scale x = %v, want 1.25", tr.ScaleX)
	}
	if tr.ScaleY != nil {
		t.Fatalf("unexpected scale y %v", *tr.ScaleY)
	}
}

func TestConvertScaleYRequiresScaleX(t *testing.T) {
	doc := testDoc(codec.Element{
		ID:   "el_0",
		Data: &codec.GroupStart{Transform: &codec.Transform{ScaleY: i32p(2)}, Display: true},
	})

	tr := Convert(doc, Config{}).Primitives[0].(GroupStart).Transform
	if tr.ScaleX != nil || tr.ScaleY != nil {
		t.Fatalf("scale = %v, %v, want unset", tr.ScaleX, tr.ScaleY)
	}
}

func TestConvertReuseSingle(t *testing.T) {
	doc := testDoc(
		codec.Element{ID: "el_0", Data: &codec.Polyline{Points: []codec.Point{{X: 1, Y: 1}}}},
		codec.Element{
			ID:   "el_1",
			Data: &codec.Reuse{Index: 0, Transform: codec.Transform{TranslateX: i32p(41)}},
		},
	)

	u, ok := Convert(doc, Config{}).Primitives[1].(Use)
	if !ok {
		t.Fatal("expected a use primitive")
	}
	if u.Href != "el_0" {
		t.Fatalf("href = %q, want el_0", u.Href)
	}
	if u.Transform == nil || u.Transform.TranslateX != 41 || u.Transform.Offset != nil {
		t.Fatalf("unexpected transform %+v", u.Transform)
	}
}

func TestConvertReuseArray(t *testing.T) {
	doc := testDoc(
		codec.Element{ID: "el_0", Data: &codec.Polyline{Points: []codec.Point{{X: 1, Y: 1}}}},
		codec.Element{
			ID: "el_1",
			Data: &codec.Reuse{
				Index: 0,
				Array: &codec.ArrayParams{Columns: 2, Rows: 2, Width: i32p(20), Height: i32p(10)},
			},
		},
	)

	scene := Convert(doc, Config{})
	if len(scene.Primitives) != 5 {
		t.Fatalf("primitive count = %d, want 5", len(scene.Primitives))
	}

	wantIDs := []string{"el_1_0_0", "el_1_0_1", "el_1_1_0", "el_1_1_1"}
	wantOffsets := []*codec.Point{nil, {X: 20, Y: 0}, {X: 0, Y: 10}, {X: 20, Y: 10}}
	for i, want := range wantIDs {
		u := scene.Primitives[i+1].(Use)
		if u.ID != want {
			t.Fatalf("instance %d id = %q, want %q", i, u.ID, want)
		}
		if u.Href != "el_0" {
			t.Fatalf("instance %d href = %q, want el_0", i, u.Href)
		}
		if !reflect.DeepEqual(u.Transform.Offset, wantOffsets[i]) {
			t.Fatalf("instance %d offset = %v, want %v", i, u.Transform.Offset, wantOffsets[i])
		}
	}
}

func TestConvertReuseArrayRowSpacingDefault(t *testing.T) {
	doc := testDoc(
		codec.Element{ID: "el_0", Data: &codec.Polyline{Points: []codec.Point{{X: 1, Y: 1}}}},
		codec.Element{
			ID: "el_1",
			Data: &codec.Reuse{
				Index: 0,
				Array: &codec.ArrayParams{Columns: 1, Rows: 2, Width: i32p(15)},
			},
		},
	)

	scene := Convert(doc, Config{})
	u := scene.Primitives[2].(Use)
	if u.Transform.Offset == nil || u.Transform.Offset.Y != 15 {
		t.Fatalf("row offset = %v, want y 15", u.Transform.Offset)
	}
}

func TestConvertStyles(t *testing.T) {
	dashed := codec.LineDashed
	solid := codec.LineSolid
	thick := codec.WidthThick
	red := codec.Color{R: 255}
	filled := true
	unfilled := false

	t.Run("full", func(t *testing.T) {
		doc := testDoc(codec.Element{
			ID: "el_0",
			Data: &codec.Polyline{
				Attributes: codec.Attributes{
					LineType:  &dashed,
					LineWidth: &thick,
					LineColor: &red,
					Fill:      &filled,
					FillColor: &red,
				},
				Points: []codec.Point{{X: 1, Y: 1}},
			},
		})

		s := Convert(doc, Config{LineWidthScale: 2}).Primitives[0].(Circle).Style
		if s.DashArray != "5 3" {
			t.Fatalf("dash array = %q, want 5 3", s.DashArray)
		}
		if s.StrokeWidth == nil || *s.StrokeWidth != 6 {
			t.Fatalf("stroke width = %v, want 6", s.StrokeWidth)
		}
		if s.Stroke == nil || *s.Stroke != red {
			t.Fatalf("stroke = %v, want red", s.Stroke)
		}
		if s.Fill == nil || *s.Fill != red || s.NoFill {
			t.Fatalf("fill = %v noFill %t, want red", s.Fill, s.NoFill)
		}
	})

	t.Run("solidHasNoDashArray", func(t *testing.T) {
		doc := testDoc(codec.Element{
			ID: "el_0",
			Data: &codec.Polyline{
				Attributes: codec.Attributes{LineType: &solid},
				Points:     []codec.Point{{X: 1, Y: 1}},
			},
		})

		s := Convert(doc, Config{}).Primitives[0].(Circle).Style
		if s.DashArray != "" {
			t.Fatalf("dash array = %q, want empty", s.DashArray)
		}
	})

	t.Run("noFill", func(t *testing.T) {
		doc := testDoc(codec.Element{
			ID: "el_0",
			Data: &codec.Polyline{
				Attributes: codec.Attributes{Fill: &unfilled},
				Points:     []codec.Point{{X: 1, Y: 1}},
			},
		})

		s := Convert(doc, Config{}).Primitives[0].(Circle).Style
		if !s.NoFill || s.Fill != nil {
			t.Fatalf("fill = %v noFill %t, want noFill", s.Fill, s.NoFill)
		}
	})

	t.Run("filledWithoutColorInherits", func(t *testing.T) {
		doc := testDoc(codec.Element{
			ID: "el_0",
			Data: &codec.Polyline{
				Attributes: codec.Attributes{Fill: &filled},
				Points:     []codec.Point{{X: 1, Y: 1}},
			},
		})

		s := Convert(doc, Config{}).Primitives[0].(Circle).Style
		if !s.IsZero() {
			t.Fatalf("style = %+v, want zero", s)
		}
	})
}

func TestConvertSimpleShapes(t *testing.T) {
	doc := testDoc(
		codec.Element{ID: "el_0", Data: &codec.SimpleShape{Type: codec.ShapeRectangle}},
		codec.Element{ID: "el_1", Data: &codec.SimpleShape{Type: codec.ShapeEllipse}},
	)

	scene := Convert(doc, Config{})
	r, ok := scene.Primitives[0].(Rect)
	if !ok || r.X != 0 || r.Y != 0 || r.Width != 10 || r.Height != 10 {
		t.Fatalf("unexpected rect %#v", scene.Primitives[0])
	}
	e, ok := scene.Primitives[1].(Ellipse)
	if !ok || e.CX != 5 || e.CY != 5 || e.RX != 5 || e.RY != 5 {
		t.Fatalf("unexpected ellipse %#v", scene.Primitives[1])
	}
}

func TestConvertSceneDefaults(t *testing.T) {
	bg := codec.Color{R: 1, G: 2, B: 3}
	line := codec.ColorBlack
	fill := codec.ColorWhite

	doc := testDoc()
	doc.Header.Colors = codec.ColorConfig{
		Scheme:      codec.SchemeRGB24,
		DefaultLine: &line,
		DefaultFill: &fill,
		Background:  &bg,
	}

	scene := Convert(doc, Config{})
	if scene.Background == nil || *scene.Background != bg {
		t.Fatalf("background = %v, want %v", scene.Background, bg)
	}
	if scene.DefaultStroke == nil || *scene.DefaultStroke != line {
		t.Fatalf("default stroke = %v, want %v", scene.DefaultStroke, line)
	}
	if scene.DefaultFill == nil || *scene.DefaultFill != fill {
		t.Fatalf("default fill = %v, want %v", scene.DefaultFill, fill)
	}
}
