package render

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/Acurisu/WVG/internal/codec"
)

// Config controls the document to scene conversion.
type Config struct {
	// LineWidthScale multiplies the stroke widths mapped from the line
	// width attribute. Zero means no scaling.
	LineWidthScale float64
}

type converter struct {
	cfg       Config
	angleRes  float64
	scaleRes  float64
	curveBits uint8
	depth     int
	scene     *Scene
}

// Convert walks the document elements in order and builds a scene. The
// primitive order matches the element order, overlapping primitives keep
// their stacking.
func Convert(doc *codec.Document, cfg Config) *Scene {
	if cfg.LineWidthScale == 0 {
		cfg.LineWidthScale = 1
	}

	gp := doc.Header.Codec.Generic
	c := &converter{
		cfg:       cfg,
		angleRes:  22.5 / float64(int(1)<<gp.AngleResolution),
		scaleRes:  0.25 / float64(int(1)<<gp.ScaleResolution),
		curveBits: gp.CurveOffsetBits,
		scene: &Scene{
			Width:         doc.Header.Codec.Coordinates.Width,
			Height:        doc.Header.Codec.Coordinates.Height,
			Background:    doc.Header.Colors.Background,
			DefaultStroke: doc.Header.Colors.DefaultLine,
			DefaultFill:   doc.Header.Colors.DefaultFill,
		},
	}

	for _, el := range doc.Elements {
		c.convertElement(el)
	}
	for c.depth > 0 {
		c.depth--
		c.emit(GroupEnd{})
	}
	return c.scene
}

func (c *converter) emit(p Primitive) {
	c.scene.Primitives = append(c.scene.Primitives, p)
}

func (c *converter) convertElement(el codec.Element) {
	logrus.Tracef("converting element %s", el.ID)

	switch data := el.Data.(type) {
	case *codec.Polyline:
		c.convertPolyline(el.ID, data)
	case *codec.CircularPolyline:
		c.convertCircularPolyline(el.ID, data)
	case *codec.SimpleShape:
		c.convertSimpleShape(el.ID, data)
	case *codec.Reuse:
		c.convertReuse(el.ID, data)
	case *codec.GroupStart:
		c.emit(GroupStart{
			ID:        el.ID,
			Transform: c.resolveTransform(data.Transform),
			Display:   data.Display,
		})
		c.depth++
	case codec.GroupEnd:
		if c.depth == 0 {
			logrus.Debugf("dropping unbalanced group end %s", el.ID)
			return
		}
		c.depth--
		c.emit(GroupEnd{})
	}
}

func (c *converter) convertPolyline(id string, pl *codec.Polyline) {
	logrus.Debugf("polyline %s: %d points", id, len(pl.Points))
	if len(pl.Points) == 0 {
		return
	}
	style := c.buildStyle(&pl.Attributes)

	// A single point draws as a dot.
	if len(pl.Points) == 1 {
		c.emit(Circle{ID: id, CX: pl.Points[0].X, CY: pl.Points[0].Y, Style: style})
		return
	}

	cmds := make([]PathCommand, 0, len(pl.Points))
	cmds = append(cmds, MoveTo{X: pl.Points[0].X, Y: pl.Points[0].Y})
	for i := 1; i < len(pl.Points); i++ {
		prev, cur := pl.Points[i-1], pl.Points[i]
		cmds = append(cmds, LineToRel{DX: cur.X - prev.X, DY: cur.Y - prev.Y})
	}
	c.emit(Path{ID: id, Commands: cmds, Style: style})
}

func (c *converter) convertCircularPolyline(id string, cp *codec.CircularPolyline) {
	logrus.Debugf("circular polyline %s: %d points", id, len(cp.Points))
	if len(cp.Points) < 2 {
		return
	}

	cmds := make([]PathCommand, 0, len(cp.Points))
	cmds = append(cmds, MoveTo{X: cp.Points[0].Point.X, Y: cp.Points[0].Point.Y})
	for i := 1; i < len(cp.Points); i++ {
		cmds = append(cmds, c.segment(cp.Points[i-1].Point, cp.Points[i]))
	}
	c.emit(Path{ID: id, Commands: cmds, Style: c.buildStyle(&cp.Attributes)})
}

// segment maps one circular polyline leg to a line or arc command. The curve
// offset encodes the sagitta relative to the chord length, scaled by the
// widest representable magnitude.
func (c *converter) segment(from codec.Point, to codec.CircularPoint) PathCommand {
	line := LineTo{X: to.Point.X, Y: to.Point.Y}
	if to.CurveOffset == 0 {
		return line
	}

	dx := float64(to.Point.X - from.X)
	dy := float64(to.Point.Y - from.Y)
	chord := math.Sqrt(dx*dx + dy*dy)
	if chord < 1e-9 {
		return line
	}

	k := float64(int(1)<<c.curveBits - 2)
	r := float64(to.CurveOffset) / k
	e := r * chord
	if math.Abs(e) < 1e-9 {
		return line
	}

	radius := (chord*chord/4 + e*e) / (2 * math.Abs(e))
	return ArcTo{
		RX:       radius,
		RY:       radius,
		LargeArc: math.Abs(r) > 0.5,
		Sweep:    to.CurveOffset > 0,
		X:        to.Point.X,
		Y:        to.Point.Y,
	}
}

func (c *converter) convertSimpleShape(id string, ss *codec.SimpleShape) {
	logrus.Debugf("simple shape %s: %s", id, ss.Type)
	style := c.buildStyle(&ss.Attributes)

	// The shape geometry is not decoded, draw a fixed placeholder.
	if ss.Type == codec.ShapeEllipse {
		c.emit(Ellipse{ID: id, CX: 5, CY: 5, RX: 5, RY: 5, Style: style})
		return
	}
	c.emit(Rect{ID: id, Width: 10, Height: 10, Style: style})
}

func (c *converter) convertReuse(id string, ru *codec.Reuse) {
	href := fmt.Sprintf("el_%d", ru.Index)
	logrus.Debugf("reuse %s references %s", id, href)

	base := c.resolveTransform(&ru.Transform)

	var style Style
	if ru.Overrides != nil {
		style = c.buildStyle(ru.Overrides)
	}

	if ru.Array == nil {
		c.emit(Use{ID: id, Href: href, Transform: base, Style: style})
		return
	}

	a := ru.Array
	logrus.Debugf("array reuse: %dx%d", a.Columns, a.Rows)

	var spacingX int32
	if a.Width != nil {
		spacingX = *a.Width
	}
	spacingY := spacingX
	if a.Height != nil {
		spacingY = *a.Height
	}

	for row := 0; row < int(a.Rows); row++ {
		for col := 0; col < int(a.Columns); col++ {
			t := Transform{}
			if base != nil {
				t = *base
			}
			tx := int32(col) * spacingX
			ty := int32(row) * spacingY
			if tx != 0 || ty != 0 {
				t.Offset = &codec.Point{X: tx, Y: ty}
			}
			c.emit(Use{
				ID:        fmt.Sprintf("%s_%d_%d", id, row, col),
				Href:      href,
				Transform: &t,
				Style:     style,
			})
		}
	}
}

func (c *converter) resolveTransform(t *codec.Transform) *Transform {
	if t == nil {
		return nil
	}

	var out Transform
	if t.TranslateX != nil {
		out.TranslateX = *t.TranslateX
	}
	if t.TranslateY != nil {
		out.TranslateY = *t.TranslateY
	}

	if t.Angle != nil {
		rot := Rotation{Degrees: float64(*t.Angle) * c.angleRes}
		if t.CX != nil {
			rot.CX = *t.CX
		}
		if t.CY != nil {
			rot.CY = *t.CY
		}
		out.Rotation = &rot
	}

	// A vertical scale without a horizontal one has no rendering.
	if t.ScaleX != nil {
		sx := 1 + float64(*t.ScaleX)*c.scaleRes
		out.ScaleX = &sx
		if t.ScaleY != nil {
			sy := 1 + float64(*t.ScaleY)*c.scaleRes
			out.ScaleY = &sy
		}
	}

	return &out
}

func (c *converter) buildStyle(attrs *codec.Attributes) Style {
	var s Style

	if attrs.LineType != nil {
		switch *attrs.LineType {
		case codec.LineDotted:
			s.DashArray = "1 3"
		case codec.LineDashed:
			s.DashArray = "5 3"
		case codec.LineDashDot:
			s.DashArray = "5 2 1 2"
		}
	}

	if attrs.LineWidth != nil {
		var w float64
		switch *attrs.LineWidth {
		case codec.WidthFine:
			w = 1
		case codec.WidthNormal:
			w = 2
		case codec.WidthThick:
			w = 3
		}
		w *= c.cfg.LineWidthScale
		s.StrokeWidth = &w
	}

	if attrs.LineColor != nil {
		s.Stroke = attrs.LineColor
	}

	if attrs.Fill != nil {
		if !*attrs.Fill {
			s.NoFill = true
		} else if attrs.FillColor != nil {
			s.Fill = attrs.FillColor
		}
	}

	return s
}
