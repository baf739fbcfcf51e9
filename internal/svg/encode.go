package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Acurisu/WVG/internal/render"
)

// Options control the markup formatting.
type Options struct {
	// Pretty indents the markup with two spaces per level and terminates
	// every line with a newline. The default is one unbroken line.
	Pretty bool
}

// Encode renders a scene as an SVG document string. Primitives are written
// in scene order, so the markup stacking matches the drawing order.
func Encode(s *render.Scene, opts Options) string {
	logrus.Debugf("encoding scene: %d primitives", len(s.Primitives))

	e := &encoder{scene: s, pretty: opts.Pretty}
	e.out.Grow(4096)

	e.line(`<?xml version="1.0" encoding="UTF-8"?>`)
	e.line(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, s.Width, s.Height))
	e.indent++

	e.defaults()
	for _, p := range s.Primitives {
		e.primitive(p)
	}

	e.indent--
	e.line("</svg>")
	return e.out.String()
}

type encoder struct {
	scene  *render.Scene
	out    strings.Builder
	pretty bool
	indent int
}

func (e *encoder) line(s string) {
	if e.pretty {
		for i := 0; i < e.indent; i++ {
			e.out.WriteString("  ")
		}
	}
	e.out.WriteString(s)
	if e.pretty {
		e.out.WriteByte('\n')
	}
}

// defaults writes the optional background rectangle and the style sheet that
// covers primitives carrying no style of their own.
func (e *encoder) defaults() {
	if bg := e.scene.Background; bg != nil {
		e.line(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`, e.scene.Width, e.scene.Height, bg.Hex()))
	}

	stroke := "#000000"
	if e.scene.DefaultStroke != nil {
		stroke = e.scene.DefaultStroke.Hex()
	}
	fill := "none"
	if e.scene.DefaultFill != nil {
		fill = e.scene.DefaultFill.Hex()
	}

	e.line("<defs>")
	e.indent++
	e.line(fmt.Sprintf("<style>path, polyline, line, circle, ellipse, rect { stroke: %s; fill: %s; stroke-width: 1; }</style>", stroke, fill))
	e.indent--
	e.line("</defs>")
}

func (e *encoder) primitive(p render.Primitive) {
	switch v := p.(type) {
	case render.Circle:
		e.line(fmt.Sprintf(`<circle id="%s" cx="%d" cy="%d" r="1.0" %s/>`, v.ID, v.CX, v.CY, styleAttr(v.Style)))
	case render.Path:
		e.line(fmt.Sprintf(`<path id="%s" d="%s" %s/>`, v.ID, pathData(v.Commands), styleAttr(v.Style)))
	case render.Rect:
		e.line(fmt.Sprintf(`<rect id="%s" x="%d" y="%d" width="%d" height="%d" %s/>`, v.ID, v.X, v.Y, v.Width, v.Height, styleAttr(v.Style)))
	case render.Ellipse:
		e.line(fmt.Sprintf(`<ellipse id="%s" cx="%d" cy="%d" rx="%d" ry="%d" %s/>`, v.ID, v.CX, v.CY, v.RX, v.RY, styleAttr(v.Style)))
	case render.Use:
		e.line(fmt.Sprintf(`<use id="%s" href="#%s" %s %s/>`, v.ID, v.Href, transformAttr(v.Transform), styleAttr(v.Style)))
	case render.GroupStart:
		display := ""
		if !v.Display {
			display = ` display="none"`
		}
		e.line(fmt.Sprintf(`<g id="%s" %s%s>`, v.ID, transformAttr(v.Transform), display))
		e.indent++
	case render.GroupEnd:
		e.indent--
		e.line("</g>")
	}
}

func pathData(cmds []render.PathCommand) string {
	var b strings.Builder
	for i, cmd := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c := cmd.(type) {
		case render.MoveTo:
			fmt.Fprintf(&b, "M %d %d", c.X, c.Y)
		case render.LineToRel:
			fmt.Fprintf(&b, "l %d %d", c.DX, c.DY)
		case render.LineTo:
			fmt.Fprintf(&b, "L %d %d", c.X, c.Y)
		case render.ArcTo:
			large, sweep := 0, 0
			if c.LargeArc {
				large = 1
			}
			if c.Sweep {
				sweep = 1
			}
			fmt.Fprintf(&b, "A %.2f %.2f 0 %d %d %d %d", c.RX, c.RY, large, sweep, c.X, c.Y)
		}
	}
	return b.String()
}

func transformAttr(t *render.Transform) string {
	if t == nil {
		return ""
	}

	var parts []string
	if t.TranslateX != 0 || t.TranslateY != 0 {
		parts = append(parts, fmt.Sprintf("translate(%d, %d)", t.TranslateX, t.TranslateY))
	}
	if r := t.Rotation; r != nil {
		if r.CX != 0 || r.CY != 0 {
			parts = append(parts, fmt.Sprintf("rotate(%s %d %d)", num(r.Degrees), r.CX, r.CY))
		} else {
			parts = append(parts, fmt.Sprintf("rotate(%s)", num(r.Degrees)))
		}
	}
	if t.ScaleX != nil {
		if t.ScaleY != nil {
			parts = append(parts, fmt.Sprintf("scale(%s %s)", num(*t.ScaleX), num(*t.ScaleY)))
		} else {
			parts = append(parts, fmt.Sprintf("scale(%s)", num(*t.ScaleX)))
		}
	}
	// Array instances shift after the element transform.
	if t.Offset != nil {
		parts = append(parts, fmt.Sprintf("translate(%d, %d)", t.Offset.X, t.Offset.Y))
	}

	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(`transform="%s"`, strings.Join(parts, " "))
}

func styleAttr(s render.Style) string {
	var entries []string
	if s.DashArray != "" {
		entries = append(entries, "stroke-dasharray: "+s.DashArray)
	}
	if s.StrokeWidth != nil {
		entries = append(entries, "stroke-width: "+num(*s.StrokeWidth))
	}
	if s.Stroke != nil {
		entries = append(entries, "stroke: "+s.Stroke.Hex())
	}
	if s.NoFill {
		entries = append(entries, "fill: none")
	} else if s.Fill != nil {
		entries = append(entries, "fill: "+s.Fill.Hex())
	}

	if len(entries) == 0 {
		return ""
	}
	return fmt.Sprintf(`style="%s"`, strings.Join(entries, "; "))
}

// num formats a float without a fixed precision, 1.25 stays 1.25 and 2
// stays 2.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
