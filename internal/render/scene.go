package render

import "github.com/Acurisu/WVG/internal/codec"

// Scene is the drawing produced from a decoded document: the viewport, the
// document level default colors and the ordered primitive list. Group
// primitives are always balanced, conversion drops stray group ends and
// closes groups left open at the end of the element stream.
type Scene struct {
	Width         uint16
	Height        uint16
	Background    *codec.Color
	DefaultStroke *codec.Color
	DefaultFill   *codec.Color
	Primitives    []Primitive
}

// Primitive is one drawing instruction. The concrete types mirror the markup
// elements the SVG encoder emits, in document order.
type Primitive interface {
	primitive()
}

// Circle is the dot drawn for a single point polyline.
type Circle struct {
	ID     string
	CX, CY int32
	Style  Style
}

// Path is a sequence of line and arc segments.
type Path struct {
	ID       string
	Commands []PathCommand
	Style    Style
}

// Rect is the placeholder drawn for a rectangle simple shape.
type Rect struct {
	ID            string
	X, Y          int32
	Width, Height int32
	Style         Style
}

// Ellipse is the placeholder drawn for an ellipse simple shape.
type Ellipse struct {
	ID     string
	CX, CY int32
	RX, RY int32
	Style  Style
}

// Use instantiates an earlier primitive by reference.
type Use struct {
	ID        string
	Href      string
	Transform *Transform
	Style     Style
}

// GroupStart opens a container for the primitives that follow.
type GroupStart struct {
	ID        string
	Transform *Transform
	Display   bool
}

// GroupEnd closes the innermost open group.
type GroupEnd struct{}

func (Circle) primitive()     {}
func (Path) primitive()       {}
func (Rect) primitive()       {}
func (Ellipse) primitive()    {}
func (Use) primitive()        {}
func (GroupStart) primitive() {}
func (GroupEnd) primitive()   {}

// PathCommand is one segment of a path.
type PathCommand interface {
	pathCommand()
}

// MoveTo starts the path at an absolute position.
type MoveTo struct{ X, Y int32 }

// LineToRel draws a straight segment by a relative offset.
type LineToRel struct{ DX, DY int32 }

// LineTo draws a straight segment to an absolute position.
type LineTo struct{ X, Y int32 }

// ArcTo draws a circular arc to an absolute position.
type ArcTo struct {
	RX, RY   float64
	LargeArc bool
	Sweep    bool
	X, Y     int32
}

func (MoveTo) pathCommand()    {}
func (LineToRel) pathCommand() {}
func (LineTo) pathCommand()    {}
func (ArcTo) pathCommand()     {}

// Transform is a resolved element transform. The angle is in degrees and the
// scale factors are absolute, both computed from the header resolutions.
// Offset carries the displacement of an array instance and applies after the
// other operations.
type Transform struct {
	TranslateX int32
	TranslateY int32
	Rotation   *Rotation
	ScaleX     *float64
	ScaleY     *float64
	Offset     *codec.Point
}

// Rotation rotates by an angle in degrees, around a center when one is set.
type Rotation struct {
	Degrees float64
	CX, CY  int32
}

// Style holds the resolved style entries of a primitive. Unset entries fall
// back to the document defaults declared in the scene.
type Style struct {
	DashArray   string // stroke-dasharray value, empty for solid or unset
	StrokeWidth *float64
	Stroke      *codec.Color
	Fill        *codec.Color
	NoFill      bool
}

// IsZero reports whether no style entry is set.
func (s Style) IsZero() bool {
	return s.DashArray == "" && s.StrokeWidth == nil && s.Stroke == nil && s.Fill == nil && !s.NoFill
}
