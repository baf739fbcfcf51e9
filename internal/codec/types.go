package codec

import "fmt"

// Document is a fully decoded WVG drawing. It is immutable once returned by
// Parse; a failed parse never yields a partial Document.
type Document struct {
	Header   Header
	Elements []Element
}

// Header carries the document metadata and the codec parameters that shaped
// the element stream.
type Header struct {
	General   GeneralInfo
	Colors    ColorConfig
	Codec     CodecParams
	Animation *AnimationMode
}

// GeneralInfo holds the version field and the optional extended information
// block (text mode, author, title, timestamp).
type GeneralInfo struct {
	Version   uint8
	TextMode  *TextMode
	Author    *string
	Title     *string
	Timestamp *Timestamp
}

// TextMode selects the character encoding for header strings.
type TextMode uint8

const (
	TextGSM7 TextMode = iota
	TextUCS2
)

func (m TextMode) String() string {
	switch m {
	case TextGSM7:
		return "GSM 7-bit"
	case TextUCS2:
		return "UCS-2"
	}
	return fmt.Sprintf("TextMode(%d)", uint8(m))
}

// Timestamp is the creation time carried in the extended header.
type Timestamp struct {
	Year   int16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// ColorConfig holds the color scheme, the palette read for palette schemes,
// and the optional document default colors.
type ColorConfig struct {
	Scheme      ColorScheme
	Palette     []Color
	DefaultLine *Color
	DefaultFill *Color
	Background  *Color
}

// ColorScheme identifies how color values are encoded in the stream.
type ColorScheme uint8

const (
	SchemeBlackAndWhite ColorScheme = iota
	SchemeGrayscale2
	SchemePredefined2
	SchemeRGB6
	SchemeWebsafe
	SchemeRGB6Palette
	SchemeWebsafePalette
	SchemeRGB12
	SchemeRGB24
)

func (s ColorScheme) String() string {
	switch s {
	case SchemeBlackAndWhite:
		return "BlackAndWhite"
	case SchemeGrayscale2:
		return "Grayscale2Bit"
	case SchemePredefined2:
		return "Predefined2Bit"
	case SchemeRGB6:
		return "Rgb6Bit"
	case SchemeWebsafe:
		return "Websafe"
	case SchemeRGB6Palette:
		return "Rgb6BitPalette"
	case SchemeWebsafePalette:
		return "WebsafePalette"
	case SchemeRGB12:
		return "Rgb12Bit"
	case SchemeRGB24:
		return "Rgb24Bit"
	}
	return fmt.Sprintf("ColorScheme(%d)", uint8(s))
}

// Color is an 8-bit-per-channel RGB value.
type Color struct {
	R, G, B uint8
}

var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
)

// Hex renders the color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CodecParams are the header fields that control how elements are encoded.
type CodecParams struct {
	ElementMasks []bool
	Attributes   AttributeMasks
	Generic      GenericParams
	Coordinates  FlatCoordinateParams
}

// AttributeMasks flags which per-element attributes may appear in the stream.
type AttributeMasks struct {
	LineType  bool
	LineWidth bool
	LineColor bool
	Fill      bool
}

func (m AttributeMasks) any() bool {
	return m.LineType || m.LineWidth || m.LineColor || m.Fill
}

// GenericParams hold the bit widths and resolutions for angles, scales,
// reuse indices and curve offsets.
type GenericParams struct {
	AngleResolution uint8
	AngleBits       uint8
	ScaleResolution uint8
	ScaleBits       uint8
	IndexBits       uint8
	CurveOffsetBits uint8
}

// DefaultGenericParams returns the parameter values that apply when the
// header leaves the corresponding presence bits unset.
func DefaultGenericParams() GenericParams {
	return GenericParams{
		AngleResolution: 3, // 22.5 degrees
		AngleBits:       2,
		ScaleResolution: 0, // quarter steps
		ScaleBits:       2,
		IndexBits:       2,
		CurveOffsetBits: 4,
	}
}

// FlatCoordinateParams describe the flat coordinate system: canvas size and
// the field widths used by points, offsets and transforms.
type FlatCoordinateParams struct {
	Width         uint16
	Height        uint16
	MaxXBits      uint8
	MaxYBits      uint8
	AllPositive   bool
	TranslateBits uint8
	NumPointsBits uint8
	OffsetXBitsL1 uint8
	OffsetYBitsL1 uint8
	OffsetXBitsL2 uint8
	OffsetYBitsL2 uint8
}

// AnimationMode is the animation setting read when the animation element
// mask is enabled.
type AnimationMode uint8

const (
	AnimationSimple AnimationMode = iota
	AnimationStandard
)

func (m AnimationMode) String() string {
	switch m {
	case AnimationSimple:
		return "Simple"
	case AnimationStandard:
		return "Standard"
	}
	return fmt.Sprintf("AnimationMode(%d)", uint8(m))
}

// Element is one entry of the element stream. IDs are assigned in stream
// order as el_0, el_1, and so on.
type Element struct {
	ID   string
	Data ElementData
}

// ElementData is implemented by the concrete element payloads: *Polyline,
// *CircularPolyline, *SimpleShape, *Reuse, *GroupStart and GroupEnd.
type ElementData interface {
	elementData()
}

// Point is a position on the drawing canvas.
type Point struct {
	X, Y int32
}

// Polyline is a chain of straight segments. Points are absolute; relative
// deltas from the stream are already accumulated.
type Polyline struct {
	Attributes Attributes
	Points     []Point
}

// CircularPolyline is a chain of segments that may bulge into circular arcs.
type CircularPolyline struct {
	Attributes Attributes
	Points     []CircularPoint
}

// CircularPoint is an absolute position plus the curve offset of the segment
// leading into it. A zero offset means a straight segment.
type CircularPoint struct {
	Point       Point
	CurveOffset int32
}

// SimpleShape is a rectangle or ellipse element. The geometry block is not
// decoded, only the shape selector.
type SimpleShape struct {
	Type       ShapeType
	Attributes Attributes
}

// ShapeType selects the simple shape variant.
type ShapeType uint8

const (
	ShapeRectangle ShapeType = iota
	ShapeEllipse
)

func (t ShapeType) String() string {
	switch t {
	case ShapeRectangle:
		return "Rectangle"
	case ShapeEllipse:
		return "Ellipse"
	}
	return fmt.Sprintf("ShapeType(%d)", uint8(t))
}

// Reuse re-renders an earlier element, optionally as a row/column array and
// with attribute overrides.
type Reuse struct {
	Index     uint32
	Transform Transform
	Array     *ArrayParams
	Overrides *Attributes
}

// ArrayParams describe the grid expansion of a reuse element. Width and
// Height are the per-step translation distances.
type ArrayParams struct {
	Columns uint8
	Rows    uint8
	Width   *int32
	Height  *int32
}

// GroupStart opens a group. Elements up to the matching GroupEnd inherit its
// transform and display flag.
type GroupStart struct {
	Transform *Transform
	Display   bool
}

// GroupEnd closes the innermost open group.
type GroupEnd struct{}

// Attributes are the per-element style settings. Nil fields inherit the
// document defaults.
type Attributes struct {
	LineType  *LineType
	LineWidth *LineWidth
	LineColor *Color
	Fill      *bool
	FillColor *Color
}

// LineType selects the stroke pattern.
type LineType uint8

const (
	LineSolid LineType = iota
	LineDashed
	LineDotted
	LineDashDot
)

func lineTypeFrom(v uint32) LineType {
	switch v {
	case 1:
		return LineDashed
	case 2:
		return LineDotted
	case 3:
		return LineDashDot
	}
	return LineSolid
}

func (t LineType) String() string {
	switch t {
	case LineSolid:
		return "Solid"
	case LineDashed:
		return "Dashed"
	case LineDotted:
		return "Dotted"
	case LineDashDot:
		return "DashDot"
	}
	return fmt.Sprintf("LineType(%d)", uint8(t))
}

// LineWidth selects the stroke weight.
type LineWidth uint8

const (
	WidthNone LineWidth = iota
	WidthFine
	WidthNormal
	WidthThick
)

func lineWidthFrom(v uint32) LineWidth {
	switch v {
	case 0:
		return WidthNone
	case 2:
		return WidthNormal
	case 3:
		return WidthThick
	}
	return WidthFine
}

func (w LineWidth) String() string {
	switch w {
	case WidthNone:
		return "None"
	case WidthFine:
		return "Fine"
	case WidthNormal:
		return "Normal"
	case WidthThick:
		return "Thick"
	}
	return fmt.Sprintf("LineWidth(%d)", uint8(w))
}

// Transform is the optional affine transform of reuse and group elements.
// Raw integer values are scaled by the header resolutions when rendered.
type Transform struct {
	TranslateX *int32
	TranslateY *int32
	Angle      *int32
	ScaleX     *int32
	ScaleY     *int32
	CX         *int32
	CY         *int32
}

func (*Polyline) elementData()         {}
func (*CircularPolyline) elementData() {}
func (*SimpleShape) elementData()      {}
func (*Reuse) elementData()            {}
func (*GroupStart) elementData()       {}
func (GroupEnd) elementData()          {}
