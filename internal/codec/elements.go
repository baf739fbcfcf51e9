package codec

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Acurisu/WVG/internal/bitstream"
)

func (p *parser) parseElements() error {
	logrus.Debug("decoding elements")

	wide, err := p.r.ReadBool()
	if err != nil {
		return p.streamErr(err)
	}
	countBits := 7
	if wide {
		countBits = 15
	}
	count, err := p.r.ReadBits(countBits)
	if err != nil {
		return p.streamErr(err)
	}
	logrus.Infof("element count: %d", count)

	for i := 0; i < int(count); i++ {
		if err := p.parseElement(); err != nil {
			return fmt.Errorf("element %d: %w", i, p.streamErr(err))
		}
	}
	return nil
}

// streamErr upgrades reader exhaustion inside the element stream to
// ErrTruncated while keeping the original error in the chain.
func (p *parser) streamErr(err error) error {
	if errors.Is(err, bitstream.ErrOutOfData) {
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return err
}

// tagWidth returns the element tag field width for the number of enabled
// element mask bits.
func tagWidth(enabled int) int {
	switch {
	case enabled <= 1:
		return 0
	case enabled == 2:
		return 1
	case enabled <= 4:
		return 2
	case enabled <= 8:
		return 3
	default:
		return 4
	}
}

func (p *parser) parseElement() error {
	enabled := 0
	for _, m := range p.elementMasks {
		if m {
			enabled++
		}
	}

	var tag uint32
	if bits := tagWidth(enabled); bits > 0 {
		var err error
		if tag, err = p.r.ReadBits(bits); err != nil {
			return err
		}
	}

	// The tag indexes the set bits of the element mask in order.
	kind := -1
	nth := uint32(0)
	for i, m := range p.elementMasks {
		if !m {
			continue
		}
		if nth == tag {
			kind = i
			break
		}
		nth++
	}
	if kind < 0 {
		return &UnknownTagError{Tag: tag}
	}
	logrus.Tracef("element tag %d maps to type %d", tag, kind)

	id := fmt.Sprintf("el_%d", len(p.elements))

	var data ElementData
	var err error
	switch kind {
	case 0:
		return &UnsupportedError{Feature: FeatureLocalEnvelope}
	case 1:
		logrus.Trace("polyline element")
		data, err = p.parsePolyline()
	case 2:
		logrus.Trace("circular polyline element")
		data, err = p.parseCircularPolyline()
	case 3:
		return &UnsupportedError{Feature: FeatureBezierPolyline}
	case 4:
		logrus.Trace("simple shape element")
		data, err = p.parseSimpleShape()
	case 5:
		logrus.Trace("reuse element")
		data, err = p.parseReuse()
	case 6:
		logrus.Trace("group element")
		data, err = p.parseGroup()
	case 7:
		return &UnsupportedError{Feature: FeatureSimpleAnimation}
	case 8:
		return &UnsupportedError{Feature: FeaturePolygon}
	case 9:
		return &UnsupportedError{Feature: FeatureSpecialShape}
	case 10:
		return &UnsupportedError{Feature: FeatureFrame}
	case 11:
		return &UnsupportedError{Feature: FeatureText}
	default:
		return &UnsupportedError{Feature: FeatureExtended}
	}
	if err != nil {
		return err
	}

	p.elements = append(p.elements, Element{ID: id, Data: data})
	return nil
}

// parseElementHeader reads the offset-use bits and, when any attribute mask
// is enabled, the optional attribute set.
func (p *parser) parseElementHeader() (Attributes, error) {
	var err error
	if p.offsetXUse, err = p.r.ReadBool(); err != nil {
		return Attributes{}, err
	}
	if p.offsetYUse, err = p.r.ReadBool(); err != nil {
		return Attributes{}, err
	}

	if !p.attrMasks.any() {
		return Attributes{}, nil
	}
	present, err := p.r.ReadBool()
	if err != nil || !present {
		return Attributes{}, err
	}
	return p.parseAttributeSet()
}

func (p *parser) parseAttributeSet() (Attributes, error) {
	var attrs Attributes

	if p.attrMasks.LineType {
		v, err := p.r.ReadBits(2)
		if err != nil {
			return Attributes{}, err
		}
		lt := lineTypeFrom(v)
		attrs.LineType = &lt
	}

	if p.attrMasks.LineWidth {
		v, err := p.r.ReadBits(2)
		if err != nil {
			return Attributes{}, err
		}
		lw := lineWidthFrom(v)
		attrs.LineWidth = &lw
	}

	if p.attrMasks.LineColor {
		// The line color field is absent when the width is None.
		width := WidthFine
		if attrs.LineWidth != nil {
			width = *attrs.LineWidth
		}
		if width != WidthNone {
			present, err := p.r.ReadBool()
			if err != nil {
				return Attributes{}, err
			}
			if present {
				c, err := p.readColor()
				if err != nil {
					return Attributes{}, err
				}
				attrs.LineColor = &c
			}
		}
	}

	if p.attrMasks.Fill {
		filled, err := p.r.ReadBool()
		if err != nil {
			return Attributes{}, err
		}
		attrs.Fill = &filled
		if filled {
			explicit, err := p.r.ReadBool()
			if err != nil {
				return Attributes{}, err
			}
			if explicit {
				c, err := p.readColor()
				if err != nil {
					return Attributes{}, err
				}
				attrs.FillColor = &c
			}
		}
	}

	return attrs, nil
}

func (p *parser) parsePolyline() (*Polyline, error) {
	attrs, err := p.parseElementHeader()
	if err != nil {
		return nil, err
	}

	n, err := p.r.ReadBits(int(p.coords.NumPointsBits))
	if err != nil {
		return nil, err
	}
	logrus.Tracef("polyline points: %d", n)

	points := make([]Point, 0, n+1)
	first, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	points = append(points, first)

	for i := 0; i < int(n); i++ {
		dx, dy, err := p.parseOffset()
		if err != nil {
			return nil, err
		}
		last := points[len(points)-1]
		points = append(points, Point{X: last.X + dx, Y: last.Y + dy})
	}

	return &Polyline{Attributes: attrs, Points: points}, nil
}

func (p *parser) parseCircularPolyline() (*CircularPolyline, error) {
	attrs, err := p.parseElementHeader()
	if err != nil {
		return nil, err
	}

	curveHint, err := p.r.ReadBool()
	if err != nil {
		return nil, err
	}
	logrus.Tracef("curve hint: %t", curveHint)

	n, err := p.r.ReadBits(int(p.coords.NumPointsBits))
	if err != nil {
		return nil, err
	}
	logrus.Tracef("circular polyline points: %d", n)

	points := make([]CircularPoint, 0, n+2)

	first, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	points = append(points, CircularPoint{Point: first})

	offset, err := p.parseCurveOffset(curveHint)
	if err != nil {
		return nil, err
	}
	second, err := p.parsePoint()
	if err != nil {
		return nil, err
	}
	points = append(points, CircularPoint{Point: second, CurveOffset: offset})

	for i := 0; i < int(n); i++ {
		offset, err := p.parseCurveOffset(curveHint)
		if err != nil {
			return nil, err
		}
		dx, dy, err := p.parseOffset()
		if err != nil {
			return nil, err
		}
		last := points[len(points)-1].Point
		points = append(points, CircularPoint{
			Point:       Point{X: last.X + dx, Y: last.Y + dy},
			CurveOffset: offset,
		})
	}

	return &CircularPolyline{Attributes: attrs, Points: points}, nil
}

// parseCurveOffset reads a curve offset. With the curve hint set, a leading
// zero bit stands for a straight segment and no offset field follows.
func (p *parser) parseCurveOffset(curveHint bool) (int32, error) {
	if curveHint {
		present, err := p.r.ReadBool()
		if err != nil {
			return 0, err
		}
		if !present {
			return 0, nil
		}
	}
	v, err := p.r.ReadSignedBits(int(p.generic.CurveOffsetBits))
	if err != nil {
		return 0, err
	}
	logrus.Tracef("curve offset: %d", v)
	return v, nil
}

func (p *parser) parsePoint() (Point, error) {
	x, err := p.readCoord(int(p.coords.MaxXBits))
	if err != nil {
		return Point{}, err
	}
	y, err := p.readCoord(int(p.coords.MaxYBits))
	if err != nil {
		return Point{}, err
	}
	logrus.Tracef("point: (%d, %d)", x, y)
	return Point{X: x, Y: y}, nil
}

func (p *parser) readCoord(bits int) (int32, error) {
	if p.coords.AllPositive {
		v, err := p.r.ReadBits(bits)
		return int32(v), err
	}
	return p.r.ReadSignedBits(bits)
}

// parseOffset reads a relative point delta. The level 2 widths apply on the
// axes flagged by the element's offset-use bits.
func (p *parser) parseOffset() (int32, int32, error) {
	xBits := p.coords.OffsetXBitsL1
	if p.offsetXUse {
		xBits = p.coords.OffsetXBitsL2
	}
	yBits := p.coords.OffsetYBitsL1
	if p.offsetYUse {
		yBits = p.coords.OffsetYBitsL2
	}

	dx, err := p.r.ReadSignedBits(int(xBits))
	if err != nil {
		return 0, 0, err
	}
	dy, err := p.r.ReadSignedBits(int(yBits))
	if err != nil {
		return 0, 0, err
	}
	logrus.Tracef("offset: (%d, %d)", dx, dy)
	return dx, dy, nil
}

func (p *parser) parseSimpleShape() (*SimpleShape, error) {
	attrs, err := p.parseElementHeader()
	if err != nil {
		return nil, err
	}
	ellipse, err := p.r.ReadBool()
	if err != nil {
		return nil, err
	}
	shape := ShapeRectangle
	if ellipse {
		shape = ShapeEllipse
	}

	// The geometry block that follows the selector is not decoded.
	logrus.Warn("simple shape geometry decoding is incomplete")

	return &SimpleShape{Type: shape, Attributes: attrs}, nil
}

func (p *parser) parseReuse() (*Reuse, error) {
	idxBits := int(p.generic.IndexBits) + 1
	index, err := p.r.ReadBits(idxBits)
	if err != nil {
		return nil, err
	}

	// Some encoders set a stray high bit in the index field; mask it off
	// when the raw value points past the elements decoded so far.
	if int(index) >= len(p.elements) {
		maxIdx := len(p.elements) - 1
		if maxIdx < 0 {
			maxIdx = 0
		}
		logrus.Warnf("reuse index %d out of bounds (max %d), masking high bit", index, maxIdx)
		masked := index & (uint32(1)<<(idxBits-1) - 1)
		if int(masked) < len(p.elements) {
			logrus.Tracef("corrected reuse index to %d", masked)
			index = masked
		} else {
			logrus.Tracef("masked reuse index %d still out of bounds", masked)
		}
	}
	logrus.Tracef("reuse index: %d", index)

	transform, err := p.parseTransform()
	if err != nil {
		return nil, err
	}

	var array *ArrayParams
	hasArray, err := p.r.ReadBool()
	if err != nil {
		return nil, err
	}
	if hasArray {
		a, err := p.parseArrayParams()
		if err != nil {
			return nil, err
		}
		array = &a
	}

	var overrides *Attributes
	hasOverrides, err := p.r.ReadBool()
	if err != nil {
		return nil, err
	}
	if hasOverrides {
		o, err := p.parseOverrideSet()
		if err != nil {
			return nil, err
		}
		overrides = &o
	}

	return &Reuse{Index: index, Transform: transform, Array: array, Overrides: overrides}, nil
}

func (p *parser) parseArrayParams() (ArrayParams, error) {
	v, err := p.r.ReadBits(4)
	if err != nil {
		return ArrayParams{}, err
	}
	columns := uint8(v) + 1
	logrus.Tracef("array columns: %d", columns)

	var width *int32
	if columns > 1 {
		w, err := p.readCoord(int(p.coords.MaxXBits))
		if err != nil {
			return ArrayParams{}, err
		}
		logrus.Tracef("array width: %d", w)
		width = &w
	}

	v, err = p.r.ReadBits(4)
	if err != nil {
		return ArrayParams{}, err
	}
	rows := uint8(v) + 1
	logrus.Tracef("array rows: %d", rows)

	var height *int32
	if rows > 1 {
		explicit, err := p.r.ReadBool()
		if err != nil {
			return ArrayParams{}, err
		}
		if explicit {
			h, err := p.readCoord(int(p.coords.MaxYBits))
			if err != nil {
				return ArrayParams{}, err
			}
			logrus.Tracef("array height: %d", h)
			height = &h
		} else {
			logrus.Trace("array height follows width")
			height = width
		}
	}

	return ArrayParams{Columns: columns, Rows: rows, Width: width, Height: height}, nil
}

// parseOverrideSet reads the presence-gated attribute overrides of a reuse
// element. Unlike the regular attribute set, every field has its own
// presence bit and the line color is read unconditionally of the width.
func (p *parser) parseOverrideSet() (Attributes, error) {
	var attrs Attributes

	present, err := p.r.ReadBool()
	if err != nil {
		return Attributes{}, err
	}
	if present {
		v, err := p.r.ReadBits(2)
		if err != nil {
			return Attributes{}, err
		}
		lt := lineTypeFrom(v)
		attrs.LineType = &lt
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Attributes{}, err
	}
	if present {
		v, err := p.r.ReadBits(2)
		if err != nil {
			return Attributes{}, err
		}
		lw := lineWidthFrom(v)
		attrs.LineWidth = &lw
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Attributes{}, err
	}
	if present {
		c, err := p.readColor()
		if err != nil {
			return Attributes{}, err
		}
		attrs.LineColor = &c
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Attributes{}, err
	}
	if present {
		fill, err := p.r.ReadBool()
		if err != nil {
			return Attributes{}, err
		}
		attrs.Fill = &fill
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Attributes{}, err
	}
	if present {
		c, err := p.readColor()
		if err != nil {
			return Attributes{}, err
		}
		attrs.FillColor = &c
	}

	return attrs, nil
}

func (p *parser) parseGroup() (ElementData, error) {
	end, err := p.r.ReadBool()
	if err != nil {
		return nil, err
	}
	if end {
		logrus.Trace("group end")
		return GroupEnd{}, nil
	}
	logrus.Trace("group start")

	var transform *Transform
	hasTransform, err := p.r.ReadBool()
	if err != nil {
		return nil, err
	}
	if hasTransform {
		t, err := p.parseTransform()
		if err != nil {
			return nil, err
		}
		transform = &t
	}

	display, err := p.r.ReadBool()
	if err != nil {
		return nil, err
	}
	return &GroupStart{Transform: transform, Display: display}, nil
}

func (p *parser) parseTransform() (Transform, error) {
	var t Transform

	present, err := p.r.ReadBool()
	if err != nil {
		return Transform{}, err
	}
	if present {
		v, err := p.readTranslateValue()
		if err != nil {
			return Transform{}, err
		}
		t.TranslateX = &v
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Transform{}, err
	}
	if present {
		v, err := p.readTranslateValue()
		if err != nil {
			return Transform{}, err
		}
		t.TranslateY = &v
	}

	extras, err := p.r.ReadBool()
	if err != nil {
		return Transform{}, err
	}
	if !extras {
		return t, nil
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Transform{}, err
	}
	if present {
		v, err := p.r.ReadSignedBits(int(p.generic.AngleBits) + 1)
		if err != nil {
			return Transform{}, err
		}
		logrus.Tracef("angle: %d", v)
		t.Angle = &v
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Transform{}, err
	}
	if present {
		v, err := p.readScaleValue()
		if err != nil {
			return Transform{}, err
		}
		t.ScaleX = &v
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Transform{}, err
	}
	if present {
		v, err := p.readScaleValue()
		if err != nil {
			return Transform{}, err
		}
		t.ScaleY = &v
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Transform{}, err
	}
	if present {
		v, err := p.readTranslateValue()
		if err != nil {
			return Transform{}, err
		}
		t.CX = &v
	}

	if present, err = p.r.ReadBool(); err != nil {
		return Transform{}, err
	}
	if present {
		v, err := p.readTranslateValue()
		if err != nil {
			return Transform{}, err
		}
		t.CY = &v
	}

	return t, nil
}

func (p *parser) readTranslateValue() (int32, error) {
	v, err := p.r.ReadSignedBits(int(p.coords.TranslateBits))
	if err != nil {
		return 0, err
	}
	logrus.Tracef("translate: %d", v)
	return v, nil
}

func (p *parser) readScaleValue() (int32, error) {
	v, err := p.r.ReadSignedBits(int(p.generic.ScaleBits) + 1)
	if err != nil {
		return 0, err
	}
	logrus.Tracef("scale: %d", v)
	return v, nil
}
