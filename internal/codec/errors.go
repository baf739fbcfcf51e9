package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeader is returned when the header carries an impossible
	// value, such as a zero canvas dimension.
	ErrInvalidHeader = errors.New("wvg: invalid header")

	// ErrUnsupportedVersion is returned when the version field holds
	// anything other than the supported value 0.
	ErrUnsupportedVersion = errors.New("wvg: unsupported version")

	// ErrTruncated is returned when the buffer ends inside the element
	// stream. It wraps bitstream.ErrOutOfData.
	ErrTruncated = errors.New("wvg: element stream truncated")
)

// Feature names a construct the format defines but this decoder does not
// implement.
type Feature uint8

const (
	FeatureCharacterSize Feature = iota
	FeatureCompactCoordinates
	FeatureLocalEnvelope
	FeatureBezierPolyline
	FeatureSimpleAnimation
	FeatureStandardAnimation
	FeaturePolygon
	FeatureSpecialShape
	FeatureFrame
	FeatureText
	FeatureExtended
)

func (f Feature) String() string {
	switch f {
	case FeatureCharacterSize:
		return "character size documents"
	case FeatureCompactCoordinates:
		return "compact coordinate mode"
	case FeatureLocalEnvelope:
		return "local envelope elements"
	case FeatureBezierPolyline:
		return "Bezier polyline elements"
	case FeatureSimpleAnimation:
		return "simple animation elements"
	case FeatureStandardAnimation:
		return "standard animation elements"
	case FeaturePolygon:
		return "polygon elements"
	case FeatureSpecialShape:
		return "special shape elements"
	case FeatureFrame:
		return "frame elements"
	case FeatureText:
		return "text elements"
	case FeatureExtended:
		return "extended elements"
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

// UnsupportedError reports a well-formed construct the decoder recognizes
// but cannot decode. Decoding stops at the construct; there is no resync.
type UnsupportedError struct {
	Feature Feature
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("wvg: unsupported feature: %s", e.Feature)
}

// UnknownTagError reports an element tag that selects no enabled element
// type in the header's element mask.
type UnknownTagError struct {
	Tag uint32
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("wvg: element tag %d selects no enabled element type", e.Tag)
}

// ColorIndexError reports a palette reference past the end of the header
// palette.
type ColorIndexError struct {
	Index int
	Size  int
}

func (e *ColorIndexError) Error() string {
	return fmt.Sprintf("wvg: color index %d out of range for palette of %d entries", e.Index, e.Size)
}

// ParseError wraps any decode failure with the bit offset the reader had
// reached when decoding stopped. Unwrap exposes the underlying cause.
type ParseError struct {
	BitOffset int
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wvg: parse failed at bit %d: %v", e.BitOffset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
