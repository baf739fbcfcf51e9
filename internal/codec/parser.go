package codec

import (
	"github.com/sirupsen/logrus"

	"github.com/Acurisu/WVG/internal/bitstream"
)

// parser carries the decode state. The codec parameters read from the
// header steer every element read that follows.
type parser struct {
	r *bitstream.Reader

	elementMasks []bool
	attrMasks    AttributeMasks
	generic      GenericParams
	coords       FlatCoordinateParams
	scheme       ColorScheme
	palette      []Color

	// Offset-use flags of the element currently being decoded.
	offsetXUse bool
	offsetYUse bool

	elements []Element
}

// Parse decodes one complete document from data. On failure the returned
// error is a *ParseError carrying the bit offset decoding stopped at; no
// partial document is returned.
func Parse(data []byte) (*Document, error) {
	p := &parser{r: bitstream.New(data)}
	doc, err := p.parse()
	if err != nil {
		return nil, &ParseError{BitOffset: p.r.BitPos(), Err: err}
	}
	return doc, nil
}

func (p *parser) parse() (*Document, error) {
	standard, err := p.r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !standard {
		logrus.Info("parsing character size WVG")
		return nil, &UnsupportedError{Feature: FeatureCharacterSize}
	}
	logrus.Info("parsing standard WVG")

	header, err := p.parseHeader()
	if err != nil {
		return nil, err
	}
	if err := p.parseElements(); err != nil {
		return nil, err
	}

	// Documents are padded to a whole byte; report anything beyond that.
	p.r.AlignToByte()
	if rem := p.r.RemainingBits(); rem > 0 {
		logrus.Debugf("%d trailing bytes after element stream", rem/8)
	}

	return &Document{Header: header, Elements: p.elements}, nil
}

func (p *parser) maskSet(i int) bool {
	return i < len(p.elementMasks) && p.elementMasks[i]
}
