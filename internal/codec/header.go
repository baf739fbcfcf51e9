package codec

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// supportedVersion is the only version field value this decoder accepts.
const supportedVersion = 0

func (p *parser) parseHeader() (Header, error) {
	logrus.Debug("decoding header")

	general, err := p.parseGeneralInfo()
	if err != nil {
		return Header{}, err
	}
	colors, err := p.parseColorConfig()
	if err != nil {
		return Header{}, err
	}
	codec, animation, err := p.parseCodecParams()
	if err != nil {
		return Header{}, err
	}

	return Header{
		General:   general,
		Colors:    colors,
		Codec:     codec,
		Animation: animation,
	}, nil
}

func (p *parser) parseGeneralInfo() (GeneralInfo, error) {
	v, err := p.r.ReadBits(4)
	if err != nil {
		return GeneralInfo{}, err
	}
	info := GeneralInfo{Version: uint8(v)}
	logrus.Infof("version: %d", info.Version)
	if info.Version != supportedVersion {
		return GeneralInfo{}, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, info.Version)
	}

	extended, err := p.r.ReadBool()
	if err != nil {
		return GeneralInfo{}, err
	}
	if !extended {
		return info, nil
	}

	ucs2, err := p.r.ReadBool()
	if err != nil {
		return GeneralInfo{}, err
	}
	mode := TextGSM7
	if ucs2 {
		mode = TextUCS2
	}
	info.TextMode = &mode
	logrus.Debugf("text mode: %s", mode)

	if info.Author, err = p.parseOptionalString(mode); err != nil {
		return GeneralInfo{}, err
	}
	if info.Title, err = p.parseOptionalString(mode); err != nil {
		return GeneralInfo{}, err
	}
	if info.Timestamp, err = p.parseTimestamp(); err != nil {
		return GeneralInfo{}, err
	}
	return info, nil
}

func (p *parser) parseOptionalString(mode TextMode) (*string, error) {
	present, err := p.r.ReadBool()
	if err != nil || !present {
		return nil, err
	}

	length, err := p.r.ReadBits(8)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("string length: %d", length)

	var s string
	if mode == TextUCS2 {
		units := make([]uint16, 0, length)
		for i := 0; i < int(length); i++ {
			u, err := p.r.ReadBits(16)
			if err != nil {
				return nil, err
			}
			units = append(units, uint16(u))
		}
		s = decodeUCS2(units)
	} else {
		septets := make([]byte, 0, length)
		for i := 0; i < int(length); i++ {
			u, err := p.r.ReadBits(7)
			if err != nil {
				return nil, err
			}
			septets = append(septets, byte(u))
		}
		s = decodeGSM7(septets)
	}
	return &s, nil
}

func (p *parser) parseTimestamp() (*Timestamp, error) {
	present, err := p.r.ReadBool()
	if err != nil || !present {
		return nil, err
	}

	year, err := p.r.ReadSignedBits(13)
	if err != nil {
		return nil, err
	}
	fields := make([]uint32, 5)
	for i, bits := range []int{4, 5, 5, 6, 6} {
		if fields[i], err = p.r.ReadBits(bits); err != nil {
			return nil, err
		}
	}

	ts := Timestamp{
		Year:   int16(year),
		Month:  uint8(fields[0]),
		Day:    uint8(fields[1]),
		Hour:   uint8(fields[2]),
		Minute: uint8(fields[3]),
		Second: uint8(fields[4]),
	}
	logrus.Infof("timestamp: %s", ts)
	return &ts, nil
}

func (p *parser) parseColorConfig() (ColorConfig, error) {
	scheme, palette, err := p.parseColorScheme()
	if err != nil {
		return ColorConfig{}, err
	}
	logrus.Infof("color scheme: %s", scheme)
	p.scheme = scheme
	p.palette = palette

	cfg := ColorConfig{Scheme: scheme, Palette: palette}

	// <default colors> := (0 | (1 <default line color>)) ...
	for _, slot := range []struct {
		name string
		dst  **Color
	}{
		{"line", &cfg.DefaultLine},
		{"fill", &cfg.DefaultFill},
		{"background", &cfg.Background},
	} {
		present, err := p.r.ReadBool()
		if err != nil {
			return ColorConfig{}, err
		}
		if !present {
			continue
		}
		logrus.Debugf("default %s color present", slot.name)
		c, err := p.readColor()
		if err != nil {
			return ColorConfig{}, err
		}
		*slot.dst = &c
	}
	return cfg, nil
}

// parseColorScheme reads the prefix-coded scheme selector. The two palette
// schemes carry their palette inline, read here.
func (p *parser) parseColorScheme() (ColorScheme, []Color, error) {
	b1, err := p.r.ReadBit()
	if err != nil {
		return 0, nil, err
	}
	if b1 == 0 {
		b2, err := p.r.ReadBit()
		if err != nil {
			return 0, nil, err
		}
		if b2 == 0 {
			return SchemeBlackAndWhite, nil, nil
		}
		b3, err := p.r.ReadBit()
		if err != nil {
			return 0, nil, err
		}
		if b3 == 0 {
			return SchemeGrayscale2, nil, nil
		}
		return SchemePredefined2, nil, nil
	}

	b2, err := p.r.ReadBit()
	if err != nil {
		return 0, nil, err
	}
	if b2 == 0 {
		b3, err := p.r.ReadBit()
		if err != nil {
			return 0, nil, err
		}
		if b3 == 0 {
			return SchemeRGB6, nil, nil
		}
		return SchemeWebsafe, nil, nil
	}

	suffix, err := p.r.ReadBits(2)
	if err != nil {
		return 0, nil, err
	}
	switch suffix {
	case 0:
		palette, err := p.readRGB6Palette()
		return SchemeRGB6Palette, palette, err
	case 1:
		palette, err := p.readWebsafePalette()
		return SchemeWebsafePalette, palette, err
	case 2:
		return SchemeRGB12, nil, nil
	default:
		return SchemeRGB24, nil, nil
	}
}

func (p *parser) readRGB6Palette() ([]Color, error) {
	n, err := p.r.ReadBits(5)
	if err != nil {
		return nil, err
	}
	count := int(n) + 1
	logrus.Debugf("6-bit palette: %d colors", count)

	palette := make([]Color, 0, count)
	for i := 0; i < count; i++ {
		v, err := p.r.ReadBits(6)
		if err != nil {
			return nil, err
		}
		palette = append(palette, rgb6Color(v))
	}
	return palette, nil
}

func (p *parser) readWebsafePalette() ([]Color, error) {
	n, err := p.r.ReadBits(7)
	if err != nil {
		return nil, err
	}
	count := int(n) + 1
	logrus.Debugf("websafe palette: %d colors", count)

	palette := make([]Color, 0, count)
	for i := 0; i < count; i++ {
		v, err := p.r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		palette = append(palette, websafeColor(int(v)))
	}
	return palette, nil
}

// readColor reads one color value in the active scheme's encoding. Under the
// palette schemes the value is an index into the header palette.
func (p *parser) readColor() (Color, error) {
	switch p.scheme {
	case SchemeBlackAndWhite:
		bit, err := p.r.ReadBit()
		if err != nil {
			return Color{}, err
		}
		if bit == 1 {
			return ColorBlack, nil
		}
		return ColorWhite, nil
	case SchemeGrayscale2:
		v, err := p.r.ReadBits(2)
		if err != nil {
			return Color{}, err
		}
		gray := uint8(v * 85)
		return Color{gray, gray, gray}, nil
	case SchemePredefined2:
		v, err := p.r.ReadBits(2)
		if err != nil {
			return Color{}, err
		}
		switch v {
		case 0:
			return ColorWhite, nil
		case 1:
			return Color{255, 0, 0}, nil
		case 2:
			return Color{0, 255, 0}, nil
		default:
			return Color{0, 0, 255}, nil
		}
	case SchemeRGB6:
		v, err := p.r.ReadBits(6)
		if err != nil {
			return Color{}, err
		}
		return rgb6Color(v), nil
	case SchemeWebsafe:
		v, err := p.r.ReadBits(8)
		if err != nil {
			return Color{}, err
		}
		return websafeColor(int(v)), nil
	case SchemeRGB6Palette:
		v, err := p.r.ReadBits(5)
		if err != nil {
			return Color{}, err
		}
		return p.paletteColor(int(v))
	case SchemeWebsafePalette:
		v, err := p.r.ReadBits(7)
		if err != nil {
			return Color{}, err
		}
		return p.paletteColor(int(v))
	case SchemeRGB12:
		v, err := p.r.ReadBits(12)
		if err != nil {
			return Color{}, err
		}
		return Color{
			R: uint8((v >> 8 & 0xF) * 17),
			G: uint8((v >> 4 & 0xF) * 17),
			B: uint8((v & 0xF) * 17),
		}, nil
	default: // SchemeRGB24
		var rgb [3]uint8
		for i := range rgb {
			v, err := p.r.ReadBits(8)
			if err != nil {
				return Color{}, err
			}
			rgb[i] = uint8(v)
		}
		return Color{rgb[0], rgb[1], rgb[2]}, nil
	}
}

func (p *parser) paletteColor(index int) (Color, error) {
	if index >= len(p.palette) {
		return Color{}, &ColorIndexError{Index: index, Size: len(p.palette)}
	}
	return p.palette[index], nil
}

func rgb6Color(v uint32) Color {
	return Color{
		R: uint8((v >> 4 & 0x3) * 85),
		G: uint8((v >> 2 & 0x3) * 85),
		B: uint8((v & 0x3) * 85),
	}
}

func (p *parser) parseCodecParams() (CodecParams, *AnimationMode, error) {
	logrus.Debug("decoding codec parameters")

	if err := p.parseElementMask(); err != nil {
		return CodecParams{}, nil, err
	}
	if err := p.parseAttributeMask(); err != nil {
		return CodecParams{}, nil, err
	}
	if err := p.parseGenericParams(); err != nil {
		return CodecParams{}, nil, err
	}
	if err := p.parseCoordinateParams(); err != nil {
		return CodecParams{}, nil, err
	}
	animation, err := p.parseAnimationSettings()
	if err != nil {
		return CodecParams{}, nil, err
	}

	return CodecParams{
		ElementMasks: p.elementMasks,
		Attributes:   p.attrMasks,
		Generic:      p.generic,
		Coordinates:  p.coords,
	}, animation, nil
}

func (p *parser) parseElementMask() error {
	masks := make([]bool, 0, 13)
	for i := 0; i < 8; i++ {
		b, err := p.r.ReadBool()
		if err != nil {
			return err
		}
		masks = append(masks, b)
	}

	extended, err := p.r.ReadBool()
	if err != nil {
		return err
	}
	if extended {
		for i := 0; i < 5; i++ {
			b, err := p.r.ReadBool()
			if err != nil {
				return err
			}
			masks = append(masks, b)
		}
	}

	logrus.Debugf("element masks: %v", masks)
	p.elementMasks = masks
	return nil
}

func (p *parser) parseAttributeMask() error {
	for _, dst := range []*bool{
		&p.attrMasks.LineType,
		&p.attrMasks.LineWidth,
		&p.attrMasks.LineColor,
		&p.attrMasks.Fill,
	} {
		b, err := p.r.ReadBool()
		if err != nil {
			return err
		}
		*dst = b
	}
	logrus.Debugf("attribute masks: type=%t width=%t color=%t fill=%t",
		p.attrMasks.LineType, p.attrMasks.LineWidth, p.attrMasks.LineColor, p.attrMasks.Fill)
	return nil
}

func (p *parser) parseGenericParams() error {
	p.generic = DefaultGenericParams()

	custom, err := p.r.ReadBool()
	if err != nil {
		return err
	}
	if custom {
		res, err := p.r.ReadBits(2)
		if err != nil {
			return err
		}
		bits, err := p.r.ReadBits(3)
		if err != nil {
			return err
		}
		p.generic.AngleResolution = uint8(res)
		p.generic.AngleBits = uint8(bits)
		logrus.Debugf("angle: res=%d bits=%d", res, bits)
	} else {
		logrus.Debug("angle: default (22.5 deg, 3 bits)")
	}

	custom, err = p.r.ReadBool()
	if err != nil {
		return err
	}
	if custom {
		res, err := p.r.ReadBits(2)
		if err != nil {
			return err
		}
		bits, err := p.r.ReadBits(4)
		if err != nil {
			return err
		}
		p.generic.ScaleResolution = uint8(res)
		p.generic.ScaleBits = uint8(bits)
		logrus.Debugf("scale: res=%d bits=%d", res, bits)
	} else {
		logrus.Debug("scale: default (1/4, 3 bits)")
	}

	custom, err = p.r.ReadBool()
	if err != nil {
		return err
	}
	if custom {
		bits, err := p.r.ReadBits(4)
		if err != nil {
			return err
		}
		p.generic.IndexBits = uint8(bits)
		logrus.Debugf("index bits: %d", bits)
	} else {
		logrus.Debug("index bits: default (2 -> 3 bits)")
	}

	// The curve offset width field is only present when the circular
	// polyline or polygon element mask is set.
	if p.maskSet(2) || p.maskSet(8) {
		wide, err := p.r.ReadBool()
		if err != nil {
			return err
		}
		if wide {
			p.generic.CurveOffsetBits = 5
		}
		logrus.Debugf("curve offset bits: %d", p.generic.CurveOffsetBits)
	}
	return nil
}

func (p *parser) parseCoordinateParams() error {
	compact, err := p.r.ReadBool()
	if err != nil {
		return err
	}
	if compact {
		logrus.Info("coordinate mode: compact")
		return &UnsupportedError{Feature: FeatureCompactCoordinates}
	}
	logrus.Info("coordinate mode: flat")

	width, err := p.r.ReadBits(16)
	if err != nil {
		return err
	}
	logrus.Infof("drawing width: %d", width)

	height := width
	explicit, err := p.r.ReadBool()
	if err != nil {
		return err
	}
	if explicit {
		if height, err = p.r.ReadBits(16); err != nil {
			return err
		}
	}
	logrus.Infof("drawing height: %d", height)

	if width == 0 || height == 0 {
		return fmt.Errorf("%w: drawing size %dx%d", ErrInvalidHeader, width, height)
	}

	fields := make([]uint32, 9)
	for i, bits := range []int{4, 4, 1, 4, 4, 4, 4, 4, 4} {
		if fields[i], err = p.r.ReadBits(bits); err != nil {
			return err
		}
	}

	p.coords = FlatCoordinateParams{
		Width:         uint16(width),
		Height:        uint16(height),
		MaxXBits:      uint8(fields[0]),
		MaxYBits:      uint8(fields[1]),
		AllPositive:   fields[2] == 1,
		TranslateBits: uint8(fields[3]),
		NumPointsBits: uint8(fields[4]),
		OffsetXBitsL1: uint8(fields[5]),
		OffsetYBitsL1: uint8(fields[6]),
		OffsetXBitsL2: uint8(fields[7]),
		OffsetYBitsL2: uint8(fields[8]),
	}
	logrus.Debugf("flat params: maxX=%d maxY=%d allPositive=%t transXY=%d",
		p.coords.MaxXBits, p.coords.MaxYBits, p.coords.AllPositive, p.coords.TranslateBits)
	logrus.Debugf("offsets level 1: x=%d y=%d", p.coords.OffsetXBitsL1, p.coords.OffsetYBitsL1)
	logrus.Debugf("offsets level 2: x=%d y=%d", p.coords.OffsetXBitsL2, p.coords.OffsetYBitsL2)
	return nil
}

func (p *parser) parseAnimationSettings() (*AnimationMode, error) {
	if !p.maskSet(7) {
		return nil, nil
	}
	standard, err := p.r.ReadBool()
	if err != nil {
		return nil, err
	}
	mode := AnimationSimple
	if standard {
		mode = AnimationStandard
	}
	logrus.Infof("animation mode: %s", mode)
	return &mode, nil
}
