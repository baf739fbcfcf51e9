package codec

import (
	"strings"
	"unicode/utf16"
)

const gsm7Escape = 0x1B

// gsm7Alphabet is the GSM 03.38 default alphabet. Index 27 is the escape
// code that shifts the next septet into the extension table.
var gsm7Alphabet = [128]rune{
	'@', '£', '$', '¥', 'è', 'é', 'ù', 'ì', 'ò', 'Ç', '\n', 'Ø', 'ø', '\r', 'Å', 'å',
	'Δ', '_', 'Φ', 'Γ', 'Λ', 'Ω', 'Π', 'Ψ', 'Σ', 'Θ', 'Ξ', '\x1b', 'Æ', 'æ', 'ß', 'É',
	' ', '!', '"', '#', '¤', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'¡', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'Ä', 'Ö', 'Ñ', 'Ü', '§',
	'¿', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'ä', 'ö', 'ñ', 'ü', 'à',
}

// gsm7Extension is the GSM 03.38 default alphabet extension table, reached
// through the escape code.
var gsm7Extension = map[byte]rune{
	0x0A: '\f',
	0x14: '^',
	0x28: '{',
	0x29: '}',
	0x2F: '\\',
	0x3C: '[',
	0x3D: '~',
	0x3E: ']',
	0x40: '|',
	0x65: '€',
}

// decodeGSM7 maps unpacked septets to text. Escape sequences without an
// extension mapping fall back to the basic table glyph, as 03.38 allows.
func decodeGSM7(septets []byte) string {
	var b strings.Builder
	esc := false
	for _, s := range septets {
		s &= 0x7F
		if esc {
			esc = false
			if r, ok := gsm7Extension[s]; ok {
				b.WriteRune(r)
			} else {
				b.WriteRune(gsm7Alphabet[s])
			}
			continue
		}
		if s == gsm7Escape {
			esc = true
			continue
		}
		b.WriteRune(gsm7Alphabet[s])
	}
	return b.String()
}

func decodeUCS2(units []uint16) string {
	return string(utf16.Decode(units))
}
