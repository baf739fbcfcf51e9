package codec

import "testing"

func TestDecodeGSM7(t *testing.T) {
	cases := []struct {
		name    string
		septets []byte
		want    string
	}{
		{"ascii", []byte{0x48, 0x65, 0x6C, 0x6C, 0x6F}, "Hello"},
		{"specials", []byte{0x00, 0x02, 0x11}, "@$_"},
		{"accented", []byte{0x04, 0x05, 0x7E}, "èéü"},
		{"escapeEuro", []byte{0x1B, 0x65}, "€"},
		{"escapeBraces", []byte{0x1B, 0x28, 0x41, 0x1B, 0x29}, "{A}"},
		{"escapeFallback", []byte{0x1B, 0x41}, "A"},
		{"danglingEscape", []byte{0x41, 0x1B}, "A"},
		{"empty", nil, ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := decodeGSM7(tc.septets); got != tc.want {
				t.Fatalf("decodeGSM7(%v) = %q, want %q", tc.septets, got, tc.want)
			}
		})
	}
}

func TestDecodeUCS2(t *testing.T) {
	if got := decodeUCS2([]uint16{0x0041, 0x00E9, 0x4E2D}); got != "Aé中" {
		t.Fatalf("unexpected UCS-2 decode: %q", got)
	}
	// Surrogate pairs decode to a single rune.
	if got := decodeUCS2([]uint16{0xD83D, 0xDE00}); got != "\U0001F600" {
		t.Fatalf("unexpected surrogate decode: %q", got)
	}
	if got := decodeUCS2(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestWebsafeColor(t *testing.T) {
	cases := []struct {
		index int
		want  Color
	}{
		{0, Color{255, 255, 255}},
		{5, Color{255, 0, 255}},
		{125, Color{255, 0, 0}},
		{255, Color{0, 0, 0}},
		{-1, ColorBlack},
		{256, ColorBlack},
	}
	for _, tc := range cases {
		if got := websafeColor(tc.index); got != tc.want {
			t.Fatalf("websafeColor(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
}
