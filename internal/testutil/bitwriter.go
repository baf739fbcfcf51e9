package testutil

// BitWriter packs bits MSB-first into a byte buffer. Tests use it to craft
// decoder input without hand-assembling hex.
type BitWriter struct {
	buf   []byte
	nbits int
}

// WriteBit appends a single bit.
func (w *BitWriter) WriteBit(b uint8) {
	if w.nbits%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if b != 0 {
		w.buf[len(w.buf)-1] |= 1 << (7 - w.nbits%8)
	}
	w.nbits++
}

// WriteBool appends a single bit, 1 for true.
func (w *BitWriter) WriteBool(b bool) {
	if b {
		w.WriteBit(1)
	} else {
		w.WriteBit(0)
	}
}

// WriteBits appends the low count bits of v, most significant first.
func (w *BitWriter) WriteBits(v uint32, count int) {
	for i := count - 1; i >= 0; i-- {
		w.WriteBit(uint8(v >> i & 1))
	}
}

// WriteSignedBits appends v as a two's complement field of count bits.
func (w *BitWriter) WriteSignedBits(v int32, count int) {
	mask := uint32(1)<<count - 1
	w.WriteBits(uint32(v)&mask, count)
}

// AlignByte pads with zero bits to the next byte boundary.
func (w *BitWriter) AlignByte() {
	for w.nbits%8 != 0 {
		w.WriteBit(0)
	}
}

// Len returns the number of bits written so far.
func (w *BitWriter) Len() int {
	return w.nbits
}

// Bytes returns the packed buffer. Unused bits of the last byte are zero.
func (w *BitWriter) Bytes() []byte {
	return w.buf
}
