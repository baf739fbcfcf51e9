package bitstream

import (
	"errors"
	"fmt"
)

// ErrOutOfData is returned when a read requests more bits than the buffer
// still holds. The reader position is left untouched in that case.
var ErrOutOfData = errors.New("bitstream: out of data")

// Reader extracts MSB-first bit fields from an in-memory buffer. Bit 0 of a
// byte is its most significant bit. A failed read never advances the cursor.
type Reader struct {
	buf    []byte
	byteIx int
	bitIx  uint8
}

// New constructs a Reader positioned at the first bit of data.
func New(data []byte) *Reader {
	return &Reader{buf: data}
}

// ReadBit returns the next single bit.
func (r *Reader) ReadBit() (uint8, error) {
	if r.RemainingBits() < 1 {
		return 0, ErrOutOfData
	}
	b := (r.buf[r.byteIx] >> (7 - r.bitIx)) & 0x01
	r.advance()
	return b, nil
}

// ReadBool returns the next single bit as a boolean.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadBit()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadBits reads count bits (0 to 32) and returns them as an unsigned value.
// Reading zero bits yields zero without moving the cursor.
func (r *Reader) ReadBits(count int) (uint32, error) {
	if count < 0 || count > 32 {
		return 0, fmt.Errorf("bitstream: read width %d out of range", count)
	}
	if r.RemainingBits() < count {
		return 0, ErrOutOfData
	}
	var v uint32
	for i := 0; i < count; i++ {
		v = v<<1 | uint32((r.buf[r.byteIx]>>(7-r.bitIx))&0x01)
		r.advance()
	}
	return v, nil
}

// ReadSignedBits reads count bits (1 to 32) and sign-extends them from bit
// count-1, yielding a two's complement value.
func (r *Reader) ReadSignedBits(count int) (int32, error) {
	if count < 1 || count > 32 {
		return 0, fmt.Errorf("bitstream: signed read width %d out of range", count)
	}
	v, err := r.ReadBits(count)
	if err != nil {
		return 0, err
	}
	if count < 32 && v&(1<<(count-1)) != 0 {
		v |= ^uint32(0) << count
	}
	return int32(v), nil
}

// AlignToByte advances to the next byte boundary. It does nothing when the
// cursor is already aligned, so repeated calls are idempotent.
func (r *Reader) AlignToByte() {
	if r.bitIx != 0 {
		r.byteIx++
		r.bitIx = 0
	}
}

// RemainingBits returns how many unread bits are left.
func (r *Reader) RemainingBits() int {
	n := len(r.buf)*8 - r.BitPos()
	if n < 0 {
		return 0
	}
	return n
}

// Len returns the total buffer length in bits.
func (r *Reader) Len() int {
	return len(r.buf) * 8
}

// BitPos returns the absolute bit position from the start of the buffer.
func (r *Reader) BitPos() int {
	return r.byteIx*8 + int(r.bitIx)
}

// BytePos returns the index of the byte the cursor currently points into.
func (r *Reader) BytePos() int {
	return r.byteIx
}

// BitPosInByte returns the bit offset inside the current byte (0 = MSB).
func (r *Reader) BitPosInByte() uint8 {
	return r.bitIx
}

func (r *Reader) advance() {
	if r.bitIx == 7 {
		r.byteIx++
		r.bitIx = 0
	} else {
		r.bitIx++
	}
}
