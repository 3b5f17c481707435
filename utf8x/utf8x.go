// Package utf8x encodes and decodes single Unicode scalar values as
// UTF-8, one byte at a time.
//
// Unlike unicode/utf8, which works on byte slices, this package targets
// the streaming shape lexers need: encode a scalar into an io.ByteWriter,
// decode the next scalar from an io.ByteReader. Encoding assumes the
// caller supplies a valid scalar value; only the numeric range is
// checked.
package utf8x

import (
	"errors"
	"io"
)

const (
	// Max is the maximal number of bytes in a UTF-8 sequence.
	Max = 4
	// BOM is the byte order mark.
	BOM rune = 0xFEFF
	// MaxRune is the largest encodable scalar value.
	MaxRune rune = 0x10FFFF
)

var (
	// ErrRange is returned when a scalar value is outside [0, MaxRune].
	ErrRange = errors.New("utf8x: scalar value out of range")
	// ErrInvalid is returned when a byte sequence is not valid UTF-8.
	ErrInvalid = errors.New("utf8x: invalid byte sequence")
)

// NumBytes returns the expected length of a UTF-8 sequence by inspecting
// its first byte. Returns 0 if the byte cannot start a sequence.
func NumBytes(c byte) int {
	switch {
	case c&0b1000_0000 == 0b0000_0000:
		return 1
	case c&0b1110_0000 == 0b1100_0000:
		return 2
	case c&0b1111_0000 == 0b1110_0000:
		return 3
	case c&0b1111_1000 == 0b1111_0000:
		return 4
	default:
		return 0
	}
}

// Encode appends the 1-to-4-byte UTF-8 encoding of r to w.
// It returns ErrRange if r is not a valid scalar value, and otherwise
// only the writer's error, if any.
func Encode(w io.ByteWriter, r rune) error {
	switch {
	case r < 0 || r > MaxRune:
		return ErrRange
	case r <= 0x7F:
		return w.WriteByte(byte(r))
	case r <= 0x7FF:
		if err := w.WriteByte(byte(r>>6)&0b0001_1111 | 0b1100_0000); err != nil {
			return err
		}
		return cont(w, r)
	case r <= 0xFFFF:
		if err := w.WriteByte(byte(r>>12)&0b0000_1111 | 0b1110_0000); err != nil {
			return err
		}
		if err := cont(w, r>>6); err != nil {
			return err
		}
		return cont(w, r)
	default:
		if err := w.WriteByte(byte(r>>18)&0b0000_0111 | 0b1111_0000); err != nil {
			return err
		}
		if err := cont(w, r>>12); err != nil {
			return err
		}
		if err := cont(w, r>>6); err != nil {
			return err
		}
		return cont(w, r)
	}
}

// Decode reads the next UTF-8 sequence from br and returns its scalar
// value. It returns io.EOF at a clean end of input, io.ErrUnexpectedEOF
// if the input ends mid-sequence, and ErrInvalid on malformed bytes.
func Decode(br io.ByteReader) (rune, error) {
	b0, err := br.ReadByte()
	if err != nil {
		return 0, err
	}

	n := NumBytes(b0)
	switch n {
	case 0:
		return 0, ErrInvalid
	case 1:
		return rune(b0), nil
	}

	// Relevant bits of the first byte of an n-byte sequence.
	r := rune(b0) & (0b0001_1111 >> (n - 2))

	for i := 1; i < n; i++ {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if b&0b1100_0000 != 0b1000_0000 {
			return 0, ErrInvalid
		}
		r = r<<6 | rune(b&0b0011_1111)
	}

	return r, nil
}

// cont writes a continuation byte carrying the low six bits of r.
func cont(w io.ByteWriter, r rune) error {
	return w.WriteByte(byte(r)&0b0011_1111 | 0b1000_0000)
}
