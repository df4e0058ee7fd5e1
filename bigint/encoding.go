package bigint

import (
	"bytes"
	"fmt"

	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// limbBytes is the size of one serialized word, independent of the
// platform word size.
const limbBytes = 8

// MarshalBinary implements encoding.BinaryMarshaler. The layout is one
// sign byte (0 for non-negative, 1 for negative) followed by the magnitude
// as little-endian 8-byte limbs, least significant limb first, without
// leading zero limbs. Zero is the single byte 0.
func (x Int) MarshalBinary() ([]byte, error) {
	mag := x.mag.Bytes(nat.LittleEndian)
	n := (len(mag) + limbBytes - 1) / limbBytes
	buf := make([]byte, 1+n*limbBytes)
	if x.sign == Negative {
		buf[0] = 1
	}
	copy(buf[1:], mag)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It rejects
// truncated input and non-canonical encodings (unknown sign byte, a zero
// top limb, negative zero) with numerr.ErrInvalidEncoding.
func (z *Int) UnmarshalBinary(data []byte) error {
	if len(data) == 0 || (len(data)-1)%limbBytes != 0 {
		return fmt.Errorf("bigint: %d bytes: %w", len(data), numerr.ErrInvalidEncoding)
	}
	if data[0] > 1 {
		return fmt.Errorf("bigint: sign byte %d: %w", data[0], numerr.ErrInvalidEncoding)
	}
	limbs := data[1:]
	if len(limbs) > 0 && bytes.Count(limbs[len(limbs)-limbBytes:], []byte{0}) == limbBytes {
		return fmt.Errorf("bigint: zero top limb: %w", numerr.ErrInvalidEncoding)
	}
	if len(limbs) == 0 && data[0] == 1 {
		return fmt.Errorf("bigint: negative zero: %w", numerr.ErrInvalidEncoding)
	}
	sign := Positive
	if data[0] == 1 {
		sign = Negative
	}
	*z = makeInt(sign, nat.FromBytes(limbs, nat.LittleEndian))
	return nil
}

// MarshalText implements encoding.TextMarshaler with decimal digits.
func (x Int) MarshalText() ([]byte, error) {
	return x.appendText(nil, 10, false), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Prefixed literals
// such as "0x1f" are accepted.
func (z *Int) UnmarshalText(text []byte) error {
	x, err := Parse(string(text), 0)
	if err != nil {
		return err
	}
	*z = x
	return nil
}

// MarshalJSON implements json.Marshaler. The value is written as a bare
// JSON number.
func (x Int) MarshalJSON() ([]byte, error) {
	return x.MarshalText()
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON number, a
// quoted literal, or null, which leaves z unchanged.
func (z *Int) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return z.UnmarshalText(text)
}
