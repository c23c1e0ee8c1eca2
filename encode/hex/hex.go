// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hex implements the hexadecimal digit codec used by the
// quoted-printable escape mechanism. Output digits are always uppercase,
// input digits are accepted in either case.
package hex

import (
	"errors"
	"fmt"
)

// Name is the name of the codec.
const Name = "hex"

// Digits is the hexadecimal alphabet.
const Digits = "0123456789ABCDEF"

// ErrLength is returned by Decode for input of odd length.
var ErrLength = errors.New("hex: odd length hex string")

// InvalidDigitError is returned for characters which are not hexadecimal
// digits.
type InvalidDigitError byte

func (e InvalidDigitError) Error() string {
	return fmt.Sprintf("hex: invalid digit %q", byte(e))
}

// ParseDigit returns the value 0..15 of the hexadecimal digit c.
func ParseDigit(c byte) (byte, error) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', nil
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, nil
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, nil
	}
	return 0, InvalidDigitError(c)
}

// ParseByte returns the byte encoded by the digit pair hi, lo.
func ParseByte(hi, lo byte) (byte, error) {
	h, err := ParseDigit(hi)
	if err != nil {
		return 0, err
	}
	l, err := ParseDigit(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}

// FormatDigit returns the hexadecimal digit for v.
// If v is larger than 15 the function panics.
func FormatDigit(v byte) byte {
	if v > 0xF {
		panic("hex: FormatDigit(): v > 15")
	}
	return Digits[v]
}

// AppendByte appends the two digits of b to dst.
func AppendByte(dst []byte, b byte) []byte {
	return append(dst, Digits[b>>4], Digits[b&0x0F])
}

// Encode returns the hexadecimal encoding of src.
func Encode(src []byte) string {
	dst := make([]byte, 0, 2*len(src))
	for _, b := range src {
		dst = AppendByte(dst, b)
	}
	return string(dst)
}

// Decode returns the bytes represented by the hexadecimal string s.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrLength
	}
	dst := make([]byte, len(s)/2)
	for i := range dst {
		b, err := ParseByte(s[2*i], s[2*i+1])
		if err != nil {
			return nil, err
		}
		dst[i] = b
	}
	return dst, nil
}
