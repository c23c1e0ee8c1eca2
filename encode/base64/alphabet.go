// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

// Alphabet is the base64 alphabet (RFC 4648 standard encoding).
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Pad is the padding character. It lies outside the alphabet.
const Pad = '='

// invalid marks characters without a value in decodeMap.
const invalid = 0xFF

// decodeMap maps alphabet characters to their 6-bit values.
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// encodeBlock encodes the 3 bytes of src into the 4 characters of dst.
func encodeBlock(dst []byte, src []byte) {
	b0, b1, b2 := src[0], src[1], src[2]
	dst[0] = Alphabet[(b0>>2)&0x3F]
	dst[1] = Alphabet[(b0&0x03)<<4|(b1>>4)&0x0F]
	dst[2] = Alphabet[(b1&0x0F)<<2|(b2>>6)&0x03]
	dst[3] = Alphabet[b2&0x3F]
}
