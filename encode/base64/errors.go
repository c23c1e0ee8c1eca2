// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when writing to a closed Encoder.
var ErrClosed = errors.New("base64: write to closed encoder")

// IllegalCharacterError is returned if the input contains a character
// which is neither in the alphabet nor the padding character.
type IllegalCharacterError struct {
	Char   byte  // the offending character
	Offset int64 // input offset of Char
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("base64: illegal character %q at offset %d", e.Char, e.Offset)
}

// MalformedPaddingError is returned if padding characters appear anywhere
// but in the last one or two positions of the final block, or if data
// follows the final block.
type MalformedPaddingError struct {
	Block  string // the offending block
	Offset int64  // input offset of Block
}

func (e *MalformedPaddingError) Error() string {
	return fmt.Sprintf("base64: malformed padding in %q at offset %d", e.Block, e.Offset)
}

// TruncatedStreamError is returned if the input ends inside a block.
type TruncatedStreamError struct {
	Pending string // characters of the incomplete block
	Offset  int64  // input offset of the end of input
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("base64: input truncated at offset %d after %q", e.Offset, e.Pending)
}
