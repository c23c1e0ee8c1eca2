// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qp

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when writing to a closed Encoder.
var ErrClosed = errors.New("qp: write to closed encoder")

// IllegalOctetError is returned if an escape character is not followed by
// two hexadecimal digits or a CRLF soft line break.
type IllegalOctetError struct {
	Hi, Lo byte  // the two raw characters after '='
	Offset int64 // input offset of the '='
}

func (e *IllegalOctetError) Error() string {
	return fmt.Sprintf("qp: illegal octet %q at offset %d", "="+string([]byte{e.Hi, e.Lo}), e.Offset)
}

// TruncatedStreamError is returned if the input ends inside an escape
// sequence.
type TruncatedStreamError struct {
	Pending string // the incomplete escape sequence
	Offset  int64  // input offset of the end of input
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("qp: input truncated at offset %d after %q", e.Offset, e.Pending)
}
