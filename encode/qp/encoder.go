// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qp

import (
	"io"

	"github.com/jlib/jlib/encode"
	"github.com/jlib/jlib/encode/hex"
)

// softLimit is the line length a token must stay below, leaving room for
// the '=' of a soft line break.
const softLimit = encode.LineLength - 1

const softBreak = "=" + encode.CRLF

// Encoder is a streaming quoted-printable encoder.
//
// In text mode (NewEncoder) CRLF and bare LF in the input are hard line
// breaks and written as CRLF, a CR not followed by LF is escaped. In
// binary mode (NewBinaryEncoder) CR and LF are always escaped.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w      io.Writer
	binary bool
	line   int  // characters written since last line break
	cr     bool // pending CR, waiting for a possible LF
	space  bool // last character on the line is a literal space or tab
	out    [1024]byte
	closed bool
	err    error
}

// NewEncoder returns a new quoted-printable text encoder writing to w.
// Closing the Encoder does not close w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// NewBinaryEncoder returns a new quoted-printable encoder writing to w
// which escapes line break characters like any other control character.
func NewBinaryEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, binary: true}
}

// isLiteral reports whether b can be written as is.
func isLiteral(b byte) bool {
	return b == ' ' || b == '\t' || ('!' <= b && b <= '~' && b != '=')
}

// appendToken appends a literal character or an escaped octet to dst,
// preceded by a soft line break if the line would get too long.
func (e *Encoder) appendToken(dst []byte, b byte) []byte {
	width := 3
	if isLiteral(b) {
		width = 1
	}
	if e.line+width >= softLimit {
		dst = append(dst, softBreak...)
		e.line = 0
	}
	if width == 1 {
		dst = append(dst, b)
	} else {
		dst = append(dst, '=', hex.FormatDigit(b>>4), hex.FormatDigit(b&0x0F))
	}
	e.line += width
	e.space = b == ' ' || b == '\t'
	return dst
}

// appendHardBreak appends a CRLF to dst. Trailing whitespace is protected
// with a soft line break first.
func (e *Encoder) appendHardBreak(dst []byte) []byte {
	if e.space {
		dst = append(dst, softBreak...)
	}
	e.line = 0
	e.space = false
	return append(dst, encode.CRLF...)
}

func (e *Encoder) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
		return err
	}
	return nil
}

// Write encodes p and writes the result to the underlying writer.
// Only a trailing CR can stay pending.
func (e *Encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, ErrClosed
	}
	// one input byte appends at most two tokens with soft breaks
	limit := len(e.out) - 2*(len(softBreak)+3)
	dst := e.out[:0]
	for _, b := range p {
		n++
		switch {
		case e.binary:
			dst = e.appendToken(dst, b)
		case e.cr:
			e.cr = false
			if b == '\n' {
				dst = e.appendHardBreak(dst)
				break
			}
			dst = e.appendToken(dst, '\r')
			if b == '\r' {
				e.cr = true
			} else {
				dst = e.appendToken(dst, b)
			}
		case b == '\r':
			e.cr = true
		case b == '\n':
			dst = e.appendHardBreak(dst)
		default:
			dst = e.appendToken(dst, b)
		}
		if len(dst) > limit {
			if err := e.write(dst); err != nil {
				return n, err
			}
			dst = e.out[:0]
		}
	}
	if err := e.write(dst); err != nil {
		return n, err
	}
	return n, nil
}

// Flush flushes the underlying writer, if it has a Flush method.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if f, ok := e.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close writes a pending CR as escaped octet and flushes the underlying
// writer. Calling Close more than once has no further effect on the
// output.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return e.Flush()
	}
	e.closed = true
	if e.cr {
		e.cr = false
		if err := e.write(e.appendToken(e.out[:0], '\r')); err != nil {
			return err
		}
	}
	return e.Flush()
}
