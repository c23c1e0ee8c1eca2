// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qp

import (
	"bufio"
	"io"

	"github.com/jlib/jlib/encode"
	"github.com/jlib/jlib/encode/hex"
)

// Decoder is a streaming quoted-printable decoder. Soft line breaks are
// removed, escaped octets decoded and hard line breaks (CRLF) replaced by
// the line separator of the Decoder. All other characters pass through.
//
// Errors are sticky: after the first error every Read returns it again.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	r      *bufio.Reader
	sep    []byte
	out    []byte // decoded bytes not yet delivered
	outPos int
	offset int64 // input offset of the next character
	err    error
}

// NewDecoder returns a new quoted-printable decoder reading from r which
// decodes hard line breaks to encode.NativeLineSeparator.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderSeparator(r, encode.NativeLineSeparator)
}

// NewDecoderSeparator returns a new quoted-printable decoder reading from r
// which decodes hard line breaks to sep.
func NewDecoderSeparator(r io.Reader, sep string) *Decoder {
	return &Decoder{
		r:   bufio.NewReader(r),
		sep: []byte(sep),
		out: make([]byte, 0, len(sep)+1),
	}
}

func (d *Decoder) readByte() (byte, error) {
	c, err := d.r.ReadByte()
	if err != nil {
		return 0, err
	}
	d.offset++
	return c, nil
}

// readEscaped reads the character following an escape character.
// The end of input is a TruncatedStreamError.
func (d *Decoder) readEscaped(pending []byte) (byte, error) {
	c, err := d.readByte()
	if err == io.EOF {
		return 0, &TruncatedStreamError{Pending: string(pending), Offset: d.offset}
	}
	return c, err
}

// decodeEscape decodes the sequence after an '=' read at offset start.
// A soft line break leaves d.out empty.
func (d *Decoder) decodeEscape(start int64) error {
	hi, err := d.readEscaped([]byte{'='})
	if err != nil {
		return err
	}
	lo, err := d.readEscaped([]byte{'=', hi})
	if err != nil {
		return err
	}
	if hi == '\r' && lo == '\n' {
		return nil
	}
	b, err := hex.ParseByte(hi, lo)
	if err != nil {
		return &IllegalOctetError{Hi: hi, Lo: lo, Offset: start}
	}
	d.out = append(d.out, b)
	return nil
}

// decodeToken decodes the next token into d.out.
// It returns io.EOF if the input ends between tokens.
func (d *Decoder) decodeToken() error {
	d.out = d.out[:0]
	d.outPos = 0
	c, err := d.readByte()
	if err != nil {
		return err
	}
	switch c {
	case '=':
		return d.decodeEscape(d.offset - 1)
	case '\r':
		next, err := d.r.Peek(1)
		if err == nil && next[0] == '\n' {
			d.r.ReadByte()
			d.offset++
			d.out = append(d.out, d.sep...)
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
	}
	d.out = append(d.out, c)
	return nil
}

// Read reads decoded bytes into p. It returns io.EOF at the end of input
// and one of the error types of this package for malformed input.
func (d *Decoder) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if d.outPos < len(d.out) {
			c := copy(p[n:], d.out[d.outPos:])
			d.outPos += c
			n += c
			continue
		}
		if d.err != nil {
			break
		}
		// do not block for more input if we have something to return
		if n > 0 && d.r.Buffered() == 0 {
			break
		}
		d.err = d.decodeToken()
	}
	if n > 0 {
		return n, nil
	}
	return 0, d.err
}
