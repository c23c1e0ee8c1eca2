// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"io"
)

// Decoder is a streaming base64 decoder. It reads blocks of 4 characters
// and reconstructs up to 3 bytes per block. Line breaks (CR, LF) are
// accepted between blocks only, every other character outside the
// alphabet is an error.
//
// Errors are sticky: after the first error every Read returns it again.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	r      io.Reader
	in     [1024]byte // raw input
	inPos  int
	inEnd  int
	offset int64   // input offset of in[inPos]
	out    [3]byte // decoded bytes not yet delivered
	outPos int
	outEnd int
	done   bool // padded final block seen
	err    error
}

// NewDecoder returns a new base64 stream decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// fill reads more raw input. It returns io.EOF at the end of input and
// passes all other errors of the underlying reader through unchanged.
func (d *Decoder) fill() error {
	for i := 0; i < 100; i++ {
		n, err := d.r.Read(d.in[:])
		d.inPos = 0
		d.inEnd = n
		if n > 0 {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return io.ErrNoProgress
}

func (d *Decoder) readByte() (byte, error) {
	if d.inPos == d.inEnd {
		if err := d.fill(); err != nil {
			return 0, err
		}
	}
	c := d.in[d.inPos]
	d.inPos++
	d.offset++
	return c, nil
}

// decodeBlock decodes the next block into d.out.
// It returns io.EOF if the input ends cleanly between blocks.
func (d *Decoder) decodeBlock() error {
	var quad [4]byte
	var start int64
	n := 0
	for n < len(quad) {
		c, err := d.readByte()
		if err == io.EOF {
			if n == 0 {
				return io.EOF
			}
			return &TruncatedStreamError{Pending: string(quad[:n]), Offset: d.offset}
		} else if err != nil {
			return err
		}
		offset := d.offset - 1
		if n == 0 {
			if c == '\r' || c == '\n' {
				continue
			}
			if d.done {
				return &MalformedPaddingError{Block: string(c), Offset: offset}
			}
			start = offset
		}
		if c != Pad && decodeMap[c] == invalid {
			return &IllegalCharacterError{Char: c, Offset: offset}
		}
		quad[n] = c
		n++
	}

	var pads int
	switch {
	case quad[0] == Pad || quad[1] == Pad:
		pads = -1
	case quad[2] == Pad && quad[3] == Pad:
		pads = 2
	case quad[2] == Pad:
		pads = -1
	case quad[3] == Pad:
		pads = 1
	}
	if pads < 0 {
		return &MalformedPaddingError{Block: string(quad[:]), Offset: start}
	}
	for i := 4 - pads; i < 4; i++ {
		quad[i] = 'A' // value 0
	}
	v0 := decodeMap[quad[0]]
	v1 := decodeMap[quad[1]]
	v2 := decodeMap[quad[2]]
	v3 := decodeMap[quad[3]]
	d.out[0] = v0<<2 | v1>>4
	d.out[1] = v1<<4 | v2>>2
	d.out[2] = v2<<6 | v3
	d.outPos = 0
	d.outEnd = 3 - pads
	if pads > 0 {
		d.done = true
	}
	return nil
}

// Read reads decoded bytes into p. It returns io.EOF after the last block
// and one of the error types of this package for malformed input.
func (d *Decoder) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if d.outPos < d.outEnd {
			c := copy(p[n:], d.out[d.outPos:d.outEnd])
			d.outPos += c
			n += c
			continue
		}
		if d.err != nil {
			break
		}
		// do not block for more input if we have something to return
		if n > 0 && d.inPos == d.inEnd {
			break
		}
		d.err = d.decodeBlock()
	}
	if n > 0 {
		return n, nil
	}
	return 0, d.err
}
