// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"io"

	"github.com/jlib/jlib/encode"
)

// Encoder is a streaming base64 encoder. Every complete 3-byte block is
// written to the underlying writer as soon as it is available, output
// lines are wrapped after encode.LineLength characters with CRLF.
//
// An Encoder must be closed to write the final, padded block.
// It is not safe for concurrent use.
type Encoder struct {
	w      io.Writer
	buf    [3]byte // pending input block
	nbuf   int
	line   int // characters written since last line break
	out    [1024]byte
	closed bool
	err    error
}

// NewEncoder returns a new base64 stream encoder writing to w.
// Closing the Encoder does not close w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// appendBlock appends the encoding of the pending block to dst, preceded
// by a line break if the current line is full.
func (e *Encoder) appendBlock(dst []byte) []byte {
	if e.line >= encode.LineLength {
		dst = append(dst, encode.CRLF...)
		e.line = 0
	}
	var quad [4]byte
	encodeBlock(quad[:], e.buf[:])
	switch e.nbuf {
	case 1:
		quad[2] = Pad
		quad[3] = Pad
	case 2:
		quad[3] = Pad
	}
	e.line += len(quad)
	e.nbuf = 0
	return append(dst, quad[:]...)
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

// Write encodes p. Complete blocks are written to the underlying writer
// before Write returns, at most two bytes stay pending.
func (e *Encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, ErrClosed
	}
	// leave room for a line break plus one block
	limit := len(e.out) - len(encode.CRLF) - 4
	dst := e.out[:0]
	for _, b := range p {
		e.buf[e.nbuf] = b
		e.nbuf++
		n++
		if e.nbuf < len(e.buf) {
			continue
		}
		dst = e.appendBlock(dst)
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
// Pending input bytes are not padded, that only happens on Close.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if f, ok := e.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close writes the pending partial block, padded with Pad, and flushes
// the underlying writer. Calling Close more than once has no further
// effect on the output.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return e.Flush()
	}
	e.closed = true
	if e.nbuf > 0 {
		for i := e.nbuf; i < len(e.buf); i++ {
			e.buf[i] = 0
		}
		if err := e.write(e.appendBlock(e.out[:0])); err != nil {
			return err
		}
	}
	return e.Flush()
}
