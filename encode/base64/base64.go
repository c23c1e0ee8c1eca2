// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base64 implements a streaming base64 codec with the standard
// alphabet, padding and CRLF line wrapping after 76 characters, as used as
// MIME Content-Transfer-Encoding.
//
// The decoder is strict: apart from the line breaks the encoder emits
// between blocks no character outside the alphabet is tolerated, and no
// input is ever skipped or replaced.
package base64

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"

	"github.com/jlib/jlib/encode"
)

// Name is the Content-Transfer-Encoding name of base64.
const Name = "base64"

type transferEncoding struct{}

func (transferEncoding) Name() string { return Name }

func (transferEncoding) NewEncoder(w io.Writer) io.WriteCloser { return NewEncoder(w) }

func (transferEncoding) NewDecoder(r io.Reader) io.Reader { return NewDecoder(r) }

func init() {
	encode.Register(transferEncoding{})
}

// Encode returns the base64 encoding of src.
func Encode(src []byte) string {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	// writing to a bytes.Buffer cannot fail
	enc.Write(src)
	enc.Close()
	return buf.String()
}

// Decode returns the bytes represented by the base64 string s.
func Decode(s string) ([]byte, error) {
	return DecodeLimit(s, 0)
}

// DecodeLimit returns the bytes represented by the base64 string s.
// If s decodes to more than max bytes encode.ErrLimitExceeded is returned.
// A max <= 0 means no limit.
func DecodeLimit(s string, max int) ([]byte, error) {
	return encode.ReadAllLimit(NewDecoder(strings.NewReader(s)), max)
}

// EncodeGzip compresses src with gzip and returns the base64 encoding of
// the compressed data.
func EncodeGzip(src []byte) (string, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	zw := gzip.NewWriter(enc)
	if _, err := zw.Write(src); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DecodeGunzip decodes the base64 string s and decompresses the result
// with gzip. If the decompressed data is longer than max bytes
// encode.ErrLimitExceeded is returned. A max <= 0 means no limit.
func DecodeGunzip(s string, max int) ([]byte, error) {
	zr, err := gzip.NewReader(NewDecoder(strings.NewReader(s)))
	if err != nil {
		return nil, err
	}
	data, err := encode.ReadAllLimit(zr, max)
	if err != nil {
		return nil, err
	}
	if err := zr.Close(); err != nil {
		return nil, err
	}
	return data, nil
}
