// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qp implements a streaming quoted-printable codec (RFC 2045,
// section 6.7).
//
// Printable ASCII except '=' as well as space and tab are written as is,
// every other octet as '=' followed by two uppercase hexadecimal digits.
// Soft line breaks ("=\r\n") keep encoded lines below 76 characters.
// Hard line breaks are written as CRLF and decoded to a configurable line
// separator, by default the native one of the platform.
package qp

import (
	"bytes"
	"io"
	"strings"

	"github.com/jlib/jlib/encode"
)

// Name is the Content-Transfer-Encoding name of quoted-printable.
const Name = "quoted-printable"

type transferEncoding struct{}

func (transferEncoding) Name() string { return Name }

func (transferEncoding) NewEncoder(w io.Writer) io.WriteCloser { return NewEncoder(w) }

func (transferEncoding) NewDecoder(r io.Reader) io.Reader { return NewDecoder(r) }

func init() {
	encode.Register(transferEncoding{})
}

func encodeWith(enc *Encoder, buf *bytes.Buffer, src []byte) string {
	// writing to a bytes.Buffer cannot fail
	enc.Write(src)
	enc.Close()
	return buf.String()
}

// Encode returns the quoted-printable encoding of the text src.
func Encode(src []byte) string {
	var buf bytes.Buffer
	return encodeWith(NewEncoder(&buf), &buf, src)
}

// EncodeBinary returns the quoted-printable encoding of src with all line
// break characters escaped. Decode restores src exactly.
func EncodeBinary(src []byte) string {
	var buf bytes.Buffer
	return encodeWith(NewBinaryEncoder(&buf), &buf, src)
}

// Decode returns the bytes represented by the quoted-printable string s.
// Hard line breaks are decoded to encode.NativeLineSeparator.
func Decode(s string) ([]byte, error) {
	return DecodeLimit(s, 0)
}

// DecodeLimit returns the bytes represented by the quoted-printable string
// s. If s decodes to more than max bytes encode.ErrLimitExceeded is
// returned. A max <= 0 means no limit.
func DecodeLimit(s string, max int) ([]byte, error) {
	return encode.ReadAllLimit(NewDecoder(strings.NewReader(s)), max)
}
