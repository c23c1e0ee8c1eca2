// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encode implements the plumbing shared by the jlib
// binary-to-text codecs: a registry of codecs by transfer-encoding name
// and bounded whole-stream decoding.
package encode

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"sort"
	"strings"
)

const (
	// LineLength is the maximum number of characters per encoded line
	// (RFC 2045).
	LineLength = 76

	// CRLF is the line break used in encoded text.
	CRLF = "\r\n"
)

// NativeLineSeparator is the line separator of the platform the program
// runs on.
var NativeLineSeparator = nativeLineSeparator()

func nativeLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// ErrLimitExceeded is returned if decoding produced more bytes than the
// caller allowed. Decoded output is never truncated silently.
var ErrLimitExceeded = errors.New("encode: decoded data exceeds size limit")

// ErrUnknownCodec is returned by Lookup for unregistered codec names.
var ErrUnknownCodec = errors.New("encode: unknown codec")

// Codec is a streaming binary-to-text codec.
type Codec interface {
	// Name returns the Content-Transfer-Encoding name of the codec.
	Name() string
	// NewEncoder returns an encoder writing encoded text to w.
	// Closing it flushes pending data but does not close w.
	NewEncoder(w io.Writer) io.WriteCloser
	// NewDecoder returns a decoder reading encoded text from r.
	NewDecoder(r io.Reader) io.Reader
}

var codecs = make(map[string]Codec)

// Register makes codec available by its name. Registering the same name
// twice panics.
func Register(codec Codec) {
	name := strings.ToLower(codec.Name())
	if _, ok := codecs[name]; ok {
		panic("encode: Register called twice for codec " + name)
	}
	codecs[name] = codec
}

// Lookup returns the codec registered under name (case-insensitive).
func Lookup(name string) (Codec, error) {
	codec, ok := codecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrUnknownCodec
	}
	return codec, nil
}

// Names returns the sorted names of all registered codecs.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadAllLimit reads r until EOF and returns the data. If r delivers more
// than max bytes, ErrLimitExceeded is returned together with the first max
// bytes. A max <= 0 means no limit.
func ReadAllLimit(r io.Reader, max int) ([]byte, error) {
	var buf bytes.Buffer
	if max <= 0 {
		_, err := io.Copy(&buf, r)
		return buf.Bytes(), err
	}
	// read one byte more than allowed to detect the overflow
	_, err := io.Copy(&buf, &io.LimitedReader{R: r, N: int64(max) + 1})
	if err != nil {
		return buf.Bytes(), err
	}
	if buf.Len() > max {
		return buf.Bytes()[:max], ErrLimitExceeded
	}
	return buf.Bytes(), nil
}
