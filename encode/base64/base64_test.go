// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"bufio"
	"bytes"
	stdbase64 "encoding/base64"
	"errors"
	"io/ioutil"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jlib/jlib/encode"
	"github.com/jlib/jlib/util/fuzzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	data = "5WBIS6whUU/Zuo9o0hqawcHAv8SZcxd9NzA79tEUcCI="
)

func randomBytes(seed int64, n int) []byte {
	b := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(b)
	return b
}

func TestBase64Function(t *testing.T) {
	dec, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if data != Encode(dec) {
		t.Fatal("encodings differ")
	}
}

func TestBase64Coder(t *testing.T) {
	r := NewDecoder(bytes.NewBufferString(data))
	dec, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	encoder := NewEncoder(&buf)
	if _, err := encoder.Write(dec); err != nil {
		t.Fatal(err)
	}
	if err := encoder.Close(); err != nil {
		t.Fatal(err)
	}
	if data != buf.String() {
		t.Fatal("encodings differ")
	}
}

func TestEncodeVectors(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0, 0, 0}, "AAAA"},
		{[]byte{0xff, 0xff, 0xff}, "////"},
		{[]byte("M"), "TQ=="},
		{[]byte("Ma"), "TWE="},
		{[]byte("Man"), "TWFu"},
		{[]byte("foobar"), "Zm9vYmFy"},
		{[]byte{0xfb, 0xff}, "+/8="},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Encode(test.in), "Encode(%x)", test.in)
		dec, err := Decode(test.want)
		if assert.NoError(t, err) {
			assert.Equal(t, len(test.in), len(dec))
			if len(test.in) > 0 {
				assert.Equal(t, test.in, dec)
			}
		}
	}
}

func TestLineWrapping(t *testing.T) {
	enc := Encode(make([]byte, 57))
	assert.Equal(t, strings.Repeat("A", 76), enc)

	enc = Encode(make([]byte, 58))
	assert.Equal(t, strings.Repeat("A", 76)+"\r\nAA==", enc)
	assert.Equal(t, 1, strings.Count(enc, "\r\n"))

	enc = Encode(make([]byte, 57*3))
	lines := strings.Split(enc, "\r\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 76)
	}
}

func TestEncodeMatchesStandardLibrary(t *testing.T) {
	for n := 0; n < 300; n += 7 {
		src := randomBytes(int64(n), n)
		enc := Encode(src)
		for _, line := range strings.Split(enc, "\r\n") {
			assert.True(t, len(line) <= encode.LineLength)
		}
		assert.Equal(t, stdbase64.StdEncoding.EncodeToString(src),
			strings.Replace(enc, "\r\n", "", -1))
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n < 500; n++ {
		src := randomBytes(int64(n), n)
		dec, err := Decode(Encode(src))
		require.NoError(t, err)
		assert.Equal(t, len(src), len(dec))
		assert.True(t, bytes.Equal(src, dec))
	}
}

func TestStreaming(t *testing.T) {
	src := randomBytes(1, 1000)

	// write byte by byte
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := range src {
		n, err := enc.Write(src[i : i+1])
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}
	require.NoError(t, enc.Close())
	assert.Equal(t, Encode(src), buf.String())

	// read through a one-byte source and into one-byte buffers
	r := iotest.OneByteReader(NewDecoder(iotest.OneByteReader(&buf)))
	dec, err := ioutil.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, src, dec)

	// data errors on the last read
	r = iotest.DataErrReader(NewDecoder(strings.NewReader(Encode(src))))
	dec, err = ioutil.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, src, dec)
}

func TestEncoderPendingBytes(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	enc := NewEncoder(bw)
	_, err := enc.Write([]byte("Ma"))
	require.NoError(t, err)
	require.NoError(t, enc.Flush())
	assert.Equal(t, "", buf.String())
	_, err = enc.Write([]byte("nM"))
	require.NoError(t, err)
	require.NoError(t, enc.Flush())
	assert.Equal(t, "TWFu", buf.String())
	require.NoError(t, enc.Close())
	assert.Equal(t, "TWFuTQ==", buf.String())
}

func TestCloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	_, err := enc.Write([]byte("Ma"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	assert.Equal(t, "TWE=", buf.String())
	require.NoError(t, enc.Close())
	assert.Equal(t, "TWE=", buf.String())
	_, err = enc.Write([]byte("n"))
	assert.Equal(t, ErrClosed, err)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"AB@D", &IllegalCharacterError{Char: '@', Offset: 2}},
		{"AB D", &IllegalCharacterError{Char: ' ', Offset: 2}},
		{"AB\tD", &IllegalCharacterError{Char: '\t', Offset: 2}},
		{"TW\r\nFu", &IllegalCharacterError{Char: '\r', Offset: 2}},
		{"TWFu-_", &IllegalCharacterError{Char: '-', Offset: 4}},
		{"A=AA", &MalformedPaddingError{Block: "A=AA", Offset: 0}},
		{"A===", &MalformedPaddingError{Block: "A===", Offset: 0}},
		{"====", &MalformedPaddingError{Block: "====", Offset: 0}},
		{"AB=C", &MalformedPaddingError{Block: "AB=C", Offset: 0}},
		{"TWFu\r\nA=AA", &MalformedPaddingError{Block: "A=AA", Offset: 6}},
		{"TQ==TQ==", &MalformedPaddingError{Block: "T", Offset: 4}},
		{"TQ==\r\n=", &MalformedPaddingError{Block: "=", Offset: 6}},
		{"A", &TruncatedStreamError{Pending: "A", Offset: 1}},
		{"TWFuTWE", &TruncatedStreamError{Pending: "TWE", Offset: 7}},
		{"TWF\r\n", &IllegalCharacterError{Char: '\r', Offset: 3}},
	}
	for _, test := range tests {
		_, err := Decode(test.in)
		assert.Equal(t, test.err, err, "Decode(%q)", test.in)
	}
	_, err := Decode("AB@D")
	assert.EqualError(t, err, `base64: illegal character '@' at offset 2`)
}

func TestDecodeLineBreaks(t *testing.T) {
	dec, err := Decode("TWFu\r\nTWFu\nTQ==\r\n")
	require.NoError(t, err)
	assert.Equal(t, "ManManM", string(dec))
	dec, err = Decode("\r\n")
	require.NoError(t, err)
	assert.Len(t, dec, 0)
}

func TestDecoderStickyError(t *testing.T) {
	d := NewDecoder(strings.NewReader("TWFuA@AA"))
	p := make([]byte, 16)
	n, err := d.Read(p)
	assert.Equal(t, 3, n)
	assert.NoError(t, err)
	for i := 0; i < 2; i++ {
		n, err = d.Read(p)
		assert.Equal(t, 0, n)
		assert.Equal(t, &IllegalCharacterError{Char: '@', Offset: 5}, err)
	}
}

var errSink = errors.New("sink failure")

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errSink }

type failReader struct{}

func (failReader) Read(p []byte) (int, error) { return 0, errSink }

func TestIOErrorsPropagate(t *testing.T) {
	enc := NewEncoder(failWriter{})
	_, err := enc.Write([]byte("Ma"))
	assert.NoError(t, err) // nothing to write yet
	_, err = enc.Write([]byte("n"))
	assert.Equal(t, errSink, err)
	assert.Equal(t, errSink, enc.Close())

	_, err = ioutil.ReadAll(NewDecoder(failReader{}))
	assert.Equal(t, errSink, err)
}

func TestDecodeLimit(t *testing.T) {
	enc := Encode([]byte("0123456789"))
	_, err := DecodeLimit(enc, 5)
	assert.Equal(t, encode.ErrLimitExceeded, err)
	dec, err := DecodeLimit(enc, 10)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(dec))
}

func TestGzip(t *testing.T) {
	src := bytes.Repeat([]byte("jlib gzip helpers "), 200)
	enc, err := EncodeGzip(src)
	require.NoError(t, err)
	assert.True(t, len(enc) < len(src))

	dec, err := DecodeGunzip(enc, 0)
	require.NoError(t, err)
	assert.Equal(t, src, dec)

	// the fixed scratch buffer of old is an explicit limit now
	_, err = DecodeGunzip(enc, 1024)
	assert.Equal(t, encode.ErrLimitExceeded, err)

	_, err = DecodeGunzip(Encode([]byte("not gzip")), 0)
	assert.Error(t, err)
}

func TestRegistered(t *testing.T) {
	codec, err := encode.Lookup("BASE64")
	require.NoError(t, err)
	assert.Equal(t, Name, codec.Name())

	var buf bytes.Buffer
	w := codec.NewEncoder(&buf)
	_, err = w.Write([]byte("Man"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	dec, err := ioutil.ReadAll(codec.NewDecoder(&buf))
	require.NoError(t, err)
	assert.Equal(t, "Man", string(dec))
}

func TestFuzzDecoder(t *testing.T) {
	f := &fuzzer.SequentialFuzzer{
		Data: []byte(Encode(randomBytes(2, 80))),
		TestFunc: func(mutation []byte) error {
			_, err := Decode(string(mutation))
			return err
		},
	}
	assert.True(t, f.Fuzz())
	// flipping the high bit always leaves the alphabet
	assert.True(t, f.Errors >= len(f.Data))
}
