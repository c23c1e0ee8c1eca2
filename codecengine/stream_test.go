// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecengine

import (
	"bytes"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jlib/jlib/encode"
	"github.com/jlib/jlib/encode/base64"
	"github.com/stretchr/testify/assert"
)

func TestCopyLimit(t *testing.T) {
	tests := []struct {
		in  string
		max int64
		err error
	}{
		{"", 0, nil},
		{"", 1, nil},
		{"foobar", 0, nil},
		{"foobar", 6, nil},
		{"foobar", 7, nil},
		{"foobar", 5, encode.ErrLimitExceeded},
		{"foobar", 1, encode.ErrLimitExceeded},
	}
	for _, test := range tests {
		var out bytes.Buffer
		r := iotest.OneByteReader(strings.NewReader(test.in))
		err := copyLimit(&out, r, test.max)
		assert.Equal(t, test.err, err, "%q max=%d", test.in, test.max)
		if err == nil {
			assert.Equal(t, test.in, out.String())
		}
	}
}

func TestStreamUnknownCodec(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, encodeStream("uuencode", false, &out, strings.NewReader("")))
	assert.Error(t, decodeStream("uuencode", "\n", &out, strings.NewReader(""), 0))
}

func TestStreamBase64(t *testing.T) {
	var encoded, decoded bytes.Buffer
	data := bytes.Repeat([]byte{0x00, 0xff, 0x7f}, 100)
	err := encodeStream(base64.Name, false, &encoded,
		iotest.HalfReader(bytes.NewReader(data)))
	assert.NoError(t, err)
	assert.Equal(t, base64.Encode(data), encoded.String())
	err = decodeStream(base64.Name, "\n", &decoded,
		iotest.DataErrReader(&encoded), 0)
	assert.NoError(t, err)
	assert.Equal(t, data, decoded.Bytes())
}
