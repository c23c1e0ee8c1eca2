// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecengine

import (
	"bytes"
	"io"
	"strings"

	"github.com/jlib/jlib/encode"
	"github.com/jlib/jlib/encode/base64"
	"github.com/jlib/jlib/encode/hex"
	"github.com/jlib/jlib/encode/qp"
	"github.com/jlib/jlib/log"
)

// copyLimit copies src to dst and fails with encode.ErrLimitExceeded as
// soon as src delivers more than max bytes. A max <= 0 means no limit.
func copyLimit(dst io.Writer, src io.Reader, max int64) error {
	if max <= 0 {
		_, err := io.Copy(dst, src)
		return err
	}
	n, err := io.Copy(dst, io.LimitReader(src, max))
	if err != nil {
		return err
	}
	if n < max {
		return nil
	}
	var probe [1]byte
	for {
		m, err := src.Read(probe[:])
		if m > 0 {
			return encode.ErrLimitExceeded
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// encodeStream encodes everything read from r with the named codec and
// writes the result to w. The binary flag only affects quoted-printable.
func encodeStream(name string, binary bool, w io.Writer, r io.Reader) error {
	var enc io.WriteCloser
	switch name {
	case hex.Name:
		src, err := encode.ReadAllLimit(r, 0)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, hex.Encode(src))
		return err
	case qp.Name:
		if binary {
			enc = qp.NewBinaryEncoder(w)
		} else {
			enc = qp.NewEncoder(w)
		}
	case base64.Name:
		enc = base64.NewEncoder(w)
	default:
		return log.Errorf("codecengine: %s: %s", encode.ErrUnknownCodec, name)
	}
	if _, err := io.Copy(enc, r); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// decodeStream decodes everything read from r with the named codec and
// writes at most max decoded bytes to w. Hard line breaks in
// quoted-printable input are written as sep.
func decodeStream(name, sep string, w io.Writer, r io.Reader, max int64) error {
	var dec io.Reader
	switch name {
	case hex.Name:
		limit := 0
		if max > 0 {
			// two digits per byte plus a trailing line break
			limit = int(2*max) + len(encode.CRLF)
		}
		src, err := encode.ReadAllLimit(r, limit)
		if err != nil {
			return err
		}
		dst, err := hex.Decode(strings.TrimSpace(string(src)))
		if err != nil {
			return err
		}
		dec = bytes.NewReader(dst)
	case qp.Name:
		dec = qp.NewDecoderSeparator(r, sep)
	case base64.Name:
		dec = base64.NewDecoder(r)
	default:
		return log.Errorf("codecengine: %s: %s", encode.ErrUnknownCodec, name)
	}
	return copyLimit(w, dec, max)
}
