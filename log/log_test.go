// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cihub/seelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "jcodec", prefix("jcodec"))
	assert.Equal(t, "qp    ", prefix("qp"))
	assert.Equal(t, "jcodec", prefix("jcodecx"))
}

func TestInitInvalidLevel(t *testing.T) {
	assert.Error(t, Init("verbose", "test", "", false))
}

func TestSetLogWriter(t *testing.T) {
	defer UseLogger(seelog.Disabled)
	assert.Error(t, SetLogWriter(nil, "info"))
	assert.Error(t, SetLogWriter(&bytes.Buffer{}, "loud"))

	var buf bytes.Buffer
	require.NoError(t, SetLogWriter(&buf, "warn"))
	Info("not shown")
	Warnf("shown %d", 1)
	logger.Flush()
	assert.False(t, strings.Contains(buf.String(), "not shown"))
	assert.True(t, strings.Contains(buf.String(), "shown 1"))
}

func TestErrorReturnsSameError(t *testing.T) {
	errTest := errors.New("test: some error")
	assert.Equal(t, errTest, Error(errTest))
	assert.Equal(t, errTest, Warn(errTest))
	assert.Equal(t, errTest, Critical(errTest))
	assert.EqualError(t, Errorf("test: %d", 42), "test: 42")
}
