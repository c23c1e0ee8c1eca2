// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package def

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore() func() {
	sep, max, level := LineSeparator, MaxDecodeSize, LogLevel
	return func() {
		LineSeparator, MaxDecodeSize, LogLevel = sep, max, level
	}
}

func TestInit(t *testing.T) {
	defer restore()()
	require.NoError(t, Init(&Config{LineSeparator: "\r\n", MaxDecodeSize: 4096}))
	assert.Equal(t, "\r\n", LineSeparator)
	assert.Equal(t, int64(4096), MaxDecodeSize)
	assert.Error(t, Init(&Config{LineSeparator: "EOL"}))
	assert.Error(t, Init(&Config{MaxDecodeSize: -1}))
}

func TestInitFromFile(t *testing.T) {
	defer restore()()
	homedir, err := ioutil.TempDir("", "def_test")
	require.NoError(t, err)
	defer os.RemoveAll(homedir)

	// missing config file keeps the defaults
	require.NoError(t, InitFromFile(homedir))
	assert.Equal(t, "info", LogLevel)

	configdir := filepath.Join(homedir, "config")
	require.NoError(t, os.MkdirAll(configdir, 0700))
	jsn := []byte(`{"logLevel":"debug","maxDecodeSize":1024}`)
	require.NoError(t, ioutil.WriteFile(filepath.Join(configdir, ConfigFile), jsn, 0600))
	require.NoError(t, InitFromFile(homedir))
	assert.Equal(t, "debug", LogLevel)
	assert.Equal(t, int64(1024), MaxDecodeSize)

	require.NoError(t, ioutil.WriteFile(filepath.Join(configdir, ConfigFile), []byte("{"), 0600))
	assert.Error(t, InitFromFile(homedir))
}

func TestConfigMap(t *testing.T) {
	m := (&Config{LineSeparator: "\n", LogLevel: "warn"}).Map()
	assert.Equal(t, "\n", m["lineSeparator"])
	assert.Equal(t, "warn", m["logLevel"])
	assert.Equal(t, int64(0), m["maxDecodeSize"])
}
