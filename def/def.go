// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package def defines all default values used in jlib.
package def

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"

	"github.com/fatih/structs"
	"github.com/frankbraun/codechain/util/file"
	"github.com/jlib/jlib/def/version"
	"github.com/jlib/jlib/encode"
	"github.com/jlib/jlib/log"
)

// Version is the current jlib version.
const Version = version.Number

// ConfigFile is the name of the configuration file in homedir/config/.
const ConfigFile = "jlib.json"

// LineSeparator is the separator hard line breaks in quoted-printable text
// decode to. It defaults to the native line separator of the platform.
var LineSeparator = encode.NativeLineSeparator

// MaxDecodeSize is the default upper bound in bytes for whole-buffer
// decoding in the command line tools. 0 means unlimited.
var MaxDecodeSize = int64(0)

// LogLevel is the default logging level of the command line tools.
var LogLevel = "info"

// Config is the content of the jlib configuration file.
// Empty fields leave the corresponding default untouched.
type Config struct {
	LineSeparator string `json:"lineSeparator,omitempty" structs:"lineSeparator"`
	MaxDecodeSize int64  `json:"maxDecodeSize,omitempty" structs:"maxDecodeSize"`
	LogLevel      string `json:"logLevel,omitempty" structs:"logLevel"`
}

// Current returns the configuration currently in effect.
func Current() *Config {
	return &Config{
		LineSeparator: LineSeparator,
		MaxDecodeSize: MaxDecodeSize,
		LogLevel:      LogLevel,
	}
}

// Map returns config as a map from JSON field name to value.
func (config *Config) Map() map[string]interface{} {
	return structs.Map(config)
}

// Init sets the defaults from config.
func Init(config *Config) error {
	switch config.LineSeparator {
	case "":
	case "\n", "\r\n", "\r":
		LineSeparator = config.LineSeparator
	default:
		return log.Errorf("def: invalid line separator %q", config.LineSeparator)
	}
	if config.MaxDecodeSize < 0 {
		return log.Errorf("def: negative maxDecodeSize %d", config.MaxDecodeSize)
	}
	if config.MaxDecodeSize > 0 {
		MaxDecodeSize = config.MaxDecodeSize
	}
	if config.LogLevel != "" {
		LogLevel = config.LogLevel
	}
	return nil
}

// InitFromFile initializes jlib with the config file from homedir/config/.
// A missing config file is not an error, the defaults stay in effect.
func InitFromFile(homedir string) error {
	filename := filepath.Join(homedir, "config", ConfigFile)
	exists, err := file.Exists(filename)
	if err != nil {
		return log.Error(err)
	}
	if !exists {
		log.Debugf("def: no config file '%s'", filename)
		return nil
	}
	jsn, err := ioutil.ReadFile(filename)
	if err != nil {
		return log.Error(err)
	}
	var config Config
	if err := json.Unmarshal(jsn, &config); err != nil {
		return log.Error(err)
	}
	log.Infof("def: read config file '%s'", filename)
	return Init(&config)
}
