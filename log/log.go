// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cihub/seelog"
)

// PrefixLen is the width of the command prefix shown in every log line.
const PrefixLen = 6

var logger seelog.LoggerInterface

func init() {
	logger = seelog.Disabled
}

const configTemplate = `
<seelog type="sync" minlevel="%s">
	<outputs formatid="all">
		%s
		%s
	</outputs>
	<formats>
		<format id="all" format="%%UTCDate %%UTCTime [%s] [%%LEV] %%Msg%%n" />
	</formats>
</seelog>`

// prefix pads or cuts cmdPrefix to PrefixLen characters, so log lines
// of different tools stay aligned.
func prefix(cmdPrefix string) string {
	if len(cmdPrefix) > PrefixLen {
		return cmdPrefix[:PrefixLen]
	}
	return cmdPrefix + strings.Repeat(" ", PrefixLen-len(cmdPrefix))
}

// Init initializes the logging framework to the given logging level.
// If logDir is not empty logging is done to a rolling logfile in that
// directory. If logToConsole is true console logging is activated.
// If the given level is invalid or the initialization fails, an
// error is returned.
func Init(logLevel, cmdPrefix, logDir string, logToConsole bool) error {
	if _, found := seelog.LogLevelFromString(logLevel); !found {
		return fmt.Errorf("log: level '%s' is invalid", logLevel)
	}
	var console string
	if logToConsole {
		console = "<console />"
	}
	var file string
	if logDir != "" {
		name := filepath.Base(os.Args[0]) + ".log"
		file = fmt.Sprintf("<rollingfile type=\"size\" filename=\"%s\" maxsize=\"10485760\" maxrolls=\"3\" />",
			filepath.Join(logDir, name))
	}
	config := fmt.Sprintf(configTemplate, logLevel, console, file,
		prefix(cmdPrefix))
	newLogger, err := seelog.LoggerFromConfigAsString(config)
	if err != nil {
		return err
	}
	newLogger.SetAdditionalStackDepth(1)
	UseLogger(newLogger)
	Infof("%s started (built with %s %s for %s/%s)", os.Args[0],
		runtime.Compiler, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

// Flush flushes all the messages in the logger.
func Flush() {
	Infof("%s stopping", os.Args[0])
	logger.Flush()
}

// asError returns v[0] if v consists of a single error.
func asError(v []interface{}) (error, bool) {
	if len(v) != 1 {
		return nil, false
	}
	err, ok := v[0].(error)
	return err, ok
}

// Critical formats message using the default formats for its operands and
// writes to default logger with log level = Critical.
// If v is a single error, that very error is returned.
func Critical(v ...interface{}) error {
	if err, ok := asError(v); ok {
		logger.Critical(err)
		return err
	}
	return logger.Critical(v...)
}

// Criticalf formats message according to format specifier and writes to
// default logger with log level = Critical.
func Criticalf(format string, params ...interface{}) error {
	return logger.Criticalf(format, params...)
}

// Error formats message using the default formats for its operands and writes
// to default logger with log level = Error.
// If v is a single error, that very error is returned, so typed errors
// survive the logging call.
func Error(v ...interface{}) error {
	if err, ok := asError(v); ok {
		logger.Error(err)
		return err
	}
	return logger.Error(v...)
}

// Errorf formats message according to format specifier and writes to default
// logger with log level = Error.
func Errorf(format string, params ...interface{}) error {
	return logger.Errorf(format, params...)
}

// Warn formats message using the default formats for its operands and writes
// to default logger with log level = Warn.
func Warn(v ...interface{}) error {
	if err, ok := asError(v); ok {
		logger.Warn(err)
		return err
	}
	return logger.Warn(v...)
}

// Warnf formats message according to format specifier and writes to default
// logger with log level = Warn.
func Warnf(format string, params ...interface{}) error {
	return logger.Warnf(format, params...)
}

// Info formats message using the default formats for its operands and writes
// to default logger with log level = Info.
func Info(v ...interface{}) {
	logger.Info(v...)
}

// Infof formats message according to format specifier and writes to default
// logger with log level = Info.
func Infof(format string, params ...interface{}) {
	logger.Infof(format, params...)
}

// Debug formats message using the default formats for its operands and writes
// to default logger with log level = Debug.
func Debug(v ...interface{}) {
	logger.Debug(v...)
}

// Debugf formats message according to format specifier and writes to default
// logger with log level = Debug.
func Debugf(format string, params ...interface{}) {
	logger.Debugf(format, params...)
}

// Trace formats message using the default formats for its operands and writes
// to default logger with log level = Trace.
func Trace(v ...interface{}) {
	logger.Trace(v...)
}

// Tracef formats message according to format specifier and writes to default
// logger with log level = Trace.
func Tracef(format string, params ...interface{}) {
	logger.Tracef(format, params...)
}

// UseLogger uses a specified seelog.LoggerInterface to output library log.
func UseLogger(newLogger seelog.LoggerInterface) {
	logger = newLogger
}

// SetLogWriter uses a specified io.Writer to output library log at the
// given minimum level.
func SetLogWriter(writer io.Writer, logLevel string) error {
	if writer == nil {
		return errors.New("log: nil writer")
	}
	level, found := seelog.LogLevelFromString(logLevel)
	if !found {
		return fmt.Errorf("log: level '%s' is invalid", logLevel)
	}
	newLogger, err := seelog.LoggerFromWriterWithMinLevel(writer, level)
	if err != nil {
		return err
	}
	UseLogger(newLogger)
	return nil
}
