// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package log implements the logging framework of the jlib tools.

See https://github.com/cihub/seelog/wiki/Log-levels for an introduction to the
different logging levels.

The codec packages below encode/ are leaf libraries and never log: they
return typed errors and leave it to the caller to decide what is worth a log
line. Everything above them (mime, def, cmd/...) logs errors once, as early
as possible: errors coming from external packages are wrapped in a
log.Error() call, own errors are created with log.Error[f](). Conditions that
must never happen are raised with panic(log.Critical[f]()).

Logging is disabled until Init, UseLogger or SetLogWriter is called, so
importing a jlib package never produces output on its own.
*/
package log
