// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// jcodec is the codec tool for jlib which encodes and decodes base64,
// quoted-printable and hex streams.
package main

import (
	"os"

	"github.com/jlib/jlib/codecengine"
	"github.com/jlib/jlib/log"
	"github.com/jlib/jlib/release"
	"github.com/jlib/jlib/util"
	"github.com/jlib/jlib/util/interrupt"
	"github.com/urfave/cli"
)

func init() {
	cli.VersionPrinter = release.PrintVersion
}

func jcodecMain() error {
	defer log.Flush()

	// create codec engine
	ce := codecengine.New()

	// add interrupt handler
	interrupt.AddInterruptHandler(func() {
		log.Infof("gracefully shutting down...")
		ce.Shutdown()
	})

	return ce.Start(os.Args)
}

func main() {
	// work around defer not working after os.Exit()
	if err := jcodecMain(); err != nil {
		util.Fatal(err)
	}
}
