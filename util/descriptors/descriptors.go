// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package descriptors defines helper functions for the input and output
// streams of the jlib tools.
package descriptors

import (
	"os"

	"github.com/frankbraun/codechain/util/file"
	"github.com/jlib/jlib/log"
	"github.com/urfave/cli"
)

// Stdio is the file name which denotes standard input or standard output.
const Stdio = "-"

var (
	// InFlag defines the standard --in flag.
	InFlag = cli.StringFlag{
		Name:  "in",
		Value: Stdio,
		Usage: "input file ('-' for stdin)",
	}
	// OutFlag defines the standard --out flag.
	OutFlag = cli.StringFlag{
		Name:  "out",
		Value: Stdio,
		Usage: "output file ('-' for stdout)",
	}
	// ForceFlag defines the standard --force flag.
	ForceFlag = cli.BoolFlag{
		Name:  "force",
		Usage: "overwrite existing output file",
	}
)

// Flags returns the standard stream flags followed by extra.
func Flags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{InFlag, OutFlag, ForceFlag}, extra...)
}

// Table contains the standard file pointers.
type Table struct {
	InputFP  *os.File // input file pointer
	OutputFP *os.File // output file pointer
}

// OpenInput opens filename for reading. Stdio denotes os.Stdin.
func OpenInput(filename string) (*os.File, error) {
	if filename == Stdio {
		return os.Stdin, nil
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, log.Error(err)
	}
	return fp, nil
}

// OpenOutput creates filename for writing. Stdio denotes os.Stdout.
// An existing file is only truncated if force is set.
func OpenOutput(filename string, force bool) (*os.File, error) {
	if filename == Stdio {
		return os.Stdout, nil
	}
	exists, err := file.Exists(filename)
	if err != nil {
		return nil, log.Error(err)
	}
	if exists && !force {
		return nil, log.Errorf("descriptors: output file '%s' exists (use --force to overwrite)",
			filename)
	}
	fp, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, log.Error(err)
	}
	return fp, nil
}

// NewTable opens the streams given by the standard flags in context c.
func NewTable(c *cli.Context) (*Table, error) {
	var t Table
	var err error
	t.InputFP, err = OpenInput(c.String(InFlag.Name))
	if err != nil {
		return nil, err
	}
	t.OutputFP, err = OpenOutput(c.String(OutFlag.Name), c.Bool(ForceFlag.Name))
	if err != nil {
		t.Close()
		return nil, err
	}
	return &t, nil
}

// Close closes the streams of t, standard input and output are left open.
// Close may be called more than once.
func (t *Table) Close() error {
	var err error
	if t.InputFP != nil && t.InputFP != os.Stdin {
		err = t.InputFP.Close()
	}
	if t.OutputFP != nil && t.OutputFP != os.Stdout {
		if cerr := t.OutputFP.Close(); err == nil {
			err = cerr
		}
	}
	t.InputFP = nil
	t.OutputFP = nil
	return err
}
