// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codecengine implements the command engine for jcodec.
package codecengine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jlib/jlib/def"
	"github.com/jlib/jlib/encode/base64"
	"github.com/jlib/jlib/encode/hex"
	"github.com/jlib/jlib/encode/qp"
	"github.com/jlib/jlib/log"
	"github.com/jlib/jlib/util"
	"github.com/jlib/jlib/util/descriptors"
	"github.com/urfave/cli"
)

var (
	defaultHomeDir = homeDir()
	defaultLogDir  = filepath.Join(defaultHomeDir, "log")
)

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jlib"
	}
	return filepath.Join(home, ".jlib")
}

// CodecEngine abstracts a jcodec command engine.
type CodecEngine struct {
	prepared bool
	homedir  string

	mu     sync.Mutex
	table  *descriptors.Table
	closed bool

	app *cli.App
}

func (ce *CodecEngine) prepare(c *cli.Context) error {
	if ce.prepared {
		return nil
	}
	ce.homedir = c.GlobalString("homedir")

	// create the necessary directories if they don't already exist
	if err := util.CreateDirs(c.GlobalString("logdir")); err != nil {
		return err
	}

	// configure
	if err := def.InitFromFile(ce.homedir); err != nil {
		return err
	}

	// initialize logging framework, the flag overrides the config file
	logLevel := def.LogLevel
	if c.GlobalIsSet("loglevel") {
		logLevel = c.GlobalString("loglevel")
	}
	err := log.Init(logLevel, "codec", c.GlobalString("logdir"),
		c.GlobalBool("logconsole"))
	if err != nil {
		return err
	}

	ce.prepared = true
	return nil
}

func checkArgs(c *cli.Context) error {
	if len(c.Args()) > 0 {
		return fmt.Errorf("codecengine: superfluous argument(s) '%s', try 'help'",
			strings.Join(c.Args(), " "))
	}
	return nil
}

// open opens the streams given by the standard flags of c. Decoded output
// is binary and is never written to a terminal.
func (ce *CodecEngine) open(c *cli.Context, binaryOutput bool) (in, out *os.File, err error) {
	if err := checkArgs(c); err != nil {
		return nil, nil, err
	}
	table, err := descriptors.NewTable(c)
	if err != nil {
		return nil, nil, err
	}
	if binaryOutput && table.OutputFP == os.Stdout && util.IsTerminal(os.Stdout) {
		table.Close()
		return nil, nil,
			log.Error("codecengine: refusing to write binary data to terminal (use --out)")
	}
	ce.mu.Lock()
	defer ce.mu.Unlock()
	if ce.closed {
		table.Close()
		return nil, nil, log.Error("codecengine: engine shut down")
	}
	ce.table = table
	return table.InputFP, table.OutputFP, nil
}

func (ce *CodecEngine) encode(c *cli.Context, name string) error {
	in, out, err := ce.open(c, false)
	if err != nil {
		return err
	}
	log.Infof("codecengine: %s encode", name)
	if err := encodeStream(name, c.Bool("binary"), out, in); err != nil {
		ce.Close()
		return log.Error(err)
	}
	return ce.Close()
}

func (ce *CodecEngine) decode(c *cli.Context, name string) error {
	in, out, err := ce.open(c, true)
	if err != nil {
		return err
	}
	max := def.MaxDecodeSize
	if c.IsSet("max") {
		max = c.Int64("max")
	}
	log.Infof("codecengine: %s decode (max=%d)", name, max)
	if err := decodeStream(name, def.LineSeparator, out, in, max); err != nil {
		ce.Close()
		return log.Error(err)
	}
	return ce.Close()
}

func (ce *CodecEngine) showConfig(c *cli.Context) error {
	if err := checkArgs(c); err != nil {
		return err
	}
	jsn, err := json.MarshalIndent(def.Current().Map(), "", "  ")
	if err != nil {
		return log.Error(err)
	}
	_, err = fmt.Fprintln(c.App.Writer, string(jsn))
	return err
}

func (ce *CodecEngine) codecCommand(name, usage string, aliases []string, encodeFlags ...cli.Flag) cli.Command {
	return cli.Command{
		Name:    aliases[0],
		Aliases: aliases[1:],
		Usage:   usage,
		Subcommands: []cli.Command{
			{
				Name:  "encode",
				Usage: "encode input",
				Flags: descriptors.Flags(encodeFlags...),
				Action: func(c *cli.Context) error {
					return ce.encode(c, name)
				},
			},
			{
				Name:  "decode",
				Usage: "decode input",
				Flags: descriptors.Flags(cli.Int64Flag{
					Name:  "max",
					Usage: "maximum number of decoded bytes (0 = unlimited, default from config)",
				}),
				Action: func(c *cli.Context) error {
					return ce.decode(c, name)
				},
			},
		},
	}
}

// New returns a new jcodec engine.
func New() *CodecEngine {
	var ce CodecEngine
	ce.app = cli.NewApp()
	ce.app.Usage = "tool to encode and decode base64, quoted-printable and hex streams"
	ce.app.Version = def.Version
	ce.app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "homedir",
			Value: defaultHomeDir,
			Usage: "set home directory",
		},
		cli.StringFlag{
			Name:  "loglevel",
			Value: def.LogLevel,
			Usage: "logging level {trace, debug, info, warn, error, critical}",
		},
		cli.StringFlag{
			Name:  "logdir",
			Value: defaultLogDir,
			Usage: "directory to log output",
		},
		cli.BoolFlag{
			Name:  "logconsole",
			Usage: "enable logging to console",
		},
	}
	ce.app.Before = ce.prepare
	ce.app.Commands = []cli.Command{
		ce.codecCommand(base64.Name, "base64 content-transfer-encoding",
			[]string{"base64", "b64"}),
		ce.codecCommand(qp.Name, "quoted-printable content-transfer-encoding",
			[]string{"qp", "quoted-printable"},
			cli.BoolFlag{
				Name:  "binary",
				Usage: "escape line breaks (input is binary data)",
			}),
		ce.codecCommand(hex.Name, "uppercase hexadecimal encoding",
			[]string{"hex"}),
		{
			Name:   "config",
			Usage:  "show configuration in effect",
			Action: ce.showConfig,
		},
	}
	return &ce
}

// Start starts the codec engine with the given args.
func (ce *CodecEngine) Start(args []string) error {
	defer ce.Close()
	ce.app.Name = filepath.Base(args[0])
	return ce.app.Run(args)
}

// Close closes the streams the engine currently has open. Standard input
// and output are left open. Close may be called from an interrupt handler
// while a command is running, the command then fails with an I/O error.
func (ce *CodecEngine) Close() error {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	if ce.table == nil {
		return nil
	}
	err := ce.table.Close()
	ce.table = nil
	return err
}

// Shutdown closes the engine for good, a command started afterwards fails.
func (ce *CodecEngine) Shutdown() {
	ce.mu.Lock()
	ce.closed = true
	ce.mu.Unlock()
	ce.Close()
}
