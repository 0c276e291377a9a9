// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/carrierd/configuration"
	"github.com/bitmark-inc/carrierd/keypair"
	"github.com/bitmark-inc/carrierd/market"
	"github.com/bitmark-inc/carrierd/storage"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	db      *storage.Database
	market  *market.Market
	ring    *keypair.Ring
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that never need the database
var standalone = map[string]bool{
	"generate": true,
	"version":  true,
}

// commands that only read the database
var readOnly = map[string]bool{
	"match-demand": true,
	"match-travel": true,
	"balance":      true,
	"counters":     true,
}

func main() {
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "carrier-cli"
	app.Usage = "operate a local carrier market"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*market configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an operator key pair, add its seed to the configuration to use it",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "demand",
			Usage:     "offer an item for delivery",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*operator identity offering the item `ID`",
				},
				cli.Uint64Flag{
					Name:  "expiry, e",
					Value: 0,
					Usage: "*ledger time the offer lapses `SECONDS`",
				},
				cli.Uint64Flag{
					Name:  "reputation, r",
					Value: 0,
					Usage: " reputation a carrier needs `REP`",
				},
				cli.Uint64Flag{
					Name:  "size, s",
					Value: 0,
					Usage: " space the item occupies `SIZE`",
				},
				cli.Uint64Flag{
					Name:  "value, V",
					Value: 0,
					Usage: " declared item value `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "info, i",
					Value: "",
					Usage: "*delivery details, exactly info_length bytes `HEX`",
				},
			},
			Action: runDemand,
		},
		{
			Name:      "travel",
			Usage:     "offer carrying capacity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*operator identity offering the capacity `ID`",
				},
				cli.Uint64Flag{
					Name:  "expiry, e",
					Value: 0,
					Usage: "*ledger time the offer lapses `SECONDS`",
				},
				cli.Uint64Flag{
					Name:  "reputation, r",
					Value: 0,
					Usage: " reputation a shipper needs `REP`",
				},
				cli.Uint64Flag{
					Name:  "space, s",
					Value: 0,
					Usage: " space available `SIZE`",
				},
			},
			Action: runTravel,
		},
		{
			Name:      "match-demand",
			Usage:     "find the first open demand a carrier can take",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "reputation, r",
					Value: 0,
					Usage: " carrier reputation `REP`",
				},
				cli.Uint64Flag{
					Name:  "space, s",
					Value: 0,
					Usage: " carrier space available `SIZE`",
				},
			},
			Action: runMatchDemand,
		},
		{
			Name:      "match-travel",
			Usage:     "find the first open travel that can take an item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "reputation, r",
					Value: 0,
					Usage: " shipper reputation `REP`",
				},
				cli.Uint64Flag{
					Name:  "size, s",
					Value: 0,
					Usage: " space the item occupies `SIZE`",
				},
			},
			Action: runMatchTravel,
		},
		{
			Name:      "reserve",
			Usage:     "hold value for a recipient until an expiry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, H",
					Value: "",
					Usage: "*operator identity holding the value `ID`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*identity the value is held for `ID`",
				},
				cli.Uint64Flag{
					Name:  "expiry, e",
					Value: 0,
					Usage: "*ledger time the value is released `SECONDS`",
				},
				cli.Uint64Flag{
					Name:  "value, V",
					Value: 0,
					Usage: " amount held `AMOUNT`",
				},
			},
			Action: runReserve,
		},
		{
			Name:      "balance",
			Usage:     "total value a holder has reserved and not yet released",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, H",
					Value: "",
					Usage: "*holder identity `ID`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "reassign",
			Usage:     "move a reservation to another recipient",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, H",
					Value: "",
					Usage: "*operator identity holding the value `ID`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*current recipient `ID`",
				},
				cli.StringFlag{
					Name:  "new-recipient, n",
					Value: "",
					Usage: "*recipient to take over the reservation `ID`",
				},
				cli.Uint64Flag{
					Name:  "value, V",
					Value: 0,
					Usage: " amount of the reservation `AMOUNT`",
				},
			},
			Action: runReassign,
		},
		{
			Name:      "release",
			Usage:     "remove a reservation before it expires",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, H",
					Value: "",
					Usage: "*operator identity holding the value `ID`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*recipient of the reservation `ID`",
				},
				cli.Uint64Flag{
					Name:  "value, V",
					Value: 0,
					Usage: " amount of the reservation `AMOUNT`",
				},
			},
			Action: runRelease,
		},
		{
			Name:      "route",
			Usage:     "count one use of a delivery route",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*route `NAME`",
				},
			},
			Action: runRoute,
		},
		{
			Name:      "prune",
			Usage:     "delete every expired record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runPrune,
		},
		{
			Name:      "counters",
			Usage:     "show market counters and open record counts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "route, R",
					Usage: " include usage of route `NAME` (repeatable)",
				},
			},
			Action: runCounters,
		},
		{
			Name:  "version",
			Usage: "display carrier-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the market
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "" == command || "help" == command || "h" == command {
			return nil
		}
		if standalone[command] {
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		conf, err := configuration.Load(file)
		if nil != err {
			return err
		}

		err = logger.Initialise(conf.Logging)
		if nil != err {
			return err
		}

		ring, err := keypair.RingFromHexSeeds(conf.Operators)
		if nil != err {
			logger.Finalise()
			return err
		}

		if verbose {
			fmt.Fprintf(e, "database: %s  read only: %t\n", conf.Database.Name, readOnly[command])
		}

		db, err := storage.Open(conf.Database.Name, readOnly[command])
		if nil != err {
			logger.Finalise()
			return err
		}

		mkt, err := market.FromDatabase(db, &conf.Limits, conf.Fee, market.SystemClock{}, ring)
		if nil != err {
			db.Close()
			logger.Finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  conf,
			db:      db,
			market:  mkt,
			ring:    ring,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// close the database if it was opened
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.db {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "closing database: %s\n", m.config.Database.Name)
		}
		m.db.Close()
		logger.Finalise()
		return nil
	}

	return app
}
