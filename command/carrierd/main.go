// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/carrierd/background"
	"github.com/bitmark-inc/carrierd/configuration"
	"github.com/bitmark-inc/carrierd/keypair"
	"github.com/bitmark-inc/carrierd/market"
	"github.com/bitmark-inc/carrierd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processCommand(program, []string{"help"})
		return
	}

	if len(arguments) > 0 && processCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.Load(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands only inspect the configuration
	if processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	ring, err := keypair.RingFromHexSeeds(theConfiguration.Operators)
	if nil != err {
		log.Criticalf("operator keys error: %s", err)
		exitwithstatus.Message("operator keys error: %s", err)
	}
	log.Infof("operators: %v", ring.Identities())

	log.Infof("database: %q", theConfiguration.Database.Name)
	db, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage open error: %s", err)
		exitwithstatus.Message("storage open error: %s", err)
	}
	defer db.Close()

	mkt, err := market.FromDatabase(db, &theConfiguration.Limits, theConfiguration.Fee, market.SystemClock{}, ring)
	if nil != err {
		log.Criticalf("market initialise error: %s", err)
		exitwithstatus.Message("market initialise error: %s", err)
	}

	maintenance := theConfiguration.Maintenance
	p := newPruner(logger.New("pruner"), mkt, time.Duration(maintenance.PruneInterval)*time.Second)
	r := &reporter{
		log:      logger.New("reporter"),
		market:   mkt,
		interval: time.Duration(maintenance.ReportInterval) * time.Second,
		routes:   maintenance.Routes,
	}

	processes := background.Processes{p, r}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// prune anything that expired while stopped
	p.Trigger()

	quiet := len(options["quiet"]) > 0
	if !quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	// SIGHUP requests an immediate prune
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range ch {
		log.Infof("received signal: %v", sig)
		if syscall.SIGHUP == sig {
			p.Trigger()
			continue
		}
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down…\n")
		}
		break
	}

	log.Info("shutting down…")
}
