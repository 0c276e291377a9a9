// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/carrierd/configuration"
)

// setup command handler
//
// commands that do not need the configuration file, return false to
// continue with normal start
func processCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}

// commands that only inspect the configuration
func processConfigCommand(arguments []string, theConfiguration *configuration.Configuration) bool {

	if 0 == len(arguments) {
		return false
	}

	switch arguments[0] {
	case "config-test", "cfg":
		b, err := json.MarshalIndent(theConfiguration, "", "  ")
		if nil != err {
			exitwithstatus.Message("configuration encode error: %s", err)
		}
		fmt.Printf("configuration: %s\n", b)
		return true

	default:
		return false
	}
}
