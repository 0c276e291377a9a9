// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type routeReply struct {
	Route string `json:"route"`
	Used  uint64 `json:"used"`
}

func runRoute(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	route := c.String("name")
	if "" == route {
		return ErrRequiredRoute
	}

	if m.verbose {
		fmt.Fprintf(m.e, "route: %q\n", route)
	}

	used, err := m.market.RouteUsed(route)
	if nil != err {
		return err
	}

	return printJson(m.w, routeReply{Route: route, Used: used})
}

func runPrune(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pruned, err := m.market.Prune()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "removed: %d demands  %d travels  %d reservations\n", pruned.Demands, pruned.Travels, pruned.Reservations)
	}

	return printJson(m.w, pruned)
}

func runCounters(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	routes := c.StringSlice("route")

	if m.verbose {
		fmt.Fprintf(m.e, "routes: %q\n", routes)
	}

	status, err := m.market.Counters(routes...)
	if nil != err {
		return err
	}

	return printJson(m.w, status)
}
