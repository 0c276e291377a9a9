// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/carrierd/record"
)

// a match that did not find anything has an empty record
type matchReply struct {
	Found  bool        `json:"found"`
	Demand interface{} `json:"demand,omitempty"`
	Travel interface{} `json:"travel,omitempty"`
}

func runMatchDemand(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	reputation := c.Uint64("reputation")
	carrySpace := c.Uint64("space")

	if m.verbose {
		fmt.Fprintf(m.e, "reputation: %d\n", reputation)
		fmt.Fprintf(m.e, "space: %d\n", carrySpace)
	}

	packed, err := m.market.MatchDemand(reputation, carrySpace)
	if nil != err {
		return err
	}

	reply := matchReply{}
	if len(packed) > 0 {
		demand, err := record.UnpackDemand(packed, m.market.Limits().InfoLength)
		if nil != err {
			return err
		}
		reply.Found = true
		reply.Demand = demand
	}

	return printJson(m.w, reply)
}

func runMatchTravel(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	reputation := c.Uint64("reputation")
	itemSize := c.Uint64("size")

	if m.verbose {
		fmt.Fprintf(m.e, "reputation: %d\n", reputation)
		fmt.Fprintf(m.e, "size: %d\n", itemSize)
	}

	packed, err := m.market.MatchTravel(reputation, itemSize)
	if nil != err {
		return err
	}

	reply := matchReply{}
	if len(packed) > 0 {
		travel, err := record.UnpackTravel(packed)
		if nil != err {
			return err
		}
		reply.Found = true
		reply.Travel = travel
	}

	return printJson(m.w, reply)
}
