// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runDemand(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkIdentity(c.String("owner"), ErrRequiredOwner)
	if nil != err {
		return err
	}
	expiry, err := checkExpiry(c.Uint64("expiry"))
	if nil != err {
		return err
	}
	info, err := checkInfo(c.String("info"))
	if nil != err {
		return err
	}
	repRequired := c.Uint64("reputation")
	itemSize := c.Uint64("size")
	itemValue := c.Uint64("value")

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "expiry: %d\n", expiry)
		fmt.Fprintf(m.e, "reputation: %d\n", repRequired)
		fmt.Fprintf(m.e, "size: %d\n", itemSize)
		fmt.Fprintf(m.e, "value: %d\n", itemValue)
		fmt.Fprintf(m.e, "info: %x\n", info)
	}

	receipt, err := m.market.OfferDemand(owner, expiry, repRequired, itemSize, itemValue, info)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runTravel(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkIdentity(c.String("owner"), ErrRequiredOwner)
	if nil != err {
		return err
	}
	expiry, err := checkExpiry(c.Uint64("expiry"))
	if nil != err {
		return err
	}
	repRequired := c.Uint64("reputation")
	carrySpace := c.Uint64("space")

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "expiry: %d\n", expiry)
		fmt.Fprintf(m.e, "reputation: %d\n", repRequired)
		fmt.Fprintf(m.e, "space: %d\n", carrySpace)
	}

	receipt, err := m.market.OfferTravel(owner, expiry, repRequired, carrySpace)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}
