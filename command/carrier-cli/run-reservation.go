// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/carrierd/identity"
	"github.com/bitmark-inc/carrierd/record"
)

type balanceReply struct {
	Holder       identity.Identity     `json:"holder"`
	Balance      uint64                `json:"balance"`
	Reservations []*record.Reservation `json:"reservations"`
}

type reservationReply struct {
	Holder    identity.Identity `json:"holder"`
	Value     uint64            `json:"value"`
	Recipient identity.Identity `json:"recipient"`
	Balance   uint64            `json:"balance"`
}

func runReserve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holder, err := checkIdentity(c.String("holder"), ErrRequiredHolder)
	if nil != err {
		return err
	}
	recipient, err := checkIdentity(c.String("recipient"), ErrRequiredRecipient)
	if nil != err {
		return err
	}
	expiry, err := checkExpiry(c.Uint64("expiry"))
	if nil != err {
		return err
	}
	value := c.Uint64("value")

	if m.verbose {
		fmt.Fprintf(m.e, "holder: %s\n", holder)
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
		fmt.Fprintf(m.e, "expiry: %d\n", expiry)
		fmt.Fprintf(m.e, "value: %d\n", value)
	}

	receipt, err := m.market.Reserve(holder, expiry, value, recipient)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holder, err := checkIdentity(c.String("holder"), ErrRequiredHolder)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "holder: %s\n", holder)
	}

	balance, err := m.market.ReservedBalance(holder)
	if nil != err {
		return err
	}
	reservations, err := m.market.Reservations(holder)
	if nil != err {
		return err
	}

	response := balanceReply{
		Holder:       holder,
		Balance:      balance,
		Reservations: reservations,
	}
	return printJson(m.w, response)
}

func runReassign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holder, err := checkIdentity(c.String("holder"), ErrRequiredHolder)
	if nil != err {
		return err
	}
	recipient, err := checkIdentity(c.String("recipient"), ErrRequiredRecipient)
	if nil != err {
		return err
	}
	newRecipient, err := checkIdentity(c.String("new-recipient"), ErrRequiredNewRecipient)
	if nil != err {
		return err
	}
	value := c.Uint64("value")

	if m.verbose {
		fmt.Fprintf(m.e, "holder: %s\n", holder)
		fmt.Fprintf(m.e, "recipient: %s -> %s\n", recipient, newRecipient)
		fmt.Fprintf(m.e, "value: %d\n", value)
	}

	err = m.market.Reassign(holder, value, recipient, newRecipient)
	if nil != err {
		return err
	}

	return reportReservation(m, holder, value, newRecipient)
}

func runRelease(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holder, err := checkIdentity(c.String("holder"), ErrRequiredHolder)
	if nil != err {
		return err
	}
	recipient, err := checkIdentity(c.String("recipient"), ErrRequiredRecipient)
	if nil != err {
		return err
	}
	value := c.Uint64("value")

	if m.verbose {
		fmt.Fprintf(m.e, "holder: %s\n", holder)
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
		fmt.Fprintf(m.e, "value: %d\n", value)
	}

	err = m.market.Release(holder, value, recipient)
	if nil != err {
		return err
	}

	return reportReservation(m, holder, value, recipient)
}

// print the changed reservation with the holder's remaining balance
func reportReservation(m *metadata, holder identity.Identity, value uint64, recipient identity.Identity) error {
	balance, err := m.market.ReservedBalance(holder)
	if nil != err {
		return err
	}

	response := reservationReply{
		Holder:    holder,
		Value:     value,
		Recipient: recipient,
		Balance:   balance,
	}
	return printJson(m.w, response)
}
