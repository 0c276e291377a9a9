// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/fixedwidth"
	"github.com/bitmark-inc/carrierd/identity"
)

// pack Demand
//
// all fields are validated before anything is written so a failure
// never produces a partial record
//
// a nil limits uses DefaultLimits()
func (demand *Demand) Pack(limits *Limits) (Packed, error) {
	if nil == limits {
		limits = DefaultLimits()
	}

	if demand.ItemSize > MaximumSize {
		return nil, fault.ErrItemSizeTooLarge
	}
	if demand.ItemValue > limits.itemValueCeiling() {
		return nil, fault.ErrItemValueTooLarge
	}
	if demand.Expiry > MaximumExpiry {
		return nil, fault.ErrExpiryTooLarge
	}
	if demand.RepRequired > MaximumRepRequired {
		return nil, fault.ErrRepRequiredTooLarge
	}
	if limits.InfoLength != len(demand.Info) {
		return nil, fault.ErrInfoLength
	}

	message := make(Packed, 0, limits.DemandLength())
	message = appendUint(message, demand.Expiry, expiryWidth)
	message = appendUint(message, demand.ItemValue, valueWidth)
	message = append(message, demand.Owner[:]...)
	message = appendUint(message, demand.RepRequired, repRequiredWidth)
	message = appendUint(message, demand.ItemSize, sizeWidth)
	return append(message, demand.Info...), nil
}

// pack Travel
func (travel *Travel) Pack() (Packed, error) {
	if travel.CarrySpace > MaximumSize {
		return nil, fault.ErrCarrySpaceTooLarge
	}
	if travel.Expiry > MaximumExpiry {
		return nil, fault.ErrExpiryTooLarge
	}
	if travel.RepRequired > MaximumRepRequired {
		return nil, fault.ErrRepRequiredTooLarge
	}

	message := make(Packed, 0, TravelLength)
	message = appendUint(message, travel.Expiry, expiryWidth)
	message = appendUint(message, travel.RepRequired, repRequiredWidth)
	message = appendUint(message, travel.CarrySpace, sizeWidth)
	return append(message, travel.Owner[:]...), nil
}

// pack Reservation
//
// a nil limits uses DefaultLimits()
func (reservation *Reservation) Pack(limits *Limits) (Packed, error) {
	if nil == limits {
		limits = DefaultLimits()
	}

	if reservation.Value > limits.reservationValueCeiling() {
		return nil, fault.ErrReservationValueTooLarge
	}
	if reservation.Expiry > MaximumExpiry {
		return nil, fault.ErrExpiryTooLarge
	}

	message := make(Packed, 0, ReservationLength)
	message = appendUint(message, reservation.Expiry, expiryWidth)
	message = appendUint(message, reservation.Value, valueWidth)
	return append(message, reservation.Recipient[:]...), nil
}

// CreateDemand - pack a demand, returning an empty record on any
// validation failure
func CreateDemand(limits *Limits, owner identity.Identity, expiry uint64, repRequired uint64, itemSize uint64, itemValue uint64, info []byte) Packed {
	demand := Demand{
		Expiry:      expiry,
		ItemValue:   itemValue,
		Owner:       owner,
		RepRequired: repRequired,
		ItemSize:    itemSize,
		Info:        info,
	}
	packed, err := demand.Pack(limits)
	if nil != err {
		return Packed{}
	}
	return packed
}

// CreateTravel - pack a travel, returning an empty record on any
// validation failure
func CreateTravel(owner identity.Identity, expiry uint64, repRequired uint64, carrySpace uint64) Packed {
	travel := Travel{
		Expiry:      expiry,
		RepRequired: repRequired,
		CarrySpace:  carrySpace,
		Owner:       owner,
	}
	packed, err := travel.Pack()
	if nil != err {
		return Packed{}
	}
	return packed
}

// CreateReservation - pack a reservation, returning an empty record on
// any validation failure
func CreateReservation(limits *Limits, expiry uint64, value uint64, recipient identity.Identity) Packed {
	reservation := Reservation{
		Expiry:    expiry,
		Value:     value,
		Recipient: recipient,
	}
	packed, err := reservation.Pack(limits)
	if nil != err {
		return Packed{}
	}
	return packed
}

// append a field whose range was already checked
func appendUint(buffer Packed, value uint64, width int) Packed {
	result, err := fixedwidth.Append(buffer, value, width)
	if nil != err {
		panic("record: unchecked field: " + err.Error())
	}
	return result
}
