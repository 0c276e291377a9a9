// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"

	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/fixedwidth"
	"github.com/bitmark-inc/carrierd/identity"
)

// Packed - packed records are just a byte slice
//
// an empty Packed is the result of a failed create
type Packed []byte

// IsEmpty - true for a failed create
func (record Packed) IsEmpty() bool {
	return 0 == len(record)
}

// widths of the integer fields
const (
	expiryWidth      = 4
	valueWidth       = 5
	repRequiredWidth = 2
	sizeWidth        = 1
)

// Demand layout:
//
//   expiry(4) ++ itemValue(5) ++ owner(20) ++ repRequired(2) ++ itemSize(1) ++ info(InfoLength)
const (
	demandExpiryOffset      = 0
	demandItemValueOffset   = demandExpiryOffset + expiryWidth
	demandOwnerOffset       = demandItemValueOffset + valueWidth
	demandRepRequiredOffset = demandOwnerOffset + identity.Length
	demandItemSizeOffset    = demandRepRequiredOffset + repRequiredWidth
	demandInfoOffset        = demandItemSizeOffset + sizeWidth

	// DemandHeaderLength - bytes before the info blob
	DemandHeaderLength = demandInfoOffset
)

// Travel layout:
//
//   expiry(4) ++ repRequired(2) ++ carrySpace(1) ++ owner(20)
const (
	travelExpiryOffset      = 0
	travelRepRequiredOffset = travelExpiryOffset + expiryWidth
	travelCarrySpaceOffset  = travelRepRequiredOffset + repRequiredWidth
	travelOwnerOffset       = travelCarrySpaceOffset + sizeWidth

	// TravelLength - bytes in a travel record
	TravelLength = travelOwnerOffset + identity.Length
)

// Reservation layout:
//
//   expiry(4) ++ value(5) ++ recipient(20)
const (
	reservationExpiryOffset    = 0
	reservationValueOffset     = reservationExpiryOffset + expiryWidth
	reservationRecipientOffset = reservationValueOffset + valueWidth

	// ReservationLength - bytes in a reservation record
	ReservationLength = reservationRecipientOffset + identity.Length

	// ReservationRecipientOffset - position of the recipient in a reservation
	ReservationRecipientOffset = reservationRecipientOffset
)

// ExpiryOffset - every record type starts with its expiry
const ExpiryOffset = 0

// field limits implied by the widths
var (
	MaximumExpiry      = fixedwidth.MaximumValue(expiryWidth)
	MaximumRepRequired = fixedwidth.MaximumValue(repRequiredWidth)
	MaximumSize        = fixedwidth.MaximumValue(sizeWidth) // item size and carry space
	MaximumValue       = fixedwidth.MaximumValue(valueWidth)
)

// Limits - protocol constants that are not implied by field widths
type Limits struct {
	InfoLength              int    `gluamapper:"info_length" json:"info_length"`
	MaximumItemValue        uint64 `gluamapper:"maximum_item_value" json:"maximum_item_value"`
	MaximumReservationValue uint64 `gluamapper:"maximum_reservation_value" json:"maximum_reservation_value"`
}

// defaults for Limits
const (
	DefaultInfoLength = 64
	maximumInfoLength = 4096
)

// DefaultLimits - limits used when none are configured
func DefaultLimits() *Limits {
	return &Limits{
		InfoLength:              DefaultInfoLength,
		MaximumItemValue:        MaximumValue,
		MaximumReservationValue: MaximumValue,
	}
}

// Validate - check that limits are usable
func (limits *Limits) Validate() error {
	if limits.InfoLength < 0 || limits.InfoLength > maximumInfoLength {
		return fault.ErrInvalidInfoLength
	}
	if 0 == limits.MaximumItemValue || 0 == limits.MaximumReservationValue {
		return fault.ErrInvalidCeiling
	}
	return nil
}

// DemandLength - bytes in a demand record, constant for a given InfoLength
func (limits *Limits) DemandLength() int {
	return DemandHeaderLength + limits.InfoLength
}

// ceilings are never above what the field can store
func (limits *Limits) itemValueCeiling() uint64 {
	if limits.MaximumItemValue > MaximumValue {
		return MaximumValue
	}
	return limits.MaximumItemValue
}

func (limits *Limits) reservationValueCeiling() uint64 {
	if limits.MaximumReservationValue > MaximumValue {
		return MaximumValue
	}
	return limits.MaximumReservationValue
}

// HexBytes - opaque bytes shown as hex in JSON
type HexBytes []byte

// MarshalText - convert to hex text
func (b HexBytes) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(b))
	buffer := make([]byte, size)
	hex.Encode(buffer, b)
	return buffer, nil
}

// UnmarshalText - convert from hex text
func (b *HexBytes) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*b = buffer[:n]
	return nil
}

// Demand - the unpacked demand structure
type Demand struct {
	Expiry      uint64            `json:"expiry"`      // ledger time
	ItemValue   uint64            `json:"itemValue"`   // value of the carried item
	Owner       identity.Identity `json:"owner"`       // base58
	RepRequired uint64            `json:"repRequired"` // carrier reputation required
	ItemSize    uint64            `json:"itemSize"`    // 0..127
	Info        HexBytes          `json:"info"`        // exactly InfoLength bytes
}

// Travel - the unpacked travel structure
type Travel struct {
	Expiry      uint64            `json:"expiry"`      // ledger time
	RepRequired uint64            `json:"repRequired"` // shipper reputation required
	CarrySpace  uint64            `json:"carrySpace"`  // 0..127
	Owner       identity.Identity `json:"owner"`       // base58
}

// Reservation - the unpacked reservation structure
type Reservation struct {
	Expiry    uint64            `json:"expiry"`    // funds are released after this time
	Value     uint64            `json:"value"`     // amount held
	Recipient identity.Identity `json:"recipient"` // base58
}
