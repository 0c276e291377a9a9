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

// DemandView - fixed offset access to a packed demand
//
// the length is checked once when the view is created, every accessor
// decodes directly from the packed bytes
type DemandView struct {
	packed     Packed
	infoLength int
}

// TravelView - fixed offset access to a packed travel
type TravelView struct {
	packed Packed
}

// ReservationView - fixed offset access to a packed reservation
type ReservationView struct {
	packed Packed
}

// NewDemandView - view a packed demand whose info blob is infoLength bytes
func NewDemandView(record Packed, infoLength int) (DemandView, error) {
	if infoLength < 0 || DemandHeaderLength+infoLength != len(record) {
		return DemandView{}, fault.ErrRecordLength
	}
	return DemandView{packed: record, infoLength: infoLength}, nil
}

// NewTravelView - view a packed travel
func NewTravelView(record Packed) (TravelView, error) {
	if TravelLength != len(record) {
		return TravelView{}, fault.ErrRecordLength
	}
	return TravelView{packed: record}, nil
}

// NewReservationView - view a packed reservation
func NewReservationView(record Packed) (ReservationView, error) {
	if ReservationLength != len(record) {
		return ReservationView{}, fault.ErrRecordLength
	}
	return ReservationView{packed: record}, nil
}

// Bytes - the underlying record
func (v DemandView) Bytes() Packed { return v.packed }

// Expiry - ledger time after which the demand cannot be matched
func (v DemandView) Expiry() uint64 { return uintAt(v.packed, demandExpiryOffset, expiryWidth) }

// ItemValue - declared value of the item
func (v DemandView) ItemValue() uint64 {
	return uintAt(v.packed, demandItemValueOffset, valueWidth)
}

// Owner - identity that created the demand
func (v DemandView) Owner() identity.Identity { return identityAt(v.packed, demandOwnerOffset) }

// RepRequired - reputation a carrier needs
func (v DemandView) RepRequired() uint64 {
	return uintAt(v.packed, demandRepRequiredOffset, repRequiredWidth)
}

// ItemSize - space the item occupies, 0..127
func (v DemandView) ItemSize() uint64 { return uintAt(v.packed, demandItemSizeOffset, sizeWidth) }

// Info - the info blob, shares storage with the record
func (v DemandView) Info() []byte {
	if len(v.packed) < demandInfoOffset+v.infoLength {
		return nil
	}
	return v.packed[demandInfoOffset : demandInfoOffset+v.infoLength]
}

// Unpack - copy all fields out to a Demand
func (v DemandView) Unpack() *Demand {
	info := make(HexBytes, len(v.Info()))
	copy(info, v.Info())
	return &Demand{
		Expiry:      v.Expiry(),
		ItemValue:   v.ItemValue(),
		Owner:       v.Owner(),
		RepRequired: v.RepRequired(),
		ItemSize:    v.ItemSize(),
		Info:        info,
	}
}

// Bytes - the underlying record
func (v TravelView) Bytes() Packed { return v.packed }

// Expiry - ledger time after which the travel cannot be matched
func (v TravelView) Expiry() uint64 { return uintAt(v.packed, travelExpiryOffset, expiryWidth) }

// RepRequired - reputation a shipper needs
func (v TravelView) RepRequired() uint64 {
	return uintAt(v.packed, travelRepRequiredOffset, repRequiredWidth)
}

// CarrySpace - space available, 0..127
func (v TravelView) CarrySpace() uint64 {
	return uintAt(v.packed, travelCarrySpaceOffset, sizeWidth)
}

// Owner - identity offering the capacity
func (v TravelView) Owner() identity.Identity { return identityAt(v.packed, travelOwnerOffset) }

// Unpack - copy all fields out to a Travel
func (v TravelView) Unpack() *Travel {
	return &Travel{
		Expiry:      v.Expiry(),
		RepRequired: v.RepRequired(),
		CarrySpace:  v.CarrySpace(),
		Owner:       v.Owner(),
	}
}

// Bytes - the underlying record
func (v ReservationView) Bytes() Packed { return v.packed }

// Expiry - ledger time at which the held value is released
func (v ReservationView) Expiry() uint64 {
	return uintAt(v.packed, reservationExpiryOffset, expiryWidth)
}

// Value - amount held
func (v ReservationView) Value() uint64 {
	return uintAt(v.packed, reservationValueOffset, valueWidth)
}

// Recipient - identity the value is held for
func (v ReservationView) Recipient() identity.Identity {
	return identityAt(v.packed, reservationRecipientOffset)
}

// Unpack - copy all fields out to a Reservation
func (v ReservationView) Unpack() *Reservation {
	return &Reservation{
		Expiry:    v.Expiry(),
		Value:     v.Value(),
		Recipient: v.Recipient(),
	}
}

// UnpackDemand - decode a complete demand record
func UnpackDemand(record Packed, infoLength int) (*Demand, error) {
	v, err := NewDemandView(record, infoLength)
	if nil != err {
		return nil, err
	}
	return v.Unpack(), nil
}

// UnpackTravel - decode a complete travel record
func UnpackTravel(record Packed) (*Travel, error) {
	v, err := NewTravelView(record)
	if nil != err {
		return nil, err
	}
	return v.Unpack(), nil
}

// UnpackReservation - decode a complete reservation record
func UnpackReservation(record Packed) (*Reservation, error) {
	v, err := NewReservationView(record)
	if nil != err {
		return nil, err
	}
	return v.Unpack(), nil
}

// ExpiryOf - the expiry of any record type
func ExpiryOf(record Packed) (uint64, error) {
	return fixedwidth.Decode(record, ExpiryOffset, expiryWidth)
}

// a zero view decodes as zero
func uintAt(buffer Packed, offset int, width int) uint64 {
	value, err := fixedwidth.Decode(buffer, offset, width)
	if nil != err {
		return 0
	}
	return value
}

func identityAt(buffer Packed, offset int) identity.Identity {
	id, err := fixedwidth.CopyIdentity(buffer, offset)
	if nil != err {
		return identity.Identity{}
	}
	return id
}
