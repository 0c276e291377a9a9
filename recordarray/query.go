// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordarray

import (
	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/identity"
	"github.com/bitmark-inc/carrierd/record"
)

// FindMatchableDemand - first demand a carrier can take
//
// a demand matches when all of:
//   expiry > now
//   repRequired <= reputation
//   itemSize <= carrySpace
//
// buffer order is the only order; an empty record is returned if
// nothing matches
func FindMatchableDemand(buffer []byte, infoLength int, reputation uint64, carrySpace uint64, now uint64) (record.Packed, error) {
	if infoLength < 0 {
		return record.Packed{}, fault.ErrInvalidInfoLength
	}
	a, err := New(buffer, record.DemandHeaderLength+infoLength)
	if nil != err {
		return record.Packed{}, err
	}

	index := a.Find(func(r record.Packed) bool {
		v, err := record.NewDemandView(r, infoLength)
		if nil != err {
			return false
		}
		return v.Expiry() > now &&
			v.RepRequired() <= reputation &&
			v.ItemSize() <= carrySpace
	})
	if NotFound == index {
		return record.Packed{}, nil
	}
	r, err := a.Record(index)
	if nil != err {
		return record.Packed{}, err
	}
	return clone(r), nil
}

// FindMatchableTravel - first travel that can take an item
//
// a travel matches when all of:
//   expiry > now
//   repRequired <= reputation
//   carrySpace >= itemSize
func FindMatchableTravel(buffer []byte, reputation uint64, itemSize uint64, now uint64) (record.Packed, error) {
	a, err := New(buffer, record.TravelLength)
	if nil != err {
		return record.Packed{}, err
	}

	index := a.Find(func(r record.Packed) bool {
		v, err := record.NewTravelView(r)
		if nil != err {
			return false
		}
		return v.Expiry() > now &&
			v.RepRequired() <= reputation &&
			v.CarrySpace() >= itemSize
	})
	if NotFound == index {
		return record.Packed{}, nil
	}
	r, err := a.Record(index)
	if nil != err {
		return record.Packed{}, err
	}
	return clone(r), nil
}

// ReservedBalance - total value still held by a reservation array
//
// a reservation with expiry <= now no longer holds anything
func ReservedBalance(buffer []byte, now uint64) (uint64, error) {
	a, err := New(buffer, record.ReservationLength)
	if nil != err {
		return 0, err
	}

	total := uint64(0)
	a.Find(func(r record.Packed) bool {
		v, err := record.NewReservationView(r)
		if nil == err && v.Expiry() > now {
			total += v.Value()
		}
		return false
	})
	return total, nil
}

// FindReservation - index of the first reservation with exactly this
// value and recipient, or NotFound
func FindReservation(buffer []byte, value uint64, recipient identity.Identity) (int, error) {
	a, err := New(buffer, record.ReservationLength)
	if nil != err {
		return NotFound, err
	}

	return a.Find(func(r record.Packed) bool {
		v, err := record.NewReservationView(r)
		if nil != err {
			return false
		}
		return v.Value() == value && v.Recipient() == recipient
	}), nil
}

// ReplaceRecipient - new buffer with the recipient of one reservation
// changed
//
// every other byte, including the expiry and value of the same record,
// is copied unchanged
func ReplaceRecipient(buffer []byte, index int, recipient identity.Identity) ([]byte, error) {
	a, err := New(buffer, record.ReservationLength)
	if nil != err {
		return nil, err
	}
	replaced, err := a.Replace(index, record.ReservationRecipientOffset, recipient[:])
	if nil != err {
		return nil, err
	}
	return replaced.Bytes(), nil
}

// RemoveExpired - new buffer without the records whose expiry <= now
//
// works for every record type since all start with the expiry
func RemoveExpired(buffer []byte, stride int, now uint64) ([]byte, error) {
	a, err := New(buffer, stride)
	if nil != err {
		return nil, err
	}
	kept := a.Filter(func(r record.Packed) bool {
		expiry, err := record.ExpiryOf(r)
		return nil == err && expiry > now
	})
	return kept.Bytes(), nil
}

// CountLive - number of records whose expiry > now
func CountLive(buffer []byte, stride int, now uint64) (int, error) {
	a, err := New(buffer, stride)
	if nil != err {
		return 0, err
	}
	count := 0
	a.Find(func(r record.Packed) bool {
		expiry, err := record.ExpiryOf(r)
		if nil == err && expiry > now {
			count += 1
		}
		return false
	})
	return count, nil
}
