// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/carrierd/counter"
	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/identity"
	"github.com/bitmark-inc/carrierd/record"
	"github.com/bitmark-inc/carrierd/recordarray"
)

// Reserve - hold value for a recipient until expiry
func (m *Market) Reserve(holder identity.Identity, expiry uint64, value uint64, recipient identity.Identity) (*Receipt, error) {
	m.Lock()
	defer m.Unlock()

	if _, err := m.check(holder, expiry, fault.ErrReservationExpired); nil != err {
		return nil, err
	}

	reservation := record.Reservation{
		Expiry:    expiry,
		Value:     value,
		Recipient: recipient,
	}
	packed, err := reservation.Pack(m.limits)
	if nil != err {
		return nil, err
	}

	receipt, err := m.add(m.stores.Reservations, holder.Bytes(), packed, counter.ReservationsCreated)
	if nil != err {
		return nil, err
	}
	m.log.Infof("reserve: holder: %s  value: %d  recipient: %s  expiry: %d", holder, value, recipient, expiry)
	return receipt, nil
}

// ReservedBalance - total value the holder still has reserved now
func (m *Market) ReservedBalance(holder identity.Identity) (uint64, error) {
	m.Lock()
	defer m.Unlock()

	buffer := m.stores.Reservations.Get(holder.Bytes())
	return recordarray.ReservedBalance(buffer, m.clock.Now())
}

// Reservations - decoded reservations of a holder, expired ones included
func (m *Market) Reservations(holder identity.Identity) ([]*record.Reservation, error) {
	m.Lock()
	defer m.Unlock()

	a, err := recordarray.New(m.stores.Reservations.Get(holder.Bytes()), record.ReservationLength)
	if nil != err {
		return nil, err
	}
	result := make([]*record.Reservation, 0, a.Count())
	for i := 0; i < a.Count(); i += 1 {
		r, err := a.Record(i)
		if nil != err {
			return nil, err
		}
		reservation, err := record.UnpackReservation(r)
		if nil != err {
			return nil, err
		}
		result = append(result, reservation)
	}
	return result, nil
}

// Reassign - move the first reservation of value for recipient to
// newRecipient
//
// expiry and value are unchanged
func (m *Market) Reassign(holder identity.Identity, value uint64, recipient identity.Identity, newRecipient identity.Identity) error {
	m.Lock()
	defer m.Unlock()

	if !m.witness.CheckWitness(holder) {
		return fault.ErrWitnessFailed
	}

	key := holder.Bytes()
	err := m.update(func() error {
		buffer := m.stores.Reservations.Get(key)
		index, err := findReservation(buffer, value, recipient)
		if nil != err {
			return err
		}
		replaced, err := recordarray.ReplaceRecipient(buffer, index, newRecipient)
		if nil != err {
			return err
		}
		m.stores.Reservations.Put(key, replaced)
		return nil
	})
	if nil != err {
		return err
	}
	m.log.Infof("reassign: holder: %s  value: %d  from: %s  to: %s", holder, value, recipient, newRecipient)
	return nil
}

// Release - drop the first reservation of value for recipient
func (m *Market) Release(holder identity.Identity, value uint64, recipient identity.Identity) error {
	m.Lock()
	defer m.Unlock()

	if !m.witness.CheckWitness(holder) {
		return fault.ErrWitnessFailed
	}

	key := holder.Bytes()
	err := m.update(func() error {
		buffer := m.stores.Reservations.Get(key)
		index, err := findReservation(buffer, value, recipient)
		if nil != err {
			return err
		}
		a, err := recordarray.New(buffer, record.ReservationLength)
		if nil != err {
			return err
		}
		a, err = a.Remove(index)
		if nil != err {
			return err
		}
		if 0 == a.Count() {
			m.stores.Reservations.Delete(key)
		} else {
			m.stores.Reservations.Put(key, a.Bytes())
		}
		return nil
	})
	if nil != err {
		return err
	}
	m.log.Infof("release: holder: %s  value: %d  recipient: %s", holder, value, recipient)
	return nil
}

// the index of a reservation or ErrReservationNotFound
func findReservation(buffer []byte, value uint64, recipient identity.Identity) (int, error) {
	index, err := recordarray.FindReservation(buffer, value, recipient)
	if nil != err {
		return recordarray.NotFound, err
	}
	if recordarray.NotFound == index {
		return recordarray.NotFound, fault.ErrReservationNotFound
	}
	return index, nil
}
