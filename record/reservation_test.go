// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/record"
)

func TestPackReservation(t *testing.T) {
	packed := record.CreateReservation(nil, 1000, 2147483648, ownerOne)

	expected := []byte{
		0xe8, 0x03, 0x00, 0x00, // expiry
		0x00, 0x00, 0x00, 0x80, 0x00, // value
	}
	expected = append(expected, ownerOne[:]...)

	assert.Equal(t, record.Packed(expected), packed, "packed reservation")
	assert.Equal(t, 29, record.ReservationLength, "reservation stride")
}

func TestReservationRoundTrip(t *testing.T) {
	items := []record.Reservation{
		{Expiry: 0, Value: 0, Recipient: ownerOne},
		{Expiry: 2147483647, Value: 549755813887, Recipient: ownerTwo},
		{Expiry: 17, Value: 10, Recipient: ownerOne},
	}

	for i, item := range items {
		packed, err := item.Pack(testLimits)
		require.Nil(t, err, "%d: pack error", i)

		v, err := record.NewReservationView(packed)
		require.Nil(t, err, "%d: view error", i)

		assert.Equal(t, item.Expiry, v.Expiry(), "%d: expiry", i)
		assert.Equal(t, item.Value, v.Value(), "%d: value", i)
		assert.Equal(t, item.Recipient, v.Recipient(), "%d: recipient", i)

		unpacked, err := record.UnpackReservation(packed)
		require.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, &item, unpacked, "%d: unpacked", i)

		expiry, err := record.ExpiryOf(packed)
		assert.Nil(t, err, "%d: expiry of", i)
		assert.Equal(t, item.Expiry, expiry, "%d: generic expiry", i)
	}
}

func TestReservationValueCeiling(t *testing.T) {
	packed := record.CreateReservation(testLimits, 100, 100000000, ownerOne)
	assert.False(t, packed.IsEmpty(), "value 100000000 accepted")

	packed = record.CreateReservation(testLimits, 100, 550000000000, ownerOne)
	assert.True(t, packed.IsEmpty(), "value 550000000000 rejected")

	r := record.Reservation{Expiry: 100, Value: 550000000000}
	_, err := r.Pack(testLimits)
	assert.Equal(t, fault.ErrReservationValueTooLarge, err, "value error")

	r = record.Reservation{Expiry: 1 << 32, Value: 1}
	_, err = r.Pack(testLimits)
	assert.Equal(t, fault.ErrExpiryTooLarge, err, "expiry error")
}

func TestReservationJSON(t *testing.T) {
	r := record.Reservation{Expiry: 5, Value: 10, Recipient: ownerOne}
	b, err := json.Marshal(r)
	require.Nil(t, err, "marshal")
	assert.Equal(t, `{"expiry":5,"value":10,"recipient":"`+ownerOne.String()+`"}`, string(b), "json")
}

func TestLimitsValidate(t *testing.T) {
	assert.Nil(t, record.DefaultLimits().Validate(), "default limits")

	limits := record.DefaultLimits()
	limits.InfoLength = -1
	assert.Equal(t, fault.ErrInvalidInfoLength, limits.Validate(), "negative info length")

	limits = record.DefaultLimits()
	limits.MaximumReservationValue = 0
	assert.Equal(t, fault.ErrInvalidCeiling, limits.Validate(), "zero ceiling")
}
