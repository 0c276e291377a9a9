// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordarray_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/record"
	"github.com/bitmark-inc/carrierd/recordarray"
)

func TestReservedBalance(t *testing.T) {
	one := record.CreateReservation(limits, 1000, 10, alice)
	two := record.CreateReservation(limits, 1000, 10, bob)

	balance, err := recordarray.ReservedBalance(concat(t, one, two), 500)
	assert.Nil(t, err, "balance error")
	assert.Equal(t, uint64(20), balance, "both reservations held")

	expired := record.CreateReservation(limits, 1, 10, alice)
	balance, err = recordarray.ReservedBalance(concat(t, expired, two), 2)
	assert.Nil(t, err, "balance error")
	assert.Equal(t, uint64(10), balance, "expired reservation released")

	// expiry equal to now is already released
	balance, err = recordarray.ReservedBalance(concat(t, one, two), 1000)
	assert.Nil(t, err, "balance error")
	assert.Equal(t, uint64(0), balance, "all released")

	balance, err = recordarray.ReservedBalance(nil, 0)
	assert.Nil(t, err, "empty balance")
	assert.Equal(t, uint64(0), balance, "no reservations")

	_, err = recordarray.ReservedBalance(make([]byte, 30), 0)
	assert.Equal(t, fault.ErrMisalignedBuffer, err, "misaligned")
}

func TestFindReservation(t *testing.T) {
	buffer := concat(t,
		record.CreateReservation(limits, 1000, 10, carol),
		record.CreateReservation(limits, 1000, 20, carol),
		record.CreateReservation(limits, 1000, 30, carol),
	)

	index, err := recordarray.FindReservation(buffer, 20, carol)
	assert.Nil(t, err, "find error")
	assert.Equal(t, 1, index, "second reservation")

	index, err = recordarray.FindReservation(buffer, 25, carol)
	assert.Nil(t, err, "find error")
	assert.Equal(t, recordarray.NotFound, index, "no such value")
	assert.Equal(t, -1, index, "sentinel")

	index, err = recordarray.FindReservation(buffer, 10, carol)
	assert.Nil(t, err, "find error")
	assert.Equal(t, 0, index, "first reservation is index zero")
}

// both value and recipient must match
func TestFindReservationCompositeKey(t *testing.T) {
	buffer := concat(t,
		record.CreateReservation(limits, 1000, 20, alice),
		record.CreateReservation(limits, 1000, 10, bob),
		record.CreateReservation(limits, 1000, 20, bob),
	)

	index, err := recordarray.FindReservation(buffer, 20, bob)
	assert.Nil(t, err, "find error")
	assert.Equal(t, 2, index, "value and identity")

	index, err = recordarray.FindReservation(buffer, 10, alice)
	assert.Nil(t, err, "find error")
	assert.Equal(t, recordarray.NotFound, index, "identity matches another value only")

	index, err = recordarray.FindReservation(buffer, 20, carol)
	assert.Nil(t, err, "find error")
	assert.Equal(t, recordarray.NotFound, index, "value matches another identity only")

	index, err = recordarray.FindReservation(buffer[:30], 20, alice)
	assert.Equal(t, fault.ErrMisalignedBuffer, err, "misaligned")
	assert.Equal(t, recordarray.NotFound, index, "misaligned index")
}

func TestReplaceRecipient(t *testing.T) {
	first := record.CreateReservation(limits, 1000, 10, alice)
	second := record.CreateReservation(limits, 2000, 20, bob)
	buffer := concat(t, first, second)
	original := append([]byte{}, buffer...)

	replaced, err := recordarray.ReplaceRecipient(buffer, 1, carol)
	assert.Nil(t, err, "replace error")
	assert.Equal(t, original, buffer, "input not modified")
	assert.Equal(t, len(buffer), len(replaced), "same length")

	assert.Equal(t, []byte(first), replaced[:record.ReservationLength], "first record unchanged")

	v, err := record.NewReservationView(replaced[record.ReservationLength:])
	assert.Nil(t, err, "view error")
	assert.Equal(t, uint64(2000), v.Expiry(), "expiry preserved")
	assert.Equal(t, uint64(20), v.Value(), "value preserved")
	assert.Equal(t, carol, v.Recipient(), "new recipient")

	// only the twenty recipient bytes differ
	differences := 0
	for i := range buffer {
		if buffer[i] != replaced[i] {
			differences += 1
			assert.True(t, i >= record.ReservationLength+record.ReservationRecipientOffset, "difference at: %d", i)
		}
	}
	assert.True(t, differences > 0 && differences <= 20, "differences: %d", differences)
}

func TestReplaceRecipientIdempotent(t *testing.T) {
	buffer := concat(t,
		record.CreateReservation(limits, 1000, 10, alice),
		record.CreateReservation(limits, 2000, 20, bob),
	)

	replaced, err := recordarray.ReplaceRecipient(buffer, 1, bob)
	assert.Nil(t, err, "replace error")
	assert.True(t, bytes.Equal(buffer, replaced), "same identity is a no-op")
}

func TestReplaceRecipientBounds(t *testing.T) {
	buffer := concat(t, record.CreateReservation(limits, 1000, 10, alice))

	_, err := recordarray.ReplaceRecipient(buffer, 1, bob)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "past end")

	_, err = recordarray.ReplaceRecipient(buffer, -1, bob)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "negative index")

	_, err = recordarray.ReplaceRecipient(buffer[:28], 0, bob)
	assert.Equal(t, fault.ErrMisalignedBuffer, err, "misaligned")
}

// find then replace, the way a reassignment is done
func TestFindThenReplace(t *testing.T) {
	buffer := concat(t,
		record.CreateReservation(limits, 1000, 10, alice),
		record.CreateReservation(limits, 1000, 20, alice),
	)

	index, err := recordarray.FindReservation(buffer, 20, alice)
	assert.Nil(t, err, "find error")

	replaced, err := recordarray.ReplaceRecipient(buffer, index, bob)
	assert.Nil(t, err, "replace error")

	index, err = recordarray.FindReservation(replaced, 20, bob)
	assert.Nil(t, err, "find error")
	assert.Equal(t, 1, index, "moved to bob")

	index, err = recordarray.FindReservation(replaced, 20, alice)
	assert.Nil(t, err, "find error")
	assert.Equal(t, recordarray.NotFound, index, "no longer alice")
}
