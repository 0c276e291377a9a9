// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/carrierd/counter"
	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/identity"
	"github.com/bitmark-inc/carrierd/record"
	"github.com/bitmark-inc/carrierd/recordarray"
)

func TestOfferDemand(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	receipt, err := f.market.OfferDemand(id(alice), 2000, 10, 20, 500, makeInfo(1))
	require.Nil(t, err, "offer error")

	assert.Equal(t, 0, receipt.Index, "first demand")
	assert.Equal(t, uint64(1), receipt.Created, "demands created")
	assert.Equal(t, uint64(testFee.PerRecord+uint64(testLimits.DemandLength())*testFee.PerByte), receipt.Fee, "fee")

	d, err := record.UnpackDemand(record.Packed(receipt.Record), infoLength)
	require.Nil(t, err, "unpack error")
	assert.Equal(t, id(alice), d.Owner, "owner")
	assert.Equal(t, uint64(500), d.ItemValue, "value")

	stored := f.db.Pool.Demands.Get([]byte("open"))
	assert.Equal(t, []byte(receipt.Record), stored, "array holds the record")

	receipt, err = f.market.OfferDemand(id(bob), 3000, 0, 1, 1, makeInfo(2))
	require.Nil(t, err, "offer error")
	assert.Equal(t, 1, receipt.Index, "second demand")
	assert.Equal(t, uint64(2), receipt.Created, "demands created")
	assert.Equal(t, 2*testLimits.DemandLength(), len(f.db.Pool.Demands.Get([]byte("open"))), "two records")
}

func TestOfferDemandRejected(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	items := []struct {
		owner  identity.Identity
		expiry uint64
		size   uint64
		value  uint64
		info   []byte
		err    error
	}{
		{id(alice), startTime, 1, 1, makeInfo(0), fault.ErrDemandExpired},
		{id(carol), 2000, 1, 1, makeInfo(0), fault.ErrWitnessFailed},
		{id(alice), 2000, 128, 1, makeInfo(0), fault.ErrItemSizeTooLarge},
		{id(alice), 2000, 1, 100000001, makeInfo(0), fault.ErrItemValueTooLarge},
		{id(alice), 2000, 1, 1, []byte{1, 2, 3}, fault.ErrInfoLength},
		{id(alice), uint64(record.MaximumExpiry) + 1, 1, 1, makeInfo(0), fault.ErrExpiryTooLarge},
	}

	for i, item := range items {
		receipt, err := f.market.OfferDemand(item.owner, item.expiry, 0, item.size, item.value, item.info)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Nil(t, receipt, "%d: receipt", i)
	}

	assert.Nil(t, f.db.Pool.Demands.Get([]byte("open")), "nothing stored")
	assert.False(t, f.db.InTransaction(), "no transaction left open")
	assert.True(t, counter.New(f.db.Pool.Counters, counter.DemandsCreated).IsZero(), "nothing counted")
}

func TestMatchDemand(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	_, err := f.market.OfferDemand(id(alice), 1100, 0, 10, 1, makeInfo(1))
	require.Nil(t, err, "offer error")
	_, err = f.market.OfferDemand(id(bob), 5000, 0, 100, 1, makeInfo(2))
	require.Nil(t, err, "offer error")
	third, err := f.market.OfferDemand(id(alice), 5000, 0, 10, 1, makeInfo(3))
	require.Nil(t, err, "offer error")

	// the first expires, the second is too large
	f.clock.now = 1101
	found, err := f.market.MatchDemand(50, 20)
	require.Nil(t, err, "match error")
	assert.Equal(t, record.Packed(third.Record), found, "third demand")

	found, err = f.market.MatchDemand(50, 9)
	require.Nil(t, err, "match error")
	assert.True(t, found.IsEmpty(), "no demand fits")
}

func TestMatchDemandNothingOffered(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	found, err := f.market.MatchDemand(100, 100)
	assert.Nil(t, err, "match error")
	assert.True(t, found.IsEmpty(), "empty market")
}

func TestOfferTravel(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	_, err := f.market.OfferTravel(id(carol), 2000, 0, 10)
	assert.Equal(t, fault.ErrWitnessFailed, err, "carol cannot act")

	_, err = f.market.OfferTravel(id(bob), 999, 0, 10)
	assert.Equal(t, fault.ErrTravelExpired, err, "expired")

	_, err = f.market.OfferTravel(id(bob), 2000, 0, 128)
	assert.Equal(t, fault.ErrCarrySpaceTooLarge, err, "carry space")

	small, err := f.market.OfferTravel(id(bob), 2000, 0, 10)
	require.Nil(t, err, "offer error")
	large, err := f.market.OfferTravel(id(alice), 2000, 30, 127)
	require.Nil(t, err, "offer error")
	assert.Equal(t, uint64(2), large.Created, "travels created")
	assert.Equal(t, testFee.PerRecord+record.TravelLength*testFee.PerByte, large.Fee, "fee")

	found, err := f.market.MatchTravel(10, 5)
	require.Nil(t, err, "match error")
	assert.Equal(t, record.Packed(small.Record), found, "first travel")

	found, err = f.market.MatchTravel(10, 50)
	require.Nil(t, err, "match error")
	assert.True(t, found.IsEmpty(), "reputation too low for large")

	found, err = f.market.MatchTravel(30, 50)
	require.Nil(t, err, "match error")
	assert.Equal(t, record.Packed(large.Record), found, "large travel")

	f.clock.now = 2000
	found, err = f.market.MatchTravel(30, 5)
	require.Nil(t, err, "match error")
	assert.True(t, found.IsEmpty(), "all expired")

	n, err := recordarray.CountLive(f.db.Pool.Travels.Get([]byte("open")), record.TravelLength, 0)
	require.Nil(t, err, "count error")
	assert.Equal(t, 2, n, "still stored until pruned")
}
