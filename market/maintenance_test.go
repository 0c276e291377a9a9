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
	"github.com/bitmark-inc/carrierd/record"
)

func TestPrune(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	_, err := f.market.OfferDemand(id(alice), 1100, 0, 1, 1, makeInfo(1))
	require.Nil(t, err, "offer error")
	kept, err := f.market.OfferDemand(id(alice), 5000, 0, 1, 1, makeInfo(2))
	require.Nil(t, err, "offer error")
	_, err = f.market.OfferTravel(id(bob), 1100, 0, 1)
	require.Nil(t, err, "offer error")
	_, err = f.market.Reserve(id(alice), 1100, 10, id(bob))
	require.Nil(t, err, "reserve error")
	_, err = f.market.Reserve(id(bob), 1100, 10, id(alice))
	require.Nil(t, err, "reserve error")
	_, err = f.market.Reserve(id(bob), 5000, 20, id(alice))
	require.Nil(t, err, "reserve error")

	f.clock.now = 1100
	pruned, err := f.market.Prune()
	require.Nil(t, err, "prune error")
	assert.Equal(t, 1, pruned.Demands, "demands")
	assert.Equal(t, 1, pruned.Travels, "travels")
	assert.Equal(t, 2, pruned.Reservations, "reservations")

	assert.Equal(t, []byte(kept.Record), f.db.Pool.Demands.Get([]byte("open")), "live demand")
	assert.False(t, f.db.Pool.Travels.Has([]byte("open")), "travels deleted")
	assert.False(t, f.db.Pool.Reservations.Has(id(alice).Bytes()), "alice reservations deleted")
	assert.Equal(t, record.ReservationLength, len(f.db.Pool.Reservations.Get(id(bob).Bytes())), "bob keeps one")

	pruned, err = f.market.Prune()
	require.Nil(t, err, "prune error")
	assert.Equal(t, 0, pruned.Demands+pruned.Travels+pruned.Reservations, "nothing more")
}

func TestRouteUsed(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	for i := uint64(1); i <= 3; i += 1 {
		n, err := f.market.RouteUsed("bkk-cnx")
		require.Nil(t, err, "route error")
		assert.Equal(t, i, n, "count")
	}

	_, err := f.market.RouteUsed("")
	assert.Equal(t, fault.ErrEmptyRoute, err, "empty route")

	n, found := f.db.Pool.Counters.GetN([]byte(counter.RouteName("bkk-cnx")))
	assert.True(t, found, "stored")
	assert.Equal(t, uint64(3), n, "persisted count")
}

func TestCounters(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	_, err := f.market.OfferDemand(id(alice), 1100, 0, 1, 1, makeInfo(1))
	require.Nil(t, err, "offer error")
	_, err = f.market.OfferDemand(id(alice), 5000, 0, 1, 1, makeInfo(2))
	require.Nil(t, err, "offer error")
	_, err = f.market.OfferTravel(id(bob), 5000, 0, 1)
	require.Nil(t, err, "offer error")
	_, err = f.market.RouteUsed("north")
	require.Nil(t, err, "route error")

	f.clock.now = 1200
	status, err := f.market.Counters("north", "south")
	require.Nil(t, err, "counters error")

	assert.Equal(t, uint64(2), status.Counters[counter.DemandsCreated], "demands created")
	assert.Equal(t, uint64(1), status.Counters[counter.TravelsCreated], "travels created")
	assert.Equal(t, uint64(0), status.Counters[counter.ReservationsCreated], "reservations created")
	assert.Equal(t, 1, status.OpenDemands, "live demands")
	assert.Equal(t, 1, status.OpenTravels, "live travels")
	assert.Equal(t, uint64(1), status.Routes["north"], "north")
	assert.Equal(t, uint64(0), status.Routes["south"], "south")
	assert.Equal(t, uint64(1200), status.CurrentTime, "time")

	status, err = f.market.Counters()
	require.Nil(t, err, "counters error")
	assert.Nil(t, status.Routes, "no routes requested")
}
