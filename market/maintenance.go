// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/carrierd/counter"
	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/record"
	"github.com/bitmark-inc/carrierd/recordarray"
)

// Pruned - number of expired records removed
type Pruned struct {
	Demands      int `json:"demands"`
	Travels      int `json:"travels"`
	Reservations int `json:"reservations"`
}

// Prune - remove every record whose expiry has passed
func (m *Market) Prune() (*Pruned, error) {
	m.Lock()
	defer m.Unlock()

	now := m.clock.Now()
	result := &Pruned{}

	err := m.update(func() error {
		n, err := prune(m.stores.Demands, openKey, m.limits.DemandLength(), now)
		if nil != err {
			return err
		}
		result.Demands = n

		n, err = prune(m.stores.Travels, openKey, record.TravelLength, now)
		if nil != err {
			return err
		}
		result.Travels = n

		// the cursor sees committed data so writes do not disturb it
		return m.stores.Reservations.Map(func(key []byte, value []byte) error {
			n, err := pruneBuffer(m.stores.Reservations, key, value, record.ReservationLength, now)
			result.Reservations += n
			return err
		})
	})
	if nil != err {
		return nil, err
	}
	m.log.Infof("prune: now: %d  demands: %d  travels: %d  reservations: %d",
		now, result.Demands, result.Travels, result.Reservations)
	return result, nil
}

func prune(store Store, key []byte, stride int, now uint64) (int, error) {
	return pruneBuffer(store, key, store.Get(key), stride, now)
}

// write back the live records of buffer, or delete the key if none remain
func pruneBuffer(store Store, key []byte, buffer []byte, stride int, now uint64) (int, error) {
	if 0 == len(buffer) {
		return 0, nil
	}
	kept, err := recordarray.RemoveExpired(buffer, stride, now)
	if nil != err {
		return 0, err
	}
	removed := (len(buffer) - len(kept)) / stride
	switch {
	case 0 == removed:
	case 0 == len(kept):
		store.Delete(key)
	default:
		store.Put(key, kept)
	}
	return removed, nil
}

// RouteUsed - count one use of a route, returns the new count
func (m *Market) RouteUsed(route string) (uint64, error) {
	m.Lock()
	defer m.Unlock()

	if "" == route {
		return 0, fault.ErrEmptyRoute
	}
	n := uint64(0)
	err := m.update(func() error {
		n = counter.Route(m.stores.Counters, route).Increment()
		return nil
	})
	if nil != err {
		return 0, err
	}
	m.log.Debugf("route: %q  used: %d", route, n)
	return n, nil
}

// Status - marketplace counters and open record counts
type Status struct {
	Counters    map[string]uint64 `json:"counters"`
	OpenDemands int               `json:"openDemands"`
	OpenTravels int               `json:"openTravels"`
	Routes      map[string]uint64 `json:"routes,omitempty"`
	CurrentTime uint64            `json:"currentTime"`
}

// Counters - the counter values and the number of live open records
//
// the usage of each route given is included
func (m *Market) Counters(routes ...string) (*Status, error) {
	m.Lock()
	defer m.Unlock()

	now := m.clock.Now()
	status := &Status{
		Counters:    make(map[string]uint64),
		CurrentTime: now,
	}
	for _, name := range counter.Names {
		status.Counters[name] = counter.New(m.stores.Counters, name).Uint64()
	}
	if len(routes) > 0 {
		status.Routes = make(map[string]uint64)
		for _, route := range routes {
			status.Routes[route] = counter.Route(m.stores.Counters, route).Uint64()
		}
	}

	var err error
	status.OpenDemands, err = recordarray.CountLive(m.stores.Demands.Get(openKey), m.limits.DemandLength(), now)
	if nil != err {
		return nil, err
	}
	status.OpenTravels, err = recordarray.CountLive(m.stores.Travels.Get(openKey), record.TravelLength, now)
	if nil != err {
		return nil, err
	}
	return status, nil
}
