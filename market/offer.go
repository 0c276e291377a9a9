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

// OfferDemand - add a demand to the open demands
func (m *Market) OfferDemand(owner identity.Identity, expiry uint64, repRequired uint64, itemSize uint64, itemValue uint64, info []byte) (*Receipt, error) {
	m.Lock()
	defer m.Unlock()

	if _, err := m.check(owner, expiry, fault.ErrDemandExpired); nil != err {
		return nil, err
	}

	demand := record.Demand{
		Expiry:      expiry,
		ItemValue:   itemValue,
		Owner:       owner,
		RepRequired: repRequired,
		ItemSize:    itemSize,
		Info:        info,
	}
	packed, err := demand.Pack(m.limits)
	if nil != err {
		return nil, err
	}

	receipt, err := m.add(m.stores.Demands, openKey, packed, counter.DemandsCreated)
	if nil != err {
		return nil, err
	}
	m.log.Infof("demand: owner: %s  expiry: %d  size: %d  index: %d", owner, expiry, itemSize, receipt.Index)
	return receipt, nil
}

// OfferTravel - add a travel to the open travels
func (m *Market) OfferTravel(owner identity.Identity, expiry uint64, repRequired uint64, carrySpace uint64) (*Receipt, error) {
	m.Lock()
	defer m.Unlock()

	if _, err := m.check(owner, expiry, fault.ErrTravelExpired); nil != err {
		return nil, err
	}

	travel := record.Travel{
		Expiry:      expiry,
		RepRequired: repRequired,
		CarrySpace:  carrySpace,
		Owner:       owner,
	}
	packed, err := travel.Pack()
	if nil != err {
		return nil, err
	}

	receipt, err := m.add(m.stores.Travels, openKey, packed, counter.TravelsCreated)
	if nil != err {
		return nil, err
	}
	m.log.Infof("travel: owner: %s  expiry: %d  space: %d  index: %d", owner, expiry, carrySpace, receipt.Index)
	return receipt, nil
}

// MatchDemand - the first open demand a carrier can take now
//
// an empty record is returned if nothing matches
func (m *Market) MatchDemand(reputation uint64, carrySpace uint64) (record.Packed, error) {
	m.Lock()
	defer m.Unlock()

	buffer := m.stores.Demands.Get(openKey)
	return recordarray.FindMatchableDemand(buffer, m.limits.InfoLength, reputation, carrySpace, m.clock.Now())
}

// MatchTravel - the first open travel that can take an item now
//
// an empty record is returned if nothing matches
func (m *Market) MatchTravel(reputation uint64, itemSize uint64) (record.Packed, error) {
	m.Lock()
	defer m.Unlock()

	buffer := m.stores.Travels.Get(openKey)
	return recordarray.FindMatchableTravel(buffer, reputation, itemSize, m.clock.Now())
}

// append a packed record to the array at key, charging for the growth
//
// caller holds the market lock
func (m *Market) add(store Store, key []byte, packed record.Packed, counterName string) (*Receipt, error) {
	receipt := &Receipt{
		Record: record.HexBytes(packed),
	}
	err := m.update(func() error {
		a, err := recordarray.New(store.Get(key), len(packed))
		if nil != err {
			return err
		}
		a, err = a.Append(packed)
		if nil != err {
			return err
		}
		fee, err := m.fee.ForBytes(len(packed))
		if nil != err {
			return err
		}
		store.Put(key, a.Bytes())

		receipt.Index = a.Count() - 1
		receipt.Fee = fee
		receipt.Created = counter.New(m.stores.Counters, counterName).Increment()
		return nil
	})
	if nil != err {
		return nil, err
	}
	return receipt, nil
}
