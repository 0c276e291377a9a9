// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/carrierd/counter"
	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/identity"
	"github.com/bitmark-inc/carrierd/record"
	"github.com/bitmark-inc/carrierd/storage"
)

//go:generate mockgen -source=market.go -destination=mocks/market.go -package=mocks

// Store - byte addressable storage of one array per key
type Store interface {
	Get(key []byte) []byte
	Put(key []byte, value []byte)
	Delete(key []byte)
}

// IndexedStore - a store whose keys can be enumerated
type IndexedStore interface {
	Store
	Map(f func(key []byte, value []byte) error) error
}

// Transactor - groups writes into one atomic unit
type Transactor interface {
	Begin() error
	Commit() error
	Abort()
}

// Clock - current ledger time
type Clock interface {
	Now() uint64
}

// Witness - decides if the caller may act for an identity
type Witness interface {
	CheckWitness(identity.Identity) bool
}

// Stores - the pools used by a market
type Stores struct {
	Demands      Store
	Travels      Store
	Reservations IndexedStore
	Counters     counter.Pool
}

// Config - everything a market needs
type Config struct {
	Limits     *record.Limits
	Fee        storage.Fee
	Transactor Transactor
	Stores     Stores
	Clock      Clock
	Witness    Witness
}

// Receipt - result of adding a record
type Receipt struct {
	Record  record.HexBytes `json:"record"`
	Index   int             `json:"index"`
	Fee     uint64          `json:"fee"`
	Created uint64          `json:"created"`
}

// Market - serialises the operations on one set of stores
type Market struct {
	sync.Mutex

	log        *logger.L
	limits     *record.Limits
	fee        storage.Fee
	transactor Transactor
	stores     Stores
	clock      Clock
	witness    Witness
}

// key of the single open demand and travel arrays
var openKey = []byte("open")

// New - create a market from its collaborators
func New(config *Config) (*Market, error) {
	if nil == config.Transactor || nil == config.Clock || nil == config.Witness {
		return nil, fault.ErrInvalidCollaborator
	}
	s := config.Stores
	if nil == s.Demands || nil == s.Travels || nil == s.Reservations || nil == s.Counters {
		return nil, fault.ErrInvalidCollaborator
	}

	limits := config.Limits
	if nil == limits {
		limits = record.DefaultLimits()
	}
	if err := limits.Validate(); nil != err {
		return nil, err
	}

	m := &Market{
		log:        logger.New("market"),
		limits:     limits,
		fee:        config.Fee,
		transactor: config.Transactor,
		stores:     s,
		clock:      config.Clock,
		witness:    config.Witness,
	}
	m.log.Infof("limits: info: %d  item value: %d  reservation value: %d",
		limits.InfoLength, limits.MaximumItemValue, limits.MaximumReservationValue)
	return m, nil
}

// FromDatabase - a market using the pools of an open database
func FromDatabase(db *storage.Database, limits *record.Limits, fee storage.Fee, clock Clock, witness Witness) (*Market, error) {
	return New(&Config{
		Limits:     limits,
		Fee:        fee,
		Transactor: db,
		Stores: Stores{
			Demands:      db.Pool.Demands,
			Travels:      db.Pool.Travels,
			Reservations: db.Pool.Reservations,
			Counters:     db.Pool.Counters,
		},
		Clock:   clock,
		Witness: witness,
	})
}

// Limits - the limits records are validated against
func (m *Market) Limits() record.Limits {
	return *m.limits
}

// run f inside a transaction, committing only if it succeeds
//
// caller holds the market lock
func (m *Market) update(f func() error) error {
	err := m.transactor.Begin()
	if nil != err {
		return err
	}
	err = f()
	if nil != err {
		m.transactor.Abort()
		return err
	}
	return m.transactor.Commit()
}

// authorise an identity and check an expiry against the clock
func (m *Market) check(id identity.Identity, expiry uint64, expired error) (uint64, error) {
	if !m.witness.CheckWitness(id) {
		m.log.Warnf("witness failed for: %s", id)
		return 0, fault.ErrWitnessFailed
	}
	now := m.clock.Now()
	if expiry <= now {
		return now, expired
	}
	return now, nil
}
