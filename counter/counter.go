// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - monotonic counters kept in a storage pool
package counter

// names of the marketplace counters
const (
	DemandsCreated      = "demands-created"
	TravelsCreated      = "travels-created"
	ReservationsCreated = "reservations-created"

	routePrefix = "route:"
)

// Names - the fixed counters in report order
var Names = []string{
	DemandsCreated,
	TravelsCreated,
	ReservationsCreated,
}

// Pool - where counter values live, as big endian uint64
type Pool interface {
	GetN(key []byte) (uint64, bool)
	PutN(key []byte, value uint64)
}

// Counter - a named counter in a pool
//
// writes go to the pool's open transaction so an increment is only
// kept if the transaction commits
type Counter struct {
	pool Pool
	key  []byte
}

// New - the counter called name
func New(pool Pool, name string) *Counter {
	return &Counter{
		pool: pool,
		key:  []byte(name),
	}
}

// Route - the usage counter of a route
func Route(pool Pool, route string) *Counter {
	return New(pool, routePrefix+route)
}

// RouteName - the counter name used for a route
func RouteName(route string) string {
	return routePrefix + route
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	n, _ := c.pool.GetN(c.key)
	n += 1
	c.pool.PutN(c.key, n)
	return n
}

// Uint64 - returns current value, zero if never incremented
func (c *Counter) Uint64() uint64 {
	n, _ := c.pool.GetN(c.key)
	return n
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

// Name - the counter name
func (c *Counter) Name() string {
	return string(c.key)
}
