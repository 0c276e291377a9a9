// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - the writes of the open transaction
type Cache interface {
	Get(string) ([]byte, dbOperation, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// entries live until the transaction ends
const (
	cleanupInterval = 10 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

// a delete is reported as found so it can hide the database value
func (c *dbCache) Get(key string) ([]byte, dbOperation, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbPut, false
	}

	data := obj.(cacheData)
	return data.value, data.op, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
