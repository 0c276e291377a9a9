// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - one prefix separated table of the database
type PoolHandle struct {
	name     string
	prefix   byte
	limit    []byte
	database *Database
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Name - the pool field name
func (p *PoolHandle) Name() string {
	return p.name
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair in the open transaction
//
// panics if no transaction was begun
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.database.Lock()
	defer p.database.Unlock()
	if nil == p.database.db {
		logger.Panic("pool.Put nil database")
		return
	}
	err := p.database.access.Put(p.prefixKey(key), value)
	logger.PanicIfError("pool.Put", err)
}

// PutN - store a big endian uint64 value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Delete - remove a key in the open transaction
//
// panics if no transaction was begun
func (p *PoolHandle) Delete(key []byte) {
	p.database.Lock()
	defer p.database.Unlock()
	if nil == p.database.db {
		logger.Panic("pool.Delete nil database")
		return
	}
	err := p.database.access.Delete(p.prefixKey(key))
	logger.PanicIfError("pool.Delete", err)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	p.database.Lock()
	defer p.database.Unlock()
	if nil == p.database.db {
		return nil
	}
	value, err := p.database.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	p.database.Lock()
	defer p.database.Unlock()
	if nil == p.database.db {
		return false
	}
	value, err := p.database.access.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

// Map - run a function on every committed element of the pool
func (p *PoolHandle) Map(f func(key []byte, value []byte) error) error {
	return p.NewFetchCursor().Map(f)
}
