// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/carrierd/fault"
)

// batch and cache overlay on top of the database
//
// callers hold the Database lock
type accessData struct {
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) *accessData {
	return &accessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *accessData) Begin() error {
	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

func (d *accessData) Put(key []byte, value []byte) error {
	if !d.inUse {
		return fault.ErrTransactionNotInUse
	}
	saved := make([]byte, len(value))
	copy(saved, value)
	d.cache.Set(dbPut, string(key), saved)
	d.batch.Put(key, saved)
	return nil
}

func (d *accessData) Delete(key []byte) error {
	if !d.inUse {
		return fault.ErrTransactionNotInUse
	}
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
	return nil
}

func (d *accessData) Commit() error {
	if !d.inUse {
		return fault.ErrTransactionNotInUse
	}
	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

func (d *accessData) Abort() {
	d.reset()
}

func (d *accessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// the number of buffered writes
func (d *accessData) Pending() int {
	return d.batch.Len()
}

// cache first so a transaction sees its own writes
func (d *accessData) Get(key []byte) ([]byte, error) {
	if value, op, found := d.cache.Get(string(key)); found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	if _, op, found := d.cache.Get(string(key)); found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

// iterators only see committed data
func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) InUse() bool {
	return d.inUse
}
