// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/carrierd/fault"
)

// FetchCursor - cursor structure
//
// a cursor only sees committed data
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {

	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// the lock is only held while the iterator is created so that f may
// write to the open transaction
func (cursor *FetchCursor) iterator() iterator.Iterator {
	d := cursor.pool.database
	d.Lock()
	defer d.Unlock()
	if nil == d.db {
		return nil
	}
	return d.access.Iterator(&cursor.maxRange)
}

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if cursor == nil {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	iter := cursor.iterator()
	if nil == iter {
		return nil, nil
	}

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		e := Element{
			Key:   dataKey,
			Value: dataValue,
		}
		results = append(results, e)
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	if n > 0 {
		cursor.advance(results[n-1].Key)
	}
	return results, err
}

// next start is the smallest key after the last one returned
func (cursor *FetchCursor) advance(last []byte) {
	start := make([]byte, 0, len(last)+2)
	start = append(start, cursor.pool.prefix)
	start = append(start, last...)
	cursor.maxRange.Start = append(start, 0x00)
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if cursor == nil {
		return fault.ErrInvalidCursor
	}

	iter := cursor.iterator()
	if nil == iter {
		return nil
	}

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if err != nil {
			break iterating
		}
	}
	iter.Release()
	if err == nil {
		err = iter.Error()
	}
	return err
}
