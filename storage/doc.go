// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of record arrays in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. owner        = 20 byte identity
// 4. count        = big endian uint64 (8 bytes)
// 5. *array*      = concatenation of fixed length packed records, no length prefix
//
// Marketplace:
//
//   D ++ "open"                - open demands
//                                data: array of demand records
//   T ++ "open"                - open travels
//                                data: array of travel records
//   R ++ owner                 - reservations held by owner
//                                data: array of reservation records
//
// Counters:
//
//   N ++ name                  - monotonic counter
//                                data: count
//
// Testing:
//   Z ++ key                   - testing data
//
// All writes are buffered in a single batch transaction and become
// visible in the database only when the transaction is committed.
// While a transaction is open reads see its buffered writes.
package storage
