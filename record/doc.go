// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - packed demand, travel and reservation records
//
// Every record is a fixed layout of little endian integers and 20 byte
// identities with no tags or length prefixes, so the byte length of
// each record type is a constant and arrays of records can be scanned
// by stride.
//
// Demand      expiry(4) ++ itemValue(5) ++ owner(20) ++ repRequired(2) ++ itemSize(1) ++ info(C)
// Travel      expiry(4) ++ repRequired(2) ++ carrySpace(1) ++ owner(20)
// Reservation expiry(4) ++ value(5) ++ recipient(20)
//
// C is the protocol wide info length from Limits.
//
// Pack validates every field first and returns a fault error.  The
// Create functions keep the byte level contract: an empty Packed
// means the record was rejected.
package record
