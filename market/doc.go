// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - the marketplace operations over stored record arrays
//
// Each mutating operation is one failure unit: the witness is checked,
// a transaction is begun, the arrays are read, transformed and written
// back, then the transaction is committed. Any error aborts the
// transaction so nothing is written.
//
// Storage layout:
//
//   Demands      "open"   array of demand records
//   Travels      "open"   array of travel records
//   Reservations holder   array of reservation records held by holder
package market
