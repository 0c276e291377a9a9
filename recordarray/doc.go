// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package recordarray - queries and updates over concatenated records
//
// A stored value holding many records of one type is simply the
// records one after another.  Since each record type has a constant
// length the i'th record starts at i*stride:
//
//   Travel       27
//   Reservation  29
//   Demand       32 + info length
//
// The buffer length must be a whole number of records, anything else
// is reported as fault.ErrMisalignedBuffer.  Records are never
// reordered and input buffers are never modified, every update returns
// a new buffer.
package recordarray
