// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixedwidth - little endian integers in fixed width fields
//
// Integers are stored little endian in a field of known width with the
// high order bytes zero padded.  The width a value needs follows the
// minimal signed representation, so the top bit of the last byte of a
// field is never set:
//
//   value         minimum width
//   127           1
//   128           2
//   32767         2
//   32768         3
//   100000000     4
//   2147483647    4
//   2147483648    5
//
// All functions are pure and operate only on the slices passed in.
package fixedwidth
