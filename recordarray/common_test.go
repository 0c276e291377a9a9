// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordarray_test

import (
	"testing"

	"github.com/bitmark-inc/carrierd/identity"
	"github.com/bitmark-inc/carrierd/record"
)

const infoLength = 8

var (
	limits = &record.Limits{
		InfoLength:              infoLength,
		MaximumItemValue:        record.MaximumValue,
		MaximumReservationValue: record.MaximumValue,
	}

	alice = makeIdentity(0xa0)
	bob   = makeIdentity(0xb0)
	carol = makeIdentity(0xc0)
)

func makeIdentity(base byte) identity.Identity {
	id := identity.Identity{}
	for i := range id {
		id[i] = base + byte(i)
	}
	return id
}

func makeInfo(b byte) []byte {
	info := make([]byte, infoLength)
	for i := range info {
		info[i] = b
	}
	return info
}

// concatenate packed records, failing on any empty one
func concat(t *testing.T, records ...record.Packed) []byte {
	buffer := []byte{}
	for i, r := range records {
		if r.IsEmpty() {
			t.Fatalf("record %d was rejected", i)
		}
		buffer = append(buffer, r...)
	}
	return buffer
}
