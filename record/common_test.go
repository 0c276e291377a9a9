// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"github.com/bitmark-inc/carrierd/identity"
	"github.com/bitmark-inc/carrierd/record"
)

// identities for testing
var (
	ownerOne = makeIdentity(0x10)
	ownerTwo = makeIdentity(0x20)
)

// short info blobs keep the expected byte arrays readable
var testLimits = &record.Limits{
	InfoLength:              4,
	MaximumItemValue:        record.MaximumValue,
	MaximumReservationValue: record.MaximumValue,
}

func makeIdentity(base byte) identity.Identity {
	id := identity.Identity{}
	for i := range id {
		id[i] = base + byte(i)
	}
	return id
}
