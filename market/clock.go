// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"time"
)

// SystemClock - ledger time is Unix seconds
type SystemClock struct{}

// Now - current Unix time
func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}
