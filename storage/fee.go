// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"math"

	"github.com/bitmark-inc/carrierd/fault"
)

// default storage charges
const (
	DefaultFeePerByte   = 1
	DefaultFeePerRecord = 100
)

// Fee - cost of keeping bytes in the store
type Fee struct {
	PerByte   uint64 `gluamapper:"per_byte" json:"per_byte"`
	PerRecord uint64 `gluamapper:"per_record" json:"per_record"`
}

// DefaultFee - charges used when none are configured
func DefaultFee() Fee {
	return Fee{
		PerByte:   DefaultFeePerByte,
		PerRecord: DefaultFeePerRecord,
	}
}

// ForBytes - cost of storing n bytes as one record
func (f Fee) ForBytes(n int) (uint64, error) {
	if n < 0 {
		return 0, fault.ErrRecordLength
	}
	size := uint64(n)
	if 0 != f.PerByte && size > math.MaxUint64/f.PerByte {
		return 0, fault.ErrFeeOverflow
	}
	cost := size * f.PerByte
	if cost > math.MaxUint64-f.PerRecord {
		return 0, fault.ErrFeeOverflow
	}
	return cost + f.PerRecord, nil
}

// ForGrowth - cost of a value growing from oldLength to newLength
//
// shrinking or unchanged values are free
func (f Fee) ForGrowth(oldLength int, newLength int) (uint64, error) {
	if oldLength < 0 || newLength < 0 {
		return 0, fault.ErrRecordLength
	}
	if newLength <= oldLength {
		return 0, nil
	}
	return f.ForBytes(newLength - oldLength)
}
