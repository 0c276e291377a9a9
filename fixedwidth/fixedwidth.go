// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedwidth

import (
	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/identity"
)

// MaximumWidth - widest integer field supported
const MaximumWidth = 8

// MaximumValue - largest value that fits a field of the given width
//
// returns zero for an unsupported width
func MaximumValue(width int) uint64 {
	if width < 1 || width > MaximumWidth {
		return 0
	}
	return 1<<(8*uint(width)-1) - 1
}

// MinimumWidth - the number of bytes required to hold value
//
// values above the range of an eight byte field return MaximumWidth+1
func MinimumWidth(value uint64) int {
	for width := 1; width <= MaximumWidth; width += 1 {
		if value <= MaximumValue(width) {
			return width
		}
	}
	return MaximumWidth + 1
}

// Fits - check that value can be stored in width bytes
func Fits(value uint64, width int) bool {
	if width < 1 || width > MaximumWidth {
		return false
	}
	return value <= MaximumValue(width)
}

// Encode - value as exactly width little endian bytes
func Encode(value uint64, width int) ([]byte, error) {
	return Append(make([]byte, 0, width), value, width)
}

// Append - add a width byte little endian value to the end of buffer
//
// buffer is returned unchanged on error
func Append(buffer []byte, value uint64, width int) ([]byte, error) {
	if width < 1 || width > MaximumWidth {
		return buffer, fault.ErrInvalidWidth
	}
	if !Fits(value, width) {
		return buffer, fault.ErrValueTooWide
	}
	for i := 0; i < width; i += 1 {
		buffer = append(buffer, byte(value))
		value >>= 8
	}
	return buffer, nil
}

// Put - overwrite width bytes of buffer starting at offset
func Put(buffer []byte, offset int, value uint64, width int) error {
	if width < 1 || width > MaximumWidth {
		return fault.ErrInvalidWidth
	}
	if offset < 0 || len(buffer)-offset < width {
		return fault.ErrBufferTooShort
	}
	if !Fits(value, width) {
		return fault.ErrValueTooWide
	}
	for i := 0; i < width; i += 1 {
		buffer[offset+i] = byte(value)
		value >>= 8
	}
	return nil
}

// Decode - read width little endian bytes starting at offset
func Decode(buffer []byte, offset int, width int) (uint64, error) {
	if width < 1 || width > MaximumWidth {
		return 0, fault.ErrInvalidWidth
	}
	if offset < 0 || len(buffer)-offset < width {
		return 0, fault.ErrBufferTooShort
	}
	value := uint64(0)
	for i := width - 1; i >= 0; i -= 1 {
		value = value<<8 | uint64(buffer[offset+i])
	}
	return value, nil
}

// CopyIdentity - fixed length identity starting at offset
func CopyIdentity(buffer []byte, offset int) (identity.Identity, error) {
	id := identity.Identity{}
	if offset < 0 || len(buffer)-offset < identity.Length {
		return id, fault.ErrBufferTooShort
	}
	copy(id[:], buffer[offset:offset+identity.Length])
	return id, nil
}

// PutIdentity - overwrite identity bytes of buffer starting at offset
func PutIdentity(buffer []byte, offset int, id identity.Identity) error {
	if offset < 0 || len(buffer)-offset < identity.Length {
		return fault.ErrBufferTooShort
	}
	copy(buffer[offset:], id[:])
	return nil
}
