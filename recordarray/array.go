// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordarray

import (
	"bytes"

	"github.com/bitmark-inc/carrierd/fault"
	"github.com/bitmark-inc/carrierd/record"
)

// NotFound - index returned when no record matches
const NotFound = -1

// Array - a buffer of same length records
type Array struct {
	buffer []byte
	stride int
}

// New - check that buffer is a whole number of stride length records
func New(buffer []byte, stride int) (Array, error) {
	if stride <= 0 {
		return Array{}, fault.ErrRecordLength
	}
	if 0 != len(buffer)%stride {
		return Array{}, fault.ErrMisalignedBuffer
	}
	return Array{buffer: buffer, stride: stride}, nil
}

// Count - number of records
func (a Array) Count() int {
	if 0 == a.stride {
		return 0
	}
	return len(a.buffer) / a.stride
}

// Stride - bytes per record
func (a Array) Stride() int {
	return a.stride
}

// Bytes - the whole buffer
func (a Array) Bytes() []byte {
	return a.buffer
}

// Record - the record at index
//
// the result shares storage with the array, copy it if it must be
// preserved across updates
func (a Array) Record(index int) (record.Packed, error) {
	if index < 0 || index >= a.Count() {
		return nil, fault.ErrIndexOutOfRange
	}
	start := index * a.stride
	return record.Packed(a.buffer[start : start+a.stride : start+a.stride]), nil
}

// Find - index of the first record for which match is true
func (a Array) Find(match func(record.Packed) bool) int {
	n := a.Count()
	for i := 0; i < n; i += 1 {
		start := i * a.stride
		if match(record.Packed(a.buffer[start : start+a.stride])) {
			return i
		}
	}
	return NotFound
}

// IndexOf - index of the first record equal to r
func (a Array) IndexOf(r record.Packed) int {
	if len(r) != a.stride {
		return NotFound
	}
	return a.Find(func(candidate record.Packed) bool {
		return bytes.Equal(candidate, r)
	})
}

// Append - new array with r added at the end
func (a Array) Append(r record.Packed) (Array, error) {
	if len(r) != a.stride || 0 == a.stride {
		return a, fault.ErrRecordLength
	}
	buffer := make([]byte, len(a.buffer), len(a.buffer)+a.stride)
	copy(buffer, a.buffer)
	return Array{buffer: append(buffer, r...), stride: a.stride}, nil
}

// Remove - new array without the record at index
func (a Array) Remove(index int) (Array, error) {
	if index < 0 || index >= a.Count() {
		return a, fault.ErrIndexOutOfRange
	}
	start := index * a.stride
	buffer := make([]byte, 0, len(a.buffer)-a.stride)
	buffer = append(buffer, a.buffer[:start]...)
	buffer = append(buffer, a.buffer[start+a.stride:]...)
	return Array{buffer: buffer, stride: a.stride}, nil
}

// Filter - new array holding only the records for which keep is true
func (a Array) Filter(keep func(record.Packed) bool) Array {
	buffer := make([]byte, 0, len(a.buffer))
	n := a.Count()
	for i := 0; i < n; i += 1 {
		start := i * a.stride
		r := record.Packed(a.buffer[start : start+a.stride])
		if keep(r) {
			buffer = append(buffer, r...)
		}
	}
	return Array{buffer: buffer, stride: a.stride}
}

// Replace - new array with count bytes of the record at index
// overwritten by data starting at offset within the record
func (a Array) Replace(index int, offset int, data []byte) (Array, error) {
	if index < 0 || index >= a.Count() {
		return a, fault.ErrIndexOutOfRange
	}
	if offset < 0 || offset+len(data) > a.stride {
		return a, fault.ErrRecordLength
	}
	buffer := make([]byte, len(a.buffer))
	copy(buffer, a.buffer)
	copy(buffer[index*a.stride+offset:], data)
	return Array{buffer: buffer, stride: a.stride}, nil
}

// copy a record out of a buffer
func clone(r record.Packed) record.Packed {
	result := make(record.Packed, len(r))
	copy(result, r)
	return result
}
