// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/carrierd/fault"
)

// Length - number of bytes in an identity
const Length = 20

// Identity - opaque party identifier (owner or recipient)
//
// the bytes are never interpreted, only compared and copied
type Identity [Length]byte

// FromBytes - convert a byte slice to an identity
//
// the slice must be exactly Length bytes
func FromBytes(buffer []byte) (Identity, error) {
	id := Identity{}
	if Length != len(buffer) {
		return id, fault.ErrIdentityLength
	}
	copy(id[:], buffer)
	return id, nil
}

// FromBase58 - decode the text form of an identity
func FromBase58(s string) (Identity, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Identity{}, fault.ErrInvalidBase58
	}
	return FromBytes(buffer)
}

// FromHex - decode a hex string as an identity
func FromHex(s string) (Identity, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return Identity{}, err
	}
	return FromBytes(buffer)
}

// Parse - accept either the hex or the base58 form
//
// a 40 character string is always treated as hex
func Parse(s string) (Identity, error) {
	if 2*Length == len(s) {
		if id, err := FromHex(s); nil == err {
			return id, nil
		}
	}
	return FromBase58(s)
}

// Bytes - return a copy of the identity bytes
func (id Identity) Bytes() []byte {
	buffer := make([]byte, Length)
	copy(buffer, id[:])
	return buffer
}

// IsZero - true if all bytes are zero
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// String - base58 encoded identity
func (id Identity) String() string {
	return base58.Encode(id[:])
}

// GoString - hex form for debugging
func (id Identity) GoString() string {
	return "<identity:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert identity to base58 text
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert base58 text to an identity
func (id *Identity) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
