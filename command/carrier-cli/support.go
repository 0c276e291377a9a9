// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"

	"github.com/bitmark-inc/carrierd/identity"
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// identity is base58 or hex, blank reports the supplied error
func checkIdentity(s string, blank error) (identity.Identity, error) {
	if "" == s {
		return identity.Identity{}, blank
	}
	return identity.Parse(s)
}

// expiry must be given, zero is always in the past
func checkExpiry(expiry uint64) (uint64, error) {
	if 0 == expiry {
		return 0, ErrRequiredExpiry
	}
	return expiry, nil
}

// blank info decodes to no bytes and is left to the record length check
func checkInfo(s string) ([]byte, error) {
	info, err := hex.DecodeString(s)
	if nil != err {
		return nil, ErrInvalidInfoHex
	}
	return info, nil
}
