// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/carrierd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidInfoHex       = fault.InvalidError("info is not valid hex")
	ErrRequiredConfigFile   = fault.InvalidError("config file is required")
	ErrRequiredExpiry       = fault.InvalidError("expiry is required")
	ErrRequiredHolder       = fault.InvalidError("holder is required")
	ErrRequiredNewRecipient = fault.InvalidError("new recipient is required")
	ErrRequiredOwner        = fault.InvalidError("owner is required")
	ErrRequiredRecipient    = fault.InvalidError("recipient is required")
	ErrRequiredRoute        = fault.InvalidError("route is required")
)
