// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrBufferTooShort           = LengthError("buffer too short")
	ErrCarrySpaceTooLarge       = InvalidError("carry space too large")
	ErrConfigurationNotTable    = InvalidError("configuration did not return a table")
	ErrDemandExpired            = InvalidError("demand already expired")
	ErrEmptyRoute               = InvalidError("route is empty")
	ErrExpiryTooLarge           = InvalidError("expiry too large")
	ErrFeeOverflow              = InvalidError("fee overflow")
	ErrIdentityLength           = LengthError("identity length is invalid")
	ErrIncompatibleDatabase     = ProcessError("incompatible database version")
	ErrIndexOutOfRange          = RecordError("record index out of range")
	ErrInfoLength               = LengthError("info length is invalid")
	ErrInvalidBase58            = InvalidError("invalid base58 text")
	ErrInvalidCeiling           = InvalidError("value ceiling is invalid")
	ErrInvalidCollaborator      = InvalidError("missing collaborator")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidInfoLength        = InvalidError("info length configuration is invalid")
	ErrInvalidInterval          = InvalidError("maintenance interval must be positive")
	ErrInvalidSeed              = InvalidError("invalid seed")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrInvalidWidth             = InvalidError("field width is invalid")
	ErrItemSizeTooLarge         = InvalidError("item size too large")
	ErrItemValueTooLarge        = InvalidError("item value too large")
	ErrKeyLength                = LengthError("key length is invalid")
	ErrMisalignedBuffer         = LengthError("buffer length is not a multiple of record length")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrOperatorExists           = ExistsError("operator key is already present")
	ErrReadOnly                 = ProcessError("database is read only")
	ErrRecordLength             = LengthError("record length is invalid")
	ErrRepRequiredTooLarge      = InvalidError("required reputation too large")
	ErrReservationExpired       = InvalidError("reservation already expired")
	ErrReservationNotFound      = NotFoundError("reservation not found")
	ErrReservationValueTooLarge = InvalidError("reservation value too large")
	ErrTransactionInUse         = ProcessError("transaction already in use")
	ErrTransactionNotInUse      = ProcessError("transaction not in use")
	ErrTravelExpired            = InvalidError("travel already expired")
	ErrValueTooWide             = InvalidError("value does not fit field width")
	ErrWitnessFailed            = InvalidError("witness check failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
