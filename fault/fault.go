// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrInconsistentTree     = ProcessError("tree is inconsistent")
	ErrInvalidConfiguration = InvalidError("configuration must return a table")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidNumber        = InvalidError("item is not a number")
	ErrInvalidOrder         = InvalidError("invalid order")
	ErrInvalidSource        = InvalidError("invalid source")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundDatabase     = NotFoundError("database is not found")
	ErrNotFoundFile         = NotFoundError("item file is not found")
	ErrRequiredDatabase     = InvalidError("database is required")
	ErrRequiredFile         = InvalidError("item file is required")
	ErrRequiredItem         = InvalidError("at least one item is required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool {
	var x ExistsError
	return errors.As(e, &x)
}

func IsErrInvalid(e error) bool {
	var x InvalidError
	return errors.As(e, &x)
}

func IsErrNotFound(e error) bool {
	var x NotFoundError
	return errors.As(e, &x)
}

func IsErrProcess(e error) bool {
	var x ProcessError
	return errors.As(e, &x)
}
