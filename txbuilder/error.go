// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of transaction building error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrFeeCheckFailed indicates the inputs, targets and change of a send
	// do not leave exactly the requested fee.
	ErrFeeCheckFailed ErrorCode = iota

	// ErrAttenuationUnsupported indicates change was requested under an
	// attenuation model, which the builder cannot lock.
	ErrAttenuationUnsupported

	// ErrInvalidAmount indicates a target that is not positive or change
	// that is positive.
	ErrInvalidAmount

	// ErrIllegalInputCount indicates an order that does not have exactly
	// one input.
	ErrIllegalInputCount

	// ErrNoSelection indicates no subset of the available outputs can pay
	// the requested value.
	ErrNoSelection

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrFeeCheckFailed:         "ErrFeeCheckFailed",
	ErrAttenuationUnsupported: "ErrAttenuationUnsupported",
	ErrInvalidAmount:          "ErrInvalidAmount",
	ErrIllegalInputCount:      "ErrIllegalInputCount",
	ErrNoSelection:            "ErrNoSelection",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a transaction that cannot be built as requested.  The
// caller can use type assertions to access the ErrorCode field.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// builderError creates an Error given a set of arguments.
func builderError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a builder error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var berr Error
	return errors.As(err, &berr) && berr.ErrorCode == c
}
