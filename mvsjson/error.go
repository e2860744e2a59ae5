// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mvsjson

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error.  These error codes are NOT used for
// JSON-RPC response errors.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidType indicates an attachment type, or type and status
	// pair, that does not name a known payload.
	ErrInvalidType ErrorCode = iota

	// ErrInvalidField indicates a field whose value cannot be converted
	// to its wire form.  The underlying wire, script or hash error is
	// wrapped.
	ErrInvalidField

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidType:  "ErrInvalidType",
	ErrInvalidField: "ErrInvalidField",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a result that cannot be converted back to its wire form.
// Err holds the underlying error, if any.
type Error struct {
	ErrorCode   ErrorCode
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// fieldError reports that field could not be converted because of err.
func fieldError(field string, err error) Error {
	return Error{
		ErrorCode:   ErrInvalidField,
		Description: fmt.Sprintf("invalid %s: %v", field, err),
		Err:         err,
	}
}

// IsErrorCode returns whether or not the provided error is an Error with the
// provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var jerr Error
	return errors.As(err, &jerr) && jerr.ErrorCode == c
}
