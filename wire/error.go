// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrTruncatedBuffer indicates a read ran past the end of the
	// serialized data.
	ErrTruncatedBuffer ErrorCode = iota

	// ErrEncodingRange indicates a value can not be represented by the
	// field it is being written to.  The RangeViolation carried by the
	// error describes which constraint failed.
	ErrEncodingRange

	// ErrUnsupportedAttachmentType indicates the attachment type (or the
	// type and status pair) does not identify a known attachment.
	ErrUnsupportedAttachmentType

	// ErrInvalidAvatarStatus indicates an avatar attachment with a status
	// other than register or transfer.
	ErrInvalidAvatarStatus

	// ErrUnsupportedCertificateType indicates a certificate attachment
	// with an unknown certificate type.
	ErrUnsupportedCertificateType

	// ErrInvalidCertificateStatus indicates a certificate status outside
	// of the defined range.
	ErrInvalidCertificateStatus

	// ErrInvalidHash indicates a hex hash string could not be decoded.
	ErrInvalidHash

	// ErrFieldTooLarge indicates a length prefix claims more data than
	// any valid message could carry.
	ErrFieldTooLarge

	// ErrNonCanonicalVarInt indicates a variable length integer that was
	// not written in its shortest form.
	ErrNonCanonicalVarInt

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrTruncatedBuffer:            "ErrTruncatedBuffer",
	ErrEncodingRange:              "ErrEncodingRange",
	ErrUnsupportedAttachmentType:  "ErrUnsupportedAttachmentType",
	ErrInvalidAvatarStatus:        "ErrInvalidAvatarStatus",
	ErrUnsupportedCertificateType: "ErrUnsupportedCertificateType",
	ErrInvalidCertificateStatus:   "ErrInvalidCertificateStatus",
	ErrInvalidHash:                "ErrInvalidHash",
	ErrFieldTooLarge:              "ErrFieldTooLarge",
	ErrNonCanonicalVarInt:         "ErrNonCanonicalVarInt",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RangeViolation describes which constraint a value failed when it was
// checked against the range of a fixed width field.
type RangeViolation int

// These constants describe the ways a value can fail a range check.
const (
	RangeOK RangeViolation = iota
	RangeNonNumber
	RangeNegative
	RangeOverflow
	RangeFractional
)

var rangeViolationStrings = map[RangeViolation]string{
	RangeOK:         "ok",
	RangeNonNumber:  "cannot write a non-number as a number",
	RangeNegative:   "specified a negative value for writing an unsigned value",
	RangeOverflow:   "value out of range",
	RangeFractional: "value has a fractional component",
}

// String returns the RangeViolation as a human-readable message.
func (v RangeViolation) String() string {
	if s := rangeViolationStrings[v]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown RangeViolation (%d)", int(v))
}

// Error identifies a wire encoding or decoding failure.  The caller can use
// type assertions or IsErrorCode to determine the specific reason.
type Error struct {
	Func        string         // Function name
	ErrorCode   ErrorCode      // Describes the kind of error
	Violation   RangeViolation // Set for ErrEncodingRange
	Description string         // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%v: %v", e.Func, e.Description)
	}
	return e.Description
}

// messageError creates an Error given a set of arguments.
func messageError(f string, c ErrorCode, desc string) Error {
	return Error{Func: f, ErrorCode: c, Description: desc}
}

// rangeError creates an ErrEncodingRange Error for the given violation.
func rangeError(f string, v RangeViolation) Error {
	return Error{
		Func:        f,
		ErrorCode:   ErrEncodingRange,
		Violation:   v,
		Description: v.String(),
	}
}

// IsErrorCode returns whether or not the provided error is a wire Error with
// the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var e Error
	return errors.As(err, &e) && e.ErrorCode == c
}
