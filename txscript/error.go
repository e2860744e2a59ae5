// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInternal is returned if internal consistency checks fail.  In
	// practice this error should never be seen as it would mean there is an
	// error in the engine logic.
	ErrInternal ErrorCode = iota

	// ---------------------------------------
	// Failures related to assembly parsing.
	// ---------------------------------------

	// ErrUnknownOpcode is returned when an assembly token outside of
	// brackets does not name an opcode.
	ErrUnknownOpcode

	// ErrMalformedPush is returned when a script contains a data push
	// that claims more bytes than remain.
	ErrMalformedPush

	// ErrInvalidHexData is returned when a bracketed assembly chunk is not
	// valid hex.
	ErrInvalidHexData

	// -----------------------------------------------
	// Failures related to standard script templates.
	// -----------------------------------------------

	// ErrNotPayToPubKeyHash is returned when a pay-to-pubkey-hash script
	// was expected.
	ErrNotPayToPubKeyHash

	// ErrInvalidPubKeyHash is returned when a public key hash is not 20
	// bytes.
	ErrInvalidPubKeyHash

	// ErrNoAttenuationModel is returned when a script does not carry an
	// attenuation model.
	ErrNoAttenuationModel

	// ------------------------------------
	// Failures related to signature hashes.
	// ------------------------------------

	// ErrUnsupportedSigHashType is returned when the base hash type is not
	// one of SigHashAll, SigHashNone or SigHashSingle.
	ErrUnsupportedSigHashType

	// ErrMatchingOutputIndexNotFound is returned when SigHashSingle is
	// used for an input that has no output at the same index.
	ErrMatchingOutputIndexNotFound

	// ErrInvalidIndex is returned when an input index is out of range for
	// the transaction.
	ErrInvalidIndex

	// ErrInvalidHashType is returned when a signature is created or parsed
	// with an invalid hash type.
	ErrInvalidHashType

	// ErrInvalidSignatureLen is returned when a signer does not return a
	// 64 byte compact signature.
	ErrInvalidSignatureLen

	// ---------------------------------------------
	// Failures related to strict DER signatures.
	// ---------------------------------------------

	// ErrSigTooShort is returned when a signature that should be a
	// canonically-encoded DER signature is too short.
	ErrSigTooShort

	// ErrSigTooLong is returned when a signature that should be a
	// canonically-encoded DER signature is too long.
	ErrSigTooLong

	// ErrSigInvalidSeqID is returned when a signature that should be a
	// canonically-encoded DER signature does not have the expected ASN.1
	// sequence ID.
	ErrSigInvalidSeqID

	// ErrSigInvalidDataLen is returned a signature that should be a
	// canonically-encoded DER signature does not specify the correct number
	// of remaining bytes for the R and S portions.
	ErrSigInvalidDataLen

	// ErrSigInvalidRIntID is returned when a signature that should be a
	// canonically-encoded DER signature does not have the expected ASN.1
	// integer ID for R.
	ErrSigInvalidRIntID

	// ErrSigZeroRLen is returned when a signature that should be a
	// canonically-encoded DER signature has an R length of zero.
	ErrSigZeroRLen

	// ErrSigRTooLong is returned when a signature that should be a
	// canonically-encoded DER signature has an R length that leaves no
	// room for S.
	ErrSigRTooLong

	// ErrSigInvalidSIntID is returned when a signature that should be a
	// canonically-encoded DER signature does not have the expected ASN.1
	// integer ID for S.
	ErrSigInvalidSIntID

	// ErrSigZeroSLen is returned when a signature that should be a
	// canonically-encoded DER signature has an S length of zero.
	ErrSigZeroSLen

	// ErrSigInvalidSLen is returned when a signature that should be a
	// canonically-encoded DER signature does not specify the correct number
	// of bytes for the S portion.
	ErrSigInvalidSLen

	// ErrSigNegativeR is returned when a signature that should be a
	// canonically-encoded DER signature has a negative value for R.
	ErrSigNegativeR

	// ErrSigTooMuchRPadding is returned when a signature that should be a
	// canonically-encoded DER signature has too much padding for R.
	ErrSigTooMuchRPadding

	// ErrSigNegativeS is returned when a signature that should be a
	// canonically-encoded DER signature has a negative value for S.
	ErrSigNegativeS

	// ErrSigTooMuchSPadding is returned when a signature that should be a
	// canonically-encoded DER signature has too much padding for S.
	ErrSigTooMuchSPadding

	// ---------------------------------------
	// Failures related to attenuation models.
	// ---------------------------------------

	// ErrInvalidAttenuationParameter is returned when a model segment is
	// not KEY=VALUE or a value is not an integer.
	ErrInvalidAttenuationParameter

	// ErrInvalidAttachmentForSpendableAsset is returned when spendable
	// quantities are requested for an output that does not carry an
	// asset.
	ErrInvalidAttachmentForSpendableAsset

	// ErrInvalidLockedQuantity is returned when a model locks more than
	// the output carries.
	ErrInvalidLockedQuantity

	// ErrInvalidAttenuationArray is returned when a schedule based model
	// is missing its UC or UQ arrays or they do not line up.
	ErrInvalidAttenuationArray

	// ErrInvalidAttenuationModelType is returned for a model TYPE other
	// than 1, 2 or 3.
	ErrInvalidAttenuationModelType

	// ErrAttenuationAdjustment is returned when a height delta runs past
	// the last period of a model.
	ErrAttenuationAdjustment

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:                           "ErrInternal",
	ErrUnknownOpcode:                      "ErrUnknownOpcode",
	ErrMalformedPush:                      "ErrMalformedPush",
	ErrInvalidHexData:                     "ErrInvalidHexData",
	ErrNotPayToPubKeyHash:                 "ErrNotPayToPubKeyHash",
	ErrInvalidPubKeyHash:                  "ErrInvalidPubKeyHash",
	ErrNoAttenuationModel:                 "ErrNoAttenuationModel",
	ErrUnsupportedSigHashType:             "ErrUnsupportedSigHashType",
	ErrMatchingOutputIndexNotFound:        "ErrMatchingOutputIndexNotFound",
	ErrInvalidIndex:                       "ErrInvalidIndex",
	ErrInvalidHashType:                    "ErrInvalidHashType",
	ErrInvalidSignatureLen:                "ErrInvalidSignatureLen",
	ErrSigTooShort:                        "ErrSigTooShort",
	ErrSigTooLong:                         "ErrSigTooLong",
	ErrSigInvalidSeqID:                    "ErrSigInvalidSeqID",
	ErrSigInvalidDataLen:                  "ErrSigInvalidDataLen",
	ErrSigInvalidRIntID:                   "ErrSigInvalidRIntID",
	ErrSigZeroRLen:                        "ErrSigZeroRLen",
	ErrSigRTooLong:                        "ErrSigRTooLong",
	ErrSigInvalidSIntID:                   "ErrSigInvalidSIntID",
	ErrSigZeroSLen:                        "ErrSigZeroSLen",
	ErrSigInvalidSLen:                     "ErrSigInvalidSLen",
	ErrSigNegativeR:                       "ErrSigNegativeR",
	ErrSigTooMuchRPadding:                 "ErrSigTooMuchRPadding",
	ErrSigNegativeS:                       "ErrSigNegativeS",
	ErrSigTooMuchSPadding:                 "ErrSigTooMuchSPadding",
	ErrInvalidAttenuationParameter:        "ErrInvalidAttenuationParameter",
	ErrInvalidAttachmentForSpendableAsset: "ErrInvalidAttachmentForSpendableAsset",
	ErrInvalidLockedQuantity:              "ErrInvalidLockedQuantity",
	ErrInvalidAttenuationArray:            "ErrInvalidAttenuationArray",
	ErrInvalidAttenuationModelType:        "ErrInvalidAttenuationModelType",
	ErrAttenuationAdjustment:              "ErrAttenuationAdjustment",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script-related error.  It is used to indicate three
// classes of errors:
//  1. Script parsing errors
//  2. Signature hash and signature encoding errors
//  3. Attenuation model errors
//
// The caller can use type assertions to determine the specific error and
// access the ErrorCode field.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error with
// the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var serr Error
	return errors.As(err, &serr) && serr.ErrorCode == c
}
