// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

const (
	// compactSigLen is the length of a signature as r || s.
	compactSigLen = 64

	// minSigLen is the minimum length of a DER encoded signature and is
	// when both R and S are 1 byte each.
	// 0x30 + <1-byte> + 0x02 + 0x01 + <byte> + 0x2 + 0x01 + <byte>
	minSigLen = 8

	// maxSigLen is the maximum length of a DER encoded signature and is
	// when both R and S are 33 bytes each.
	// 0x30 + <1-byte> + 0x02 + 0x21 + <33 bytes> + 0x2 + 0x21 + <33 bytes>
	maxSigLen = 72

	asn1SequenceID = 0x30
	asn1IntegerID  = 0x02
)

// Signature is a 64 byte r || s signature together with the hash type it
// commits to.
type Signature struct {
	Sig      [compactSigLen]byte
	HashType SigHashType
}

// checkHashType rejects hash types other than ALL, NONE and SINGLE, with or
// without ANYONECANPAY.
func checkHashType(hashType SigHashType) error {
	switch hashType &^ SigHashAnyOneCanPay {
	case SigHashAll, SigHashNone, SigHashSingle:
		return nil
	}
	str := fmt.Sprintf("invalid hash type %d", uint32(hashType))
	return scriptError(ErrInvalidHashType, str)
}

// NewSignature creates a signature from the 64 byte r || s form.
func NewSignature(sig []byte, hashType SigHashType) (*Signature, error) {
	if err := checkHashType(hashType); err != nil {
		return nil, err
	}
	if len(sig) != compactSigLen {
		str := fmt.Sprintf("signature is %d bytes, want %d", len(sig),
			compactSigLen)
		return nil, scriptError(ErrInvalidSignatureLen, str)
	}
	s := &Signature{HashType: hashType}
	copy(s.Sig[:], sig)
	return s, nil
}

// AnyoneCanPay reports whether the signature leaves the other inputs
// unsigned.
func (s *Signature) AnyoneCanPay() bool {
	return s.HashType&SigHashAnyOneCanPay != 0
}

// BaseHashType returns the hash type without the ANYONECANPAY bit.
func (s *Signature) BaseHashType() SigHashType {
	return s.HashType &^ SigHashAnyOneCanPay
}

// Serialize returns the DER encoding of the signature followed by its hash
// type byte, the form carried in input scripts.  S is written as given; no
// low-S normalization takes place.
func (s *Signature) Serialize() []byte {
	r := ToDER(s.Sig[:32])
	ss := ToDER(s.Sig[32:])

	b := make([]byte, 0, 6+len(r)+len(ss)+1)
	b = append(b, asn1SequenceID, byte(4+len(r)+len(ss)))
	b = append(b, asn1IntegerID, byte(len(r)))
	b = append(b, r...)
	b = append(b, asn1IntegerID, byte(len(ss)))
	b = append(b, ss...)
	return append(b, byte(s.HashType))
}

// ParseSignature parses a DER signature followed by its hash type byte.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) == 0 {
		return nil, scriptError(ErrSigTooShort,
			"malformed signature: no hash type")
	}
	r, s, err := ParseDERSignature(b[:len(b)-1])
	if err != nil {
		return nil, err
	}

	sig := make([]byte, 0, compactSigLen)
	sig = append(sig, FromDER(r)...)
	sig = append(sig, FromDER(s)...)
	return NewSignature(sig, SigHashType(b[len(b)-1]))
}

// ParseDERSignature strictly parses a DER encoded signature and returns the
// big endian R and S integers as they appear in the encoding.
func ParseDERSignature(sig []byte) (r, s []byte, err error) {
	// The format of a DER encoded signature is as follows:
	//
	// 0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
	sigLen := len(sig)
	if sigLen < minSigLen {
		str := fmt.Sprintf("malformed signature: too short: %d < %d",
			sigLen, minSigLen)
		return nil, nil, scriptError(ErrSigTooShort, str)
	}
	if sigLen > maxSigLen {
		str := fmt.Sprintf("malformed signature: too long: %d > %d",
			sigLen, maxSigLen)
		return nil, nil, scriptError(ErrSigTooLong, str)
	}
	if sig[0] != asn1SequenceID {
		str := fmt.Sprintf("malformed signature: format has wrong type: %#x",
			sig[0])
		return nil, nil, scriptError(ErrSigInvalidSeqID, str)
	}
	if int(sig[1]) != sigLen-2 {
		str := fmt.Sprintf("malformed signature: bad length: %d != %d",
			sig[1], sigLen-2)
		return nil, nil, scriptError(ErrSigInvalidDataLen, str)
	}
	if sig[2] != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: R integer marker: %#x != %#x",
			sig[2], asn1IntegerID)
		return nil, nil, scriptError(ErrSigInvalidRIntID, str)
	}

	rLen := int(sig[3])
	if rLen == 0 {
		return nil, nil, scriptError(ErrSigZeroRLen,
			"malformed signature: R length is zero")
	}
	if 5+rLen >= sigLen {
		return nil, nil, scriptError(ErrSigRTooLong,
			"malformed signature: R length is too long")
	}
	if sig[4+rLen] != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: S integer marker: %#x != %#x",
			sig[4+rLen], asn1IntegerID)
		return nil, nil, scriptError(ErrSigInvalidSIntID, str)
	}

	sLen := int(sig[5+rLen])
	if sLen == 0 {
		return nil, nil, scriptError(ErrSigZeroSLen,
			"malformed signature: S length is zero")
	}
	if 6+rLen+sLen != sigLen {
		return nil, nil, scriptError(ErrSigInvalidSLen,
			"malformed signature: S length is invalid")
	}

	if sig[4]&0x80 != 0 {
		return nil, nil, scriptError(ErrSigNegativeR,
			"malformed signature: R value is negative")
	}
	if rLen > 1 && sig[4] == 0x00 && sig[5]&0x80 == 0 {
		return nil, nil, scriptError(ErrSigTooMuchRPadding,
			"malformed signature: R value has too much padding")
	}
	if sig[6+rLen]&0x80 != 0 {
		return nil, nil, scriptError(ErrSigNegativeS,
			"malformed signature: S value is negative")
	}
	if sLen > 1 && sig[6+rLen] == 0x00 && sig[7+rLen]&0x80 == 0 {
		return nil, nil, scriptError(ErrSigTooMuchSPadding,
			"malformed signature: S value has too much padding")
	}

	return sig[4 : 4+rLen], sig[6+rLen:], nil
}

// ToDER converts a big endian unsigned integer into the minimal DER integer
// body: leading zeros are stripped and a single zero is added back when the
// high bit of the first remaining byte is set.
func ToDER(x []byte) []byte {
	i := 0
	for i < len(x) && x[i] == 0 {
		i++
	}
	if i == len(x) {
		return []byte{0x00}
	}
	x = x[i:]
	if x[0]&0x80 != 0 {
		return append([]byte{0x00}, x...)
	}
	return append([]byte(nil), x...)
}

// FromDER converts a DER integer body into a 32 byte big endian integer.  At
// most one leading zero is stripped before the value is left padded.  Bodies
// longer than 32 bytes keep their first 32 bytes.
func FromDER(x []byte) []byte {
	if len(x) > 0 && x[0] == 0x00 {
		x = x[1:]
	}
	out := make([]byte, 32)
	if len(x) > 32 {
		copy(out, x[:32])
		return out
	}
	copy(out[32-len(x):], x)
	return out
}
