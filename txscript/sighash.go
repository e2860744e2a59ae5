// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvs-org/mvsd/wire"
)

// SigHashType represents hash type bits at the end of a signature.  It is
// committed to as a 32-bit little endian word in the signature hash.
type SigHashType uint32

// Hash type bits from the end of a signature.
const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80

	// sigHashMask defines the bits of the hash type which select the
	// outputs that are signed.
	sigHashMask = 0x7f
)

// String returns the hash type in the form used by the reference wallet.
func (t SigHashType) String() string {
	var s string
	switch t & sigHashMask {
	case SigHashAll:
		s = "ALL"
	case SigHashNone:
		s = "NONE"
	case SigHashSingle:
		s = "SINGLE"
	default:
		return fmt.Sprintf("UNKNOWN(%#x)", uint32(t))
	}
	if t&SigHashAnyOneCanPay != 0 {
		s += "|ANYONECANPAY"
	}
	return s
}

// CalcSignatureHash computes the signature hash for input idx of tx spending
// an output locked by prevOutScript.  tx is not modified.
//
// The hash commits to a copy of tx in which, depending on hashType, the
// outputs are cleared (SigHashNone) or reduced to the one at idx
// (SigHashSingle).  Unless SigHashAnyOneCanPay is set the scripts of all
// inputs are cleared.  The script of input idx is then replaced with
// prevOutScript and the 4 byte hash type appended to the serialization.
func CalcSignatureHash(prevOutScript []byte, hashType SigHashType,
	tx *wire.MsgTx, idx int) ([]byte, error) {

	txCopy := tx.Copy()
	switch hashType & sigHashMask {
	case SigHashAll:

	case SigHashNone:
		txCopy.TxOut = txCopy.TxOut[:0]

	case SigHashSingle:
		if idx < 0 || idx >= len(txCopy.TxOut) {
			str := fmt.Sprintf("attempt to sign single input at index "+
				"%d >= %d outputs", idx, len(txCopy.TxOut))
			return nil, scriptError(ErrMatchingOutputIndexNotFound, str)
		}
		txCopy.TxOut = []*wire.TxOut{txCopy.TxOut[idx]}

	default:
		str := fmt.Sprintf("unsupported signature hash type %#x",
			uint32(hashType))
		return nil, scriptError(ErrUnsupportedSigHashType, str)
	}

	if idx < 0 || idx >= len(txCopy.TxIn) {
		str := fmt.Sprintf("transaction input index %d is out of range "+
			"[0, %d)", idx, len(txCopy.TxIn))
		return nil, scriptError(ErrInvalidIndex, str)
	}

	if hashType&SigHashAnyOneCanPay == 0 {
		for _, txIn := range txCopy.TxIn {
			txIn.SignatureScript = nil
		}
	}
	txCopy.TxIn[idx].SignatureScript = prevOutScript

	buf, err := txCopy.Bytes()
	if err != nil {
		return nil, err
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(hashType))
	hash := chainhash.DoubleHashB(buf)

	log.Tracef("%v", newLogClosure(func() string {
		return fmt.Sprintf("Signature hash %x for input %d with type %v",
			hash, idx, hashType)
	}))
	return hash, nil
}
