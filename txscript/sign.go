// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/mvs-org/mvsd/wire"
)

// Signer produces signatures over 32 byte hashes with a private key it
// holds.
type Signer interface {
	// Sign returns the 64 byte r || s signature of hash.
	Sign(hash []byte) ([]byte, error)

	// PublicKey returns the 33 byte compressed public key of the signer.
	PublicKey() []byte
}

// RawTxInSignature returns the serialized signature, DER plus hash type
// byte, for input idx of tx spending an output locked by prevOutScript.
func RawTxInSignature(tx *wire.MsgTx, idx int, prevOutScript []byte,
	hashType SigHashType, signer Signer) ([]byte, error) {

	if err := checkHashType(hashType); err != nil {
		return nil, err
	}
	hash, err := CalcSignatureHash(prevOutScript, hashType, tx, idx)
	if err != nil {
		return nil, err
	}
	compact, err := signer.Sign(hash)
	if err != nil {
		return nil, fmt.Errorf("cannot sign tx input: %w", err)
	}
	sig, err := NewSignature(compact, hashType)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

// SignatureScript creates an input signature script for tx to spend an
// output locked by prevOutScript: the signature followed by the public key.
func SignatureScript(tx *wire.MsgTx, idx int, prevOutScript []byte,
	hashType SigHashType, signer Signer) ([]byte, error) {

	sig, err := RawTxInSignature(tx, idx, prevOutScript, hashType, signer)
	if err != nil {
		return nil, err
	}
	return ScriptFromChunks([]ScriptChunk{
		{Opcode: OP_PUSHDATA1, Data: sig},
		{Opcode: OP_PUSHDATA1, Data: signer.PublicKey()},
	}), nil
}

// SignTxOutput signs input idx of tx, which spends an output locked by
// prevOutScript, and stores the signature script in the input.
func SignTxOutput(tx *wire.MsgTx, idx int, prevOutScript []byte,
	hashType SigHashType, signer Signer) error {

	script, err := SignatureScript(tx, idx, prevOutScript, hashType, signer)
	if err != nil {
		return err
	}
	tx.TxIn[idx].SignatureScript = script
	return nil
}
