// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/require"
)

// keySigner signs with a secp256k1 private key.
type keySigner struct {
	key *btcec.PrivateKey
}

func (s *keySigner) Sign(hash []byte) ([]byte, error) {
	sig := ecdsa.SignCompact(s.key, hash, true)
	return sig[1:], nil
}

func (s *keySigner) PublicKey() []byte {
	return s.key.PubKey().SerializeCompressed()
}

// badSigner returns a fixed result.
type badSigner struct {
	sig []byte
	err error
}

func (s *badSigner) Sign([]byte) ([]byte, error) { return s.sig, s.err }
func (s *badSigner) PublicKey() []byte           { return nil }

const (
	// signTxHex pays 1 and 4939995 from a single input owned by signKey.
	signTxHex = "0200000001ea1a27de1f3cee7c31033b93fd493717b2ff47e756df1185" +
		"007d65bf7db254550100000000ffffffff0201000000000000001976a914f087" +
		"200b95bd043a134a0cead903e0a3600d79eb88ac0100000000000000db604b00" +
		"000000001976a9147f8ac2a0179a4eb308c7ae837aed878b5ed25de288ac0100" +
		"00000000000000000000"

	signKey        = "2ac214c168d4b24070f8d7c149c3c11f432bc540e058bb6a0bd68c3532a09ed4"
	signPubKey     = "034593f54b073ed6a3728056d0f6595d614c717c639a9301761de7c8ef5d5fe1b4"
	signPrevScript = "76a9147f8ac2a0179a4eb308c7ae837aed878b5ed25de288ac"
	signSigHash    = "4b6393024f9f176fdd149a0af57e0bfb0445e9fa9c6c2de245792fb3154fd396"
	signSignature  = "3045022100f8fa56d4f3015689c01f4557351e858aec4a139d752bc19b3223" +
		"90093393efc3022077d706621c3e36c8b6a90c6d354e8a85dd81d39a4e2fb582c0" +
		"fd28f3f1a9caec01"
)

func newKeySigner(t *testing.T) *keySigner {
	t.Helper()
	key, _ := btcec.PrivKeyFromBytes(hexToBytes(signKey))
	return &keySigner{key: key}
}

// TestSignTxOutput ensures an input is signed deterministically and the
// signature verifies against the signature hash.
func TestSignTxOutput(t *testing.T) {
	t.Parallel()

	signer := newKeySigner(t)
	require.Equal(t, signPubKey, hex.EncodeToString(signer.PublicKey()))

	tx := mustDecodeTx(t, hexToBytes(signTxHex))
	prevScript := hexToBytes(signPrevScript)

	hash, err := CalcSignatureHash(prevScript, SigHashAll, tx, 0)
	require.NoError(t, err)
	require.Equal(t, signSigHash, hex.EncodeToString(hash))

	sig, err := RawTxInSignature(tx, 0, prevScript, SigHashAll, signer)
	require.NoError(t, err)
	require.Equal(t, signSignature, hex.EncodeToString(sig))

	parsed, err := ecdsa.ParseDERSignature(sig[:len(sig)-1])
	require.NoError(t, err)
	require.True(t, parsed.Verify(hash, signer.key.PubKey()))

	require.NoError(t, SignTxOutput(tx, 0, prevScript, SigHashAll, signer))
	want := AppendPushData(nil, sig)
	want = AppendPushData(want, hexToBytes(signPubKey))
	require.Equal(t, want, tx.TxIn[0].SignatureScript)
	require.Equal(t, "[ "+signSignature+" ] [ "+signPubKey+" ]",
		DisasmString(tx.TxIn[0].SignatureScript))

	// Input scripts are not part of the signed data.
	again, err := RawTxInSignature(tx, 0, prevScript, SigHashAll, signer)
	require.NoError(t, err)
	require.Equal(t, sig, again)
}

// TestSignHashTypes ensures signatures over every hash type verify.
func TestSignHashTypes(t *testing.T) {
	t.Parallel()

	signer := newKeySigner(t)
	prevScript := hexToBytes(sigTxPrevScript)
	for _, hashType := range []SigHashType{SigHashAll, SigHashNone,
		SigHashSingle, SigHashAll | SigHashAnyOneCanPay,
		SigHashNone | SigHashAnyOneCanPay,
		SigHashSingle | SigHashAnyOneCanPay} {

		for idx := 0; idx < 2; idx++ {
			tx := mustDecodeTx(t, sigTx)
			hash, err := CalcSignatureHash(prevScript, hashType, tx, idx)
			require.NoError(t, err)

			sig, err := RawTxInSignature(tx, idx, prevScript, hashType,
				signer)
			require.NoError(t, err)

			parsed, err := ParseSignature(sig)
			require.NoError(t, err)
			require.Equal(t, hashType, parsed.HashType)

			der, err := ecdsa.ParseDERSignature(sig[:len(sig)-1])
			require.NoError(t, err)
			require.True(t, der.Verify(hash, signer.key.PubKey()),
				"%v input %d", hashType, idx)
		}
	}
}

// TestSignErrors ensures signing failures are reported.
func TestSignErrors(t *testing.T) {
	t.Parallel()

	tx := mustDecodeTx(t, hexToBytes(signTxHex))
	prevScript := hexToBytes(signPrevScript)
	signer := newKeySigner(t)

	_, err := RawTxInSignature(tx, 0, prevScript, 100, signer)
	require.True(t, IsErrorCode(err, ErrInvalidHashType), "%v", err)

	_, err = RawTxInSignature(tx, 1, prevScript, SigHashAll, signer)
	require.True(t, IsErrorCode(err, ErrInvalidIndex), "%v", err)

	_, err = RawTxInSignature(tx, 0, prevScript, SigHashAll,
		&badSigner{sig: make([]byte, 65)})
	require.True(t, IsErrorCode(err, ErrInvalidSignatureLen), "%v", err)

	errSign := errors.New("device unavailable")
	err = SignTxOutput(tx, 0, prevScript, SigHashAll,
		&badSigner{err: errSign})
	require.ErrorIs(t, err, errSign)
	require.Empty(t, tx.TxIn[0].SignatureScript)
}
