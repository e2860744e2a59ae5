// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/mvs-org/mvsd/wire"
	"github.com/stretchr/testify/require"
)

const (
	etpTxPrevScript = "76a914e7da370944c15306b3809580110b0a6c653ac5a988ac"
	sigTxPrevScript = "76a91459d20a7a09e90eccd7e61f5866a30ef291f98f2288ac"
)

func mustDecodeTx(t *testing.T, b []byte) *wire.MsgTx {
	t.Helper()
	var tx wire.MsgTx
	require.NoError(t, tx.FromBytes(b))
	return &tx
}

// TestCalcSignatureHash ensures signature hashes match known vectors for
// every hash type.
func TestCalcSignatureHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tx       []byte
		prev     string
		idx      int
		hashType SigHashType
		want     string
	}{
		{"etp input 0", etpTx, etpTxPrevScript, 0, SigHashAll,
			"c066647af1e37908922c2bb30677df6ddd2f31d948bf1aa12e6089c5473e2baa"},
		{"etp input 1", etpTx, etpTxPrevScript, 1, SigHashAll,
			"a77d87bb00f6615bfd4b965a5bc3e18adf56f07ad8c8152ec83921432081d021"},
		{"all", sigTx, sigTxPrevScript, 0, SigHashAll,
			"cd7a4d526483788540c09f4fd08f83f913a6f2aa454b1f1aa54ac49253a84274"},
		{"all input 1", sigTx, sigTxPrevScript, 1, SigHashAll,
			"87c16bc056357c9b8dadfeeb68fc3d39053afe4d72d804acebbb63721f1e576f"},
		{"none", sigTx, sigTxPrevScript, 0, SigHashNone,
			"d8eb0d053ab8119eed4d1b9373fa34e7e1597ee01f32c3137f109c6677acb81d"},
		{"none input 1", sigTx, sigTxPrevScript, 1, SigHashNone,
			"2f4c70c28ed49ee167119c1202f5b4d6051bdaa2cdab6571d773d4fabeef8737"},
		{"single", sigTx, sigTxPrevScript, 0, SigHashSingle,
			"02704bc7be40f6c0a2fddb17016e35e9bbf0cbe495256b2ae20fc191871775a2"},
		{"single input 1", sigTx, sigTxPrevScript, 1, SigHashSingle,
			"df5d1f547ad6ed13a631ff92d7aef65392286f2b21c17097c0bb4ef4506d8bb1"},
		{"all anyonecanpay", sigTx, sigTxPrevScript, 0,
			SigHashAll | SigHashAnyOneCanPay,
			"0bcc4b390e2e47a1c3b035973c59e81d523b34b26bbe6e210c1e528c164cc45a"},
		{"none anyonecanpay", sigTx, sigTxPrevScript, 1,
			SigHashNone | SigHashAnyOneCanPay,
			"4e1ed5e1ae7de1723772a450a14046202928bc2b8064d95a58efc3574baea435"},
		{"single anyonecanpay", sigTx, sigTxPrevScript, 0,
			SigHashSingle | SigHashAnyOneCanPay,
			"cc82bba85fbfc6c8b842750f21739831f26bdb9c8967296f390da283a6a3ce0a"},
	}
	for _, test := range tests {
		tx := mustDecodeTx(t, test.tx)
		before := spew.Sdump(tx)

		hash, err := CalcSignatureHash(hexToBytes(test.prev), test.hashType,
			tx, test.idx)
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, hex.EncodeToString(hash), test.name)

		// The transaction is hashed through a copy.
		require.Equal(t, before, spew.Sdump(tx), test.name)
	}
}

// TestCalcSignatureHashAnyOneCanPayScripts ensures ANYONECANPAY commits to
// the other inputs' scripts as they are.  Older wallets cleared them, which
// gives a different hash for the same transaction.
func TestCalcSignatureHashAnyOneCanPayScripts(t *testing.T) {
	t.Parallel()

	const (
		scriptsKept    = "cc82bba85fbfc6c8b842750f21739831f26bdb9c8967296f390da283a6a3ce0a"
		scriptsCleared = "1b2ea6727d8ae6c40c2ef4e70464a1cfc343dc312a8dc8ad8a930c532257d3f9"
	)
	hashType := SigHashSingle | SigHashAnyOneCanPay
	prev := hexToBytes(sigTxPrevScript)

	tx := mustDecodeTx(t, sigTx)
	hash, err := CalcSignatureHash(prev, hashType, tx, 0)
	require.NoError(t, err)
	require.Equal(t, scriptsKept, hex.EncodeToString(hash))
	require.NotEqual(t, scriptsCleared, hex.EncodeToString(hash))

	// Only with the other scripts already empty do the two agree.
	tx.TxIn[1].SignatureScript = nil
	hash, err = CalcSignatureHash(prev, hashType, tx, 0)
	require.NoError(t, err)
	require.Equal(t, scriptsCleared, hex.EncodeToString(hash))
}

// TestCalcSignatureHashErrors ensures bad indices and hash types are
// rejected.
func TestCalcSignatureHashErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		idx      int
		hashType SigHashType
		code     ErrorCode
	}{
		{"single without output", 2, SigHashSingle,
			ErrMatchingOutputIndexNotFound},
		{"single anyonecanpay without output", 5,
			SigHashSingle | SigHashAnyOneCanPay,
			ErrMatchingOutputIndexNotFound},
		{"input out of range", 2, SigHashAll, ErrInvalidIndex},
		{"negative input", -1, SigHashNone, ErrInvalidIndex},
		{"zero hash type", 0, 0, ErrUnsupportedSigHashType},
		{"unknown hash type", 0, 0x04, ErrUnsupportedSigHashType},
		{"anyonecanpay only", 0, SigHashAnyOneCanPay,
			ErrUnsupportedSigHashType},
	}
	for _, test := range tests {
		tx := mustDecodeTx(t, sigTx)
		_, err := CalcSignatureHash(hexToBytes(sigTxPrevScript),
			test.hashType, tx, test.idx)
		require.True(t, IsErrorCode(err, test.code),
			"%s: unexpected error %v", test.name, err)
	}
}

// TestSigHashTypeStringer tests the stringized output for the SigHashType
// type.
func TestSigHashTypeStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   SigHashType
		want string
	}{
		{SigHashAll, "ALL"},
		{SigHashNone, "NONE"},
		{SigHashSingle, "SINGLE"},
		{SigHashAll | SigHashAnyOneCanPay, "ALL|ANYONECANPAY"},
		{SigHashSingle | SigHashAnyOneCanPay, "SINGLE|ANYONECANPAY"},
		{0x05, "UNKNOWN(0x5)"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, test.in.String())
	}
}
