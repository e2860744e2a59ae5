// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvs-org/mvsd/chaincfg"
	"github.com/mvs-org/mvsd/hdwallet"
	"github.com/mvs-org/mvsd/txscript"
	"github.com/mvs-org/mvsd/wire"
	"github.com/stretchr/testify/require"
)

const (
	orderMnemonic = "lunar there win define minor shadow damage lounge bitter " +
		"abstract sail alcohol yellow left lift vapor tourist rent gloom " +
		"sustain gym dry congress zero"

	orderBidHash       = "91f8430e52f3ee4f7b72b7e02b404a77836dca1aa8d4dc2b07d4209e49e3c11a"
	orderReceiveAddr   = "tCdbgEP2kNS9qAoSnRnoN6nDMhvCugNVgZ"
	orderPrevOutScript = "dup hash160 [ 3e995f80739ecbfad8d92e3e523c540bd2847ffd ] " +
		"equalverify checksig"

	unsignedOrderHex = "04000000011ac1e3499e20d4072bdcd4a81aca6d83774a402be0b7727b" +
		"4feef3520e43f8910000000000ffffffff0100ca9a3b000000001976a9143e995f80" +
		"739ecbfad8d92e3e523c540bd2847ffd88ac010000000000000000000000"

	orderSigHash   = "dccc5d54f640d756e4f2829ff15d2c333a22cafc29c77a49f514c259674e4c74"
	orderSignature = "3045022100f139de09db96e9bcf6a5f35aa0f84ce8e74ab5e2670f0e09" +
		"99dab70538b16d1b022049a0210f59452ef293d16c8249278d2798190c60a6ec3825" +
		"c60b4af7a3e6799c83"
	orderPubKey = "0358068a43bb405201db2a19fd488431a34ed0949891b206a30d1d5d120ba90445"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	bidHash, err := chainhash.NewHashFromStr(orderBidHash)
	require.NoError(t, err)
	order, err := NewOrder(bidHash, 0, orderReceiveAddr,
		Amount{Symbol: SymbolETP, Quantity: 10 * 100000000},
		&chaincfg.TestNetParams)
	require.NoError(t, err)
	return order
}

// TestNewOrder ensures an order encodes its bid input and ask output.
func TestNewOrder(t *testing.T) {
	t.Parallel()

	order := newTestOrder(t)
	require.Equal(t, unsignedOrderHex, order.String())

	asset, err := NewOrder(&chainhash.Hash{}, 1, orderReceiveAddr,
		Amount{Symbol: "MVS.ZGC", Quantity: 5}, &chaincfg.TestNetParams)
	require.NoError(t, err)
	out := asset.Tx().TxOut[0]
	require.Zero(t, out.Value)
	require.Equal(t, &wire.MSTTransfer{Symbol: "MVS.ZGC", Quantity: 5},
		out.Attachment.Payload)

	_, err = NewOrder(&chainhash.Hash{}, 0, orderReceiveAddr,
		Amount{Symbol: SymbolETP}, &chaincfg.TestNetParams)
	require.True(t, IsErrorCode(err, ErrInvalidAmount), "got %v", err)
}

// TestOrderApprove ensures approving an order signs the bid input with
// SIGHASH_SINGLE|ANYONECANPAY.
func TestOrderApprove(t *testing.T) {
	t.Parallel()

	w, err := hdwallet.FromMnemonic(orderMnemonic, &chaincfg.TestNetParams)
	require.NoError(t, err)
	signer, err := w.SignerAt("m/2")
	require.NoError(t, err)
	require.Equal(t, orderPubKey, hex.EncodeToString(signer.PublicKey()))

	prevOutScript, err := txscript.FromFullnode(orderPrevOutScript)
	require.NoError(t, err)

	order := newTestOrder(t)
	hash, err := txscript.CalcSignatureHash(prevOutScript, OrderHashType,
		order.Tx(), 0)
	require.NoError(t, err)
	require.Equal(t, orderSigHash, hex.EncodeToString(hash))

	require.NoError(t, order.Approve(prevOutScript, signer))

	sig, err := hex.DecodeString(orderSignature)
	require.NoError(t, err)
	want := txscript.AppendPushData(nil, sig)
	want = txscript.AppendPushData(want, signer.PublicKey())
	require.Equal(t, want, order.Tx().TxIn[0].SignatureScript)
}

// TestOrderApproveInputCount ensures only single input orders are signed.
func TestOrderApproveInputCount(t *testing.T) {
	t.Parallel()

	order := newTestOrder(t)
	order.Tx().AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, 0), nil))
	err := order.Approve(nil, nil)
	require.True(t, IsErrorCode(err, ErrIllegalInputCount), "got %v", err)
}
