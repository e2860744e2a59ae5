// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/mvs-org/mvsd/chaincfg"
	"github.com/mvs-org/mvsd/txscript"
	"github.com/mvs-org/mvsd/wire"
	"github.com/stretchr/testify/require"
)

const (
	recipientAddress = "MVpxH8aAa3BAXvbdqUUJwEP6s2ajGKKtyd"
	changeAddress    = "MKXYH2MhpvA3GU7kMk8y3SoywGnyHEj5SB"
)

func mustPayToAddr(t *testing.T, addr string) []byte {
	t.Helper()
	script, err := txscript.PayToAddrScript(addr, &chaincfg.MainNetParams)
	require.NoError(t, err)
	return script
}

func baseSendParams() *SendParams {
	return &SendParams{
		Inputs:           []UTXO{utxos[0]},
		RecipientAddress: recipientAddress,
		Target:           []Amount{{Symbol: SymbolETP, Quantity: 50000000}},
		Change:           []Amount{{Symbol: SymbolETP, Quantity: -49990000}},
		ETPChangeAddress: changeAddress,
		Params:           &chaincfg.MainNetParams,
	}
}

// TestSend ensures outputs are written as messages, targets and change with
// the expected scripts and attachments.
func TestSend(t *testing.T) {
	t.Parallel()

	p := baseSendParams()
	p.Inputs = append(p.Inputs, newUTXO(5, 0))
	p.Target = append(p.Target, Amount{Symbol: "MVS.TST", Quantity: 300})
	p.Change = append(p.Change,
		Amount{Symbol: "MVS.TST", Quantity: -200},
		Amount{Symbol: "ZERO", Quantity: 0})
	p.RecipientAvatar = "alice"
	p.Messages = []string{"hello"}

	tx, err := Send(p)
	require.NoError(t, err)
	require.Equal(t, uint32(4), tx.Version)

	require.Len(t, tx.TxIn, 2)
	for i, in := range tx.TxIn {
		require.Equal(t, p.Inputs[i].Hash, in.PreviousOutPoint.Hash)
		require.Equal(t, p.Inputs[i].Index, in.PreviousOutPoint.Index)
		require.Empty(t, in.SignatureScript)
		require.Equal(t, wire.MaxTxInSequenceNum, in.Sequence)
	}

	recipient := mustPayToAddr(t, recipientAddress)
	change := mustPayToAddr(t, changeAddress)
	withDID := func(a wire.Attachment) wire.Attachment {
		a.SetDID("", "alice")
		return a
	}
	want := []*wire.TxOut{
		wire.NewTxOut(0, recipient,
			wire.NewAttachment(&wire.Message{Data: "hello"})),
		wire.NewTxOut(50000000, recipient,
			withDID(wire.NewAttachment(&wire.ETPTransfer{}))),
		wire.NewTxOut(0, recipient, withDID(wire.NewAttachment(
			&wire.MSTTransfer{Symbol: "MVS.TST", Quantity: 300}))),
		wire.NewTxOut(49990000, change,
			wire.NewAttachment(&wire.ETPTransfer{})),
		wire.NewTxOut(0, change, wire.NewAttachment(
			&wire.MSTTransfer{Symbol: "MVS.TST", Quantity: 200})),
	}
	require.Equal(t, want, tx.TxOut, spew.Sdump(tx.TxOut))
}

// TestSendAssetChangeAddress ensures asset change goes to its own address
// when one is given.
func TestSendAssetChangeAddress(t *testing.T) {
	t.Parallel()

	p := baseSendParams()
	p.Change = append(p.Change, Amount{Symbol: "MVS.TST", Quantity: -1})
	p.AssetChangeAddress = recipientAddress

	tx, err := Send(p)
	require.NoError(t, err)
	require.Len(t, tx.TxOut, 3)
	require.Equal(t, mustPayToAddr(t, changeAddress), tx.TxOut[1].PkScript)
	require.Equal(t, mustPayToAddr(t, recipientAddress), tx.TxOut[2].PkScript)
	require.Equal(t, wire.AttachmentVersionDefault, tx.TxOut[2].Attachment.Version)
}

// TestSendFee ensures the fee left by a send must match the requested one.
func TestSendFee(t *testing.T) {
	t.Parallel()

	p := baseSendParams()
	p.Change[0].Quantity = -49980000
	_, err := Send(p)
	require.True(t, IsErrorCode(err, ErrFeeCheckFailed), "got %v", err)
	require.EqualError(t, err, "inputs leave a fee of 20000, want 10000")

	p.Fee = 20000
	_, err = Send(p)
	require.NoError(t, err)
}

// TestSendErrors ensures invalid sends are rejected.
func TestSendErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(p *SendParams)
		code   ErrorCode
	}{{
		name: "locked asset change",
		modify: func(p *SendParams) {
			p.LockedAssetChange = []LockedAssetChange{{
				Symbol:   "MVS.TST",
				Quantity: 100,
				Model:    "PN=0;LH=20000;TYPE=1;LQ=9000;LP=60000;UN=3",
			}}
		},
		code: ErrAttenuationUnsupported,
	}, {
		name: "zero target",
		modify: func(p *SendParams) {
			p.Target[0].Quantity = 0
		},
		code: ErrInvalidAmount,
	}, {
		name: "positive change",
		modify: func(p *SendParams) {
			p.Change[0].Quantity = 49990000
		},
		code: ErrInvalidAmount,
	}}

	for _, test := range tests {
		p := baseSendParams()
		test.modify(p)
		_, err := Send(p)
		require.Truef(t, IsErrorCode(err, test.code), "%s: got %v",
			test.name, err)
	}

	p := baseSendParams()
	p.RecipientAddress = "not an address"
	_, err := Send(p)
	require.Error(t, err)
}
