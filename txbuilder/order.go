// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvs-org/mvsd/chaincfg"
	"github.com/mvs-org/mvsd/txscript"
	"github.com/mvs-org/mvsd/wire"
)

// OrderHashType is the hash type an order is approved with.  Of the outputs
// only the ask is committed to.
const OrderHashType = txscript.SigHashSingle | txscript.SigHashAnyOneCanPay

// Order is a partially signed swap: one bid input and, at the same index,
// the output the maker wants to receive for it.
type Order struct {
	tx *wire.MsgTx
}

// NewOrder creates an order offering the output bidIndex of bidHash in
// exchange for askQuantity of askSymbol paid to receiveAddress.
func NewOrder(bidHash *chainhash.Hash, bidIndex uint32, receiveAddress string,
	ask Amount, params *chaincfg.Params) (*Order, error) {

	if ask.Quantity <= 0 {
		str := fmt.Sprintf("ask of %d %s is not positive", ask.Quantity,
			ask.Symbol)
		return nil, builderError(ErrInvalidAmount, str)
	}
	script, err := txscript.PayToAddrScript(receiveAddress, params)
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx()
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(bidHash, bidIndex), nil))
	tx.AddTxOut(amountOutput(ask, ask.Quantity, script))
	return &Order{tx: tx}, nil
}

// Tx returns the order transaction.
func (o *Order) Tx() *wire.MsgTx {
	return o.tx
}

// Approve signs the bid input, which spends an output locked by
// prevOutScript, with OrderHashType.
func (o *Order) Approve(prevOutScript []byte, signer txscript.Signer) error {
	if len(o.tx.TxIn) != 1 {
		str := fmt.Sprintf("order has %d inputs, want 1", len(o.tx.TxIn))
		return builderError(ErrIllegalInputCount, str)
	}
	err := txscript.SignTxOutput(o.tx, 0, prevOutScript, OrderHashType, signer)
	if err != nil {
		return err
	}
	log.Debugf("Approved order spending %v", o.tx.TxIn[0].PreviousOutPoint)
	return nil
}

// String returns the hex encoding of the order transaction.
func (o *Order) String() string {
	b, err := o.tx.Bytes()
	if err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
