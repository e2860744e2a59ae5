// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"fmt"
	"strings"

	"github.com/mvs-org/mvsd/chaincfg"
	"github.com/mvs-org/mvsd/txscript"
	"github.com/mvs-org/mvsd/wire"
)

const (
	// DefaultFee is the ETP fee, in satoshi, paid by a send when none is
	// given.
	DefaultFee = 10000

	// SymbolETP names the native currency in amount lists.  Any other
	// symbol is an asset.
	SymbolETP = "ETP"
)

// Amount is a quantity of ETP or of the asset named by Symbol.
type Amount struct {
	Symbol   string
	Quantity int64
}

// IsETP returns whether the amount is of the native currency.
func (a *Amount) IsETP() bool {
	return strings.EqualFold(a.Symbol, SymbolETP)
}

// LockedAssetChange is asset change to be returned under an attenuation
// model.
type LockedAssetChange struct {
	Symbol   string
	Quantity int64
	Model    string
}

// SendParams describes a send transaction.
//
// Change follows the balance convention of the wallet: the amount owed back
// to the sender is negative.  Zero change entries are skipped.
type SendParams struct {
	Inputs             []UTXO
	RecipientAddress   string
	RecipientAvatar    string
	Target             []Amount
	Change             []Amount
	LockedAssetChange  []LockedAssetChange
	ETPChangeAddress   string
	AssetChangeAddress string // defaults to ETPChangeAddress
	Messages           []string
	Fee                int64 // defaults to DefaultFee
	Params             *chaincfg.Params
}

// Send builds an unsigned transaction spending p.Inputs.  Outputs are
// written in the order messages, targets, change.  The ETP of the inputs
// less the targets and the change must be exactly the fee.
func Send(p *SendParams) (*wire.MsgTx, error) {
	if len(p.LockedAssetChange) > 0 {
		return nil, builderError(ErrAttenuationUnsupported,
			"attenuation models not supported")
	}
	params := p.Params
	if params == nil {
		params = &chaincfg.MainNetParams
	}
	fee := p.Fee
	if fee == 0 {
		fee = DefaultFee
	}

	tx := wire.NewMsgTx()
	var etpCheck int64
	for i := range p.Inputs {
		tx.AddTxIn(wire.NewTxIn(p.Inputs[i].OutPoint(), nil))
		etpCheck += p.Inputs[i].Value
	}

	recipientScript, err := txscript.PayToAddrScript(p.RecipientAddress, params)
	if err != nil {
		return nil, err
	}
	for _, msg := range p.Messages {
		attachment := wire.NewAttachment(&wire.Message{Data: msg})
		tx.AddTxOut(wire.NewTxOut(0, recipientScript, attachment))
	}

	for _, target := range p.Target {
		if target.Quantity <= 0 {
			str := fmt.Sprintf("target of %d %s is not positive",
				target.Quantity, target.Symbol)
			return nil, builderError(ErrInvalidAmount, str)
		}
		out := amountOutput(target, target.Quantity, recipientScript)
		if p.RecipientAvatar != "" {
			out.Attachment.SetDID("", p.RecipientAvatar)
		}
		if target.IsETP() {
			etpCheck -= target.Quantity
		}
		tx.AddTxOut(out)
	}

	assetChangeAddress := p.AssetChangeAddress
	if assetChangeAddress == "" {
		assetChangeAddress = p.ETPChangeAddress
	}
	for _, change := range p.Change {
		if change.Quantity == 0 {
			continue
		}
		if change.Quantity > 0 {
			str := fmt.Sprintf("change of %d %s is positive; change owed "+
				"to the sender is negative", change.Quantity, change.Symbol)
			return nil, builderError(ErrInvalidAmount, str)
		}
		addr := assetChangeAddress
		if change.IsETP() {
			addr = p.ETPChangeAddress
			etpCheck += change.Quantity
		}
		script, err := txscript.PayToAddrScript(addr, params)
		if err != nil {
			return nil, err
		}
		tx.AddTxOut(amountOutput(change, -change.Quantity, script))
	}

	if etpCheck != fee {
		str := fmt.Sprintf("inputs leave a fee of %d, want %d", etpCheck, fee)
		return nil, builderError(ErrFeeCheckFailed, str)
	}

	log.Debugf("Built send with %d inputs and %d outputs paying fee %d",
		len(tx.TxIn), len(tx.TxOut), fee)
	return tx, nil
}

// amountOutput returns an output paying quantity of a's currency to script.
func amountOutput(a Amount, quantity int64, script []byte) *wire.TxOut {
	if a.IsETP() {
		return wire.NewTxOut(quantity, script,
			wire.NewAttachment(&wire.ETPTransfer{}))
	}
	return wire.NewTxOut(0, script, wire.NewAttachment(&wire.MSTTransfer{
		Symbol:   a.Symbol,
		Quantity: quantity,
	}))
}

// SelectInputs chooses outputs from utxos paying spend plus fee with
// selector.  The surplus is returned as an ETP change entry suitable for
// SendParams.Change.
func SelectInputs(selector CoinSelector, utxos []UTXO, spend, fee int64) ([]UTXO, Amount, error) {
	selected, err := selector.CoinSelect(spend+fee, utxos)
	if err != nil {
		return nil, Amount{}, err
	}
	change := Amount{
		Symbol:   SymbolETP,
		Quantity: spend + fee - totalValue(selected),
	}
	return selected, change, nil
}
