// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvs-org/mvsd/wire"
)

// UTXO is an unspent output offered as an input to a new transaction.
type UTXO struct {
	Hash  chainhash.Hash
	Index uint32
	Value int64
}

// OutPoint returns the outpoint that spends the output.
func (u *UTXO) OutPoint() *wire.OutPoint {
	return wire.NewOutPoint(&u.Hash, u.Index)
}

// totalValue sums the value of utxos.
func totalValue(utxos []UTXO) int64 {
	var total int64
	for i := range utxos {
		total += utxos[i].Value
	}
	return total
}

// satisfiesTargetValue checks that the totalValue is either exactly the targetValue
// or is greater than the targetValue by at least the minChange amount.
func satisfiesTargetValue(targetValue, minChange, totalValue int64) bool {
	return totalValue == targetValue || totalValue >= targetValue+minChange
}

// CoinSelector is an interface that wraps the CoinSelect method.
//
// CoinSelect will attempt to select a subset of the utxos which has at
// least the targetValue amount.  CoinSelect is not guaranteed to return a
// selection even if the total value of utxos given is greater than the
// target value.
type CoinSelector interface {
	CoinSelect(targetValue int64, utxos []UTXO) ([]UTXO, error)
}

// MinIndexCoinSelector is a CoinSelector that attempts to construct a
// selection of utxos whose total value is at least targetValue and prefers
// any number of lower indexes (as in the ordered slice) over higher ones.
type MinIndexCoinSelector struct {
	MaxInputs       int
	MinChangeAmount int64
}

// CoinSelect will attempt to select utxos using the algorithm described
// in the MinIndexCoinSelector struct.
func (s MinIndexCoinSelector) CoinSelect(targetValue int64, utxos []UTXO) ([]UTXO, error) {
	var total int64
	for n := 0; n < len(utxos) && n < s.MaxInputs; n++ {
		total += utxos[n].Value
		if satisfiesTargetValue(targetValue, s.MinChangeAmount, total) {
			return append([]UTXO(nil), utxos[:n+1]...), nil
		}
	}
	str := fmt.Sprintf("no selection of at most %d outputs pays %d",
		s.MaxInputs, targetValue)
	return nil, builderError(ErrNoSelection, str)
}

// MinNumberCoinSelector is a CoinSelector that attempts to construct
// a selection of utxos whose total value is at least targetValue
// that uses as few of the inputs as possible.
type MinNumberCoinSelector struct {
	MaxInputs       int
	MinChangeAmount int64
}

// CoinSelect will attempt to select utxos using the algorithm described
// in the MinNumberCoinSelector struct.
func (s MinNumberCoinSelector) CoinSelect(targetValue int64, utxos []UTXO) ([]UTXO, error) {
	sorted := append([]UTXO(nil), utxos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	return MinIndexCoinSelector{
		MaxInputs:       s.MaxInputs,
		MinChangeAmount: s.MinChangeAmount,
	}.CoinSelect(targetValue, sorted)
}
