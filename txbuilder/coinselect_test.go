// Copyright (c) 2014-2015 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func newUTXO(index int64, value int64) UTXO {
	return UTXO{
		Hash:  chainhash.HashH([]byte(fmt.Sprintf("%d", index))),
		Value: value,
	}
}

var utxos = []UTXO{
	newUTXO(1, 100000000),
	newUTXO(2, 10000000),
	newUTXO(3, 50000000),
	newUTXO(4, 25000000),
}

type coinSelectTest struct {
	selector      CoinSelector
	targetValue   int64
	expectedUTXOs []UTXO
}

func testCoinSelector(t *testing.T, tests []coinSelectTest) {
	for i, test := range tests {
		selected, err := test.selector.CoinSelect(test.targetValue, utxos)
		if test.expectedUTXOs == nil {
			require.Truef(t, IsErrorCode(err, ErrNoSelection),
				"[%d] got %v", i, err)
			continue
		}
		require.NoErrorf(t, err, "[%d]", i)
		require.Equalf(t, test.expectedUTXOs, selected, "[%d]", i)
		require.GreaterOrEqualf(t, totalValue(selected), test.targetValue,
			"[%d] target value not satisfied", i)
	}
}

var minIndexSelectors = []MinIndexCoinSelector{
	{MaxInputs: 10, MinChangeAmount: 10000},
	{MaxInputs: 2, MinChangeAmount: 10000},
}

func TestMinIndexSelector(t *testing.T) {
	t.Parallel()

	testCoinSelector(t, []coinSelectTest{
		{minIndexSelectors[0], utxos[0].Value - minIndexSelectors[0].MinChangeAmount, utxos[:1]},
		{minIndexSelectors[0], utxos[0].Value - minIndexSelectors[0].MinChangeAmount + 1, utxos[:2]},
		{minIndexSelectors[0], 100000000, utxos[:1]},
		{minIndexSelectors[0], 110000000, utxos[:2]},
		{minIndexSelectors[0], 140000000, utxos[:3]},
		{minIndexSelectors[0], 200000000, nil},
		{minIndexSelectors[1], 10000000, utxos[:1]},
		{minIndexSelectors[1], 110000000, utxos[:2]},
		{minIndexSelectors[1], 140000000, nil},
	})
}

var minNumberSelectors = []MinNumberCoinSelector{
	{MaxInputs: 10, MinChangeAmount: 10000},
	{MaxInputs: 2, MinChangeAmount: 10000},
}

func TestMinNumberSelector(t *testing.T) {
	t.Parallel()

	testCoinSelector(t, []coinSelectTest{
		{minNumberSelectors[0], utxos[0].Value - minNumberSelectors[0].MinChangeAmount, []UTXO{utxos[0]}},
		{minNumberSelectors[0], utxos[0].Value - minNumberSelectors[0].MinChangeAmount + 1, []UTXO{utxos[0], utxos[2]}},
		{minNumberSelectors[0], 100000000, []UTXO{utxos[0]}},
		{minNumberSelectors[0], 110000000, []UTXO{utxos[0], utxos[2]}},
		{minNumberSelectors[0], 160000000, []UTXO{utxos[0], utxos[2], utxos[3]}},
		{minNumberSelectors[0], 184990000, []UTXO{utxos[0], utxos[2], utxos[3], utxos[1]}},
		{minNumberSelectors[0], 184990001, nil},
		{minNumberSelectors[0], 200000000, nil},
		{minNumberSelectors[1], 10000000, []UTXO{utxos[0]}},
		{minNumberSelectors[1], 110000000, []UTXO{utxos[0], utxos[2]}},
		{minNumberSelectors[1], 140000000, []UTXO{utxos[0], utxos[2]}},
	})
}

// TestSelectInputs ensures the surplus of a selection comes back as ETP
// change in the balance convention used by Send.
func TestSelectInputs(t *testing.T) {
	t.Parallel()

	selector := MinNumberCoinSelector{MaxInputs: 10, MinChangeAmount: DefaultFee}
	selected, change, err := SelectInputs(selector, utxos, 120000000, DefaultFee)
	require.NoError(t, err)
	require.Equal(t, []UTXO{utxos[0], utxos[2]}, selected)
	require.Equal(t, Amount{Symbol: SymbolETP, Quantity: -29990000}, change)

	_, _, err = SelectInputs(selector, utxos, 190000000, DefaultFee)
	require.True(t, IsErrorCode(err, ErrNoSelection))
}
