// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mvs-org/mvsd/txscript"
	"github.com/mvs-org/mvsd/wire"
)

// spendableResult models the output of the spendable command.
type spendableResult struct {
	Symbol    string `json:"symbol"`
	Quantity  int64  `json:"quantity"`
	Spendable int64  `json:"spendable"`
	Model     string `json:"model,omitempty"`
}

// spendableCmd defines the configuration options for the spendable command.
type spendableCmd struct{}

var (
	// spendableCfg defines the configuration options for the command.
	spendableCfg = spendableCmd{}
)

// spendable reports how much of the asset carried by an output of a hex
// encoded transaction can be spent.
func spendable(args []string) (*spendableResult, error) {
	if len(args) < 4 {
		return nil, errors.New("required transaction hex, output index, " +
			"transaction height and current height parameters not specified")
	}
	tx, err := parseTx(args[0])
	if err != nil {
		return nil, err
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil || idx < 0 || idx >= len(tx.TxOut) {
		return nil, fmt.Errorf("invalid output index %q", args[1])
	}
	heights := make([]int64, 2)
	for i, arg := range args[2:4] {
		heights[i], err = strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid height %q", arg)
		}
	}

	out := tx.TxOut[idx]
	avail, err := txscript.AssetSpendable(out, heights[0], heights[1])
	if err != nil {
		return nil, err
	}
	result := &spendableResult{Spendable: avail}
	switch p := out.Attachment.Payload.(type) {
	case *wire.MSTTransfer:
		result.Symbol, result.Quantity = p.Symbol, p.Quantity
	case *wire.MSTIssue:
		result.Symbol, result.Quantity = p.Symbol, p.MaxSupply
	}
	asm := txscript.DisasmString(out.PkScript)
	if txscript.HasAttenuationModel(asm) {
		result.Model, err = txscript.ExtractAttenuationModel(asm)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *spendableCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	result, err := spendable(args)
	if err != nil {
		return err
	}
	return printJSON(result)
}

// Usage overrides the usage display for the command.
func (cmd *spendableCmd) Usage() string {
	return "<tx-hex> <output-index> <tx-height> <current-height>"
}
