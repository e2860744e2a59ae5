// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mvs-org/mvsd/mvsjson"
	"github.com/mvs-org/mvsd/wire"
)

// decodeTxCmd defines the configuration options for the decodetx command.
type decodeTxCmd struct{}

var (
	// decodeTxCfg defines the configuration options for the command.
	decodeTxCfg = decodeTxCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *decodeTxCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required transaction hex parameter not specified")
	}
	tx, err := parseTx(args[0])
	if err != nil {
		return err
	}
	r, err := mvsjson.NewTxResult(tx, activeNetParams)
	if err != nil {
		return err
	}
	log.Debugf("Decoded transaction %v", r.Hash)
	return printJSON(r)
}

// Usage overrides the usage display for the command.
func (cmd *decodeTxCmd) Usage() string {
	return "<tx-hex>"
}

// encodeTxCmd defines the configuration options for the encodetx command.
type encodeTxCmd struct{}

var (
	// encodeTxCfg defines the configuration options for the command.
	encodeTxCfg = encodeTxCmd{}
)

// encodeTx converts a JSON transaction to its hex encoding.
func encodeTx(txJSON string) (string, error) {
	var result mvsjson.TxResult
	if err := json.Unmarshal([]byte(txJSON), &result); err != nil {
		return "", fmt.Errorf("invalid transaction JSON: %v", err)
	}
	tx, err := result.MsgTx()
	if err != nil {
		return "", err
	}
	b, err := tx.Bytes()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *encodeTxCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required transaction JSON parameter not specified")
	}
	txHex, err := encodeTx(args[0])
	if err != nil {
		return err
	}
	return printLine(txHex)
}

// Usage overrides the usage display for the command.
func (cmd *encodeTxCmd) Usage() string {
	return "<tx-json>"
}

// decodeBlockCmd defines the configuration options for the decodeblock
// command.
type decodeBlockCmd struct{}

var (
	// decodeBlockCfg defines the configuration options for the command.
	decodeBlockCfg = decodeBlockCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *decodeBlockCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required block hex parameter not specified")
	}
	b, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid block hex: %v", err)
	}
	var block wire.MsgBlock
	if err := block.FromBytes(b); err != nil {
		return err
	}
	r, err := mvsjson.NewBlockResult(&block, activeNetParams)
	if err != nil {
		return err
	}
	log.Debugf("Decoded block %v with %d transactions", r.Hash,
		len(block.Transactions))
	return printJSON(r)
}

// Usage overrides the usage display for the command.
func (cmd *decodeBlockCmd) Usage() string {
	return "<block-hex>"
}
