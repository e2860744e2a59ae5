// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mvs-org/mvsd/txscript"
	"github.com/mvs-org/mvsd/wire"
)

// parseHashType parses a hash type in the form printed by
// txscript.SigHashType, such as "SINGLE|ANYONECANPAY".
func parseHashType(s string) (txscript.SigHashType, error) {
	parts := strings.Split(strings.ToUpper(s), "|")
	var hashType txscript.SigHashType
	switch strings.TrimSpace(parts[0]) {
	case "ALL":
		hashType = txscript.SigHashAll
	case "NONE":
		hashType = txscript.SigHashNone
	case "SINGLE":
		hashType = txscript.SigHashSingle
	default:
		return 0, fmt.Errorf("unknown hash type %q", s)
	}
	switch {
	case len(parts) == 1:
	case len(parts) == 2 && strings.TrimSpace(parts[1]) == "ANYONECANPAY":
		hashType |= txscript.SigHashAnyOneCanPay
	default:
		return 0, fmt.Errorf("unknown hash type %q", s)
	}
	return hashType, nil
}

// inputArgs are the arguments shared by the commands working on a single
// transaction input.
type inputArgs struct {
	tx            *wire.MsgTx
	idx           int
	prevOutScript []byte
	hashType      txscript.SigHashType
}

// parseInputArgs parses a hex transaction, an input index and the assembly
// of the script locking the spent output.
func parseInputArgs(args []string, hashTypeStr string) (*inputArgs, error) {
	if len(args) < 3 {
		return nil, errors.New("required transaction hex, input index " +
			"and previous output script parameters not specified")
	}
	tx, err := parseTx(args[0])
	if err != nil {
		return nil, err
	}
	idx, err := parseInputIndex(tx, args[1])
	if err != nil {
		return nil, err
	}
	prevOutScript, err := txscript.Assemble(strings.Join(args[2:], " "))
	if err != nil {
		return nil, err
	}
	hashType, err := parseHashType(hashTypeStr)
	if err != nil {
		return nil, err
	}
	return &inputArgs{
		tx:            tx,
		idx:           idx,
		prevOutScript: prevOutScript,
		hashType:      hashType,
	}, nil
}

// sigHashCmd defines the configuration options for the sighash command.
type sigHashCmd struct {
	HashType string `long:"hashtype" description:"Signature hash type {ALL, NONE, SINGLE} optionally followed by |ANYONECANPAY"`
}

var (
	// sigHashCfg defines the configuration options for the command.
	sigHashCfg = sigHashCmd{
		HashType: defaultHashType,
	}
)

// sigHash returns the hex encoded signature hash of an input.
func sigHash(args []string, hashTypeStr string) (string, error) {
	in, err := parseInputArgs(args, hashTypeStr)
	if err != nil {
		return "", err
	}
	hash, err := txscript.CalcSignatureHash(in.prevOutScript, in.hashType,
		in.tx, in.idx)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash), nil
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *sigHashCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	hash, err := sigHash(args, cmd.HashType)
	if err != nil {
		return err
	}
	return printLine(hash)
}

// Usage overrides the usage display for the command.
func (cmd *sigHashCmd) Usage() string {
	return "<tx-hex> <input-index> <prev-out-script-asm>..."
}
