// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/howeyc/gopass"
	"github.com/mvs-org/mvsd/chaincfg"
	"github.com/mvs-org/mvsd/hdwallet"
	"github.com/mvs-org/mvsd/txscript"
)

// promptSecret reads a secret from the terminal without echo.
var promptSecret = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := gopass.GetPasswdMasked()
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %v", err)
	}
	return string(secret), nil
}

// walletFromSecret creates a wallet from an extended private key or, when
// secret holds several words, a mnemonic sentence.
func walletFromSecret(secret string, params *chaincfg.Params) (*hdwallet.Wallet, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("no key or mnemonic given")
	}
	if len(strings.Fields(secret)) > 1 {
		return hdwallet.FromMnemonic(strings.Join(strings.Fields(secret), " "),
			params)
	}
	return hdwallet.FromBase58(secret, params)
}

// signCmd defines the configuration options for the sign command.
type signCmd struct {
	HashType string `long:"hashtype" description:"Signature hash type {ALL, NONE, SINGLE} optionally followed by |ANYONECANPAY"`
	KeyPath  string `long:"path" description:"Derivation path of the signing key"`
}

var (
	// signCfg defines the configuration options for the command.
	signCfg = signCmd{
		HashType: defaultHashType,
		KeyPath:  defaultKeyPath,
	}
)

// sign signs an input with the key at keyPath of w and returns the hex
// encoded transaction.
func sign(args []string, hashTypeStr, keyPath string, w *hdwallet.Wallet) (string, error) {
	in, err := parseInputArgs(args, hashTypeStr)
	if err != nil {
		return "", err
	}
	signer, err := w.SignerAt(keyPath)
	if err != nil {
		return "", err
	}
	err = txscript.SignTxOutput(in.tx, in.idx, in.prevOutScript, in.hashType,
		signer)
	if err != nil {
		return "", err
	}
	b, err := in.tx.Bytes()
	if err != nil {
		return "", err
	}
	log.Infof("Signed input %d with %v", in.idx, in.hashType)
	return hex.EncodeToString(b), nil
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *signCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	secret, err := promptSecret("Extended private key or mnemonic: ")
	if err != nil {
		return err
	}
	w, err := walletFromSecret(secret, activeNetParams)
	if err != nil {
		return err
	}
	txHex, err := sign(args, cmd.HashType, cmd.KeyPath, w)
	if err != nil {
		return err
	}
	return printLine(txHex)
}

// Usage overrides the usage display for the command.
func (cmd *signCmd) Usage() string {
	return "<tx-hex> <input-index> <prev-out-script-asm>..."
}
