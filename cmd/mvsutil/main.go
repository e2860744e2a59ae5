// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

// newParser creates the command line parser with the global options and all
// commands registered.
func newParser() *flags.Parser {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("decodetx",
		"Decode a hex encoded transaction to JSON", "", &decodeTxCfg)
	parser.AddCommand("encodetx",
		"Encode a JSON transaction to hex",
		"Encode a JSON transaction, as printed by decodetx, to hex.  "+
			"The hash field is ignored.", &encodeTxCfg)
	parser.AddCommand("decodeblock",
		"Decode a hex encoded block to JSON", "", &decodeBlockCfg)
	parser.AddCommand("disasm",
		"Disassemble a hex encoded script", "", &disasmCfg)
	parser.AddCommand("asm",
		"Assemble a script to hex", "", &asmCfg)
	parser.AddCommand("sighash",
		"Compute the signature hash of a transaction input", "",
		&sigHashCfg)
	parser.AddCommand("sign",
		"Sign a pay-to-pubkey-hash transaction input",
		"Sign a pay-to-pubkey-hash transaction input with a key derived "+
			"from an extended private key or mnemonic, read from the "+
			"terminal without echo.", &signCfg)
	parser.AddCommand("spendable",
		"Show how much of an attenuated asset output can be spent", "",
		&spendableCfg)
	parser.AddCommand("params",
		"Show the active network parameters", "", &paramsCfg)
	return parser
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Parse command line and invoke the Execute function for the specified
	// command.
	parser := newParser()
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		} else {
			log.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
