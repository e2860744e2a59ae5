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
)

// disasmCmd defines the configuration options for the disasm command.
type disasmCmd struct{}

var (
	// disasmCfg defines the configuration options for the command.
	disasmCfg = disasmCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *disasmCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required script hex parameter not specified")
	}
	script, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid script hex: %v", err)
	}
	asm, err := txscript.Disassemble(script)
	if err != nil {
		return err
	}
	if class := txscript.GetScriptClass(script); class != txscript.NonStandardTy {
		log.Infof("Script class %v", class)
	}
	return printLine(asm)
}

// Usage overrides the usage display for the command.
func (cmd *disasmCmd) Usage() string {
	return "<script-hex>"
}

// asmCmd defines the configuration options for the asm command.
type asmCmd struct{}

var (
	// asmCfg defines the configuration options for the command.
	asmCfg = asmCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *asmCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required script parameter not specified")
	}
	script, err := txscript.Assemble(strings.Join(args, " "))
	if err != nil {
		return err
	}
	return printLine(hex.EncodeToString(script))
}

// Usage overrides the usage display for the command.
func (cmd *asmCmd) Usage() string {
	return "<script-asm>..."
}
