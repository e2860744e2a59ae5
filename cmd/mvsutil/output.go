// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mvs-org/mvsd/wire"
)

// stdout receives command results.
var stdout io.Writer = os.Stdout

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(b))
	return err
}

// printLine writes s to stdout followed by a newline.
func printLine(s string) error {
	_, err := fmt.Fprintln(stdout, s)
	return err
}

// parseTx decodes a hex encoded transaction.
func parseTx(txHex string) (*wire.MsgTx, error) {
	b, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction hex: %v", err)
	}
	tx := wire.NewMsgTx()
	if err := tx.FromBytes(b); err != nil {
		return nil, err
	}
	return tx, nil
}

// parseInputIndex parses s as the index of one of the inputs of tx.
func parseInputIndex(tx *wire.MsgTx, s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid input index %q", s)
	}
	if idx < 0 || idx >= len(tx.TxIn) {
		return 0, fmt.Errorf("input index %d out of range, transaction "+
			"has %d inputs", idx, len(tx.TxIn))
	}
	return idx, nil
}
