// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/mvs-org/mvsd/chaincfg"
)

// paramsResult models the output of the params command.
type paramsResult struct {
	Name             string   `json:"name"`
	PubKeyHashAddrID int      `json:"pubKeyHashAddrId"`
	ScriptHashAddrID int      `json:"scriptHashAddrId"`
	PrivateKeyID     int      `json:"privateKeyId"`
	HDPrivateKeyID   string   `json:"hdPrivateKeyId"`
	HDPublicKeyID    string   `json:"hdPublicKeyId"`
	HDCoinType       uint32   `json:"hdCoinType"`
	DepositLockTimes []uint32 `json:"depositLockTimes"`
}

// newParamsResult converts network parameters to their JSON form.
func newParamsResult(params *chaincfg.Params) *paramsResult {
	return &paramsResult{
		Name:             params.Name,
		PubKeyHashAddrID: int(params.PubKeyHashAddrID),
		ScriptHashAddrID: int(params.ScriptHashAddrID),
		PrivateKeyID:     int(params.PrivateKeyID),
		HDPrivateKeyID:   hex.EncodeToString(params.HDPrivateKeyID[:]),
		HDPublicKeyID:    hex.EncodeToString(params.HDPublicKeyID[:]),
		HDCoinType:       params.HDCoinType,
		DepositLockTimes: params.DepositLockTimes,
	}
}

// paramsCmd defines the configuration options for the params command.
type paramsCmd struct{}

var (
	// paramsCfg defines the configuration options for the command.
	paramsCfg = paramsCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *paramsCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	return printJSON(newParamsResult(activeNetParams))
}
