// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mvsjson

// SentinelIndex is how the all ones previous output index and sequence
// number are displayed.
const SentinelIndex = -1

// TxInResult models a transaction input.  PrevOutIndex and Sequence are
// SentinelIndex for the all ones value.
type TxInResult struct {
	PrevOutID    string `json:"prevOutId"`
	PrevOutIndex int64  `json:"prevOutIndex"`
	Script       string `json:"script"`
	RawScript    string `json:"raw_script,omitempty"`
	Sequence     int64  `json:"sequence"`
}

// AttachmentResult models an output attachment.  Only the fields of the
// payload named by Type and Status are set.
type AttachmentResult struct {
	Type    int64  `json:"type"`
	Version int64  `json:"version"`
	FromDID string `json:"from_did,omitempty"`
	ToDID   string `json:"to_did,omitempty"`
	Status  int64  `json:"status,omitempty"`

	Data                    string `json:"data,omitempty"`
	Symbol                  string `json:"symbol,omitempty"`
	Quantity                int64  `json:"quantity,omitempty"`
	MaxSupply               int64  `json:"maxSupply,omitempty"`
	Precision               int64  `json:"precision,omitempty"`
	SecondaryIssueThreshold int64  `json:"secondaryIssueThreshold,omitempty"`
	Issuer                  string `json:"issuer,omitempty"`
	Owner                   string `json:"owner,omitempty"`
	Address                 string `json:"address,omitempty"`
	Description             string `json:"description,omitempty"`
	Content                 string `json:"content,omitempty"`
	CertType                int64  `json:"cert,omitempty"`
}

// TxOutResult models a transaction output.  Address is only set for
// standard scripts when a network is known.
type TxOutResult struct {
	Address    string           `json:"address,omitempty"`
	Value      int64            `json:"value"`
	Script     string           `json:"script"`
	RawScript  string           `json:"raw_script,omitempty"`
	Attachment AttachmentResult `json:"attachment"`
}

// TxResult models a decoded transaction.
type TxResult struct {
	Hash     string        `json:"hash,omitempty"`
	Version  int64         `json:"version"`
	Inputs   []TxInResult  `json:"inputs"`
	Outputs  []TxOutResult `json:"outputs"`
	LockTime int64         `json:"lock_time"`
}

// BlockResult models a decoded block.  Hashes are in display order.
type BlockResult struct {
	Hash          string     `json:"hash"`
	Version       int64      `json:"version"`
	PreviousBlock string     `json:"previous_block"`
	MerkleRoot    string     `json:"merkle_root"`
	Timestamp     int64      `json:"timestamp"`
	Bits          string     `json:"bits"`
	Nonce         string     `json:"nonce"`
	MixHash       string     `json:"mixhash"`
	Number        int64      `json:"number"`
	Transactions  []TxResult `json:"transactions"`
	BlockSig      string     `json:"blocksig,omitempty"`
}
