// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mvsjson

import (
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvs-org/mvsd/chaincfg"
	"github.com/mvs-org/mvsd/txscript"
	"github.com/mvs-org/mvsd/wire"
)

// displayIndex returns v with the all ones value shown as SentinelIndex.
func displayIndex(v uint32) int64 {
	if v == math.MaxUint32 {
		return SentinelIndex
	}
	return int64(v)
}

// wireIndex is the inverse of displayIndex.
func wireIndex(field string, v int64) (uint32, error) {
	if v == SentinelIndex {
		return math.MaxUint32, nil
	}
	return toUint32(field, v)
}

func toUint32(field string, v int64) (uint32, error) {
	u, err := wire.VerifyUint(v, math.MaxUint32)
	if err != nil {
		return 0, fieldError(field, err)
	}
	return uint32(u), nil
}

func toUint8(field string, v int64) (uint8, error) {
	u, err := wire.VerifyUint(v, math.MaxUint8)
	if err != nil {
		return 0, fieldError(field, err)
	}
	return uint8(u), nil
}

// toAmount checks v is not negative.
func toAmount(field string, v int64) (int64, error) {
	if _, err := wire.VerifyUint(v, math.MaxInt64); err != nil {
		return 0, fieldError(field, err)
	}
	return v, nil
}

// scriptFields returns the assembly of script, or its hex when it does not
// parse.
func scriptFields(script []byte) (asm, raw string) {
	asm, err := txscript.Disassemble(script)
	if err != nil {
		return "", hex.EncodeToString(script)
	}
	return asm, ""
}

// wireScript is the inverse of scriptFields.
func wireScript(field, asm, raw string) ([]byte, error) {
	if raw != "" {
		script, err := hex.DecodeString(raw)
		if err != nil {
			return nil, fieldError(field, err)
		}
		return script, nil
	}
	script, err := txscript.Assemble(asm)
	if err != nil {
		return nil, fieldError(field, err)
	}
	return script, nil
}

func wireHash(field, s string) (*chainhash.Hash, error) {
	h, err := wire.NewHashFromStr(s)
	if err != nil {
		return nil, fieldError(field, err)
	}
	return h, nil
}

func fixedHex(field, s string, want int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fieldError(field, err)
	}
	if len(b) != want {
		return nil, fieldError(field, fmt.Errorf("%d bytes, want %d",
			len(b), want))
	}
	return b, nil
}

// NewAttachmentResult returns the JSON view of a.
func NewAttachmentResult(a *wire.Attachment) AttachmentResult {
	r := AttachmentResult{
		Type:    int64(a.Type()),
		Version: int64(a.Version),
	}
	if a.HasDID() {
		r.FromDID = a.FromDID
		r.ToDID = a.ToDID
	}

	switch p := a.Payload.(type) {
	case *wire.Message:
		r.Data = p.Data

	case *wire.MSTIssue:
		r.Status = int64(wire.MSTStatusIssue)
		r.Symbol = p.Symbol
		r.MaxSupply = p.MaxSupply
		r.Precision = int64(p.Precision)
		r.SecondaryIssueThreshold = int64(p.SecondaryIssueThreshold)
		r.Issuer = p.Issuer
		r.Address = p.Address
		r.Description = p.Description

	case *wire.MSTTransfer:
		r.Status = int64(wire.MSTStatusTransfer)
		r.Symbol = p.Symbol
		r.Quantity = p.Quantity

	case *wire.MITIssue:
		r.Status = int64(wire.MITStatusIssue)
		r.Symbol = p.Symbol
		r.Address = p.Address
		r.Content = p.Content

	case *wire.MITTransfer:
		r.Status = int64(wire.MITStatusTransfer)
		r.Symbol = p.Symbol
		r.Address = p.Address

	case *wire.AvatarRegister:
		r.Status = int64(wire.AvatarStatusRegister)
		r.Symbol = p.Symbol
		r.Address = p.Address

	case *wire.AvatarTransfer:
		r.Status = int64(wire.AvatarStatusTransfer)
		r.Symbol = p.Symbol
		r.Address = p.Address

	case *wire.Certificate:
		r.Status = int64(p.Status)
		r.Symbol = p.Symbol
		r.Owner = p.Owner
		r.Address = p.Address
		r.CertType = int64(p.CertType)
		r.Content = p.Content
	}
	return r
}

// Attachment converts r back to its wire form.
func (r *AttachmentResult) Attachment() (wire.Attachment, error) {
	version, err := toUint32("attachment version", r.Version)
	if err != nil {
		return wire.Attachment{}, err
	}
	typ, err := toUint32("attachment type", r.Type)
	if err != nil {
		return wire.Attachment{}, err
	}
	payload, err := r.payload(wire.AttachmentType(typ))
	if err != nil {
		return wire.Attachment{}, err
	}

	a := wire.Attachment{Version: version, Payload: payload}
	if version == wire.AttachmentVersionDID {
		a.FromDID = r.FromDID
		a.ToDID = r.ToDID
	}
	return a, nil
}

func (r *AttachmentResult) payload(typ wire.AttachmentType) (wire.AttachmentPayload, error) {
	switch {
	case typ == wire.AttachmentTypeETP:
		return &wire.ETPTransfer{}, nil

	case typ == wire.AttachmentTypeCoinstake:
		return &wire.Coinstake{}, nil

	case typ == wire.AttachmentTypeMessage:
		return &wire.Message{Data: r.Data}, nil

	case typ == wire.AttachmentTypeMST && r.Status == int64(wire.MSTStatusIssue):
		maxSupply, err := toAmount("max supply", r.MaxSupply)
		if err != nil {
			return nil, err
		}
		precision, err := toUint8("precision", r.Precision)
		if err != nil {
			return nil, err
		}
		threshold, err := toUint8("secondary issue threshold",
			r.SecondaryIssueThreshold)
		if err != nil {
			return nil, err
		}
		return &wire.MSTIssue{
			Symbol:                  r.Symbol,
			MaxSupply:               maxSupply,
			Precision:               precision,
			SecondaryIssueThreshold: threshold,
			Issuer:                  r.Issuer,
			Address:                 r.Address,
			Description:             r.Description,
		}, nil

	case typ == wire.AttachmentTypeMST && r.Status == int64(wire.MSTStatusTransfer):
		quantity, err := toAmount("quantity", r.Quantity)
		if err != nil {
			return nil, err
		}
		return &wire.MSTTransfer{Symbol: r.Symbol, Quantity: quantity}, nil

	case typ == wire.AttachmentTypeMIT && r.Status == int64(wire.MITStatusIssue):
		return &wire.MITIssue{
			Symbol:  r.Symbol,
			Address: r.Address,
			Content: r.Content,
		}, nil

	case typ == wire.AttachmentTypeMIT && r.Status == int64(wire.MITStatusTransfer):
		return &wire.MITTransfer{Symbol: r.Symbol, Address: r.Address}, nil

	case typ == wire.AttachmentTypeAvatar && r.Status == int64(wire.AvatarStatusRegister):
		return &wire.AvatarRegister{Symbol: r.Symbol, Address: r.Address}, nil

	case typ == wire.AttachmentTypeAvatar && r.Status == int64(wire.AvatarStatusTransfer):
		return &wire.AvatarTransfer{Symbol: r.Symbol, Address: r.Address}, nil

	case typ == wire.AttachmentTypeCertificate:
		certType, err := toUint32("certificate type", r.CertType)
		if err != nil {
			return nil, err
		}
		status, err := toUint8("certificate status", r.Status)
		if err != nil {
			return nil, err
		}
		cert, err := wire.NewCertificate(r.Symbol, r.Owner, r.Address,
			wire.CertificateType(certType), wire.CertificateStatus(status),
			r.Content)
		if err != nil {
			return nil, fieldError("certificate", err)
		}
		return cert, nil
	}

	str := fmt.Sprintf("unsupported attachment type %v with status %d",
		typ, r.Status)
	return nil, makeError(ErrInvalidType, str)
}

// NewTxResult returns the JSON view of tx.  Output addresses are filled in
// for standard scripts when params is not nil.  A transaction that cannot be
// serialized has no hash and its encode error is returned.
func NewTxResult(tx *wire.MsgTx, params *chaincfg.Params) (TxResult, error) {
	hash, err := tx.TxHash()
	if err != nil {
		return TxResult{}, err
	}
	r := TxResult{
		Hash:     hash.String(),
		Version:  int64(tx.Version),
		Inputs:   make([]TxInResult, 0, len(tx.TxIn)),
		Outputs:  make([]TxOutResult, 0, len(tx.TxOut)),
		LockTime: int64(tx.LockTime),
	}

	for _, txIn := range tx.TxIn {
		asm, raw := scriptFields(txIn.SignatureScript)
		r.Inputs = append(r.Inputs, TxInResult{
			PrevOutID:    txIn.PreviousOutPoint.Hash.String(),
			PrevOutIndex: displayIndex(txIn.PreviousOutPoint.Index),
			Script:       asm,
			RawScript:    raw,
			Sequence:     displayIndex(txIn.Sequence),
		})
	}

	for _, txOut := range tx.TxOut {
		asm, raw := scriptFields(txOut.PkScript)
		out := TxOutResult{
			Value:      txOut.Value,
			Script:     asm,
			RawScript:  raw,
			Attachment: NewAttachmentResult(&txOut.Attachment),
		}
		if params != nil {
			addr, err := txscript.AddressFromScript(txOut.PkScript, params)
			if err == nil {
				out.Address = addr
			}
		}
		r.Outputs = append(r.Outputs, out)
	}
	return r, nil
}

// MsgTx converts r back to its wire form.  Hash and output addresses are
// informational and not checked.
func (r *TxResult) MsgTx() (*wire.MsgTx, error) {
	version, err := toUint32("version", r.Version)
	if err != nil {
		return nil, err
	}
	lockTime, err := toUint32("lock time", r.LockTime)
	if err != nil {
		return nil, err
	}

	tx := &wire.MsgTx{
		Version:  version,
		TxIn:     make([]*wire.TxIn, 0, len(r.Inputs)),
		TxOut:    make([]*wire.TxOut, 0, len(r.Outputs)),
		LockTime: lockTime,
	}
	for i := range r.Inputs {
		in := &r.Inputs[i]
		hash, err := wireHash("previous output id", in.PrevOutID)
		if err != nil {
			return nil, err
		}
		index, err := wireIndex("previous output index", in.PrevOutIndex)
		if err != nil {
			return nil, err
		}
		script, err := wireScript("input script", in.Script, in.RawScript)
		if err != nil {
			return nil, err
		}
		sequence, err := wireIndex("sequence", in.Sequence)
		if err != nil {
			return nil, err
		}
		txIn := wire.NewTxIn(wire.NewOutPoint(hash, index), script)
		txIn.Sequence = sequence
		tx.AddTxIn(txIn)
	}

	for i := range r.Outputs {
		out := &r.Outputs[i]
		value, err := toAmount("value", out.Value)
		if err != nil {
			return nil, err
		}
		script, err := wireScript("output script", out.Script, out.RawScript)
		if err != nil {
			return nil, err
		}
		attachment, err := out.Attachment.Attachment()
		if err != nil {
			return nil, err
		}
		tx.AddTxOut(wire.NewTxOut(value, script, attachment))
	}
	return tx, nil
}

// NewBlockResult returns the JSON view of block.
func NewBlockResult(block *wire.MsgBlock, params *chaincfg.Params) (BlockResult, error) {
	h := &block.Header
	r := BlockResult{
		Hash:          block.BlockHash().String(),
		Version:       int64(h.Version),
		PreviousBlock: h.PrevBlock.String(),
		MerkleRoot:    h.MerkleRoot.String(),
		Timestamp:     h.Timestamp.Unix(),
		Bits:          h.Bits.String(),
		Nonce:         hex.EncodeToString(h.Nonce[:]),
		MixHash:       h.MixHash.String(),
		Number:        int64(h.Number),
		Transactions:  make([]TxResult, 0, len(block.Transactions)),
	}
	for _, tx := range block.Transactions {
		txr, err := NewTxResult(tx, params)
		if err != nil {
			return BlockResult{}, err
		}
		r.Transactions = append(r.Transactions, txr)
	}
	if block.HasBlockSig() {
		r.BlockSig = hex.EncodeToString(block.BlockSig[:])
	}
	return r, nil
}

// MsgBlock converts r back to its wire form.  Hash is informational and not
// checked.
func (r *BlockResult) MsgBlock() (*wire.MsgBlock, error) {
	version, err := toUint32("block version", r.Version)
	if err != nil {
		return nil, err
	}
	prevBlock, err := wireHash("previous block", r.PreviousBlock)
	if err != nil {
		return nil, err
	}
	merkleRoot, err := wireHash("merkle root", r.MerkleRoot)
	if err != nil {
		return nil, err
	}
	timestamp, err := toUint32("timestamp", r.Timestamp)
	if err != nil {
		return nil, err
	}
	bits, err := wireHash("bits", r.Bits)
	if err != nil {
		return nil, err
	}
	nonce, err := fixedHex("nonce", r.Nonce, 8)
	if err != nil {
		return nil, err
	}
	mixHash, err := wireHash("mix hash", r.MixHash)
	if err != nil {
		return nil, err
	}
	number, err := toUint32("number", r.Number)
	if err != nil {
		return nil, err
	}

	header := wire.BlockHeader{
		Version:    wire.BlockVersion(version),
		PrevBlock:  *prevBlock,
		MerkleRoot: *merkleRoot,
		Timestamp:  time.Unix(int64(timestamp), 0),
		Bits:       *bits,
		MixHash:    *mixHash,
		Number:     number,
	}
	copy(header.Nonce[:], nonce)

	block := wire.NewMsgBlock(&header)
	for i := range r.Transactions {
		tx, err := r.Transactions[i].MsgTx()
		if err != nil {
			return nil, err
		}
		block.AddTransaction(tx)
	}

	switch {
	case block.HasBlockSig():
		sig, err := fixedHex("block signature", r.BlockSig, wire.BlockSigLen)
		if err != nil {
			return nil, err
		}
		copy(block.BlockSig[:], sig)

	case r.BlockSig != "":
		return nil, fieldError("block signature", fmt.Errorf("%v blocks "+
			"are not signed", block.Header.Version))
	}
	return block, nil
}
