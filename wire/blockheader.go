// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockHeaderLen is the number of bytes of a serialized block header.
// Version 4 bytes + PrevBlock 32 bytes + MerkleRoot 32 bytes + Timestamp 4
// bytes + Bits 32 bytes + Nonce 8 bytes + MixHash 32 bytes + Number 4 bytes.
// --> Total 148 bytes.
const BlockHeaderLen = 20 + (chainhash.HashSize * 4)

// BlockVersion identifies the consensus rule a block was produced under.
type BlockVersion uint32

// Block versions.
const (
	BlockVersionPoW  BlockVersion = 1
	BlockVersionPoS  BlockVersion = 2
	BlockVersionDPoS BlockVersion = 3
)

var blockVersionStrings = map[BlockVersion]string{
	BlockVersionPoW:  "pow",
	BlockVersionPoS:  "pos",
	BlockVersionDPoS: "dpos",
}

// String returns the BlockVersion in human-readable form.
func (v BlockVersion) String() string {
	if s, ok := blockVersionStrings[v]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", uint32(v))
}

// BlockHeader defines information about a block.  All hash sized fields are
// kept in wire order; their String methods give the display order.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version BlockVersion

	// Hash of the previous block in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits chainhash.Hash

	// Nonce used to generate the block.
	Nonce [8]byte

	// Proof of work mix digest.
	MixHash chainhash.Hash

	// Height of the block.
	Number uint32
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and double sha256 everything prior to the number of
	// transactions.  Ignore the error returns since there is no way the
	// encode could fail except being out of memory which would cause a
	// run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeader(buf, h)

	return chainhash.DoubleHashH(buf.Bytes())
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// FromBytes deserializes a block header byte slice.
func (h *BlockHeader) FromBytes(b []byte) error {
	return h.Deserialize(bytes.NewReader(b))
}

// Serialize encodes a block header from r into the receiver.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Bytes returns a byte slice containing the serialized contents of the block
// header.
func (h *BlockHeader) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	if err := h.Serialize(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// readBlockHeader reads a block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	var b [BlockHeaderLen]byte
	if err := readFull(r, "readBlockHeader", b[:]); err != nil {
		return err
	}
	hr := bytes.NewReader(b[:])

	version, _ := readUint32(hr)
	bh.Version = BlockVersion(version)
	_, _ = hr.Read(bh.PrevBlock[:])
	_, _ = hr.Read(bh.MerkleRoot[:])
	sec, _ := readUint32(hr)
	bh.Timestamp = time.Unix(int64(sec), 0)
	_, _ = hr.Read(bh.Bits[:])
	_, _ = hr.Read(bh.Nonce[:])
	_, _ = hr.Read(bh.MixHash[:])
	bh.Number, _ = readUint32(hr)
	return nil
}

// writeBlockHeader writes a block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	b := make([]byte, 0, BlockHeaderLen)
	b = appendUint32(b, uint32(bh.Version))
	b = append(b, bh.PrevBlock[:]...)
	b = append(b, bh.MerkleRoot[:]...)
	b = appendUint32(b, uint32(bh.Timestamp.Unix()))
	b = append(b, bh.Bits[:]...)
	b = append(b, bh.Nonce[:]...)
	b = append(b, bh.MixHash[:]...)
	b = appendUint32(b, bh.Number)
	_, err := w.Write(b)
	return err
}

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
