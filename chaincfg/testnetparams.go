// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNetParams defines the network parameters for the Metaverse test network.
// Extended keys share the main network magics.
var TestNetParams = Params{
	Name: "testnet",

	// Address encoding magics
	PubKeyHashAddrID: 0x7f, // starts with t
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 1,

	DepositLockTimes: []uint32{10, 20, 30, 40, 50},
}
