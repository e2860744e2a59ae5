// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams defines the network parameters for the main Metaverse network.
var MainNetParams = Params{
	Name: "mainnet",

	// Address encoding magics
	PubKeyHashAddrID: 0x32, // starts with M
	ScriptHashAddrID: 0x05, // starts with 3
	PrivateKeyID:     0x80, // starts with 5 (uncompressed) or K (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 2302,

	DepositLockTimes: []uint32{25200, 108000, 331200, 655200, 1314000},
}
