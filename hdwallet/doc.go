// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package hdwallet provides a BIP32 hierarchical deterministic wallet for the
Metaverse networks.

A wallet is created from a seed, a mnemonic sentence or an encoded extended
key and derives keys by path.  Addresses and WIF keys are encoded with the
magics of the wallet's network while extended keys keep the xprv and xpub
prefixes shared by all networks.

The signer returned by SignerAt satisfies txscript.Signer:

	w, err := hdwallet.FromMnemonic(words, &chaincfg.MainNetParams)
	...
	signer, err := w.SignerAt("m/0")
	...
	err = txscript.SignTxOutput(tx, 0, prevScript, txscript.SigHashAll, signer)
*/
package hdwallet
