// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txbuilder assembles unsigned Metaverse transactions.

Send spends a set of outputs to a recipient, optionally preceded by message
outputs and followed by change, and checks that exactly the requested fee is
left to the miner.  Inputs can be picked from a wallet's unspent outputs with
one of the CoinSelector implementations.

An Order offers a single input in exchange for a payment at the same output
index.  Approving it signs the offered input with SIGHASH_SINGLE|ANYONECANPAY.
*/
package txbuilder
