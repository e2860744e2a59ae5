// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package mvsjson provides JSON views of Metaverse transactions and blocks.

The views follow the field names used by Metaverse wallets: hashes are in
display order, scripts are in assembly notation and the all ones previous
output index and sequence number are shown as -1.  Each view converts back to
its wire form, checking every number fits the field it is written to.
*/
package mvsjson
