// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "encoding/hex"

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// etpTx is a transaction spending two pay-to-pubkey-hash outputs into
// two etp transfer outputs.
var etpTx = hexToBytes("" +
	"0400000002b876d698a8b5c86d2008a0df4abce7d219b038307b8d0f18a52404" +
	"61d7f8e52c010000006a473044022069b331762136a4be093d46869758e0c5ff" +
	"352529ad68a1f90a4188e33e6004df0220667a8c18bb9800fecbfa6a6c7a21ac" +
	"5677778b7729ae56e94c913b2312a43da9012103afa153f4c9ba1bd19ef2f1d7" +
	"65c51e30a4a0705cb61b4efee3c72fc3a11c0e5fffffffffb1b951f88475661a" +
	"31df3b5879bb0920012bea4df914e42aeb7da0d579ab1563000000006a473044" +
	"0220664e4deb69ba6de51269aa26ac83e22ad2bc132f28613fccd0c7a09130b1" +
	"830102204129045f4788635e3eec6cdd324aa66f24db033a62927613d1f5bd18" +
	"52a10410012103afa153f4c9ba1bd19ef2f1d765c51e30a4a0705cb61b4efee3" +
	"c72fc3a11c0e5fffffffff02fc28090e000000001976a91486c84a82fd58727b" +
	"4215e619215d4596325c69fb88ac010000000000000016bc4606000000001976" +
	"a914e7da370944c15306b3809580110b0a6c653ac5a988ac0100000000000000" +
	"00000000")

// sigTx is a two input, two output transaction used for the hash type
// vectors.
var sigTx = hexToBytes("" +
	"04000000023aa20d75b13cc93c0804115ecb0a91828a7c7ead0563d9513b2c16" +
	"65bf1872cc010000006a473044022071c25c696c1639d8c476545142e4e033d2" +
	"9334f0412a25ee22fa68b6a1b39d09022018270e5634f8c9e737ac65134e8ea2" +
	"b583cf9611dc12de26beee9ec032699f7d0121033a67f19bad4eab86ffade1bd" +
	"050885e205562e07f8ebb50a114eb15b233a3b86ffffffffb30320f9392e9caf" +
	"3fcc9162158e9bd576f03664ac1e1d70f39e83445e92afeb000000006a473044" +
	"02203a40fcb0db0324d3ef83e75e6972f930d863f68939aa999189a0083e8be4" +
	"f3060220519e0cb97ee81b064ec406ff3ab2b79e3c6ef1b3397fa0beb0682090" +
	"68b38aaa0121033a67f19bad4eab86ffade1bd050885e205562e07f8ebb50a11" +
	"4eb15b233a3b86ffffffff02a12a3306000000001976a914f0ad10f5e6c7a8e9" +
	"b6cf0d1e580e3276625a684a88ac0100000000000000d3d4a105000000001976" +
	"a91459d20a7a09e90eccd7e61f5866a30ef291f98f2288ac0100000000000000" +
	"00000000")
