// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mvsjson

import (
	"encoding/hex"
)

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

// powBlock is proof of work block 2200000.
var powBlock = hexToBytes("" +
	"01000000921e76e1a8a9ee32c026dd2dafa71c9cea9c653deee966fd78815f66" +
	"f0120d97090eac8ad6cfc5e1aad41ec72c120af3853ebfa39d70d4d7ea369b9b" +
	"64061503a3e3d15c000000000000000000000000000000000000000000000000" +
	"0000096a069fad4f3440601f66682062e3a309cc023001e9d4f7f0247a0ea025" +
	"13c83d587c8963fa9dcfd95f677b5982c0912100010100000001000000000000" +
	"0000000000000000000000000000000000000000000000000000ffffffff0403" +
	"c0912100000000018383900e000000001976a9141ce4fdee49d444ec5ee28b4f" +
	"417a18b7d4d5fc7988ac000000000000000000000000")

// posBlock is proof of stake block 3588504 with a coinstake output and
// a trailing block signature.
var posBlock = hexToBytes("" +
	"02000000b7e935b501ea03f2a4d1e841e3056fe6a798f220a16faf029dfd88e2" +
	"04d9f482ca25333f941473c33c4665698bb1615bdd27269166772196147223ed" +
	"2501025be53d995e000000000000000000000000000000000000000000000000" +
	"0000000162634582000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000098c13600020100000001000000000000" +
	"0000000000000000000000000000000000000000000000000000ffffffff0403" +
	"98c136000000000167ac3f01000000001976a914b647fe80c145b24f2bb82ef4" +
	"cc9bec264116bc5f88ac0000000000000000000000000200000001ea3e9d7aab" +
	"07e8b410846466c87112963e78c7af562de13411d6b5b0a1c359ac010000006b" +
	"483045022100b8b5fff6b21be18cc57458cf25c0f3a78815a8b301c66ac95e3d" +
	"b87c6c6b82c402206c438d45eb93b8687701463c3104b1c4d43a07565e7ef45f" +
	"56fb5e0ae4ee7a410121033a3de166218712ea5739febc926c7744464792e6c8" +
	"9b132e296eaaf25c598562ffffffff0200000000000000000000000000ffffff" +
	"fff9814c76170000001976a914b647fe80c145b24f2bb82ef4cc9bec264116bc" +
	"5f88ac010000000000000000000000a3ce585a2d547e2f7597147be630f5eab1" +
	"583517d411a956e5976f603374666c7dc57ab00571ad146c4839d603b2670f2e" +
	"bdd46c7c81f42f6f33ea6ce47f526a")
