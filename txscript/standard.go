// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/mvs-org/mvsd/address"
	"github.com/mvs-org/mvsd/chaincfg"
)

const (
	// pubKeyHashLen is the length of a pay-to-pubkey-hash hash.
	pubKeyHashLen = 20

	// payToPubKeyHashLen is the length of a pay-to-pubkey-hash script:
	// OP_DUP OP_HASH160 OP_DATA_20 <hash> OP_EQUALVERIFY OP_CHECKSIG.
	payToPubKeyHashLen = 25
)

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the ledger.
const (
	NonStandardTy ScriptClass = iota // None of the recognized forms.
	PubKeyHashTy                     // Pay pubkey hash.
	AttenuationTy                    // Attenuation locked pay pubkey hash.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy: "nonstandard",
	PubKeyHashTy:  "pubkeyhash",
	AttenuationTy: "attenuation",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// isPubKeyHashScript returns whether script is exactly the 25 byte
// pay-to-pubkey-hash template.
func isPubKeyHashScript(script []byte) bool {
	return len(script) == payToPubKeyHashLen &&
		script[0] == OP_DUP &&
		script[1] == OP_HASH160 &&
		script[2] == OP_DATA_20 &&
		script[23] == OP_EQUALVERIFY &&
		script[24] == OP_CHECKSIG
}

// IsPayToPubKeyHash returns true if the script is in the standard
// pay-to-pubkey-hash (P2PKH) format, false otherwise.
func IsPayToPubKeyHash(script []byte) bool {
	return isPubKeyHashScript(script)
}

// GetScriptClass returns the class of the script passed.
//
// NonStandardTy will be returned when the script does not parse.
func GetScriptClass(script []byte) ScriptClass {
	switch {
	case isPubKeyHashScript(script):
		return PubKeyHashTy
	case HasAttenuationModel(DisasmString(script)):
		return AttenuationTy
	}
	return NonStandardTy
}

// payToPubKeyHashScript creates a new script to pay a transaction
// output to a 20-byte pubkey hash.
func payToPubKeyHashScript(pubKeyHash []byte) []byte {
	script := make([]byte, 0, payToPubKeyHashLen)
	script = append(script, OP_DUP, OP_HASH160)
	script = AppendPushData(script, pubKeyHash)
	return append(script, OP_EQUALVERIFY, OP_CHECKSIG)
}

// PayToPubKeyHashScript creates a new script to pay a transaction output to
// a 20-byte pubkey hash.
func PayToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != pubKeyHashLen {
		str := fmt.Sprintf("public key hash is %d bytes, want %d",
			len(pubKeyHash), pubKeyHashLen)
		return nil, scriptError(ErrInvalidPubKeyHash, str)
	}
	return payToPubKeyHashScript(pubKeyHash), nil
}

// PayToAddrScript creates a new script to pay a transaction output to the
// specified pay-to-pubkey-hash address.
func PayToAddrScript(addr string, params *chaincfg.Params) ([]byte, error) {
	a, err := address.DecodeAddress(addr, params)
	if err != nil {
		return nil, err
	}
	pkh, ok := a.(*address.AddressPubKeyHash)
	if !ok {
		str := fmt.Sprintf("address %s is not pay-to-pubkey-hash", addr)
		return nil, scriptError(ErrNotPayToPubKeyHash, str)
	}
	return payToPubKeyHashScript(pkh.ScriptAddress()), nil
}

// ExtractPubKeyHash returns the 20 byte hash paid to by a pay-to-pubkey-hash
// script or by the pay-to-pubkey-hash tail of an attenuation lock.
func ExtractPubKeyHash(script []byte) ([]byte, error) {
	switch GetScriptClass(script) {
	case PubKeyHashTy:
		return script[3:23], nil
	case AttenuationTy:
		if len(script) > payToPubKeyHashLen {
			tail := script[len(script)-payToPubKeyHashLen:]
			if isPubKeyHashScript(tail) {
				return tail[3:23], nil
			}
		}
	}
	return nil, scriptError(ErrNotPayToPubKeyHash,
		"script is not pay-to-pubkey-hash")
}

// AddressFromScript returns the address a standard script pays to.
func AddressFromScript(script []byte, params *chaincfg.Params) (string, error) {
	hash, err := ExtractPubKeyHash(script)
	if err != nil {
		return "", err
	}
	a, err := address.NewAddressPubKeyHash(hash, params)
	if err != nil {
		return "", err
	}
	return a.EncodeAddress(), nil
}
