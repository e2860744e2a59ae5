// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	btcchaincfg "github.com/btcsuite/btcd/chaincfg"
)

// Params defines a Metaverse network by the prefixes used to encode
// addresses and keys for it.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// HDCoinType is the BIP44 coin type of the network.
	HDCoinType uint32

	// DepositLockTimes lists the lock periods, in blocks, offered for
	// deposited ETP.
	DepositLockTimes []uint32
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate mvs network")

	// ErrUnknownNet describes an error where a network name or address
	// magic does not belong to any registered network.
	ErrUnknownNet = errors.New("unknown mvs network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")
)

var (
	registeredNets    = make(map[string]*Params)
	pubKeyHashAddrIDs = make(map[byte]*Params)
	scriptHashAddrIDs = make(map[byte]struct{})
	hdPrivToPubKeyIDs = make(map[[4]byte][]byte)
)

// Register registers the network parameters for a network.  This may error
// with ErrDuplicateNet if the network is already registered (either due to a
// previous Register call, or the network being one of the default networks).
func Register(params *Params) error {
	if _, ok := registeredNets[params.Name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Name] = params
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = params
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ParamsByName returns the registered network with the given name.
func ParamsByName(name string) (*Params, error) {
	params, ok := registeredNets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNet, name)
	}
	return params, nil
}

// ParamsForPubKeyHashAddrID returns the registered network whose
// pay-to-pubkey-hash addresses start with id.  Networks registered later win
// when two share a magic.
func ParamsForPubKeyHashAddrID(id byte) (*Params, error) {
	params, ok := pubKeyHashAddrIDs[id]
	if !ok {
		return nil, fmt.Errorf("%w: address magic %#02x", ErrUnknownNet, id)
	}
	return params, nil
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default or registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return pubBytes, nil
}

// DepositLockTime returns the lock period of the given deposit option.
func (p *Params) DepositLockTime(option int) (uint32, error) {
	if option < 0 || option >= len(p.DepositLockTimes) {
		return 0, fmt.Errorf("deposit option %d out of range [0, %d)",
			option, len(p.DepositLockTimes))
	}
	return p.DepositLockTimes[option], nil
}

// BtcParams returns bitcoin style network parameters carrying the address
// and key magics of p, for use with the btcutil key and address packages.
func (p *Params) BtcParams() *btcchaincfg.Params {
	return &btcchaincfg.Params{
		Name:             p.Name,
		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
		PrivateKeyID:     p.PrivateKeyID,
		HDPrivateKeyID:   p.HDPrivateKeyID,
		HDPublicKeyID:    p.HDPublicKeyID,
		HDCoinType:       p.HDCoinType,
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
}
