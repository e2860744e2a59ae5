// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdwallet

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/mvs-org/mvsd/address"
	"github.com/mvs-org/mvsd/chaincfg"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultPath is the path of the first address of a wallet.
	DefaultPath = "m/0"

	// DefaultSearchLimit is the number of child indices AddressPath
	// searches when no limit is given.
	DefaultSearchLimit = 100

	// mnemonicIterations is the number of PBKDF2 rounds used to stretch
	// a mnemonic into a seed.
	mnemonicIterations = 2048
)

var (
	// ErrInvalidPath describes an error where a derivation path is not of
	// the form m/0/1'/2.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrAddressNotFound describes an error where no child of the searched
	// path pays to the given address.
	ErrAddressNotFound = errors.New("address not found")

	// ErrWrongNetwork describes an error where an extended key was encoded
	// for another network.
	ErrWrongNetwork = errors.New("extended key is for a different network")

	// ErrEmptyMnemonic describes an error where no mnemonic words were
	// given.
	ErrEmptyMnemonic = errors.New("empty mnemonic")
)

// Wallet is a hierarchical deterministic wallet rooted at a single extended
// key.  Paths are written as m/0/1'/2; the m/ prefix is optional and a
// trailing ' or h marks a hardened index.
type Wallet struct {
	root   *hdkeychain.ExtendedKey
	params *chaincfg.Params
}

// FromSeed creates a wallet from a BIP32 seed.
func FromSeed(seed []byte, params *chaincfg.Params) (*Wallet, error) {
	root, err := hdkeychain.NewMaster(seed, params.BtcParams())
	if err != nil {
		return nil, err
	}
	return &Wallet{root: root, params: params}, nil
}

// MnemonicToSeed stretches a mnemonic sentence and optional passphrase into
// a 64 byte seed.  The words are not checked against any word list.
func MnemonicToSeed(mnemonic, passphrase string) ([]byte, error) {
	words := strings.Fields(mnemonic)
	if len(words) == 0 {
		return nil, ErrEmptyMnemonic
	}
	return pbkdf2.Key([]byte(strings.Join(words, " ")),
		[]byte("mnemonic"+passphrase), mnemonicIterations, 64,
		sha512.New), nil
}

// FromMnemonic creates a wallet from the seed of a mnemonic sentence.
func FromMnemonic(mnemonic string, params *chaincfg.Params) (*Wallet, error) {
	seed, err := MnemonicToSeed(mnemonic, "")
	if err != nil {
		return nil, err
	}
	return FromSeed(seed, params)
}

// FromBase58 creates a wallet rooted at an encoded extended key.  A public
// extended key gives a wallet that can derive addresses but not sign.
func FromBase58(key string, params *chaincfg.Params) (*Wallet, error) {
	root, err := hdkeychain.NewKeyFromString(key)
	if err != nil {
		return nil, err
	}
	if !root.IsForNet(params.BtcParams()) {
		return nil, ErrWrongNetwork
	}
	return &Wallet{root: root, params: params}, nil
}

// Params returns the network the wallet encodes addresses for.
func (w *Wallet) Params() *chaincfg.Params {
	return w.params
}

// ParsePath parses a derivation path into child indices.  The empty path and
// "m" refer to the root.
func ParsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "m" {
		return nil, nil
	}
	path = strings.TrimPrefix(path, "m/")

	segments := strings.Split(path, "/")
	indices := make([]uint32, 0, len(segments))
	for _, segment := range segments {
		var offset uint32
		if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") {
			segment = segment[:len(segment)-1]
			offset = hdkeychain.HardenedKeyStart
		}
		index, err := strconv.ParseUint(segment, 10, 32)
		if err != nil || uint32(index) >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
		indices = append(indices, uint32(index)+offset)
	}
	return indices, nil
}

// Key returns the extended key at path.
func (w *Wallet) Key(path string) (*hdkeychain.ExtendedKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	key := w.root
	for _, index := range indices {
		key, err = key.Derive(index)
		if err != nil {
			return nil, err
		}
	}
	return key, nil
}

// ToBase58 returns the encoded extended key at path.
func (w *Wallet) ToBase58(path string) (string, error) {
	key, err := w.Key(path)
	if err != nil {
		return "", err
	}
	return key.String(), nil
}

// WIF returns the compressed wallet import format private key at path.
func (w *Wallet) WIF(path string) (string, error) {
	priv, err := w.privKey(path)
	if err != nil {
		return "", err
	}
	wif, err := btcutil.NewWIF(priv, w.params.BtcParams(), true)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

// PublicKey returns the compressed public key at path.
func (w *Wallet) PublicKey(path string) ([]byte, error) {
	key, err := w.Key(path)
	if err != nil {
		return nil, err
	}
	pub, err := key.ECPubKey()
	if err != nil {
		return nil, err
	}
	return pub.SerializeCompressed(), nil
}

// Address returns the pay-to-pubkey-hash address at path.
func (w *Wallet) Address(path string) (string, error) {
	pub, err := w.PublicKey(path)
	if err != nil {
		return "", err
	}
	addr, err := address.NewAddressPubKeyHashFromPubKey(pub, w.params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// AddressPath searches the first limit children of basePath for the one
// paying to addr and returns its path.  An empty basePath searches the
// children of the root and a limit of zero or less uses
// DefaultSearchLimit.
func (w *Wallet) AddressPath(addr, basePath string, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if basePath == "" {
		basePath = "m"
	}
	base, err := w.Key(basePath)
	if err != nil {
		return "", err
	}
	for i := 0; i < limit; i++ {
		child, err := base.Derive(uint32(i))
		if err != nil {
			// Indices giving an invalid key are skipped.
			if errors.Is(err, hdkeychain.ErrInvalidChild) {
				continue
			}
			return "", err
		}
		pub, err := child.ECPubKey()
		if err != nil {
			return "", err
		}
		candidate, err := address.NewAddressPubKeyHashFromPubKey(
			pub.SerializeCompressed(), w.params)
		if err != nil {
			return "", err
		}
		if candidate.EncodeAddress() == addr {
			return basePath + "/" + strconv.Itoa(i), nil
		}
	}
	return "", ErrAddressNotFound
}

func (w *Wallet) privKey(path string) (*btcec.PrivateKey, error) {
	key, err := w.Key(path)
	if err != nil {
		return nil, err
	}
	return key.ECPrivKey()
}

// SignerAt returns a signer for the private key at path.
func (w *Wallet) SignerAt(path string) (*KeySigner, error) {
	priv, err := w.privKey(path)
	if err != nil {
		return nil, err
	}
	return NewKeySigner(priv), nil
}

// KeySigner signs hashes with a secp256k1 private key.  Nonces are derived
// per RFC6979 so signatures are deterministic.
type KeySigner struct {
	key *btcec.PrivateKey
}

// NewKeySigner returns a signer for key.
func NewKeySigner(key *btcec.PrivateKey) *KeySigner {
	return &KeySigner{key: key}
}

// Sign returns the 64 byte r || s signature of hash with a low S value.
func (s *KeySigner) Sign(hash []byte) ([]byte, error) {
	sig := ecdsa.SignCompact(s.key, hash, true)
	// Drop the recovery code.
	return sig[1:], nil
}

// PublicKey returns the 33 byte compressed public key of the signer.
func (s *KeySigner) PublicKey() []byte {
	return s.key.PubKey().SerializeCompressed()
}
