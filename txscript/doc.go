// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements the Metaverse transaction script encoding and the
signing rules built on it.

This package does not execute scripts.  It converts scripts between their
byte form and assembly text, builds and recognizes the standard locking
templates, computes signature hashes and encodes signatures, and evaluates
attenuation models that vest locked asset quantities over block height.

# Assembly

Scripts are written as whitespace separated tokens.  Opcodes are written by
mnemonic and data pushes as hex enclosed in brackets:

	OP_DUP OP_HASH160 [ 61fde3bd4e6955c99b16de2d71e2a369888a1c0b ] OP_EQUALVERIFY OP_CHECKSIG

Mnemonics are matched case insensitively with or without the OP_ prefix, so
the full node notation "dup hash160 [ ... ] equalverify checksig" assembles to
the same bytes.

# Attenuation

An attenuation lock prefixes a pay-to-pubkey-hash template with the model
text, the outpoint the lock was created from and OP_CHECKATTENUATIONVERIFY.
The model is a ";" separated list of KEY=VALUE parameters such as
"PN=0;LH=20;TYPE=1;LQ=10000;LP=100;UN=5".

# Errors

Errors returned by this package are of type txscript.Error.  The ErrorCode
field identifies the failure and IsErrorCode tests for a specific code.
*/
package txscript
