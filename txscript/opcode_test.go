// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOpcodeArray ensures every entry of the opcode table is stored at the
// index of its own value and that push lengths agree with the value.
func TestOpcodeArray(t *testing.T) {
	t.Parallel()

	for i, op := range opcodeArray {
		require.Equal(t, byte(i), op.value, "opcode %s", op.name)
		require.NotEmpty(t, op.name, "opcode %#x has no name", i)

		switch {
		case op.value >= OP_DATA_1 && op.value <= OP_DATA_75:
			require.Equal(t, int(op.value)+1, op.length, op.name)
			require.Equal(t, fmt.Sprintf("OP_DATA_%d", op.value), op.name)
		case op.value == OP_PUSHDATA1:
			require.Equal(t, -1, op.length)
		case op.value == OP_PUSHDATA2:
			require.Equal(t, -2, op.length)
		case op.value == OP_PUSHDATA4:
			require.Equal(t, -4, op.length)
		default:
			require.Equal(t, 1, op.length, op.name)
		}
	}
}

// TestOpcodeByName ensures mnemonics resolve regardless of case and OP_
// prefix, including the aliases.
func TestOpcodeByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want byte
	}{
		{"OP_DUP", OP_DUP},
		{"dup", OP_DUP},
		{"Hash160", OP_HASH160},
		{"op_equalverify", OP_EQUALVERIFY},
		{"checksig", OP_CHECKSIG},
		{"OP_FALSE", OP_0},
		{"true", OP_1},
		{"nop2", OP_CHECKLOCKTIMEVERIFY},
		{"nop3", OP_CHECKATTENUATIONVERIFY},
		{"checkattenuationverify", OP_CHECKATTENUATIONVERIFY},
		{"OP_PUSHDATA1", OP_PUSHDATA1},
		{"return", OP_RETURN},
	}
	for _, test := range tests {
		op, err := OpcodeByName(test.name)
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, op, test.name)
	}

	for _, name := range []string{"hash166", "OP_DATA_20", "", "OP_"} {
		_, err := OpcodeByName(name)
		require.True(t, IsErrorCode(err, ErrUnknownOpcode),
			"%q: unexpected error %v", name, err)
	}
}

// TestOpcodeName ensures opcode values map back to their mnemonics.
func TestOpcodeName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "OP_DUP", OpcodeName(OP_DUP))
	require.Equal(t, "OP_CHECKATTENUATIONVERIFY",
		OpcodeName(OP_CHECKATTENUATIONVERIFY))
	require.Equal(t, "OP_INVALIDOPCODE", OpcodeName(OP_INVALIDOPCODE))

	// Every name that is not a fixed push must resolve to its own value.
	for _, op := range opcodeArray {
		if op.value >= OP_DATA_1 && op.value <= OP_DATA_75 {
			continue
		}
		v, err := OpcodeByName(op.name)
		require.NoError(t, err, op.name)
		require.Equal(t, op.value, v, op.name)
	}
}
