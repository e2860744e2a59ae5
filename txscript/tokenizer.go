// Copyright (c) 2019 The Decred developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"fmt"
)

// ScriptTokenizer walks a script one opcode at a time.  Each successive opcode
// is parsed with Next, which returns false when the script is exhausted or a
// push claims more bytes than remain.  In the latter case Err reports the
// failure.
type ScriptTokenizer struct {
	script []byte
	offset int
	op     *opcode
	data   []byte
	err    error
}

// MakeScriptTokenizer returns a tokenizer positioned at the start of script.
func MakeScriptTokenizer(script []byte) ScriptTokenizer {
	return ScriptTokenizer{script: script}
}

// Done returns true when either all opcodes have been exhausted or a parse
// failure was encountered.
func (t *ScriptTokenizer) Done() bool {
	return t.err != nil || t.offset >= len(t.script)
}

// Next attempts to parse the next opcode and returns whether or not it was
// successful.
func (t *ScriptTokenizer) Next() bool {
	if t.Done() {
		return false
	}

	op := &opcodeArray[t.script[t.offset]]
	switch {
	// Plain opcodes, including OP_0 and the small integers.
	case op.length == 1:
		t.offset++
		t.op = op
		t.data = nil
		return true

	// OP_DATA_[1-75].
	case op.length > 1:
		script := t.script[t.offset:]
		if len(script) < op.length {
			str := fmt.Sprintf("opcode %s requires %d bytes, but script only "+
				"has %d remaining", op.name, op.length, len(script))
			t.err = scriptError(ErrMalformedPush, str)
			return false
		}

		t.offset += op.length
		t.op = op
		t.data = script[1:op.length]
		return true

	// OP_PUSHDATA{1,2,4}.
	default:
		script := t.script[t.offset+1:]
		if len(script) < -op.length {
			str := fmt.Sprintf("opcode %s requires %d bytes, but script only "+
				"has %d remaining", op.name, -op.length, len(script))
			t.err = scriptError(ErrMalformedPush, str)
			return false
		}

		var dataLen uint64
		switch op.length {
		case -1:
			dataLen = uint64(script[0])
		case -2:
			dataLen = uint64(binary.LittleEndian.Uint16(script[:2]))
		default:
			dataLen = uint64(binary.LittleEndian.Uint32(script[:4]))
		}

		script = script[-op.length:]
		if dataLen > uint64(len(script)) {
			str := fmt.Sprintf("opcode %s pushes %d bytes, but script only "+
				"has %d remaining", op.name, dataLen, len(script))
			t.err = scriptError(ErrMalformedPush, str)
			return false
		}

		t.offset += 1 - op.length + int(dataLen)
		t.op = op
		t.data = script[:dataLen]
		return true
	}
}

// ByteIndex returns the offset of the next opcode to be parsed.
func (t *ScriptTokenizer) ByteIndex() int {
	return t.offset
}

// Opcode returns the most recently parsed opcode.
func (t *ScriptTokenizer) Opcode() byte {
	return t.op.value
}

// Data returns the data pushed by the most recently parsed opcode, or nil
// for opcodes that push nothing.
func (t *ScriptTokenizer) Data() []byte {
	return t.data
}

// Err returns the parse failure, if any.
func (t *ScriptTokenizer) Err() error {
	return t.err
}

// isDataPush reports whether op carries bytes after it.
func isDataPush(op byte) bool {
	return op >= OP_DATA_1 && op <= OP_PUSHDATA4
}
