// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// ScriptChunk is a single parsed element of a script: either a bare opcode
// or a data push together with the bytes it pushes.
type ScriptChunk struct {
	Opcode byte
	Data   []byte
}

// IsData reports whether the chunk is a data push.
func (c ScriptChunk) IsData() bool {
	return isDataPush(c.Opcode)
}

// parseScript splits script into chunks and reports the first malformed
// push.
func parseScript(script []byte) ([]ScriptChunk, error) {
	chunks := make([]ScriptChunk, 0, len(script))
	tokenizer := MakeScriptTokenizer(script)
	for tokenizer.Next() {
		chunks = append(chunks, ScriptChunk{
			Opcode: tokenizer.Opcode(),
			Data:   tokenizer.Data(),
		})
	}
	if err := tokenizer.Err(); err != nil {
		return nil, err
	}
	return chunks, nil
}

// SplitScript splits script into chunks.  A push that claims more bytes than
// remain makes the whole result empty, so an empty result for a non-empty
// script means the script is malformed.
func SplitScript(script []byte) []ScriptChunk {
	chunks, err := parseScript(script)
	if err != nil {
		log.Debugf("Unable to split script %x: %v", script, err)
		return nil
	}
	return chunks
}

// Disassemble renders script in assembly notation.  Data pushes print as
// "[ <hex> ]" and opcodes by mnemonic, separated by single spaces.  A
// malformed script disassembles to the empty string together with the
// parse error.
func Disassemble(script []byte) (string, error) {
	chunks, err := parseScript(script)
	if err != nil {
		return "", err
	}
	return chunksToASM(chunks), nil
}

// DisasmString is Disassemble for callers that only display the result.
func DisasmString(script []byte) string {
	asm, _ := Disassemble(script)
	return asm
}

func chunksToASM(chunks []ScriptChunk) string {
	var sb strings.Builder
	for i, chunk := range chunks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if chunk.IsData() {
			sb.WriteString("[ ")
			sb.WriteString(hex.EncodeToString(chunk.Data))
			sb.WriteString(" ]")
			continue
		}
		sb.WriteString(OpcodeName(chunk.Opcode))
	}
	return sb.String()
}

// Assemble parses assembly text into a script.  Tokens are separated by
// whitespace; "[" and "]" open and close a data section whose tokens are hex
// encoded pushes.  Tokens outside brackets are opcode mnemonics, matched case
// insensitively with or without the OP_ prefix.
func Assemble(asm string) ([]byte, error) {
	var script []byte
	level := 0
	for _, token := range strings.Fields(asm) {
		switch token {
		case "[":
			level++
			continue
		case "]":
			if level == 0 {
				return nil, scriptError(ErrInvalidHexData,
					"unbalanced closing bracket")
			}
			level--
			continue
		}

		if level > 0 {
			data, err := hex.DecodeString(token)
			if err != nil {
				str := fmt.Sprintf("invalid data push %q: %v", token, err)
				return nil, scriptError(ErrInvalidHexData, str)
			}
			script = AppendPushData(script, data)
			continue
		}

		op, err := OpcodeByName(token)
		if err != nil {
			return nil, err
		}
		script = append(script, op)
	}
	if level != 0 {
		return nil, scriptError(ErrInvalidHexData, "unbalanced opening bracket")
	}
	return script, nil
}

// FromFullnode parses the script notation printed by the full node, which
// omits the OP_ prefix and writes mnemonics in lower case.
func FromFullnode(text string) ([]byte, error) {
	tokens := strings.Fields(text)
	level := 0
	for i, token := range tokens {
		switch {
		case token == "[":
			level++
		case token == "]":
			level--
		case level == 0:
			token = strings.ToUpper(token)
			if !strings.HasPrefix(token, "OP_") {
				token = "OP_" + token
			}
			tokens[i] = token
		}
	}
	return Assemble(strings.Join(tokens, " "))
}

// ScriptFromChunks serializes chunks back into a script.  Data pushes use
// the smallest push opcode able to carry them.
func ScriptFromChunks(chunks []ScriptChunk) []byte {
	var script []byte
	for _, chunk := range chunks {
		if chunk.IsData() {
			script = AppendPushData(script, chunk.Data)
			continue
		}
		script = append(script, chunk.Opcode)
	}
	return script
}

// AppendPushData appends the minimal push of data to script.
func AppendPushData(script, data []byte) []byte {
	n := len(data)
	switch {
	case n < OP_PUSHDATA1:
		script = append(script, byte(n))
	case n <= 0xff:
		script = append(script, OP_PUSHDATA1, byte(n))
	case n <= 0xffff:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(n))
		script = append(script, OP_PUSHDATA2)
		script = append(script, buf[:]...)
	default:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(n))
		script = append(script, OP_PUSHDATA4)
		script = append(script, buf[:]...)
	}
	return append(script, data...)
}
