// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// MaxVarIntPayload is the maximum payload size for a variable length
	// integer.
	MaxVarIntPayload = 9

	// MaxMessagePayload is the maximum number of bytes a single length
	// prefixed field is allowed to claim.
	MaxMessagePayload = 1024 * 1024 * 32

	// MaxSafeInteger is the largest integer the legacy wallet tooling can
	// represent exactly.  It is the default bound used by VerifyUint for
	// 64-bit fields.
	MaxSafeInteger = 1<<53 - 1
)

// readFull reads exactly len(b) bytes from r.  Running out of data is
// reported as ErrTruncatedBuffer so callers never observe a partial read.
func readFull(r io.Reader, f string, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		str := fmt.Sprintf("unexpected end of data reading %d bytes",
			len(b))
		return messageError(f, ErrTruncatedBuffer, str)
	}
	return err
}

// readUint8 reads a single byte from r.
func readUint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if err := readFull(r, "readUint8", b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// readUint32 reads a little endian uint32 from r.
func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if err := readFull(r, "readUint32", b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// readUint64 reads a little endian uint64 from r.
func readUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if err := readFull(r, "readUint64", b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// readInt64 reads a 64-bit quantity that is stored as two little endian
// 32-bit words, low word first.
func readInt64(r io.Reader) (int64, error) {
	var b [8]byte
	if err := readFull(r, "readInt64", b[:]); err != nil {
		return 0, err
	}
	low := uint64(binary.LittleEndian.Uint32(b[0:4]))
	high := uint64(binary.LittleEndian.Uint32(b[4:8]))
	return int64(low | high<<32), nil
}

// writeUint8 writes a single byte to w.
func writeUint8(w io.Writer, val uint8) error {
	_, err := w.Write([]byte{val})
	return err
}

// writeUint32 writes val to w as a little endian uint32.
func writeUint32(w io.Writer, val uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], val)
	_, err := w.Write(b[:])
	return err
}

// writeUint64 writes val to w as a little endian uint64.
func writeUint64(w io.Writer, val uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], val)
	_, err := w.Write(b[:])
	return err
}

// writeInt64 writes a non-negative 64-bit quantity.  Negative values can not
// be represented on the wire and are rejected with ErrEncodingRange.
func writeInt64(w io.Writer, f string, val int64) error {
	if val < 0 {
		return rangeError(f, RangeNegative)
	}
	return writeUint64(w, uint64(val))
}

// ReadVarInt reads a variable length integer from r and returns it as a
// uint64.  Values that fit a shorter encoding are rejected with
// ErrNonCanonicalVarInt.
func ReadVarInt(r io.Reader) (uint64, error) {
	discriminant, err := readUint8(r)
	if err != nil {
		return 0, err
	}

	var rv, min uint64
	switch discriminant {
	case 0xff:
		rv, err = readUint64(r)
		if err != nil {
			return 0, err
		}
		min = 0x100000000

	case 0xfe:
		sv, err := readUint32(r)
		if err != nil {
			return 0, err
		}
		rv = uint64(sv)
		min = 0x10000

	case 0xfd:
		var b [2]byte
		if err := readFull(r, "ReadVarInt", b[:]); err != nil {
			return 0, err
		}
		rv = uint64(binary.LittleEndian.Uint16(b[:]))
		min = 0xfd

	default:
		rv = uint64(discriminant)
	}

	if rv < min {
		str := fmt.Sprintf("non-canonical varint %x - discriminant %x "+
			"must encode a value of at least %x", rv, discriminant, min)
		return 0, messageError("ReadVarInt", ErrNonCanonicalVarInt, str)
	}
	return rv, nil
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value.
func WriteVarInt(w io.Writer, val uint64) error {
	_, err := w.Write(AppendVarInt(nil, val))
	return err
}

// AppendVarInt appends the variable length encoding of val to b.
func AppendVarInt(b []byte, val uint64) []byte {
	switch {
	case val < 0xfd:
		return append(b, uint8(val))

	case val <= math.MaxUint16:
		b = append(b, 0xfd)
		return binary.LittleEndian.AppendUint16(b, uint16(val))

	case val <= math.MaxUint32:
		b = append(b, 0xfe)
		return binary.LittleEndian.AppendUint32(b, uint32(val))

	default:
		b = append(b, 0xff)
		return binary.LittleEndian.AppendUint64(b, val)
	}
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if val < 0xfd {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val <= math.MaxUint16 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val <= math.MaxUint32 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}

// ReadVarBytes reads a variable length byte array.  A byte array is encoded
// as a varInt containing the length of the array followed by the bytes
// themselves.  An error is returned if the length is greater than the
// passed maxAllowed parameter which helps protect against memory exhaustion
// attacks and forced panics through malformed messages.  The fieldName
// parameter is only used for the error message so it provides more context in
// the error.
func ReadVarBytes(r io.Reader, maxAllowed uint32, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	if count > uint64(maxAllowed) {
		str := fmt.Sprintf("%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, maxAllowed)
		return nil, messageError("ReadVarBytes", ErrFieldTooLarge, str)
	}

	b := make([]byte, count)
	if err := readFull(r, "ReadVarBytes", b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarBytes serializes a variable length byte array to w as a varInt
// containing the number of bytes, followed by the bytes themselves.
func WriteVarBytes(w io.Writer, bytes []byte) error {
	if err := WriteVarInt(w, uint64(len(bytes))); err != nil {
		return err
	}
	_, err := w.Write(bytes)
	return err
}

// ReadVarString reads a variable length UTF-8 string from r.
func ReadVarString(r io.Reader) (string, error) {
	return ReadVarStr(r, VarStrUTF8)
}

// WriteVarString serializes str to w as a varInt containing the length of the
// string followed by the bytes that represent the string itself.
func WriteVarString(w io.Writer, str string) error {
	return WriteVarBytes(w, []byte(str))
}

// VarStrEncoding selects how the characters of a varstr are mapped to the
// bytes written on the wire.
type VarStrEncoding int

// The supported varstr encodings.
const (
	// VarStrUTF8 writes the string as its UTF-8 bytes.
	VarStrUTF8 VarStrEncoding = iota

	// VarStrASCII writes the low byte of each character and reads bytes
	// back with the high bit cleared.
	VarStrASCII

	// VarStrHex treats the string as hex and writes the decoded bytes.
	VarStrHex
)

// EncodeVarStr returns the bytes of str under the given encoding, without
// the length prefix.
func EncodeVarStr(str string, enc VarStrEncoding) ([]byte, error) {
	switch enc {
	case VarStrASCII:
		b := make([]byte, 0, len(str))
		for _, c := range str {
			b = append(b, byte(c))
		}
		return b, nil

	case VarStrHex:
		b, err := hex.DecodeString(str)
		if err != nil {
			return nil, messageError("EncodeVarStr", ErrEncodingRange,
				err.Error())
		}
		return b, nil
	}
	return []byte(str), nil
}

// WriteVarStr writes str to w as a varint byte length followed by the bytes
// of str under the given encoding.
func WriteVarStr(w io.Writer, str string, enc VarStrEncoding) error {
	b, err := EncodeVarStr(str, enc)
	if err != nil {
		return err
	}
	return WriteVarBytes(w, b)
}

// ReadVarStr reads a length prefixed string from r and converts the bytes
// using the given encoding.
func ReadVarStr(r io.Reader, enc VarStrEncoding) (string, error) {
	b, err := ReadVarBytes(r, MaxMessagePayload, "varstr")
	if err != nil {
		return "", err
	}
	switch enc {
	case VarStrASCII:
		for i := range b {
			b[i] &= 0x7f
		}
	case VarStrHex:
		return hex.EncodeToString(b), nil
	}
	return string(b), nil
}

// VerifyUint checks that value is a number that can be written to an
// unsigned field whose largest value is max.  Integer and floating point
// kinds as well as json.Number and numeric strings are accepted.  The value
// converted to a uint64 is returned when all checks pass.
func VerifyUint(value interface{}, max uint64) (uint64, error) {
	const f = "VerifyUint"

	var fv float64
	switch v := value.(type) {
	case uint8:
		return verifyUnsigned(uint64(v), max)
	case uint16:
		return verifyUnsigned(uint64(v), max)
	case uint32:
		return verifyUnsigned(uint64(v), max)
	case uint64:
		return verifyUnsigned(v, max)
	case uint:
		return verifyUnsigned(uint64(v), max)
	case int8:
		return verifySigned(int64(v), max)
	case int16:
		return verifySigned(int64(v), max)
	case int32:
		return verifySigned(int64(v), max)
	case int64:
		return verifySigned(v, max)
	case int:
		return verifySigned(int64(v), max)
	case float32:
		fv = float64(v)
	case float64:
		fv = v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return verifySigned(i, max)
		}
		parsed, err := v.Float64()
		if err != nil {
			return 0, rangeError(f, RangeNonNumber)
		}
		fv = parsed
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, rangeError(f, RangeNonNumber)
		}
		fv = parsed
	default:
		return 0, rangeError(f, RangeNonNumber)
	}

	switch {
	case math.IsNaN(fv):
		return 0, rangeError(f, RangeNonNumber)
	case fv < 0:
		return 0, rangeError(f, RangeNegative)
	case fv > float64(max):
		return 0, rangeError(f, RangeOverflow)
	case math.Floor(fv) != fv:
		return 0, rangeError(f, RangeFractional)
	}
	return uint64(fv), nil
}

func verifySigned(v int64, max uint64) (uint64, error) {
	if v < 0 {
		return 0, rangeError("VerifyUint", RangeNegative)
	}
	return verifyUnsigned(uint64(v), max)
}

func verifyUnsigned(v, max uint64) (uint64, error) {
	if v > max {
		return 0, rangeError("VerifyUint", RangeOverflow)
	}
	return v, nil
}

// DoubleHashB calculates hash256 (sha256(sha256(b))) and returns the
// resulting bytes.
func DoubleHashB(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

// DoubleHashH calculates hash256 (sha256(sha256(b))) and returns the
// resulting bytes as a Hash.
func DoubleHashH(b []byte) chainhash.Hash {
	return chainhash.DoubleHashH(b)
}

// NewHashFromStr creates a Hash from a display order (byte reversed) hex
// string.
func NewHashFromStr(hash string) (*chainhash.Hash, error) {
	h, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return nil, messageError("NewHashFromStr", ErrInvalidHash,
			err.Error())
	}
	return h, nil
}
