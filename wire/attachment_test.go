// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

const (
	testAvatarAddress = "MQWyTasDiEsAUqHy6fHuvzA2vozcVCVizQ"
	testMITAddress    = "MDGr9HfS8ramoiXQ5jJUe6THTJypbqwtqL"
)

func didAttachment(p AttachmentPayload, from, to string) Attachment {
	a := NewAttachment(p)
	a.SetDID(from, to)
	return a
}

// TestAttachmentWire tests encode and decode of every attachment variant
// against serialized attachments taken from the ledger.
func TestAttachmentWire(t *testing.T) {
	tests := []struct {
		name string
		in   Attachment
		buf  string
	}{
		{
			name: "etp transfer",
			in:   NewAttachment(&ETPTransfer{}),
			buf:  "0100000000000000",
		},
		{
			name: "etp transfer version 0",
			in:   Attachment{Version: 0, Payload: &ETPTransfer{}},
			buf:  "0000000000000000",
		},
		{
			name: "coinstake",
			in:   Attachment{Version: 0, Payload: &Coinstake{}},
			buf:  "00000000ffffffff",
		},
		{
			name: "etp transfer with did",
			in:   didAttachment(&ETPTransfer{}, "foo", "bar"),
			buf:  "cf000000000000000362617203666f6f",
		},
		{
			name: "message",
			in:   NewAttachment(&Message{Data: "hello"}),
			buf:  "01000000030000000568656c6c6f",
		},
		{
			name: "mst issue",
			in: NewAttachment(&MSTIssue{
				Symbol:      "SMILE",
				MaxSupply:   100,
				Issuer:      "adelachen",
				Address:     "MMV11MYH7rv6x7zSnESUzYrbFiEAPDe3VC",
				Description: "try this smile",
			}),
			buf: "01000000020000000100000005534d494c45640000000000000000000000" +
				"096164656c616368656e224d4d5631314d59483772763678377a536e45" +
				"53557a597262466945415044653356430e747279207468697320736d69" +
				"6c65",
		},
		{
			name: "mst transfer",
			in:   NewAttachment(&MSTTransfer{Symbol: "MVS.HUG", Quantity: 2}),
			buf:  "010000000200000002000000074d56532e4855470200000000000000",
		},
		{
			name: "mit issue with did",
			in: didAttachment(&MITIssue{
				Symbol:  "DAPHNE",
				Address: testMITAddress,
				Content: "Daphne's MIT assets ",
			}, "Daphne", "Daphne"),
			buf: "cf0000000600000006446170686e6506446170686e650106444150484e" +
				"45224d444772394866533872616d6f695851356a4a5565365448544a79" +
				"7062717774714c14446170686e652773204d49542061737365747320",
		},
		{
			name: "mit transfer",
			in: NewAttachment(&MITTransfer{
				Symbol:  "DAPHNE",
				Address: testMITAddress,
			}),
			buf: "01000000060000000206444150484e45224d444772394866533872616d" +
				"6f695851356a4a5565365448544a797062717774714c",
		},
		{
			name: "avatar register",
			in: NewAttachment(&AvatarRegister{
				Symbol:  "cangr",
				Address: testAvatarAddress,
			}),
			buf: "0100000004000000010563616e6772224d51577954617344694573415571" +
				"487936664875767a4132766f7a63564356697a51",
		},
		{
			name: "avatar transfer",
			in: NewAttachment(&AvatarTransfer{
				Symbol:  "cangr",
				Address: testAvatarAddress,
			}),
			buf: "0100000004000000020563616e6772224d51577954617344694573415571" +
				"487936664875767a4132766f7a63564356697a51",
		},
		{
			name: "domain certificate",
			in: NewAttachment(&Certificate{
				Symbol:   "MVS",
				Owner:    "cangr",
				Address:  testAvatarAddress,
				CertType: CertTypeDomain,
				Status:   CertStatusIssue,
			}),
			buf: "0100000005000000034d56530563616e6772224d5157795461734469457341" +
				"5571487936664875767a4132766f7a63564356697a510200000001",
		},
		{
			name: "mining certificate",
			in: NewAttachment(&Certificate{
				Symbol:   "MVS",
				Owner:    "cangr",
				Address:  testAvatarAddress,
				CertType: CertTypeMining,
				Status:   CertStatusDefault,
				Content:  "abc",
			}),
			buf: "0100000005000000034d56530563616e6772224d5157795461734469457341" +
				"5571487936664875767a4132766f7a63564356697a51040000600003616263",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			want := hexToBytes(test.buf)

			got, err := test.in.Bytes()
			require.NoError(t, err)
			require.Equal(t, want, got, "got: %s want: %s",
				spew.Sdump(got), spew.Sdump(want))

			var a Attachment
			require.NoError(t, a.Decode(bytes.NewReader(want)))
			require.Equal(t, test.in, a, spew.Sdump(a))
		})
	}
}

// TestAttachmentDIDOrder ensures the identity strings keep their roles
// through a round trip.
func TestAttachmentDIDOrder(t *testing.T) {
	var a Attachment
	err := a.Decode(bytes.NewReader(hexToBytes(
		"cf000000000000000362617203666f6f")))
	require.NoError(t, err)
	require.True(t, a.HasDID())
	require.Equal(t, "bar", a.ToDID)
	require.Equal(t, "foo", a.FromDID)
	require.Equal(t, AttachmentTypeETP, a.Type())
}

// TestAttachmentDecodeErrors performs negative tests against attachment
// decoding.
func TestAttachmentDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		code ErrorCode
	}{
		{"unknown type", "0100000099000000", ErrUnsupportedAttachmentType},
		{"unknown mst status", "010000000200000003000000",
			ErrUnsupportedAttachmentType},
		{"unknown mit status", "010000000600000003",
			ErrUnsupportedAttachmentType},
		{"avatar status", "010000000400000003", ErrInvalidAvatarStatus},
		{"certificate type", "010000000500000001410141014109000000",
			ErrUnsupportedCertificateType},
		{"certificate status", "01000000050000000141014101410200000004",
			ErrInvalidCertificateStatus},
		{"truncated header", "010000", ErrTruncatedBuffer},
		{"truncated did", "cf0000000000000003626172", ErrTruncatedBuffer},
		{"truncated message", "0100000003000000056865", ErrTruncatedBuffer},
		{"truncated mst issue", "01000000020000000100000001416400",
			ErrTruncatedBuffer},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var a Attachment
			err := a.Decode(bytes.NewReader(hexToBytes(test.buf)))
			require.Error(t, err)
			require.True(t, IsErrorCode(err, test.code),
				"want %v, got %v", test.code, err)
		})
	}
}

// TestNewCertificate tests certificate construction checks.
func TestNewCertificate(t *testing.T) {
	c, err := NewCertificate("MVS", "cangr", testAvatarAddress,
		CertTypeNaming, CertStatusAutoIssue, "ignored")
	require.NoError(t, err)
	require.Empty(t, c.Content)

	c, err = NewCertificate("MVS", "cangr", testAvatarAddress,
		CertTypeMining, CertStatusDefault, "abc")
	require.NoError(t, err)
	require.Equal(t, "abc", c.Content)

	_, err = NewCertificate("MVS", "cangr", testAvatarAddress,
		CertTypeIssue, 4, "")
	require.True(t, IsErrorCode(err, ErrInvalidCertificateStatus))

	_, err = NewCertificate("MVS", "cangr", testAvatarAddress, 7,
		CertStatusIssue, "")
	require.True(t, IsErrorCode(err, ErrUnsupportedCertificateType))
}

// TestAttachmentZeroValue ensures an attachment without a payload encodes
// as the plain transfer its type reports.
func TestAttachmentZeroValue(t *testing.T) {
	var empty Attachment
	require.Equal(t, AttachmentTypeETP, empty.Type())

	b, err := empty.Bytes()
	require.NoError(t, err)
	require.Equal(t, hexToBytes("0000000000000000"), b)

	var got Attachment
	require.NoError(t, got.Decode(bytes.NewReader(b)))
	require.Equal(t, AttachmentTypeETP, got.Type())
	require.Equal(t, &ETPTransfer{}, got.Payload)

	// A zero output is writable too.
	var buf bytes.Buffer
	require.NoError(t, WriteTxOut(&buf, &TxOut{}))
	require.Equal(t, (&TxOut{}).SerializeSize(), buf.Len())
}

// TestAttachmentEncodeErrors tests values that can not be written.
func TestAttachmentEncodeErrors(t *testing.T) {
	neg := NewAttachment(&MSTTransfer{Symbol: "MVS.HUG", Quantity: -1})
	_, err := neg.Bytes()
	require.True(t, IsErrorCode(err, ErrEncodingRange))
}

// TestAttachmentTypeStringer tests the stringized output of attachment
// type codes.
func TestAttachmentTypeStringer(t *testing.T) {
	require.Equal(t, "etp", AttachmentTypeETP.String())
	require.Equal(t, "coinstake", AttachmentTypeCoinstake.String())
	require.Equal(t, "unknown(153)", AttachmentType(0x99).String())
	require.Equal(t, "mining", CertTypeMining.String())
}
