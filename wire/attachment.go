// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
)

// AttachmentType is the discriminant written after the attachment version.
type AttachmentType uint32

// Attachment type codes.
const (
	AttachmentTypeETP         AttachmentType = 0
	AttachmentTypeMST         AttachmentType = 2
	AttachmentTypeMessage     AttachmentType = 3
	AttachmentTypeAvatar      AttachmentType = 4
	AttachmentTypeCertificate AttachmentType = 5
	AttachmentTypeMIT         AttachmentType = 6
	AttachmentTypeCoinstake   AttachmentType = 0xffffffff
)

var attachmentTypeStrings = map[AttachmentType]string{
	AttachmentTypeETP:         "etp",
	AttachmentTypeMST:         "asset",
	AttachmentTypeMessage:     "message",
	AttachmentTypeAvatar:      "did",
	AttachmentTypeCertificate: "asset-cert",
	AttachmentTypeMIT:         "mit",
	AttachmentTypeCoinstake:   "coinstake",
}

// String returns the AttachmentType in human-readable form.
func (t AttachmentType) String() string {
	if s, ok := attachmentTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", uint32(t))
}

const (
	// AttachmentVersionDefault is the version of an attachment without
	// identity strings.
	AttachmentVersionDefault uint32 = 1

	// AttachmentVersionDID marks an attachment that carries the to and
	// from identity strings ahead of its payload.
	AttachmentVersionDID uint32 = 207
)

// Status bytes and words that select the payload shape of the MST, MIT and
// avatar attachment types.
const (
	MSTStatusIssue    uint32 = 1
	MSTStatusTransfer uint32 = 2

	MITStatusIssue    uint8 = 1
	MITStatusTransfer uint8 = 2

	AvatarStatusRegister uint8 = 1
	AvatarStatusTransfer uint8 = 2
)

// CertificateType identifies the right a certificate attachment grants.
type CertificateType uint32

// Certificate types.
const (
	CertTypeIssue  CertificateType = 1
	CertTypeDomain CertificateType = 2
	CertTypeNaming CertificateType = 3
	CertTypeMining CertificateType = 0x60000004
)

var certTypeStrings = map[CertificateType]string{
	CertTypeIssue:  "issue",
	CertTypeDomain: "domain",
	CertTypeNaming: "naming",
	CertTypeMining: "mining",
}

// String returns the CertificateType in human-readable form.
func (t CertificateType) String() string {
	if s, ok := certTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%#x)", uint32(t))
}

// CertificateStatus is the lifecycle state of a certificate.
type CertificateStatus uint8

// Certificate statuses.
const (
	CertStatusDefault   CertificateStatus = 0
	CertStatusIssue     CertificateStatus = 1
	CertStatusTransfer  CertificateStatus = 2
	CertStatusAutoIssue CertificateStatus = 3
)

// AttachmentPayload is implemented by every attachment variant.  The set of
// implementations is closed to this package.
type AttachmentPayload interface {
	// Type returns the attachment type code written on the wire.
	Type() AttachmentType

	encode(w io.Writer) error
}

// ETPTransfer is the attachment of a plain value transfer.
type ETPTransfer struct{}

// Coinstake is the attachment of a proof of stake coinstake output.
type Coinstake struct{}

// Message carries free form text.
type Message struct {
	Data string
}

// MSTIssue creates a new fungible asset.
type MSTIssue struct {
	Symbol                  string
	MaxSupply               int64
	Precision               uint8
	SecondaryIssueThreshold uint8
	Issuer                  string
	Address                 string
	Description             string
}

// MSTTransfer moves a quantity of a fungible asset.
type MSTTransfer struct {
	Symbol   string
	Quantity int64
}

// MITIssue registers a new non-fungible token.
type MITIssue struct {
	Symbol  string
	Address string
	Content string
}

// MITTransfer moves a non-fungible token.
type MITTransfer struct {
	Symbol  string
	Address string
}

// AvatarRegister registers a digital identity.
type AvatarRegister struct {
	Symbol  string
	Address string
}

// AvatarTransfer moves a digital identity to a new address.
type AvatarTransfer struct {
	Symbol  string
	Address string
}

// Certificate grants a right over a symbol.  Content is only written for
// mining certificates.
type Certificate struct {
	Symbol   string
	Owner    string
	Address  string
	CertType CertificateType
	Status   CertificateStatus
	Content  string
}

// NewCertificate returns a certificate after checking the type and status are
// known.
func NewCertificate(symbol, owner, address string, certType CertificateType,
	status CertificateStatus, content string) (*Certificate, error) {

	if _, ok := certTypeStrings[certType]; !ok {
		str := fmt.Sprintf("certificate type %v is not supported",
			certType)
		return nil, messageError("NewCertificate",
			ErrUnsupportedCertificateType, str)
	}
	if status > CertStatusAutoIssue {
		str := fmt.Sprintf("certificate status %d is invalid", status)
		return nil, messageError("NewCertificate",
			ErrInvalidCertificateStatus, str)
	}
	c := &Certificate{
		Symbol:   symbol,
		Owner:    owner,
		Address:  address,
		CertType: certType,
		Status:   status,
	}
	if certType == CertTypeMining {
		c.Content = content
	}
	return c, nil
}

// Type implementations.
func (*ETPTransfer) Type() AttachmentType    { return AttachmentTypeETP }
func (*Coinstake) Type() AttachmentType      { return AttachmentTypeCoinstake }
func (*Message) Type() AttachmentType        { return AttachmentTypeMessage }
func (*MSTIssue) Type() AttachmentType       { return AttachmentTypeMST }
func (*MSTTransfer) Type() AttachmentType    { return AttachmentTypeMST }
func (*MITIssue) Type() AttachmentType       { return AttachmentTypeMIT }
func (*MITTransfer) Type() AttachmentType    { return AttachmentTypeMIT }
func (*AvatarRegister) Type() AttachmentType { return AttachmentTypeAvatar }
func (*AvatarTransfer) Type() AttachmentType { return AttachmentTypeAvatar }
func (*Certificate) Type() AttachmentType    { return AttachmentTypeCertificate }

func (*ETPTransfer) encode(io.Writer) error { return nil }
func (*Coinstake) encode(io.Writer) error   { return nil }

func (p *Message) encode(w io.Writer) error {
	return WriteVarString(w, p.Data)
}

func (p *MSTIssue) encode(w io.Writer) error {
	if err := writeUint32(w, MSTStatusIssue); err != nil {
		return err
	}
	if err := WriteVarString(w, p.Symbol); err != nil {
		return err
	}
	if err := writeInt64(w, "MSTIssue.encode", p.MaxSupply); err != nil {
		return err
	}
	// Precision, secondary issue threshold and two reserved bytes.
	if _, err := w.Write([]byte{p.Precision, p.SecondaryIssueThreshold,
		0, 0}); err != nil {
		return err
	}
	if err := WriteVarString(w, p.Issuer); err != nil {
		return err
	}
	if err := WriteVarString(w, p.Address); err != nil {
		return err
	}
	return WriteVarString(w, p.Description)
}

func (p *MSTTransfer) encode(w io.Writer) error {
	if err := writeUint32(w, MSTStatusTransfer); err != nil {
		return err
	}
	if err := WriteVarString(w, p.Symbol); err != nil {
		return err
	}
	return writeInt64(w, "MSTTransfer.encode", p.Quantity)
}

func (p *MITIssue) encode(w io.Writer) error {
	return writeStatusStrings(w, MITStatusIssue, p.Symbol, p.Address,
		p.Content)
}

func (p *MITTransfer) encode(w io.Writer) error {
	return writeStatusStrings(w, MITStatusTransfer, p.Symbol, p.Address)
}

func (p *AvatarRegister) encode(w io.Writer) error {
	return writeStatusStrings(w, AvatarStatusRegister, p.Symbol, p.Address)
}

func (p *AvatarTransfer) encode(w io.Writer) error {
	return writeStatusStrings(w, AvatarStatusTransfer, p.Symbol, p.Address)
}

func (p *Certificate) encode(w io.Writer) error {
	for _, s := range []string{p.Symbol, p.Owner, p.Address} {
		if err := WriteVarString(w, s); err != nil {
			return err
		}
	}
	if err := writeUint32(w, uint32(p.CertType)); err != nil {
		return err
	}
	if err := writeUint8(w, uint8(p.Status)); err != nil {
		return err
	}
	if p.CertType == CertTypeMining {
		return WriteVarString(w, p.Content)
	}
	return nil
}

// writeStatusStrings writes a status byte followed by each string.
func writeStatusStrings(w io.Writer, status uint8, strs ...string) error {
	if err := writeUint8(w, status); err != nil {
		return err
	}
	for _, s := range strs {
		if err := WriteVarString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// readStrings reads n varstrings from r.
func readStrings(r io.Reader, n int) ([]string, error) {
	strs := make([]string, n)
	for i := range strs {
		s, err := ReadVarString(r)
		if err != nil {
			return nil, err
		}
		strs[i] = s
	}
	return strs, nil
}

// Attachment is the typed metadata carried by every transaction output.
type Attachment struct {
	Version uint32
	ToDID   string
	FromDID string
	Payload AttachmentPayload
}

// NewAttachment returns a default version attachment for the payload.
func NewAttachment(p AttachmentPayload) Attachment {
	return Attachment{Version: AttachmentVersionDefault, Payload: p}
}

// Type returns the type code of the attachment payload.
func (a *Attachment) Type() AttachmentType {
	if a.Payload == nil {
		return AttachmentTypeETP
	}
	return a.Payload.Type()
}

// SetDID marks the attachment as carrying identity strings.
func (a *Attachment) SetDID(from, to string) {
	a.Version = AttachmentVersionDID
	a.FromDID = from
	a.ToDID = to
}

// HasDID returns whether the identity strings are part of the encoding.
func (a *Attachment) HasDID() bool {
	return a.Version == AttachmentVersionDID
}

// Encode writes the attachment to w.  A nil payload encodes as a plain ETP
// transfer, matching Type.
func (a *Attachment) Encode(w io.Writer) error {
	payload := a.Payload
	if payload == nil {
		payload = &ETPTransfer{}
	}
	if err := writeUint32(w, a.Version); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(payload.Type())); err != nil {
		return err
	}
	if a.HasDID() {
		if err := WriteVarString(w, a.ToDID); err != nil {
			return err
		}
		if err := WriteVarString(w, a.FromDID); err != nil {
			return err
		}
	}
	return payload.encode(w)
}

// Bytes returns the serialized attachment.
func (a *Attachment) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads an attachment from r into a.
func (a *Attachment) Decode(r io.Reader) error {
	version, err := readUint32(r)
	if err != nil {
		return err
	}
	typ, err := readUint32(r)
	if err != nil {
		return err
	}

	var toDID, fromDID string
	if version == AttachmentVersionDID {
		dids, err := readStrings(r, 2)
		if err != nil {
			return err
		}
		toDID, fromDID = dids[0], dids[1]
	}

	payload, err := decodePayload(r, AttachmentType(typ))
	if err != nil {
		return err
	}

	*a = Attachment{
		Version: version,
		ToDID:   toDID,
		FromDID: fromDID,
		Payload: payload,
	}
	return nil
}

// decodePayload reads the payload selected by typ and any secondary status
// discriminant.
func decodePayload(r io.Reader, typ AttachmentType) (AttachmentPayload, error) {
	const f = "decodePayload"

	switch typ {
	case AttachmentTypeETP:
		return &ETPTransfer{}, nil

	case AttachmentTypeCoinstake:
		return &Coinstake{}, nil

	case AttachmentTypeMessage:
		data, err := ReadVarString(r)
		if err != nil {
			return nil, err
		}
		return &Message{Data: data}, nil

	case AttachmentTypeMST:
		status, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		switch status {
		case MSTStatusIssue:
			return decodeMSTIssue(r)
		case MSTStatusTransfer:
			symbol, err := ReadVarString(r)
			if err != nil {
				return nil, err
			}
			quantity, err := readInt64(r)
			if err != nil {
				return nil, err
			}
			return &MSTTransfer{Symbol: symbol, Quantity: quantity}, nil
		}
		str := fmt.Sprintf("unsupported asset status %d", status)
		return nil, messageError(f, ErrUnsupportedAttachmentType, str)

	case AttachmentTypeMIT:
		status, err := readUint8(r)
		if err != nil {
			return nil, err
		}
		switch status {
		case MITStatusIssue:
			s, err := readStrings(r, 3)
			if err != nil {
				return nil, err
			}
			return &MITIssue{Symbol: s[0], Address: s[1], Content: s[2]}, nil
		case MITStatusTransfer:
			s, err := readStrings(r, 2)
			if err != nil {
				return nil, err
			}
			return &MITTransfer{Symbol: s[0], Address: s[1]}, nil
		}
		str := fmt.Sprintf("unsupported mit status %d", status)
		return nil, messageError(f, ErrUnsupportedAttachmentType, str)

	case AttachmentTypeAvatar:
		status, err := readUint8(r)
		if err != nil {
			return nil, err
		}
		if status != AvatarStatusRegister && status != AvatarStatusTransfer {
			str := fmt.Sprintf("invalid avatar attachment status %d",
				status)
			return nil, messageError(f, ErrInvalidAvatarStatus, str)
		}
		s, err := readStrings(r, 2)
		if err != nil {
			return nil, err
		}
		if status == AvatarStatusRegister {
			return &AvatarRegister{Symbol: s[0], Address: s[1]}, nil
		}
		return &AvatarTransfer{Symbol: s[0], Address: s[1]}, nil

	case AttachmentTypeCertificate:
		s, err := readStrings(r, 3)
		if err != nil {
			return nil, err
		}
		certType, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		if _, ok := certTypeStrings[CertificateType(certType)]; !ok {
			str := fmt.Sprintf("certificate type %#x is not supported",
				certType)
			return nil, messageError(f, ErrUnsupportedCertificateType,
				str)
		}
		status, err := readUint8(r)
		if err != nil {
			return nil, err
		}
		var content string
		if CertificateType(certType) == CertTypeMining {
			content, err = ReadVarString(r)
			if err != nil {
				return nil, err
			}
		}
		return NewCertificate(s[0], s[1], s[2], CertificateType(certType),
			CertificateStatus(status), content)
	}

	str := fmt.Sprintf("unsupported attachment type %v", typ)
	return nil, messageError(f, ErrUnsupportedAttachmentType, str)
}

func decodeMSTIssue(r io.Reader) (*MSTIssue, error) {
	symbol, err := ReadVarString(r)
	if err != nil {
		return nil, err
	}
	maxSupply, err := readInt64(r)
	if err != nil {
		return nil, err
	}
	var b [4]byte
	if err := readFull(r, "decodeMSTIssue", b[:]); err != nil {
		return nil, err
	}
	s, err := readStrings(r, 3)
	if err != nil {
		return nil, err
	}
	return &MSTIssue{
		Symbol:                  symbol,
		MaxSupply:               maxSupply,
		Precision:               b[0],
		SecondaryIssueThreshold: b[1],
		Issuer:                  s[0],
		Address:                 s[1],
		Description:             s[2],
	}, nil
}
