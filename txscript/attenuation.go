// Copyright (c) 2019-2020 The mvs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvs-org/mvsd/chaincfg"
	"github.com/mvs-org/mvsd/wire"
)

// attenuationPattern matches the assembly of an attenuation lock: the model,
// the 36 byte outpoint of the locking transaction, OP_CHECKATTENUATIONVERIFY
// and a pay-to-pubkey-hash template.  Mnemonics may be written with or
// without the OP_ prefix and in either case.
var attenuationPattern = regexp.MustCompile(`(?i)^\[ ([a-f0-9]+) \] \[ ([a-f0-9]+) \] ` +
	`(checkattenuationverify|op_checkattenuationverify) (dup|op_dup) ` +
	`(hash160|op_hash160) \[ [a-f0-9]+ \] (equalverify|op_equalverify) ` +
	`(checksig|op_checksig)$`)

// Attenuation model types.
const (
	AttenuationTypeFixed     = 1 // equal quantities over equal periods
	AttenuationTypeCustom    = 2 // explicit per period schedule
	AttenuationTypeInflation = 3 // explicit schedule, inflationary issue
)

// HasAttenuationModel returns whether asm is the assembly of an attenuation
// lock script.
func HasAttenuationModel(asm string) bool {
	return attenuationPattern.MatchString(asm)
}

// ExtractAttenuationModel returns the model string carried by the assembly
// of an attenuation lock script.
func ExtractAttenuationModel(asm string) (string, error) {
	match := attenuationPattern.FindStringSubmatch(asm)
	if match == nil {
		return "", scriptError(ErrNoAttenuationModel,
			"script does not contain an attenuation model")
	}
	model, err := hex.DecodeString(match[1])
	if err != nil {
		str := fmt.Sprintf("invalid attenuation model data: %v", err)
		return "", scriptError(ErrInvalidHexData, str)
	}
	return string(model), nil
}

// AttenuationLockScript creates a script that locks the asset paid to addr
// under model.  txHash and index identify the output the lock was created
// from; a fresh lock uses the zero hash and wire.MaxPrevOutIndex.
func AttenuationLockScript(addr, model string, txHash *chainhash.Hash,
	index uint32, params *chaincfg.Params) ([]byte, error) {

	p2pkh, err := PayToAddrScript(addr, params)
	if err != nil {
		return nil, err
	}

	var outPoint [chainhash.HashSize + 4]byte
	copy(outPoint[:], txHash[:])
	binary.LittleEndian.PutUint32(outPoint[chainhash.HashSize:], index)

	script := AppendPushData(nil, []byte(model))
	script = AppendPushData(script, outPoint[:])
	script = append(script, OP_CHECKATTENUATIONVERIFY)
	return append(script, p2pkh...), nil
}

// AttenuationModel is a parsed vesting schedule.
//
// PN is the current period and LH the blocks left in it.  Fixed models
// unlock LQ/UN every LP/UN blocks over UN periods.  Custom models list the
// length of each period in UC and the quantity it unlocks in UQ.
type AttenuationModel struct {
	Type int64
	PN   int64
	LH   int64
	LQ   int64
	LP   int64
	UN   int64
	UC   []int64
	UQ   []int64
}

// ParseAttenuationModel parses a ";" separated list of KEY=VALUE
// parameters.  UC and UQ take "," separated lists.
func ParseAttenuationModel(model string) (*AttenuationModel, error) {
	var m AttenuationModel
	for _, segment := range strings.Split(model, ";") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			str := fmt.Sprintf("attenuation parameter %q is not "+
				"KEY=VALUE", segment)
			return nil, scriptError(ErrInvalidAttenuationParameter, str)
		}

		if key == "UC" || key == "UQ" {
			list, err := parseAttenuationList(key, value)
			if err != nil {
				return nil, err
			}
			if key == "UC" {
				m.UC = list
			} else {
				m.UQ = list
			}
			continue
		}

		var field *int64
		switch key {
		case "TYPE":
			field = &m.Type
		case "PN":
			field = &m.PN
		case "LH":
			field = &m.LH
		case "LQ":
			field = &m.LQ
		case "LP":
			field = &m.LP
		case "UN":
			field = &m.UN
		default:
			str := fmt.Sprintf("unknown attenuation parameter %q", key)
			return nil, scriptError(ErrInvalidAttenuationParameter, str)
		}
		v, err := parseAttenuationInt(key, value)
		if err != nil {
			return nil, err
		}
		*field = v
	}
	return &m, nil
}

func parseAttenuationInt(key, value string) (int64, error) {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		str := fmt.Sprintf("invalid attenuation parameter %s=%q", key, value)
		return 0, scriptError(ErrInvalidAttenuationParameter, str)
	}
	return v, nil
}

func parseAttenuationList(key, value string) ([]int64, error) {
	parts := strings.Split(value, ",")
	list := make([]int64, 0, len(parts))
	for _, part := range parts {
		v, err := parseAttenuationInt(key, part)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// String returns the model in the form it is embedded in scripts.  Keys are
// written in the order PN, LH, TYPE, LQ, LP, UN, UC, UQ.  LQ, LP and UN are
// omitted when zero and UC and UQ when empty.
func (m *AttenuationModel) String() string {
	params := []string{
		"PN=" + strconv.FormatInt(m.PN, 10),
		"LH=" + strconv.FormatInt(m.LH, 10),
		"TYPE=" + strconv.FormatInt(m.Type, 10),
	}
	for _, p := range []struct {
		key   string
		value int64
	}{{"LQ", m.LQ}, {"LP", m.LP}, {"UN", m.UN}} {
		if p.value != 0 {
			params = append(params, p.key+"="+strconv.FormatInt(p.value, 10))
		}
	}
	for _, p := range []struct {
		key  string
		list []int64
	}{{"UC", m.UC}, {"UQ", m.UQ}} {
		if len(p.list) == 0 {
			continue
		}
		values := make([]string, len(p.list))
		for i, v := range p.list {
			values[i] = strconv.FormatInt(v, 10)
		}
		params = append(params, p.key+"="+strings.Join(values, ","))
	}
	return strings.Join(params, ";")
}

// Locked returns the quantity still locked at currentHeight for an output
// created at txHeight.  Type 1 models lock LQ/UN per period and the last
// period also carries LQ%UN, so the whole of LQ is locked until the final
// unlock.
func (m *AttenuationModel) Locked(txHeight, currentHeight int64) (int64, error) {
	if m.PN < 0 {
		str := fmt.Sprintf("negative attenuation period %d", m.PN)
		return 0, scriptError(ErrInvalidAttenuationParameter, str)
	}

	var locked int64
	target := m.LH
	switch m.Type {
	case AttenuationTypeFixed:
		if m.UN <= 0 {
			str := fmt.Sprintf("invalid attenuation period count %d", m.UN)
			return 0, scriptError(ErrInvalidAttenuationParameter, str)
		}
		for period := m.PN; period < m.UN; period++ {
			if period != m.PN {
				target += m.LP / m.UN
			}
			if txHeight+target > currentHeight {
				locked += m.LQ / m.UN
				if period == m.UN-1 {
					locked += m.LQ % m.UN
				}
			}
		}

	case AttenuationTypeCustom, AttenuationTypeInflation:
		if err := m.checkSchedule(); err != nil {
			return 0, err
		}
		for period := m.PN; period < int64(len(m.UC)); period++ {
			if period != m.PN {
				target += m.UC[period]
			}
			if txHeight+target > currentHeight {
				locked += m.UQ[period]
			}
		}

	default:
		str := fmt.Sprintf("invalid attenuation model type %d", m.Type)
		return 0, scriptError(ErrInvalidAttenuationModelType, str)
	}
	return locked, nil
}

func (m *AttenuationModel) checkSchedule() error {
	switch {
	case m.UC == nil:
		return scriptError(ErrInvalidAttenuationArray,
			"attenuation model has no UC schedule")
	case m.UQ == nil:
		return scriptError(ErrInvalidAttenuationArray,
			"attenuation model has no UQ schedule")
	case len(m.UQ) < len(m.UC):
		str := fmt.Sprintf("attenuation model UQ has %d periods, UC has %d",
			len(m.UQ), len(m.UC))
		return scriptError(ErrInvalidAttenuationArray, str)
	}
	return nil
}

// Adjust returns the model as seen delta blocks later.  The model is not
// modified.  A delta that is not positive returns a copy of m.
//
// Custom schedules advance by the length of the following period, UC[PN+1],
// while Locked steps by UC[PN].
func (m *AttenuationModel) Adjust(delta int64) (*AttenuationModel, error) {
	adjusted := *m
	if m.UC != nil {
		adjusted.UC = append([]int64{}, m.UC...)
	}
	if m.UQ != nil {
		adjusted.UQ = append([]int64{}, m.UQ...)
	}
	if delta <= 0 {
		return &adjusted, nil
	}

	blocksLeft := m.LH
	switch m.Type {
	case AttenuationTypeFixed:
		if m.UN <= 0 {
			str := fmt.Sprintf("invalid attenuation period count %d", m.UN)
			return nil, scriptError(ErrInvalidAttenuationParameter, str)
		}
		for period := m.PN; period < m.UN; period++ {
			if blocksLeft >= delta {
				adjusted.LH = blocksLeft - delta
				adjusted.PN = period
				return &adjusted, nil
			}
			blocksLeft += m.LP / m.UN
		}

	case AttenuationTypeCustom, AttenuationTypeInflation:
		if m.UC == nil {
			return nil, scriptError(ErrInvalidAttenuationArray,
				"attenuation model has no UC schedule")
		}
		for period := m.PN; period < int64(len(m.UC)); period++ {
			if blocksLeft >= delta {
				adjusted.LH = blocksLeft - delta
				adjusted.PN = period
				return &adjusted, nil
			}
			if period+1 < int64(len(m.UC)) {
				blocksLeft += m.UC[period+1]
			}
		}

	default:
		str := fmt.Sprintf("invalid attenuation model type %d", m.Type)
		return nil, scriptError(ErrInvalidAttenuationModelType, str)
	}

	str := fmt.Sprintf("height delta %d runs past the last attenuation "+
		"period", delta)
	return nil, scriptError(ErrAttenuationAdjustment, str)
}

// assetQuantity returns the nominal asset quantity carried by an output.
func assetQuantity(out *wire.TxOut) (int64, error) {
	switch p := out.Attachment.Payload.(type) {
	case *wire.MSTTransfer:
		return p.Quantity, nil
	case *wire.MSTIssue:
		return p.MaxSupply, nil
	}
	str := fmt.Sprintf("output attachment %v does not carry an asset",
		out.Attachment.Type())
	return 0, scriptError(ErrInvalidAttachmentForSpendableAsset, str)
}

// AssetSpendable returns how much of the asset carried by out can be spent
// at currentHeight, given out was created at txHeight.  Outputs without an
// attenuation lock are fully spendable.
func AssetSpendable(out *wire.TxOut, txHeight, currentHeight int64) (int64, error) {
	quantity, err := assetQuantity(out)
	if err != nil {
		return 0, err
	}

	asm := DisasmString(out.PkScript)
	if !HasAttenuationModel(asm) {
		return quantity, nil
	}
	modelStr, err := ExtractAttenuationModel(asm)
	if err != nil {
		return 0, err
	}
	model, err := ParseAttenuationModel(modelStr)
	if err != nil {
		return 0, err
	}
	locked, err := model.Locked(txHeight, currentHeight)
	if err != nil {
		return 0, err
	}
	if locked > quantity {
		str := fmt.Sprintf("locked quantity %d exceeds output quantity %d",
			locked, quantity)
		return 0, scriptError(ErrInvalidLockedQuantity, str)
	}

	log.Tracef("Output locks %d of %d with model %s", locked, quantity,
		modelStr)
	return quantity - locked, nil
}
