// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package xcm

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Instruction indices of XCM v4.
const (
	opWithdrawAsset = 0x00
	opDepositAsset  = 0x0d
	opBuyExecution  = 0x13
)

// Instruction is a single step of a cross-chain program.
type Instruction interface {
	encode(enc *scale.Encoder) error
}

// WithdrawAsset moves assets from the origin's account into the holding register.
type WithdrawAsset struct {
	Assets []Asset
}

func (i WithdrawAsset) encode(enc *scale.Encoder) error {
	if err := enc.PushByte(opWithdrawAsset); err != nil {
		return err
	}
	return encodeAssets(enc, i.Assets)
}

// BuyExecution pays for the remaining program out of the holding register.
type BuyExecution struct {
	Fees        Asset
	WeightLimit WeightLimit
}

func (i BuyExecution) encode(enc *scale.Encoder) error {
	if err := enc.PushByte(opBuyExecution); err != nil {
		return err
	}
	if err := i.Fees.encode(enc); err != nil {
		return err
	}
	return i.WeightLimit.encode(enc)
}

// DepositAsset moves the listed assets from holding to the beneficiary. The
// amounts are taken saturating, so what is left after fees is deposited.
type DepositAsset struct {
	Assets      []Asset
	Beneficiary Location
}

// The asset filter is always AssetFilter::Definite (0).
func (i DepositAsset) encode(enc *scale.Encoder) error {
	if err := enc.PushByte(opDepositAsset); err != nil {
		return err
	}
	if err := enc.PushByte(0); err != nil {
		return err
	}
	if err := encodeAssets(enc, i.Assets); err != nil {
		return err
	}
	return i.Beneficiary.encode(enc)
}

// Xcm is an ordered cross-chain program.
type Xcm []Instruction

func (x Xcm) encode(enc *scale.Encoder) error {
	if err := encodeCompact(enc, uint64(len(x))); err != nil {
		return err
	}
	for _, instr := range x {
		if err := instr.encode(enc); err != nil {
			return err
		}
	}
	return nil
}

// Builder assembles a program instruction by instruction.
type Builder struct {
	instructions []Instruction
}

// NewBuilder returns an empty program builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithdrawAsset appends a WithdrawAsset instruction.
func (b *Builder) WithdrawAsset(assets ...Asset) *Builder {
	b.instructions = append(b.instructions, WithdrawAsset{Assets: cloneAssets(assets)})
	return b
}

// BuyExecution appends a BuyExecution instruction.
func (b *Builder) BuyExecution(fees Asset, limit WeightLimit) *Builder {
	b.instructions = append(b.instructions, BuyExecution{Fees: fees.clone(), WeightLimit: limit})
	return b
}

// DepositAsset appends a DepositAsset instruction.
func (b *Builder) DepositAsset(assets []Asset, beneficiary Location) *Builder {
	b.instructions = append(b.instructions, DepositAsset{
		Assets:      cloneAssets(assets),
		Beneficiary: NewLocation(beneficiary.Parents, beneficiary.Interior...),
	})
	return b
}

// Build returns the assembled program. The builder can keep being extended
// without affecting programs already built.
func (b *Builder) Build() Xcm {
	msg := make(Xcm, len(b.instructions))
	copy(msg, b.instructions)
	return msg
}

func cloneAssets(assets []Asset) []Asset {
	out := make([]Asset, len(assets))
	for i, a := range assets {
		out[i] = a.clone()
	}
	return out
}
