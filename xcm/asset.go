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
	"github.com/holiman/uint256"
)

// Asset is a fungible amount of the asset identified by a location.
type Asset struct {
	ID     Location
	Amount *uint256.Int
}

// NewAsset creates a fungible asset descriptor.
func NewAsset(id Location, amount *uint256.Int) Asset {
	return Asset{ID: id, Amount: amount}
}

func (a Asset) clone() Asset {
	c := Asset{ID: NewLocation(a.ID.Parents, a.ID.Interior...)}
	if a.Amount != nil {
		c.Amount = new(uint256.Int).Set(a.Amount)
	}
	return c
}

func (a Asset) validate() error {
	if a.Amount == nil || a.Amount.BitLen() > 128 {
		return ErrInvalidAmount
	}
	return nil
}

// AssetId is a newtype over Location, followed by Fungibility::Fungible (0)
// with a compact u128 amount.
func (a Asset) encode(enc *scale.Encoder) error {
	if err := a.validate(); err != nil {
		return err
	}
	if err := a.ID.encode(enc); err != nil {
		return err
	}
	if err := enc.PushByte(0); err != nil {
		return err
	}
	return encodeCompactBig(enc, a.Amount.ToBig())
}

func encodeAssets(enc *scale.Encoder, assets []Asset) error {
	if err := encodeCompact(enc, uint64(len(assets))); err != nil {
		return err
	}
	for _, a := range assets {
		if err := a.encode(enc); err != nil {
			return err
		}
	}
	return nil
}

// WeightLimit caps the weight a program may consume at the destination.
type WeightLimit struct {
	Unlimited bool
	RefTime   uint64
	ProofSize uint64
}

// Unlimited places no cap on the execution weight.
var Unlimited = WeightLimit{Unlimited: true}

// Limited caps execution at the given ref time and proof size.
func Limited(refTime, proofSize uint64) WeightLimit {
	return WeightLimit{RefTime: refTime, ProofSize: proofSize}
}

func (w WeightLimit) encode(enc *scale.Encoder) error {
	if w.Unlimited {
		return enc.PushByte(0)
	}
	if err := enc.PushByte(1); err != nil {
		return err
	}
	if err := encodeCompact(enc, w.RefTime); err != nil {
		return err
	}
	return encodeCompact(enc, w.ProofSize)
}
