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

// maxJunctions is the largest interior a location can carry (X8).
const maxJunctions = 8

// NetworkKind identifies a consensus system.
type NetworkKind uint8

const (
	NetworkByGenesis        NetworkKind = 0x00
	NetworkPolkadot         NetworkKind = 0x02
	NetworkKusama           NetworkKind = 0x03
	NetworkWestend          NetworkKind = 0x04
	NetworkRococo           NetworkKind = 0x05
	NetworkWococo           NetworkKind = 0x06
	NetworkEthereum         NetworkKind = 0x07
	NetworkBitcoinCore      NetworkKind = 0x08
	NetworkBitcoinCash      NetworkKind = 0x09
	NetworkPolkadotBulletin NetworkKind = 0x0a
)

// NetworkID names the network an account junction belongs to.
type NetworkID struct {
	Kind    NetworkKind
	Genesis [32]byte // NetworkByGenesis only
	ChainID uint64   // NetworkEthereum only
}

func (n *NetworkID) encode(enc *scale.Encoder) error {
	switch n.Kind {
	case NetworkByGenesis:
		if err := enc.PushByte(byte(n.Kind)); err != nil {
			return err
		}
		return enc.Write(n.Genesis[:])
	case NetworkEthereum:
		if err := enc.PushByte(byte(n.Kind)); err != nil {
			return err
		}
		return encodeCompact(enc, n.ChainID)
	case NetworkPolkadot, NetworkKusama, NetworkWestend, NetworkRococo, NetworkWococo,
		NetworkBitcoinCore, NetworkBitcoinCash, NetworkPolkadotBulletin:
		return enc.PushByte(byte(n.Kind))
	}
	return ErrUnsupportedNetwork
}

// Junction is one step of a location's interior path.
type Junction interface {
	encode(enc *scale.Encoder) error
}

// Junction variant indices.
const (
	junctionParachain      = 0x00
	junctionAccountID32    = 0x01
	junctionAccountKey20   = 0x03
	junctionPalletInstance = 0x04
	junctionGeneralIndex   = 0x05
)

// Parachain addresses a parachain by id.
type Parachain uint32

func (p Parachain) encode(enc *scale.Encoder) error {
	if err := enc.PushByte(junctionParachain); err != nil {
		return err
	}
	return encodeCompact(enc, uint64(p))
}

// AccountID32 is a 32-byte account, the native address form of Substrate chains.
type AccountID32 struct {
	Network *NetworkID
	ID      [32]byte
}

func (a AccountID32) encode(enc *scale.Encoder) error {
	if err := enc.PushByte(junctionAccountID32); err != nil {
		return err
	}
	if err := encodeOptionalNetwork(enc, a.Network); err != nil {
		return err
	}
	return enc.Write(a.ID[:])
}

// AccountKey20 is a 20-byte account, as used by Ethereum-compatible chains.
type AccountKey20 struct {
	Network *NetworkID
	Key     [20]byte
}

func (a AccountKey20) encode(enc *scale.Encoder) error {
	if err := enc.PushByte(junctionAccountKey20); err != nil {
		return err
	}
	if err := encodeOptionalNetwork(enc, a.Network); err != nil {
		return err
	}
	return enc.Write(a.Key[:])
}

// PalletInstance addresses a pallet by its index in the runtime.
type PalletInstance uint8

func (p PalletInstance) encode(enc *scale.Encoder) error {
	if err := enc.PushByte(junctionPalletInstance); err != nil {
		return err
	}
	return enc.PushByte(byte(p))
}

// GeneralIndex is a u128 index, typically an asset id inside a pallet.
type GeneralIndex struct {
	Index *uint256.Int
}

func (g GeneralIndex) encode(enc *scale.Encoder) error {
	if g.Index == nil || g.Index.BitLen() > 128 {
		return ErrInvalidAmount
	}
	if err := enc.PushByte(junctionGeneralIndex); err != nil {
		return err
	}
	return encodeCompactBig(enc, g.Index.ToBig())
}

// Location is a relative path to a consensus system, account or asset.
type Location struct {
	Parents  uint8
	Interior []Junction
}

// Here is the location of the executing consensus system itself.
func Here() Location {
	return Location{}
}

// Parent is the location of the relay chain seen from a parachain.
func Parent() Location {
	return Location{Parents: 1}
}

// SiblingParachain is the location of parachain id seen from another parachain.
func SiblingParachain(id uint32) Location {
	return Location{Parents: 1, Interior: []Junction{Parachain(id)}}
}

// NewLocation builds a location from a parent count and interior junctions.
func NewLocation(parents uint8, junctions ...Junction) Location {
	interior := make([]Junction, len(junctions))
	copy(interior, junctions)
	return Location{Parents: parents, Interior: interior}
}

// Junctions variants are indexed by their length: Here = 0, X1 = 1 ... X8 = 8.
func (l Location) encode(enc *scale.Encoder) error {
	if len(l.Interior) > maxJunctions {
		return ErrTooManyJunctions
	}
	if err := enc.PushByte(l.Parents); err != nil {
		return err
	}
	if err := enc.PushByte(byte(len(l.Interior))); err != nil {
		return err
	}
	for _, j := range l.Interior {
		if j == nil {
			return ErrNilJunction
		}
		if err := j.encode(enc); err != nil {
			return err
		}
	}
	return nil
}
