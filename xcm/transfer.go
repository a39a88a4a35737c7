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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Payload is an encoded destination together with an encoded program, ready to
// be carried by a chain call proposal.
type Payload struct {
	Destination []byte
	Program     []byte
}

// Hash identifies the payload for off-chain comparison.
func (p *Payload) Hash() common.Hash {
	return crypto.Keccak256Hash(p.Destination, p.Program)
}

// Transfer describes a remote asset transfer: withdraw Asset at Destination,
// pay for execution with Fee and deposit the rest to Beneficiary.
type Transfer struct {
	Destination Location
	Asset       Asset
	Fee         *uint256.Int // nil pays with the whole asset
	Beneficiary Junction
}

// Program returns the three-instruction program of the transfer.
func (t *Transfer) Program() (Xcm, error) {
	if err := t.Asset.validate(); err != nil {
		return nil, err
	}
	if t.Beneficiary == nil {
		return nil, ErrInvalidBeneficiary
	}
	fees := t.Asset
	if t.Fee != nil {
		if t.Fee.Gt(t.Asset.Amount) {
			return nil, ErrFeeExceedsAmount
		}
		fees = NewAsset(t.Asset.ID, t.Fee)
	}
	beneficiary := NewLocation(0, t.Beneficiary)

	return NewBuilder().
		WithdrawAsset(t.Asset).
		BuyExecution(fees, Unlimited).
		DepositAsset([]Asset{t.Asset}, beneficiary).
		Build(), nil
}

// Build encodes the destination and the program. Equal transfers always
// produce byte-identical payloads.
func (t *Transfer) Build() (*Payload, error) {
	msg, err := t.Program()
	if err != nil {
		return nil, err
	}
	dest, err := EncodeVersionedLocation(t.Destination)
	if err != nil {
		return nil, err
	}
	program, err := EncodeVersionedXcm(msg)
	if err != nil {
		return nil, err
	}
	return &Payload{Destination: dest, Program: program}, nil
}

// Beneficiary translates a raw account identity into the junction the
// destination uses to address it: 32-byte accounts become AccountID32 and
// 20-byte accounts become AccountKey20, both without a network.
func Beneficiary(id []byte) (Junction, error) {
	switch len(id) {
	case 32:
		var j AccountID32
		copy(j.ID[:], id)
		return j, nil
	case common.AddressLength:
		var j AccountKey20
		copy(j.Key[:], id)
		return j, nil
	}
	return nil, ErrInvalidBeneficiary
}
