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

// Package federation defines the actions a DAO can submit to its parent
// governance body and the client used to reach that body on the same ledger.
package federation

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"

	"github.com/superdao/minidao/xcm"
)

// CallKind tags the variant of a remote action.
type CallKind uint8

const (
	CallKindContract CallKind = 0x00 // same-ledger contract call
	CallKindChain    CallKind = 0x01 // cross-chain program
)

func (k CallKind) String() string {
	switch k {
	case CallKindContract:
		return "contract"
	case CallKindChain:
		return "chain"
	}
	return "unknown"
}

// Call is a remote action proposed to the federation.
type Call interface {
	// Kind returns the variant tag
	Kind() CallKind

	// Hash identifies the action independently of where it is stored
	Hash() common.Hash

	// Validate checks the variant's required fields
	Validate() error
}

// ContractCall asks the federation to call a contract on its own ledger. It
// is immutable: the constructor and accessors copy the arguments and value.
type ContractCall struct {
	callee    common.Address
	selector  [4]byte
	arguments []byte
	value     *uint256.Int
}

// NewContractCall builds a contract call. A nil value transfers nothing.
func NewContractCall(callee common.Address, selector [4]byte, arguments []byte, value *uint256.Int) *ContractCall {
	c := &ContractCall{
		callee:    callee,
		selector:  selector,
		arguments: bytes.Clone(arguments),
	}
	if value != nil {
		c.value = value.Clone()
	}
	return c
}

// Callee returns the contract to call.
func (c *ContractCall) Callee() common.Address { return c.callee }

// Selector returns the method selector.
func (c *ContractCall) Selector() [4]byte { return c.selector }

// Arguments returns the encoded call arguments.
func (c *ContractCall) Arguments() []byte { return bytes.Clone(c.arguments) }

// Value returns the amount sent with the call, nil for none.
func (c *ContractCall) Value() *uint256.Int {
	if c.value == nil {
		return nil
	}
	return c.value.Clone()
}

// Input returns the call data: selector followed by the arguments.
func (c *ContractCall) Input() []byte {
	input := make([]byte, 0, len(c.selector)+len(c.arguments))
	input = append(input, c.selector[:]...)
	return append(input, c.arguments...)
}

// Kind implements Call.
func (c *ContractCall) Kind() CallKind { return CallKindContract }

// Hash implements Call.
func (c *ContractCall) Hash() common.Hash {
	var value []byte
	if c.value != nil {
		value = c.value.Bytes()
	}
	return hashCall(c.Kind(), c.callee, c.selector[:], c.arguments, value)
}

// Validate implements Call.
func (c *ContractCall) Validate() error {
	if c.callee == (common.Address{}) {
		return ErrInvalidCall
	}
	return nil
}

// ChainCall carries an encoded destination and an encoded cross-chain
// program. It is immutable: the constructor and accessors copy the bytes.
type ChainCall struct {
	destination []byte
	program     []byte
}

// NewChainCall wraps an already encoded destination and program.
func NewChainCall(destination, program []byte) *ChainCall {
	return &ChainCall{
		destination: bytes.Clone(destination),
		program:     bytes.Clone(program),
	}
}

// TransferCall builds the chain call for a remote asset transfer.
func TransferCall(t *xcm.Transfer) (*ChainCall, error) {
	payload, err := t.Build()
	if err != nil {
		return nil, err
	}
	return NewChainCall(payload.Destination, payload.Program), nil
}

// Destination returns the encoded destination location.
func (c *ChainCall) Destination() []byte { return bytes.Clone(c.destination) }

// Program returns the encoded program.
func (c *ChainCall) Program() []byte { return bytes.Clone(c.program) }

// Kind implements Call.
func (c *ChainCall) Kind() CallKind { return CallKindChain }

// Hash implements Call.
func (c *ChainCall) Hash() common.Hash {
	return hashCall(c.Kind(), c.destination, c.program)
}

// Validate implements Call.
func (c *ChainCall) Validate() error {
	if len(c.destination) == 0 || len(c.program) == 0 {
		return ErrInvalidCall
	}
	return nil
}

func hashCall(kind CallKind, fields ...interface{}) common.Hash {
	data, _ := rlp.EncodeToBytes(append([]interface{}{uint8(kind)}, fields...))
	return crypto.Keccak256Hash(data)
}

// Vote is a ballot on a federation proposal.
type Vote uint8

const (
	VoteAffirm Vote = 0x00
	VoteReject Vote = 0x01
)

// VoteFromBool maps true to VoteAffirm and false to VoteReject.
func VoteFromBool(affirm bool) Vote {
	if affirm {
		return VoteAffirm
	}
	return VoteReject
}

// Valid reports whether v is a known ballot.
func (v Vote) Valid() bool {
	return v == VoteAffirm || v == VoteReject
}

func (v Vote) String() string {
	switch v {
	case VoteAffirm:
		return "affirm"
	case VoteReject:
		return "reject"
	}
	return "unknown"
}
