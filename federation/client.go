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

package federation

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/superdao/minidao/core/vm"
)

// Body is the operation set of a federation contract. Each method runs in the
// frame of the federation, with ctx.Caller being the member DAO.
type Body interface {
	// RegisterMember admits the caller as a member
	RegisterMember(ctx *vm.Context) error

	// DeregisterMember removes the caller from the membership
	DeregisterMember(ctx *vm.Context) error

	// CreateProposal records a proposal of the caller and returns its id
	CreateProposal(ctx *vm.Context, call Call) (uint32, error)

	// Vote records the caller's ballot on a proposal
	Vote(ctx *vm.Context, proposalID uint32, vote Vote) error
}

// Client reaches the federation deployed at a fixed address through
// synchronous nested calls. Every call executes inside the caller's
// transaction, so a failure reverts the caller's own changes as well once it
// is propagated.
type Client struct {
	address common.Address
}

// NewClient creates a client for the federation at address.
func NewClient(address common.Address) *Client {
	return &Client{address: address}
}

// Address returns the federation address.
func (c *Client) Address() common.Address {
	return c.address
}

// RegisterMember registers the calling contract with the federation.
func (c *Client) RegisterMember(ctx *vm.Context) error {
	return c.call(ctx, func(body Body, inner *vm.Context) error {
		return body.RegisterMember(inner)
	})
}

// DeregisterMember removes the calling contract from the federation.
func (c *Client) DeregisterMember(ctx *vm.Context) error {
	return c.call(ctx, func(body Body, inner *vm.Context) error {
		return body.DeregisterMember(inner)
	})
}

// CreateProposal submits call as a federation proposal.
func (c *Client) CreateProposal(ctx *vm.Context, call Call) (uint32, error) {
	if call == nil {
		return 0, ErrInvalidCall
	}
	if err := call.Validate(); err != nil {
		return 0, err
	}
	var id uint32
	err := c.call(ctx, func(body Body, inner *vm.Context) error {
		var err error
		id, err = body.CreateProposal(inner, call)
		return err
	})
	return id, err
}

// Vote casts the calling contract's ballot on a federation proposal.
func (c *Client) Vote(ctx *vm.Context, proposalID uint32, vote Vote) error {
	if !vote.Valid() {
		return ErrInvalidVote
	}
	return c.call(ctx, func(body Body, inner *vm.Context) error {
		return body.Vote(inner, proposalID, vote)
	})
}

func (c *Client) call(ctx *vm.Context, fn func(body Body, inner *vm.Context) error) error {
	return ctx.Call(c.address, func(inner *vm.Context) error {
		contract, err := inner.Contract(c.address)
		if err != nil {
			return err
		}
		body, ok := contract.(Body)
		if !ok {
			return ErrNotFederation
		}
		return fn(body, inner)
	})
}
