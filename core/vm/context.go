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

package vm

import (
	"github.com/ethereum/go-ethereum/common"
)

// Context is the execution frame of a single contract invocation.
type Context struct {
	// Caller is the account or contract that invoked this frame
	Caller common.Address

	// Origin is the account that signed the enclosing transaction
	Origin common.Address

	// Self is the address of the executing contract; storage is scoped to it
	Self common.Address

	// Depth is the nesting level, 0 for the outermost frame
	Depth int

	// ReadOnly indicates a view call.
	// State-modifying operations must check this and fail if true
	ReadOnly bool

	env *Env
}

// GetState reads a storage word of the executing contract.
func (c *Context) GetState(key common.Hash) common.Hash {
	return c.env.state.GetState(c.Self, key)
}

// SetState writes a storage word of the executing contract.
func (c *Context) SetState(key, value common.Hash) {
	c.env.state.SetState(c.Self, key, value)
}

// Contract resolves the instance deployed at addr.
func (c *Context) Contract(addr common.Address) (any, error) {
	return c.env.lookup(addr)
}

// Call runs fn as a nested frame of the contract at to, with this frame's
// contract as the caller. The nested frame shares the enclosing transaction:
// its changes are reverted if fn fails or panics, and they are also discarded
// if the enclosing transaction fails later.
func (c *Context) Call(to common.Address, fn func(ctx *Context) error) error {
	if c.Depth+1 > MaxCallDepth {
		return ErrDepth
	}
	inner := &Context{
		Caller:   c.Self,
		Origin:   c.Origin,
		Self:     to,
		Depth:    c.Depth + 1,
		ReadOnly: c.ReadOnly,
		env:      c.env,
	}
	return c.env.run(inner, fn)
}

// RequireWritable fails with ErrWriteProtection in a read-only frame.
func (c *Context) RequireWritable() error {
	if c.ReadOnly {
		return ErrWriteProtection
	}
	return nil
}
