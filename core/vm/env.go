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
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// MaxCallDepth bounds the number of nested contract frames in one transaction.
const MaxCallDepth = 1024

// StateDB is the slice of the ledger state the host needs. It is satisfied by
// *state.StateDB.
type StateDB interface {
	GetState(addr common.Address, key common.Hash) common.Hash
	SetState(addr common.Address, key, value common.Hash) common.Hash
	Snapshot() int
	RevertToSnapshot(revid int)
}

// Env is the host ledger in which contract instances live. It serializes all
// invocations and applies each of them atomically: the state mutations of a
// transaction, including those of nested calls, are committed together or
// reverted together.
type Env struct {
	mu        sync.Mutex
	state     StateDB
	contracts map[common.Address]any
}

// NewEnv creates a host environment over the given state.
func NewEnv(state StateDB) *Env {
	return &Env{
		state:     state,
		contracts: make(map[common.Address]any),
	}
}

// Register binds a contract instance to an address so that other contracts
// can reach it through Context.Contract.
func (e *Env) Register(addr common.Address, contract any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.contracts[addr]; exists {
		return ErrContractAddressCollision
	}
	e.contracts[addr] = contract
	return nil
}

// Contract returns the instance deployed at addr.
func (e *Env) Contract(addr common.Address) (any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lookup(addr)
}

func (e *Env) lookup(addr common.Address) (any, error) {
	contract, exists := e.contracts[addr]
	if !exists {
		return nil, ErrNoContract
	}
	return contract, nil
}

// Transact executes fn as one atomic unit on behalf of caller against the
// contract at to. If fn returns an error or panics every state change it made
// is discarded.
func (e *Env) Transact(caller, to common.Address, fn func(ctx *Context) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := &Context{
		Caller: caller,
		Origin: caller,
		Self:   to,
		env:    e,
	}
	if err := e.run(ctx, fn); err != nil {
		log.Debug("Transaction reverted", "caller", caller, "to", to, "err", err)
		return err
	}
	return nil
}

// run executes fn against a fresh snapshot, reverting it when fn fails. A
// panic reverts the snapshot before it propagates.
func (e *Env) run(ctx *Context, fn func(ctx *Context) error) error {
	snapshot := e.state.Snapshot()
	defer func() {
		if r := recover(); r != nil {
			e.state.RevertToSnapshot(snapshot)
			panic(r)
		}
	}()
	if err := fn(ctx); err != nil {
		e.state.RevertToSnapshot(snapshot)
		return err
	}
	return nil
}

// View executes fn in a read-only context against the contract at to.
func (e *Env) View(to common.Address, fn func(ctx *Context) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := &Context{
		Self:     to,
		ReadOnly: true,
		env:      e,
	}
	return fn(ctx)
}
