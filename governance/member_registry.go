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

package governance

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/superdao/minidao/core/vm"
)

// memberRegistry tracks registered voters in an append-only sequence.
// Deregistration clears the voter's slot instead of shifting the tail, so
// the index of every other voter stays valid.
type memberRegistry struct{}

// register appends voter to the sequence
func (r memberRegistry) register(ctx *vm.Context, voter common.Address) error {
	if _, found := r.index(ctx, voter); found {
		return ErrAlreadyRegistered
	}
	length := loadVoterLength(ctx)
	storeVoterSlot(ctx, length, voter)
	storeVoterLength(ctx, length+1)
	storeLiveVoters(ctx, loadLiveVoters(ctx)+1)
	return nil
}

// deregister tombstones the voter's slot and leaves all others untouched
func (r memberRegistry) deregister(ctx *vm.Context, voter common.Address) error {
	i, found := r.index(ctx, voter)
	if !found {
		return ErrNotRegistered
	}
	clearVoterSlot(ctx, i)
	storeLiveVoters(ctx, loadLiveVoters(ctx)-1)
	return nil
}

// contains checks if an address is a registered voter
func (r memberRegistry) contains(ctx *vm.Context, voter common.Address) bool {
	_, found := r.index(ctx, voter)
	return found
}

// index returns the slot of voter, scanning live slots only
func (memberRegistry) index(ctx *vm.Context, voter common.Address) (uint64, bool) {
	length := loadVoterLength(ctx)
	for i := uint64(0); i < length; i++ {
		if addr, live := loadVoterSlot(ctx, i); live && addr == voter {
			return i, true
		}
	}
	return 0, false
}

// members returns the live voters in slot order
func (memberRegistry) members(ctx *vm.Context) []common.Address {
	length := loadVoterLength(ctx)
	voters := make([]common.Address, 0, loadLiveVoters(ctx))
	for i := uint64(0); i < length; i++ {
		if addr, live := loadVoterSlot(ctx, i); live {
			voters = append(voters, addr)
		}
	}
	return voters
}

// live returns the number of registered voters
func (memberRegistry) live(ctx *vm.Context) uint64 {
	return loadLiveVoters(ctx)
}
