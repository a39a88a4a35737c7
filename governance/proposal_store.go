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

// proposalStore owns the proposal counter and the per-proposal tallies.
type proposalStore struct {
	members memberRegistry
	ledger  voteLedger
}

// create allocates the next proposal id. The counter is decremented on
// removal, so it can point at a live proposal; such ids are skipped rather
// than overwritten.
func (s proposalStore) create(ctx *vm.Context, caller common.Address) (uint32, error) {
	if !s.members.contains(ctx, caller) {
		return 0, ErrNotRegistered
	}
	id := loadProposalCount(ctx)
	for {
		if _, exists := loadProposal(ctx, id); !exists {
			break
		}
		id++
	}
	storeProposal(ctx, &Proposal{ID: id})
	storeProposalCount(ctx, id+1)
	return id, nil
}

// remove deletes a proposal and decrements the counter
func (s proposalStore) remove(ctx *vm.Context, caller common.Address, id uint32) error {
	if !s.members.contains(ctx, caller) {
		return ErrNotRegistered
	}
	if _, exists := loadProposal(ctx, id); !exists {
		return ErrProposalNotFound
	}
	deleteProposal(ctx, id)
	if count := loadProposalCount(ctx); count > 0 {
		storeProposalCount(ctx, count-1)
	}
	return nil
}

func (s proposalStore) get(ctx *vm.Context, id uint32) (*Proposal, bool) {
	return loadProposal(ctx, id)
}

// vote adds one vote to the proposal and to the caller's ledger entry.
// Repeated votes by the same voter are all counted.
func (s proposalStore) vote(ctx *vm.Context, caller common.Address, id uint32) error {
	if !s.members.contains(ctx, caller) {
		return ErrNotRegistered
	}
	proposal, exists := loadProposal(ctx, id)
	if !exists {
		return ErrProposalNotFound
	}
	proposal.VoteCount++
	storeProposal(ctx, proposal)
	s.ledger.record(ctx, caller)
	return nil
}

func (s proposalStore) count(ctx *vm.Context) uint32 {
	return loadProposalCount(ctx)
}
