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
	"github.com/ethereum/go-ethereum/log"

	"github.com/superdao/minidao/core/vm"
	"github.com/superdao/minidao/federation"
)

// Dao is a governance contract instance living at a fixed address of the host
// ledger. Every mutating operation runs as one host transaction: the local
// registry, proposal and ledger changes and any federation sub-call commit
// together or not at all.
type Dao struct {
	env        *vm.Env
	address    common.Address
	federation Federation
	autoJoin   bool

	members   memberRegistry
	ledger    voteLedger
	proposals proposalStore
}

// Deploy creates a DAO at address on behalf of deployer. If fed is nil and the
// config names a federation, a same-ledger federation.Client is used. With
// AutoJoin set the DAO registers itself with the federation during
// deployment, and deployment fails if the federation rejects it.
func Deploy(env *vm.Env, deployer, address common.Address, config *Config, fed Federation) (*Dao, error) {
	if config.Name == "" {
		return nil, ErrEmptyName
	}
	if _, err := env.Contract(address); err == nil {
		return nil, vm.ErrContractAddressCollision
	}
	if fed == nil && config.HasFederation() {
		fed = federation.NewClient(config.Federation)
	}
	if config.AutoJoin && fed == nil {
		return nil, ErrNoFederation
	}
	d := &Dao{
		env:        env,
		address:    address,
		federation: fed,
		autoJoin:   config.AutoJoin,
	}
	d.proposals = proposalStore{members: d.members, ledger: d.ledger}

	err := env.Transact(deployer, address, func(ctx *vm.Context) error {
		storeName(ctx, config.Name)
		storeFederation(ctx, config.Federation)
		if config.AutoJoin {
			return d.join(ctx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := env.Register(address, d); err != nil {
		return nil, err
	}
	log.Info("Deployed DAO", "name", config.Name, "address", address, "federation", config.Federation, "autojoin", config.AutoJoin)
	return d, nil
}

// Address returns the address of the DAO.
func (d *Dao) Address() common.Address {
	return d.address
}

// Name returns the name of the DAO.
func (d *Dao) Name() string {
	var name string
	d.view(func(ctx *vm.Context) {
		name = loadName(ctx)
	})
	return name
}

// Federation returns the configured federation address, zero if none.
func (d *Dao) Federation() common.Address {
	var addr common.Address
	d.view(func(ctx *vm.Context) {
		addr = loadFederation(ctx)
	})
	return addr
}

// Joined reports whether the DAO is currently a member of its federation.
func (d *Dao) Joined() bool {
	var joined bool
	d.view(func(ctx *vm.Context) {
		joined = loadJoined(ctx)
	})
	return joined
}

// RegisterVoter registers caller as a voter. Without auto-join, the first
// voter to register also joins the DAO to its federation.
func (d *Dao) RegisterVoter(caller common.Address) error {
	return d.transact(caller, "register_voter", func(ctx *vm.Context) error {
		if err := d.members.register(ctx, caller); err != nil {
			return err
		}
		if d.lazyFederation() && !loadJoined(ctx) {
			if err := d.join(ctx); err != nil {
				return err
			}
		}
		votersRegistered.Inc(1)
		log.Debug("Voter registered", "dao", d.address, "voter", caller)
		return nil
	})
}

// DeregisterVoter removes exactly the caller from the voters. Without
// auto-join, the last voter to leave also takes the DAO out of its federation.
func (d *Dao) DeregisterVoter(caller common.Address) error {
	return d.transact(caller, "deregister_voter", func(ctx *vm.Context) error {
		if err := d.members.deregister(ctx, caller); err != nil {
			return err
		}
		if d.lazyFederation() && loadJoined(ctx) && d.members.live(ctx) == 0 {
			if err := d.leave(ctx); err != nil {
				return err
			}
		}
		votersDeregistered.Inc(1)
		log.Debug("Voter deregistered", "dao", d.address, "voter", caller)
		return nil
	})
}

// HasVoter reports whether voter is registered.
func (d *Dao) HasVoter(voter common.Address) bool {
	var found bool
	d.view(func(ctx *vm.Context) {
		found = d.members.contains(ctx, voter)
	})
	return found
}

// Voters returns the registered voters in registration order.
func (d *Dao) Voters() []common.Address {
	var voters []common.Address
	d.view(func(ctx *vm.Context) {
		voters = d.members.members(ctx)
	})
	return voters
}

// CreateProposal creates a local proposal and returns its id.
func (d *Dao) CreateProposal(caller common.Address) (uint32, error) {
	var id uint32
	err := d.transact(caller, "create_proposal", func(ctx *vm.Context) error {
		var err error
		if id, err = d.proposals.create(ctx, caller); err != nil {
			return err
		}
		proposalsCreated.Inc(1)
		log.Debug("Proposal created", "dao", d.address, "id", id, "proposer", caller)
		return nil
	})
	return id, err
}

// RemoveProposal deletes a local proposal.
func (d *Dao) RemoveProposal(caller common.Address, id uint32) error {
	return d.transact(caller, "remove_proposal", func(ctx *vm.Context) error {
		if err := d.proposals.remove(ctx, caller, id); err != nil {
			return err
		}
		proposalsRemoved.Inc(1)
		log.Debug("Proposal removed", "dao", d.address, "id", id, "caller", caller)
		return nil
	})
}

// GetProposal returns a snapshot of a local proposal.
func (d *Dao) GetProposal(id uint32) (*Proposal, bool) {
	var (
		proposal *Proposal
		exists   bool
	)
	d.view(func(ctx *vm.Context) {
		proposal, exists = d.proposals.get(ctx, id)
	})
	return proposal, exists
}

// ProposalCount returns the current value of the proposal counter.
func (d *Dao) ProposalCount() uint32 {
	var count uint32
	d.view(func(ctx *vm.Context) {
		count = d.proposals.count(ctx)
	})
	return count
}

// Vote adds the caller's vote to a local proposal.
func (d *Dao) Vote(caller common.Address, id uint32) error {
	return d.transact(caller, "vote", func(ctx *vm.Context) error {
		if err := d.proposals.vote(ctx, caller, id); err != nil {
			return err
		}
		votesCast.Inc(1)
		log.Debug("Vote cast", "dao", d.address, "id", id, "voter", caller)
		return nil
	})
}

// VoteCount returns the number of votes voter has cast across all proposals.
func (d *Dao) VoteCount(voter common.Address) uint32 {
	var count uint32
	d.view(func(ctx *vm.Context) {
		count = d.ledger.tally(ctx, voter)
	})
	return count
}

// JoinFederation registers the DAO with its federation on behalf of a voter.
func (d *Dao) JoinFederation(caller common.Address) error {
	return d.transact(caller, "join_federation", func(ctx *vm.Context) error {
		if err := d.requireFederated(ctx, caller); err != nil {
			return err
		}
		return d.join(ctx)
	})
}

// LeaveFederation deregisters the DAO from its federation on behalf of a voter.
func (d *Dao) LeaveFederation(caller common.Address) error {
	return d.transact(caller, "leave_federation", func(ctx *vm.Context) error {
		if err := d.requireFederated(ctx, caller); err != nil {
			return err
		}
		return d.leave(ctx)
	})
}

// CreateFederationProposal submits call to the federation as a proposal of
// this DAO and returns the federation's proposal id.
func (d *Dao) CreateFederationProposal(caller common.Address, call federation.Call) (uint32, error) {
	var id uint32
	err := d.transact(caller, "create_federation_proposal", func(ctx *vm.Context) error {
		if err := d.requireFederated(ctx, caller); err != nil {
			return err
		}
		if call == nil {
			return federation.ErrInvalidCall
		}
		if err := call.Validate(); err != nil {
			return err
		}
		federationCalls.Inc(1)
		var err error
		if id, err = d.federation.CreateProposal(ctx, call); err != nil {
			return federationError("create_proposal", err)
		}
		log.Debug("Federation proposal created", "dao", d.address, "id", id, "kind", call.Kind(), "hash", call.Hash())
		return nil
	})
	return id, err
}

// VoteProposal casts the DAO's ballot on a federation proposal.
func (d *Dao) VoteProposal(caller common.Address, id uint32, vote federation.Vote) error {
	return d.transact(caller, "vote_proposal", func(ctx *vm.Context) error {
		if err := d.requireFederated(ctx, caller); err != nil {
			return err
		}
		if !vote.Valid() {
			return federation.ErrInvalidVote
		}
		federationCalls.Inc(1)
		if err := d.federation.Vote(ctx, id, vote); err != nil {
			return federationError("vote", err)
		}
		log.Debug("Federation vote cast", "dao", d.address, "id", id, "vote", vote, "voter", caller)
		return nil
	})
}

// requireFederated performs the local checks of a federated operation
func (d *Dao) requireFederated(ctx *vm.Context, caller common.Address) error {
	if !d.members.contains(ctx, caller) {
		return ErrNotRegistered
	}
	if d.federation == nil {
		return ErrNoFederation
	}
	return nil
}

func (d *Dao) lazyFederation() bool {
	return d.federation != nil && !d.autoJoin
}

func (d *Dao) join(ctx *vm.Context) error {
	federationCalls.Inc(1)
	if err := d.federation.RegisterMember(ctx); err != nil {
		return federationError("register_member", err)
	}
	storeJoined(ctx, true)
	log.Info("DAO joined federation", "dao", d.address, "federation", loadFederation(ctx))
	return nil
}

func (d *Dao) leave(ctx *vm.Context) error {
	federationCalls.Inc(1)
	if err := d.federation.DeregisterMember(ctx); err != nil {
		return federationError("deregister_member", err)
	}
	storeJoined(ctx, false)
	log.Info("DAO left federation", "dao", d.address, "federation", loadFederation(ctx))
	return nil
}

func (d *Dao) transact(caller common.Address, op string, fn func(ctx *vm.Context) error) error {
	err := d.env.Transact(caller, d.address, fn)
	if err != nil {
		opsReverted.Inc(1)
		log.Debug("DAO operation rejected", "dao", d.address, "op", op, "caller", caller, "err", err)
	}
	return err
}

// view runs a read against the DAO's storage. Reads cannot fail.
func (d *Dao) view(fn func(ctx *vm.Context)) {
	_ = d.env.View(d.address, func(ctx *vm.Context) error {
		fn(ctx)
		return nil
	})
}
