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
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"

	"github.com/superdao/minidao/core/vm"
)

var (
	// Storage key prefixes
	memberPrefix        = []byte("member")
	proposalCountKey    = crypto.Keccak256Hash([]byte("proposalCount"))
	proposalMetaPrefix  = []byte("proposalMeta")
	proposalCallPrefix  = []byte("proposalCall")
	proposalVotedPrefix = []byte("proposalVoted")
)

// ProposalInfo is the federation's view of a proposal.
type ProposalInfo struct {
	ID       uint32
	Kind     CallKind
	CallHash common.Hash
	Ayes     uint32
	Nays     uint32
}

// SuperDao is a minimal federation body. It keeps a member set and a list of
// proposals with their ballots in the storage of its own address. It does not
// tally or execute proposals.
type SuperDao struct{}

// NewSuperDao creates a federation body.
func NewSuperDao() *SuperDao {
	return &SuperDao{}
}

// RegisterMember implements Body.
func (s *SuperDao) RegisterMember(ctx *vm.Context) error {
	if err := ctx.RequireWritable(); err != nil {
		return err
	}
	if s.IsMember(ctx, ctx.Caller) {
		return ErrAlreadyMember
	}
	ctx.SetState(makeKey(memberPrefix, ctx.Caller.Bytes()), flagWord)
	log.Info("Federation member registered", "federation", ctx.Self, "member", ctx.Caller)
	return nil
}

// DeregisterMember implements Body.
func (s *SuperDao) DeregisterMember(ctx *vm.Context) error {
	if err := ctx.RequireWritable(); err != nil {
		return err
	}
	if !s.IsMember(ctx, ctx.Caller) {
		return ErrNotMember
	}
	ctx.SetState(makeKey(memberPrefix, ctx.Caller.Bytes()), common.Hash{})
	log.Info("Federation member deregistered", "federation", ctx.Self, "member", ctx.Caller)
	return nil
}

// CreateProposal implements Body.
func (s *SuperDao) CreateProposal(ctx *vm.Context, call Call) (uint32, error) {
	if err := ctx.RequireWritable(); err != nil {
		return 0, err
	}
	if !s.IsMember(ctx, ctx.Caller) {
		return 0, ErrNotMember
	}
	id := s.ProposalCount(ctx)
	storeProposal(ctx, &ProposalInfo{ID: id, Kind: call.Kind(), CallHash: call.Hash()})
	ctx.SetState(proposalCountKey, uint32Word(id+1))

	log.Debug("Federation proposal created", "federation", ctx.Self, "id", id, "kind", call.Kind(), "hash", call.Hash())
	return id, nil
}

// Vote implements Body.
func (s *SuperDao) Vote(ctx *vm.Context, proposalID uint32, vote Vote) error {
	if err := ctx.RequireWritable(); err != nil {
		return err
	}
	if !s.IsMember(ctx, ctx.Caller) {
		return ErrNotMember
	}
	proposal, ok := s.Proposal(ctx, proposalID)
	if !ok {
		return ErrProposalNotFound
	}
	votedKey := makeKey(proposalVotedPrefix, uint32Bytes(proposalID), ctx.Caller.Bytes())
	if ctx.GetState(votedKey) != (common.Hash{}) {
		return ErrAlreadyVoted
	}
	switch vote {
	case VoteAffirm:
		proposal.Ayes++
	case VoteReject:
		proposal.Nays++
	default:
		return ErrInvalidVote
	}
	ctx.SetState(votedKey, flagWord)
	storeProposal(ctx, proposal)
	return nil
}

// IsMember reports whether addr is a member.
func (s *SuperDao) IsMember(ctx *vm.Context, addr common.Address) bool {
	return ctx.GetState(makeKey(memberPrefix, addr.Bytes())) != (common.Hash{})
}

// ProposalCount returns the number of proposals created so far.
func (s *SuperDao) ProposalCount(ctx *vm.Context) uint32 {
	return wordUint32(ctx.GetState(proposalCountKey))
}

// Proposal returns the proposal with the given id.
func (s *SuperDao) Proposal(ctx *vm.Context, id uint32) (*ProposalInfo, bool) {
	meta := ctx.GetState(makeKey(proposalMetaPrefix, uint32Bytes(id)))
	if meta[0] == 0 {
		return nil, false
	}
	return &ProposalInfo{
		ID:       id,
		Kind:     CallKind(meta[1]),
		CallHash: ctx.GetState(makeKey(proposalCallPrefix, uint32Bytes(id))),
		Ayes:     binary.BigEndian.Uint32(meta[24:28]),
		Nays:     binary.BigEndian.Uint32(meta[28:32]),
	}, true
}

// Proposal meta word: [exists | kind | ... | ayes (4) | nays (4)]
func storeProposal(ctx *vm.Context, p *ProposalInfo) {
	var meta common.Hash
	meta[0] = 1
	meta[1] = byte(p.Kind)
	binary.BigEndian.PutUint32(meta[24:28], p.Ayes)
	binary.BigEndian.PutUint32(meta[28:32], p.Nays)
	ctx.SetState(makeKey(proposalMetaPrefix, uint32Bytes(p.ID)), meta)
	ctx.SetState(makeKey(proposalCallPrefix, uint32Bytes(p.ID)), p.CallHash)
}

var flagWord = common.Hash{31: 1}

// makeKey derives a storage key from a prefix and key parts
func makeKey(prefix []byte, parts ...[]byte) common.Hash {
	return crypto.Keccak256Hash(append([][]byte{prefix}, parts...)...)
}

func uint32Bytes(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

func uint32Word(v uint32) common.Hash {
	var w common.Hash
	binary.BigEndian.PutUint32(w[28:], v)
	return w
}

func wordUint32(w common.Hash) uint32 {
	return binary.BigEndian.Uint32(w[28:])
}
