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
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/superdao/minidao/core/vm"
)

var (
	// Storage key prefixes
	nameLengthKey    = crypto.Keccak256Hash([]byte("name"))
	nameChunkPrefix  = []byte("nameChunk")
	federationKey    = crypto.Keccak256Hash([]byte("federation"))
	joinedKey        = crypto.Keccak256Hash([]byte("federationJoined"))
	proposalCountKey = crypto.Keccak256Hash([]byte("proposalCount"))
	proposalPrefix   = []byte("proposal")
	voterLengthKey   = crypto.Keccak256Hash([]byte("voterLength"))
	voterLiveKey     = crypto.Keccak256Hash([]byte("voterLive"))
	voterSlotPrefix  = []byte("voterSlot")
	voteCountPrefix  = []byte("voteCount")
)

// Every value is kept in whole storage words under the DAO's address.
// Occupied entries carry a marker in the first byte so that a zero value
// can be told apart from an absent one.
const occupied = 0x01

func loadName(ctx *vm.Context) string {
	length := wordUint64(ctx.GetState(nameLengthKey))
	name := make([]byte, 0, length)
	for i := uint64(0); uint64(len(name)) < length; i++ {
		chunk := ctx.GetState(makeKey(nameChunkPrefix, uint64Bytes(i)))
		remaining := length - uint64(len(name))
		if remaining > common.HashLength {
			remaining = common.HashLength
		}
		name = append(name, chunk[:remaining]...)
	}
	return string(name)
}

func storeName(ctx *vm.Context, name string) {
	data := []byte(name)
	ctx.SetState(nameLengthKey, uint64Word(uint64(len(data))))
	for i := 0; i*common.HashLength < len(data); i++ {
		var chunk common.Hash
		copy(chunk[:], data[i*common.HashLength:])
		ctx.SetState(makeKey(nameChunkPrefix, uint64Bytes(uint64(i))), chunk)
	}
}

func loadFederation(ctx *vm.Context) common.Address {
	return common.BytesToAddress(ctx.GetState(federationKey).Bytes())
}

func storeFederation(ctx *vm.Context, addr common.Address) {
	ctx.SetState(federationKey, common.BytesToHash(addr.Bytes()))
}

func loadJoined(ctx *vm.Context) bool {
	return ctx.GetState(joinedKey)[0] == occupied
}

func storeJoined(ctx *vm.Context, joined bool) {
	var w common.Hash
	if joined {
		w[0] = occupied
	}
	ctx.SetState(joinedKey, w)
}

func loadProposalCount(ctx *vm.Context) uint32 {
	return uint32(wordUint64(ctx.GetState(proposalCountKey)))
}

func storeProposalCount(ctx *vm.Context, count uint32) {
	ctx.SetState(proposalCountKey, uint64Word(uint64(count)))
}

// Proposal word: [occupied | ... | vote count (4)]
func loadProposal(ctx *vm.Context, id uint32) (*Proposal, bool) {
	w := ctx.GetState(makeKey(proposalPrefix, uint32Bytes(id)))
	if w[0] != occupied {
		return nil, false
	}
	return &Proposal{ID: id, VoteCount: binary.BigEndian.Uint32(w[28:])}, true
}

func storeProposal(ctx *vm.Context, p *Proposal) {
	var w common.Hash
	w[0] = occupied
	binary.BigEndian.PutUint32(w[28:], p.VoteCount)
	ctx.SetState(makeKey(proposalPrefix, uint32Bytes(p.ID)), w)
}

func deleteProposal(ctx *vm.Context, id uint32) {
	ctx.SetState(makeKey(proposalPrefix, uint32Bytes(id)), common.Hash{})
}

func loadVoterLength(ctx *vm.Context) uint64 {
	return wordUint64(ctx.GetState(voterLengthKey))
}

func storeVoterLength(ctx *vm.Context, length uint64) {
	ctx.SetState(voterLengthKey, uint64Word(length))
}

func loadLiveVoters(ctx *vm.Context) uint64 {
	return wordUint64(ctx.GetState(voterLiveKey))
}

func storeLiveVoters(ctx *vm.Context, live uint64) {
	ctx.SetState(voterLiveKey, uint64Word(live))
}

// Voter slot word: [occupied | ... | address (20)]. A zero word is a tombstone.
func loadVoterSlot(ctx *vm.Context, index uint64) (common.Address, bool) {
	w := ctx.GetState(makeKey(voterSlotPrefix, uint64Bytes(index)))
	if w[0] != occupied {
		return common.Address{}, false
	}
	return common.BytesToAddress(w[12:]), true
}

func storeVoterSlot(ctx *vm.Context, index uint64, voter common.Address) {
	var w common.Hash
	w[0] = occupied
	copy(w[12:], voter.Bytes())
	ctx.SetState(makeKey(voterSlotPrefix, uint64Bytes(index)), w)
}

func clearVoterSlot(ctx *vm.Context, index uint64) {
	ctx.SetState(makeKey(voterSlotPrefix, uint64Bytes(index)), common.Hash{})
}

func loadVoteCount(ctx *vm.Context, voter common.Address) uint32 {
	return uint32(wordUint64(ctx.GetState(makeKey(voteCountPrefix, voter.Bytes()))))
}

func storeVoteCount(ctx *vm.Context, voter common.Address, count uint32) {
	ctx.SetState(makeKey(voteCountPrefix, voter.Bytes()), uint64Word(uint64(count)))
}

// makeKey derives a storage key from a prefix and a key
func makeKey(prefix []byte, data []byte) common.Hash {
	return crypto.Keccak256Hash(prefix, data)
}

func uint32Bytes(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

func uint64Bytes(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func uint64Word(v uint64) common.Hash {
	var w common.Hash
	binary.BigEndian.PutUint64(w[24:], v)
	return w
}

func wordUint64(w common.Hash) uint64 {
	return binary.BigEndian.Uint64(w[24:])
}
