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
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/superdao/minidao/core/vm"
	"github.com/superdao/minidao/xcm"
)

var (
	testSigner     = common.HexToAddress("0x1234567890123456789012345678901234567890")
	testFederation = common.HexToAddress("0x000000000000000000000000000000000000fed0")
	testDao        = common.HexToAddress("0x00000000000000000000000000000000000d0a01")
	testOtherDao   = common.HexToAddress("0x00000000000000000000000000000000000d0a02")
	testCallee     = common.HexToAddress("0x00000000000000000000000000000000000ca11e")
)

type federationFixture struct {
	env    *vm.Env
	body   *SuperDao
	client *Client
}

func newFederationFixture(t *testing.T) *federationFixture {
	env, err := vm.NewMemoryEnv()
	require.NoError(t, err)
	body := NewSuperDao()
	require.NoError(t, env.Register(testFederation, body))
	return &federationFixture{env: env, body: body, client: NewClient(testFederation)}
}

// as runs fn inside a transaction of the given DAO contract.
func (f *federationFixture) as(dao common.Address, fn func(ctx *vm.Context) error) error {
	return f.env.Transact(testSigner, dao, fn)
}

func (f *federationFixture) isMember(t *testing.T, addr common.Address) bool {
	var member bool
	require.NoError(t, f.env.View(testFederation, func(ctx *vm.Context) error {
		member = f.body.IsMember(ctx, addr)
		return nil
	}))
	return member
}

func (f *federationFixture) proposal(t *testing.T, id uint32) (*ProposalInfo, bool) {
	var (
		info *ProposalInfo
		ok   bool
	)
	require.NoError(t, f.env.View(testFederation, func(ctx *vm.Context) error {
		info, ok = f.body.Proposal(ctx, id)
		return nil
	}))
	return info, ok
}

func testChainCall(t *testing.T) *ChainCall {
	beneficiary, err := xcm.Beneficiary(testSigner.Bytes())
	require.NoError(t, err)
	call, err := TransferCall(&xcm.Transfer{
		Destination: xcm.SiblingParachain(1000),
		Asset:       xcm.NewAsset(xcm.Parent(), uint256.NewInt(10_000_000_000)),
		Beneficiary: beneficiary,
	})
	require.NoError(t, err)
	return call
}

func TestMembership(t *testing.T) {
	f := newFederationFixture(t)

	require.NoError(t, f.as(testDao, f.client.RegisterMember))
	require.True(t, f.isMember(t, testDao))
	require.False(t, f.isMember(t, testOtherDao))

	err := f.as(testDao, f.client.RegisterMember)
	require.ErrorIs(t, err, ErrAlreadyMember)

	require.NoError(t, f.as(testDao, f.client.DeregisterMember))
	require.False(t, f.isMember(t, testDao))

	err = f.as(testDao, f.client.DeregisterMember)
	require.ErrorIs(t, err, ErrNotMember)
}

func TestCreateProposal(t *testing.T) {
	f := newFederationFixture(t)
	call := testChainCall(t)

	err := f.as(testDao, func(ctx *vm.Context) error {
		_, err := f.client.CreateProposal(ctx, call)
		return err
	})
	require.ErrorIs(t, err, ErrNotMember)

	require.NoError(t, f.as(testDao, f.client.RegisterMember))
	for want := uint32(0); want < 2; want++ {
		var id uint32
		require.NoError(t, f.as(testDao, func(ctx *vm.Context) error {
			var err error
			id, err = f.client.CreateProposal(ctx, call)
			return err
		}))
		require.Equal(t, want, id)
	}

	info, ok := f.proposal(t, 1)
	require.True(t, ok)
	require.Equal(t, CallKindChain, info.Kind)
	require.Equal(t, call.Hash(), info.CallHash)

	_, ok = f.proposal(t, 2)
	require.False(t, ok)
}

func TestCreateProposalValidatesCall(t *testing.T) {
	f := newFederationFixture(t)
	require.NoError(t, f.as(testDao, f.client.RegisterMember))

	tests := []struct {
		name string
		call Call
	}{
		{"nil call", nil},
		{"contract call without callee", NewContractCall(common.Address{}, [4]byte{}, nil, nil)},
		{"chain call without program", NewChainCall([]byte{0x04, 0x00, 0x00}, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.as(testDao, func(ctx *vm.Context) error {
				_, err := f.client.CreateProposal(ctx, tt.call)
				return err
			})
			require.ErrorIs(t, err, ErrInvalidCall)
		})
	}
}

func TestVote(t *testing.T) {
	f := newFederationFixture(t)
	require.NoError(t, f.as(testDao, f.client.RegisterMember))
	require.NoError(t, f.as(testOtherDao, f.client.RegisterMember))
	require.NoError(t, f.as(testDao, func(ctx *vm.Context) error {
		_, err := f.client.CreateProposal(ctx, NewContractCall(testCallee, [4]byte{1, 2, 3, 4}, nil, nil))
		return err
	}))

	vote := func(dao common.Address, id uint32, v Vote) error {
		return f.as(dao, func(ctx *vm.Context) error {
			return f.client.Vote(ctx, id, v)
		})
	}
	require.NoError(t, vote(testDao, 0, VoteAffirm))
	require.NoError(t, vote(testOtherDao, 0, VoteReject))
	require.ErrorIs(t, vote(testDao, 0, VoteReject), ErrAlreadyVoted)
	require.ErrorIs(t, vote(testDao, 7, VoteAffirm), ErrProposalNotFound)
	require.ErrorIs(t, vote(testDao, 0, Vote(9)), ErrInvalidVote)

	info, ok := f.proposal(t, 0)
	require.True(t, ok)
	require.Equal(t, CallKindContract, info.Kind)
	require.Equal(t, uint32(1), info.Ayes)
	require.Equal(t, uint32(1), info.Nays)
}

func TestClientResolution(t *testing.T) {
	f := newFederationFixture(t)

	missing := NewClient(common.HexToAddress("0xdead"))
	require.ErrorIs(t, f.as(testDao, missing.RegisterMember), vm.ErrNoContract)

	notBody := common.HexToAddress("0xbeef")
	require.NoError(t, f.env.Register(notBody, struct{}{}))
	require.ErrorIs(t, f.as(testDao, NewClient(notBody).RegisterMember), ErrNotFederation)
}

func TestFederationRejectsViewWrites(t *testing.T) {
	f := newFederationFixture(t)
	err := f.env.View(testDao, f.client.RegisterMember)
	require.ErrorIs(t, err, vm.ErrWriteProtection)
}

func TestChainCallIsImmutable(t *testing.T) {
	dest := []byte{0x04, 0x00, 0x00}
	program := []byte{0x04, 0x00}
	call := NewChainCall(dest, program)
	hash := call.Hash()

	dest[0] = 0xff
	call.Program()[0] = 0xff

	require.Equal(t, []byte{0x04, 0x00, 0x00}, call.Destination())
	require.Equal(t, []byte{0x04, 0x00}, call.Program())
	require.Equal(t, hash, call.Hash())
}

func TestContractCallIsImmutable(t *testing.T) {
	args := []byte{0x01, 0x02}
	value := uint256.NewInt(5)
	call := NewContractCall(testCallee, [4]byte{1, 2, 3, 4}, args, value)
	hash := call.Hash()

	args[0] = 0xff
	value.SetUint64(6)
	call.Arguments()[1] = 0xff
	call.Value().SetUint64(7)

	require.Equal(t, []byte{0x01, 0x02}, call.Arguments())
	require.Equal(t, uint256.NewInt(5), call.Value())
	require.Equal(t, hash, call.Hash())
	require.Equal(t, []byte{1, 2, 3, 4, 0x01, 0x02}, call.Input())
}

func TestCallHashes(t *testing.T) {
	selector := [4]byte{0xde, 0xad, 0xbe, 0xef}
	contract := NewContractCall(testCallee, selector, nil, uint256.NewInt(1))
	same := NewContractCall(testCallee, selector, nil, uint256.NewInt(1))
	require.Equal(t, contract.Hash(), same.Hash())

	other := NewContractCall(testCallee, selector, nil, uint256.NewInt(2))
	require.NotEqual(t, contract.Hash(), other.Hash())

	require.Equal(t, testChainCall(t).Hash(), testChainCall(t).Hash())
	require.NotEqual(t, contract.Hash(), testChainCall(t).Hash())
}

func TestVoteFromBool(t *testing.T) {
	require.Equal(t, VoteAffirm, VoteFromBool(true))
	require.Equal(t, VoteReject, VoteFromBool(false))
	require.Equal(t, "affirm", VoteAffirm.String())
	require.Equal(t, "reject", VoteReject.String())
}

const erc20ABI = `[{"type":"function","name":"transfer","stateMutability":"nonpayable",
"inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
"outputs":[{"name":"","type":"bool"}]}]`

func TestPackContractCall(t *testing.T) {
	token := common.HexToAddress("0x00000000000000000000000000000000000070c1")
	to := common.HexToAddress("0x00000000000000000000000000000000000a11ce")

	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	require.NoError(t, err)
	call, err := PackContractCall(parsed, token, nil, "transfer", to, big.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, token, call.Callee())
	selector := call.Selector()
	require.Equal(t, [4]byte{0xa9, 0x05, 0x9c, 0xbb}, selector)
	args := call.Arguments()
	require.Len(t, args, 64)
	require.Equal(t, to.Bytes(), args[12:32])
	require.Equal(t, byte(0x03), args[62])
	require.Equal(t, byte(0xe8), args[63])
	require.Equal(t, append(selector[:], args...), call.Input())
	require.Nil(t, call.Value())
	require.NoError(t, call.Validate())

	_, err = PackContractCall(parsed, token, nil, "approve", to, big.NewInt(1))
	require.Error(t, err)
	_, err = PackContractCall(parsed, token, nil, "transfer", to)
	require.Error(t, err)
}
