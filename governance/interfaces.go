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
	"github.com/superdao/minidao/core/vm"
	"github.com/superdao/minidao/federation"
)

// Federation is the operation set of the parent governance body, as seen
// from a member DAO. Calls are synchronous and run inside the DAO's own
// transaction.
type Federation interface {
	// RegisterMember joins the DAO to the federation
	RegisterMember(ctx *vm.Context) error

	// DeregisterMember removes the DAO from the federation
	DeregisterMember(ctx *vm.Context) error

	// CreateProposal submits a remote action and returns the federation's proposal id
	CreateProposal(ctx *vm.Context, call federation.Call) (uint32, error)

	// Vote casts the DAO's ballot on a federation proposal
	Vote(ctx *vm.Context, proposalID uint32, vote federation.Vote) error
}
