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

// voteLedger counts the votes each voter has cast across all proposals.
type voteLedger struct{}

func (voteLedger) record(ctx *vm.Context, voter common.Address) {
	storeVoteCount(ctx, voter, loadVoteCount(ctx, voter)+1)
}

func (voteLedger) tally(ctx *vm.Context, voter common.Address) uint32 {
	return loadVoteCount(ctx, voter)
}
