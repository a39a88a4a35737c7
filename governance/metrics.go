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

import "github.com/ethereum/go-ethereum/metrics"

var (
	votersRegistered   = metrics.NewRegisteredCounter("governance/voters/registered", nil)
	votersDeregistered = metrics.NewRegisteredCounter("governance/voters/deregistered", nil)
	proposalsCreated   = metrics.NewRegisteredCounter("governance/proposals/created", nil)
	proposalsRemoved   = metrics.NewRegisteredCounter("governance/proposals/removed", nil)
	votesCast          = metrics.NewRegisteredCounter("governance/votes/cast", nil)
	federationCalls    = metrics.NewRegisteredCounter("governance/federation/calls", nil)
	federationFailures = metrics.NewRegisteredCounter("governance/federation/failures", nil)
	opsReverted        = metrics.NewRegisteredCounter("governance/ops/reverted", nil)
)
