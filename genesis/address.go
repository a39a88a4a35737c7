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

package genesis

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Genesis deployment order of the deployer account
const (
	federationNonce uint64 = 0
	daoNonce        uint64 = 1
)

// CalculateContractAddress deterministically calculates a contract address
// based on the deployer address and nonce using CREATE opcode rules:
// keccak256(rlp([deployer, nonce]))[12:]
func CalculateContractAddress(deployer common.Address, nonce uint64) common.Address {
	return crypto.CreateAddress(deployer, nonce)
}

// PredictFederationAddress predicts the federation contract address
// The federation contract is deployed at nonce 0
func PredictFederationAddress(deployer common.Address) common.Address {
	return CalculateContractAddress(deployer, federationNonce)
}

// PredictDaoAddress predicts the DAO contract address. The DAO keeps nonce 1
// even when no federation is deployed, so its address does not depend on the
// federation setup.
func PredictDaoAddress(deployer common.Address) common.Address {
	return CalculateContractAddress(deployer, daoNonce)
}
