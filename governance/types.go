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
)

// Proposal is a local proposal and its tally
type Proposal struct {
	ID        uint32 // 提案 ID
	VoteCount uint32 // 累计票数
}

// Config holds the construction-time configuration of a DAO
type Config struct {
	Name       string         // DAO 名称
	Federation common.Address // 上级联邦合约地址（零地址表示无联邦）
	AutoJoin   bool           // 部署时自动加入联邦
}

// DefaultConfig returns the default configuration: a standalone DAO
func DefaultConfig() *Config {
	return &Config{
		Name: "minidao",
	}
}

// HasFederation reports whether a federation address is configured
func (c *Config) HasFederation() bool {
	return c.Federation != (common.Address{})
}
