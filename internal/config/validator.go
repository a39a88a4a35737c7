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

package config

import (
	"errors"
	"fmt"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/common"
)

// Environment variables overriding the file configuration
const (
	EnvName       = "MINIDAO_NAME"
	EnvFederation = "MINIDAO_FEDERATION"
	EnvDeployer   = "MINIDAO_DEPLOYER"
)

var (
	ErrEmptyName             = errors.New("dao name must not be empty")
	ErrConflictingFederation = errors.New("federation address and deploy are mutually exclusive")
	ErrNoFederation          = errors.New("auto_join requires a federation address or deploy = true")
	ErrDuplicateFounder      = errors.New("duplicate founder")
	ErrZeroFederation        = errors.New("federation address must not be zero")
)

// ApplyEnv overrides configuration values with the environment. The
// environment has the highest priority, then the file, then the defaults.
func ApplyEnv(config *Config) {
	config.DAO.Name = getEnvOrDefault(EnvName, config.DAO.Name)
	config.DAO.Deployer = getEnvOrDefault(EnvDeployer, config.DAO.Deployer)
	if addr := os.Getenv(EnvFederation); addr != "" {
		// An explicit federation replaces a genesis deployment
		config.Federation.Address = addr
		config.Federation.Deploy = false
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.DAO.Name == "" {
		return ErrEmptyName
	}
	if !common.IsHexAddress(c.DAO.Deployer) {
		return fmt.Errorf("invalid deployer address %q", c.DAO.Deployer)
	}
	founders := mapset.NewThreadUnsafeSet[common.Address]()
	for _, founder := range c.DAO.Founders {
		if !common.IsHexAddress(founder) {
			return fmt.Errorf("invalid founder address %q", founder)
		}
		if !founders.Add(common.HexToAddress(founder)) {
			return fmt.Errorf("%w: %s", ErrDuplicateFounder, founder)
		}
	}
	if c.Federation.Address != "" {
		if !common.IsHexAddress(c.Federation.Address) {
			return fmt.Errorf("invalid federation address %q", c.Federation.Address)
		}
		if common.HexToAddress(c.Federation.Address) == (common.Address{}) {
			return ErrZeroFederation
		}
		if c.Federation.Deploy {
			return ErrConflictingFederation
		}
	}
	if c.DAO.AutoJoin && c.Federation.Address == "" && !c.Federation.Deploy {
		return ErrNoFederation
	}
	return nil
}

// getEnvOrDefault retrieves an environment variable or returns a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
