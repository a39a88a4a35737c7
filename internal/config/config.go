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
	"bytes"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pelletier/go-toml/v2"
)

// Config is the deployment configuration of a DAO and its federation.
type Config struct {
	DAO        DAOConfig        `toml:"dao"`
	Federation FederationConfig `toml:"federation"`
}

// DAOConfig describes the DAO contract.
type DAOConfig struct {
	Name     string   `toml:"name"`
	AutoJoin bool     `toml:"auto_join"`
	Deployer string   `toml:"deployer"`           // hex address that deploys the contracts
	Founders []string `toml:"founders,omitempty"` // voters registered at genesis
}

// FederationConfig selects the federation the DAO belongs to.
type FederationConfig struct {
	Address string `toml:"address"` // existing federation, empty for none
	Deploy  bool   `toml:"deploy"`  // deploy the reference federation at genesis
}

const (
	defaultName     = "minidao"
	defaultDeployer = "0x0000000000000000000000000000000000001001"
)

// Default returns a local configuration: a fresh federation deployed next to
// a DAO that joins it on deployment.
func Default() *Config {
	return &Config{
		DAO: DAOConfig{
			Name:     defaultName,
			AutoJoin: true,
			Deployer: defaultDeployer,
		},
		Federation: FederationConfig{
			Deploy: true,
		},
	}
}

// Parse decodes TOML data on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	config := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}
	return config, nil
}

// Load reads a TOML file, applies environment overrides and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config, err := Parse(data)
	if err != nil {
		return nil, err
	}
	ApplyEnv(config)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// DeployerAddress returns the configured deployer.
func (c *Config) DeployerAddress() common.Address {
	return common.HexToAddress(c.DAO.Deployer)
}

// FounderAddresses returns the configured founders.
func (c *Config) FounderAddresses() []common.Address {
	founders := make([]common.Address, len(c.DAO.Founders))
	for i, f := range c.DAO.Founders {
		founders[i] = common.HexToAddress(f)
	}
	return founders
}

// FederationAddress returns the configured federation, zero if none.
func (c *Config) FederationAddress() common.Address {
	if c.Federation.Address == "" {
		return common.Address{}
	}
	return common.HexToAddress(c.Federation.Address)
}
