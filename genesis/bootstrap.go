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
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/superdao/minidao/core/vm"
	"github.com/superdao/minidao/federation"
	"github.com/superdao/minidao/governance"
	"github.com/superdao/minidao/internal/config"
)

// MaxFounders is the maximum number of voters registered at genesis
const MaxFounders = 64

var ErrTooManyFounders = errors.New("too many genesis founders")

// BootstrapConfig holds the genesis deployment configuration
type BootstrapConfig struct {
	// Deployer deploys both contracts; their addresses follow from its nonces
	Deployer common.Address

	// Name is the DAO name
	Name string

	// AutoJoin makes the DAO join its federation at deployment
	AutoJoin bool

	// Federation is an already deployed federation, zero for none
	Federation common.Address

	// DeployFederation deploys the reference federation at nonce 0
	DeployFederation bool

	// Founders are registered as voters right after deployment
	Founders []common.Address
}

// Deployment is the result of a genesis bootstrap
type Deployment struct {
	Federation     common.Address
	FederationBody *federation.SuperDao // nil unless deployed at genesis
	Dao            *governance.Dao
}

// DefaultBootstrapConfig returns the default bootstrap configuration
func DefaultBootstrapConfig() *BootstrapConfig {
	return BootstrapConfigFrom(config.Default())
}

// BootstrapConfigFrom converts a file configuration into a bootstrap
// configuration.
func BootstrapConfigFrom(c *config.Config) *BootstrapConfig {
	return &BootstrapConfig{
		Deployer:         c.DeployerAddress(),
		Name:             c.DAO.Name,
		AutoJoin:         c.DAO.AutoJoin,
		Federation:       c.FederationAddress(),
		DeployFederation: c.Federation.Deploy,
		Founders:         c.FounderAddresses(),
	}
}

// Bootstrap deploys the federation (if requested) and the DAO into env at
// their predicted addresses, then registers the founders.
func Bootstrap(env *vm.Env, cfg *BootstrapConfig) (*Deployment, error) {
	if len(cfg.Founders) > MaxFounders {
		return nil, ErrTooManyFounders
	}
	deployment := &Deployment{Federation: cfg.Federation}

	if cfg.DeployFederation {
		if cfg.Federation != (common.Address{}) {
			return nil, config.ErrConflictingFederation
		}
		deployment.Federation = PredictFederationAddress(cfg.Deployer)
		deployment.FederationBody = federation.NewSuperDao()
		if err := env.Register(deployment.Federation, deployment.FederationBody); err != nil {
			return nil, fmt.Errorf("failed to deploy federation: %w", err)
		}
		log.Info("Deployed federation", "address", deployment.Federation)
	}

	daoConfig := &governance.Config{
		Name:       cfg.Name,
		Federation: deployment.Federation,
		AutoJoin:   cfg.AutoJoin,
	}
	dao, err := governance.Deploy(env, cfg.Deployer, PredictDaoAddress(cfg.Deployer), daoConfig, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy dao: %w", err)
	}
	deployment.Dao = dao

	for _, founder := range cfg.Founders {
		if err := dao.RegisterVoter(founder); err != nil {
			return nil, fmt.Errorf("failed to register founder %s: %w", founder.Hex(), err)
		}
	}
	return deployment, nil
}
