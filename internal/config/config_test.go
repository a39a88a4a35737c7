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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

const sampleConfig = `
[dao]
name = "parachain-council"
auto_join = false
deployer = "0x1234567890123456789012345678901234567890"
founders = ["0x00000000000000000000000000000000000a11ce", "0x0000000000000000000000000000000000000b0b"]

[federation]
address = "0x000000000000000000000000000000000000fed0"
deploy = false
`

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "minidao.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	config := Default()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if config.DAO.Name != "minidao" {
		t.Errorf("expected name minidao, got %s", config.DAO.Name)
	}
	if !config.DAO.AutoJoin || !config.Federation.Deploy {
		t.Error("default config should deploy and join a federation")
	}
	if config.FederationAddress() != (common.Address{}) {
		t.Error("default config should not name a federation")
	}
}

func TestLoad(t *testing.T) {
	config, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.DAO.Name != "parachain-council" {
		t.Errorf("unexpected name %s", config.DAO.Name)
	}
	if config.DAO.AutoJoin {
		t.Error("auto_join should be false")
	}
	if want := common.HexToAddress("0x1234567890123456789012345678901234567890"); config.DeployerAddress() != want {
		t.Errorf("expected deployer %s, got %s", want.Hex(), config.DeployerAddress().Hex())
	}
	if founders := config.FounderAddresses(); len(founders) != 2 || founders[1] != common.HexToAddress("0xb0b") {
		t.Errorf("unexpected founders %v", founders)
	}
	if want := common.HexToAddress("0xfed0"); config.FederationAddress() != want {
		t.Errorf("expected federation %s, got %s", want.Hex(), config.FederationAddress().Hex())
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	config, err := Load(writeConfig(t, "[dao]\nname = \"short\"\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.DAO.Name != "short" {
		t.Errorf("unexpected name %s", config.DAO.Name)
	}
	if config.DAO.Deployer != defaultDeployer || !config.Federation.Deploy {
		t.Error("missing keys should keep their defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "[dao\nname = ")); err == nil {
		t.Error("expected error for malformed TOML")
	}
	if _, err := Load(writeConfig(t, "[dao]\nquorum = 3\n")); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvName, "from-env")
	t.Setenv(EnvDeployer, "0x00000000000000000000000000000000000000aa")

	config, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.DAO.Name != "from-env" {
		t.Errorf("expected name from environment, got %s", config.DAO.Name)
	}
	if config.DeployerAddress() != common.HexToAddress("0xaa") {
		t.Errorf("expected deployer from environment, got %s", config.DeployerAddress().Hex())
	}
}

func TestEnvFederationReplacesDeploy(t *testing.T) {
	t.Setenv(EnvFederation, "0x00000000000000000000000000000000000000bb")

	config := Default()
	ApplyEnv(config)
	if config.Federation.Deploy {
		t.Error("explicit federation should disable genesis deployment")
	}
	if config.FederationAddress() != common.HexToAddress("0xbb") {
		t.Errorf("unexpected federation %s", config.FederationAddress().Hex())
	}
	if err := config.Validate(); err != nil {
		t.Errorf("config should stay valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"empty name", func(c *Config) { c.DAO.Name = "" }, ErrEmptyName},
		{"address and deploy", func(c *Config) { c.Federation.Address = "0x000000000000000000000000000000000000fed0" }, ErrConflictingFederation},
		{"auto join alone", func(c *Config) { c.Federation.Deploy = false }, ErrNoFederation},
		{"standalone", func(c *Config) { c.Federation.Deploy = false; c.DAO.AutoJoin = false }, nil},
		{"duplicate founder", func(c *Config) {
			c.DAO.Founders = []string{"0x00000000000000000000000000000000000a11ce", "0x00000000000000000000000000000000000A11CE"}
		}, ErrDuplicateFounder},
		{"zero federation", func(c *Config) {
			c.Federation.Deploy = false
			c.Federation.Address = "0x0000000000000000000000000000000000000000"
		}, ErrZeroFederation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(config)
			if err := config.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateAddresses(t *testing.T) {
	config := Default()
	config.DAO.Deployer = "not-an-address"
	if err := config.Validate(); err == nil {
		t.Error("expected error for malformed deployer")
	}

	config = Default()
	config.DAO.Founders = []string{"0x00000000000000000000000000000000000a11ce", "alice"}
	if err := config.Validate(); err == nil {
		t.Error("expected error for malformed founder")
	}

	config = Default()
	config.Federation.Deploy = false
	config.Federation.Address = "0x1234"
	if err := config.Validate(); err == nil {
		t.Error("expected error for malformed federation")
	}
}

func TestEncode(t *testing.T) {
	data, err := Default().Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	config, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(config, Default()) {
		t.Errorf("encoded config does not parse back: %+v", config)
	}
}
