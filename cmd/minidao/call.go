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

package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/superdao/minidao/core/vm"
	"github.com/superdao/minidao/federation"
	"github.com/superdao/minidao/genesis"
)

var (
	abiFlag = &cli.StringFlag{
		Name:     "abi",
		Usage:    "Contract ABI: a JSON file or an inline JSON array",
		Required: true,
	}
	calleeFlag = &cli.StringFlag{
		Name:     "callee",
		Usage:    "Address of the contract to call",
		Required: true,
	}
	methodFlag = &cli.StringFlag{
		Name:     "method",
		Usage:    "Name of the method to call",
		Required: true,
	}
	argFlag = &cli.StringSliceFlag{
		Name:  "arg",
		Usage: "Method argument, in order (repeat for each input)",
	}
	valueFlag = &cli.StringFlag{
		Name:  "value",
		Usage: "Amount sent with the call, in the smallest unit",
	}
	affirmFlag = &cli.BoolFlag{
		Name:  "affirm",
		Usage: "Vote for the proposal (default: vote against it)",
	}
)

var contractCallFlags = []cli.Flag{abiFlag, calleeFlag, methodFlag, argFlag, valueFlag}

func encodeCall(ctx *cli.Context) error {
	call, err := contractCallFromFlags(ctx)
	if err != nil {
		return err
	}
	selector := call.Selector()
	out := ctx.App.Writer
	fmt.Fprintf(out, "callee:    %s\n", call.Callee().Hex())
	fmt.Fprintf(out, "selector:  %s\n", hexutil.Encode(selector[:]))
	fmt.Fprintf(out, "input:     %s\n", hexutil.Encode(call.Input()))
	fmt.Fprintf(out, "call hash: %s\n", call.Hash().Hex())
	return nil
}

// vote rehearses a federation vote: it bootstraps the configured deployment,
// lets the first founder submit the call and cast the DAO's ballot, and
// prints the federation's tally.
func vote(ctx *cli.Context) error {
	call, err := contractCallFromFlags(ctx)
	if err != nil {
		return err
	}
	c, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	env, err := vm.NewMemoryEnv()
	if err != nil {
		return err
	}
	deployment, err := genesis.Bootstrap(env, genesis.BootstrapConfigFrom(c))
	if err != nil {
		return err
	}
	if deployment.FederationBody == nil {
		return errors.New("vote needs a federation deployed at genesis")
	}
	voters := deployment.Dao.Voters()
	if len(voters) == 0 {
		return errors.New("vote needs at least one founder")
	}
	dao, proposer := deployment.Dao, voters[0]

	id, err := dao.CreateFederationProposal(proposer, call)
	if err != nil {
		return err
	}
	ballot := federation.VoteFromBool(ctx.Bool(affirmFlag.Name))
	if err := dao.VoteProposal(proposer, id, ballot); err != nil {
		return err
	}
	var info *federation.ProposalInfo
	err = env.View(deployment.Federation, func(vctx *vm.Context) error {
		var ok bool
		if info, ok = deployment.FederationBody.Proposal(vctx, id); !ok {
			return fmt.Errorf("federation proposal %d not found", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	fmt.Fprintf(out, "proposal:  %d\n", info.ID)
	fmt.Fprintf(out, "call hash: %s\n", info.CallHash.Hex())
	fmt.Fprintf(out, "ballot:    %s\n", ballot)
	fmt.Fprintf(out, "ayes:      %d\n", info.Ayes)
	fmt.Fprintf(out, "nays:      %d\n", info.Nays)
	return nil
}

func contractCallFromFlags(ctx *cli.Context) (*federation.ContractCall, error) {
	parsed, err := loadABI(ctx.String(abiFlag.Name))
	if err != nil {
		return nil, err
	}
	callee := ctx.String(calleeFlag.Name)
	if !common.IsHexAddress(callee) {
		return nil, fmt.Errorf("invalid callee address %q", callee)
	}
	name := ctx.String(methodFlag.Name)
	method, ok := parsed.Methods[name]
	if !ok {
		return nil, fmt.Errorf("method %q not found in ABI", name)
	}
	raw := ctx.StringSlice(argFlag.Name)
	if len(raw) != len(method.Inputs) {
		return nil, fmt.Errorf("%s takes %d arguments, got %d", name, len(method.Inputs), len(raw))
	}
	args := make([]interface{}, len(raw))
	for i, input := range method.Inputs {
		if args[i], err = parseArg(input.Type, raw[i]); err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, input.Name, err)
		}
	}
	var value *uint256.Int
	if ctx.IsSet(valueFlag.Name) {
		if value, err = uint256.FromDecimal(ctx.String(valueFlag.Name)); err != nil {
			return nil, fmt.Errorf("invalid value: %w", err)
		}
	}
	return federation.PackContractCall(parsed, common.HexToAddress(callee), value, name, args...)
}

func loadABI(source string) (abi.ABI, error) {
	data := []byte(source)
	if !strings.HasPrefix(strings.TrimSpace(source), "[") {
		var err error
		if data, err = os.ReadFile(source); err != nil {
			return abi.ABI{}, err
		}
	}
	parsed, err := abi.JSON(strings.NewReader(string(data)))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI: %w", err)
	}
	return parsed, nil
}

// parseArg converts a command line string to the Go value the ABI packer
// expects for typ. Only elementary types are supported.
func parseArg(typ abi.Type, s string) (interface{}, error) {
	switch typ.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.StringTy:
		return s, nil
	case abi.BytesTy:
		return hexutil.Decode(s)
	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(b) != typ.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", typ.Size, len(b))
		}
		v := reflect.New(typ.GetType()).Elem()
		reflect.Copy(v, reflect.ValueOf(b))
		return v.Interface(), nil
	case abi.IntTy, abi.UintTy:
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		if typ.T == abi.UintTy && (n.Sign() < 0 || n.BitLen() > typ.Size) {
			return nil, fmt.Errorf("%s out of range for %s", s, typ)
		}
		if typ.T == abi.IntTy {
			limit := new(big.Int).Lsh(big.NewInt(1), uint(typ.Size-1))
			if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
				return nil, fmt.Errorf("%s out of range for %s", s, typ)
			}
		}
		goType := typ.GetType()
		if goType.Kind() == reflect.Ptr {
			return n, nil
		}
		v := reflect.New(goType).Elem()
		if typ.T == abi.UintTy {
			v.SetUint(n.Uint64())
		} else {
			v.SetInt(n.Int64())
		}
		return v.Interface(), nil
	}
	return nil, fmt.Errorf("unsupported argument type %s", typ)
}
