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

// minidao is the command line tool of the DAO: it encodes cross-chain
// transfer and contract call proposals for off-chain verification and
// bootstraps deployments.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/superdao/minidao/core/vm"
	"github.com/superdao/minidao/federation"
	"github.com/superdao/minidao/genesis"
	"github.com/superdao/minidao/internal/config"
	"github.com/superdao/minidao/xcm"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "Write logs to a rotated file instead of the terminal",
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}

	parentsFlag = &cli.UintFlag{
		Name:  "parents",
		Usage: "Parents of the destination location",
		Value: 1,
	}
	parachainFlag = &cli.UintFlag{
		Name:  "parachain",
		Usage: "Destination parachain id (0 for the relay chain)",
	}
	assetParentsFlag = &cli.UintFlag{
		Name:  "asset-parents",
		Usage: "Parents of the asset location as seen from the destination",
		Value: 1,
	}
	amountFlag = &cli.StringFlag{
		Name:     "amount",
		Usage:    "Amount to transfer, in the asset's smallest unit",
		Required: true,
	}
	feeFlag = &cli.StringFlag{
		Name:  "fee",
		Usage: "Part of the amount paid for execution (default: all of it)",
	}
	beneficiaryFlag = &cli.StringFlag{
		Name:     "beneficiary",
		Usage:    "Hex account receiving the assets (32 or 20 bytes)",
		Required: true,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:   "minidao",
		Usage:  "DAO governance and cross-chain proposal tool",
		Flags:  []cli.Flag{verbosityFlag, logFileFlag},
		Before: setupLogging,
		After:  closeLogging,

		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			{
				Name:   "encode",
				Usage:  "Encode a cross-chain transfer proposal",
				Flags:  []cli.Flag{parentsFlag, parachainFlag, assetParentsFlag, amountFlag, feeFlag, beneficiaryFlag},
				Action: encode,
			},
			{
				Name:   "encode-call",
				Usage:  "ABI encode a contract call for a federation proposal",
				Flags:  contractCallFlags,
				Action: encodeCall,
			},
			{
				Name:   "vote",
				Usage:  "Rehearse a federation proposal and vote on a bootstrapped deployment",
				Flags:  append([]cli.Flag{configFlag, affirmFlag}, contractCallFlags...),
				Action: vote,
			},
			{
				Name:   "bootstrap",
				Usage:  "Bootstrap a deployment into an in-memory ledger",
				Flags:  []cli.Flag{configFlag},
				Action: bootstrap,
			},
			{
				Name:   "dumpconfig",
				Usage:  "Show the effective configuration",
				Flags:  []cli.Flag{configFlag},
				Action: dumpConfig,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var logFile *lumberjack.Logger

func setupLogging(ctx *cli.Context) error {
	level := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))

	var handler slog.Handler
	if path := ctx.String(logFileFlag.Name); path != "" {
		logFile = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			Compress:   true,
		}
		handler = log.NewTerminalHandlerWithLevel(logFile, level, false)
	} else {
		output := ctx.App.ErrWriter
		useColor := false
		if output == io.Writer(os.Stderr) {
			useColor = (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
			if useColor {
				output = colorable.NewColorableStderr()
			}
		}
		handler = log.NewTerminalHandlerWithLevel(output, level, useColor)
	}
	log.SetDefault(log.NewLogger(handler))
	return nil
}

func closeLogging(ctx *cli.Context) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func encode(ctx *cli.Context) error {
	transfer, err := transferFromFlags(ctx)
	if err != nil {
		return err
	}
	payload, err := transfer.Build()
	if err != nil {
		return err
	}
	call, err := federation.TransferCall(transfer)
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	fmt.Fprintf(out, "destination:  %s\n", hexutil.Encode(payload.Destination))
	fmt.Fprintf(out, "program:      %s\n", hexutil.Encode(payload.Program))
	fmt.Fprintf(out, "payload hash: %s\n", payload.Hash().Hex())
	fmt.Fprintf(out, "call hash:    %s\n", call.Hash().Hex())
	return nil
}

func transferFromFlags(ctx *cli.Context) (*xcm.Transfer, error) {
	parents, err := uint8Flag(ctx, parentsFlag.Name)
	if err != nil {
		return nil, err
	}
	assetParents, err := uint8Flag(ctx, assetParentsFlag.Name)
	if err != nil {
		return nil, err
	}
	amount, err := uint256.FromDecimal(ctx.String(amountFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	var fee *uint256.Int
	if ctx.IsSet(feeFlag.Name) {
		if fee, err = uint256.FromDecimal(ctx.String(feeFlag.Name)); err != nil {
			return nil, fmt.Errorf("invalid fee: %w", err)
		}
	}
	account, err := hexutil.Decode(ctx.String(beneficiaryFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid beneficiary: %w", err)
	}
	beneficiary, err := xcm.Beneficiary(account)
	if err != nil {
		return nil, err
	}

	destination := xcm.NewLocation(parents)
	if para := ctx.Uint(parachainFlag.Name); para != 0 {
		if uint64(para) > math.MaxUint32 {
			return nil, fmt.Errorf("--%s out of range: %d", parachainFlag.Name, para)
		}
		destination = xcm.NewLocation(parents, xcm.Parachain(para))
	}
	return &xcm.Transfer{
		Destination: destination,
		Asset:       xcm.NewAsset(xcm.NewLocation(assetParents), amount),
		Fee:         fee,
		Beneficiary: beneficiary,
	}, nil
}

func uint8Flag(ctx *cli.Context, name string) (uint8, error) {
	v := ctx.Uint(name)
	if v > math.MaxUint8 {
		return 0, fmt.Errorf("--%s out of range: %d", name, v)
	}
	return uint8(v), nil
}

// loadConfig reads the configuration file if one is given, the defaults
// with environment overrides otherwise.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if path := ctx.String(configFlag.Name); path != "" {
		return config.Load(path)
	}
	c := config.Default()
	config.ApplyEnv(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func bootstrap(ctx *cli.Context) error {
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
	dao := deployment.Dao
	out := ctx.App.Writer
	fmt.Fprintf(out, "dao:        %s (%s)\n", dao.Address().Hex(), dao.Name())
	fmt.Fprintf(out, "federation: %s (joined: %t)\n", deployment.Federation.Hex(), dao.Joined())
	for _, voter := range dao.Voters() {
		fmt.Fprintf(out, "voter:      %s\n", voter.Hex())
	}
	return nil
}

func dumpConfig(ctx *cli.Context) error {
	c, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	data, err := c.Encode()
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(data)
	return err
}
