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

// Package xcm builds cross-chain instruction programs and encodes them in the
// SCALE layout of XCM version 4, so that a program can travel as an opaque
// payload inside a federation proposal.
package xcm

import (
	"bytes"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Version is the XCM version tag written in front of every versioned
// location and program.
const Version = 4

// EncodeVersionedLocation encodes loc as a VersionedLocation.
func EncodeVersionedLocation(loc Location) ([]byte, error) {
	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)
	if err := enc.PushByte(Version); err != nil {
		return nil, err
	}
	if err := loc.encode(enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeVersionedXcm encodes msg as a VersionedXcm.
func EncodeVersionedXcm(msg Xcm) ([]byte, error) {
	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)
	if err := enc.PushByte(Version); err != nil {
		return nil, err
	}
	if err := msg.encode(enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeCompact(enc *scale.Encoder, v uint64) error {
	return enc.EncodeUintCompact(*new(big.Int).SetUint64(v))
}

func encodeCompactBig(enc *scale.Encoder, v *big.Int) error {
	return enc.EncodeUintCompact(*v)
}

func encodeOptionalNetwork(enc *scale.Encoder, network *NetworkID) error {
	if network == nil {
		return enc.PushByte(0)
	}
	if err := enc.PushByte(1); err != nil {
		return err
	}
	return network.encode(enc)
}
