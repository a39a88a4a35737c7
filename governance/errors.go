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

import "errors"

// Membership errors
var (
	ErrAlreadyRegistered = errors.New("voter already registered")
	ErrNotRegistered     = errors.New("voter not registered")
)

// Proposal errors
var (
	ErrProposalNotFound = errors.New("proposal does not exist")
)

// Federation errors
var (
	ErrNoFederation = errors.New("no federation configured")
	ErrEmptyName    = errors.New("dao name must not be empty")
)

// FederationError carries a failure reported by the federation. It unwraps to
// the federation's error unchanged, so callers can tell a local rejection
// from a remote one with errors.As and still match the remote cause with
// errors.Is.
type FederationError struct {
	Op  string
	Err error
}

func (e *FederationError) Error() string {
	return "federation " + e.Op + ": " + e.Err.Error()
}

func (e *FederationError) Unwrap() error {
	return e.Err
}

func federationError(op string, err error) error {
	if err == nil {
		return nil
	}
	federationFailures.Inc(1)
	return &FederationError{Op: op, Err: err}
}
