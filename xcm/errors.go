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

package xcm

import "errors"

var (
	ErrTooManyJunctions   = errors.New("location has more than 8 junctions")
	ErrUnsupportedNetwork = errors.New("unsupported network id")
	ErrInvalidAmount      = errors.New("asset amount must be set and fit in 128 bits")
	ErrFeeExceedsAmount   = errors.New("execution fee exceeds withdrawn amount")
	ErrInvalidBeneficiary = errors.New("beneficiary must be a 20 or 32 byte account")
	ErrNilJunction        = errors.New("nil junction")
)
