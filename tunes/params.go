// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tunes

import (
	"github.com/ethereum/go-ethereum/params"
)

// Gas prices of storage access made by builtin contracts.
const (
	SloadGas       uint64 = params.SloadGasEIP2200
	SstoreSetGas   uint64 = params.SstoreSetGas
	SstoreResetGas uint64 = params.SstoreResetGas
)

// Addresses of builtin contracts. Each builtin owns the storage slots under its address.
var (
	UsersAddress        = BytesToAddress([]byte("Users"))
	SongsAddress        = BytesToAddress([]byte("Songs"))
	DistributionAddress = BytesToAddress([]byte("Distribution"))
)
