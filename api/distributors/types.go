// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package distributors

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/tangletunes/tunes/builtin/distribution"
	"github.com/tangletunes/tunes/tunes"
)

// DistributeRequest sets the fee of Caller on every song. The four lists are paired by position.
type DistributeRequest struct {
	Caller        tunes.Address         `json:"caller"`
	Songs         []tunes.Bytes32       `json:"songs"`
	Fees          []math.HexOrDecimal64 `json:"fees"`
	DistIndexes   []tunes.Address       `json:"distIndexes"`
	InsertIndexes []tunes.Address       `json:"insertIndexes"`
}

type UndistributeRequest struct {
	Caller      tunes.Address   `json:"caller"`
	Songs       []tunes.Bytes32 `json:"songs"`
	DistIndexes []tunes.Address `json:"distIndexes"`
}

// InsertIndexesRequest asks where entries with the given fees belong.
type InsertIndexesRequest struct {
	Songs []tunes.Bytes32       `json:"songs"`
	Fees  []math.HexOrDecimal64 `json:"fees"`
}

// DistIndexesRequest asks for the current predecessors of distributors.
type DistIndexesRequest struct {
	Songs        []tunes.Bytes32 `json:"songs"`
	Distributors []tunes.Address `json:"distributors"`
}

type Entry struct {
	Distributor tunes.Address `json:"distributor"`
	Fee         uint64        `json:"fee"`
}

type Length struct {
	Length uint64 `json:"length"`
}

func convertEntry(e distribution.Entry) *Entry {
	return &Entry{
		Distributor: e.Distributor,
		Fee:         e.Fee,
	}
}

func convertFees(fees []math.HexOrDecimal64) []uint64 {
	out := make([]uint64, len(fees))
	for i, fee := range fees {
		out[i] = uint64(fee)
	}
	return out
}
