// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"fmt"

	"github.com/tangletunes/tunes/tunes"
)

// DevAccounts returns the accounts registered by the devnet genesis.
func DevAccounts() []tunes.Address {
	accounts := make([]tunes.Address, 0, 4)
	for i := range 4 {
		accounts = append(accounts, tunes.BytesToAddress(fmt.Appendf(nil, "dev%d", i)))
	}
	return accounts
}

// NewDevnet returns the genesis of a development ledger: one song by the
// first dev account, distributed by the others at increasing fees.
func NewDevnet() *Genesis {
	accounts := DevAccounts()

	gen := &Genesis{
		Songs: []Song{{
			Author:   accounts[0],
			Name:     "devnet",
			Price:    1,
			Length:   1024,
			Duration: 60,
			Chunks:   []tunes.Bytes32{tunes.Keccak256([]byte("devnet"))},
		}},
	}
	for i, addr := range accounts {
		gen.Users = append(gen.Users, User{Address: addr, Username: fmt.Sprintf("dev%d", i)})
		if i > 0 {
			gen.Distributors = append(gen.Distributors, Distributor{
				Address: addr,
				Song:    "devnet",
				Author:  accounts[0],
				Fee:     uint64(i),
			})
		}
	}
	return gen
}
