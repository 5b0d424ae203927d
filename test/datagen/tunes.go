// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package datagen

import (
	"crypto/rand"
	mathrand "math/rand/v2"

	"github.com/tangletunes/tunes/tunes"
)

func RandomHash() tunes.Bytes32 {
	var b32 tunes.Bytes32

	rand.Read(b32[:])
	return b32
}

func RandAddress() tunes.Address {
	var addr tunes.Address

	rand.Read(addr[:])
	return addr
}

func RandAddresses(n int) []tunes.Address {
	addrs := make([]tunes.Address, n)
	for i := range addrs {
		addrs[i] = RandAddress()
	}
	return addrs
}

func RandUint64N(n uint64) uint64 {
	return mathrand.Uint64N(n) //#nosec G404
}
