// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gascharger

import (
	"fmt"

	"github.com/tangletunes/tunes/tunes"
)

// Charger accumulates the gas used by storage access of builtin contracts.
// A zero limit means unlimited.
type Charger struct {
	limit          uint64
	sloadOps       uint64
	sstoreSetOps   uint64
	sstoreResetOps uint64
	customGas      uint64
	totalGas       uint64
}

func New(limit uint64) *Charger {
	return &Charger{limit: limit}
}

func (c *Charger) Charge(gas uint64) {
	c.totalGas += gas

	switch {
	// Handle multiples and single operations
	case gas%tunes.SstoreSetGas == 0 && gas > 0:
		c.sstoreSetOps += gas / tunes.SstoreSetGas
	case gas%tunes.SstoreResetGas == 0 && gas > 0:
		c.sstoreResetOps += gas / tunes.SstoreResetGas
	case gas%tunes.SloadGas == 0 && gas > 0:
		c.sloadOps += gas / tunes.SloadGas
	default:
		c.customGas += gas
	}
}

// Exceeded reports whether the charged gas went over the limit.
func (c *Charger) Exceeded() bool {
	return c.limit > 0 && c.totalGas > c.limit
}

func (c *Charger) Breakdown() string {
	return fmt.Sprintf(
		"SLOAD: %d ops (%d gas) | SSTORE_SET: %d ops (%d gas) | SSTORE_RESET: %d ops (%d gas) | CUSTOM: %d gas | TOTAL: %d gas",
		c.sloadOps,
		c.sloadOps*tunes.SloadGas,
		c.sstoreSetOps,
		c.sstoreSetOps*tunes.SstoreSetGas,
		c.sstoreResetOps,
		c.sstoreResetOps*tunes.SstoreResetGas,
		c.customGas,
		c.totalGas,
	)
}

func (c *Charger) TotalGas() uint64 {
	return c.totalGas
}

func (c *Charger) SloadOps() uint64 {
	return c.sloadOps
}

func (c *Charger) SstoreOps() uint64 {
	return c.sstoreSetOps + c.sstoreResetOps
}
