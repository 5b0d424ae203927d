// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/tangletunes/tunes/builtin/gascharger"
	"github.com/tangletunes/tunes/state"
	"github.com/tangletunes/tunes/tunes"
)

// Context binds storage wrappers to the storage of one builtin contract.
// A nil charger disables gas accounting, which is what read-only calls use.
type Context struct {
	address tunes.Address
	state   *state.State
	charger *gascharger.Charger
}

func NewContext(address tunes.Address, state *state.State, charger *gascharger.Charger) *Context {
	return &Context{
		address: address,
		state:   state,
		charger: charger,
	}
}

func (c *Context) Address() tunes.Address {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}

func (c *Context) UseGas(gas uint64) {
	if c.charger != nil {
		c.charger.Charge(gas)
	}
}
