// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"github.com/tangletunes/tunes/builtin/distribution"
	"github.com/tangletunes/tunes/builtin/gascharger"
	"github.com/tangletunes/tunes/builtin/songs"
	"github.com/tangletunes/tunes/builtin/solidity"
	"github.com/tangletunes/tunes/builtin/users"
	"github.com/tangletunes/tunes/state"
	"github.com/tangletunes/tunes/tunes"
)

// Builtins binds the builtin contracts to one state.
// Deleting a user deletes its songs, and deleting a song purges its distributors.
type Builtins struct {
	Users        *users.Registry
	Songs        *songs.Catalog
	Distribution *distribution.Distribution
}

type (
	catalogBinding      Builtins
	distributorsBinding Builtins
)

func (b *catalogBinding) DeleteByAccount(addr tunes.Address) error {
	return b.Songs.DeleteByAccount(addr)
}

func (b *distributorsBinding) Purge(song tunes.Bytes32) error {
	return b.Distribution.Purge(song)
}

// New binds the builtins to state. Storage access is charged to charger, which may be nil.
func New(state *state.State, charger *gascharger.Charger) *Builtins {
	b := &Builtins{}
	b.Users = users.New(
		solidity.NewContext(tunes.UsersAddress, state, charger),
		(*catalogBinding)(b),
	)
	b.Songs = songs.New(
		solidity.NewContext(tunes.SongsAddress, state, charger),
		b.Users,
		(*distributorsBinding)(b),
	)
	b.Distribution = distribution.New(
		solidity.NewContext(tunes.DistributionAddress, state, charger),
		b.Users,
		b.Songs,
	)
	return b
}
