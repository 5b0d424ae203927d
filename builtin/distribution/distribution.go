// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package distribution keeps, for every song, the accounts distributing it sorted by ascending fee.
//
// Mutations never search the list. Callers resolve positional hints with the
// read-only Find* methods first, then submit them; every hint is re-validated
// against live state with a constant number of slot reads, so a hint that went
// stale in between is rejected instead of corrupting the order.
package distribution

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/tangletunes/tunes/builtin/linkedlist"
	"github.com/tangletunes/tunes/builtin/solidity"
	"github.com/tangletunes/tunes/tunes"
)

var logger = log.New("pkg", "distribution")

var (
	distributorsPos = tunes.BytesToBytes32([]byte("distributors"))
	feesPos         = tunes.BytesToBytes32([]byte("fees"))
)

// Accounts answers whether an account is registered.
type Accounts interface {
	Exists(addr tunes.Address) (bool, error)
}

// Songs answers whether a song is in the catalog.
type Songs interface {
	Exists(id tunes.Bytes32) (bool, error)
}

// Entry is a distributor of a song with the fee it charges.
type Entry struct {
	Distributor tunes.Address
	Fee         uint64
}

// Distribution implements the distributor lists of all songs.
type Distribution struct {
	sctx     *solidity.Context
	accounts Accounts
	songs    Songs
	fees     *solidity.Mapping[tunes.Bytes32, uint64]
}

// New create a new instance.
func New(sctx *solidity.Context, accounts Accounts, songs Songs) *Distribution {
	return &Distribution{
		sctx:     sctx,
		accounts: accounts,
		songs:    songs,
		fees:     solidity.NewMapping[tunes.Bytes32, uint64](sctx, feesPos),
	}
}

func (d *Distribution) distributors(song tunes.Bytes32) *linkedlist.LinkedList[tunes.Address] {
	return linkedlist.New[tunes.Address](d.sctx, distributorsPos, song)
}

func feeKey(song tunes.Bytes32, distributor tunes.Address) tunes.Bytes32 {
	return tunes.Blake2b(song[:], distributor[:])
}

func (d *Distribution) fee(song tunes.Bytes32, distributor tunes.Address) (uint64, error) {
	return d.fees.Get(feeKey(song, distributor))
}

// IsDistributing returns whether the account is in the distributor list of the song.
func (d *Distribution) IsDistributing(song tunes.Bytes32, distributor tunes.Address) (bool, error) {
	return d.distributors(song).Contains(distributor)
}

// Purge removes every distributor of the song. It is called by the song catalog
// when the song is deleted and is never reachable from a distributor's call.
func (d *Distribution) Purge(song tunes.Bytes32) error {
	list := d.distributors(song)

	count := 0
	if err := list.Iter(func(distributor tunes.Address) (bool, error) {
		d.fees.Delete(feeKey(song, distributor))
		count++
		return true, nil
	}); err != nil {
		return err
	}
	if err := list.Clear(); err != nil {
		return err
	}
	logger.Debug("purged distributors", "song", song, "count", count)
	return nil
}
