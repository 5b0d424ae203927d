// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"github.com/holiman/uint256"

	"github.com/tangletunes/tunes/builtin"
	"github.com/tangletunes/tunes/builtin/distribution"
	"github.com/tangletunes/tunes/tunes"
)

// Distribute sets the fee of caller on every song of the batch. See distribution.Distribution.Distribute.
func (l *Ledger) Distribute(
	caller tunes.Address,
	songs []tunes.Bytes32,
	fees []uint64,
	distIndexes []tunes.Address,
	insertIndexes []tunes.Address,
) (*Receipt, error) {
	return l.mutate("distribute", func(b *builtin.Builtins) error {
		return b.Distribution.Distribute(caller, songs, fees, distIndexes, insertIndexes)
	})
}

// Undistribute removes caller from every song of the batch.
func (l *Ledger) Undistribute(caller tunes.Address, songs []tunes.Bytes32, distIndexes []tunes.Address) (*Receipt, error) {
	return l.mutate("undistribute", func(b *builtin.Builtins) error {
		return b.Distribution.Undistribute(caller, songs, distIndexes)
	})
}

// FindInsertIndexes resolves the insert hints of a Distribute call.
func (l *Ledger) FindInsertIndexes(songs []tunes.Bytes32, fees []uint64) (indexes []tunes.Address, err error) {
	err = l.view(func(b *builtin.Builtins) error {
		indexes, err = b.Distribution.FindInsertIndexes(songs, fees)
		return err
	})
	return
}

// FindDistIndexes resolves the current predecessors of distributors.
func (l *Ledger) FindDistIndexes(songs []tunes.Bytes32, distributors []tunes.Address) (indexes []tunes.Address, err error) {
	err = l.view(func(b *builtin.Builtins) error {
		indexes, err = b.Distribution.FindDistIndexes(songs, distributors)
		return err
	})
	return
}

func (l *Ledger) DistributorsLength(song tunes.Bytes32) (n uint64, err error) {
	err = l.view(func(b *builtin.Builtins) error {
		n, err = b.Distribution.Length(song)
		return err
	})
	return
}

func (l *Ledger) Distributors(song tunes.Bytes32, start tunes.Address, amount uint64) (entries []distribution.Entry, err error) {
	err = l.view(func(b *builtin.Builtins) error {
		entries, err = b.Distribution.Distributors(song, start, amount)
		return err
	})
	return
}

func (l *Ledger) RandDistributor(song tunes.Bytes32, seed *uint256.Int) (entry distribution.Entry, err error) {
	err = l.view(func(b *builtin.Builtins) error {
		entry, err = b.Distribution.RandDistributor(song, seed)
		return err
	})
	return
}
