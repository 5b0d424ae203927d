// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package distribution

import (
	"github.com/tangletunes/tunes/tunes"
)

// FindInsertPredecessor returns the entry after which an entry with the given fee belongs:
// the last entry with a strictly lower fee, or none when it goes to the head.
// An entry placed there precedes existing entries with the same fee.
// It walks the list and must only be run on state that is not going to be committed.
func (d *Distribution) FindInsertPredecessor(song tunes.Bytes32, fee uint64) (tunes.Address, error) {
	var prev tunes.Address
	err := d.distributors(song).Iter(func(distributor tunes.Address) (bool, error) {
		f, err := d.fee(song, distributor)
		if err != nil {
			return false, err
		}
		if f >= fee {
			return false, nil
		}
		prev = distributor
		return true, nil
	})
	if err != nil {
		return tunes.Address{}, err
	}
	return prev, nil
}

// FindCurrentPredecessor returns the entry preceding the distributor, or none if it is the head.
func (d *Distribution) FindCurrentPredecessor(song tunes.Bytes32, distributor tunes.Address) (tunes.Address, error) {
	list := d.distributors(song)
	linked, err := list.Contains(distributor)
	if err != nil {
		return tunes.Address{}, err
	}
	if !linked {
		return tunes.Address{}, ErrNotDistributing
	}
	return list.Prev(distributor)
}

// FindInsertIndexes resolves FindInsertPredecessor for every (song, fee) pair.
func (d *Distribution) FindInsertIndexes(songs []tunes.Bytes32, fees []uint64) ([]tunes.Address, error) {
	if len(songs) != len(fees) {
		return nil, ErrLengthMismatch
	}
	indexes := make([]tunes.Address, len(songs))
	for i, song := range songs {
		index, err := d.FindInsertPredecessor(song, fees[i])
		if err != nil {
			return nil, err
		}
		indexes[i] = index
	}
	return indexes, nil
}

// FindDistIndexes resolves FindCurrentPredecessor for every (song, distributor) pair.
func (d *Distribution) FindDistIndexes(songs []tunes.Bytes32, distributors []tunes.Address) ([]tunes.Address, error) {
	if len(songs) != len(distributors) {
		return nil, ErrLengthMismatch
	}
	indexes := make([]tunes.Address, len(songs))
	for i, song := range songs {
		index, err := d.FindCurrentPredecessor(song, distributors[i])
		if err != nil {
			return nil, err
		}
		indexes[i] = index
	}
	return indexes, nil
}
