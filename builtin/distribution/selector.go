// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package distribution

import (
	"github.com/holiman/uint256"

	"github.com/tangletunes/tunes/tunes"
)

// Length returns the number of distributors of the song.
func (d *Distribution) Length(song tunes.Bytes32) (uint64, error) {
	return d.distributors(song).Len()
}

// Distributors lists up to amount entries following start in fee order.
// A zero start lists from the head.
func (d *Distribution) Distributors(song tunes.Bytes32, start tunes.Address, amount uint64) ([]Entry, error) {
	list := d.distributors(song)

	count, err := list.Len()
	if err != nil {
		return nil, err
	}

	var ptr tunes.Address
	if start.IsZero() {
		if ptr, err = list.Head(); err != nil {
			return nil, err
		}
	} else {
		linked, err := list.Contains(start)
		if err != nil {
			return nil, err
		}
		if !linked {
			return nil, ErrStartNotDistributing
		}
		if ptr, err = list.Next(start); err != nil {
			return nil, err
		}
	}

	entries := make([]Entry, 0, min(amount, count))
	for !ptr.IsZero() && uint64(len(entries)) < amount {
		fee, err := d.fee(song, ptr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Distributor: ptr, Fee: fee})
		if ptr, err = list.Next(ptr); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// RandDistributor picks the entry at position seed mod length, counted from the head.
func (d *Distribution) RandDistributor(song tunes.Bytes32, seed *uint256.Int) (Entry, error) {
	list := d.distributors(song)

	count, err := list.Len()
	if err != nil {
		return Entry{}, err
	}
	if count == 0 {
		return Entry{}, ErrNoDistributors
	}
	var index uint64
	if seed != nil {
		index = new(uint256.Int).Mod(seed, uint256.NewInt(count)).Uint64()
	}

	ptr, err := list.Head()
	if err != nil {
		return Entry{}, err
	}
	for range index {
		if ptr, err = list.Next(ptr); err != nil {
			return Entry{}, err
		}
	}
	fee, err := d.fee(song, ptr)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Distributor: ptr, Fee: fee}, nil
}
