// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package distribution

import (
	"github.com/tangletunes/tunes/builtin/linkedlist"
	"github.com/tangletunes/tunes/tunes"
)

// checkInsertIndex validates prev as the predecessor of an entry with the given fee:
// prev is none or has a lower fee, and the entry following prev is none or has a fee not lower.
// moving is the entry being repositioned, which is treated as already unlinked.
func (d *Distribution) checkInsertIndex(
	list *linkedlist.LinkedList[tunes.Address],
	song tunes.Bytes32,
	prev tunes.Address,
	fee uint64,
	moving tunes.Address,
) error {
	if !prev.IsZero() {
		linked, err := list.Contains(prev)
		if err != nil {
			return err
		}
		if !linked {
			return ErrInsertIndexNotDistrib
		}
		prevFee, err := d.fee(song, prev)
		if err != nil {
			return err
		}
		if prevFee >= fee {
			return ErrIncorrectInsertIndex
		}
	}

	next, err := list.Next(prev)
	if err != nil {
		return err
	}
	if !moving.IsZero() && next == moving {
		if next, err = list.Next(moving); err != nil {
			return err
		}
	}
	if !next.IsZero() {
		nextFee, err := d.fee(song, next)
		if err != nil {
			return err
		}
		if nextFee < fee {
			return ErrIncorrectInsertIndex
		}
	}
	return nil
}

// checkDistIndex validates prev as the current predecessor of the linked distributor.
func (d *Distribution) checkDistIndex(list *linkedlist.LinkedList[tunes.Address], distributor, prev tunes.Address) error {
	actual, err := list.Prev(distributor)
	if err != nil {
		return err
	}
	if actual == prev {
		return nil
	}
	if !prev.IsZero() {
		linked, err := list.Contains(prev)
		if err != nil {
			return err
		}
		if !linked {
			return ErrDistIndexNotDistrib
		}
	}
	return ErrIncorrectDistIndex
}

// insert links a new distributor right after prev.
func (d *Distribution) insert(song tunes.Bytes32, distributor tunes.Address, fee uint64, prev tunes.Address) error {
	list := d.distributors(song)

	linked, err := list.Contains(distributor)
	if err != nil {
		return err
	}
	if linked {
		return ErrAlreadyDistributing
	}
	if err := d.checkInsertIndex(list, song, prev, fee, tunes.Address{}); err != nil {
		return err
	}
	if err := list.InsertAfter(prev, distributor); err != nil {
		return err
	}
	return d.fees.Set(feeKey(song, distributor), fee, true)
}

// reposition changes the fee of a distributor and moves it right after newPrev.
// curPrev must be its current predecessor. newPrev may name the distributor itself,
// since hints are resolved before the distributor is unlinked, and then means "stay".
func (d *Distribution) reposition(
	song tunes.Bytes32,
	distributor tunes.Address,
	fee uint64,
	curPrev, newPrev tunes.Address,
) error {
	list := d.distributors(song)

	linked, err := list.Contains(distributor)
	if err != nil {
		return err
	}
	if !linked {
		return ErrNotDistributing
	}
	if err := d.checkDistIndex(list, distributor, curPrev); err != nil {
		return err
	}
	if newPrev == distributor {
		newPrev = curPrev
	}
	if err := d.checkInsertIndex(list, song, newPrev, fee, distributor); err != nil {
		return err
	}

	if newPrev != curPrev {
		if err := list.Remove(distributor); err != nil {
			return err
		}
		if err := list.InsertAfter(newPrev, distributor); err != nil {
			return err
		}
	}
	return d.fees.Set(feeKey(song, distributor), fee, false)
}

// remove unlinks a distributor whose current predecessor is prev.
func (d *Distribution) remove(song tunes.Bytes32, distributor, prev tunes.Address) error {
	list := d.distributors(song)

	linked, err := list.Contains(distributor)
	if err != nil {
		return err
	}
	if !linked {
		return ErrNotDistributing
	}
	if err := d.checkDistIndex(list, distributor, prev); err != nil {
		return err
	}
	if err := list.Remove(distributor); err != nil {
		return err
	}
	d.fees.Delete(feeKey(song, distributor))
	return nil
}
