// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package distribution

import (
	"github.com/pkg/errors"

	"github.com/tangletunes/tunes/tunes"
)

func (d *Distribution) requireUser(caller tunes.Address) error {
	exists, err := d.accounts.Exists(caller)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotExist
	}
	return nil
}

// atomic runs fn for every index in order and reverts all of them once one fails.
func (d *Distribution) atomic(n int, fn func(i int) error) error {
	st := d.sctx.State()
	checkpoint := st.NewCheckpoint()
	for i := range n {
		if err := fn(i); err != nil {
			st.RevertTo(checkpoint)
			return errors.WithMessagef(err, "songs[%d]", i)
		}
	}
	return nil
}

// Distribute makes the caller distribute every song of the batch at the paired fee.
//
// For a song the caller is not distributing yet, distIndexes[i] must be none and the
// caller is inserted after insertIndexes[i]. Otherwise distIndexes[i] must be the
// caller's current predecessor and the caller is moved after insertIndexes[i] with
// the new fee. Either the whole batch applies or nothing does.
func (d *Distribution) Distribute(
	caller tunes.Address,
	songs []tunes.Bytes32,
	fees []uint64,
	distIndexes []tunes.Address,
	insertIndexes []tunes.Address,
) error {
	if err := d.requireUser(caller); err != nil {
		return err
	}
	if len(fees) != len(songs) || len(distIndexes) != len(songs) || len(insertIndexes) != len(songs) {
		return ErrLengthMismatch
	}
	return d.atomic(len(songs), func(i int) error {
		return d.distribute(caller, songs[i], fees[i], distIndexes[i], insertIndexes[i])
	})
}

func (d *Distribution) distribute(caller tunes.Address, song tunes.Bytes32, fee uint64, distIndex, insertIndex tunes.Address) error {
	exists, err := d.songs.Exists(song)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSongNotExist
	}

	list := d.distributors(song)
	distributing, err := list.Contains(caller)
	if err != nil {
		return err
	}
	if distributing {
		return d.reposition(song, caller, fee, distIndex, insertIndex)
	}

	if !distIndex.IsZero() {
		// the hint claims a position the caller does not have
		linked, err := list.Contains(distIndex)
		if err != nil {
			return err
		}
		if !linked {
			return ErrDistIndexNotDistrib
		}
		return ErrIncorrectDistIndex
	}
	return d.insert(song, caller, fee, insertIndex)
}

// Undistribute removes the caller from the distributor list of every song of the batch.
// distIndexes[i] must be the caller's current predecessor in songs[i].
func (d *Distribution) Undistribute(caller tunes.Address, songs []tunes.Bytes32, distIndexes []tunes.Address) error {
	if err := d.requireUser(caller); err != nil {
		return err
	}
	if len(distIndexes) != len(songs) {
		return ErrLengthMismatch
	}
	return d.atomic(len(songs), func(i int) error {
		return d.remove(songs[i], caller, distIndexes[i])
	})
}
