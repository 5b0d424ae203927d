// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangletunes/tunes/builtin/distribution"
	"github.com/tangletunes/tunes/builtin/songs"
	"github.com/tangletunes/tunes/lvldb"
	"github.com/tangletunes/tunes/state"
	"github.com/tangletunes/tunes/test/datagen"
	"github.com/tangletunes/tunes/tunes"
)

func newTestBuiltins(t *testing.T) *Builtins {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(state.NewStater(db, 0).NewState(), nil)
}

func distribute(t *testing.T, b *Builtins, caller tunes.Address, song tunes.Bytes32, fee uint64) {
	hint, err := b.Distribution.FindInsertPredecessor(song, fee)
	require.NoError(t, err)
	require.NoError(t, b.Distribution.Distribute(caller, []tunes.Bytes32{song}, []uint64{fee}, []tunes.Address{{}}, []tunes.Address{hint}))
}

func TestCascade(t *testing.T) {
	b := newTestBuiltins(t)

	author := datagen.RandAddress()
	dists := datagen.RandAddresses(3)
	require.NoError(t, b.Users.Create(author, "author", ""))
	for _, d := range dists {
		require.NoError(t, b.Users.Create(d, "dist", ""))
	}

	song1, err := b.Songs.Upload(author, &songs.Song{Author: author, Rightholder: author, Name: "one", Chunks: []tunes.Bytes32{{1}}})
	require.NoError(t, err)
	song2, err := b.Songs.Upload(author, &songs.Song{Author: author, Rightholder: dists[0], Name: "two", Chunks: []tunes.Bytes32{{2}}})
	require.NoError(t, err)

	for i, d := range dists {
		distribute(t, b, d, song1, uint64(i))
		distribute(t, b, d, song2, uint64(10-i))
	}

	// song deletion purges its distributors
	require.NoError(t, b.Songs.Remove(author, song1))
	n, err := b.Distribution.Length(song1)
	require.NoError(t, err)
	assert.Zero(t, n)
	for _, d := range dists {
		distributing, err := b.Distribution.IsDistributing(song1, d)
		require.NoError(t, err)
		assert.False(t, distributing)
	}
	err = b.Distribution.Distribute(dists[0], []tunes.Bytes32{song1}, []uint64{1}, []tunes.Address{{}}, []tunes.Address{{}})
	assert.ErrorIs(t, err, distribution.ErrSongNotExist)

	// user deletion removes its songs and so their distributors
	require.NoError(t, b.Users.Delete(dists[0]))
	exists, err := b.Songs.Exists(song2)
	require.NoError(t, err)
	assert.False(t, exists)
	n, err = b.Distribution.Length(song2)
	require.NoError(t, err)
	assert.Zero(t, n)

	ids, err := b.Songs.SongsOf(author)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// a deleted user can no longer distribute
	song3, err := b.Songs.Upload(author, &songs.Song{Author: author, Rightholder: author, Name: "three", Chunks: []tunes.Bytes32{{3}}})
	require.NoError(t, err)
	err = b.Distribution.Distribute(dists[0], []tunes.Bytes32{song3}, []uint64{1}, []tunes.Address{{}}, []tunes.Address{{}})
	assert.ErrorIs(t, err, distribution.ErrUserNotExist)
}
