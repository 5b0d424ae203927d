// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package songs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangletunes/tunes/builtin/reverts"
	"github.com/tangletunes/tunes/builtin/solidity"
	"github.com/tangletunes/tunes/lvldb"
	"github.com/tangletunes/tunes/state"
	"github.com/tangletunes/tunes/test/datagen"
	"github.com/tangletunes/tunes/tunes"
)

type accounts map[tunes.Address]bool

func (a accounts) Exists(addr tunes.Address) (bool, error) { return a[addr], nil }

type purger struct {
	purged []tunes.Bytes32
}

func (p *purger) Purge(song tunes.Bytes32) error {
	p.purged = append(p.purged, song)
	return nil
}

func newTestCatalog(t *testing.T, users ...tunes.Address) (*Catalog, *purger) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	acc := accounts{}
	for _, u := range users {
		acc[u] = true
	}
	p := &purger{}
	st := state.NewStater(db, 0).NewState()
	return New(solidity.NewContext(tunes.SongsAddress, st, nil), acc, p), p
}

func newSong(name string, author, rightholder tunes.Address) *Song {
	return &Song{
		Author:      author,
		Rightholder: rightholder,
		Name:        name,
		Price:       100,
		Length:      4_200_000,
		Duration:    215,
		Chunks:      []tunes.Bytes32{datagen.RandomHash(), datagen.RandomHash()},
	}
}

func TestUpload(t *testing.T) {
	author, holder, stranger := datagen.RandAddress(), datagen.RandAddress(), datagen.RandAddress()
	c, _ := newTestCatalog(t, author, holder)

	song := newSong("intro", author, holder)
	id, err := c.Upload(author, song)
	require.NoError(t, err)
	assert.Equal(t, tunes.SongID("intro", author), id)

	got, err := c.Get(id)
	require.NoError(t, err)
	assert.Equal(t, song, got)

	_, err = c.Upload(holder, song)
	assert.ErrorIs(t, err, ErrSongExists)

	tests := []struct {
		name     string
		uploader tunes.Address
		song     *Song
		want     error
	}{
		{"unregistered uploader", stranger, newSong("a", stranger, holder), ErrUserNotExist},
		{"uploader not involved", holder, newSong("b", author, author), ErrNotAuthorized},
		{"empty name", author, newSong("", author, holder), ErrEmptyName},
		{"unregistered rightholder", author, newSong("c", author, stranger), ErrRightholderNotExist},
		{"unregistered author", holder, newSong("d", stranger, holder), ErrAuthorNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Upload(tt.uploader, tt.song)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, reverts.IsRevertErr(err))
		})
	}

	ids, err := c.SongsOf(author)
	require.NoError(t, err)
	assert.Equal(t, []tunes.Bytes32{id}, ids)
	ids, err = c.RightsOf(holder)
	require.NoError(t, err)
	assert.Equal(t, []tunes.Bytes32{id}, ids)
}

func TestRemove(t *testing.T) {
	author, holder, other := datagen.RandAddress(), datagen.RandAddress(), datagen.RandAddress()
	c, p := newTestCatalog(t, author, holder, other)

	id, err := c.Upload(author, newSong("intro", author, holder))
	require.NoError(t, err)

	assert.ErrorIs(t, c.Remove(other, id), ErrNotAuthorized)
	assert.ErrorIs(t, c.Remove(author, datagen.RandomHash()), ErrSongNotExist)

	require.NoError(t, c.Remove(holder, id))
	assert.Equal(t, []tunes.Bytes32{id}, p.purged)

	exists, err := c.Exists(id)
	require.NoError(t, err)
	assert.False(t, exists)

	ids, err := c.SongsOf(author)
	require.NoError(t, err)
	assert.Empty(t, ids)
	ids, err = c.RightsOf(holder)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// same name and author can be uploaded again
	_, err = c.Upload(author, newSong("intro", author, holder))
	require.NoError(t, err)
}

func TestDeleteByAccount(t *testing.T) {
	alice, bob := datagen.RandAddress(), datagen.RandAddress()
	c, p := newTestCatalog(t, alice, bob)

	own, err := c.Upload(alice, newSong("own", alice, alice))
	require.NoError(t, err)
	written, err := c.Upload(alice, newSong("written", alice, bob))
	require.NoError(t, err)
	held, err := c.Upload(bob, newSong("held", bob, alice))
	require.NoError(t, err)
	bobs, err := c.Upload(bob, newSong("bobs", bob, bob))
	require.NoError(t, err)

	require.NoError(t, c.DeleteByAccount(alice))
	assert.ElementsMatch(t, []tunes.Bytes32{own, written, held}, p.purged)

	for _, id := range []tunes.Bytes32{own, written, held} {
		exists, err := c.Exists(id)
		require.NoError(t, err)
		assert.False(t, exists)
	}
	ids, err := c.SongsOf(bob)
	require.NoError(t, err)
	assert.Equal(t, []tunes.Bytes32{bobs}, ids)
	ids, err = c.RightsOf(bob)
	require.NoError(t, err)
	assert.Equal(t, []tunes.Bytes32{bobs}, ids)
}
