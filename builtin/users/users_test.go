// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package users

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangletunes/tunes/builtin/solidity"
	"github.com/tangletunes/tunes/lvldb"
	"github.com/tangletunes/tunes/state"
	"github.com/tangletunes/tunes/test/datagen"
	"github.com/tangletunes/tunes/tunes"
)

type catalog struct {
	deleted []tunes.Address
	err     error
}

func (c *catalog) DeleteByAccount(addr tunes.Address) error {
	if c.err != nil {
		return c.err
	}
	c.deleted = append(c.deleted, addr)
	return nil
}

func newTestRegistry(t *testing.T) (*Registry, *catalog) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	c := &catalog{}
	st := state.NewStater(db, 0).NewState()
	return New(solidity.NewContext(tunes.UsersAddress, st, nil), c), c
}

func TestRegistry(t *testing.T) {
	r, c := newTestRegistry(t)
	alice := datagen.RandAddress()

	user, err := r.Get(alice)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, r.Create(alice, "alice", "plays bass"))
	user, err = r.Get(alice)
	require.NoError(t, err)
	assert.Equal(t, &User{Username: "alice", Description: "plays bass", Active: true}, user)

	exists, err := r.Exists(alice)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, r.Create(alice, "alice", ""), ErrUserExists)
	assert.ErrorIs(t, r.Create(datagen.RandAddress(), "", ""), ErrEmptyUsername)
	assert.ErrorIs(t, r.Create(tunes.Address{}, "zero", ""), ErrZeroAddress)

	require.NoError(t, r.Delete(alice))
	assert.Equal(t, []tunes.Address{alice}, c.deleted)
	exists, err = r.Exists(alice)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, r.Delete(alice), ErrUserNotExist)

	// the address can be registered again
	require.NoError(t, r.Create(alice, "alice2", ""))
}

func TestDeleteFailsWithCatalog(t *testing.T) {
	r, c := newTestRegistry(t)
	bob := datagen.RandAddress()
	require.NoError(t, r.Create(bob, "bob", ""))

	c.err = errors.New("boom")
	assert.EqualError(t, r.Delete(bob), "boom")

	exists, err := r.Exists(bob)
	require.NoError(t, err)
	assert.True(t, exists)
}
