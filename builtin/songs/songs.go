// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package songs

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/tangletunes/tunes/builtin/linkedlist"
	"github.com/tangletunes/tunes/builtin/reverts"
	"github.com/tangletunes/tunes/builtin/solidity"
	"github.com/tangletunes/tunes/tunes"
)

var logger = log.New("pkg", "songs")

var (
	ErrUserNotExist        = reverts.New(reverts.Unauthorized, "user does not exist")
	ErrNotAuthorized       = reverts.New(reverts.Unauthorized, "caller is neither author nor rightholder")
	ErrAuthorNotExist      = reverts.New(reverts.NotFound, "author does not exist")
	ErrRightholderNotExist = reverts.New(reverts.NotFound, "rightholder does not exist")
	ErrSongNotExist        = reverts.New(reverts.NotFound, "song does not exist")
	ErrSongExists          = reverts.New(reverts.InvalidArgument, "song already exists")
	ErrEmptyName           = reverts.New(reverts.InvalidArgument, "song name is empty")
)

var (
	songsPos    = tunes.BytesToBytes32([]byte("songs"))
	authoredPos = tunes.BytesToBytes32([]byte("authored"))
	rightsPos   = tunes.BytesToBytes32([]byte("rights"))
)

// Accounts answers whether an account is registered.
type Accounts interface {
	Exists(addr tunes.Address) (bool, error)
}

// Distributors drops the distributor list of a song.
type Distributors interface {
	Purge(song tunes.Bytes32) error
}

// Catalog implements the song catalog.
type Catalog struct {
	sctx         *solidity.Context
	songs        *solidity.Mapping[tunes.Bytes32, Song]
	accounts     Accounts
	distributors Distributors
}

// New create a new instance.
func New(sctx *solidity.Context, accounts Accounts, distributors Distributors) *Catalog {
	return &Catalog{
		sctx:         sctx,
		songs:        solidity.NewMapping[tunes.Bytes32, Song](sctx, songsPos),
		accounts:     accounts,
		distributors: distributors,
	}
}

func (c *Catalog) authored(author tunes.Address) *linkedlist.LinkedList[tunes.Bytes32] {
	return linkedlist.New[tunes.Bytes32](c.sctx, authoredPos, tunes.BytesToBytes32(author[:]))
}

func (c *Catalog) rights(holder tunes.Address) *linkedlist.LinkedList[tunes.Bytes32] {
	return linkedlist.New[tunes.Bytes32](c.sctx, rightsPos, tunes.BytesToBytes32(holder[:]))
}

func (c *Catalog) requireAccount(addr tunes.Address, notExist error) error {
	exists, err := c.accounts.Exists(addr)
	if err != nil {
		return err
	}
	if !exists {
		return notExist
	}
	return nil
}

// Get returns the song, or nil if there is none.
func (c *Catalog) Get(id tunes.Bytes32) (*Song, error) {
	song, err := c.songs.Get(id)
	if err != nil {
		return nil, err
	}
	if song.IsEmpty() {
		return nil, nil
	}
	return &song, nil
}

// Exists returns whether the song is in the catalog.
func (c *Catalog) Exists(id tunes.Bytes32) (bool, error) {
	song, err := c.Get(id)
	if err != nil {
		return false, err
	}
	return song != nil, nil
}

// Upload adds a song on behalf of its author or rightholder and returns its id.
func (c *Catalog) Upload(uploader tunes.Address, song *Song) (tunes.Bytes32, error) {
	if err := c.requireAccount(uploader, ErrUserNotExist); err != nil {
		return tunes.Bytes32{}, err
	}
	if uploader != song.Author && uploader != song.Rightholder {
		return tunes.Bytes32{}, ErrNotAuthorized
	}
	if song.Name == "" {
		return tunes.Bytes32{}, ErrEmptyName
	}
	if err := c.requireAccount(song.Author, ErrAuthorNotExist); err != nil {
		return tunes.Bytes32{}, err
	}
	if err := c.requireAccount(song.Rightholder, ErrRightholderNotExist); err != nil {
		return tunes.Bytes32{}, err
	}

	id := song.ID()
	exists, err := c.Exists(id)
	if err != nil {
		return tunes.Bytes32{}, err
	}
	if exists {
		return tunes.Bytes32{}, ErrSongExists
	}

	if err := c.songs.Set(id, *song, true); err != nil {
		return tunes.Bytes32{}, err
	}
	if err := c.authored(song.Author).PushBack(id); err != nil {
		return tunes.Bytes32{}, err
	}
	if err := c.rights(song.Rightholder).PushBack(id); err != nil {
		return tunes.Bytes32{}, err
	}
	logger.Debug("song uploaded", "id", id, "name", song.Name, "author", song.Author)
	return id, nil
}

// Remove deletes a song on behalf of its author or rightholder.
func (c *Catalog) Remove(caller tunes.Address, id tunes.Bytes32) error {
	song, err := c.Get(id)
	if err != nil {
		return err
	}
	if song == nil {
		return ErrSongNotExist
	}
	if caller != song.Author && caller != song.Rightholder {
		return ErrNotAuthorized
	}
	return c.Delete(id)
}

// Delete removes the song and purges its distributors first, so no entry outlives its song.
func (c *Catalog) Delete(id tunes.Bytes32) error {
	song, err := c.Get(id)
	if err != nil {
		return err
	}
	if song == nil {
		return ErrSongNotExist
	}

	if err := c.distributors.Purge(id); err != nil {
		return err
	}
	if err := c.authored(song.Author).Remove(id); err != nil {
		return err
	}
	if err := c.rights(song.Rightholder).Remove(id); err != nil {
		return err
	}
	c.songs.Delete(id)
	logger.Debug("song deleted", "id", id)
	return nil
}

// DeleteByAccount deletes every song the account authored or holds rights to.
func (c *Catalog) DeleteByAccount(addr tunes.Address) error {
	ids, err := c.SongsOf(addr)
	if err != nil {
		return err
	}
	held, err := c.RightsOf(addr)
	if err != nil {
		return err
	}
	for _, id := range held {
		// a song can be authored and held by the same account
		if song, err := c.songs.Get(id); err != nil {
			return err
		} else if song.Author != addr {
			ids = append(ids, id)
		}
	}

	for _, id := range ids {
		if err := c.Delete(id); err != nil {
			return err
		}
	}
	if err := c.authored(addr).Clear(); err != nil {
		return err
	}
	return c.rights(addr).Clear()
}

// SongsOf returns the ids of the songs authored by the account in upload order.
func (c *Catalog) SongsOf(author tunes.Address) ([]tunes.Bytes32, error) {
	return collect(c.authored(author))
}

// RightsOf returns the ids of the songs the account holds rights to in upload order.
func (c *Catalog) RightsOf(holder tunes.Address) ([]tunes.Bytes32, error) {
	return collect(c.rights(holder))
}

func collect(list *linkedlist.LinkedList[tunes.Bytes32]) ([]tunes.Bytes32, error) {
	var ids []tunes.Bytes32
	err := list.Iter(func(id tunes.Bytes32) (bool, error) {
		ids = append(ids, id)
		return true, nil
	})
	return ids, err
}
