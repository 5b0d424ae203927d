// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"github.com/tangletunes/tunes/builtin"
	"github.com/tangletunes/tunes/builtin/songs"
	"github.com/tangletunes/tunes/builtin/users"
	"github.com/tangletunes/tunes/tunes"
)

func (l *Ledger) CreateUser(addr tunes.Address, username, description string) (*Receipt, error) {
	return l.mutate("create_user", func(b *builtin.Builtins) error {
		return b.Users.Create(addr, username, description)
	})
}

// DeleteUser deletes the caller's account with all its songs.
func (l *Ledger) DeleteUser(caller tunes.Address) (*Receipt, error) {
	return l.mutate("delete_user", func(b *builtin.Builtins) error {
		return b.Users.Delete(caller)
	})
}

// User returns nil if addr is not registered.
func (l *Ledger) User(addr tunes.Address) (user *users.User, err error) {
	err = l.view(func(b *builtin.Builtins) error {
		user, err = b.Users.Get(addr)
		return err
	})
	return
}

func (l *Ledger) UploadSong(uploader tunes.Address, song *songs.Song) (id tunes.Bytes32, receipt *Receipt, err error) {
	receipt, err = l.mutate("upload_song", func(b *builtin.Builtins) error {
		id, err = b.Songs.Upload(uploader, song)
		return err
	})
	if err != nil {
		return tunes.Bytes32{}, nil, err
	}
	return id, receipt, nil
}

// DeleteSong deletes a song on behalf of its author or rightholder and drops its distributors.
func (l *Ledger) DeleteSong(caller tunes.Address, id tunes.Bytes32) (*Receipt, error) {
	return l.mutate("delete_song", func(b *builtin.Builtins) error {
		return b.Songs.Remove(caller, id)
	})
}

// Song returns nil if there is no such song.
func (l *Ledger) Song(id tunes.Bytes32) (song *songs.Song, err error) {
	err = l.view(func(b *builtin.Builtins) error {
		song, err = b.Songs.Get(id)
		return err
	})
	return
}

func (l *Ledger) SongsOf(author tunes.Address) (ids []tunes.Bytes32, err error) {
	err = l.view(func(b *builtin.Builtins) error {
		ids, err = b.Songs.SongsOf(author)
		return err
	})
	return
}
