// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package users

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/tangletunes/tunes/builtin/reverts"
	"github.com/tangletunes/tunes/builtin/solidity"
	"github.com/tangletunes/tunes/tunes"
)

var logger = log.New("pkg", "users")

var (
	ErrUserExists    = reverts.New(reverts.InvalidArgument, "user already exists")
	ErrUserNotExist  = reverts.New(reverts.NotFound, "user does not exist")
	ErrEmptyUsername = reverts.New(reverts.InvalidArgument, "username is empty")
	ErrZeroAddress   = reverts.New(reverts.InvalidArgument, "zero address")
)

var usersPos = tunes.BytesToBytes32([]byte("users"))

// Catalog removes the songs tied to an account when the account goes away.
type Catalog interface {
	DeleteByAccount(addr tunes.Address) error
}

// Registry implements the account registry.
type Registry struct {
	users   *solidity.Mapping[tunes.Address, User]
	catalog Catalog
}

// New create a new instance.
func New(sctx *solidity.Context, catalog Catalog) *Registry {
	return &Registry{
		users:   solidity.NewMapping[tunes.Address, User](sctx, usersPos),
		catalog: catalog,
	}
}

// Get returns the user registered at addr, or nil if there is none.
func (r *Registry) Get(addr tunes.Address) (*User, error) {
	user, err := r.users.Get(addr)
	if err != nil {
		return nil, err
	}
	if user.IsEmpty() {
		return nil, nil
	}
	return &user, nil
}

// Exists returns whether an account is registered at addr.
func (r *Registry) Exists(addr tunes.Address) (bool, error) {
	user, err := r.Get(addr)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// Create registers a new account.
func (r *Registry) Create(addr tunes.Address, username, description string) error {
	if addr.IsZero() {
		return ErrZeroAddress
	}
	if username == "" {
		return ErrEmptyUsername
	}
	exists, err := r.Exists(addr)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}
	if err := r.users.Set(addr, User{Username: username, Description: description, Active: true}, true); err != nil {
		return err
	}
	logger.Debug("user created", "addr", addr, "username", username)
	return nil
}

// Delete removes the account together with every song it authored or holds rights to.
func (r *Registry) Delete(addr tunes.Address) error {
	exists, err := r.Exists(addr)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotExist
	}
	if err := r.catalog.DeleteByAccount(addr); err != nil {
		return err
	}
	r.users.Delete(addr)
	logger.Debug("user deleted", "addr", addr)
	return nil
}
