// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package users

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/tangletunes/tunes/api/utils"
	"github.com/tangletunes/tunes/ledger"
	"github.com/tangletunes/tunes/tunes"
)

type Users struct {
	ledger *ledger.Ledger
}

func New(ledger *ledger.Ledger) *Users {
	return &Users{ledger}
}

func (u *Users) handleCreate(w http.ResponseWriter, req *http.Request) error {
	var body CreateUser
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	receipt, err := u.ledger.CreateUser(body.Address, body.Username, body.Description)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, receipt)
}

func (u *Users) handleGet(w http.ResponseWriter, req *http.Request) error {
	addr, err := tunes.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	user, err := u.ledger.User(addr)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.NotFound(errors.New("user not found"))
	}
	songs, err := u.ledger.SongsOf(addr)
	if err != nil {
		return err
	}
	if songs == nil {
		songs = []tunes.Bytes32{}
	}
	return utils.WriteJSON(w, &User{
		Address:     addr,
		Username:    user.Username,
		Description: user.Description,
		Songs:       songs,
	})
}

// handleDelete deletes the account at the path, along with its songs.
func (u *Users) handleDelete(w http.ResponseWriter, req *http.Request) error {
	addr, err := tunes.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	receipt, err := u.ledger.DeleteUser(addr)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, receipt)
}

func (u *Users) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodPost).
		Name("users_create").
		HandlerFunc(utils.WrapHandlerFunc(u.handleCreate))
	sub.Path("/{address}").
		Methods(http.MethodGet).
		Name("users_get").
		HandlerFunc(utils.WrapHandlerFunc(u.handleGet))
	sub.Path("/{address}").
		Methods(http.MethodDelete).
		Name("users_delete").
		HandlerFunc(utils.WrapHandlerFunc(u.handleDelete))
}
