// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package songs

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/tangletunes/tunes/api/utils"
	"github.com/tangletunes/tunes/ledger"
	"github.com/tangletunes/tunes/tunes"
)

type Songs struct {
	ledger *ledger.Ledger
}

func New(ledger *ledger.Ledger) *Songs {
	return &Songs{ledger}
}

func (s *Songs) handleUpload(w http.ResponseWriter, req *http.Request) error {
	var body UploadRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	id, receipt, err := s.ledger.UploadSong(body.Uploader, body.toSong())
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &UploadResult{ID: id, Receipt: receipt})
}

func (s *Songs) handleGet(w http.ResponseWriter, req *http.Request) error {
	id, err := tunes.ParseBytes32(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "id"))
	}
	song, err := s.ledger.Song(id)
	if err != nil {
		return err
	}
	if song == nil {
		return utils.NotFound(errors.New("song not found"))
	}
	return utils.WriteJSON(w, convertSong(song))
}

func (s *Songs) handleDelete(w http.ResponseWriter, req *http.Request) error {
	id, err := tunes.ParseBytes32(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "id"))
	}
	var body DeleteRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	receipt, err := s.ledger.DeleteSong(body.Caller, id)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, receipt)
}

func (s *Songs) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodPost).
		Name("songs_upload").
		HandlerFunc(utils.WrapHandlerFunc(s.handleUpload))
	sub.Path("/{id}").
		Methods(http.MethodGet).
		Name("songs_get").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGet))
	sub.Path("/{id}").
		Methods(http.MethodDelete).
		Name("songs_delete").
		HandlerFunc(utils.WrapHandlerFunc(s.handleDelete))
}
