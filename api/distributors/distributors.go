// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package distributors

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/tangletunes/tunes/api/utils"
	"github.com/tangletunes/tunes/ledger"
	"github.com/tangletunes/tunes/tunes"
)

const defaultAmount = 100

type Distributors struct {
	ledger *ledger.Ledger
}

func New(ledger *ledger.Ledger) *Distributors {
	return &Distributors{ledger}
}

func (d *Distributors) handleDistribute(w http.ResponseWriter, req *http.Request) error {
	var body DistributeRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	receipt, err := d.ledger.Distribute(body.Caller, body.Songs, convertFees(body.Fees), body.DistIndexes, body.InsertIndexes)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, receipt)
}

func (d *Distributors) handleUndistribute(w http.ResponseWriter, req *http.Request) error {
	var body UndistributeRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	receipt, err := d.ledger.Undistribute(body.Caller, body.Songs, body.DistIndexes)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, receipt)
}

func (d *Distributors) handleInsertIndexes(w http.ResponseWriter, req *http.Request) error {
	var body InsertIndexesRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	indexes, err := d.ledger.FindInsertIndexes(body.Songs, convertFees(body.Fees))
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, indexes)
}

func (d *Distributors) handleDistIndexes(w http.ResponseWriter, req *http.Request) error {
	var body DistIndexesRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	indexes, err := d.ledger.FindDistIndexes(body.Songs, body.Distributors)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, indexes)
}

func (d *Distributors) handleGetLength(w http.ResponseWriter, req *http.Request) error {
	song, err := tunes.ParseBytes32(mux.Vars(req)["song"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "song"))
	}
	n, err := d.ledger.DistributorsLength(song)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Length{n})
}

func (d *Distributors) handleGetDistributors(w http.ResponseWriter, req *http.Request) error {
	song, err := tunes.ParseBytes32(mux.Vars(req)["song"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "song"))
	}

	var start tunes.Address
	if s := req.URL.Query().Get("start"); s != "" {
		if start, err = tunes.ParseAddress(s); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "start"))
		}
	}
	amount := uint64(defaultAmount)
	if s := req.URL.Query().Get("amount"); s != "" {
		if amount, err = strconv.ParseUint(s, 10, 64); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "amount"))
		}
	}

	entries, err := d.ledger.Distributors(song, start, amount)
	if err != nil {
		return err
	}
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, convertEntry(e))
	}
	return utils.WriteJSON(w, out)
}

func parseSeed(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.New("missing")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return uint256.FromHex("0x" + s[2:])
	}
	return uint256.FromDecimal(s)
}

func (d *Distributors) handleGetRandom(w http.ResponseWriter, req *http.Request) error {
	song, err := tunes.ParseBytes32(mux.Vars(req)["song"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "song"))
	}
	seed, err := parseSeed(req.URL.Query().Get("seed"))
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "seed"))
	}
	entry, err := d.ledger.RandDistributor(song, seed)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertEntry(entry))
}

func (d *Distributors) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/distribute").
		Methods(http.MethodPost).
		Name("distributors_distribute").
		HandlerFunc(utils.WrapHandlerFunc(d.handleDistribute))
	sub.Path("/undistribute").
		Methods(http.MethodPost).
		Name("distributors_undistribute").
		HandlerFunc(utils.WrapHandlerFunc(d.handleUndistribute))
	sub.Path("/insert-indexes").
		Methods(http.MethodPost).
		Name("distributors_insert_indexes").
		HandlerFunc(utils.WrapHandlerFunc(d.handleInsertIndexes))
	sub.Path("/dist-indexes").
		Methods(http.MethodPost).
		Name("distributors_dist_indexes").
		HandlerFunc(utils.WrapHandlerFunc(d.handleDistIndexes))
	sub.Path("/{song}/length").
		Methods(http.MethodGet).
		Name("distributors_get_length").
		HandlerFunc(utils.WrapHandlerFunc(d.handleGetLength))
	sub.Path("/{song}/random").
		Methods(http.MethodGet).
		Name("distributors_get_random").
		HandlerFunc(utils.WrapHandlerFunc(d.handleGetRandom))
	sub.Path("/{song}").
		Methods(http.MethodGet).
		Name("distributors_get_distributors").
		HandlerFunc(utils.WrapHandlerFunc(d.handleGetDistributors))
}
