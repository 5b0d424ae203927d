// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/tangletunes/tunes/tunes"
)

// maxBodySize caps request bodies; batches are bounded by the gas limit anyway.
const maxBodySize = 200 * 1024

type APIOptions struct {
	Timeout   time.Duration
	GenesisID tunes.Bytes32
}

// StartAPIServer serves handler on addr. It returns the base url and a func to stop the server.
func StartAPIServer(addr string, handler http.Handler, opts APIOptions) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen API addr [%v]", addr)
	}

	if opts.Timeout > 0 {
		handler = handleAPITimeout(handler, opts.Timeout)
	}
	handler = handleXGenesisID(handler, opts.GenesisID)
	handler = requestBodyLimit(handler)

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second}
	var wg sync.WaitGroup
	wg.Go(func() {
		srv.Serve(listener)
	})
	return "http://" + listener.Addr().String() + "/", func() {
		srv.Close()
		wg.Wait()
	}, nil
}

func handleAPITimeout(h http.Handler, timeout time.Duration) http.Handler {
	return http.TimeoutHandler(h, timeout, "request timeout")
}

func handleXGenesisID(h http.Handler, genesisID tunes.Bytes32) http.Handler {
	id := genesisID.String()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-genesis-id", id)
		if actual := r.Header.Get("x-genesis-id"); actual != "" && actual != id {
			http.Error(w, "genesis id mismatch", http.StatusForbidden)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func requestBodyLimit(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		h.ServeHTTP(w, r)
	})
}
