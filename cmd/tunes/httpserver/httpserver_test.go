// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangletunes/tunes/metrics"
	"github.com/tangletunes/tunes/test/datagen"
)

func get(t *testing.T, url string, header map[string]string) (string, *http.Response) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body), res
}

func TestAPIServer(t *testing.T) {
	genesisID := datagen.RandomHash()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			time.Sleep(200 * time.Millisecond)
		}
		if r.Method == http.MethodPost {
			if _, err := io.ReadAll(r.Body); err != nil {
				http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
				return
			}
		}
		w.Write([]byte("ok"))
	})

	url, closeFunc, err := StartAPIServer("127.0.0.1:0", handler, APIOptions{Timeout: 50 * time.Millisecond, GenesisID: genesisID})
	require.NoError(t, err)
	defer closeFunc()

	body, res := get(t, url, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", body)
	assert.Equal(t, genesisID.String(), res.Header.Get("x-genesis-id"))

	_, res = get(t, url, map[string]string{"x-genesis-id": datagen.RandomHash().String()})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	_, res = get(t, url+"slow", nil)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)

	res, err = http.Post(url, "application/json", strings.NewReader(strings.Repeat("x", maxBodySize+1)))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)
}

func TestStartAPIServerBadAddr(t *testing.T) {
	_, _, err := StartAPIServer("127.0.0.1:-1", http.NotFoundHandler(), APIOptions{})
	assert.ErrorContains(t, err, "listen API addr")
}

func TestMetricsServer(t *testing.T) {
	metrics.InitializePrometheusMetrics()
	metrics.Counter("httpserver_test_count").Add(3)

	url, closeFunc, err := StartMetricsServer("127.0.0.1:0")
	require.NoError(t, err)
	defer closeFunc()

	body, res := get(t, url, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "tunes_httpserver_test_count 3")
}
