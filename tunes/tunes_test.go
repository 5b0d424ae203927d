// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tunes

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{"0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", ""},
		{"7567d83b7b8d80addcb281a71d54fc7b3364ffed", ""},
		{"0X7567d83b7b8d80addcb281a71d54fc7b3364ffed", ""},
		{"1x7567d83b7b8d80addcb281a71d54fc7b3364ffed", "invalid prefix"},
		{"0x7567d83b", "invalid length"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			addr, err := ParseAddress(tt.in)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", addr.String())
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := BytesToAddress([]byte("dist0"))
	data, err := json.Marshal(&addr)
	require.NoError(t, err)

	var decoded Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, addr, decoded)
	assert.False(t, decoded.IsZero())
	assert.True(t, Address{}.IsZero())
}

func TestBytes32YAML(t *testing.T) {
	in := struct {
		ID   Bytes32 `yaml:"id"`
		Addr Address `yaml:"addr"`
	}{
		ID:   Blake2b([]byte("song")),
		Addr: BytesToAddress([]byte("author")),
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	out := in
	out.ID, out.Addr = Bytes32{}, Address{}
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestKeccak256(t *testing.T) {
	data := [][]byte{[]byte("abcd"), {0x01, 0x02}}
	assert.Equal(t, Bytes32(crypto.Keccak256Hash(data...)), Keccak256(data...))
}

func TestBlake2b(t *testing.T) {
	assert.Equal(t, Blake2b([]byte("ab")), Blake2b([]byte("a"), []byte("b")))
	assert.NotEqual(t, Blake2b([]byte("ab")), Blake2b([]byte("ba")))
}

func TestSongID(t *testing.T) {
	author := BytesToAddress([]byte("author"))
	id := SongID("abcd", author)
	assert.Equal(t, Bytes32(crypto.Keccak256Hash(append([]byte("abcd"), author[:]...))), id)
	assert.NotEqual(t, id, SongID("abcd", BytesToAddress([]byte("other"))))
}
