// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis describes the accounts, songs and distributors a fresh ledger starts with.
package genesis

import (
	"bytes"
	"os"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tangletunes/tunes/builtin"
	"github.com/tangletunes/tunes/builtin/songs"
	"github.com/tangletunes/tunes/tunes"
)

// Genesis is the initial content of a ledger.
type Genesis struct {
	Users        []User        `yaml:"users"`
	Songs        []Song        `yaml:"songs"`
	Distributors []Distributor `yaml:"distributors"`
}

type User struct {
	Address     tunes.Address `yaml:"address"`
	Username    string        `yaml:"username"`
	Description string        `yaml:"description"`
}

// Song is uploaded by its author.
type Song struct {
	Author      tunes.Address   `yaml:"author"`
	Rightholder tunes.Address   `yaml:"rightholder"`
	Name        string          `yaml:"name"`
	Price       uint64          `yaml:"price"`
	Length      uint64          `yaml:"length"`
	Duration    uint64          `yaml:"duration"`
	Chunks      []tunes.Bytes32 `yaml:"chunks"`
}

// Distributor refers to its song by name and author.
type Distributor struct {
	Address tunes.Address `yaml:"address"`
	Song    string        `yaml:"song"`
	Author  tunes.Address `yaml:"author"`
	Fee     uint64        `yaml:"fee"`
}

// Parse decodes a YAML genesis document. Unknown fields are rejected.
func Parse(data []byte) (*Genesis, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var gen Genesis
	if err := dec.Decode(&gen); err != nil {
		return nil, errors.Wrap(err, "decode genesis")
	}
	return &gen, nil
}

// Load reads and parses the genesis file at path.
func Load(path string) (*Genesis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis")
	}
	return Parse(data)
}

// ID identifies the genesis content. A ledger refuses to open with a genesis of another ID.
func (g *Genesis) ID() (tunes.Bytes32, error) {
	data, err := rlp.EncodeToBytes(g)
	if err != nil {
		return tunes.Bytes32{}, errors.Wrap(err, "encode genesis")
	}
	return tunes.Blake2b(data), nil
}

// Apply writes the genesis content through the builtins, in document order.
func (g *Genesis) Apply(b *builtin.Builtins) error {
	for _, u := range g.Users {
		if err := b.Users.Create(u.Address, u.Username, u.Description); err != nil {
			return errors.WithMessagef(err, "user %v", u.Address)
		}
	}

	for _, s := range g.Songs {
		rightholder := s.Rightholder
		if rightholder.IsZero() {
			rightholder = s.Author
		}
		if _, err := b.Songs.Upload(s.Author, &songs.Song{
			Author:      s.Author,
			Rightholder: rightholder,
			Name:        s.Name,
			Price:       s.Price,
			Length:      s.Length,
			Duration:    s.Duration,
			Chunks:      s.Chunks,
		}); err != nil {
			return errors.WithMessagef(err, "song %q", s.Name)
		}
	}

	for _, d := range g.Distributors {
		song := tunes.SongID(d.Song, d.Author)
		hint, err := b.Distribution.FindInsertPredecessor(song, d.Fee)
		if err != nil {
			return err
		}
		if err := b.Distribution.Distribute(
			d.Address,
			[]tunes.Bytes32{song},
			[]uint64{d.Fee},
			[]tunes.Address{{}},
			[]tunes.Address{hint},
		); err != nil {
			return errors.WithMessagef(err, "distributor %v of %q", d.Address, d.Song)
		}
	}
	return nil
}
