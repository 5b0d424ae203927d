// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package songs

import (
	"github.com/tangletunes/tunes/tunes"
)

// Song is a catalog item. Its id is derived from name and author.
type Song struct {
	Author      tunes.Address
	Rightholder tunes.Address
	Name        string
	Price       uint64
	Length      uint64
	Duration    uint64
	Chunks      []tunes.Bytes32
}

// ID returns the catalog key of the song.
func (s *Song) ID() tunes.Bytes32 {
	return tunes.SongID(s.Name, s.Author)
}

// IsEmpty returns whether the song can be treated as empty.
func (s *Song) IsEmpty() bool {
	return s.Author.IsZero()
}
