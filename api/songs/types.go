// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package songs

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/tangletunes/tunes/builtin/songs"
	"github.com/tangletunes/tunes/ledger"
	"github.com/tangletunes/tunes/tunes"
)

// Song is the JSON form of a catalog song.
// An empty rightholder defaults to the author on upload.
type Song struct {
	ID          tunes.Bytes32       `json:"id"`
	Author      tunes.Address       `json:"author"`
	Rightholder tunes.Address       `json:"rightholder"`
	Name        string              `json:"name"`
	Price       math.HexOrDecimal64 `json:"price"`
	Length      math.HexOrDecimal64 `json:"length"`
	Duration    math.HexOrDecimal64 `json:"duration"`
	Chunks      []tunes.Bytes32     `json:"chunks"`
}

type UploadRequest struct {
	Uploader tunes.Address `json:"uploader"`
	Song
}

type UploadResult struct {
	ID tunes.Bytes32 `json:"id"`
	*ledger.Receipt
}

type DeleteRequest struct {
	Caller tunes.Address `json:"caller"`
}

func convertSong(s *songs.Song) *Song {
	chunks := s.Chunks
	if chunks == nil {
		chunks = []tunes.Bytes32{}
	}
	return &Song{
		ID:          s.ID(),
		Author:      s.Author,
		Rightholder: s.Rightholder,
		Name:        s.Name,
		Price:       math.HexOrDecimal64(s.Price),
		Length:      math.HexOrDecimal64(s.Length),
		Duration:    math.HexOrDecimal64(s.Duration),
		Chunks:      chunks,
	}
}

func (s *Song) toSong() *songs.Song {
	rightholder := s.Rightholder
	if rightholder.IsZero() {
		rightholder = s.Author
	}
	return &songs.Song{
		Author:      s.Author,
		Rightholder: rightholder,
		Name:        s.Name,
		Price:       uint64(s.Price),
		Length:      uint64(s.Length),
		Duration:    uint64(s.Duration),
		Chunks:      s.Chunks,
	}
}
