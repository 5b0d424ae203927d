// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tunes

// SongID derives the identity of a song from its name and author.
// It is the keccak256 of the tightly packed name and author address, so the same
// song uploaded twice by one author always collides.
func SongID(name string, author Address) Bytes32 {
	return Keccak256([]byte(name), author[:])
}
