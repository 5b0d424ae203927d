// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package users

import (
	"github.com/tangletunes/tunes/tunes"
)

type CreateUser struct {
	Address     tunes.Address `json:"address"`
	Username    string        `json:"username"`
	Description string        `json:"description"`
}

type User struct {
	Address     tunes.Address   `json:"address"`
	Username    string          `json:"username"`
	Description string          `json:"description"`
	Songs       []tunes.Bytes32 `json:"songs"`
}
