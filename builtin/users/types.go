// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package users

// User contains all data of a registered account.
type User struct {
	Username    string
	Description string
	Active      bool
}

// IsEmpty returns whether the user can be treated as empty.
func (u *User) IsEmpty() bool {
	return u.Username == "" && u.Description == "" && !u.Active
}
