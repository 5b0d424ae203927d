// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

// Stage abstracts changes to be written into the committed store.
type Stage struct {
	stater  *Stater
	changes map[storageKey][]byte
}

// Len returns the number of changed slots.
func (s *Stage) Len() int {
	return len(s.changes)
}

// Commit writes all changes atomically.
func (s *Stage) Commit() error {
	if len(s.changes) == 0 {
		return nil
	}
	if err := s.stater.commit(s.changes); err != nil {
		return &Error{err}
	}
	return nil
}
