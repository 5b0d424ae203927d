// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/tangletunes/tunes/kv"
)

const defaultCacheSize = 4096

// Stater is the State creator.
// It owns the committed store and a cache of committed slots shared by all states it creates.
type Stater struct {
	db    kv.GetPutter
	cache *lru.Cache
}

// NewStater create a new stater.
func NewStater(db kv.GetPutter, cacheSize int) *Stater {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, _ := lru.New(cacheSize)
	return &Stater{db: db, cache: cache}
}

// NewState create a new state object on top of the committed store.
func (s *Stater) NewState() *State {
	return newState(s)
}

// load reads a committed slot, going through the cache.
func (s *Stater) load(key storageKey) ([]byte, error) {
	if v, ok := s.cache.Get(key); ok {
		return v.([]byte), nil
	}
	v, err := s.db.Get(key.dbKey())
	if err != nil {
		if !s.db.IsNotFound(err) {
			return nil, errors.Wrap(err, "load storage")
		}
		v = nil
	}
	s.cache.Add(key, v)
	return v, nil
}

// commit writes the given slots in one batch and refreshes the cache.
func (s *Stater) commit(changes map[storageKey][]byte) error {
	batch := s.db.NewBatch()
	for key, v := range changes {
		var err error
		if len(v) == 0 {
			err = batch.Delete(key.dbKey())
		} else {
			err = batch.Put(key.dbKey(), v)
		}
		if err != nil {
			return err
		}
	}
	if err := batch.Write(); err != nil {
		// the cache may be ahead of the store for keys touched by a failed write
		s.cache.Purge()
		return errors.Wrap(err, "commit storage")
	}
	for key, v := range changes {
		s.cache.Add(key, v)
	}
	return nil
}
