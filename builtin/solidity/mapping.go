// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/tangletunes/tunes/tunes"
)

type Key interface {
	Bytes() []byte
}

// Mapping is a key/value storage abstraction for built-in contracts, similar to the mapping in Solidity.
// Values are rlp encoded, a missing key reads as the zero value of V.
type Mapping[K Key, V any] struct {
	context *Context
	basePos tunes.Bytes32
}

func NewMapping[K Key, V any](context *Context, pos tunes.Bytes32) *Mapping[K, V] {
	return &Mapping[K, V]{context: context, basePos: pos}
}

// Position returns the storage slot of key.
func (m *Mapping[K, V]) Position(key K) tunes.Bytes32 {
	return tunes.Blake2b(key.Bytes(), m.basePos.Bytes())
}

func (m *Mapping[K, V]) Get(key K) (value V, err error) {
	err = m.context.state.DecodeStorage(m.context.address, m.Position(key), func(raw []byte) error {
		if reflect.ValueOf(value).Kind() == reflect.Ptr {
			value = reflect.New(reflect.TypeOf(value).Elem()).Interface().(V)
		}
		m.context.UseGas(toWordSize(len(raw)) * tunes.SloadGas)
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &value)
	})
	return
}

// Set stores value at key. newValue tells whether the slot was empty before, which is priced higher.
func (m *Mapping[K, V]) Set(key K, value V, newValue bool) error {
	return m.context.state.EncodeStorage(m.context.address, m.Position(key), func() ([]byte, error) {
		val, err := rlp.EncodeToBytes(value)
		if err != nil {
			return nil, err
		}
		if newValue {
			m.context.UseGas(toWordSize(len(val)) * tunes.SstoreSetGas)
		} else {
			m.context.UseGas(toWordSize(len(val)) * tunes.SstoreResetGas)
		}
		return val, nil
	})
}

// Delete clears the slot at key.
func (m *Mapping[K, V]) Delete(key K) {
	m.context.UseGas(tunes.SstoreResetGas)
	m.context.state.SetRawStorage(m.context.address, m.Position(key), nil)
}
