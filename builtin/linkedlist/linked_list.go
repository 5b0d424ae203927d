// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package linkedlist

import (
	"github.com/pkg/errors"

	"github.com/tangletunes/tunes/builtin/solidity"
	"github.com/tangletunes/tunes/tunes"
)

// Element is a list item. The zero value marks "none" and can't be stored.
type Element interface {
	comparable
	solidity.Key
	IsZero() bool
}

type header[E Element] struct {
	Head  E
	Tail  E
	Count uint64
}

type node[E Element] struct {
	Prev E
	Next E
}

// LinkedList is a doubly linked list kept in contract storage.
// Many lists share one pair of mappings and are told apart by their namespace.
// Every operation except Iter and Clear touches a constant number of slots.
type LinkedList[E Element] struct {
	ns      tunes.Bytes32
	headers *solidity.Mapping[tunes.Bytes32, header[E]]
	nodes   *solidity.Mapping[tunes.Bytes32, node[E]]
}

// New creates the list identified by ns among the lists stored at basePos.
func New[E Element](sctx *solidity.Context, basePos, ns tunes.Bytes32) *LinkedList[E] {
	return &LinkedList[E]{
		ns:      ns,
		headers: solidity.NewMapping[tunes.Bytes32, header[E]](sctx, tunes.Blake2b(basePos[:], []byte("header"))),
		nodes:   solidity.NewMapping[tunes.Bytes32, node[E]](sctx, tunes.Blake2b(basePos[:], []byte("node"))),
	}
}

func (l *LinkedList[E]) nodeKey(e E) tunes.Bytes32 {
	return tunes.Blake2b(l.ns[:], e.Bytes())
}

func (l *LinkedList[E]) header() (header[E], error) {
	return l.headers.Get(l.ns)
}

func (l *LinkedList[E]) node(e E) (node[E], error) {
	return l.nodes.Get(l.nodeKey(e))
}

// Len returns the number of elements.
func (l *LinkedList[E]) Len() (uint64, error) {
	h, err := l.header()
	if err != nil {
		return 0, err
	}
	return h.Count, nil
}

// Head returns the first element, or zero if the list is empty.
func (l *LinkedList[E]) Head() (E, error) {
	h, err := l.header()
	return h.Head, err
}

// Tail returns the last element, or zero if the list is empty.
func (l *LinkedList[E]) Tail() (E, error) {
	h, err := l.header()
	return h.Tail, err
}

// Contains checks whether e is linked in the list.
func (l *LinkedList[E]) Contains(e E) (bool, error) {
	if e.IsZero() {
		return false, nil
	}
	n, err := l.node(e)
	if err != nil {
		return false, err
	}
	if !n.Prev.IsZero() {
		return true, nil
	}
	// if it's the head, prev is zero as well
	h, err := l.header()
	if err != nil {
		return false, err
	}
	return h.Head == e, nil
}

// Prev returns the predecessor of e, or zero if e is the head.
func (l *LinkedList[E]) Prev(e E) (E, error) {
	n, err := l.node(e)
	return n.Prev, err
}

// Next returns the successor of e, or zero if e is the tail.
// Next of the zero element is the head.
func (l *LinkedList[E]) Next(e E) (E, error) {
	if e.IsZero() {
		return l.Head()
	}
	n, err := l.node(e)
	return n.Next, err
}

// InsertAfter links e right after prev, or at the head when prev is zero.
// The caller guarantees e is not linked and prev is linked.
func (l *LinkedList[E]) InsertAfter(prev, e E) error {
	if e.IsZero() {
		return errors.New("linked list: zero element")
	}
	h, err := l.header()
	if err != nil {
		return err
	}

	var next E
	if prev.IsZero() {
		next = h.Head
		h.Head = e
	} else {
		prevNode, err := l.node(prev)
		if err != nil {
			return err
		}
		next = prevNode.Next
		prevNode.Next = e
		if err := l.nodes.Set(l.nodeKey(prev), prevNode, false); err != nil {
			return err
		}
	}

	if next.IsZero() {
		h.Tail = e
	} else {
		nextNode, err := l.node(next)
		if err != nil {
			return err
		}
		nextNode.Prev = e
		if err := l.nodes.Set(l.nodeKey(next), nextNode, false); err != nil {
			return err
		}
	}

	if err := l.nodes.Set(l.nodeKey(e), node[E]{Prev: prev, Next: next}, true); err != nil {
		return err
	}
	h.Count++
	return l.headers.Set(l.ns, h, h.Count == 1)
}

// PushBack appends e to the end of the list.
func (l *LinkedList[E]) PushBack(e E) error {
	tail, err := l.Tail()
	if err != nil {
		return err
	}
	return l.InsertAfter(tail, e)
}

// Remove unlinks e. The caller guarantees e is linked.
// The header is kept even when the list becomes empty.
func (l *LinkedList[E]) Remove(e E) error {
	h, err := l.header()
	if err != nil {
		return err
	}
	n, err := l.node(e)
	if err != nil {
		return err
	}

	if n.Prev.IsZero() {
		h.Head = n.Next
	} else {
		prevNode, err := l.node(n.Prev)
		if err != nil {
			return err
		}
		prevNode.Next = n.Next
		if err := l.nodes.Set(l.nodeKey(n.Prev), prevNode, false); err != nil {
			return err
		}
	}

	if n.Next.IsZero() {
		h.Tail = n.Prev
	} else {
		nextNode, err := l.node(n.Next)
		if err != nil {
			return err
		}
		nextNode.Prev = n.Prev
		if err := l.nodes.Set(l.nodeKey(n.Next), nextNode, false); err != nil {
			return err
		}
	}

	l.nodes.Delete(l.nodeKey(e))
	h.Count--
	return l.headers.Set(l.ns, h, false)
}

// Iter traverses the list from head to tail until cb returns false or fails.
func (l *LinkedList[E]) Iter(cb func(E) (bool, error)) error {
	ptr, err := l.Head()
	if err != nil {
		return err
	}
	for !ptr.IsZero() {
		// read next first, cb is allowed to unlink ptr
		next, err := l.Next(ptr)
		if err != nil {
			return err
		}
		cont, err := cb(ptr)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
		ptr = next
	}
	return nil
}

// Clear unlinks every element and deletes the list header, leaving no slot behind.
func (l *LinkedList[E]) Clear() error {
	if err := l.Iter(func(e E) (bool, error) {
		l.nodes.Delete(l.nodeKey(e))
		return true, nil
	}); err != nil {
		return err
	}
	l.headers.Delete(l.ns)
	return nil
}
