// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"
)

// Kind classifies why a builtin call reverted.
type Kind int

const (
	// Unauthorized the caller has no registered account.
	Unauthorized Kind = iota + 1
	// InvalidHint a positional hint failed its membership or adjacency check.
	InvalidHint
	// NotFound the referenced song, account or entry does not exist.
	NotFound
	// InvalidArgument the call is malformed.
	InvalidArgument
)

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "unauthorized"
	case InvalidHint:
		return "invalid hint"
	case NotFound:
		return "not found"
	case InvalidArgument:
		return "invalid argument"
	}
	return "unknown"
}

// ErrRevert is returned when a builtin rejects a call. No state is changed by a reverted call.
type ErrRevert struct {
	kind    Kind
	message string
}

func New(kind Kind, message string) *ErrRevert {
	return &ErrRevert{
		kind:    kind,
		message: message,
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

func (e *ErrRevert) Kind() Kind {
	return e.kind
}

func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}

// KindOf returns the kind of the revert error wrapped in err, or zero if err is not a revert.
func KindOf(err error) Kind {
	var ve *ErrRevert
	if errors.As(err, &ve) {
		return ve.kind
	}
	return 0
}
