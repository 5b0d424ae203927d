// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package distribution

import (
	"github.com/tangletunes/tunes/builtin/reverts"
)

var (
	ErrUserNotExist = reverts.New(reverts.Unauthorized, "user does not exist")

	ErrSongNotExist          = reverts.New(reverts.NotFound, "song does not exist")
	ErrNotDistributing       = reverts.New(reverts.NotFound, "distributor is not distributing")
	ErrStartNotDistributing  = reverts.New(reverts.NotFound, "start is not distributing")
	ErrNoDistributors        = reverts.New(reverts.NotFound, "song has no distributors")
	ErrAlreadyDistributing   = reverts.New(reverts.InvalidArgument, "distributor is already distributing")
	ErrLengthMismatch        = reverts.New(reverts.InvalidArgument, "arguments have different lengths")
	ErrIncorrectInsertIndex  = reverts.New(reverts.InvalidHint, "incorrect insert index")
	ErrIncorrectDistIndex    = reverts.New(reverts.InvalidHint, "incorrect distributor index")
	ErrInsertIndexNotDistrib = reverts.New(reverts.InvalidHint, "insert index is not distributing")
	ErrDistIndexNotDistrib   = reverts.New(reverts.InvalidHint, "distributor index is not distributing")
)
