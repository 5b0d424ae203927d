// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"github.com/tangletunes/tunes/metrics"
)

var (
	metricCalls          = metrics.LazyLoadCounterVec("ledger_calls_count", []string{"op", "result"})
	metricGasUsed        = metrics.LazyLoadHistogramVec("ledger_gas_used", []string{"op"}, metrics.BucketGas)
	metricCommittedSlots = metrics.LazyLoadCounter("ledger_committed_slots_count")
)
