// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ledger serializes calls into the builtins and commits their effects.
//
// Every mutating call runs alone on a fresh state. It is committed to the store
// in a single batch if it succeeds, and dropped otherwise. Reads run concurrently
// with each other and only observe committed data.
package ledger

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/tangletunes/tunes/builtin"
	"github.com/tangletunes/tunes/builtin/gascharger"
	"github.com/tangletunes/tunes/builtin/reverts"
	"github.com/tangletunes/tunes/genesis"
	"github.com/tangletunes/tunes/kv"
	"github.com/tangletunes/tunes/state"
	"github.com/tangletunes/tunes/tunes"
)

var logger = log.New("pkg", "ledger")

var (
	ErrGasLimitExceeded = reverts.New(reverts.InvalidArgument, "gas limit exceeded")
	ErrGenesisMismatch  = errors.New("genesis mismatch")
)

var (
	ledgerAddress = tunes.BytesToAddress([]byte("Ledger"))
	genesisKey    = tunes.BytesToBytes32([]byte("genesis"))
)

// Options configures a Ledger.
type Options struct {
	CacheSize int    // committed slots kept in memory
	GasLimit  uint64 // gas a single call may use, 0 for no limit
}

// Receipt describes a committed call.
type Receipt struct {
	GasUsed uint64 `json:"gasUsed"`
	Slots   int    `json:"slots"`
}

// Ledger is the only writer of the store it is opened on.
type Ledger struct {
	stater   *state.Stater
	gasLimit uint64
	lock     sync.RWMutex
}

// New opens a ledger on db.
func New(db kv.GetPutter, opts Options) *Ledger {
	return &Ledger{
		stater:   state.NewStater(db, opts.CacheSize),
		gasLimit: opts.GasLimit,
	}
}

// Initialize applies gen if the store is empty, otherwise checks the store was initialized with it.
// It returns the genesis ID.
func (l *Ledger) Initialize(gen *genesis.Genesis) (tunes.Bytes32, error) {
	id, err := gen.ID()
	if err != nil {
		return tunes.Bytes32{}, err
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	st := l.stater.NewState()
	stored, err := st.GetStorage(ledgerAddress, genesisKey)
	if err != nil {
		return tunes.Bytes32{}, err
	}
	if !stored.IsZero() {
		if stored != id {
			return tunes.Bytes32{}, errors.WithMessagef(ErrGenesisMismatch, "want %v, got %v", stored, id)
		}
		return id, nil
	}

	if err := gen.Apply(builtin.New(st, nil)); err != nil {
		return tunes.Bytes32{}, errors.WithMessage(err, "apply genesis")
	}
	st.SetStorage(ledgerAddress, genesisKey, id)
	if err := st.Stage().Commit(); err != nil {
		return tunes.Bytes32{}, err
	}
	logger.Info("genesis applied", "id", id)
	return id, nil
}

// mutate runs fn exclusively and commits what it wrote if it succeeds.
func (l *Ledger) mutate(op string, fn func(b *builtin.Builtins) error) (*Receipt, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	start := time.Now()
	st := l.stater.NewState()
	charger := gascharger.New(l.gasLimit)

	err := fn(builtin.New(st, charger))
	if err == nil && charger.Exceeded() {
		err = ErrGasLimitExceeded
	}
	if err != nil {
		metricCalls().AddWithLabel(1, map[string]string{"op": op, "result": resultOf(err)})
		logger.Debug("call reverted", "op", op, "err", err, "gas", charger.TotalGas())
		return nil, err
	}

	stage := st.Stage()
	if err := stage.Commit(); err != nil {
		metricCalls().AddWithLabel(1, map[string]string{"op": op, "result": "failed"})
		return nil, errors.WithMessage(err, "commit")
	}

	receipt := &Receipt{GasUsed: charger.TotalGas(), Slots: stage.Len()}
	metricCalls().AddWithLabel(1, map[string]string{"op": op, "result": "committed"})
	metricGasUsed().ObserveWithLabels(int64(receipt.GasUsed), map[string]string{"op": op})
	metricCommittedSlots().Add(int64(receipt.Slots))
	logger.Debug("call committed",
		"op", op,
		"gas", receipt.GasUsed,
		"slots", receipt.Slots,
		"breakdown", charger.Breakdown(),
		"elapsed", time.Since(start),
	)
	return receipt, nil
}

// view runs fn on committed data. Writes made by fn are discarded.
func (l *Ledger) view(fn func(b *builtin.Builtins) error) error {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return fn(builtin.New(l.stater.NewState(), nil))
}

func resultOf(err error) string {
	if reverts.IsRevertErr(err) {
		return "reverted"
	}
	return "failed"
}
