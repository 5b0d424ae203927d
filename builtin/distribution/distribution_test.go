// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package distribution

import (
	"sort"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangletunes/tunes/builtin/gascharger"
	"github.com/tangletunes/tunes/builtin/reverts"
	"github.com/tangletunes/tunes/builtin/solidity"
	"github.com/tangletunes/tunes/lvldb"
	"github.com/tangletunes/tunes/state"
	"github.com/tangletunes/tunes/test/datagen"
	"github.com/tangletunes/tunes/tunes"
)

type accounts map[tunes.Address]bool

func (a accounts) Exists(addr tunes.Address) (bool, error) { return a[addr], nil }

type songs map[tunes.Bytes32]bool

func (s songs) Exists(id tunes.Bytes32) (bool, error) { return s[id], nil }

type testEnv struct {
	dist    *Distribution
	st      *state.State
	charger *gascharger.Charger
	users   accounts
	songs   songs
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	st := state.NewStater(db, 0).NewState()
	charger := gascharger.New(0)
	env := &testEnv{
		st:      st,
		charger: charger,
		users:   accounts{},
		songs:   songs{},
	}
	env.dist = New(solidity.NewContext(tunes.DistributionAddress, st, charger), env.users, env.songs)
	return env
}

func (e *testEnv) newUsers(n int) []tunes.Address {
	addrs := datagen.RandAddresses(n)
	for _, a := range addrs {
		e.users[a] = true
	}
	return addrs
}

func (e *testEnv) newSong() tunes.Bytes32 {
	id := datagen.RandomHash()
	e.songs[id] = true
	return id
}

// distribute resolves hints the way a client would and submits them.
func (e *testEnv) distribute(t *testing.T, caller tunes.Address, song tunes.Bytes32, fee uint64) error {
	insertIndex, err := e.dist.FindInsertPredecessor(song, fee)
	require.NoError(t, err)

	var distIndex tunes.Address
	distributing, err := e.dist.IsDistributing(song, caller)
	require.NoError(t, err)
	if distributing {
		distIndex, err = e.dist.FindCurrentPredecessor(song, caller)
		require.NoError(t, err)
	}
	return e.dist.Distribute(caller, []tunes.Bytes32{song}, []uint64{fee}, []tunes.Address{distIndex}, []tunes.Address{insertIndex})
}

func (e *testEnv) entries(t *testing.T, song tunes.Bytes32) []Entry {
	n, err := e.dist.Length(song)
	require.NoError(t, err)
	entries, err := e.dist.Distributors(song, tunes.Address{}, n)
	require.NoError(t, err)
	return entries
}

// checkList asserts the stored list is well formed: sorted, unique, and agreeing with its count.
func (e *testEnv) checkList(t *testing.T, song tunes.Bytes32) {
	entries := e.entries(t, song)
	n, err := e.dist.Length(song)
	require.NoError(t, err)
	assert.Len(t, entries, int(n))

	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].Fee < entries[j].Fee }))
	seen := make(map[tunes.Address]bool)
	for i, entry := range entries {
		assert.False(t, seen[entry.Distributor], "duplicated distributor")
		seen[entry.Distributor] = true

		rand, err := e.dist.RandDistributor(song, uint256.NewInt(uint64(i)))
		require.NoError(t, err)
		assert.Equal(t, entry, rand)
	}
}

func TestScenarios(t *testing.T) {
	env := newTestEnv(t)
	song := env.newSong()
	d := env.newUsers(4)

	// A: first distributor of an empty list
	require.NoError(t, env.distribute(t, d[0], song, 0))
	assert.Equal(t, []Entry{{d[0], 0}}, env.entries(t, song))

	// B: inserts land in fee order
	require.NoError(t, env.distribute(t, d[1], song, 1))
	require.NoError(t, env.distribute(t, d[3], song, 3))
	assert.Equal(t, []Entry{{d[0], 0}, {d[1], 1}, {d[3], 3}}, env.entries(t, song))

	require.NoError(t, env.distribute(t, d[2], song, 2))
	assert.Equal(t, []Entry{{d[0], 0}, {d[1], 1}, {d[2], 2}, {d[3], 3}}, env.entries(t, song))
	env.checkList(t, song)

	afterB := env.st.NewCheckpoint()

	// C: the tail moves to the head, ahead of the entry with the same fee
	require.NoError(t, env.distribute(t, d[3], song, 0))
	assert.Equal(t, []Entry{{d[3], 0}, {d[0], 0}, {d[1], 1}, {d[2], 2}}, env.entries(t, song))
	env.checkList(t, song)

	env.st.RevertTo(afterB)

	// D: the head moves next to the tail, ahead of the entry with the same fee
	require.NoError(t, env.distribute(t, d[0], song, 3))
	assert.Equal(t, []Entry{{d[1], 1}, {d[2], 2}, {d[0], 3}, {d[3], 3}}, env.entries(t, song))
	env.checkList(t, song)
}

func TestDistributeErrors(t *testing.T) {
	env := newTestEnv(t)
	song := env.newSong()
	d := env.newUsers(4)
	for i, a := range d[:3] {
		require.NoError(t, env.distribute(t, a, song, uint64(i)))
	}
	stranger := datagen.RandAddress()
	notDistributing := d[3]

	one := func(caller tunes.Address, fee uint64, distIndex, insertIndex tunes.Address) error {
		return env.dist.Distribute(caller, []tunes.Bytes32{song}, []uint64{fee}, []tunes.Address{distIndex}, []tunes.Address{insertIndex})
	}

	tests := []struct {
		name string
		err  error
		kind reverts.Kind
	}{
		{"unregistered caller", one(stranger, 5, tunes.Address{}, d[2]), reverts.Unauthorized},
		{"insert hint not distributing", one(notDistributing, 5, tunes.Address{}, stranger), reverts.InvalidHint},
		{"insert hint too far left", one(notDistributing, 5, tunes.Address{}, d[1]), reverts.InvalidHint},
		{"insert hint too far right", one(notDistributing, 0, tunes.Address{}, d[2]), reverts.InvalidHint},
		{"insert hint on equal fee", one(notDistributing, 1, tunes.Address{}, d[1]), reverts.InvalidHint},
		{"dist hint for new distributor", one(notDistributing, 5, d[0], d[2]), reverts.InvalidHint},
		{"dist hint not distributing", one(notDistributing, 5, stranger, d[2]), reverts.InvalidHint},
		{"wrong dist hint", one(d[2], 5, d[0], d[2]), reverts.InvalidHint},
		{"dist hint none for non head", one(d[1], 5, tunes.Address{}, d[2]), reverts.InvalidHint},
		{"unknown song", env.dist.Distribute(d[0], []tunes.Bytes32{datagen.RandomHash()}, []uint64{1}, []tunes.Address{{}}, []tunes.Address{{}}), reverts.NotFound},
		{"length mismatch", env.dist.Distribute(d[0], []tunes.Bytes32{song}, []uint64{1, 2}, []tunes.Address{{}}, []tunes.Address{{}}), reverts.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, reverts.IsRevertErr(tt.err))
			assert.Equal(t, tt.kind, reverts.KindOf(tt.err))
		})
	}

	assert.ErrorIs(t, one(stranger, 5, tunes.Address{}, d[2]), ErrUserNotExist)
	assert.EqualError(t, one(notDistributing, 5, tunes.Address{}, stranger), "songs[0]: insert index is not distributing")
	assert.EqualError(t, one(notDistributing, 5, tunes.Address{}, d[1]), "songs[0]: incorrect insert index")
	assert.EqualError(t, one(notDistributing, 5, stranger, d[2]), "songs[0]: distributor index is not distributing")
	assert.EqualError(t, one(d[2], 5, d[0], d[2]), "songs[0]: incorrect distributor index")

	// nothing changed
	assert.Equal(t, []Entry{{d[0], 0}, {d[1], 1}, {d[2], 2}}, env.entries(t, song))
}

func TestRepositionHints(t *testing.T) {
	env := newTestEnv(t)
	song := env.newSong()
	d := env.newUsers(3)
	for i, a := range d {
		require.NoError(t, env.distribute(t, a, song, uint64(i*10)))
	}

	// the resolver may name the mover itself as the new predecessor
	insertIndex, err := env.dist.FindInsertPredecessor(song, 15)
	require.NoError(t, err)
	assert.Equal(t, d[1], insertIndex)
	require.NoError(t, env.dist.Distribute(d[1], []tunes.Bytes32{song}, []uint64{15}, []tunes.Address{d[0]}, []tunes.Address{d[1]}))
	assert.Equal(t, []Entry{{d[0], 0}, {d[1], 15}, {d[2], 20}}, env.entries(t, song))

	// same position, predecessor given explicitly
	require.NoError(t, env.dist.Distribute(d[1], []tunes.Bytes32{song}, []uint64{12}, []tunes.Address{d[0]}, []tunes.Address{d[0]}))
	assert.Equal(t, []Entry{{d[0], 0}, {d[1], 12}, {d[2], 20}}, env.entries(t, song))

	// a neighbour of the mover is judged against the list without the mover
	require.NoError(t, env.dist.Distribute(d[1], []tunes.Bytes32{song}, []uint64{25}, []tunes.Address{d[0]}, []tunes.Address{d[2]}))
	assert.Equal(t, []Entry{{d[0], 0}, {d[2], 20}, {d[1], 25}}, env.entries(t, song))

	err = env.dist.Distribute(d[1], []tunes.Bytes32{song}, []uint64{30}, []tunes.Address{d[2]}, []tunes.Address{d[0]})
	assert.ErrorIs(t, err, ErrIncorrectInsertIndex)
	env.checkList(t, song)
}

func TestStaleHintRejected(t *testing.T) {
	env := newTestEnv(t)
	song := env.newSong()
	d := env.newUsers(3)
	require.NoError(t, env.distribute(t, d[0], song, 10))
	require.NoError(t, env.distribute(t, d[1], song, 30))

	// d[2] resolves its hint, then d[0] moves in between
	hint, err := env.dist.FindInsertPredecessor(song, 20)
	require.NoError(t, err)
	assert.Equal(t, d[0], hint)
	require.NoError(t, env.distribute(t, d[0], song, 25))

	err = env.dist.Distribute(d[2], []tunes.Bytes32{song}, []uint64{20}, []tunes.Address{{}}, []tunes.Address{hint})
	assert.ErrorIs(t, err, ErrIncorrectInsertIndex)
	assert.Equal(t, []Entry{{d[0], 25}, {d[1], 30}}, env.entries(t, song))
}

func TestBatchAtomicity(t *testing.T) {
	env := newTestEnv(t)
	song1, song2 := env.newSong(), env.newSong()
	d := env.newUsers(2)
	require.NoError(t, env.distribute(t, d[0], song2, 5))

	// song2 hint is wrong
	err := env.dist.Distribute(d[1],
		[]tunes.Bytes32{song1, song2},
		[]uint64{1, 1},
		[]tunes.Address{{}, {}},
		[]tunes.Address{{}, d[0]},
	)
	assert.ErrorIs(t, err, ErrIncorrectInsertIndex)
	assert.EqualError(t, err, "songs[1]: incorrect insert index")

	n, err := env.dist.Length(song1)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []Entry{{d[0], 5}}, env.entries(t, song2))

	// both hints resolved
	indexes, err := env.dist.FindInsertIndexes([]tunes.Bytes32{song1, song2}, []uint64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []tunes.Address{{}, {}}, indexes)
	require.NoError(t, env.dist.Distribute(d[1], []tunes.Bytes32{song1, song2}, []uint64{1, 1}, []tunes.Address{{}, {}}, indexes))
	assert.Equal(t, []Entry{{d[1], 1}}, env.entries(t, song1))
	assert.Equal(t, []Entry{{d[1], 1}, {d[0], 5}}, env.entries(t, song2))
}

func TestUndistribute(t *testing.T) {
	env := newTestEnv(t)
	song := env.newSong()
	d := env.newUsers(3)
	for i, a := range d {
		require.NoError(t, env.distribute(t, a, song, uint64(i)))
	}

	err := env.dist.Undistribute(d[1], []tunes.Bytes32{song}, []tunes.Address{{}})
	assert.ErrorIs(t, err, ErrIncorrectDistIndex)

	indexes, err := env.dist.FindDistIndexes([]tunes.Bytes32{song}, []tunes.Address{d[1]})
	require.NoError(t, err)
	require.NoError(t, env.dist.Undistribute(d[1], []tunes.Bytes32{song}, indexes))
	assert.Equal(t, []Entry{{d[0], 0}, {d[2], 2}}, env.entries(t, song))

	err = env.dist.Undistribute(d[1], []tunes.Bytes32{song}, []tunes.Address{d[0]})
	assert.ErrorIs(t, err, ErrNotDistributing)

	_, err = env.dist.FindCurrentPredecessor(song, d[1])
	assert.ErrorIs(t, err, ErrNotDistributing)

	require.NoError(t, env.dist.Undistribute(d[0], []tunes.Bytes32{song}, []tunes.Address{{}}))
	require.NoError(t, env.dist.Undistribute(d[2], []tunes.Bytes32{song}, []tunes.Address{{}}))

	// an emptied song keeps accepting distributors
	n, err := env.dist.Length(song)
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, env.distribute(t, d[1], song, 7))
	assert.Equal(t, []Entry{{d[1], 7}}, env.entries(t, song))
}

func TestSelector(t *testing.T) {
	env := newTestEnv(t)
	song := env.newSong()

	_, err := env.dist.RandDistributor(song, uint256.NewInt(1))
	assert.ErrorIs(t, err, ErrNoDistributors)
	assert.EqualError(t, err, "song has no distributors")

	unknown, err := env.dist.Distributors(datagen.RandomHash(), tunes.Address{}, 10)
	require.NoError(t, err)
	assert.Empty(t, unknown)

	d := env.newUsers(5)
	for i, a := range d {
		require.NoError(t, env.distribute(t, a, song, uint64(i)))
	}

	page, err := env.dist.Distributors(song, tunes.Address{}, 2)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{d[0], 0}, {d[1], 1}}, page)

	page, err = env.dist.Distributors(song, d[1], 2)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{d[2], 2}, {d[3], 3}}, page)

	page, err = env.dist.Distributors(song, d[3], 100)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{d[4], 4}}, page)

	page, err = env.dist.Distributors(song, d[4], 1)
	require.NoError(t, err)
	assert.Empty(t, page)

	_, err = env.dist.Distributors(song, datagen.RandAddress(), 1)
	assert.ErrorIs(t, err, ErrStartNotDistributing)

	seed := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	seed.AddUint64(seed, 3)
	// 2^200 = 1 mod 5
	entry, err := env.dist.RandDistributor(song, seed)
	require.NoError(t, err)
	assert.Equal(t, Entry{d[4], 4}, entry)
}

func TestPurge(t *testing.T) {
	env := newTestEnv(t)
	song, other := env.newSong(), env.newSong()
	d := env.newUsers(3)
	for i, a := range d {
		require.NoError(t, env.distribute(t, a, song, uint64(i)))
	}
	require.NoError(t, env.distribute(t, d[0], other, 9))

	require.NoError(t, env.dist.Purge(song))

	n, err := env.dist.Length(song)
	require.NoError(t, err)
	assert.Zero(t, n)
	for _, a := range d {
		distributing, err := env.dist.IsDistributing(song, a)
		require.NoError(t, err)
		assert.False(t, distributing)

		raw, err := env.st.GetRawStorage(tunes.DistributionAddress, env.dist.fees.Position(feeKey(song, a)))
		require.NoError(t, err)
		assert.Empty(t, raw)
	}
	assert.Equal(t, []Entry{{d[0], 9}}, env.entries(t, other))
}

func TestRandomizedOrder(t *testing.T) {
	env := newTestEnv(t)
	song := env.newSong()
	d := env.newUsers(30)

	for round := range 3 {
		for _, a := range d {
			fee := datagen.RandUint64N(10)
			if round == 2 && fee%3 == 0 {
				distributing, err := env.dist.IsDistributing(song, a)
				require.NoError(t, err)
				if distributing {
					prev, err := env.dist.FindCurrentPredecessor(song, a)
					require.NoError(t, err)
					require.NoError(t, env.dist.Undistribute(a, []tunes.Bytes32{song}, []tunes.Address{prev}))
					continue
				}
			}
			require.NoError(t, env.distribute(t, a, song, fee))
		}
		env.checkList(t, song)
	}
}

func TestMutationGasIsConstant(t *testing.T) {
	measure := func(size int) (insertGas, repositionGas uint64) {
		env := newTestEnv(t)
		song := env.newSong()
		d := env.newUsers(size + 1)
		for i, a := range d[:size] {
			require.NoError(t, env.distribute(t, a, song, uint64(i*2)))
		}
		mover := d[size]

		// in the middle, away from the ends
		mid := d[size/2]
		before := env.charger.TotalGas()
		require.NoError(t, env.dist.Distribute(mover, []tunes.Bytes32{song}, []uint64{uint64(size) + 1}, []tunes.Address{{}}, []tunes.Address{mid}))
		insertGas = env.charger.TotalGas() - before

		before = env.charger.TotalGas()
		require.NoError(t, env.dist.Distribute(mover, []tunes.Bytes32{song}, []uint64{uint64(size) - 1}, []tunes.Address{mid}, []tunes.Address{d[size/2-1]}))
		repositionGas = env.charger.TotalGas() - before
		return
	}

	smallInsert, smallReposition := measure(4)
	largeInsert, largeReposition := measure(60)
	assert.Equal(t, smallInsert, largeInsert)
	assert.Equal(t, smallReposition, largeReposition)
}
