package engine

import (
	"testing"

	"github.com/fsoonaye/chimp/board"
	"github.com/stretchr/testify/require"
)

func TestTTStoreProbeRoundtrip(t *testing.T) {
	tt := NewTT(1)
	key := uint64(0x1234567890abcdef)
	m := board.Move{From: board.SquareE2, To: board.SquareE4}

	tt.Store(key, 6, 120, 30, m, BoundExact)
	entry, ok := tt.Probe(key)
	require.True(t, ok)
	require.Equal(t, m, entry.Move())
	require.Equal(t, Score(120), entry.Score())
	require.Equal(t, 6, entry.Depth())
	require.Equal(t, BoundExact, entry.Bound())
}

func TestTTProbeMissOnDifferentKey(t *testing.T) {
	tt := NewTT(1)
	tt.Store(1, 4, 10, ValueNone, board.Move{}, BoundUpper)
	_, ok := tt.Probe(2)
	require.False(t, ok)
}

func TestTTDeeperEntryWins(t *testing.T) {
	tt := NewTT(1)
	key := uint64(42)
	m1 := board.Move{From: board.SquareE2, To: board.SquareE4}
	m2 := board.Move{From: board.SquareD2, To: board.SquareD4}

	tt.Store(key, 4, 50, ValueNone, m1, BoundUpper)
	tt.Store(key, 8, 75, ValueNone, m2, BoundExact)

	entry, ok := tt.Probe(key)
	require.True(t, ok)
	require.Equal(t, m2, entry.Move())
	require.Equal(t, Score(75), entry.Score())
	require.Equal(t, 8, entry.Depth())
}

func TestTTShallowerNonExactDoesNotOverwriteDeep(t *testing.T) {
	tt := NewTT(1)
	key := uint64(99)
	m1 := board.Move{From: board.SquareE2, To: board.SquareE4}
	m2 := board.Move{From: board.SquareD2, To: board.SquareD4}

	tt.Store(key, 10, 200, ValueNone, m1, BoundExact)
	tt.Store(key, 2, 5, ValueNone, m2, BoundUpper)

	entry, ok := tt.Probe(key)
	require.True(t, ok)
	require.Equal(t, Score(200), entry.Score())
	require.Equal(t, 10, entry.Depth())
}

func TestTTClear(t *testing.T) {
	tt := NewTT(1)
	tt.Store(7, 3, 1, ValueNone, board.Move{}, BoundUpper)
	tt.Clear()
	_, ok := tt.Probe(7)
	require.False(t, ok)
}

func TestTTResizeRoundsDownToPowerOfTwo(t *testing.T) {
	tt := NewTT(1)
	count := len(tt.table)
	require.True(t, count > 0)
	require.Equal(t, count, int(tt.mask)+1)
	require.Zero(t, count&(count-1))
}
