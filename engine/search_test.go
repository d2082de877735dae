package engine

import (
	"testing"
	"time"

	"github.com/fsoonaye/chimp/board"
	"github.com/stretchr/testify/require"
)

func fixedDepthSearch(t *testing.T, fen string, depth int) SearchResult {
	t.Helper()
	pos, err := board.PositionFromFEN(fen)
	require.NoError(t, err)
	tt := NewTT(1)
	tm := NewTimeManager(TimeParams{DepthOnly: true}, pos.ToMove == board.White)
	return Search(pos, tt, tm, depth, nil)
}

func TestSearchFindsMateInOne(t *testing.T) {
	// black king boxed in by its own pawns: Re1-e8 is back-rank mate
	result := fixedDepthSearch(t, "6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1", 3)
	require.Equal(t, board.SquareE1, result.Move.From)
	require.Equal(t, board.SquareE8, result.Move.To)
	require.True(t, IsMate(result.Score))
	require.Positive(t, result.Score)
}

func TestSearchFindsMateInTwo(t *testing.T) {
	// king boxed on h8; the a7 bishop guards b8 and g1, so Ra1xa7 is the
	// only mate in two: it forces ...Kg8, then Rb1-b8 is mate.
	result := fixedDepthSearch(t, "7k/b7/8/8/8/8/8/RR2K3 w - - 0 1", 5)
	require.Equal(t, board.SquareA1, result.Move.From)
	require.Equal(t, board.SquareA7, result.Move.To)
	require.True(t, IsMate(result.Score))
	require.Positive(t, result.Score)
}

func TestSearchReturnsZeroOnStalemate(t *testing.T) {
	// black king on a8 stalemated, white to move would be black's turn;
	// set up with black to move and no legal moves, not in check.
	pos, err := board.PositionFromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.Empty(t, pos.LegalMoves())
	require.False(t, pos.IsChecked(pos.ToMove))

	tt := NewTT(1)
	tm := NewTimeManager(TimeParams{DepthOnly: true}, pos.ToMove == board.White)
	result := Search(pos, tt, tm, 1, nil)
	require.Zero(t, result.Score)
}

func TestSearchRespectsHardTimeLimit(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)
	tt := NewTT(1)
	tm := NewTimeManager(TimeParams{MoveTime: 20 * time.Millisecond}, true)
	result := Search(pos, tt, tm, MaxPly-1, nil)
	require.NotEqual(t, board.Move{}, result.Move)
}
