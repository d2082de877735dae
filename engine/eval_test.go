package engine

import (
	"testing"

	"github.com/fsoonaye/chimp/board"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)
	// material, piece-square and mobility terms cancel out; only the
	// side-to-move tempo bonus is left (phase 24: pure middlegame).
	require.Equal(t, Score(tempoBonus), Evaluate(pos))
}

func TestEvaluateFavorsExtraQueen(t *testing.T) {
	withQueen, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	bare, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	require.Greater(t, Evaluate(withQueen), Evaluate(bare))
}

func TestEvaluateFromMatedSideIsNegative(t *testing.T) {
	// white is up a whole queen regardless of who is to move, so the
	// position must look winning for white and losing for black.
	white, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	black, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	require.NoError(t, err)

	require.Positive(t, Evaluate(white))
	require.Negative(t, Evaluate(black))
}
