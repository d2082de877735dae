package engine

import (
	"testing"

	"github.com/fsoonaye/chimp/board"
	"github.com/stretchr/testify/require"
)

func findMove(t *testing.T, pos *board.Position, from, to board.Square) board.Move {
	t.Helper()
	for _, m := range pos.LegalMoves() {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no legal move %v-%v", from, to)
	return board.Move{}
}

func TestSEEWinningPawnTakesUndefendedKnight(t *testing.T) {
	pos, err := board.PositionFromFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := findMove(t, pos, board.SquareE4, board.SquareD5)
	require.True(t, SEE(pos, m, 0))
}

func TestSEERefusesQueenForPawnBehindDefendedRook(t *testing.T) {
	pos, err := board.PositionFromFEN("3rk3/8/3p4/2Q5/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := findMove(t, pos, board.SquareC5, board.SquareD6)
	require.False(t, SEE(pos, m, 0))
}

func TestSEEAboveThresholdFails(t *testing.T) {
	pos, err := board.PositionFromFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := findMove(t, pos, board.SquareE4, board.SquareD5)
	require.False(t, SEE(pos, m, Score(seeValue[board.Queen])))
}
