package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartPositionFEN(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	require.NoError(t, err)
	require.Equal(t, FENStartPos, pos.String())
	require.Equal(t, White, pos.ToMove)
	require.Equal(t, AnyCastle, pos.Castle)
	require.Equal(t, NoSquare, pos.Enpassant)
	require.Equal(t, WhiteRook, pos.Get(SquareA1))
	require.Equal(t, BlackKing, pos.Get(SquareE8))
	require.True(t, pos.IsEmpty(SquareE4))
}

func TestKiwipeteRoundtrip(t *testing.T) {
	pos, err := PositionFromFEN(FENKiwipete)
	require.NoError(t, err)
	require.Equal(t, FENKiwipete, pos.String())
}

func TestDoUndoMovePreservesZobrist(t *testing.T) {
	pos, err := PositionFromFEN(FENKiwipete)
	require.NoError(t, err)
	for _, m := range pos.LegalMoves() {
		before := pos.Zobrist
		fen := pos.String()
		pos.DoMove(m)
		pos.UndoMove(m)
		require.Equal(t, before, pos.Zobrist, "move %v broke Zobrist symmetry", m)
		require.Equal(t, fen, pos.String(), "move %v broke FEN symmetry", m)
	}
}

func TestCastlingRightsRevokedByRookCapture(t *testing.T) {
	pos, err := PositionFromFEN("4k2r/8/8/8/8/8/8/4K2R w Kk - 0 1")
	require.NoError(t, err)
	m, err := pos.UCIToMove("h1h8")
	require.NoError(t, err)
	pos.DoMove(m)
	require.Equal(t, NoCastle, pos.Castle&(WhiteOO|BlackOO))
}

func TestEnpassantCapture(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	m, err := pos.UCIToMove("e5d6")
	require.NoError(t, err)
	require.Equal(t, Enpassant, m.MoveType)
	require.Equal(t, BlackPawn, m.Capture)
	pos.DoMove(m)
	require.True(t, pos.IsEmpty(SquareD5))
	require.Equal(t, WhitePawn, pos.Get(SquareD6))
}

func TestThreeFoldRepetition(t *testing.T) {
	pos := NewPosition()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 2; i++ {
		for _, s := range shuffle {
			m, err := pos.UCIToMove(s)
			require.NoError(t, err)
			pos.DoMove(m)
		}
	}
	require.True(t, pos.IsThreeFoldRepetition())
}

func TestCheckDetection(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, pos.IsChecked(White))
	require.False(t, pos.IsChecked(Black))
}

func TestPerftStartPosition(t *testing.T) {
	pos := NewPosition()
	require.Equal(t, uint64(1), Perft(pos, 0))
	require.Equal(t, uint64(20), Perft(pos, 1))
	require.Equal(t, uint64(400), Perft(pos, 2))
	require.Equal(t, uint64(8902), Perft(pos, 3))
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := PositionFromFEN(FENKiwipete)
	require.NoError(t, err)
	require.Equal(t, uint64(48), Perft(pos, 1))
	require.Equal(t, uint64(2039), Perft(pos, 2))
}
