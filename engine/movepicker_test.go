package engine

import (
	"testing"

	"github.com/fsoonaye/chimp/board"
	"github.com/stretchr/testify/require"
)

func TestMovePickerReturnsTTMoveFirst(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)

	var ttMove board.Move
	for _, m := range pos.LegalMoves() {
		if m.From == board.SquareD2 && m.To == board.SquareD4 {
			ttMove = m
		}
	}
	require.NotEqual(t, board.Move{}, ttMove)

	var killers killerTable
	var history historyTable
	mp := newMovePicker(pos, 0, ttMove, &killers, &history)
	first, ok := mp.next()
	require.True(t, ok)
	require.Equal(t, ttMove, first)
}

func TestMovePickerExhaustsAllLegalMoves(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	require.NoError(t, err)

	var killers killerTable
	var history historyTable
	mp := newMovePicker(pos, 0, board.Move{}, &killers, &history)

	count := 0
	for {
		_, ok := mp.next()
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, len(pos.LegalMoves()), count)
}

func TestMovePickerOrdersCapturesByMVVLVA(t *testing.T) {
	pos, err := board.PositionFromFEN("4k3/8/8/3qr3/4P3/8/8/K7 w - - 0 1")
	require.NoError(t, err)

	var killers killerTable
	var history historyTable
	mp := newMovePicker(pos, 0, board.Move{}, &killers, &history)

	first, ok := mp.next()
	require.True(t, ok)
	require.Equal(t, board.SquareD5, first.To, "capturing the queen should be ranked first")
}
