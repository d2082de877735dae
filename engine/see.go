// see.go is the static exchange evaluator: given a capture on a
// square, predicts whether the side to move nets at least a threshold
// of material once the whole forced capture sequence on that square
// plays out optimally, without actually making any moves.
//
// Uses the classic "swap" / gain-array algorithm: record the material
// gain at each ply of the forced sequence, then fold the array
// backward with a minimax (each side only continues capturing if doing
// so improves on stopping), which yields the outcome of optimal play
// by both sides without search.
// https://www.chessprogramming.org/SEE_-_The_Swap_Algorithm
package engine

import "github.com/fsoonaye/chimp/board"

// seeValue is the material value used only for exchange evaluation,
// distinct from the evaluator's tapered material values.
var seeValue = [board.FigureArraySize + 1]Score{0, 100, 320, 330, 500, 900, 0}

var seeOrder = [6]board.Figure{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King}

// pickLVA returns the square of the least valuable piece of figure fig
// among the attackers bitboard, for whichever figure appears first in
// ascending-value order.
func pickLVA(pos *board.Position, side board.Color, attackers board.Bitboard) (board.Square, board.Figure, bool) {
	for _, fig := range seeOrder {
		if bb := attackers & pos.ByPiece(side, fig); bb != 0 {
			return bb.LSB().AsSquare(), fig, true
		}
	}
	return 0, board.NoFigure, false
}

// SEE reports whether the side to move gains at least threshold
// centipawns by playing m and letting the capture sequence on m.To
// play out optimally for both sides.
func SEE(pos *board.Position, m board.Move, threshold Score) bool {
	to := m.To
	us := pos.ToMove

	victimFig := board.NoFigure
	if m.Capture != board.NoPiece {
		victimFig = m.Capture.Figure()
	}

	occ := pos.Occupancy() &^ m.From.Bitboard()
	if m.MoveType == board.Enpassant {
		capSq := to.Relative(-1, 0)
		if us == board.Black {
			capSq = to.Relative(1, 0)
		}
		occ &^= capSq.Bitboard()
	}

	gain := make([]Score, 1, 32)
	gain[0] = seeValue[victimFig]
	curFig := m.Piece().Figure()
	side := us.Other()

	for {
		// Intersect with occ: attackersTo's non-sliding patterns (pawn,
		// knight, king) ignore occupancy entirely, so a piece already
		// removed from this hypothetical sequence would otherwise keep
		// reappearing as its own attacker.
		attackers := pos.AttackersTo(to, side, occ) & occ
		if attackers == 0 {
			break
		}
		sq, fig, ok := pickLVA(pos, side, attackers)
		if !ok {
			break
		}
		reducedOcc := occ &^ sq.Bitboard()
		if fig == board.King && pos.AttackersTo(to, side.Other(), reducedOcc)&reducedOcc != 0 {
			// the king cannot recapture into a square the opponent still
			// defends: this side has no usable attacker left.
			break
		}
		gain = append(gain, seeValue[curFig]-gain[len(gain)-1])
		occ &^= sq.Bitboard()
		curFig = fig
		side = side.Other()
	}

	for d := len(gain) - 1; d > 0; d-- {
		if neg := -gain[d]; neg < gain[d-1] {
			gain[d-1] = neg
		}
	}
	return gain[0] >= threshold
}
