// moves.go converts between Move and the UCI long algebraic notation
// GUIs speak ("e2e4", "h7h8q").
package board

import "fmt"

// MoveToUCI renders m in UCI long algebraic notation.
func (pos *Position) MoveToUCI(m Move) string {
	return m.String()
}

// UCIToMove parses a move string such as "e2e4" or "h7h8q" in the
// context of pos, filling in capture/castle/en-passant/promotion intent
// by consulting the current board. The result is not guaranteed legal;
// callers should check it against LegalMoves.
func (pos *Position) UCIToMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("board: malformed UCI move %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return Move{}, err
	}

	pi := pos.Get(from)
	moveType := Normal
	capture := pos.Get(to)
	target := pi

	if pi.Figure() == Pawn && to == pos.Enpassant && pos.Enpassant != NoSquare {
		moveType = Enpassant
		capture = ColorFigure(pos.ToMove.Other(), Pawn)
	}
	if pi.Figure() == King && from == SquareE1 && (to == SquareC1 || to == SquareG1) {
		moveType = Castling
	}
	if pi.Figure() == King && from == SquareE8 && (to == SquareC8 || to == SquareG8) {
		moveType = Castling
	}
	if pi.Figure() == Pawn && len(s) == 5 {
		fig, ok := symbolToFigure[rune(s[4])]
		if !ok {
			return Move{}, fmt.Errorf("board: unknown promotion piece %q", s[4])
		}
		moveType = Promotion
		target = ColorFigure(pos.ToMove, fig)
	}

	return pos.fix(Move{
		From: from, To: to, MoveType: moveType,
		Capture: capture, Target: target,
	}), nil
}
