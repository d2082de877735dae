package board

import (
	"fmt"
	"strconv"
	"strings"
)

// NoSquare marks the absence of an en-passant target. SquareA1 can
// never itself be an en-passant square, so it doubles as the sentinel,
// matching how the move-string conversion already treats it.
const NoSquare = SquareA1

// Position is a complete, self-contained board state: piece placement,
// side to move, castling rights, en-passant target, running Zobrist
// key, half-move clock (for the fifty-move rule) and enough move
// history to answer threefold-repetition queries.
type Position struct {
	ByFigure [FigureArraySize]Bitboard
	ByColor  [ColorArraySize]Bitboard

	ToMove         Color
	Castle         Castle
	Enpassant      Square
	Zobrist        uint64
	HalfmoveClock  int
	FullmoveNumber int

	// history records the Zobrist key of the position set up from FEN
	// and after every move played since, used for threefold-repetition
	// detection. Repetition lookups only go back HalfmoveClock plies,
	// since no earlier position can recur across an irreversible move
	// (capture or pawn move).
	history []uint64
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return pos
}

// PositionFromFEN parses Forsyth-Edwards Notation into a Position.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: malformed FEN %q", fen)
	}
	pos := &Position{Enpassant: NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: malformed FEN piece placement %q", fields[0])
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pi, ok := symbolToPiece[byte(c)]
			if !ok {
				return nil, fmt.Errorf("board: unknown piece symbol %q", c)
			}
			if file >= 8 {
				return nil, fmt.Errorf("board: rank %q overflows the board", rankStr)
			}
			pos.Put(RankFile(rank, file), pi)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("board: rank %q does not cover 8 files", rankStr)
		}
	}

	switch fields[1] {
	case "w":
		pos.SetSideToMove(White)
	case "b":
		pos.SetSideToMove(Black)
	default:
		return nil, fmt.Errorf("board: unknown side to move %q", fields[1])
	}

	var castle Castle
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				castle |= WhiteOO
			case 'Q':
				castle |= WhiteOOO
			case 'k':
				castle |= BlackOO
			case 'q':
				castle |= BlackOOO
			default:
				return nil, fmt.Errorf("board: unknown castling right %q", c)
			}
		}
	}
	pos.SetCastlingAbility(castle)

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: bad en-passant field %q: %w", fields[3], err)
		}
		pos.SetEnpassantSquare(sq)
	}

	pos.HalfmoveClock = 0
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			pos.HalfmoveClock = n
		}
	}
	pos.FullmoveNumber = 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			pos.FullmoveNumber = n
		}
	}
	pos.history = append(pos.history, pos.Zobrist)
	return pos, nil
}

// String renders the position back to FEN.
func (pos *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pi := pos.Get(RankFile(rank, file))
			if pi == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceToSymbol[pi])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if pos.ToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(pos.Castle.String())
	sb.WriteByte(' ')
	if pos.Enpassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.Enpassant.String())
	}
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)
	return sb.String()
}

// ByPiece returns the bitboard of pieces of the given color and figure.
func (pos *Position) ByPiece(co Color, fig Figure) Bitboard {
	return pos.ByColor[co] & pos.ByFigure[fig]
}

// IsEmpty reports whether sq holds no piece.
func (pos *Position) IsEmpty(sq Square) bool {
	return (pos.ByColor[White]|pos.ByColor[Black])&sq.Bitboard() == 0
}

// GetColor returns the color occupying sq, or NoColor if empty.
func (pos *Position) GetColor(sq Square) Color {
	bb := sq.Bitboard()
	switch {
	case pos.ByColor[White]&bb != 0:
		return White
	case pos.ByColor[Black]&bb != 0:
		return Black
	default:
		return NoColor
	}
}

// GetFigure returns the figure occupying sq, or NoFigure if empty.
func (pos *Position) GetFigure(sq Square) Figure {
	bb := sq.Bitboard()
	for fig := FigureMinValue; fig <= FigureMaxValue; fig++ {
		if pos.ByFigure[fig]&bb != 0 {
			return fig
		}
	}
	return NoFigure
}

// Get returns the piece occupying sq, or NoPiece if empty.
func (pos *Position) Get(sq Square) Piece {
	co := pos.GetColor(sq)
	if co == NoColor {
		return NoPiece
	}
	return ColorFigure(co, pos.GetFigure(sq))
}

// Put places piece pi on sq, updating the Zobrist key. sq must be empty.
func (pos *Position) Put(sq Square, pi Piece) {
	bb := sq.Bitboard()
	pos.ByColor[pi.Color()] |= bb
	pos.ByFigure[pi.Figure()] |= bb
	pos.Zobrist ^= zobristPiece[pi][sq]
}

// Remove clears sq, which must hold pi, updating the Zobrist key.
func (pos *Position) Remove(sq Square, pi Piece) {
	bb := sq.Bitboard()
	pos.ByColor[pi.Color()] &^= bb
	pos.ByFigure[pi.Figure()] &^= bb
	pos.Zobrist ^= zobristPiece[pi][sq]
}

// SetSideToMove updates ToMove, flipping the Zobrist side-to-move key.
func (pos *Position) SetSideToMove(co Color) {
	pos.Zobrist ^= zobristColor[pos.ToMove]
	pos.ToMove = co
	pos.Zobrist ^= zobristColor[pos.ToMove]
}

// SetCastlingAbility overwrites castling rights, updating the Zobrist key.
func (pos *Position) SetCastlingAbility(castle Castle) {
	pos.Zobrist ^= zobristCastle[pos.Castle]
	pos.Castle = castle
	pos.Zobrist ^= zobristCastle[pos.Castle]
}

// SetEnpassantSquare overwrites the en-passant target, updating the
// Zobrist key. Pass NoSquare to clear it.
func (pos *Position) SetEnpassantSquare(sq Square) {
	if pos.Enpassant != NoSquare {
		pos.Zobrist ^= zobristEnpassant[pos.Enpassant]
	}
	pos.Enpassant = sq
	if pos.Enpassant != NoSquare {
		pos.Zobrist ^= zobristEnpassant[pos.Enpassant]
	}
}

// Occupancy returns the bitboard of all occupied squares.
func (pos *Position) Occupancy() Bitboard {
	return pos.ByColor[White] | pos.ByColor[Black]
}

// attackersTo returns every piece of color co attacking sq, given the
// board occupancy (passed in so callers can probe hypothetical
// occupancies, e.g. with a piece removed for SEE).
func (pos *Position) attackersTo(sq Square, co Color, occupancy Bitboard) Bitboard {
	att := BbPawnAttack[co.Other()][sq] & pos.ByPiece(co, Pawn)
	att |= BbKnightAttack[sq] & pos.ByPiece(co, Knight)
	att |= BbKingAttack[sq] & pos.ByPiece(co, King)
	bishops := pos.ByPiece(co, Bishop) | pos.ByPiece(co, Queen)
	att |= BishopMagic[sq].Attack(occupancy) & bishops
	rooks := pos.ByPiece(co, Rook) | pos.ByPiece(co, Queen)
	att |= RookMagic[sq].Attack(occupancy) & rooks
	return att
}

// IsAttackedBy reports whether sq is attacked by any piece of color co.
func (pos *Position) IsAttackedBy(sq Square, co Color) bool {
	return pos.attackersTo(sq, co, pos.Occupancy()) != 0
}

// AttackersTo returns every piece of color co attacking sq given a
// caller-supplied board occupancy, letting SEE-style exchange analysis
// probe hypothetical occupancies without playing any moves.
func (pos *Position) AttackersTo(sq Square, co Color, occupancy Bitboard) Bitboard {
	return pos.attackersTo(sq, co, occupancy)
}

// IsChecked reports whether co's king is currently in check.
func (pos *Position) IsChecked(co Color) bool {
	king := pos.ByPiece(co, King)
	if king == 0 {
		return false
	}
	return pos.IsAttackedBy(king.AsSquare(), co.Other())
}

// fix fills in the From-independent bookkeeping fields of a pseudo-move
// (saved state needed to undo it) before it is returned to a caller
// that only supplied From/To/promotion intent.
func (pos *Position) fix(m Move) Move {
	m.SavedCastle = pos.Castle
	m.SavedEnpassant = pos.Enpassant
	m.SavedHalfmove = int16(pos.HalfmoveClock)
	return m
}

// DoMove plays m, updating all position state including the Zobrist
// key and the repetition history. The caller must ensure m is at least
// pseudo-legal for the current position.
func (pos *Position) DoMove(m Move) {
	pi := pos.Get(m.From)
	us, them := pos.ToMove, pos.ToMove.Other()

	pos.SetEnpassantSquare(NoSquare)
	irreversible := m.Capture != NoPiece || pi.Figure() == Pawn

	switch m.MoveType {
	case Enpassant:
		capSq := m.To.Relative(0, 0)
		if us == White {
			capSq = m.To.Relative(-1, 0)
		} else {
			capSq = m.To.Relative(+1, 0)
		}
		pos.Remove(capSq, m.Capture)
		pos.Remove(m.From, pi)
		pos.Put(m.To, pi)
	case Castling:
		if m.Capture != NoPiece {
			pos.Remove(m.To, m.Capture)
		}
		pos.Remove(m.From, pi)
		pos.Put(m.To, pi)
		rook, rookFrom, rookTo := CastlingRook(m.To)
		pos.Remove(rookFrom, rook)
		pos.Put(rookTo, rook)
	case Promotion:
		if m.Capture != NoPiece {
			pos.Remove(m.To, m.Capture)
		}
		pos.Remove(m.From, pi)
		pos.Put(m.To, m.Target)
	default:
		if m.Capture != NoPiece {
			pos.Remove(m.To, m.Capture)
		}
		pos.Remove(m.From, pi)
		pos.Put(m.To, pi)
	}

	if pi.Figure() == Pawn && m.MoveType == Normal {
		if (us == White && m.To == m.From.Relative(2, 0)) ||
			(us == Black && m.To == m.From.Relative(-2, 0)) {
			epSq := m.From.Relative(1, 0)
			if us == Black {
				epSq = m.From.Relative(-1, 0)
			}
			if BbPawnAttack[us][epSq]&pos.ByPiece(them, Pawn) != 0 {
				pos.SetEnpassantSquare(epSq)
			}
		}
	}

	var castleMask Castle
	switch m.From {
	case SquareA1:
		castleMask |= WhiteOOO
	case SquareE1:
		castleMask |= WhiteOO | WhiteOOO
	case SquareH1:
		castleMask |= WhiteOO
	case SquareA8:
		castleMask |= BlackOOO
	case SquareE8:
		castleMask |= BlackOO | BlackOOO
	case SquareH8:
		castleMask |= BlackOO
	}
	switch m.To {
	case SquareA1:
		castleMask |= WhiteOOO
	case SquareH1:
		castleMask |= WhiteOO
	case SquareA8:
		castleMask |= BlackOOO
	case SquareH8:
		castleMask |= BlackOO
	}
	if castleMask != 0 {
		pos.SetCastlingAbility(pos.Castle &^ castleMask)
	}

	pos.SetSideToMove(them)

	if irreversible {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if us == Black {
		pos.FullmoveNumber++
	}
	pos.history = append(pos.history, pos.Zobrist)
}

// UndoMove reverses the effect of a previous DoMove(m). m must be the
// exact, fixed move object that was played (including its saved
// castling/en-passant/half-move state), and must be the most recent
// move played on pos.
func (pos *Position) UndoMove(m Move) {
	them := pos.ToMove
	us := them.Other()
	pos.SetSideToMove(us)
	if len(pos.history) > 0 {
		pos.history = pos.history[:len(pos.history)-1]
	}
	pos.HalfmoveClock = int(m.SavedHalfmove)
	if us == Black {
		pos.FullmoveNumber--
	}

	switch m.MoveType {
	case Enpassant:
		pi := ColorFigure(us, Pawn)
		pos.Remove(m.To, pi)
		pos.Put(m.From, pi)
		capSq := m.To.Relative(-1, 0)
		if us == Black {
			capSq = m.To.Relative(+1, 0)
		}
		pos.Put(capSq, m.Capture)
	case Castling:
		pi := ColorFigure(us, King)
		pos.Remove(m.To, pi)
		pos.Put(m.From, pi)
		rook, rookFrom, rookTo := CastlingRook(m.To)
		pos.Remove(rookTo, rook)
		pos.Put(rookFrom, rook)
		if m.Capture != NoPiece {
			pos.Put(m.To, m.Capture)
		}
	case Promotion:
		pos.Remove(m.To, m.Target)
		pos.Put(m.From, ColorFigure(us, Pawn))
		if m.Capture != NoPiece {
			pos.Put(m.To, m.Capture)
		}
	default:
		pi := pos.Get(m.To)
		pos.Remove(m.To, pi)
		pos.Put(m.From, pi)
		if m.Capture != NoPiece {
			pos.Put(m.To, m.Capture)
		}
	}

	pos.SetCastlingAbility(m.SavedCastle)
	pos.SetEnpassantSquare(m.SavedEnpassant)
}

// IsThreeFoldRepetition reports whether the current position's Zobrist
// key has occurred at least twice before since the last irreversible
// move, which together with the current occurrence makes three.
func (pos *Position) IsThreeFoldRepetition() bool {
	if len(pos.history) == 0 {
		return false
	}
	key := pos.history[len(pos.history)-1]
	count := 0
	oldest := len(pos.history) - 1 - pos.HalfmoveClock
	for i := len(pos.history) - 3; i >= 0 && i >= oldest; i -= 2 {
		if pos.history[i] == key {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether the half-move clock has reached the
// fifty-move rule's threshold.
func (pos *Position) IsFiftyMoveDraw() bool {
	return pos.HalfmoveClock >= 100
}
