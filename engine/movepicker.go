// movepicker.go orders the moves at a node. Every legal move is
// generated and scored when the picker is built, but moves are then
// selected best-first one at a time, so a beta cutoff on the first
// capture never pays for sorting quiets.
package engine

import (
	"github.com/fsoonaye/chimp/board"
)

// Score bands used to order stages against each other; SCORE_CAPTURE
// and above are disjoint from the butterfly history range so a single
// sort key orders every stage with no special-casing at pop time.
const (
	scoreTT      = 8_000_000
	scoreCapture = 7_000_000
	scoreKiller1 = 6_000_000
	scoreKiller2 = 5_000_000
)

// mvvlvaValue ranks victims well above attackers so any capture of a
// more valuable piece sorts ahead of any capture of a less valuable
// one, regardless of what's doing the capturing. Ranked by figure
// ordinal (Pawn..King), not centipawn value, so the cheapest attacker
// always ranks best among captures of the same victim.
func mvvlvaValue(victim, attacker board.Figure) int32 {
	return 6*(int32(victim)+1) - int32(attacker)
}

type scoredMove struct {
	move  board.Move
	score int32
}

// movePicker orders one node's legal moves into TT move, then
// captures (MVV-LVA), then killers, then quiets (history), matching
// the stage order a well-tuned move ordering follows: moves most
// likely to cause a cutoff come first so alpha-beta prunes earlier.
type movePicker struct {
	moves []scoredMove
	idx   int
}

func newMovePicker(pos *board.Position, ply int, ttMove board.Move, killers *killerTable, history *historyTable) *movePicker {
	legal := pos.LegalMoves()
	mp := &movePicker{moves: make([]scoredMove, 0, len(legal))}

	for _, m := range legal {
		var s int32
		switch {
		case m == ttMove:
			s = scoreTT
		case !m.IsQuiet():
			s = scoreCapture + mvvlvaValue(m.Capture.Figure(), m.Piece().Figure())
		case killers.isKiller(ply, m):
			if m == killers[ply][0] {
				s = scoreKiller1
			} else {
				s = scoreKiller2
			}
		default:
			s = history.get(pos.ToMove, m)
		}
		mp.moves = append(mp.moves, scoredMove{m, s})
	}
	return mp
}

// next returns the highest-scored move not yet returned (a selection
// step over the remaining moves), or the zero Move once every legal
// move has been returned.
func (mp *movePicker) next() (board.Move, bool) {
	if mp.idx >= len(mp.moves) {
		return board.Move{}, false
	}
	best := mp.idx
	for i := mp.idx + 1; i < len(mp.moves); i++ {
		if mp.moves[i].score > mp.moves[best].score {
			best = i
		}
	}
	mp.moves[mp.idx], mp.moves[best] = mp.moves[best], mp.moves[mp.idx]
	m := mp.moves[mp.idx].move
	mp.idx++
	return m, true
}
