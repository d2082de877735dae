// heuristics.go holds every piece of per-search, non-positional state
// the search driver consults to order moves and shape its tree without
// looking at the board: the triangular principal-variation table,
// killer moves, butterfly history, and the late-move-reduction table.
package engine

import (
	"math"

	"github.com/fsoonaye/chimp/board"
)

// triangularPV stores the principal variation as it is discovered.
// pvLine[ply] holds the continuation from that ply onward; each node
// that stays on the PV copies its child's line in after its own move,
// the standard triangular array construction.
type triangularPV struct {
	line   [MaxPly][MaxPly]board.Move
	length [MaxPly]int
}

func (t *triangularPV) reset(ply int) {
	t.length[ply] = ply
}

// update records m as the move played at ply and appends the
// continuation already stored for ply+1.
func (t *triangularPV) update(ply int, m board.Move) {
	t.line[ply][ply] = m
	for next := ply + 1; next < t.length[ply+1]; next++ {
		t.line[ply][next] = t.line[ply+1][next]
	}
	t.length[ply] = t.length[ply+1]
	if t.length[ply] <= ply {
		t.length[ply] = ply + 1
	}
}

// principalVariation returns the line found starting at the root.
func (t *triangularPV) principalVariation() []board.Move {
	n := t.length[0]
	moves := make([]board.Move, n)
	copy(moves, t.line[0][:n])
	return moves
}

// killerTable remembers, per ply, the last two quiet moves that caused
// a beta cutoff. Tried early on siblings since a quiet move that
// refutes one position often refutes a similar one.
type killerTable [MaxPly][2]board.Move

func (k *killerTable) add(ply int, m board.Move) {
	if k[ply][0] == m {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

func (k *killerTable) isKiller(ply int, m board.Move) bool {
	return m == k[ply][0] || m == k[ply][1]
}

// historyTable is the butterfly history: a score per (side, from, to)
// that accumulates whenever a quiet move causes a cutoff, and is
// pushed down for quiet moves tried and rejected at the same node so the
// table tracks relative, not absolute, move quality.
const maxHistoryValue = 1 << 14

type historyTable [board.ColorArraySize][64][64]int32

// historyBonus returns the "gravity" bonus applied for a cutoff found at
// depth: grows with depth squared, clamped so a single cutoff can
// never saturate the table.
func historyBonus(depth int) int32 {
	b := int32(depth * depth)
	if b > maxHistoryValue {
		b = maxHistoryValue
	}
	return b
}

// update applies the gravity formula to every move tried at this node:
// best gets a positive bonus, every other quiet move tried and
// rejected gets the same bonus subtracted, both scaled down as the
// table fills so scores stay bounded.
func (h *historyTable) update(co board.Color, best board.Move, tried []board.Move, depth int) {
	bonus := historyBonus(depth)
	h.add(co, best, bonus)
	for _, m := range tried {
		if m == best {
			continue
		}
		h.add(co, m, -bonus)
	}
}

func (h *historyTable) add(co board.Color, m board.Move, bonus int32) {
	cur := &h[co][m.From][m.To]
	*cur += bonus - int32(int64(*cur)*int64(abs32(bonus))/maxHistoryValue)
}

func (h *historyTable) get(co board.Color, m board.Move) int32 {
	return h[co][m.From][m.To]
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// lmrTable precomputes late-move reductions as a function of depth and
// move index so the search loop never calls math.Log on the hot path.
var lmrTable [MaxPly][MaxMoves]int

func init() {
	for d := 1; d < MaxPly; d++ {
		for m := 1; m < MaxMoves; m++ {
			r := 1 + math.Log(float64(d))*math.Log(float64(m))/2.25
			lmrTable[d][m] = int(r)
		}
	}
}
