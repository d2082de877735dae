// search.go is the driver: iterative deepening with an aspiration
// window around the previous iteration's score, feeding a negamax
// alpha-beta search that narrows into quiescence search once the
// depth budget runs out. Every pruning and reduction decision lives
// here, gated by node kind and the heuristic tables in heuristics.go.
package engine

import (
	"github.com/fsoonaye/chimp/board"
)

// searchState is the per-search scratch the recursive routines share:
// one of these is created per call to Search and threaded through by
// pointer, never by value, since the node count and the PV/killer/
// history tables accumulate across the whole tree.
type searchState struct {
	pos     *board.Position
	tt      *TT
	tm      *TimeManager
	pv      triangularPV
	killers killerTable
	history historyTable

	nodes uint64
	// staticEval records the static evaluation computed at each ply
	// (left untouched at plies searched while in check).
	staticEval [MaxPly]Score
}

// SearchResult holds the best move, score, PV and node count of one
// iterative-deepening iteration, reported to the UCI layer after every
// depth.
type SearchResult struct {
	Move  board.Move
	Score Score
	Depth int
	Nodes uint64
	PV    []board.Move
}

// InfoFunc receives one SearchResult per completed iterative-deepening
// depth, used by the UCI layer to emit "info depth ... pv ..." lines.
type InfoFunc func(SearchResult)

// Search runs iterative deepening up to maxDepth (or until the time
// manager says to stop) and returns the result of the last completed
// iteration. An interrupted iteration is discarded, except at depth 1,
// whose partial result is kept so there is always a move to report.
func Search(pos *board.Position, tt *TT, tm *TimeManager, maxDepth int, onInfo InfoFunc) SearchResult {
	ss := &searchState{pos: pos, tt: tt, tm: tm}

	var best SearchResult
	score := -ValueInf
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if !tm.ShouldStartDepth() {
			break
		}
		ss.pv = triangularPV{}

		iterScore := aspirationWindow(ss, depth, score)
		if tm.Stopped() && depth > 1 {
			break
		}
		score = iterScore

		pv := ss.pv.principalVariation()
		result := SearchResult{Score: score, Depth: depth, Nodes: ss.nodes, PV: pv}
		if len(pv) > 0 {
			result.Move = pv[0]
		}
		best = result
		if onInfo != nil {
			onInfo(result)
		}
	}
	return best
}

// aspirationWindow searches depth with a window centered on the
// previous iteration's score, re-searching with a wider window
// whenever the result falls outside it. Shallow depths always use the
// full window since there isn't yet a reliable previous score.
func aspirationWindow(ss *searchState, depth int, prevScore Score) Score {
	alpha, beta := -ValueInf, ValueInf
	delta := AspirationDelta

	if depth >= 5 {
		alpha = prevScore - delta
		beta = prevScore + delta
	}

	for {
		if alpha < -3500 {
			alpha = -ValueInf
		}
		if beta > 3500 {
			beta = ValueInf
		}

		score := negamax(ss, alpha, beta, depth, 0, Root)
		if ss.tm.Stopped() {
			return score
		}

		if score <= alpha {
			beta = (alpha + beta) / 2
			alpha -= delta
			if alpha < -ValueInf {
				alpha = -ValueInf
			}
			delta += delta / 2
		} else if score >= beta {
			beta += delta
			if beta > ValueInf {
				beta = ValueInf
			}
			delta += delta / 2
		} else {
			return score
		}
	}
}

// negamax searches one node. alpha/beta and the returned score are
// always from the perspective of the side to move at this node.
func negamax(ss *searchState, alpha, beta Score, depth, ply int, kind NodeKind) Score {
	if ss.tm.ShouldStop(ss.nodes) {
		return 0
	}

	isRoot := kind == Root
	isPV := kind != NonPV
	pos := ss.pos
	inCheck := pos.IsChecked(pos.ToMove)

	ss.pv.reset(ply)

	if !isRoot {
		if pos.IsThreeFoldRepetition() {
			return Score(-1 + int(ss.nodes&2))
		}
		if pos.IsFiftyMoveDraw() {
			return 0
		}

		if a := MatedIn(ply); a > alpha {
			alpha = a
		}
		if b := MateIn(ply + 1); b < beta {
			beta = b
		}
		if alpha >= beta {
			return alpha
		}
	}

	if inCheck {
		depth++
	}
	if depth <= 0 || ply >= MaxPly-1 {
		return quiescence(ss, alpha, beta, ply, kind)
	}

	key := pos.Zobrist
	entry, hit := ss.tt.Probe(key)
	ttMove := board.Move{}
	ttScore := Score(ValueNone)
	if hit {
		ttMove = entry.Move()
		ttScore = entry.Score()
		if IsMate(ttScore) {
			if ttScore > 0 {
				ttScore -= Score(ply)
			} else {
				ttScore += Score(ply)
			}
		}
	}

	if !isRoot {
		if hit && ttScore != ValueNone && entry.Depth() >= depth {
			switch entry.Bound() {
			case BoundExact:
				return ttScore
			case BoundLower:
				if ttScore > alpha {
					alpha = ttScore
				}
			case BoundUpper:
				if ttScore < beta {
					beta = ttScore
				}
			}
			if alpha >= beta {
				return ttScore
			}
		}

		if !hit {
			reduce := 0
			if depth >= 3 {
				reduce++
			}
			if isPV {
				reduce++
			}
			depth -= reduce
		}
		if depth <= 0 {
			return quiescence(ss, alpha, beta, ply, kind)
		}
	}

	staticEval := Score(ValueNone)
	if !inCheck {
		if hit {
			staticEval = ttScore
		} else {
			staticEval = Evaluate(pos)
		}
		ss.staticEval[ply] = staticEval
	}

	if !isRoot && !isPV && !inCheck {
		// RAZORING: too far below alpha to be worth a full search; confirm
		// with quiescence rather than trust the static estimate outright.
		if depth < RazorDepth && staticEval+RazorMargin < alpha {
			return quiescence(ss, alpha, beta, ply, NonPV)
		}

		// REVERSE FUTILITY PRUNING: even the worst case clears beta.
		if ttMove == (board.Move{}) || ttMove.IsQuiet() {
			margin := ReverseFutilityMargin * Score(depth)
			if staticEval >= beta+margin {
				return staticEval
			}
		}

		// NULL MOVE PRUNING: if passing still clears beta, the position
		// is good enough that a real move only makes it better.
		if depth >= NMPMinDepth && staticEval >= beta && !isZugzwangProne(pos) {
			reduction := NMPBaseReduction
			if r := depth / NMPDepthDivisor; r < NMPDepthCap {
				reduction += r
			} else {
				reduction += NMPDepthCap
			}
			if r := int(staticEval-beta) / NMPEvalDivisor; r < NMPEvalCap {
				reduction += r
			} else {
				reduction += NMPEvalCap
			}

			savedEnpassant := pos.Enpassant
			pos.SetEnpassantSquare(board.NoSquare)
			pos.SetSideToMove(pos.ToMove.Other())
			nullScore := -negamax(ss, -beta, -beta+1, depth-reduction, ply+1, NonPV)
			pos.SetSideToMove(pos.ToMove.Other())
			pos.SetEnpassantSquare(savedEnpassant)

			if nullScore >= beta {
				if IsMate(nullScore) {
					return beta
				}
				return nullScore
			}
		}
	}

	mp := newMovePicker(pos, ply, ttMove, &ss.killers, &ss.history)

	bestScore := -ValueInf
	bestMove := board.Move{}
	moveCount := 0
	quietCount := 0
	var triedQuiet []board.Move

	for {
		m, ok := mp.next()
		if !ok {
			break
		}
		isCapture := !m.IsQuiet()
		moveCount++
		if isCapture {
			// captures don't count toward the quiet-move-pruning budget
		} else {
			quietCount++
			triedQuiet = append(triedQuiet, m)
		}

		newDepth := depth - 1

		if !isRoot && bestScore > ValueMatedInPly && !inCheck && !isCapture {
			if !isPV && depth <= LMPDepthCap && quietCount > LMPQuietBase+depth*depth {
				continue
			}
		}

		ss.nodes++
		pos.DoMove(m)

		reduction := 0
		if depth >= 3 && moveCount > 3+boolInt(isPV)*2 && !inCheck && m.MoveType != board.Promotion &&
			!ss.killers.isKiller(ply, m) {
			reduction = lmrTable[clampInt(depth, 0, MaxPly-1)][clampInt(moveCount, 0, MaxMoves-1)]
		}

		var score Score
		if reduction > 0 {
			reducedDepth := clampInt(newDepth-reduction, 1, newDepth+1)
			score = -negamax(ss, -alpha-1, -alpha, reducedDepth, ply+1, NonPV)
			if score > alpha && reducedDepth < newDepth {
				score = -negamax(ss, -alpha-1, -alpha, newDepth, ply+1, NonPV)
			}
		} else if !isPV || moveCount > 1 {
			score = -negamax(ss, -alpha-1, -alpha, newDepth, ply+1, NonPV)
		}
		if isPV && (moveCount == 1 || (score > alpha && score < beta)) {
			score = -negamax(ss, -beta, -alpha, newDepth, ply+1, PV)
		}

		pos.UndoMove(m)

		if ss.tm.Stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				alpha = score
				bestMove = m
				ss.pv.update(ply, m)
			}
		}
		if score >= beta {
			if !isCapture {
				ss.killers.add(ply, m)
				ss.history.update(pos.ToMove, m, triedQuiet, depth)
			}
			break
		}
	}

	if moveCount == 0 {
		if inCheck {
			return MatedIn(ply)
		}
		return 0
	}

	bound := BoundUpper
	if bestScore >= beta {
		bound = BoundLower
	} else if isPV && bestMove != (board.Move{}) {
		bound = BoundExact
	}
	storeScore := bestScore
	if IsMate(storeScore) {
		if storeScore > 0 {
			storeScore += Score(ply)
		} else {
			storeScore -= Score(ply)
		}
	}
	ss.tt.Store(key, depth, storeScore, staticEval, bestMove, bound)

	return bestScore
}

// quiescence resolves captures until the position is quiet, so the
// search never evaluates a position in the middle of a capture
// sequence. Only captures and promotions are searched, even when the
// side to move is in check; in check they skip the SEE filter.
func quiescence(ss *searchState, alpha, beta Score, ply int, kind NodeKind) Score {
	if ss.tm.ShouldStop(ss.nodes) {
		return 0
	}
	if ply >= MaxPly-1 {
		return Evaluate(ss.pos)
	}

	pos := ss.pos
	isPV := kind != NonPV

	if pos.IsThreeFoldRepetition() {
		return Score(-1 + int(ss.nodes&2))
	}

	key := pos.Zobrist
	entry, hit := ss.tt.Probe(key)
	if hit && !isPV {
		ttScore := entry.Score()
		switch entry.Bound() {
		case BoundExact:
			return ttScore
		case BoundLower:
			if ttScore >= beta {
				return ttScore
			}
		case BoundUpper:
			if ttScore <= alpha {
				return ttScore
			}
		}
	}

	bestScore := Evaluate(pos)
	if bestScore >= beta {
		return bestScore
	}
	if bestScore > alpha {
		alpha = bestScore
	}

	legal := pos.LegalMoves()
	bestMove := board.Move{}
	inCheck := pos.IsChecked(pos.ToMove)

	for _, m := range legal {
		if m.IsQuiet() {
			continue
		}
		if !inCheck && !SEE(pos, m, 1) {
			continue
		}

		ss.nodes++
		pos.DoMove(m)
		score := -quiescence(ss, -beta, -alpha, ply+1, oppositeKind(kind))
		pos.UndoMove(m)

		if ss.tm.Stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				alpha = score
				bestMove = m
			}
		}
		if score >= beta {
			break
		}
	}

	bound := BoundUpper
	if bestScore >= beta {
		bound = BoundLower
	}
	ss.tt.Store(key, DepthQS, bestScore, ValueNone, bestMove, bound)

	return bestScore
}

func oppositeKind(kind NodeKind) NodeKind {
	if kind == NonPV {
		return NonPV
	}
	return PV
}

// isZugzwangProne reports whether the side to move has nothing but
// pawns and a king, the classic case where passing can't be assumed
// safe and null-move pruning must be skipped.
func isZugzwangProne(pos *board.Position) bool {
	us := pos.ToMove
	nonPawns := pos.ByPiece(us, board.Knight) | pos.ByPiece(us, board.Bishop) |
		pos.ByPiece(us, board.Rook) | pos.ByPiece(us, board.Queen)
	return nonPawns == 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

