package engine

import (
	"github.com/fsoonaye/chimp/board"
)

// DefaultHashSizeMB is the transposition table size used until a UCI
// "setoption name Hash" changes it.
const DefaultHashSizeMB = 64

// Engine owns the pieces that must survive across an entire UCI
// session: the transposition table (sized once, reused across every
// "go"), and the position it is currently asked to think about.
type Engine struct {
	TT  *TT
	pos *board.Position
}

// NewEngine builds an Engine with a freshly sized transposition table
// and the standard starting position loaded.
func NewEngine() *Engine {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	if err != nil {
		panic(err) // the start position FEN is a compile-time constant
	}
	return &Engine{TT: NewTT(DefaultHashSizeMB), pos: pos}
}

// SetPosition replaces the position the engine will search from.
func (e *Engine) SetPosition(pos *board.Position) {
	e.pos = pos
}

// Position returns the position the engine is currently set to.
func (e *Engine) Position() *board.Position {
	return e.pos
}

// SetHashSize resizes the transposition table, discarding its
// contents; meant to be called before a game starts, not mid-search.
func (e *Engine) SetHashSize(sizeMB int) {
	e.TT.Resize(sizeMB)
}

// NewGame clears all state that must not leak across games: the
// transposition table and, implicitly through a fresh Search call,
// every per-search heuristic table.
func (e *Engine) NewGame() {
	e.TT.Clear()
}

// Go runs a search under the given limits and reports one
// SearchResult per completed iterative-deepening depth.
func (e *Engine) Go(tm *TimeManager, maxDepth int, onInfo InfoFunc) SearchResult {
	return Search(e.pos, e.TT, tm, maxDepth, onInfo)
}
