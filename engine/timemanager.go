// timemanager.go turns a UCI "go" command's time parameters into a
// concrete soft/hard budget for one search, and answers the question
// the search loop asks after every iteration and every few thousand
// nodes: has that budget run out.
package engine

import (
	"sync/atomic"
	"time"
)

// moveOverhead is shaved off the available budget to cover the
// latency of actually transmitting the chosen move back to the GUI.
const moveOverhead = 10 * time.Millisecond

// TimeManager turns the remaining clock, increment and moves-to-go
// into a soft (optimum) and hard (maximum) deadline, and is polled
// from the search loop to decide when to abandon the current
// iteration.
type TimeManager struct {
	start   time.Time
	optimum time.Duration
	maximum time.Duration

	infinite  bool
	fixed     bool // fixed node/depth search: only Stop() and the node limit apply
	nodeLimit uint64

	stopped atomic.Bool
}

// TimeParams mirrors the fields a UCI "go" command can set.
type TimeParams struct {
	WTime, BTime time.Duration
	WInc, BInc   time.Duration
	MovesToGo    int // 0 means unknown: sudden death
	MoveTime     time.Duration
	Infinite     bool
	DepthOnly    bool
	Nodes        uint64 // 0 means unlimited
}

// NewTimeManager computes the soft and hard budgets for the side to
// move and starts the clock immediately; the caller should construct
// it as close as possible to actually starting the search.
func NewTimeManager(p TimeParams, white bool) *TimeManager {
	tm := &TimeManager{start: time.Now(), infinite: p.Infinite, fixed: p.DepthOnly, nodeLimit: p.Nodes}
	if p.Infinite || p.DepthOnly {
		tm.optimum, tm.maximum = time.Duration(1<<62), time.Duration(1<<62)
		return tm
	}
	// "go nodes N" with no clock given bounds the search by node count
	// alone; without this, a zero wtime/btime would otherwise compute
	// a near-zero wall-clock budget and cut the search off immediately.
	if p.Nodes > 0 && p.WTime == 0 && p.BTime == 0 && p.MoveTime == 0 {
		tm.fixed = true
		tm.optimum, tm.maximum = time.Duration(1<<62), time.Duration(1<<62)
		return tm
	}
	if p.MoveTime > 0 {
		budget := p.MoveTime - moveOverhead
		if budget < 0 {
			budget = 0
		}
		tm.optimum, tm.maximum = budget, budget
		return tm
	}

	remaining, inc := p.BTime, p.BInc
	if white {
		remaining, inc = p.WTime, p.WInc
	}

	mtg := p.MovesToGo
	if mtg <= 0 {
		mtg = 30 // sudden death: assume enough moves remain to pace conservatively
	}

	total := remaining + time.Duration(mtg)*inc/2 - time.Duration(mtg)*moveOverhead
	if total < time.Millisecond {
		total = time.Millisecond
	}

	tm.optimum = total / time.Duration(mtg)
	tm.maximum = tm.optimum * 4
	if tm.maximum > remaining-moveOverhead {
		tm.maximum = remaining - moveOverhead
	}
	if tm.maximum < tm.optimum {
		tm.maximum = tm.optimum
	}
	return tm
}

// Elapsed returns how long the search has been running.
func (tm *TimeManager) Elapsed() time.Duration {
	return time.Since(tm.start)
}

// ShouldStartDepth reports whether there's enough of the soft budget
// left to justify starting another iterative-deepening iteration.
func (tm *TimeManager) ShouldStartDepth() bool {
	if tm.stopped.Load() {
		return false
	}
	if tm.fixed || tm.infinite {
		return true
	}
	return tm.Elapsed() < tm.optimum
}

// pollInterval is a node-count mask: the clock is read only when all
// of its bits are set in the node count, i.e. once every 2048 nodes;
// checking every node would make the clock call dominate.
const pollInterval = 2047

// ShouldStop is called from inside the search loop; nodes is the
// running node count so the expensive clock read only happens once
// every pollInterval+1 nodes. A node limit (UCI "go nodes N") applies
// regardless of the fixed/infinite flags, which only bypass the
// wall-clock deadline.
func (tm *TimeManager) ShouldStop(nodes uint64) bool {
	if tm.stopped.Load() {
		return true
	}
	if tm.nodeLimit > 0 && nodes >= tm.nodeLimit {
		tm.stopped.Store(true)
		return true
	}
	if tm.fixed || tm.infinite {
		return false
	}
	if nodes&pollInterval != pollInterval {
		return false
	}
	if tm.Elapsed() >= tm.maximum {
		tm.stopped.Store(true)
		return true
	}
	return false
}

// Stop forces the search to abandon as soon as it next checks in,
// used for the UCI "stop" command.
func (tm *TimeManager) Stop() {
	tm.stopped.Store(true)
}

// Stopped reports whether the manager has already called a halt.
func (tm *TimeManager) Stopped() bool {
	return tm.stopped.Load()
}
