package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeManagerMoveTimeBudget(t *testing.T) {
	tm := NewTimeManager(TimeParams{MoveTime: 100 * time.Millisecond}, true)
	require.Equal(t, 100*time.Millisecond-moveOverhead, tm.optimum)
	require.Equal(t, tm.optimum, tm.maximum)
}

func TestTimeManagerInfiniteNeverStops(t *testing.T) {
	tm := NewTimeManager(TimeParams{Infinite: true}, true)
	require.True(t, tm.ShouldStartDepth())
	require.False(t, tm.ShouldStop(1<<20))
}

func TestTimeManagerStopForcesHalt(t *testing.T) {
	tm := NewTimeManager(TimeParams{WTime: time.Second, MovesToGo: 30}, true)
	require.False(t, tm.Stopped())
	tm.Stop()
	require.True(t, tm.Stopped())
	require.True(t, tm.ShouldStop(0))
	require.False(t, tm.ShouldStartDepth())
}

func TestTimeManagerSuddenDeathUsesDefaultMovesToGo(t *testing.T) {
	tm := NewTimeManager(TimeParams{WTime: 10 * time.Second}, true)
	require.Positive(t, tm.optimum)
	require.Greater(t, tm.maximum, tm.optimum)
}

func TestTimeManagerNodeLimitStopsAtBudget(t *testing.T) {
	tm := NewTimeManager(TimeParams{Nodes: 1000}, true)
	require.False(t, tm.ShouldStop(999))
	require.True(t, tm.ShouldStop(1000))
	require.True(t, tm.Stopped())
}

func TestTimeManagerNodeLimitIgnoresWallClock(t *testing.T) {
	tm := NewTimeManager(TimeParams{Nodes: 1 << 30}, true)
	require.True(t, tm.ShouldStartDepth())
	require.False(t, tm.ShouldStop(0))
}
