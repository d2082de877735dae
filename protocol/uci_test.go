package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fsoonaye/chimp/engine"
	"github.com/stretchr/testify/require"
)

func newTestUCI() (*UCI, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewUCI(&buf), &buf
}

func TestUCIHandshake(t *testing.T) {
	u, buf := newTestUCI()
	require.NoError(t, u.Execute("uci"))
	out := buf.String()
	require.Contains(t, out, "id name chimp")
	require.Contains(t, out, "option name Hash")
	require.Contains(t, out, "uciok")
}

func TestUCIIsReady(t *testing.T) {
	u, buf := newTestUCI()
	require.NoError(t, u.Execute("isready"))
	require.Equal(t, "readyok\n", buf.String())
}

func TestUCIPositionStartposWithMoves(t *testing.T) {
	u, _ := newTestUCI()
	require.NoError(t, u.Execute("position startpos moves e2e4 e7e5"))
	pos := u.eng.Position()
	require.Equal(t, 2, pos.FullmoveNumber)
}

func TestUCIPositionFEN(t *testing.T) {
	u, _ := newTestUCI()
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	require.NoError(t, u.Execute("position fen "+fen))
	require.Equal(t, fen, u.eng.Position().String())
}

func TestUCISetOptionHash(t *testing.T) {
	u, _ := newTestUCI()
	before := u.eng.TT.SizeMB()
	require.NoError(t, u.Execute("setoption name Hash value 1"))
	require.Less(t, u.eng.TT.SizeMB(), before)
}

func TestUCIGoDepthReturnsBestMove(t *testing.T) {
	u, buf := newTestUCI()
	require.NoError(t, u.Execute("position startpos"))
	require.NoError(t, u.Execute("go depth 2"))
	out := buf.String()
	require.Contains(t, out, "bestmove")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	require.True(t, strings.HasPrefix(last, "bestmove "))
}

func TestUCIGoNodesBoundsSearch(t *testing.T) {
	u, buf := newTestUCI()
	require.NoError(t, u.Execute("position startpos"))
	require.NoError(t, u.Execute("go nodes 500"))
	out := buf.String()
	require.Contains(t, out, "bestmove")
	require.True(t, u.tm.Stopped())
}

func TestUCIQuitStopsRun(t *testing.T) {
	u, _ := newTestUCI()
	require.Equal(t, errQuit, u.Execute("quit"))
}

func TestScoreToUCIMateAndCentipawns(t *testing.T) {
	require.Equal(t, "cp 120", scoreToUCI(120))
	require.Equal(t, "mate 1", scoreToUCI(engine.MateIn(1)))
	require.Equal(t, "mate -1", scoreToUCI(engine.MatedIn(1)))
}
