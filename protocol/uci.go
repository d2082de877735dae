// Package protocol speaks the UCI protocol described at
// http://wbec-ridderkerk.nl/html/UCIProtocol.html: it parses GUI
// commands off stdin, drives an engine.Engine, and writes "info" and
// "bestmove" lines back to stdout.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fsoonaye/chimp/board"
	"github.com/fsoonaye/chimp/engine"
)

const engineName = "chimp"
const engineAuthor = "chimp contributors"

// UCI owns one engine.Engine and the mutable session state a UCI
// conversation accumulates: the current position and the in-flight
// search's stop switch.
type UCI struct {
	out    io.Writer
	eng    *engine.Engine
	tm     *engine.TimeManager
	maxPly int
}

// NewUCI builds a UCI session writing responses to out.
func NewUCI(out io.Writer) *UCI {
	return &UCI{out: out, eng: engine.NewEngine(), maxPly: engine.MaxPly - 1}
}

// Run reads commands from in until "quit" or EOF, dispatching each
// line to Execute.
func (u *UCI) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if err := u.Execute(scanner.Text()); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintf(u.out, "info string error: %v\n", err)
		}
	}
	return scanner.Err()
}

var errQuit = fmt.Errorf("quit")

var reCmd = regexp.MustCompile(`^[[:word:]]+\b`)

// Execute dispatches a single line of UCI input.
func (u *UCI) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	cmd := reCmd.FindString(line)
	switch cmd {
	case "uci":
		return u.uci()
	case "isready":
		return u.isready()
	case "ucinewgame":
		return u.ucinewgame()
	case "position":
		return u.position(line)
	case "go":
		return u.goCmd(line)
	case "stop":
		return u.stop()
	case "setoption":
		return u.setoption(line)
	case "eval":
		return u.eval()
	case "quit":
		return errQuit
	default:
		fmt.Fprintf(u.out, "info string unhandled command %q\n", cmd)
		return nil
	}
}

func (u *UCI) uci() error {
	fmt.Fprintf(u.out, "id name %s\n", engineName)
	fmt.Fprintf(u.out, "id author %s\n", engineAuthor)
	fmt.Fprintf(u.out, "option name Hash type spin default %d min 1 max 4096\n", engine.DefaultHashSizeMB)
	fmt.Fprintln(u.out, "uciok")
	return nil
}

func (u *UCI) isready() error {
	fmt.Fprintln(u.out, "readyok")
	return nil
}

func (u *UCI) ucinewgame() error {
	u.eng.NewGame()
	return nil
}

func (u *UCI) eval() error {
	fmt.Fprintf(u.out, "info string eval %d\n", engine.Evaluate(u.eng.Position()))
	return nil
}

func (u *UCI) position(line string) error {
	args := strings.Fields(line)
	if len(args) < 2 {
		return fmt.Errorf("expected argument for 'position'")
	}
	args = args[1:]

	var pos *board.Position
	var err error
	i := 0
	switch args[0] {
	case "startpos":
		pos, err = board.PositionFromFEN(board.FENStartPos)
		i = 1
	case "fen":
		i = 1
		for i < len(args) && args[i] != "moves" {
			i++
		}
		pos, err = board.PositionFromFEN(strings.Join(args[1:i], " "))
	default:
		return fmt.Errorf("unknown position command: %s", args[0])
	}
	if err != nil {
		return err
	}

	if i < len(args) {
		if args[i] != "moves" {
			return fmt.Errorf("expected 'moves', got %q", args[i])
		}
		for _, s := range args[i+1:] {
			m, err := pos.UCIToMove(s)
			if err != nil {
				return err
			}
			pos.DoMove(m)
		}
	}

	u.eng.SetPosition(pos)
	return nil
}

func (u *UCI) goCmd(line string) error {
	args := strings.Fields(line)[1:]
	params := engine.TimeParams{}
	depth := 0

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			params.WTime = parseMillis(args[i])
		case "btime":
			i++
			params.BTime = parseMillis(args[i])
		case "winc":
			i++
			params.WInc = parseMillis(args[i])
		case "binc":
			i++
			params.BInc = parseMillis(args[i])
		case "movestogo":
			i++
			v, _ := strconv.Atoi(args[i])
			params.MovesToGo = v
		case "movetime":
			i++
			params.MoveTime = parseMillis(args[i])
		case "depth":
			i++
			depth, _ = strconv.Atoi(args[i])
			params.DepthOnly = true
		case "infinite":
			params.Infinite = true
		case "nodes":
			i++
			v, _ := strconv.ParseUint(args[i], 10, 64)
			params.Nodes = v
		case "mate", "ponder", "searchmoves":
			// not implemented; a following value is not consumed and is
			// ignored as an unknown token on the next pass
		}
	}

	pos := u.eng.Position()
	u.tm = engine.NewTimeManager(params, pos.ToMove == board.White)
	maxDepth := depth
	if maxDepth == 0 {
		maxDepth = u.maxPly
	}

	result := u.eng.Go(u.tm, maxDepth, func(r engine.SearchResult) {
		u.printInfo(r)
	})

	fmt.Fprintf(u.out, "bestmove %v\n", result.Move)
	return nil
}

func (u *UCI) printInfo(r engine.SearchResult) {
	elapsed := u.tm.Elapsed()
	if elapsed <= 0 {
		elapsed = time.Microsecond
	}
	nps := uint64(float64(r.Nodes) / elapsed.Seconds())

	fmt.Fprintf(u.out, "info depth %d nodes %d time %d nps %d score %s pv",
		r.Depth, r.Nodes, elapsed.Milliseconds(), nps, scoreToUCI(r.Score))
	for _, m := range r.PV {
		fmt.Fprintf(u.out, " %v", m)
	}
	fmt.Fprintln(u.out)
}

func scoreToUCI(s engine.Score) string {
	if engine.IsMate(s) {
		pliesToMate := engine.ValueMate - s
		if s < 0 {
			pliesToMate = engine.ValueMate + s
		}
		moves := (pliesToMate + 1) / 2
		if s < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", s)
}

func (u *UCI) stop() error {
	if u.tm != nil {
		u.tm.Stop()
	}
	return nil
}

var reOption = regexp.MustCompile(`^setoption\s+name\s+(.+?)(\s+value\s+(.*))?$`)

func (u *UCI) setoption(line string) error {
	m := reOption.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("invalid setoption arguments")
	}
	switch m[1] {
	case "Clear Hash":
		u.eng.NewGame()
		return nil
	case "Hash":
		if len(m) < 4 {
			return fmt.Errorf("missing value for Hash")
		}
		mb, err := strconv.Atoi(m[3])
		if err != nil {
			return err
		}
		u.eng.SetHashSize(mb)
		return nil
	default:
		return nil
	}
}

func parseMillis(s string) time.Duration {
	v, _ := strconv.Atoi(s)
	return time.Duration(v) * time.Millisecond
}
