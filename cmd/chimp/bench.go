package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/fsoonaye/chimp/board"
	"github.com/fsoonaye/chimp/engine"
)

// benchPositions is a small fixed suite of middlegame and endgame FENs
// searched to a constant depth, used to compare node counts and nps
// across commits rather than to judge playing strength.
var benchPositions = []string{
	board.FENStartPos,
	board.FENKiwipete,
	"r4rk1/pp3ppp/2n1b3/q1pp2B1/8/P1Q2NP1/1PP1PP1P/2KR3R w - - 0 16",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func newBenchCommand() *cobra.Command {
	var depth int
	var cpuProfile bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "search a fixed suite of positions and report node counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile {
				defer profile.Start(profile.CPUProfile).Stop()
			}
			return runBench(depth)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 10, "fixed search depth per position")
	cmd.Flags().BoolVar(&cpuProfile, "profile", false, "write a CPU profile for this run")
	return cmd
}

func runBench(depth int) error {
	var totalNodes uint64
	start := time.Now()

	for _, fen := range benchPositions {
		pos, err := board.PositionFromFEN(fen)
		if err != nil {
			return err
		}
		tt := engine.NewTT(engine.DefaultHashSizeMB)
		tm := engine.NewTimeManager(engine.TimeParams{DepthOnly: true}, pos.ToMove == board.White)
		result := engine.Search(pos, tt, tm, depth, nil)
		totalNodes += result.Nodes
		fmt.Printf("%-70s depth %2d nodes %10d score %6d bestmove %v\n",
			fen, result.Depth, result.Nodes, result.Score, result.Move)
	}

	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()
	fmt.Printf("\n%d total nodes in %v (%.0f nps)\n", totalNodes, elapsed.Round(time.Millisecond), nps)
	return nil
}
