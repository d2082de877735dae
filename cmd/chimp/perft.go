package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fsoonaye/chimp/board"
)

func newPerftCommand() *cobra.Command {
	var depth int
	var fen string

	cmd := &cobra.Command{
		Use:   "perft",
		Short: "count leaf nodes of the legal move tree to a fixed depth",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fen == "" {
				fen = board.FENStartPos
			}
			pos, err := board.PositionFromFEN(fen)
			if err != nil {
				return err
			}
			start := time.Now()
			nodes := board.Perft(pos, depth)
			elapsed := time.Since(start)
			fmt.Printf("perft(%d) = %d  (%v, %.0f nps)\n",
				depth, nodes, elapsed.Round(time.Millisecond), float64(nodes)/elapsed.Seconds())
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 5, "search depth")
	cmd.Flags().StringVar(&fen, "fen", "", "FEN to search from (default: starting position)")
	return cmd
}
