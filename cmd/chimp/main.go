// Command chimp is the UCI chess engine binary: run with no
// subcommand it speaks UCI on stdin/stdout, the way a GUI invokes it;
// "bench" and "perft" are standalone developer subcommands.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsoonaye/chimp/config"
)

var hashMB int

func main() {
	root := &cobra.Command{
		Use:   "chimp",
		Short: "chimp is a UCI chess engine",
		RunE:  runUCI,
	}
	root.PersistentFlags().IntVar(&hashMB, "hash", 0, "transposition table size in MiB (0: use chimp.toml or the built-in default)")

	root.AddCommand(newBenchCommand())
	root.AddCommand(newPerftCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	return config.Load(config.DefaultPath, func(msg string) {
		log.SetPrefix("info string ")
		log.SetFlags(0)
		log.Println("chimp.toml:", msg)
	})
}
