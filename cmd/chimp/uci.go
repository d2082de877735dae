package main

import (
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fsoonaye/chimp/protocol"
)

func runUCI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	log.SetOutput(os.Stdout)
	log.SetPrefix("info string ")
	log.SetFlags(0)

	u := protocol.NewUCI(os.Stdout)
	if hashMB > 0 {
		_ = u.Execute("setoption name Hash value " + strconv.Itoa(hashMB))
	} else if cfg.HashMB > 0 {
		_ = u.Execute("setoption name Hash value " + strconv.Itoa(cfg.HashMB))
	}

	return u.Run(os.Stdin)
}
