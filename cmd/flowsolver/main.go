// Command flowsolver reads an ASCII Flow puzzle from a file and prints a
// solved, colorized board, or reports that the budgets were exhausted.
//
// Usage:
//
//	flowsolver [flags] puzzle.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/andy327/flow-solver/puzzle"
	"github.com/andy327/flow-solver/render"
	"github.com/andy327/flow-solver/solver"
)

func main() {
	iterations := flag.Int("iterations", solver.DefaultMaxIterations, "queue pops allowed per attempt")
	attempts := flag.Int("attempts", solver.DefaultMaxAttempts, "restarts before giving up")
	seed := flag.Int64("seed", 0, "base seed for restart tie-breaking (0 = fixed default)")
	plain := flag.Bool("plain", false, "render without ANSI colors")
	verbose := flag.Bool("v", false, "log per-attempt diagnostics")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] puzzle.txt\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatal("reading puzzle file")
	}
	puz, err := puzzle.Parse(string(data))
	if err != nil {
		log.WithError(err).Fatal("parsing puzzle")
	}
	log.WithFields(log.Fields{
		"rows":   puz.Rows(),
		"cols":   puz.Cols(),
		"colors": len(puz.Colors()),
	}).Info("puzzle loaded")

	s, err := solver.New(puz,
		solver.WithMaxIterations(*iterations),
		solver.WithMaxAttempts(*attempts),
		solver.WithSeed(*seed),
		solver.WithLogger(log.StandardLogger()),
	)
	if err != nil {
		log.WithError(err).Fatal("configuring solver")
	}

	start := time.Now()
	st, ok := s.Solve()
	elapsed := time.Since(start)
	if !ok {
		log.WithField("elapsed", elapsed).Error("no solution found within budgets")
		os.Exit(1)
	}
	log.WithFields(log.Fields{
		"elapsed": elapsed,
		"moves":   len(st.Moves()),
		"forced":  st.ForcedCount(),
	}).Info("solved")

	if *plain {
		fmt.Print(render.Plain(st))
	} else {
		fmt.Print(render.ANSI(st))
	}
}
