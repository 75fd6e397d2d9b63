// Command bptreecli is an interactive REPL over a bptree.Tree, grounded in
// the SET/GET/DEL shape of vchandela-ddia/btree's CLI and extended with a
// colorized tree visualizer and a RANGE command.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/kvindex/bptree/bptree"
	"github.com/kvindex/bptree/internal/report"
)

func main() {
	degree := flag.Int("degree", 32, "bptree degree")
	sentryDSN := flag.String("sentry-dsn", "", "Sentry DSN for panic/structural-error reporting (optional)")
	flag.Parse()

	if err := report.InitSentry(*sentryDSN); err != nil {
		log.Fatalf("bptreecli: sentry init: %v", err)
	}
	defer report.Flush(2 * time.Second)
	defer report.CapturePanic()

	tree, err := bptree.New[string, string](*degree)
	if err != nil {
		log.Fatalf("bptreecli: %v", err)
	}

	runREPL(os.Stdin, os.Stdout, tree)
}
