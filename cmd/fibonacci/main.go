// Command fibonacci dataizes a recursive Fibonacci(n) Universe and prints
// the resulting word, the number of resolution cycles taken, and (at -v) a
// trace of the run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/objectionary/phie"
	"github.com/objectionary/phie/internal/telemetry"
)

func main() {
	n := flag.Uint64("n", 7, "which Fibonacci number to compute")
	steps := flag.Int("steps", 0, "cap on resolution cycles; 0 means unlimited")
	verbose := flag.Bool("v", false, "trace the run to stderr")
	flag.Parse()

	cfg := phie.DefaultConfig()
	cfg.StepLimit = *steps
	cfg.Sink = phie.NewWriterSink(os.Stdout)
	if *verbose {
		cfg.Logger = telemetry.New(os.Stderr, telemetry.DebugLevel, "fibonacci")
		defer cfg.Logger.Sync()
	}

	u := phie.Fibonacci(*n)
	word, cycles, err := phie.Dataize(u, cfg)
	if err != nil {
		log.Fatalf("fibonacci(%d): %v", *n, err)
	}
	fmt.Printf("fibonacci(%d) = %d (%d cycles)\n", *n, uint64(word), cycles)
}
