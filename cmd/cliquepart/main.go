// Command cliquepart partitions weighted graphs into bounded cliques.
//
// Usage:
//
//	cliquepart solve instance.tri -o json
//	cliquepart generate -n 40 -k 5 --p 0.3 --seed 7 > random.tri
//	cliquepart watch instance.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code; deferred cleanup finishes before main exits.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	if err := a.execute(ctx, a.rootCmd()); err != nil {
		return 1
	}

	return 0
}
