// Command rplusbench drives the bench harness: bulk-load a generated
// dataset into an R+-tree (or the sequential-scan baseline), replay a
// batch of range queries, and either report timings or cross-check the
// two indexes' answers.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
