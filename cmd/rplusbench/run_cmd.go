package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tharina/rplustree"
	"github.com/tharina/rplustree/baseline"
	"github.com/tharina/rplustree/internal/bench"
)

func newRunCommand(flags *globalFlags) *cobra.Command {
	var useBaseline bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time range queries against one index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(flags, useBaseline)
		},
	}
	cmd.Flags().BoolVar(&useBaseline, "baseline", false, "use the sequential-scan baseline instead of the R+-tree")
	return cmd
}

func runBenchmark(flags *globalFlags, useBaseline bool) error {
	log, err := newLogger(flags.verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	sizes, err := datasetSizes(flags)
	if err != nil {
		return err
	}

	out, closeOut, err := openResults(flags)
	if err != nil {
		return err
	}
	defer closeOut()

	writer, err := bench.NewResultWriter(out, "", !flags.appendResults)
	if err != nil {
		return err
	}

	metrics := setupMetrics(flags, log)

	for _, distName := range flags.distributions {
		dist, err := bench.ParseDistribution(distName)
		if err != nil {
			return err
		}
		for _, size := range sizes {
			for iter := 0; iter < flags.iterations; iter++ {
				if err := runOne(flags, dist, size, iter, useBaseline, log, metrics, writer); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func runOne(flags *globalFlags, dist bench.Distribution, size int, iter int, useBaseline bool, log *zap.Logger, metrics *bench.Metrics, writer *bench.ResultWriter) error {
	seed := int64(size)*1000 + int64(iter)
	gen := bench.NewGenerator(seed)
	dataset := gen.Points(size, dist)
	queries := gen.Rectangles(flags.numQueries, 0, 1)

	name := "rplus"
	var idx rplus.RangeSearch
	if useBaseline {
		name = "baseline"
		idx = &baseline.Index{}
	} else {
		idx = rplus.New(flags.capacity)
	}

	run := bench.NewRun(name, dataset, queries, flags.reportingMode, log, metrics)
	result, err := run.Execute(idx)
	if err != nil {
		return fmt.Errorf("running %s over %d points: %w", dist, size, err)
	}
	return writer.Write(result)
}

func datasetSizes(flags *globalFlags) ([]int, error) {
	if flags.setSize > 0 {
		return []int{int(flags.setSize)}, nil
	}
	if flags.maxExponent < 10 {
		return nil, fmt.Errorf("max-exponent must be >= 10, got %d", flags.maxExponent)
	}
	var sizes []int
	for exp := 10; exp <= flags.maxExponent; exp++ {
		sizes = append(sizes, 1<<uint(exp))
	}
	return sizes, nil
}

func openResults(flags *globalFlags) (*os.File, func(), error) {
	if flags.resultsPath == "" {
		return os.Stdout, func() {}, nil
	}
	mode := os.O_CREATE | os.O_WRONLY
	if flags.appendResults {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}
	f, err := os.OpenFile(flags.resultsPath, mode, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", flags.resultsPath, err)
	}
	return f, func() { f.Close() }, nil
}
