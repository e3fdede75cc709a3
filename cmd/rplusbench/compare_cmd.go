package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tharina/rplustree"
	"github.com/tharina/rplustree/baseline"
	"github.com/tharina/rplustree/internal/bench"
)

func newCompareCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Cross-check the R+-tree against the sequential-scan baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(flags)
		},
	}
}

func runCompare(flags *globalFlags) error {
	log, err := newLogger(flags.verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	size := int(flags.setSize)
	if size <= 0 {
		size = 1 << uint(flags.maxExponent)
	}

	metrics := setupMetrics(flags, log)

	mismatchTotal := 0
	for _, distName := range flags.distributions {
		dist, err := bench.ParseDistribution(distName)
		if err != nil {
			return err
		}

		gen := bench.NewGenerator(int64(size))
		dataset := bench.ToRplusPoints(gen.Points(size, dist))
		queries := gen.Rectangles(flags.numQueries, 0, 1)

		tree := rplus.New(flags.capacity)
		if err := tree.Assign(dataset); err != nil {
			return fmt.Errorf("assigning tree: %w", err)
		}
		var bl baseline.Index
		if err := bl.Assign(dataset); err != nil {
			return fmt.Errorf("assigning baseline: %w", err)
		}

		mismatches, err := bench.Compare(tree, &bl, queries, metrics)
		if err != nil {
			return fmt.Errorf("comparing %s over %d points: %w", dist, size, err)
		}
		for _, m := range mismatches {
			log.Error("range query mismatch",
				zap.Any("query_min", m.Query.Min),
				zap.Any("query_max", m.Query.Max),
				zap.Int("only_in_tree", len(m.OnlyInLHS)),
				zap.Int("only_in_baseline", len(m.OnlyInRHS)),
			)
		}
		mismatchTotal += len(mismatches)
	}

	if mismatchTotal > 0 {
		return fmt.Errorf("%d mismatching queries", mismatchTotal)
	}
	log.Info("all queries agreed")
	return nil
}
