package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tharina/rplustree/internal/bench"
)

// globalFlags mirrors framework::CommandLineOptions: one flat set of knobs
// shared by every subcommand, rather than cobra's usual per-command flag
// sets, since the original CLI never distinguished "run" from "compare"
// except by which bits were set in the same struct.
type globalFlags struct {
	distributions []string
	maxExponent   int
	setSize       int64
	numQueries    int
	iterations    int
	capacity      int
	reportingMode bool
	resultsPath   string
	appendResults bool
	verbose       bool
	metricsAddr   string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "rplusbench",
		Short: "Benchmark and cross-check R+-tree range search",
		Long: "rplusbench bulk-loads generated point sets into an R+-tree and a " +
			"sequential-scan baseline, then times range queries against one or " +
			"compares answers between both.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringSliceVarP(&flags.distributions, "benchmark", "b",
		[]string{"uniform"}, "point distributions to run: uniform, skewed, normal, clustered, stacked")
	root.PersistentFlags().IntVarP(&flags.maxExponent, "max-exponent", "e", 22,
		"dataset sizes run from 2^10 up to 2^max-exponent points")
	root.PersistentFlags().Int64VarP(&flags.setSize, "set-size", "n", 0,
		"fix the dataset size instead of sweeping exponents (0 = sweep)")
	root.PersistentFlags().IntVarP(&flags.numQueries, "num-queries", "q", 10000,
		"number of range queries per run")
	root.PersistentFlags().IntVarP(&flags.iterations, "iterations", "i", 1,
		"repetitions per dataset size")
	root.PersistentFlags().IntVarP(&flags.capacity, "capacity", "m", 64,
		"R+-tree node capacity")
	root.PersistentFlags().BoolVarP(&flags.reportingMode, "report", "r", false,
		"use ReportRange instead of CountRange")
	root.PersistentFlags().StringVar(&flags.resultsPath, "results", "",
		"CSV file to write results to (stdout if empty)")
	root.PersistentFlags().BoolVar(&flags.appendResults, "append-results", false,
		"append to --results instead of overwriting it")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "",
		"serve Prometheus metrics on this address (e.g. :9090) while the run executes; disabled if empty")

	root.AddCommand(newRunCommand(flags))
	root.AddCommand(newCompareCommand(flags))
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

// setupMetrics builds a fresh registry and Metrics set, and — if
// flags.metricsAddr is non-empty — serves it over HTTP for the lifetime of
// the process. The harness is one-shot, so the server is never explicitly
// shut down; it exits with the process.
func setupMetrics(flags *globalFlags, log *zap.Logger) *bench.Metrics {
	reg := prometheus.NewRegistry()
	metrics := bench.NewMetrics(reg)

	if flags.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: flags.metricsAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		log.Info("serving metrics", zap.String("addr", flags.metricsAddr))
	}
	return metrics
}
