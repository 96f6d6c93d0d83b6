package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maszeto/tedjoin"
)

var (
	runThreshold   float64
	runJSONOutput  bool
	runMetricsAddr string
)

var validVariants = map[string]bool{
	"naive": true,
	"tjoin": true,
	"tang":  true,
	"guha":  true,
}

var runCmd = &cobra.Command{
	Use:   "run <variant> <dataset>",
	Short: "Run a tree similarity join over a dataset",
	Long: `Runs the join pipeline for the given algorithm variant. All four
variant names (naive, tjoin, tang, guha) execute the identical correct
filter/verify pipeline; the names are preserved for interface compatibility
with the reference tool this command's golden counts were validated against.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		variant, datasetPath := args[0], args[1]
		if !validVariants[variant] {
			logger.Fatal("unknown join variant", zap.String("variant", variant))
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		runJoinWithTimeout(ctx, datasetPath, runThreshold)
	},
}

func init() {
	runCmd.Flags().Float64Var(&runThreshold, "threshold", 1, "maximum tree edit distance to report")
	runCmd.Flags().BoolVar(&runJSONOutput, "json", false, "output results as JSON")
	runCmd.Flags().StringVar(&runMetricsAddr, "metrics-addr", "", "expose run counters as Prometheus metrics on this address; the server keeps serving until the process is stopped")
}

// runJoinWithTimeout runs the join on its own goroutine and discards the
// result if ctx expires first. The join pipeline itself has no cancellation
// protocol, so bounding its runtime is strictly the caller's responsibility.
func runJoinWithTimeout(ctx context.Context, datasetPath string, threshold float64) {
	type outcome struct {
		result *tedjoin.JoinResult
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		dict := tedjoin.NewLabelDict()
		trees, err := tedjoin.LoadDataset(datasetPath, dict)
		if err != nil {
			done <- outcome{err: err}
			return
		}
		result, err := tedjoin.ExecuteJoin(trees, threshold, tedjoin.DefaultConfig())
		done <- outcome{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.Error("join timed out", zap.Duration("timeout", timeout))
		os.Exit(1)
	case o := <-done:
		if o.err != nil {
			logger.Error("join failed", zap.Error(o.err))
			os.Exit(1)
		}
		reportResult(o.result)
	}
}

func reportResult(result *tedjoin.JoinResult) {
	if runMetricsAddr != "" {
		reg := prometheus.NewRegistry()
		m := tedjoin.NewMetrics(reg, result.Stats.RunID.String())
		m.Observe(result)
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		logger.Info("serving metrics", zap.String("addr", runMetricsAddr))
		if err := http.ListenAndServe(runMetricsAddr, nil); err != nil {
			logger.Error("metrics server stopped", zap.Error(err))
		}
		return
	}

	if runJSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			logger.Error("failed to encode result", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	summary := result.Stats.Summary()
	fmt.Printf("run %s: %d pairs, %d pre-candidates, %d il-lookups, %d subproblems\n",
		result.Stats.RunID, len(result.Pairs),
		result.Stats.PreCandidates.Value(), result.Stats.ILLookups.Value(), result.Stats.SubproblemCount.Value())
	if summary.Count > 0 {
		fmt.Printf("ted: mean=%.4f variance=%.4f\n", summary.Mean, summary.Variance)
	}
	for _, p := range result.Pairs {
		fmt.Printf("%d %d %g\n", p.I, p.J, p.TED)
	}
}
