package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maszeto/tedjoin"
)

// goldenMismatchExitCode is returned when the golden comparison fails. It is
// negative, and so distinct from the exit code used for dataset/usage errors
// (1, via zap's Fatal), letting scripts tell "the counts didn't match" apart
// from "the run didn't complete." POSIX systems report it to the parent as
// status 255.
const goldenMismatchExitCode = -1

var goldenWorkers int

var goldenCmd = &cobra.Command{
	Use:   "golden <dataset>",
	Short: "Sweep thresholds 1..15 and compare against the bolzano golden counts",
	Long: `Runs the join at every threshold from 1 to 15 and reports the
result-set size at each. When the dataset's base name is "bolzano", the
counts are compared against the reference sequence published for that
dataset; any other dataset is reported without comparison.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runGoldenSweep(args[0])
	},
}

func init() {
	goldenCmd.Flags().IntVar(&goldenWorkers, "workers", 1, "goroutines to split the threshold sweep across")
}

func runGoldenSweep(datasetPath string) {
	dict := tedjoin.NewLabelDict()
	trees, err := tedjoin.LoadDataset(datasetPath, dict)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}

	thresholds := make([]float64, 15)
	for i := range thresholds {
		thresholds[i] = float64(i + 1)
	}

	sweep := tedjoin.RunSweep(trees, thresholds, tedjoin.DefaultConfig(), goldenWorkers)

	counts := make([]int, len(sweep))
	for i, sr := range sweep {
		if sr.Err != nil {
			logger.Fatal("join failed during sweep", zap.Float64("threshold", sr.Threshold), zap.Error(sr.Err))
		}
		counts[i] = len(sr.Result.Pairs)
		fmt.Printf("threshold %2d: %d pairs\n", i+1, counts[i])
	}

	base := strings.TrimSuffix(filepath.Base(datasetPath), filepath.Ext(datasetPath))
	if base != "bolzano" {
		return
	}

	ok, mismatches := tedjoin.CompareGolden(counts, tedjoin.BolzanoGoldenCounts)
	if !ok {
		badThresholds := make([]int, len(mismatches))
		for i, idx := range mismatches {
			badThresholds[i] = idx + 1
		}
		fmt.Printf("golden mismatch at thresholds %v\n", badThresholds)
		os.Exit(goldenMismatchExitCode)
	}
	fmt.Println("golden counts match")
}
