package tedjoin

import "sync"

// SweepResult is one threshold's outcome from RunSweep.
type SweepResult struct {
	Threshold float64
	Result    *JoinResult
	Err       error
}

// RunSweep runs ExecuteJoin once per threshold in thresholds, using
// numWorkers goroutines, each taking one contiguous range of the thresholds
// slice. Each individual ExecuteJoin
// call remains single-threaded; only the outer fan-out across thresholds is
// parallel.
//
// Results are returned in the same order as thresholds, regardless of
// completion order. If numWorkers <= 1, the sweep runs sequentially in the
// calling goroutine.
func RunSweep(trees []*TreeIndex, thresholds []float64, cfg Config, numWorkers int) []SweepResult {
	results := make([]SweepResult, len(thresholds))

	run := func(i int) {
		res, err := ExecuteJoin(trees, thresholds[i], cfg)
		results[i] = SweepResult{Threshold: thresholds[i], Result: res, Err: err}
	}

	if numWorkers <= 1 || len(thresholds) <= 1 {
		for i := range thresholds {
			run(i)
		}
		return results
	}

	var wg sync.WaitGroup
	n := len(thresholds)
	perWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := start + perWorker
		if end > n {
			end = n
		}
		if start >= n {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				run(i)
			}
		}(start, end)
	}

	wg.Wait()
	return results
}
