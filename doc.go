// Package tedjoin computes tree similarity joins: given a collection of
// ordered, labeled trees and a distance threshold, it returns every pair of
// trees whose tree edit distance (TED) does not exceed the threshold.
//
// TED is the minimum-cost sequence of node insertions, deletions, and
// relabelings that transforms one tree into another. Computing it exactly
// for every pair in a large collection is quadratic in both the number of
// trees and the cost of each pairwise computation, so the join pipeline
// filters aggressively before it verifies:
//
//   - histogram-based lower bounds (label, degree, leaf-distance multisets)
//     prune pairs that cannot possibly be close enough, using an
//     inverted-index candidate generator;
//   - a label-guided greedy upper bound confirms many of the survivors
//     without running the exact algorithm at all;
//   - the remainder are verified exactly with the classical Zhang-Shasha
//     dynamic program.
//
// Basic usage:
//
//	dict := tedjoin.NewLabelDict()
//	trees, err := tedjoin.LoadDataset("testdata/bolzano.txt", dict)
//	cfg := tedjoin.DefaultConfig()
//	result, err := tedjoin.ExecuteJoin(trees, 5, cfg)
//	// result.Pairs[i] is a JoinResultElement{I, J, TED}
//	// result.Stats holds PreCandidates, ILLookups, SubproblemCount, etc.
//
// The join pipeline (ExecuteJoin and everything it calls) is single-threaded
// and synchronous: it performs no I/O and spawns no goroutines. Callers that
// need to bound wall-clock time run it on a goroutine of their own and race
// it against a timer, as the cmd/tedjoin CLI does for its --timeout flag.
package tedjoin
