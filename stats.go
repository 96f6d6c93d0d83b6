package tedjoin

import (
	"encoding/json"
	"math"
	"sync/atomic"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// SaturatingCounter is a uint64 counter that stops at math.MaxUint64 instead
// of wrapping on overflow. The join pipeline is single-threaded, so Add does
// not need to be atomic for correctness within a single run; it uses atomic
// operations anyway so a Stats value can be shared with an ambient goroutine
// (the CLI's Prometheus exporter) without a data race.
type SaturatingCounter struct {
	v uint64
}

// Add increments the counter by delta, saturating at math.MaxUint64.
func (c *SaturatingCounter) Add(delta uint64) {
	for {
		old := atomic.LoadUint64(&c.v)
		next := old + delta
		if next < old {
			next = math.MaxUint64
		}
		if atomic.CompareAndSwapUint64(&c.v, old, next) {
			return
		}
	}
}

// Value returns the counter's current value.
func (c *SaturatingCounter) Value() uint64 {
	return atomic.LoadUint64(&c.v)
}

// MarshalJSON renders the counter as a plain JSON number.
func (c *SaturatingCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// TEDSummary holds summary statistics over the TED values of every emitted
// result pair, computed with gonum/stat.
type TEDSummary struct {
	Mean     float64
	Variance float64
	Count    int
}

// Stats accumulates the observable counters of a single ExecuteJoin call
// plus a run identifier and a summary of the emitted TED values.
type Stats struct {
	RunID uuid.UUID

	// PreCandidates is the number of pairs whose histogram size
	// difference passed the cheap size filter during candidate
	// generation, across every histogram kind probed.
	PreCandidates SaturatingCounter

	// ILLookups is the number of inverted-list entries touched across
	// every candidate-generation probe.
	ILLookups SaturatingCounter

	// SubproblemCount is the number of Zhang-Shasha DP cells filled
	// across every pair that reached the exact verifier.
	SubproblemCount SaturatingCounter

	// InvertedListSize is the largest histogram key seen across the
	// collection, summed over the three histogram kinds (the key
	// universe size recorded by the histogram converter).
	InvertedListSize SaturatingCounter

	tedValues []float64
}

// newStats returns a Stats with a freshly generated RunID.
func newStats() *Stats {
	return &Stats{RunID: uuid.New()}
}

// recordTED appends ted to the running summary.
func (s *Stats) recordTED(ted float64) {
	s.tedValues = append(s.tedValues, ted)
}

// Summary computes the mean and variance of every TED value recorded via
// recordTED. Returns the zero TEDSummary if no pairs were emitted.
func (s *Stats) Summary() TEDSummary {
	if len(s.tedValues) == 0 {
		return TEDSummary{}
	}
	mean, variance := stat.MeanVariance(s.tedValues, nil)
	return TEDSummary{Mean: mean, Variance: variance, Count: len(s.tedValues)}
}
