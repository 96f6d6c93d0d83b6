package tedjoin

// Config controls join behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// CostModel supplies edit costs. Default: UnitCostModel{}.
	CostModel CostModel

	// SkipUpperBound disables the label-guided greedy upper bound (C5),
	// forcing every surviving candidate through the exact Zhang-Shasha
	// verifier (C6). Intended for benchmarking and differential testing
	// against the exact algorithm alone. Default: false.
	SkipUpperBound bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		CostModel: UnitCostModel{},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.CostModel == nil {
		cfg.CostModel = UnitCostModel{}
	}
}

// JoinResultElement is one emitted pair: I < J are indices into the trees
// slice passed to ExecuteJoin, and TED is the (exact or bound-confirmed)
// edit distance, which is always <= threshold.
type JoinResultElement struct {
	I, J int
	TED  float64
}

// JoinResult is the output of ExecuteJoin: every qualifying pair plus the
// counters and summary statistics accumulated while finding them.
type JoinResult struct {
	Pairs []JoinResultElement
	Stats *Stats
}

// ExecuteJoin implements C7: it sequences C2 (histograms) -> C3/C4
// (candidate generation and intersection) -> C5 (greedy upper bound) -> C6
// (exact verification), in that order, and returns every pair (i, j), i < j,
// with TED(trees[i], trees[j]) <= threshold.
//
// ExecuteJoin is single-threaded and synchronous: it spawns no goroutines
// and performs no I/O. Callers that want to bound its runtime from the
// outside run it on a goroutine of their own.
func ExecuteJoin(trees []*TreeIndex, threshold float64, cfg Config) (*JoinResult, error) {
	applyDefaults(&cfg)
	if threshold < 0 {
		return nil, &InvalidArgumentError{Arg: "threshold", Msg: "must be >= 0"}
	}

	stats := newStats()
	result := &JoinResult{Stats: stats}

	n := len(trees)
	if n < 2 {
		return result, nil
	}

	conv := NewHistogramConverter()
	labelHist := make([]Histogram, n)
	degreeHist := make([]Histogram, n)
	leafDistHist := make([]Histogram, n)
	for i, t := range trees {
		labelHist[i], degreeHist[i], leafDistHist[i] = conv.Convert(t)
	}
	stats.InvertedListSize.Add(uint64(conv.MaxKey(LabelHistogram) + conv.MaxKey(DegreeHistogram) + conv.MaxKey(LeafDistHistogram)))

	candidates := IntersectLowerBounds(labelHist, degreeHist, leafDistHist, threshold, stats)

	for _, c := range candidates {
		a, b := trees[c.i], trees[c.j]

		if !cfg.SkipUpperBound {
			if lgm := GreedyUpperBound(a, b); lgm <= threshold {
				result.Pairs = append(result.Pairs, JoinResultElement{I: c.i, J: c.j, TED: lgm})
				stats.recordTED(lgm)
				continue
			}
		}

		ted, subproblems := TreeEditDistance(a, b, cfg.CostModel)
		stats.SubproblemCount.Add(subproblems)
		if ted <= threshold {
			result.Pairs = append(result.Pairs, JoinResultElement{I: c.i, J: c.j, TED: ted})
			stats.recordTED(ted)
		}
	}

	return result, nil
}
