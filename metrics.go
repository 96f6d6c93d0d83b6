package tedjoin

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes a Stats value as Prometheus collectors. Callers register
// one Metrics per run with a prometheus.Registerer (typically via the CLI's
// --metrics-addr flag) after ExecuteJoin returns; Stats itself has no
// Prometheus dependency, keeping the core join pipeline free of it.
type Metrics struct {
	preCandidates    prometheus.Gauge
	ilLookups        prometheus.Gauge
	subproblemCount  prometheus.Gauge
	invertedListSize prometheus.Gauge
	resultCount      prometheus.Gauge
}

// NewMetrics constructs a Metrics registered under reg with the given run
// label, distinguishing concurrent or successive runs exposed on the same
// registry.
func NewMetrics(reg prometheus.Registerer, runID string) *Metrics {
	labels := prometheus.Labels{"run_id": runID}
	m := &Metrics{
		preCandidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "tedjoin_pre_candidates",
			Help:        "Pairs whose histogram size difference passed the cheap size filter.",
			ConstLabels: labels,
		}),
		ilLookups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "tedjoin_il_lookups",
			Help:        "Inverted-list entries touched during candidate generation.",
			ConstLabels: labels,
		}),
		subproblemCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "tedjoin_subproblem_count",
			Help:        "Zhang-Shasha DP cells filled across every exactly-verified pair.",
			ConstLabels: labels,
		}),
		invertedListSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "tedjoin_inverted_list_size",
			Help:        "Histogram key universe size summed over label, degree, and leaf-distance kinds.",
			ConstLabels: labels,
		}),
		resultCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "tedjoin_result_count",
			Help:        "Number of pairs emitted by the join.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(m.preCandidates, m.ilLookups, m.subproblemCount, m.invertedListSize, m.resultCount)
	return m
}

// Observe sets every gauge from result.
func (m *Metrics) Observe(result *JoinResult) {
	m.preCandidates.Set(float64(result.Stats.PreCandidates.Value()))
	m.ilLookups.Set(float64(result.Stats.ILLookups.Value()))
	m.subproblemCount.Set(float64(result.Stats.SubproblemCount.Value()))
	m.invertedListSize.Set(float64(result.Stats.InvertedListSize.Value()))
	m.resultCount.Set(float64(len(result.Pairs)))
}
