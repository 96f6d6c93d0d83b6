package tedjoin

import "sort"

// matchedPair is one accepted mapping edge in the greedy label-guided
// mapping.
type matchedPair struct {
	a, b int
}

// GreedyUpperBound implements C5: a label-guided greedy mapping that
// produces an upper bound on TED(A, B) without running the exact
// Zhang-Shasha DP. Every edge the greedy mapping accepts is a valid
// (ancestor-preserving) edit mapping, so the cost it reaches can never be
// lower than the true minimum; the bound is always >= TED(A, B), so
// admitting a pair when the bound is <= threshold is sound.
func GreedyUpperBound(a, b *TreeIndex) float64 {
	if a.Size == 0 {
		return float64(b.Size)
	}
	if b.Size == 0 {
		return float64(a.Size)
	}

	posA := positionsByLabel(a)
	posB := positionsByLabel(b)

	type labelWork struct {
		label   LabelID
		combLen int
	}
	var common []labelWork
	for label, pa := range posA {
		if pb, ok := posB[label]; ok {
			common = append(common, labelWork{label: label, combLen: len(pa) + len(pb)})
		}
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].combLen != common[j].combLen {
			return common[i].combLen < common[j].combLen
		}
		return common[i].label < common[j].label
	})

	var matched []matchedPair
	for _, lw := range common {
		pa := posA[lw.label]
		pb := posB[lw.label]
		n := len(pa)
		if len(pb) < n {
			n = len(pb)
		}
		for k := 0; k < n; k++ {
			candA, candB := pa[k], pb[k]
			if compatible(a, b, matched, candA, candB) {
				matched = append(matched, matchedPair{candA, candB})
			}
		}
	}

	return float64(a.Size+b.Size-2*len(matched)) // relabel cost is always 0: only equal labels are ever matched
}

// compatible reports whether adding (candA, candB) to matched preserves
// ancestor structure against every pair already in the mapping.
func compatible(a, b *TreeIndex, matched []matchedPair, candA, candB int) bool {
	for _, m := range matched {
		orderA := candA < m.a
		orderB := candB < m.b
		if orderA != orderB {
			return false
		}
		if a.IsAncestor(candA, m.a) != b.IsAncestor(candB, m.b) {
			return false
		}
		if a.IsAncestor(m.a, candA) != b.IsAncestor(m.b, candB) {
			return false
		}
	}
	return true
}

// positionsByLabel groups a tree's postorder ids by label id, in ascending
// postorder order (free, since v is scanned 1..Size ascending).
func positionsByLabel(t *TreeIndex) map[LabelID][]int {
	m := make(map[LabelID][]int)
	for v := 1; v <= t.Size; v++ {
		m[t.LabelID[v]] = append(m[t.LabelID[v]], v)
	}
	return m
}
