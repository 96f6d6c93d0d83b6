package tedjoin

// HistogramKind names one of the three multiset features extracted from a
// tree for lower-bound filtering.
type HistogramKind int

const (
	// LabelHistogram keys on node label id.
	LabelHistogram HistogramKind = iota
	// DegreeHistogram keys on a node's number of children.
	DegreeHistogram
	// LeafDistHistogram keys on a node's distance to its nearest leaf
	// descendant (0 for leaves).
	LeafDistHistogram
)

// lowerBoundConstant returns the c_kind used in the admissibility test
// ||H - H'||_1 <= threshold / c_kind: two trees within edit distance
// threshold of each other cannot have a larger histogram L1 distance than
// this, so any pair exceeding it can be pruned without running TED at all.
func (k HistogramKind) lowerBoundConstant() float64 {
	switch k {
	case LeafDistHistogram:
		return 1.0 / 3.0
	default:
		return 1.0 / 2.0
	}
}

// Histogram is a sparse multiset: for every kind, the sum of Counts equals
// Size. Keys absent from Counts are implicitly zero.
type Histogram struct {
	Size   int
	Counts map[int]int
}

// HistogramConverter builds histograms for a collection of trees and tracks
// the maximum key observed per kind across the whole collection (the "key
// universe"), which the inverted-index generator uses to size its lists.
type HistogramConverter struct {
	maxKey [3]int
}

// NewHistogramConverter returns a converter with an empty key universe.
func NewHistogramConverter() *HistogramConverter {
	return &HistogramConverter{}
}

// MaxKey returns the largest key seen for kind across every call to Convert
// so far.
func (c *HistogramConverter) MaxKey(kind HistogramKind) int {
	return c.maxKey[kind]
}

// Convert produces the three histograms for idx, updating the converter's
// key universe as a side effect.
func (c *HistogramConverter) Convert(idx *TreeIndex) (label, degree, leafDist Histogram) {
	label = Histogram{Size: idx.Size, Counts: make(map[int]int)}
	degree = Histogram{Size: idx.Size, Counts: make(map[int]int)}
	leafDist = Histogram{Size: idx.Size, Counts: make(map[int]int)}

	if idx.Size == 0 {
		return label, degree, leafDist
	}

	depth := make([]int, idx.Size+1)

	for v := 1; v <= idx.Size; v++ {
		lk := int(idx.LabelID[v])
		label.Counts[lk]++
		c.bumpMax(LabelHistogram, lk)

		dk := len(idx.Children[v])
		degree.Counts[dk]++
		c.bumpMax(DegreeHistogram, dk)

		if dk == 0 {
			depth[v] = 0
		} else {
			min := -1
			for _, child := range idx.Children[v] {
				if min == -1 || depth[child] < min {
					min = depth[child]
				}
			}
			depth[v] = 1 + min
		}
		leafDist.Counts[depth[v]]++
		c.bumpMax(LeafDistHistogram, depth[v])
	}

	return label, degree, leafDist
}

func (c *HistogramConverter) bumpMax(kind HistogramKind, key int) {
	if key > c.maxKey[kind] {
		c.maxKey[kind] = key
	}
}

// L1Distance computes the L1 distance between two histograms of the same
// kind: sum over all keys of |a[k] - b[k]|, equivalently
// a.Size + b.Size - 2*overlap where overlap = sum_k min(a[k], b[k]).
func L1Distance(a, b Histogram) int {
	overlap := 0
	for k, av := range a.Counts {
		if bv, ok := b.Counts[k]; ok {
			if av < bv {
				overlap += av
			} else {
				overlap += bv
			}
		}
	}
	return a.Size + b.Size - 2*overlap
}
