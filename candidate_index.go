package tedjoin

import "sort"

// pair is an unordered candidate (i, j), i < j, by input-collection index.
type pair struct {
	i, j int
}

// invertedListEntry is one tree's contribution to an inverted list: its
// collection index, its count for this key, and its total histogram size
// (needed for the size filter without a separate lookup).
type invertedListEntry struct {
	tree int
	cnt  int
	size int
}

// GenerateCandidates implements C3: given one histogram per tree (all of
// the same kind) and a threshold, it emits every pair whose histogram L1
// distance does not exceed threshold/c_kind, using an inverted-index probe
// that never computes a full cross product. Pairs that share no key have
// L1 distance equal to the sum of their sizes and are emitted when that sum
// is within the limit.
//
// Trees are visited in ascending size order so that every inverted list is
// naturally sorted by size as it grows, which lets probes stop early.
func GenerateCandidates(kind HistogramKind, histograms []Histogram, threshold float64, stats *Stats) []pair {
	n := len(histograms)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return histograms[order[a]].Size < histograms[order[b]].Size
	})

	limit := threshold / kind.lowerBoundConstant()

	lists := make(map[int][]invertedListEntry)
	var visited []invertedListEntry // earlier trees, ascending by size
	var result []pair

	for _, i := range order {
		hi := histograms[i]
		overlap := make(map[int]int)
		touchedSize := make(map[int]int)

		for key, ci := range hi.Counts {
			for _, entry := range lists[key] {
				if stats != nil {
					stats.ILLookups.Add(1)
				}
				if float64(entry.size-hi.Size) > limit {
					// Sorted by size; no later entry can pass either.
					break
				}
				if ci < entry.cnt {
					overlap[entry.tree] += ci
				} else {
					overlap[entry.tree] += entry.cnt
				}
				touchedSize[entry.tree] = entry.size
			}
		}

		for j, ov := range overlap {
			if stats != nil && float64(hi.Size-touchedSize[j]) <= limit {
				stats.PreCandidates.Add(1)
			}
			l1 := hi.Size + touchedSize[j] - 2*ov
			if float64(l1) <= limit {
				lo, hiIdx := i, j
				if lo > hiIdx {
					lo, hiIdx = hiIdx, lo
				}
				result = append(result, pair{lo, hiIdx})
			}
		}

		// Earlier trees that share no key with i were never touched above;
		// their overlap is 0, so their L1 distance is the sum of the sizes.
		for _, e := range visited {
			if float64(hi.Size+e.size) > limit {
				break
			}
			if _, shared := overlap[e.tree]; shared {
				continue
			}
			if stats != nil {
				stats.PreCandidates.Add(1)
			}
			lo, hiIdx := i, e.tree
			if lo > hiIdx {
				lo, hiIdx = hiIdx, lo
			}
			result = append(result, pair{lo, hiIdx})
		}

		for key, ci := range hi.Counts {
			lists[key] = append(lists[key], invertedListEntry{tree: i, cnt: ci, size: hi.Size})
		}
		visited = append(visited, invertedListEntry{tree: i, size: hi.Size})
	}

	sort.Slice(result, func(a, b int) bool {
		if result[a].i != result[b].i {
			return result[a].i < result[b].i
		}
		return result[a].j < result[b].j
	})
	return result
}
