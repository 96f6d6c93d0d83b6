package tedjoin

// IntersectLowerBounds implements C4: it runs the inverted-index candidate
// generator (C3) once per histogram kind, in the fixed order label, degree,
// leaf-distance, intersecting the survivors after each run. If an
// intermediate set is empty, the remaining generator calls are skipped.
func IntersectLowerBounds(labelHist, degreeHist, leafDistHist []Histogram, threshold float64, stats *Stats) []pair {
	candidates := GenerateCandidates(LabelHistogram, labelHist, threshold, stats)
	if len(candidates) == 0 {
		return nil
	}

	candidates = intersect(candidates, GenerateCandidates(DegreeHistogram, degreeHist, threshold, stats))
	if len(candidates) == 0 {
		return nil
	}

	candidates = intersect(candidates, GenerateCandidates(LeafDistHistogram, leafDistHist, threshold, stats))
	return candidates
}

// intersect returns the pairs present in both a and b. Both are assumed
// sorted ascending by (i, j), as GenerateCandidates produces them, so a
// single merge pass suffices.
func intersect(a, b []pair) []pair {
	var result []pair
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].i < b[j].i || (a[i].i == b[j].i && a[i].j < b[j].j):
			i++
		case a[i].i > b[j].i || (a[i].i == b[j].i && a[i].j > b[j].j):
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	return result
}
