package tedjoin

// BolzanoGoldenCounts is the reference result-set size for the bolzano
// dataset at unit cost, for thresholds 1 through 15 in order
// (BolzanoGoldenCounts[0] is the count at threshold 1).
var BolzanoGoldenCounts = []int{
	9, 37, 61, 109, 196, 344, 476, 596, 704, 840, 946, 1138, 1356, 1498, 1692,
}

// CompareGolden compares actual result counts (one per threshold, same
// order as expected) against expected, returning whether every entry
// matched and the indices where they did not.
func CompareGolden(actual, expected []int) (ok bool, mismatches []int) {
	n := len(expected)
	if len(actual) < n {
		n = len(actual)
	}
	ok = len(actual) == len(expected)
	for i := 0; i < n; i++ {
		if actual[i] != expected[i] {
			ok = false
			mismatches = append(mismatches, i)
		}
	}
	for i := n; i < len(expected) || i < len(actual); i++ {
		ok = false
		mismatches = append(mismatches, i)
	}
	return ok, mismatches
}
