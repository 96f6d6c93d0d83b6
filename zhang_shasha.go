package tedjoin

// TreeEditDistance implements C6: the exact tree edit distance between a
// and b under cost, via the classical Zhang-Shasha keyroot/leftmost-leaf-
// descendant dynamic program. It takes no threshold; the driver (C7) decides
// what to do with the result. The second return value is the number of DP
// cells filled, exposed so the driver can accumulate SubproblemCount.
func TreeEditDistance(a, b *TreeIndex, cost CostModel) (float64, uint64) {
	if a.Size == 0 {
		var total float64
		for v := 1; v <= b.Size; v++ {
			total += cost.Insert(b.LabelID[v])
		}
		return total, 0
	}
	if b.Size == 0 {
		var total float64
		for v := 1; v <= a.Size; v++ {
			total += cost.Delete(a.LabelID[v])
		}
		return total, 0
	}

	// td[p][q] is the full tree edit distance between the subtree rooted
	// at p (in a) and the subtree rooted at q (in b), filled in as a
	// byproduct of whichever keyroot pair first treats p and q as the
	// base of their own forest.
	td := make([][]float64, a.Size+1)
	for p := range td {
		td[p] = make([]float64, b.Size+1)
	}

	var subproblems uint64

	for _, i := range a.KeyRoots {
		for _, j := range b.KeyRoots {
			li := a.LLD[i]
			lj := b.LLD[j]

			// Local forest-distance matrix over p in [li-1, i], q in [lj-1, j],
			// offset so row 0 / col 0 correspond to li-1 / lj-1.
			rows := i - li + 2
			cols := j - lj + 2
			fd := make([][]float64, rows)
			for r := range fd {
				fd[r] = make([]float64, cols)
			}

			for p := li; p <= i; p++ {
				pr := p - (li - 1)
				fd[pr][0] = fd[pr-1][0] + cost.Delete(a.LabelID[p])
			}
			for q := lj; q <= j; q++ {
				qc := q - (lj - 1)
				fd[0][qc] = fd[0][qc-1] + cost.Insert(b.LabelID[q])
			}

			for p := li; p <= i; p++ {
				pr := p - (li - 1)
				for q := lj; q <= j; q++ {
					qc := q - (lj - 1)
					subproblems++

					del := fd[pr-1][qc] + cost.Delete(a.LabelID[p])
					ins := fd[pr][qc-1] + cost.Insert(b.LabelID[q])

					if a.LLD[p] == li && b.LLD[q] == lj {
						ren := fd[pr-1][qc-1] + cost.Rename(a.LabelID[p], b.LabelID[q])
						fd[pr][qc] = minOf3(del, ins, ren)
						td[p][q] = fd[pr][qc]
					} else {
						fromPr := a.LLD[p] - 1 - (li - 1)
						fromQc := b.LLD[q] - 1 - (lj - 1)
						fd[pr][qc] = minOf3(del, ins, fd[fromPr][fromQc]+td[p][q])
					}
				}
			}
		}
	}

	return td[a.Size][b.Size], subproblems
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
