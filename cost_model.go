package tedjoin

// CostModel supplies the per-edit costs used by the Zhang-Shasha verifier
// and the label-guided upper bound. Rename(a, a) must be 0 for any CostModel
// implementation: only relabelings between distinct labels may cost
// anything.
type CostModel interface {
	Delete(label LabelID) float64
	Insert(label LabelID) float64
	Rename(a, b LabelID) float64
}

// UnitCostModel assigns cost 1 to every insertion and deletion, cost 0 to
// renaming a label to itself, and cost 1 to renaming a label to any other
// label. It is the default cost model and the one the bolzano golden counts
// were computed under.
type UnitCostModel struct{}

func (UnitCostModel) Delete(LabelID) float64 { return 1 }
func (UnitCostModel) Insert(LabelID) float64 { return 1 }

func (UnitCostModel) Rename(a, b LabelID) float64 {
	if a == b {
		return 0
	}
	return 1
}
