package tedjoin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitCostModel(t *testing.T) {
	var m CostModel = UnitCostModel{}

	assert.Equal(t, 1.0, m.Delete(1))
	assert.Equal(t, 1.0, m.Insert(2))
	assert.Equal(t, 0.0, m.Rename(3, 3))
	assert.Equal(t, 1.0, m.Rename(3, 4))
}
