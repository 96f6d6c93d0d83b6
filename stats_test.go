package tedjoin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturatingCounterSaturates(t *testing.T) {
	var c SaturatingCounter
	c.Add(math.MaxUint64 - 1)
	c.Add(10)
	assert.Equal(t, uint64(math.MaxUint64), c.Value())
}

func TestSaturatingCounterAdds(t *testing.T) {
	var c SaturatingCounter
	c.Add(3)
	c.Add(4)
	assert.Equal(t, uint64(7), c.Value())
}

func TestStatsSummaryEmpty(t *testing.T) {
	s := newStats()
	assert.Equal(t, TEDSummary{}, s.Summary())
}

func TestStatsSummary(t *testing.T) {
	s := newStats()
	s.recordTED(1)
	s.recordTED(3)

	summary := s.Summary()
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 2.0, summary.Mean)
}
