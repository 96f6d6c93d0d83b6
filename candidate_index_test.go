package tedjoin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCandidatesFiltersDissimilar(t *testing.T) {
	dict := NewLabelDict()
	trees := []*TreeIndex{
		IndexTree(mustParse(t, "{a{b}{c}}"), dict),
		IndexTree(mustParse(t, "{x{y}{z}{w}}"), dict),
	}
	conv := NewHistogramConverter()
	labelHist := make([]Histogram, len(trees))
	for i, tr := range trees {
		labelHist[i], _, _ = conv.Convert(tr)
	}

	// Label histograms are entirely disjoint (no shared labels) and size
	// differs by 1; at threshold 1 the L1 distance (7) far exceeds the
	// limit 1/0.5 = 2, so no candidate should survive.
	candidates := GenerateCandidates(LabelHistogram, labelHist, 1, nil)
	assert.Empty(t, candidates)
}

func TestGenerateCandidatesAdmitsSimilar(t *testing.T) {
	dict := NewLabelDict()
	trees := []*TreeIndex{
		IndexTree(mustParse(t, "{a}"), dict),
		IndexTree(mustParse(t, "{a}"), dict),
	}
	conv := NewHistogramConverter()
	labelHist := make([]Histogram, len(trees))
	for i, tr := range trees {
		labelHist[i], _, _ = conv.Convert(tr)
	}

	candidates := GenerateCandidates(LabelHistogram, labelHist, 0, nil)
	assert.Equal(t, []pair{{0, 1}}, candidates)
}

func TestGenerateCandidatesNeverProbesSelf(t *testing.T) {
	dict := NewLabelDict()
	trees := []*TreeIndex{
		IndexTree(mustParse(t, "{a}"), dict),
	}
	conv := NewHistogramConverter()
	labelHist := make([]Histogram, len(trees))
	for i, tr := range trees {
		labelHist[i], _, _ = conv.Convert(tr)
	}

	candidates := GenerateCandidates(LabelHistogram, labelHist, 10, nil)
	assert.Empty(t, candidates)
}
