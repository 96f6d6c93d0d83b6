package tedjoin

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goldenFixture struct {
	Dataset        string    `json:"dataset"`
	Trees          []string  `json:"trees"`
	Thresholds     []float64 `json:"thresholds"`
	ExpectedCounts []int     `json:"expected_counts"`
}

func loadGoldenFixture(t *testing.T, path string) goldenFixture {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var f goldenFixture
	require.NoError(t, json.Unmarshal(data, &f))
	return f
}

// TestGoldenFixtures exercises the golden-comparison mechanism end to end
// against small, hand-verified fixtures in testdata/. The reference
// "bolzano" dataset itself is not bundled with this module; BolzanoGoldenCounts
// pins its published counts so the CLI's golden subcommand has the real
// numbers the moment a caller supplies the dataset file.
func TestGoldenFixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/golden_*.json")
	require.NoError(t, err)
	require.NotEmpty(t, files, "expected at least one golden fixture")

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			fixture := loadGoldenFixture(t, f)

			dict := NewLabelDict()
			trees := make([]*TreeIndex, len(fixture.Trees))
			for i, s := range fixture.Trees {
				raw, err := Parse(s)
				require.NoError(t, err)
				trees[i] = IndexTree(raw, dict)
			}

			sweep := RunSweep(trees, fixture.Thresholds, DefaultConfig(), 1)
			actual := make([]int, len(sweep))
			for i, sr := range sweep {
				require.NoError(t, sr.Err)
				actual[i] = len(sr.Result.Pairs)
			}

			ok, mismatches := CompareGolden(actual, fixture.ExpectedCounts)
			assert.True(t, ok, "golden mismatch at indices %v: got %v, want %v", mismatches, actual, fixture.ExpectedCounts)
		})
	}
}

func TestBolzanoGoldenCountsShape(t *testing.T) {
	require.Len(t, BolzanoGoldenCounts, 15)
	for i := 1; i < len(BolzanoGoldenCounts); i++ {
		assert.GreaterOrEqual(t, BolzanoGoldenCounts[i], BolzanoGoldenCounts[i-1],
			"result-set size must be non-decreasing as threshold grows")
	}
}

func TestCompareGoldenDetectsMismatch(t *testing.T) {
	ok, mismatches := CompareGolden([]int{9, 37, 60}, []int{9, 37, 61})
	assert.False(t, ok)
	assert.Equal(t, []int{2}, mismatches)

	ok, _ = CompareGolden([]int{9, 37, 61}, []int{9, 37, 61})
	assert.True(t, ok)
}
