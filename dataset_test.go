package tedjoin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatasetSkipsBlankLines(t *testing.T) {
	dict := NewLabelDict()
	r := strings.NewReader("{a}\n\n{b{c}}\n   \n")

	trees, err := ParseDataset(r, dict)
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, 1, trees[0].Size)
	assert.Equal(t, 2, trees[1].Size)
}

func TestParseDatasetReportsLineNumberOnError(t *testing.T) {
	dict := NewLabelDict()
	r := strings.NewReader("{a}\n{unterminated\n")

	_, err := ParseDataset(r, dict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := LoadDataset("testdata/does-not-exist.txt", NewLabelDict())
	require.Error(t, err)
}
