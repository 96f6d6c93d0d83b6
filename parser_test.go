package tedjoin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleton(t *testing.T) {
	n, err := Parse("{a}")
	require.NoError(t, err)
	assert.Equal(t, "a", n.Label)
	assert.Empty(t, n.Children)
}

func TestParseNested(t *testing.T) {
	n, err := Parse("{a{b}{c{d}}}")
	require.NoError(t, err)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "b", n.Children[0].Label)
	assert.Equal(t, "c", n.Children[1].Label)
	require.Len(t, n.Children[1].Children, 1)
	assert.Equal(t, "d", n.Children[1].Children[0].Label)
}

func TestParseErrors(t *testing.T) {
	cases := []string{"", "a}", "{a", "{a}{b}", "{}{}"}
	for _, c := range cases {
		_, err := Parse(c)
		assert.Error(t, err, "input %q should fail to parse", c)
	}
}

func TestParseUnparseRoundTrip(t *testing.T) {
	cases := []string{"{a}", "{a{b}{c}}", "{x{y{z}}}"}
	for _, s := range cases {
		n, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Unparse(n))
	}
}
