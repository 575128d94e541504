package cli

import (
	"testing"

	"github.com/aretw0/dpda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	size, alphabet, err := ParseHeader("  3   ab()  extra")
	require.NoError(t, err)
	assert.Equal(t, 3, size)
	assert.Equal(t, "ab()", alphabet)

	for _, line := range []string{"", "3", "x ab", "0 ab", "-2 ab"} {
		_, _, err := ParseHeader(line)
		assert.ErrorIs(t, err, domain.ErrInvalidDefinition, "line %q", line)
	}
}

func TestParseTransition(t *testing.T) {
	tr, err := ParseTransition("0 a $ 1 A$")
	require.NoError(t, err)
	assert.Equal(t, domain.Transition{Source: 0, Target: 1, Consumed: 'a', Pop: '$', Push: "A$"}, tr)

	tr, err = ParseTransition("2 . . 0 .")
	require.NoError(t, err)
	assert.Equal(t, domain.Epsilon, tr.Consumed)
	assert.Equal(t, domain.Epsilon, tr.Pop)
	assert.True(t, domain.IsEpsilonPush(tr.Push))

	cases := map[string]string{
		"too few":        "0 a $ 1",
		"too many":       "0 a $ 1 A B",
		"long input":     "0 ab $ 1 A",
		"long pop":       "0 a $$ 1 A",
		"non-int source": "s a $ 1 A",
		"non-int target": "0 a $ t A",
		"blank":          "",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTransition(line)
			assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
		})
	}
}

func TestParseFinalStates(t *testing.T) {
	values, done := ParseFinalStates("1 x 2 -1 3")
	assert.Equal(t, []int{1, 2}, values)
	assert.True(t, done)

	values, done = ParseFinalStates("4 five 6")
	assert.Equal(t, []int{4, 6}, values)
	assert.False(t, done)

	values, done = ParseFinalStates("-1")
	assert.Empty(t, values)
	assert.True(t, done)
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(" -1 "))
	assert.False(t, IsSentinel("-1 0"))
	assert.False(t, IsSentinel(""))
}
