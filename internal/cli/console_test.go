package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/dpda/internal/cli"
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anbn reaches its final state 1 on a^n b^m with m <= n, so only balanced
// words end with the bottom marker alone on the stack.
const anbn = `2 ab
0 a $ 0 A$
0 a A 0 AA
0 b A 1 .
1 b A 1 .
-1
1 -1
`

func TestConsole_Build(t *testing.T) {
	var out, errOut bytes.Buffer
	c := cli.NewConsole(strings.NewReader(anbn), &out, &errOut)

	a, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, a.Size())
	assert.Equal(t, "ab", a.Alphabet())
	assert.Equal(t, 4, a.TransitionCount())
	assert.Equal(t, []int{1}, a.FinalStates())
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestConsole_Build_Lenient(t *testing.T) {
	def := `oops
2 ab
0 a $ 0 A$
0 a $ 1 B$
0 q $ 1 .
too short
-1
1 -1
`
	var out, errOut bytes.Buffer
	c := cli.NewConsole(strings.NewReader(def), &out, &errOut)

	a, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, a.TransitionCount())
	assert.Equal(t, 4, strings.Count(errOut.String(), "Error:"))
}

func TestConsole_Build_Strict(t *testing.T) {
	def := "2 ab\n0 a $ 0 A$\n0 a $ 1 B$\n-1\n-1\n"
	c := cli.NewConsole(strings.NewReader(def), &bytes.Buffer{}, &bytes.Buffer{}, cli.WithStrict(true))

	_, err := c.Build()
	assert.ErrorIs(t, err, domain.ErrDeterminismViolation)
	assert.Contains(t, err.Error(), "line 3")
}

func TestConsole_Build_Unterminated(t *testing.T) {
	for name, def := range map[string]string{
		"no header":     "",
		"no sentinel":   "2 ab\n0 a $ 0 A$\n",
		"no final line": "2 ab\n-1\n",
		"finals open":   "2 ab\n-1\n0 1\n",
	} {
		t.Run(name, func(t *testing.T) {
			c := cli.NewConsole(strings.NewReader(def), &bytes.Buffer{}, &bytes.Buffer{})
			_, err := c.Build()
			assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
		})
	}
}

func TestConsole_Run(t *testing.T) {
	t.Run("Accepts after dot", func(t *testing.T) {
		var out, errOut bytes.Buffer
		c := cli.NewConsole(strings.NewReader(anbn+"a\n\nb\n.\n"), &out, &errOut)
		a, err := c.Build()
		require.NoError(t, err)

		verdict := c.Run(context.Background(), a)
		assert.Equal(t, domain.VerdictAccepted, verdict)
		assert.Equal(t, "String accepted.\n", out.String())
		assert.Equal(t, "0:$", a.CurrentStatus(), "run is reset afterwards")
	})

	t.Run("Trap ends the run", func(t *testing.T) {
		var out bytes.Buffer
		c := cli.NewConsole(strings.NewReader(anbn+"b\na\n."), &out, &bytes.Buffer{})
		a, err := c.Build()
		require.NoError(t, err)

		assert.Equal(t, domain.VerdictRejected, c.Run(context.Background(), a))
		assert.Equal(t, "String rejected.\n", out.String())

		// The unread "a" feeds the next run.
		out.Reset()
		assert.Equal(t, domain.VerdictRejected, c.Run(context.Background(), a))
	})

	t.Run("Invalid symbol is reported", func(t *testing.T) {
		var out, errOut bytes.Buffer
		c := cli.NewConsole(strings.NewReader(anbn+"z\n.\n"), &out, &errOut)
		a, err := c.Build()
		require.NoError(t, err)

		assert.Equal(t, domain.VerdictRejected, c.Run(context.Background(), a))
		assert.Contains(t, errOut.String(), "Error:")
		assert.Contains(t, errOut.String(), "alphabet")
	})

	t.Run("Prompts show the status", func(t *testing.T) {
		var out bytes.Buffer
		c := cli.NewConsole(strings.NewReader(anbn+"a\n.\n"), &out, &bytes.Buffer{}, cli.WithPrompts(true))
		a, err := c.Build()
		require.NoError(t, err)

		c.Run(context.Background(), a)
		assert.Contains(t, out.String(), "Enter the number of states")
		assert.Contains(t, out.String(), "Current status 0:$, Enter input: ")
		assert.Contains(t, out.String(), "Current status 0:A$, Enter input: ")
		assert.Contains(t, out.String(), "String rejected.")
	})

	t.Run("Cancelled context stops reading", func(t *testing.T) {
		var out bytes.Buffer
		c := cli.NewConsole(strings.NewReader(anbn+"a\nb\n.\n"), &out, &bytes.Buffer{})
		a, err := c.Build()
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Equal(t, domain.VerdictRejected, c.Run(ctx, a))
		assert.Equal(t, "0:$", a.CurrentStatus())
	})
}

func TestCheck(t *testing.T) {
	c := cli.NewConsole(strings.NewReader(anbn), &bytes.Buffer{}, &bytes.Buffer{})
	a, err := c.Build()
	require.NoError(t, err)

	var out bytes.Buffer
	accepted := cli.Check(a, []string{"", "ab", "aabb", "abb", "ba", "ax"}, &out)
	assert.Equal(t, 2, accepted)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "\t0:$\tString rejected.", lines[0])
	assert.Equal(t, "ab\t1:$\tString accepted.", lines[1])
	assert.Equal(t, "aabb\t1:$\tString accepted.", lines[2])
	assert.Equal(t, "abb\ttrapped\tString rejected.", lines[3])
	assert.Equal(t, "ba\ttrapped\tString rejected.", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "ax\terror: "))
}
