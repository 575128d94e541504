package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/dpda/internal/presentation/tui"
	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	a, err := automaton.New(2, "a|")
	require.NoError(t, err)
	a.AddFinalStates(1)
	require.NoError(t, a.AddTransition(0, 1, 'a', '$', "A$"))
	require.NoError(t, a.AddTransition(1, 0, '|', 'A', "."))

	md := tui.Markdown(a)
	assert.Contains(t, md, "- **States:** 2\n")
	assert.Contains(t, md, "- **Final states:** q1\n")
	assert.Contains(t, md, "| q0 | `a` | `$` | q1 | `A$` |\n")
	assert.Contains(t, md, "| q1 | `\\|` | `A` | q0 | `.` |\n")
}

func TestMarkdown_Empty(t *testing.T) {
	a, err := automaton.New(1, "a")
	require.NoError(t, err)

	md := tui.Markdown(a)
	assert.Contains(t, md, "- **Final states:** none\n")
	assert.NotContains(t, md, "| Source |")
}

func TestDescribe_Plain(t *testing.T) {
	a, err := automaton.New(1, "a")
	require.NoError(t, err)
	require.NoError(t, a.AddTransition(0, 0, 'a', '.', "."))

	out, err := tui.Describe(a, tui.NewPlainRenderer())
	require.NoError(t, err)
	assert.Contains(t, out, "Automaton")
	assert.Contains(t, out, "Source")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "1.2.3")
}
