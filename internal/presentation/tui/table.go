package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/dpda/pkg/automaton"
)

// Markdown describes the automaton as a markdown document: a summary list
// followed by the transition table.
func Markdown(a *automaton.Automaton) string {
	d := a.Describe()

	finals := make([]string, 0, len(d.FinalStates))
	for _, s := range d.FinalStates {
		finals = append(finals, fmt.Sprintf("q%d", s))
	}
	if len(finals) == 0 {
		finals = append(finals, "none")
	}

	var sb strings.Builder
	sb.WriteString("# Automaton\n\n")
	sb.WriteString(fmt.Sprintf("- **States:** %d\n", d.States))
	sb.WriteString(fmt.Sprintf("- **Alphabet:** `%s`\n", d.Alphabet))
	sb.WriteString(fmt.Sprintf("- **Final states:** %s\n", strings.Join(finals, ", ")))
	sb.WriteString(fmt.Sprintf("- **Transitions:** %d\n\n", len(d.Transitions)))

	if len(d.Transitions) == 0 {
		return sb.String()
	}

	sb.WriteString("| Source | Input | Pop | Target | Push |\n")
	sb.WriteString("|--------|-------|-----|--------|------|\n")
	for _, e := range d.Transitions {
		sb.WriteString(fmt.Sprintf("| q%d | %s | %s | q%d | %s |\n",
			e.Source, cell(e.Consumed), cell(e.Pop), e.Target, cell(e.Push)))
	}
	return sb.String()
}

// cell wraps a symbol in backticks so markdown leaves it alone.
func cell(s string) string {
	return "`" + strings.ReplaceAll(s, "|", "\\|") + "`"
}

// Describe renders Markdown(a) with render.
func Describe(a *automaton.Automaton, render func(string) (string, error)) (string, error) {
	return render(Markdown(a))
}
