package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/aretw0/dpda/pkg/domain"
)

// Overlay carries run state to highlight on the graph.
type Overlay struct {
	State   int
	Trapped bool
}

// OverlayOf captures the current run state of a.
func OverlayOf(a *automaton.Automaton) *Overlay {
	return &Overlay{State: a.State(), Trapped: a.InTrappedState()}
}

// GenerateMermaid produces a Mermaid flowchart of the automaton's topology.
// State 0 is drawn as a circle and accepting states as double circles. Every
// group of transitions sharing a source and target becomes one edge, labelled
// with one "input, pop → push" line per transition.
func GenerateMermaid(a *automaton.Automaton, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for s := 0; s < a.Size(); s++ {
		opener, closer := "[", "]"
		switch {
		case a.IsFinal(s):
			opener, closer = "(((", ")))"
		case s == 0:
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"q%d\"%s\n", nodeID(s), opener, s, closer))
	}

	for s := 0; s < a.Size(); s++ {
		groups, err := a.Groups(s)
		if err != nil {
			continue
		}
		for _, g := range groups {
			labels := make([]string, 0, len(g.Transitions))
			for _, tr := range g.Transitions {
				labels = append(labels, EdgeLabel(tr))
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", nodeID(s), strings.Join(labels, "<br/>"), nodeID(g.Target)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef trapped fill:#fecaca,stroke:#b91c1c,stroke-width:4px,color:#000;\n")
		class := "current"
		if overlay.Trapped {
			class = "trapped"
		}
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", nodeID(overlay.State), class))
	}

	return sb.String()
}

// EdgeLabel renders a transition as "input, pop → push", quotes escaped for
// Mermaid.
func EdgeLabel(tr domain.Transition) string {
	e := automaton.NewEdgeView(tr)
	return strings.ReplaceAll(fmt.Sprintf("%s, %s → %s", e.Consumed, e.Pop, e.Push), `"`, "#quot;")
}

func nodeID(s int) string {
	return fmt.Sprintf("q%d", s)
}
