package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/countdown/pkg/domain"
)

// Overlay highlights runtime data on the diagram.
type Overlay struct {
	Visited []domain.StateName
	Current domain.StateName
}

// GenerateMermaid renders the transition table as a Mermaid flowchart.
// Shapes:
// - pending: ((Circle))
// - selectDate: [/Parallelogram/] (waits for input)
// - arrived: (((Double circle))) (terminal)
// - others: [Rectangle]
// Transitions are solid arrows labelled with the input. Follow-up inputs
// raised without leaving the state are drawn as dotted self loops.
func GenerateMermaid(edges []domain.Edge, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	seen := make(map[domain.StateName]bool)
	declare := func(s domain.StateName) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		opener, closer := "[", "]"
		switch s {
		case domain.StatePending:
			opener, closer = "((", "))"
		case domain.StateSelectDate:
			opener, closer = "[/", "/]"
		case domain.StateArrived:
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeID(s), opener, s, closer)
	}

	for _, e := range edges {
		declare(e.From)
		declare(e.To)
	}

	for _, e := range edges {
		from := sanitizeID(e.From)
		label := escapeLabel(string(e.Input))
		switch e.Kind {
		case domain.EdgeTransition:
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", from, label, sanitizeID(e.To))
		case domain.EdgeEmit:
			emits := make([]string, len(e.Emits))
			for i, id := range e.Emits {
				emits[i] = escapeLabel(string(id))
			}
			fmt.Fprintf(&sb, "    %s -. \"%s ⇒ %s\" .-> %s\n", from, label, strings.Join(emits, " | "), from)
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		styled := make(map[string]bool)
		for _, s := range overlay.Visited {
			id := sanitizeID(s)
			if id != "" && !styled[id] {
				styled[id] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", id)
			}
		}
		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeID(overlay.Current))
		}
	}

	return sb.String()
}

func sanitizeID(s domain.StateName) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(string(s))
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
