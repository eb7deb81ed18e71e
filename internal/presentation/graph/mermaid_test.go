package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/countdown/internal/presentation/graph"
	"github.com/aretw0/countdown/internal/runtime"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		edges    []domain.Edge
		contains []string
		excludes []string
	}{
		{
			name: "State Shapes",
			edges: []domain.Edge{
				{From: domain.StatePending, Input: domain.InputSelectDate, Kind: domain.EdgeTransition, To: domain.StateSelectDate},
				{From: domain.StateCountdown, Input: domain.InputArrived, Kind: domain.EdgeTransition, To: domain.StateArrived},
			},
			contains: []string{
				`pending(("pending"))`,
				`selectDate[/"selectDate"/]`,
				`countdown["countdown"]`,
				`arrived((("arrived")))`,
			},
		},
		{
			name: "Transition Label",
			edges: []domain.Edge{
				{From: domain.StateCountdown, Input: domain.InputError, Kind: domain.EdgeTransition, To: domain.StateSelectDate},
			},
			contains: []string{`countdown -- "error" --> selectDate`},
		},
		{
			name: "Emit Self Loop",
			edges: []domain.Edge{
				{From: domain.StateCountdown, Input: domain.InputFinishCountdown, Kind: domain.EdgeEmit, Emits: []domain.InputID{domain.InputDateSelected}},
			},
			contains: []string{`countdown -. "finishCountdown ⇒ dateSelected" .-> countdown`},
		},
		{
			name: "Stay Has No Arrow",
			edges: []domain.Edge{
				{From: domain.StateArrived, Input: domain.InputArrived, Kind: domain.EdgeStay},
			},
			contains: []string{`arrived((("arrived")))`},
			excludes: []string{"-->", ".->"},
		},
		{
			name: "ID Sanitization",
			edges: []domain.Edge{
				{From: "a-b", Input: `say "hi"`, Kind: domain.EdgeTransition, To: "c/d"},
			},
			contains: []string{`a_b -- "say 'hi'" --> c_d`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(tt.edges, nil)
			assert.True(t, strings.HasPrefix(out, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	out := graph.GenerateMermaid(runtime.TransitionTable(), &graph.Overlay{
		Visited: []domain.StateName{domain.StatePending, domain.StateSelectDate, domain.StatePending},
		Current: domain.StateCountdown,
	})

	assert.Contains(t, out, "classDef current")
	assert.Equal(t, 1, strings.Count(out, "class pending visited;"))
	assert.Contains(t, out, "class selectDate visited;")
	assert.Contains(t, out, "class countdown current;")
}

func TestGenerateMermaid_FullTable(t *testing.T) {
	out := graph.GenerateMermaid(runtime.TransitionTable(), nil)

	assert.Contains(t, out, `pending -- "dateSelected" --> countdown`)
	assert.Contains(t, out, `countdown -- "selectDate" --> selectDate`)
	assert.Contains(t, out, `countdown -- "arrived" --> arrived`)
	assert.NotContains(t, out, "classDef")
}
