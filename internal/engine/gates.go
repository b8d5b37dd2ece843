package engine

import (
	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/selection"
)

// Advisory notes appended by the gating rules.
const (
	NoteRealTimeMismatch = "Data maturity cannot meet real‑time: −3 Operational, −1 Tactical. Consider phased approach."
	NoteManualData       = "Manual data: penalized Operational/Tactical."
	NoteEnterpriseScope  = "Enterprise scope → +2 Strategic."
	NoteProcessScope     = "Single process (SLAs) → +2 Operational."
	NoteRichInteraction  = "Rich first view → +2 Analytical."
	NoteLaggingOps       = "Operational with lagging indicators → add leading signals."
)

// Gate is a preflight rule: when it matches, it shifts scores by Adjust
// and appends Note. A gate with no Adjust is advisory only.
type Gate struct {
	Name   string
	Adjust catalog.Votes
	Note   string
	match  func(selection.Selection) bool
}

// gates run in this order; the order is observable through Notes.
// Scope holds a single value, so at most one of the two scope gates fires,
// enterprise first.
var gates = []Gate{
	{
		Name:   "realtime-maturity",
		Adjust: catalog.Votes{catalog.Operational: -3, catalog.Tactical: -1},
		Note:   NoteRealTimeMismatch,
		match: func(s selection.Selection) bool {
			// Unset maturity is "not streaming": real-time can't be promised.
			return s.HasLatency(catalog.LatencyRealTime) && s.Maturity != catalog.MaturityStreaming
		},
	},
	{
		Name:   "manual-maturity",
		Adjust: catalog.Votes{catalog.Operational: -4, catalog.Tactical: -2},
		Note:   NoteManualData,
		match:  func(s selection.Selection) bool { return s.Maturity == catalog.MaturityManual },
	},
	{
		Name:   "enterprise-scope",
		Adjust: catalog.Votes{catalog.Strategic: 2},
		Note:   NoteEnterpriseScope,
		match:  func(s selection.Selection) bool { return s.Scope == catalog.ScopeEnterprise },
	},
	{
		Name:   "process-scope",
		Adjust: catalog.Votes{catalog.Operational: 2},
		Note:   NoteProcessScope,
		match:  func(s selection.Selection) bool { return s.Scope == catalog.ScopeProcess },
	},
	{
		Name:   "rich-interaction",
		Adjust: catalog.Votes{catalog.Analytical: 2},
		Note:   NoteRichInteraction,
		match:  func(s selection.Selection) bool { return s.Interaction == catalog.InteractionRich },
	},
	{
		Name: "lagging-operational",
		Note: NoteLaggingOps,
		match: func(s selection.Selection) bool {
			return s.HasIntent(catalog.IntentOperational) && s.Indicators == catalog.IndicatorsLagging
		},
	},
}

// Gates returns the gating rules in evaluation order, for listings.
func Gates() []Gate {
	out := make([]Gate, len(gates))
	for i, g := range gates {
		adj := make(catalog.Votes, len(g.Adjust))
		for a, w := range g.Adjust {
			adj[a] = w
		}
		g.Adjust = adj
		out[i] = g
	}
	return out
}

// applyGates adjusts scores in place and returns the notes of every
// rule that fired, in rule order. The result is never nil.
func applyGates(sel selection.Selection, scores Scores) []string {
	notes := []string{}
	for _, g := range gates {
		if !g.match(sel) {
			continue
		}
		scores.add(g.Adjust, 1)
		notes = append(notes, g.Note)
	}
	return notes
}
