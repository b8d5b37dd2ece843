// Package engine implements the dashboard recommendation engine.
//
// Evaluate is a pure function of its Selection: it tallies weighted votes
// from the option catalogs, applies the preflight gating rules, ranks the
// four archetypes, and derives confidence and an optional hybrid
// suggestion. It performs no I/O and keeps no state between calls, so
// it is safe to call from any number of goroutines.
package engine

import (
	"cmp"
	"slices"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/selection"
)

// Vote multipliers per input group. Core intent counts twice as much as
// audience or cadence signals.
const (
	IntentWeight   = 2
	AudienceWeight = 1
	LatencyWeight  = 1
)

// Scores maps every archetype to its accumulated score. All four
// archetypes are always present, including at zero or below.
type Scores map[catalog.Archetype]int

func newScores() Scores {
	s := make(Scores, 4)
	for _, a := range catalog.Archetypes() {
		s[a] = 0
	}
	return s
}

func (s Scores) add(votes catalog.Votes, weight int) {
	for a, w := range votes {
		if _, ok := s[a]; ok {
			s[a] += w * weight
		}
	}
}

// Entry is one (archetype, score) pair in the ranking.
type Entry struct {
	Archetype catalog.Archetype `json:"type"`
	Score     int               `json:"score"`
}

// Hybrid suggests combining the top two archetypes when neither wins clearly.
type Hybrid struct {
	// Pair is "<Primary> + <Secondary>" in rank order.
	Pair string `json:"pair"`
	Note string `json:"note"`
}

// Recommendation is the full result of one evaluation.
type Recommendation struct {
	Scores     Scores     `json:"scores"`
	Ranking    []Entry    `json:"ranking"`
	Primary    Entry      `json:"primary"`
	Secondary  Entry      `json:"secondary"`
	Margin     int        `json:"margin"`
	Confidence Confidence `json:"confidence"`
	Hybrid     *Hybrid    `json:"hybrid,omitempty"`
	// Notes are advisory strings in the order their rules were evaluated.
	Notes []string `json:"notes"`
}

// Evaluate scores a selection and returns the complete recommendation.
// It never fails: unknown ids contribute zero votes and unset modifiers
// match no rule. The selection is normalized first, so a repeated id
// counts once.
func Evaluate(sel selection.Selection) Recommendation {
	sel = sel.Normalize()
	scores := newScores()

	for _, id := range sel.Intents {
		scores.add(catalog.VotesFor(catalog.GroupIntent, id), IntentWeight)
	}
	for _, id := range sel.Audiences {
		scores.add(catalog.VotesFor(catalog.GroupAudience, id), AudienceWeight)
	}
	for _, id := range sel.Latencies {
		scores.add(catalog.VotesFor(catalog.GroupLatency, id), LatencyWeight)
	}

	notes := applyGates(sel, scores)

	ranking := rank(scores)
	primary, secondary := ranking[0], ranking[1]
	margin := primary.Score - secondary.Score

	rec := Recommendation{
		Scores:     scores,
		Ranking:    ranking,
		Primary:    primary,
		Secondary:  secondary,
		Margin:     margin,
		Confidence: ConfidenceFor(margin),
		Notes:      notes,
	}
	if margin <= HybridMaxMargin {
		rec.Hybrid = suggestHybrid(primary.Archetype, secondary.Archetype)
	}
	return rec
}

// rank orders the archetypes by descending score. The sort is stable
// over the canonical order, so ties never reorder.
func rank(scores Scores) []Entry {
	ranking := make([]Entry, 0, len(scores))
	for _, a := range catalog.Archetypes() {
		ranking = append(ranking, Entry{Archetype: a, Score: scores[a]})
	}
	slices.SortStableFunc(ranking, func(x, y Entry) int {
		return cmp.Compare(y.Score, x.Score)
	})
	return ranking
}
