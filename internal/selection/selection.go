// Package selection defines the caller-supplied decision state that the
// recommendation engine scores, plus the presets and validation the
// presentation layer applies before handing a selection to the engine.
package selection

import (
	"slices"
	"strings"

	"github.com/HendryAvila/kpimap/internal/catalog"
)

// Selection is the full set of user choices for one evaluation.
//
// The three multi-select fields are sets; single-choice fields use ""
// for "not selected". Gating rules only ever match exact ids, so an
// unset field can never trigger one by coincidence.
type Selection struct {
	Intents   []string `json:"intents" yaml:"intents" validate:"dive,intent"`
	Audiences []string `json:"audiences" yaml:"audiences" validate:"dive,audience"`
	Latencies []string `json:"latencies" yaml:"latencies" validate:"dive,latency"`

	Maturity    string `json:"maturity,omitempty" yaml:"maturity,omitempty" validate:"omitempty,maturity"`
	Scope       string `json:"scope,omitempty" yaml:"scope,omitempty" validate:"omitempty,scope"`
	Interaction string `json:"interaction,omitempty" yaml:"interaction,omitempty" validate:"omitempty,interaction"`
	Indicators  string `json:"indicators,omitempty" yaml:"indicators,omitempty" validate:"omitempty,indicators"`
}

// HasIntent reports whether id is among the chosen intents.
func (s Selection) HasIntent(id string) bool {
	return slices.Contains(s.Intents, id)
}

// HasAudience reports whether id is among the chosen audiences.
func (s Selection) HasAudience(id string) bool {
	return slices.Contains(s.Audiences, id)
}

// HasLatency reports whether id is among the chosen latencies.
func (s Selection) HasLatency(id string) bool {
	return slices.Contains(s.Latencies, id)
}

// Choices returns the ids chosen for a group. Single-choice groups
// yield zero or one id.
func (s Selection) Choices(g catalog.Group) []string {
	switch g {
	case catalog.GroupIntent:
		return slices.Clone(s.Intents)
	case catalog.GroupAudience:
		return slices.Clone(s.Audiences)
	case catalog.GroupLatency:
		return slices.Clone(s.Latencies)
	}
	if v := s.single(g); v != "" {
		return []string{v}
	}
	return nil
}

func (s Selection) single(g catalog.Group) string {
	switch g {
	case catalog.GroupMaturity:
		return s.Maturity
	case catalog.GroupScope:
		return s.Scope
	case catalog.GroupInteraction:
		return s.Interaction
	case catalog.GroupIndicators:
		return s.Indicators
	}
	return ""
}

// Normalize returns a copy with whitespace trimmed, blank entries
// removed, and duplicate ids dropped from the sets (first occurrence
// wins). Sets are never nil in the result.
func (s Selection) Normalize() Selection {
	return Selection{
		Intents:     dedupe(s.Intents),
		Audiences:   dedupe(s.Audiences),
		Latencies:   dedupe(s.Latencies),
		Maturity:    strings.TrimSpace(s.Maturity),
		Scope:       strings.TrimSpace(s.Scope),
		Interaction: strings.TrimSpace(s.Interaction),
		Indicators:  strings.TrimSpace(s.Indicators),
	}
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Clone returns a deep copy.
func (s Selection) Clone() Selection {
	c := s
	c.Intents = slices.Clone(s.Intents)
	c.Audiences = slices.Clone(s.Audiences)
	c.Latencies = slices.Clone(s.Latencies)
	return c
}
