// Package catalog holds the static data the recommender scores against:
// the four dashboard archetypes, their display metadata, and the option
// catalogs with their vote vectors.
//
// Everything here is built once at package init and never mutated.
// Accessors return copies so callers cannot reach the shared tables.
package catalog

import "fmt"

// --- Archetype enum ---

// Archetype is one of the four dashboard categories the engine recommends.
type Archetype string

const (
	Strategic   Archetype = "Strategic"
	Operational Archetype = "Operational"
	Tactical    Archetype = "Tactical"
	Analytical  Archetype = "Analytical"
)

// archetypeOrder is the canonical declaration order. Ranking ties keep it.
var archetypeOrder = [...]Archetype{Strategic, Operational, Tactical, Analytical}

// Archetypes returns the four archetypes in canonical order.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypeOrder))
	copy(out, archetypeOrder[:])
	return out
}

// Index returns the archetype's position in the canonical order,
// or -1 if it is not one of the four.
func (a Archetype) Index() int {
	for i, known := range archetypeOrder {
		if known == a {
			return i
		}
	}
	return -1
}

// Valid reports whether a is one of the four archetypes.
func (a Archetype) Valid() bool {
	return a.Index() >= 0
}

// ParseArchetype resolves a name to an Archetype.
func ParseArchetype(s string) (Archetype, error) {
	a := Archetype(s)
	if !a.Valid() {
		return "", fmt.Errorf("invalid archetype %q: must be one of: Strategic, Operational, Tactical, Analytical", s)
	}
	return a, nil
}

// --- Display metadata ---

// ArchetypeMeta is presentation-only data for an archetype; scoring never reads it.
type ArchetypeMeta struct {
	Archetype Archetype `json:"type"`
	Title     string    `json:"title"`
	Blurb     string    `json:"blurb"`
	Chips     []string  `json:"chips"`
}

var archetypeMeta = map[Archetype]ArchetypeMeta{
	Strategic: {
		Archetype: Strategic,
		Title:     "Strategic Dashboard",
		Blurb:     "Tracks outcomes vs. objectives for leaders; curated KPIs, trends, variance (monthly/quarterly).",
		Chips:     []string{"Exec view", "Objectives", "M/Q cadence"},
	},
	Operational: {
		Archetype: Operational,
		Title:     "Operational Dashboard",
		Blurb:     "Monitors live/near-real-time process health; SLAs, exceptions, queues, alerts.",
		Chips:     []string{"Real‑time", "SLAs", "Exceptions"},
	},
	Tactical: {
		Archetype: Tactical,
		Title:     "Tactical Dashboard",
		Blurb:     "Steers initiatives/campaigns over weeks-months; owners, milestones, target progress.",
		Chips:     []string{"Programs", "Weekly", "Milestones"},
	},
	Analytical: {
		Archetype: Analytical,
		Title:     "Analytical Dashboard",
		Blurb:     "Supports diagnosis and discovery; drill-downs, segmentation, comparisons.",
		Chips:     []string{"Exploration", "Drill‑downs", "Cohorts"},
	},
}

// Meta returns the display metadata for a. Unknown archetypes fall back
// to Strategic, matching what the presentation layer shows before any
// recommendation exists.
func Meta(a Archetype) ArchetypeMeta {
	m, ok := archetypeMeta[a]
	if !ok {
		m = archetypeMeta[Strategic]
	}
	m.Chips = append([]string(nil), m.Chips...)
	return m
}

// AllMeta returns metadata for all four archetypes in canonical order.
func AllMeta() []ArchetypeMeta {
	out := make([]ArchetypeMeta, 0, len(archetypeOrder))
	for _, a := range archetypeOrder {
		out = append(out, Meta(a))
	}
	return out
}
