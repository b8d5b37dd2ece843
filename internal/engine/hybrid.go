package engine

import "github.com/HendryAvila/kpimap/internal/catalog"

// HybridFallbackNote is used for archetype pairs without canned advice.
const HybridFallbackNote = "Combine strengths of top two."

// pair is an unordered archetype pair, stored in alphabetical order.
type pair [2]catalog.Archetype

func pairOf(a, b catalog.Archetype) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}

// hybridNotes is looked up by alphabetical pair. The Strategic/Analytical
// key is not alphabetical, so pairOf never produces it and that pair
// falls back together with Analytical/Operational and Operational/Strategic.
var hybridNotes = map[pair]string{
	{catalog.Analytical, catalog.Tactical}:  "Analytical for diagnosis + Tactical for delivery.",
	{catalog.Operational, catalog.Tactical}: "Operational wallboard + Tactical weekly steering.",
	{catalog.Strategic, catalog.Analytical}: "Strategic overview + Analytical deep dives.",
	{catalog.Strategic, catalog.Tactical}:   "Strategic overview + Tactical initiatives (default hybrid).",
}

// HybridNote returns the advice for combining a and b, in either order.
func HybridNote(a, b catalog.Archetype) string {
	if note, ok := hybridNotes[pairOf(a, b)]; ok {
		return note
	}
	return HybridFallbackNote
}

func suggestHybrid(primary, secondary catalog.Archetype) *Hybrid {
	return &Hybrid{
		Pair: string(primary) + " + " + string(secondary),
		Note: HybridNote(primary, secondary),
	}
}
