package templates

import (
	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/engine"
	"github.com/HendryAvila/kpimap/internal/selection"
)

// DefaultOnePagerNotes caps the notes printed on the one-pager.
const DefaultOnePagerNotes = 4

// ReportData is the view model shared by both layouts. Ids are resolved
// to labels here so the templates never touch the catalogs.
type ReportData struct {
	Generated string

	Intents   []string
	Audiences []string
	Latencies []string

	Maturity    string
	Scope       string
	Interaction string
	Indicators  string

	Title string
	Blurb string
	Chips []string

	Confidence engine.Confidence
	Margin     int
	// Scores lists every archetype in canonical order.
	Scores []engine.Entry
	Hybrid *engine.Hybrid

	Notes []string
	// HiddenNotes counts notes dropped by a note cap.
	HiddenNotes int
}

// NewReportData builds the view for a selection and the recommendation
// it produced. maxNotes <= 0 keeps every note.
func NewReportData(sel selection.Selection, rec engine.Recommendation, maxNotes int) ReportData {
	meta := catalog.Meta(rec.Primary.Archetype)

	scores := make([]engine.Entry, 0, len(rec.Scores))
	for _, a := range catalog.Archetypes() {
		scores = append(scores, engine.Entry{Archetype: a, Score: rec.Scores[a]})
	}

	notes := rec.Notes
	hidden := 0
	if maxNotes > 0 && len(notes) > maxNotes {
		hidden = len(notes) - maxNotes
		notes = notes[:maxNotes]
	}

	return ReportData{
		Generated:   timeNow().Format("2006-01-02"),
		Intents:     labels(catalog.GroupIntent, sel.Intents),
		Audiences:   labels(catalog.GroupAudience, sel.Audiences),
		Latencies:   labels(catalog.GroupLatency, sel.Latencies),
		Maturity:    catalog.Label(catalog.GroupMaturity, sel.Maturity),
		Scope:       catalog.Label(catalog.GroupScope, sel.Scope),
		Interaction: catalog.Label(catalog.GroupInteraction, sel.Interaction),
		Indicators:  catalog.Label(catalog.GroupIndicators, sel.Indicators),
		Title:       meta.Title,
		Blurb:       meta.Blurb,
		Chips:       meta.Chips,
		Confidence:  rec.Confidence,
		Margin:      rec.Margin,
		Scores:      scores,
		Hybrid:      rec.Hybrid,
		Notes:       append([]string(nil), notes...),
		HiddenNotes: hidden,
	}
}

// labels resolves ids to labels, skipping ids the catalog doesn't know.
func labels(g catalog.Group, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if l := catalog.Label(g, id); l != "" {
			out = append(out, l)
		}
	}
	return out
}
