package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/engine"
	"github.com/HendryAvila/kpimap/internal/selection"
)

func pinClock(t *testing.T) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return time.Date(2026, 3, 9, 15, 4, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = orig })
}

func mustRenderer(t *testing.T) *EmbedRenderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}
	return r
}

func manyNotes() engine.Recommendation {
	return engine.Recommendation{
		Scores: engine.Scores{
			catalog.Strategic: 1, catalog.Operational: 5,
			catalog.Tactical: 4, catalog.Analytical: 0,
		},
		Primary:    engine.Entry{Archetype: catalog.Operational, Score: 5},
		Secondary:  engine.Entry{Archetype: catalog.Tactical, Score: 4},
		Margin:     1,
		Confidence: engine.ConfidenceLow,
		Hybrid:     &engine.Hybrid{Pair: "Operational + Tactical", Note: "Ops tiles + initiative tracker."},
		Notes: []string{
			engine.NoteRealTimeMismatch,
			engine.NoteEnterpriseScope,
			engine.NoteProcessScope,
			engine.NoteRichInteraction,
			engine.NoteLaggingOps,
		},
	}
}

// --- NewRenderer ---

func TestNewRenderer_Succeeds(t *testing.T) {
	r := mustRenderer(t)
	for _, name := range []string{Report, OnePager} {
		if r.tmpl.Lookup(name) == nil {
			t.Errorf("template %s not parsed", name)
		}
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := mustRenderer(t)
	_, err := r.Render("nonexistent.md.tmpl", nil)
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if !strings.Contains(err.Error(), "nonexistent.md.tmpl") {
		t.Errorf("error should name the template, got: %v", err)
	}
}

// --- Report ---

func TestRender_ReportForDefaults(t *testing.T) {
	pinClock(t)
	r := mustRenderer(t)

	sel := selection.Defaults()
	data := NewReportData(sel, engine.Evaluate(sel), 0)
	out, err := r.Render(Report, data)
	if err != nil {
		t.Fatalf("Render(Report) failed: %v", err)
	}

	checks := []string{
		"# Recommended: Strategic Dashboard",
		catalog.Meta(catalog.Strategic).Blurb,
		"`Exec view`",
		"**Confidence:** High",
		"| Strategic | 10 |",
		"## Preflight notes",
		"No cautions for this combination.",
		"- **Intent:** " + catalog.Label(catalog.GroupIntent, catalog.IntentStrategic),
		"- **Scope:** " + catalog.Label(catalog.GroupScope, catalog.ScopeFunction),
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n---\n%s", want, out)
		}
	}
	if strings.Contains(out, "## Hybrid") {
		t.Error("high-confidence report should not suggest a hybrid")
	}
}

func TestRender_ReportScoresInCanonicalOrder(t *testing.T) {
	r := mustRenderer(t)
	out, err := r.Render(Report, NewReportData(selection.Empty(), manyNotes(), 0))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	last := -1
	for _, a := range catalog.Archetypes() {
		idx := strings.Index(out, "| "+string(a)+" |")
		if idx < 0 {
			t.Fatalf("score row for %s missing", a)
		}
		if idx < last {
			t.Errorf("score row for %s out of order", a)
		}
		last = idx
	}
}

func TestRender_ReportIncludesEveryNoteAndHybrid(t *testing.T) {
	r := mustRenderer(t)
	rec := manyNotes()
	out, err := r.Render(Report, NewReportData(selection.Empty(), rec, 0))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, n := range rec.Notes {
		if !strings.Contains(out, "- "+n) {
			t.Errorf("report missing note %q", n)
		}
	}
	if !strings.Contains(out, "**Operational + Tactical** — Ops tiles + initiative tracker.") {
		t.Errorf("report missing hybrid line:\n%s", out)
	}
}

// --- One-pager ---

func TestRender_OnePagerEmptySelection(t *testing.T) {
	pinClock(t)
	r := mustRenderer(t)

	sel := selection.Empty()
	out, err := r.Render(OnePager, NewReportData(sel, engine.Evaluate(sel), DefaultOnePagerNotes))
	if err != nil {
		t.Fatalf("Render(OnePager) failed: %v", err)
	}

	checks := []string{
		"# KPI Decision Map — One-Pager",
		"Generated: 2026-03-09",
		"- **Intent:** —",
		"- **Audience:** —",
		"- **Latency:** —",
		"- **Data maturity:** Not selected",
		"- **Indicator mix:** Not selected",
		"**Strategic Dashboard**",
		"`Exec view` `Objectives` `M/Q cadence`",
		"Confidence: Low (margin 0)",
		"Hybrid: Strategic + Operational — " + engine.HybridFallbackNote,
		"None.",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("one-pager missing %q\n---\n%s", want, out)
		}
	}
}

func TestRender_OnePagerCapsNotes(t *testing.T) {
	r := mustRenderer(t)
	rec := manyNotes()
	out, err := r.Render(OnePager, NewReportData(selection.Empty(), rec, DefaultOnePagerNotes))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, n := range rec.Notes[:DefaultOnePagerNotes] {
		if !strings.Contains(out, "- "+n) {
			t.Errorf("one-pager missing note %q", n)
		}
	}
	if strings.Contains(out, rec.Notes[4]) {
		t.Errorf("one-pager should drop the fifth note, got:\n%s", out)
	}
	if !strings.Contains(out, "…and 1 more") {
		t.Errorf("one-pager should count hidden notes, got:\n%s", out)
	}
}

// --- NewReportData ---

func TestNewReportData_ResolvesLabels(t *testing.T) {
	sel := selection.Selection{
		Intents:   []string{catalog.IntentOperational, "bogus"},
		Latencies: []string{catalog.LatencyRealTime},
		Maturity:  catalog.MaturityManual,
	}
	data := NewReportData(sel, engine.Evaluate(sel), 0)

	if len(data.Intents) != 1 || data.Intents[0] != catalog.Label(catalog.GroupIntent, catalog.IntentOperational) {
		t.Errorf("Intents = %v, want the operational label only", data.Intents)
	}
	if data.Latencies[0] != catalog.Label(catalog.GroupLatency, catalog.LatencyRealTime) {
		t.Errorf("Latencies = %v", data.Latencies)
	}
	if data.Maturity != catalog.Label(catalog.GroupMaturity, catalog.MaturityManual) {
		t.Errorf("Maturity = %q", data.Maturity)
	}
	if data.Scope != "" {
		t.Errorf("Scope = %q, want empty", data.Scope)
	}
}

func TestNewReportData_NoteCapDoesNotAlias(t *testing.T) {
	rec := manyNotes()
	data := NewReportData(selection.Empty(), rec, 2)

	if len(data.Notes) != 2 || data.HiddenNotes != 3 {
		t.Fatalf("Notes = %d hidden = %d, want 2 and 3", len(data.Notes), data.HiddenNotes)
	}
	data.Notes[0] = "changed"
	if rec.Notes[0] != engine.NoteRealTimeMismatch {
		t.Error("NewReportData must copy notes")
	}
}

func TestNewReportData_AllNotesWhenUncapped(t *testing.T) {
	data := NewReportData(selection.Empty(), manyNotes(), 0)
	if len(data.Notes) != 5 || data.HiddenNotes != 0 {
		t.Errorf("Notes = %d hidden = %d, want 5 and 0", len(data.Notes), data.HiddenNotes)
	}
}
