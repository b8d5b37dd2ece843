package catalog

import "testing"

// --- Archetypes ---

func TestArchetypes_CanonicalOrder(t *testing.T) {
	want := []Archetype{Strategic, Operational, Tactical, Analytical}
	got := Archetypes()
	if len(got) != len(want) {
		t.Fatalf("Archetypes() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Archetypes()[%d] = %s, want %s", i, got[i], want[i])
		}
		if got[i].Index() != i {
			t.Errorf("%s.Index() = %d, want %d", got[i], got[i].Index(), i)
		}
	}
}

func TestArchetypes_ReturnsCopy(t *testing.T) {
	got := Archetypes()
	got[0] = Analytical
	if Archetypes()[0] != Strategic {
		t.Error("mutating the returned slice must not change the canonical order")
	}
}

func TestParseArchetype(t *testing.T) {
	if a, err := ParseArchetype("Tactical"); err != nil || a != Tactical {
		t.Errorf("ParseArchetype(Tactical) = %q, %v", a, err)
	}
	if _, err := ParseArchetype("tactical"); err == nil {
		t.Error("ParseArchetype is case-sensitive and should reject 'tactical'")
	}
	if Archetype("Hybrid").Valid() {
		t.Error("Hybrid is not an archetype")
	}
}

func TestMeta_AllArchetypesHaveTitleAndChips(t *testing.T) {
	for _, m := range AllMeta() {
		if m.Title == "" || m.Blurb == "" {
			t.Errorf("%s: missing title or blurb", m.Archetype)
		}
		if len(m.Chips) != 3 {
			t.Errorf("%s: %d chips, want 3", m.Archetype, len(m.Chips))
		}
	}
}

func TestMeta_UnknownFallsBackToStrategic(t *testing.T) {
	if got := Meta("Nope").Title; got != "Strategic Dashboard" {
		t.Errorf("Meta(unknown).Title = %q, want Strategic Dashboard", got)
	}
}

func TestMeta_ChipsAreCopied(t *testing.T) {
	m := Meta(Operational)
	m.Chips[0] = "mutated"
	if Meta(Operational).Chips[0] != "Real‑time" {
		t.Error("Meta must return a copy of the chips slice")
	}
}

// --- Option catalogs ---

func TestOptions_CatalogSizes(t *testing.T) {
	want := map[Group]int{
		GroupIntent:      4,
		GroupAudience:    4,
		GroupLatency:     4,
		GroupMaturity:    3,
		GroupScope:       3,
		GroupInteraction: 2,
		GroupIndicators:  3,
	}
	for g, n := range want {
		if got := len(Options(g)); got != n {
			t.Errorf("len(Options(%s)) = %d, want %d", g, got, n)
		}
	}
}

func TestOptions_OnlyVotingGroupsCarryVotes(t *testing.T) {
	for _, g := range Groups() {
		for _, o := range Options(g) {
			hasVotes := len(o.Votes) > 0
			if hasVotes != g.MultiSelect() {
				t.Errorf("%s/%s: hasVotes = %v, want %v", g, o.ID, hasVotes, g.MultiSelect())
			}
			for a, w := range o.Votes {
				if !a.Valid() {
					t.Errorf("%s/%s votes for unknown archetype %q", g, o.ID, a)
				}
				if w == 0 {
					t.Errorf("%s/%s lists a zero weight for %s", g, o.ID, a)
				}
			}
		}
	}
}

func TestVotesFor_Weights(t *testing.T) {
	tests := []struct {
		group Group
		id    string
		want  Votes
	}{
		{GroupIntent, IntentOperational, Votes{Operational: 3}},
		{GroupIntent, IntentStrategic, Votes{Strategic: 3}},
		{GroupAudience, AudienceManagers, Votes{Tactical: 2}},
		{GroupAudience, AudienceAnalysts, Votes{Analytical: 2}},
		{GroupLatency, LatencyRealTime, Votes{Operational: 2}},
		{GroupLatency, LatencyDaily, Votes{Tactical: 1, Operational: 1}},
		{GroupLatency, LatencyWeekly, Votes{Tactical: 1, Strategic: 1}},
		{GroupLatency, LatencyMonthly, Votes{Strategic: 2}},
	}
	for _, tt := range tests {
		got := VotesFor(tt.group, tt.id)
		if len(got) != len(tt.want) {
			t.Errorf("VotesFor(%s, %s) = %v, want %v", tt.group, tt.id, got, tt.want)
			continue
		}
		for a, w := range tt.want {
			if got[a] != w {
				t.Errorf("VotesFor(%s, %s)[%s] = %d, want %d", tt.group, tt.id, a, got[a], w)
			}
		}
	}
}

func TestVotesFor_UnknownIsEmpty(t *testing.T) {
	if got := VotesFor(GroupIntent, "stale-id"); len(got) != 0 {
		t.Errorf("VotesFor(unknown) = %v, want empty", got)
	}
	if got := VotesFor(GroupMaturity, MaturityManual); len(got) != 0 {
		t.Errorf("VotesFor(modifier) = %v, want empty", got)
	}
}

func TestVotesFor_ReturnsCopy(t *testing.T) {
	v := VotesFor(GroupIntent, IntentTactical)
	v[Tactical] = 100
	if VotesFor(GroupIntent, IntentTactical)[Tactical] != 3 {
		t.Error("mutating returned votes must not change the catalog")
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID(GroupScope, ScopeEnterprise); err != nil {
		t.Errorf("ValidateID(scope, enterprise) = %v", err)
	}
	err := ValidateID(GroupScope, "galaxy")
	if err == nil {
		t.Fatal("ValidateID(scope, galaxy) should fail")
	}
	want := `unknown scope "galaxy": must be one of: process, function, enterprise`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestLabel(t *testing.T) {
	if got := Label(GroupInteraction, InteractionRich); got != "Rich drill-downs in first view" {
		t.Errorf("Label(interaction, rich) = %q", got)
	}
	if got := Label(GroupInteraction, "nope"); got != "" {
		t.Errorf("Label(unknown) = %q, want empty", got)
	}
}

func TestCatalog_GroupsInOrder(t *testing.T) {
	specs := Catalog()
	groups := Groups()
	if len(specs) != len(groups) {
		t.Fatalf("Catalog() has %d groups, want %d", len(specs), len(groups))
	}
	for i, gs := range specs {
		if gs.Group != groups[i] {
			t.Errorf("Catalog()[%d].Group = %s, want %s", i, gs.Group, groups[i])
		}
		if gs.Title == "" {
			t.Errorf("group %s has no title", gs.Group)
		}
	}
}
