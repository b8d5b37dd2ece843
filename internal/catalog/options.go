package catalog

import (
	"fmt"
	"strings"
)

// --- Option groups ---

// Group names one of the seven option catalogs.
type Group string

const (
	GroupIntent      Group = "intent"
	GroupAudience    Group = "audience"
	GroupLatency     Group = "latency"
	GroupMaturity    Group = "maturity"
	GroupScope       Group = "scope"
	GroupInteraction Group = "interaction"
	GroupIndicators  Group = "indicators"
)

// groupOrder is the order the decision flow presents the groups in.
var groupOrder = [...]Group{
	GroupIntent, GroupAudience, GroupLatency,
	GroupMaturity, GroupScope, GroupInteraction, GroupIndicators,
}

var groupTitles = map[Group]string{
	GroupIntent:      "Core Questions",
	GroupAudience:    "Audience",
	GroupLatency:     "Latency",
	GroupMaturity:    "Data maturity",
	GroupScope:       "Scope",
	GroupInteraction: "Interaction",
	GroupIndicators:  "Indicator mix",
}

// Groups returns every group in presentation order.
func Groups() []Group {
	out := make([]Group, len(groupOrder))
	copy(out, groupOrder[:])
	return out
}

// Title is the human-readable group heading.
func (g Group) Title() string {
	return groupTitles[g]
}

// MultiSelect reports whether the group accepts a set of choices
// rather than at most one.
func (g Group) MultiSelect() bool {
	return g == GroupIntent || g == GroupAudience || g == GroupLatency
}

// --- Choice identifiers ---

const (
	IntentOperational = "operational"
	IntentStrategic   = "strategic"
	IntentTactical    = "tactical"
	IntentAnalytical  = "analytical"

	AudienceExecs     = "execs"
	AudienceManagers  = "managers"
	AudienceFrontline = "frontline"
	AudienceAnalysts  = "analysts"

	LatencyRealTime = "rt"
	LatencyDaily    = "daily"
	LatencyWeekly   = "weekly"
	LatencyMonthly  = "monthly"

	MaturityStreaming = "streaming"
	MaturityDaily     = "daily"
	MaturityManual    = "manual"

	ScopeProcess    = "process"
	ScopeFunction   = "function"
	ScopeEnterprise = "enterprise"

	InteractionMinimal = "minimal"
	InteractionRich    = "rich"

	IndicatorsLeading  = "leading"
	IndicatorsBalanced = "balanced"
	IndicatorsLagging  = "lagging"
)

// --- Options & votes ---

// Votes is a partial weight vector: only nonzero archetypes are listed.
type Votes map[Archetype]int

// Option is one selectable choice. Only intent, audience and latency
// options carry votes; modifier options are matched by the gating rules.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Votes Votes  `json:"votes,omitempty"`
}

var options = map[Group][]Option{
	GroupIntent: {
		{ID: IntentOperational, Label: "Monitor live process health and act quickly", Votes: Votes{Operational: 3}},
		{ID: IntentStrategic, Label: "Track strategy and outcomes versus targets", Votes: Votes{Strategic: 3}},
		{ID: IntentTactical, Label: "Manage near-term initiatives within a function", Votes: Votes{Tactical: 3}},
		{ID: IntentAnalytical, Label: "Diagnose causes, explore patterns and cohorts", Votes: Votes{Analytical: 3}},
	},
	GroupAudience: {
		{ID: AudienceExecs, Label: "Executives and VPs", Votes: Votes{Strategic: 2}},
		{ID: AudienceManagers, Label: "Middle managers / program owners", Votes: Votes{Tactical: 2}},
		{ID: AudienceFrontline, Label: "Front-line operators / duty managers", Votes: Votes{Operational: 2}},
		{ID: AudienceAnalysts, Label: "Analysts / decision support", Votes: Votes{Analytical: 2}},
	},
	GroupLatency: {
		{ID: LatencyRealTime, Label: "Real-time or hourly (alerts)", Votes: Votes{Operational: 2}},
		{ID: LatencyDaily, Label: "Daily to weekly", Votes: Votes{Tactical: 1, Operational: 1}},
		{ID: LatencyWeekly, Label: "Weekly to monthly", Votes: Votes{Tactical: 1, Strategic: 1}},
		{ID: LatencyMonthly, Label: "Monthly or quarterly", Votes: Votes{Strategic: 2}},
	},
	GroupMaturity: {
		{ID: MaturityStreaming, Label: "Streaming/near-real-time"},
		{ID: MaturityDaily, Label: "Daily batch"},
		{ID: MaturityManual, Label: "Manual / ad-hoc"},
	},
	GroupScope: {
		{ID: ScopeProcess, Label: "Single process (SLAs)"},
		{ID: ScopeFunction, Label: "Single function / program"},
		{ID: ScopeEnterprise, Label: "Cross-functional / enterprise"},
	},
	GroupInteraction: {
		{ID: InteractionMinimal, Label: "Minimal first view (summary tiles)"},
		{ID: InteractionRich, Label: "Rich drill-downs in first view"},
	},
	GroupIndicators: {
		{ID: IndicatorsLeading, Label: "Mostly leading"},
		{ID: IndicatorsBalanced, Label: "Balanced leading/lagging"},
		{ID: IndicatorsLagging, Label: "Mostly lagging"},
	},
}

func (o Option) clone() Option {
	if o.Votes != nil {
		votes := make(Votes, len(o.Votes))
		for a, w := range o.Votes {
			votes[a] = w
		}
		o.Votes = votes
	}
	return o
}

// Options returns a copy of the group's catalog in declaration order.
// Unknown groups yield nil.
func Options(g Group) []Option {
	src := options[g]
	if src == nil {
		return nil
	}
	out := make([]Option, len(src))
	for i, o := range src {
		out[i] = o.clone()
	}
	return out
}

// Lookup finds an option by id within a group.
func Lookup(g Group, id string) (Option, bool) {
	for _, o := range options[g] {
		if o.ID == id {
			return o.clone(), true
		}
	}
	return Option{}, false
}

// VotesFor returns the vote vector of an option. Unknown ids and
// modifier options yield an empty vector, so they contribute nothing.
func VotesFor(g Group, id string) Votes {
	o, ok := Lookup(g, id)
	if !ok || o.Votes == nil {
		return Votes{}
	}
	return o.Votes
}

// Label returns the human-readable label for an option id, or "" if unknown.
func Label(g Group, id string) string {
	o, ok := Lookup(g, id)
	if !ok {
		return ""
	}
	return o.Label
}

// IDs lists the option identifiers of a group in declaration order.
func IDs(g Group) []string {
	src := options[g]
	out := make([]string, 0, len(src))
	for _, o := range src {
		out = append(out, o.ID)
	}
	return out
}

// ValidateID returns an error if id is not in the group's catalog.
func ValidateID(g Group, id string) error {
	if _, ok := Lookup(g, id); !ok {
		return fmt.Errorf("unknown %s %q: must be one of: %s", g, id, joinIDs(g))
	}
	return nil
}

func joinIDs(g Group) string {
	return strings.Join(IDs(g), ", ")
}

// --- Full catalog snapshot ---

// GroupSpec describes one option group for listings and resources.
type GroupSpec struct {
	Group       Group    `json:"group"`
	Title       string   `json:"title"`
	MultiSelect bool     `json:"multi_select"`
	Options     []Option `json:"options"`
}

// Catalog returns every option group in presentation order.
func Catalog() []GroupSpec {
	out := make([]GroupSpec, 0, len(groupOrder))
	for _, g := range groupOrder {
		out = append(out, GroupSpec{
			Group:       g,
			Title:       g.Title(),
			MultiSelect: g.MultiSelect(),
			Options:     Options(g),
		})
	}
	return out
}
