// Package prompts implements MCP prompt handlers for the KPI decision map.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/selection"
	"github.com/mark3labs/mcp-go/mcp"
)

// DecidePrompt handles the kpi-decide MCP prompt.
// It walks the AI through the three core questions, then preflight,
// then asks it to call kpi_recommend.
type DecidePrompt struct{}

// NewDecidePrompt creates a DecidePrompt.
func NewDecidePrompt() *DecidePrompt {
	return &DecidePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *DecidePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("kpi-decide",
		mcp.WithPromptDescription(
			"Decide which kind of KPI dashboard to build. "+
				"Asks about intent, audience and data latency, runs a short preflight, "+
				"then recommends Strategic, Operational, Tactical or Analytical.",
		),
		mcp.WithArgument("dashboard",
			mcp.ArgumentDescription("What the dashboard is about, e.g. 'support queue health'"),
		),
		mcp.WithArgument("preset",
			mcp.ArgumentDescription("Start from a preset: 'default' or 'empty'. Default: empty"),
		),
	)
}

// Handle processes the kpi-decide prompt request.
func (p *DecidePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	dashboard := "my dashboard"
	preset := selection.PresetEmpty
	if args := req.Params.Arguments; args != nil {
		if d, ok := args["dashboard"]; ok && d != "" {
			dashboard = d
		}
		if pr, ok := args["preset"]; ok && pr != "" {
			preset = pr
		}
	}
	if _, err := selection.Preset(preset); err != nil {
		return nil, err
	}

	var steps strings.Builder
	fmt.Fprintf(&steps, "I need to decide what kind of KPI dashboard to build for %s.\n\n", dashboard)
	steps.WriteString("Please interview me one group at a time, offering these options:\n\n")
	for i, g := range catalog.Groups() {
		pick := "pick one, optional"
		if g.MultiSelect() {
			pick = "pick any"
		}
		fmt.Fprintf(&steps, "%d. **%s** (`%s`, %s): %s\n", i+1, g.Title(), argName(g), pick, optionList(g))
	}
	fmt.Fprintf(&steps,
		"\nThe first three are the core questions; the rest are preflight checks.\n"+
			"Then call `kpi_recommend` with preset='%s' and my answers as ids.\n"+
			"Explain the recommendation, its confidence and any hybrid suggestion, "+
			"and walk me through each caution. If I want something to share, "+
			"finish with `kpi_one_pager` using the same arguments.",
		preset,
	)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("KPI decision map: %s", dashboard),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(steps.String()),
			},
		},
	}, nil
}

// argName is the kpi_recommend argument carrying a group's ids.
func argName(g catalog.Group) string {
	switch g {
	case catalog.GroupIntent:
		return "intents"
	case catalog.GroupAudience:
		return "audiences"
	case catalog.GroupLatency:
		return "latencies"
	}
	return string(g)
}

func optionList(g catalog.Group) string {
	parts := make([]string, 0, len(catalog.IDs(g)))
	for _, o := range catalog.Options(g) {
		parts = append(parts, fmt.Sprintf("`%s` %s", o.ID, o.Label))
	}
	return strings.Join(parts, "; ")
}
