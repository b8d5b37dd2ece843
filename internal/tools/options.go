package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListOptionsTool handles the kpi_list_options MCP tool.
// It documents every option id an assistant may pass to the other tools.
type ListOptionsTool struct{}

// NewListOptionsTool creates a ListOptionsTool.
func NewListOptionsTool() *ListOptionsTool {
	return &ListOptionsTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *ListOptionsTool) Definition() mcp.Tool {
	groups := make([]string, 0, len(catalog.Groups()))
	for _, g := range catalog.Groups() {
		groups = append(groups, string(g))
	}
	return mcp.NewTool("kpi_list_options",
		mcp.WithDescription(
			"List the option catalogs (ids, labels and archetype votes) and the four "+
				"dashboard archetypes. Use the ids when calling kpi_recommend or kpi_one_pager.",
		),
		mcp.WithString("group",
			mcp.Description("Only show this option group. Omit to list everything."),
			mcp.Enum(groups...),
		),
	)
}

// Handle processes the kpi_list_options tool call.
func (t *ListOptionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := OptionsMarkdown(catalog.Group(req.GetString("group", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// OptionsMarkdown documents the option catalogs and archetypes. A
// non-empty group limits the output to that group's table.
func OptionsMarkdown(only catalog.Group) (string, error) {
	if only != "" && catalog.Options(only) == nil {
		return "", fmt.Errorf("unknown group %q", only)
	}

	var sb strings.Builder
	sb.WriteString("# KPI Decision Map — Options\n\n")

	for _, gs := range catalog.Catalog() {
		if only != "" && gs.Group != only {
			continue
		}
		pick := "pick one"
		if gs.MultiSelect {
			pick = "pick any"
		}
		fmt.Fprintf(&sb, "## %s (`%s`, %s)\n\n", gs.Title, gs.Group, pick)
		sb.WriteString("| ID | Label | Votes |\n")
		sb.WriteString("|----|-------|-------|\n")
		for _, o := range gs.Options {
			fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", o.ID, o.Label, formatVotes(o.Votes))
		}
		sb.WriteString("\n")
	}

	if only == "" {
		sb.WriteString("## Archetypes\n\n")
		for _, m := range catalog.AllMeta() {
			fmt.Fprintf(&sb, "- **%s** (`%s`): %s _%s_\n", m.Title, m.Archetype, m.Blurb, strings.Join(m.Chips, " · "))
		}
	}
	return sb.String(), nil
}

// formatVotes renders votes in canonical archetype order, e.g.
// "Strategic +2, Analytical +1". Modifier options have no votes.
func formatVotes(v catalog.Votes) string {
	var parts []string
	for _, a := range catalog.Archetypes() {
		if n, ok := v[a]; ok {
			parts = append(parts, fmt.Sprintf("%s %+d", a, n))
		}
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, ", ")
}
