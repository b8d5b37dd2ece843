package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/engine"
	"github.com/HendryAvila/kpimap/internal/selection"
	"github.com/mark3labs/mcp-go/mcp"
)

// PresetsTool handles the kpi_presets MCP tool.
type PresetsTool struct{}

// NewPresetsTool creates a PresetsTool.
func NewPresetsTool() *PresetsTool {
	return &PresetsTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *PresetsTool) Definition() mcp.Tool {
	return mcp.NewTool("kpi_presets",
		mcp.WithDescription(
			"Show the built-in selection presets and what each one recommends. "+
				"Pass a preset name as `preset` to kpi_recommend to start from it.",
		),
	)
}

// Handle processes the kpi_presets tool call.
func (t *PresetsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("# Presets\n\n")

	for _, name := range selection.PresetNames() {
		sel, err := selection.Preset(name)
		if err != nil {
			return nil, fmt.Errorf("loading preset %s: %w", name, err)
		}
		rec := engine.Evaluate(sel)

		fmt.Fprintf(&sb, "## `%s`\n\n", name)
		for _, g := range catalog.Groups() {
			fmt.Fprintf(&sb, "- %s: %s\n", g.Title(), presetChoices(g, sel.Choices(g)))
		}
		fmt.Fprintf(&sb, "\n→ **%s** (confidence %s, margin %d)\n\n",
			catalog.Meta(rec.Primary.Archetype).Title, rec.Confidence, rec.Margin)
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func presetChoices(g catalog.Group, ids []string) string {
	if len(ids) == 0 {
		return "—"
	}
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, fmt.Sprintf("%s (`%s`)", catalog.Label(g, id), id))
	}
	return strings.Join(labels, ", ")
}
