package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/kpimap/internal/engine"
	"github.com/HendryAvila/kpimap/internal/templates"
	"github.com/mark3labs/mcp-go/mcp"
)

// OnePagerTool handles the kpi_one_pager MCP tool.
type OnePagerTool struct {
	renderer templates.Renderer
	maxNotes int
}

// NewOnePagerTool creates a OnePagerTool. maxNotes caps the cautions
// printed; values below 1 fall back to templates.DefaultOnePagerNotes.
func NewOnePagerTool(renderer templates.Renderer, maxNotes int) *OnePagerTool {
	if maxNotes < 1 {
		maxNotes = templates.DefaultOnePagerNotes
	}
	return &OnePagerTool{renderer: renderer, maxNotes: maxNotes}
}

// Definition returns the MCP tool definition for registration.
func (t *OnePagerTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Produce a printable one-page summary of a KPI decision-map selection: " +
				"inputs, preflight snapshot, recommendation, confidence, hybrid and the top cautions.",
		),
	}
	return mcp.NewTool("kpi_one_pager", append(opts, selectionOptions()...)...)
}

// Handle processes the kpi_one_pager tool call.
func (t *OnePagerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sel, err := selectionFromRequest(req)
	if err != nil {
		return selectionError(err), nil
	}

	data := templates.NewReportData(sel, engine.Evaluate(sel), t.maxNotes)
	content, err := t.renderer.Render(templates.OnePager, data)
	if err != nil {
		return nil, fmt.Errorf("rendering one-pager: %w", err)
	}
	return mcp.NewToolResultText(content), nil
}
