package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/kpimap/internal/engine"
	"github.com/HendryAvila/kpimap/internal/selection"
	"github.com/HendryAvila/kpimap/internal/templates"
	"github.com/mark3labs/mcp-go/mcp"
)

// Output formats for kpi_recommend.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// RecommendTool handles the kpi_recommend MCP tool.
// It evaluates a selection and returns the full report.
type RecommendTool struct {
	renderer templates.Renderer
}

// NewRecommendTool creates a RecommendTool with the given renderer.
func NewRecommendTool(renderer templates.Renderer) *RecommendTool {
	return &RecommendTool{renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *RecommendTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Recommend a dashboard archetype (Strategic, Operational, Tactical, Analytical) " +
				"for a KPI decision-map selection. Returns scores, confidence, an optional " +
				"hybrid suggestion and preflight cautions. Omitted arguments keep the preset's value.",
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'markdown' report (default) or raw 'json'."),
			mcp.Enum(FormatMarkdown, FormatJSON),
			mcp.DefaultString(FormatMarkdown),
		),
	}
	return mcp.NewTool("kpi_recommend", append(opts, selectionOptions()...)...)
}

// RecommendResult is the JSON payload of kpi_recommend.
type RecommendResult struct {
	Selection      selection.Selection   `json:"selection"`
	Recommendation engine.Recommendation `json:"recommendation"`
}

// Handle processes the kpi_recommend tool call.
func (t *RecommendTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := req.GetString("format", FormatMarkdown)
	if format != FormatMarkdown && format != FormatJSON {
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q: must be one of: markdown, json", format)), nil
	}

	sel, err := selectionFromRequest(req)
	if err != nil {
		return selectionError(err), nil
	}
	rec := engine.Evaluate(sel)

	if format == FormatJSON {
		data, err := json.MarshalIndent(RecommendResult{Selection: sel, Recommendation: rec}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding recommendation: %w", err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	content, err := t.renderer.Render(templates.Report, templates.NewReportData(sel, rec, 0))
	if err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return mcp.NewToolResultText(content), nil
}
