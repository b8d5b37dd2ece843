package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// OnePagerPrompt handles the kpi-one-pager MCP prompt.
// It asks the AI to turn the selection discussed so far into a one-pager.
type OnePagerPrompt struct{}

// NewOnePagerPrompt creates a OnePagerPrompt.
func NewOnePagerPrompt() *OnePagerPrompt {
	return &OnePagerPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *OnePagerPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("kpi-one-pager",
		mcp.WithPromptDescription(
			"Export the dashboard decision from this conversation as a printable one-pager.",
		),
	)
}

// Handle processes the kpi-one-pager prompt request.
func (p *OnePagerPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "KPI decision map one-pager",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please call `kpi_one_pager` with the intents, audiences, latencies and " +
						"preflight answers we settled on (run `kpi_list_options` first if you need the ids).\n\n" +
						"Then:\n" +
						"1. Show me the one-pager exactly as returned\n" +
						"2. Add one sentence on what would change the recommendation\n" +
						"3. If confidence is Low, suggest which question to revisit",
				),
			},
		},
	}, nil
}
