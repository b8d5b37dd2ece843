// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on them.
// No business logic lives here, only wiring.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/HendryAvila/kpimap/internal/config"
	"github.com/HendryAvila/kpimap/internal/prompts"
	"github.com/HendryAvila/kpimap/internal/resources"
	"github.com/HendryAvila/kpimap/internal/templates"
	"github.com/HendryAvila/kpimap/internal/tools"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
func New(cfg *config.Config, logger *zap.Logger) (*server.MCPServer, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating template renderer: %w", err)
	}

	s := server.NewMCPServer(
		cfg.ServerName,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
		server.WithToolHandlerMiddleware(loggingMiddleware(logger)),
	)

	// --- Register tools ---

	recommendTool := tools.NewRecommendTool(renderer)
	s.AddTool(recommendTool.Definition(), recommendTool.Handle)

	onePagerTool := tools.NewOnePagerTool(renderer, cfg.OnePagerMaxNotes)
	s.AddTool(onePagerTool.Definition(), onePagerTool.Handle)

	listOptionsTool := tools.NewListOptionsTool()
	s.AddTool(listOptionsTool.Definition(), listOptionsTool.Handle)

	presetsTool := tools.NewPresetsTool()
	s.AddTool(presetsTool.Definition(), presetsTool.Handle)

	// --- Register prompts ---

	decidePrompt := prompts.NewDecidePrompt()
	s.AddPrompt(decidePrompt.Definition(), decidePrompt.Handle)

	onePagerPrompt := prompts.NewOnePagerPrompt()
	s.AddPrompt(onePagerPrompt.Definition(), onePagerPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler()
	s.AddResource(resourceHandler.OptionsResource(), resourceHandler.HandleOptions)
	s.AddResource(resourceHandler.ArchetypesResource(), resourceHandler.HandleArchetypes)
	s.AddResource(resourceHandler.PresetsResource(), resourceHandler.HandlePresets)

	logger.Debug("server configured",
		zap.String("name", cfg.ServerName),
		zap.String("version", Version),
	)
	return s, nil
}

// loggingMiddleware logs one line per tool call. Tool errors are user
// mistakes and log at info; Go errors are internal faults.
func loggingMiddleware(logger *zap.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			log := logger.With(
				zap.String("tool", req.Params.Name),
				zap.String("call_id", uuid.NewString()),
			)

			result, err := next(ctx, req)

			elapsed := zap.Duration("elapsed", time.Since(start))
			switch {
			case err != nil:
				log.Error("tool call failed", elapsed, zap.Error(err))
			case result != nil && result.IsError:
				log.Info("tool call rejected", elapsed)
			default:
				log.Info("tool call", elapsed)
			}
			return result, err
		}
	}
}

// serverInstructions returns the system instructions sent to the AI client.
func serverInstructions() string {
	return `You are connected to the KPI Decision Map, a recommender that picks the dashboard archetype
best suited to a set of answers: Strategic, Operational, Tactical or Analytical.

## How it works

The user answers three core questions (all multi-select):
- intents: what the dashboard is for (weighted x2)
- audiences: who will use it
- latencies: how fresh the data must be

Then an optional preflight (single choice each): maturity, scope, interaction, indicators.
Preflight answers never vote directly; they gate the scores. For example real-time latency
without streaming data penalizes Operational and Tactical, and enterprise scope boosts Strategic.

## Tools

- kpi_list_options: every valid id. Call it before guessing ids.
- kpi_recommend: evaluate a selection. Returns scores, confidence (High/Medium/Low by margin),
  a hybrid suggestion when the top two are within 1 point, and preflight cautions.
- kpi_one_pager: printable summary of the same evaluation.
- kpi_presets: the built-in 'default' and 'empty' selections.

## Rules

1. Tools are stateless. Send the full selection on every call; omitted arguments keep the preset's value.
2. Never invent ids. Unknown ids are rejected with an error listing the allowed values.
3. Present the cautions to the user verbatim; they explain why scores moved.
4. When confidence is Low, say so and offer the hybrid rather than a single answer.`
}
