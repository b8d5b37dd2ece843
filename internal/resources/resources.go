// Package resources implements MCP resource handlers for the KPI decision map.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (kpi://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/engine"
	"github.com/HendryAvila/kpimap/internal/selection"
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs.
const (
	OptionsURI    = "kpi://catalog/options"
	ArchetypesURI = "kpi://catalog/archetypes"
	PresetsURI    = "kpi://presets"
)

// Handler serves the catalog resources. The catalogs are static, so it
// carries no dependencies.
type Handler struct{}

// NewHandler creates a resource Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// OptionsResource returns the MCP resource definition for the option catalogs.
func (h *Handler) OptionsResource() mcp.Resource {
	return mcp.NewResource(
		OptionsURI,
		"KPI Option Catalogs",
		mcp.WithResourceDescription("Every option group with ids, labels and archetype votes"),
		mcp.WithMIMEType(mimeJSON),
	)
}

// HandleOptions returns the option catalogs as JSON.
func (h *Handler) HandleOptions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, catalog.Catalog())
}

// ArchetypesResource returns the MCP resource definition for archetype metadata.
func (h *Handler) ArchetypesResource() mcp.Resource {
	return mcp.NewResource(
		ArchetypesURI,
		"Dashboard Archetypes",
		mcp.WithResourceDescription("Title, blurb and chips for the four dashboard archetypes"),
		mcp.WithMIMEType(mimeJSON),
	)
}

// HandleArchetypes returns the archetype metadata as JSON.
func (h *Handler) HandleArchetypes(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, catalog.AllMeta())
}

// PresetsResource returns the MCP resource definition for the presets.
func (h *Handler) PresetsResource() mcp.Resource {
	return mcp.NewResource(
		PresetsURI,
		"Selection Presets",
		mcp.WithResourceDescription("Built-in selections and the recommendation each produces"),
		mcp.WithMIMEType(mimeJSON),
	)
}

// PresetEntry is one element of the presets resource.
type PresetEntry struct {
	Name           string                `json:"name"`
	Selection      selection.Selection   `json:"selection"`
	Recommendation engine.Recommendation `json:"recommendation"`
}

// HandlePresets returns every preset with its recommendation as JSON.
func (h *Handler) HandlePresets(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entries := make([]PresetEntry, 0, len(selection.PresetNames()))
	for _, name := range selection.PresetNames() {
		sel, err := selection.Preset(name)
		if err != nil {
			return nil, fmt.Errorf("loading preset %s: %w", name, err)
		}
		entries = append(entries, PresetEntry{Name: name, Selection: sel, Recommendation: engine.Evaluate(sel)})
	}
	return jsonResource(req.Params.URI, entries)
}
