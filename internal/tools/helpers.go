// Package tools implements MCP tool handlers for the KPI decision map.
//
// Every tool is stateless: each call carries the full selection, so
// handlers are safe to run concurrently. One file per tool.
package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/selection"
	"github.com/mark3labs/mcp-go/mcp"
)

// Argument names for the selection parameters.
const (
	argPreset      = "preset"
	argIntents     = "intents"
	argAudiences   = "audiences"
	argLatencies   = "latencies"
	argMaturity    = "maturity"
	argScope       = "scope"
	argInteraction = "interaction"
	argIndicators  = "indicators"
)

// selectionOptions declares the parameters shared by every tool that
// evaluates a selection.
func selectionOptions() []mcp.ToolOption {
	opts := []mcp.ToolOption{
		mcp.WithString(argPreset,
			mcp.Description("Starting bundle before the other arguments are applied. "+
				"'default' is the strategic/exec bundle, 'empty' (the default) clears everything."),
			mcp.Enum(selection.PresetNames()...),
		),
	}
	multi := []struct {
		name  string
		group catalog.Group
		desc  string
	}{
		{argIntents, catalog.GroupIntent, "What the dashboard is for. Weighted x2."},
		{argAudiences, catalog.GroupAudience, "Who will use it."},
		{argLatencies, catalog.GroupLatency, "How fresh the data must be."},
	}
	for _, m := range multi {
		opts = append(opts, mcp.WithArray(m.name,
			mcp.Description(m.desc+" Any of: "+strings.Join(catalog.IDs(m.group), ", ")+"."),
			mcp.Items(map[string]any{"type": "string", "enum": catalog.IDs(m.group)}),
		))
	}
	single := []struct {
		name  string
		group catalog.Group
		desc  string
	}{
		{argMaturity, catalog.GroupMaturity, "How the data arrives today."},
		{argScope, catalog.GroupScope, "Breadth of the dashboard."},
		{argInteraction, catalog.GroupInteraction, "How much the first view lets users explore."},
		{argIndicators, catalog.GroupIndicators, "Balance of leading and lagging KPIs."},
	}
	for _, s := range single {
		opts = append(opts, mcp.WithString(s.name,
			mcp.Description(s.desc+" Pass an empty string to clear."),
			mcp.Enum(append([]string{""}, catalog.IDs(s.group)...)...),
		))
	}
	return opts
}

// selectionFromRequest builds a validated selection: the preset first,
// then every argument that is present in the request.
func selectionFromRequest(req mcp.CallToolRequest) (selection.Selection, error) {
	sel, err := selection.Preset(req.GetString(argPreset, ""))
	if err != nil {
		return selection.Selection{}, err
	}

	args := req.GetArguments()
	lists := []struct {
		name string
		dst  *[]string
	}{
		{argIntents, &sel.Intents},
		{argAudiences, &sel.Audiences},
		{argLatencies, &sel.Latencies},
	}
	for _, l := range lists {
		v, ok := args[l.name]
		if !ok {
			continue
		}
		ids, err := stringList(v)
		if err != nil {
			return selection.Selection{}, fmt.Errorf("%s: %w", l.name, err)
		}
		*l.dst = ids
	}

	singles := []struct {
		name string
		dst  *string
	}{
		{argMaturity, &sel.Maturity},
		{argScope, &sel.Scope},
		{argInteraction, &sel.Interaction},
		{argIndicators, &sel.Indicators},
	}
	for _, s := range singles {
		v, ok := args[s.name]
		if !ok {
			continue
		}
		switch id := v.(type) {
		case nil:
			*s.dst = ""
		case string:
			*s.dst = id
		default:
			return selection.Selection{}, fmt.Errorf("%s: expected a string, got %T", s.name, v)
		}
	}

	sel = sel.Normalize()
	if err := sel.Validate(); err != nil {
		return selection.Selection{}, err
	}
	return sel, nil
}

var errNotStringList = errors.New("expected an array of strings")

// stringList accepts a JSON array of strings or a comma-separated string.
func stringList(v any) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return append([]string{}, list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, errNotStringList
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		out := []string{}
		for _, part := range strings.Split(list, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	default:
		return nil, errNotStringList
	}
}

// selectionError turns a bad selection into a tool error the assistant
// can correct and retry.
func selectionError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%v. Call kpi_list_options for the valid ids.", err))
}
