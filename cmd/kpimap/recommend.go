package main

import (
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/kpimap/internal/engine"
	"github.com/HendryAvila/kpimap/internal/selection"
	"github.com/HendryAvila/kpimap/internal/templates"
	"github.com/HendryAvila/kpimap/internal/tools"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Output formats for recommend.
const (
	outputMarkdown = "markdown"
	outputJSON     = "json"
	outputOnePager = "onepager"
)

type recommendFlags struct {
	preset string
	file   string

	intents   []string
	audiences []string
	latencies []string

	maturity    string
	scope       string
	interaction string
	indicators  string

	format string
	pretty bool
}

func newRecommendCmd(a *app) *cobra.Command {
	f := &recommendFlags{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a dashboard archetype for a selection",
		Long: `Evaluate a selection and print the recommendation.

The base selection comes from --file (YAML, or JSON for *.json) or
--preset; every other selection flag given on the command line
replaces that part of the base. Pass an empty value to clear one.`,
		Example: `  kpimap recommend --preset default --latency rt --maturity manual
  kpimap recommend --intent operational,tactical --audience frontline --format json
  kpimap recommend --file selection.yaml --format onepager --pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.recommend(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.preset, "preset", "", "base selection: default or empty (default empty)")
	fl.StringVarP(&f.file, "file", "f", "", "load the base selection from a YAML or JSON file")
	fl.StringSliceVar(&f.intents, "intent", nil, "intents (operational, strategic, tactical, analytical)")
	fl.StringSliceVar(&f.audiences, "audience", nil, "audiences (execs, managers, frontline, analysts)")
	fl.StringSliceVar(&f.latencies, "latency", nil, "latencies (rt, daily, weekly, monthly)")
	fl.StringVar(&f.maturity, "maturity", "", "data maturity (streaming, daily, manual)")
	fl.StringVar(&f.scope, "scope", "", "scope (process, function, enterprise)")
	fl.StringVar(&f.interaction, "interaction", "", "interaction (minimal, rich)")
	fl.StringVar(&f.indicators, "indicators", "", "indicator mix (leading, balanced, lagging)")
	fl.StringVarP(&f.format, "format", "o", outputMarkdown, "output: markdown, onepager or json")
	fl.BoolVar(&f.pretty, "pretty", false, "render markdown for the terminal")
	cmd.MarkFlagsMutuallyExclusive("preset", "file")
	return cmd
}

func (a *app) recommend(cmd *cobra.Command, f *recommendFlags) error {
	switch f.format {
	case outputMarkdown, outputJSON, outputOnePager:
	default:
		return fmt.Errorf("unknown format %q: must be one of: markdown, onepager, json", f.format)
	}

	sel, err := f.selection(cmd)
	if err != nil {
		return err
	}
	rec := engine.Evaluate(sel)
	a.logger.Debug("evaluated selection",
		zap.String("primary", string(rec.Primary.Archetype)),
		zap.String("confidence", string(rec.Confidence)),
		zap.Int("margin", rec.Margin),
		zap.Int("notes", len(rec.Notes)),
	)

	out := cmd.OutOrStdout()
	if f.format == outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tools.RecommendResult{Selection: sel, Recommendation: rec})
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return err
	}
	name, maxNotes := templates.Report, 0
	if f.format == outputOnePager {
		name, maxNotes = templates.OnePager, a.cfg.OnePagerMaxNotes
	}
	text, err := renderer.Render(name, templates.NewReportData(sel, rec, maxNotes))
	if err != nil {
		return err
	}

	if f.pretty {
		text, err = renderTerminal(text)
		if err != nil {
			return err
		}
	}
	fmt.Fprint(out, text)
	return nil
}

// selection builds the validated selection: the base from --file or
// --preset, then every selection flag the user set explicitly.
func (f *recommendFlags) selection(cmd *cobra.Command) (selection.Selection, error) {
	var (
		sel selection.Selection
		err error
	)
	if f.file != "" {
		sel, err = selection.LoadFile(f.file)
	} else {
		sel, err = selection.Preset(f.preset)
	}
	if err != nil {
		return selection.Selection{}, err
	}

	changed := cmd.Flags().Changed
	if changed("intent") {
		sel.Intents = f.intents
	}
	if changed("audience") {
		sel.Audiences = f.audiences
	}
	if changed("latency") {
		sel.Latencies = f.latencies
	}
	if changed("maturity") {
		sel.Maturity = f.maturity
	}
	if changed("scope") {
		sel.Scope = f.scope
	}
	if changed("interaction") {
		sel.Interaction = f.interaction
	}
	if changed("indicators") {
		sel.Indicators = f.indicators
	}

	sel = sel.Normalize()
	if err := sel.Validate(); err != nil {
		return selection.Selection{}, fmt.Errorf("%w (see `kpimap options`)", err)
	}
	return sel, nil
}

func renderTerminal(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
