package main

import (
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/kpimap/internal/catalog"
	"github.com/HendryAvila/kpimap/internal/tools"
	"github.com/spf13/cobra"
)

func newOptionsCmd() *cobra.Command {
	var (
		group  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the option catalogs and archetypes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := catalog.Group(group)
			if asJSON {
				return printOptionsJSON(cmd, g)
			}
			text, err := tools.OptionsMarkdown(g)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.PersistentPreRunE = skipSetup
	cmd.Flags().StringVar(&group, "group", "", "only print this option group")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalogs as JSON")
	return cmd
}

func printOptionsJSON(cmd *cobra.Command, g catalog.Group) error {
	var v any = catalog.Catalog()
	if g != "" {
		opts := catalog.Options(g)
		if opts == nil {
			return fmt.Errorf("unknown group %q", g)
		}
		v = opts
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
