// kpimap: KPI Decision Map recommender.
//
// Recommends a dashboard archetype (Strategic, Operational, Tactical,
// Analytical) from a handful of answers about intent, audience, data
// latency and a short preflight. Runs as an MCP server for AI tools or
// as a one-shot CLI.
//
// Usage:
//
//	kpimap serve        # Start MCP server (stdio transport)
//	kpimap recommend    # Evaluate a selection from flags or a file
//	kpimap options      # Print the option catalogs
//	kpimap version
package main

import (
	"fmt"
	"os"

	"github.com/HendryAvila/kpimap/internal/config"
	"github.com/HendryAvila/kpimap/internal/logging"
	kpiserver "github.com/HendryAvila/kpimap/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "kpimap",
		Short: "KPI Decision Map: pick the right kind of dashboard",
		Long: `kpimap recommends a dashboard archetype from answers about intent,
audience, latency and a short preflight.

Add it to your AI tool's MCP config:

  {
    "mcpServers": {
      "kpimap": {
        "command": "kpimap",
        "args": ["serve"]
      }
    }
  }`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(
		newServeCmd(a),
		newRecommendCmd(a),
		newOptionsCmd(),
		newVersionCmd(),
	)
	return root
}

// skipSetup overrides the root PersistentPreRunE for commands that only
// print static data.
func skipSetup(cmd *cobra.Command, args []string) error { return nil }

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kpimap v%s\n", kpiserver.Version)
		},
	}
	cmd.PersistentPreRunE = skipSetup
	return cmd
}
