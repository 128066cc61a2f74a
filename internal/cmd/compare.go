package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/slicegrow"
	"github.com/pavanmanishd/slicegrow/internal/report"
)

// newCompareCmd creates the "compare" subcommand
func newCompareCmd(root *rootOptions) *cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Put the modelled growth next to the runtime's append",
		Long: `Run the same appends through the modelled array and through a plain Go
slice and print both growth sequences side by side. The runtime rounds
capacities up to allocator size classes, so its numbers vary by Go version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}

			model, err := slicegrow.Simulate(cfg.Count, cfg.Initial,
				slicegrow.WithPolicy(slicegrow.TieredPolicy{Threshold: cfg.Threshold}),
				slicegrow.WithLogger(logger.WithName("array")),
			)
			if err != nil {
				return err
			}

			c := report.Comparison{
				Count:   cfg.Count,
				Model:   model,
				Builtin: slicegrow.ObserveBuiltin(cfg.Count, cfg.Initial),
			}
			logger.V(1).Info("Compared growth", "model", len(c.Model), "builtin", len(c.Builtin))

			return report.RenderComparison(cmd.OutOrStdout(), report.Format(cfg.Output), c, report.Options{Color: root.color})
		},
	}

	addSimulationFlags(compareCmd)

	return compareCmd
}
