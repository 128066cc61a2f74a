package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/slicegrow"
	"github.com/pavanmanishd/slicegrow/internal/config"
	"github.com/pavanmanishd/slicegrow/internal/report"
	"github.com/pavanmanishd/slicegrow/internal/telemetry"
)

// newTableCmd creates the "table" subcommand
func newTableCmd(root *rootOptions) *cobra.Command {
	tableCmd := &cobra.Command{
		Use:     "table",
		Aliases: []string{"t"},
		Short:   "Print every reallocation of a simulated run",
		Long: `Append --count integers one at a time to a fresh array and print one
line per growth of its backing storage: the resulting length, the prior and
new capacity, and their ratio.

Examples:
  slicegrow table                     # 100000 appends, text table
  slicegrow table -n 2000 -o json     # JSON output
  slicegrow table --threshold 256     # switch to 1.25x growth earlier
  slicegrow table --metrics           # append the Prometheus counters`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}

			opts := []slicegrow.Option{
				slicegrow.WithPolicy(slicegrow.TieredPolicy{Threshold: cfg.Threshold}),
				slicegrow.WithLogger(logger.WithName("array")),
			}

			var registry *prometheus.Registry
			if cfg.Metrics {
				registry = prometheus.NewRegistry()
				metrics := telemetry.NewMetrics()
				if err := metrics.Register(registry); err != nil {
					return err
				}
				opts = append(opts, slicegrow.WithObserver(metrics.Observer("simulation")))
			}

			logger.Info("Simulating appends", "count", cfg.Count, "initial", cfg.Initial, "threshold", cfg.Threshold)
			events, err := slicegrow.Simulate(cfg.Count, cfg.Initial, opts...)
			if err != nil {
				return err
			}

			r := report.Report{
				Count:     cfg.Count,
				Initial:   cfg.Initial,
				Threshold: effectiveThreshold(cfg),
				Events:    events,
				Summary:   report.Summarize(cfg.Count, cfg.Initial, events),
			}
			if registry != nil {
				if r.Metrics, err = telemetry.Snapshot(registry); err != nil {
					return err
				}
			}

			return report.Render(cmd.OutOrStdout(), report.Format(cfg.Output), r, report.Options{Color: root.color})
		},
	}

	addSimulationFlags(tableCmd)
	tableCmd.Flags().Bool(config.KeyMetrics, false, "include Prometheus metrics gathered during the run")

	return tableCmd
}

func effectiveThreshold(cfg *config.Config) int {
	if cfg.Threshold <= 0 {
		return slicegrow.GrowthThreshold
	}
	return cfg.Threshold
}
