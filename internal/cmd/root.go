// Package cmd provides the slicegrow command-line interface.
//
// Configuration is resolved by internal/config with this precedence:
//
//  1. Command-line flags (--count, --threshold, etc.) - highest priority
//  2. SLICEGROW_* environment variables (SLICEGROW_COUNT, SLICEGROW_LOG_LEVEL, ...)
//  3. The config file: --config, then SLICEGROW_CONFIG_FILE, then .slicegrow.yaml
//  4. Built-in defaults - lowest priority
package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/slicegrow/internal/config"
	"github.com/pavanmanishd/slicegrow/internal/logging"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	cfgFile string
	color   bool
}

// NewCmd creates the root "slicegrow" command with all its subcommands.
func NewCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "slicegrow",
		Short: "Explore the growth policy of an append-only dynamic array",
		Long: `slicegrow models how a dynamic array grows its backing storage as
elements are appended: doubling below a threshold, growing by a quarter above it.

Commands:
  slicegrow table                  Print every reallocation of a simulated run
  slicegrow next --cap 1024        Compute a single growth decision
  slicegrow compare                Put the model next to the runtime's append
  slicegrow version                Print version information`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "",
		"config file (default is .slicegrow.yaml, can also use SLICEGROW_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP(config.KeyLogLevel, "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.color, "color", false, "colorize text output")

	rootCmd.AddCommand(
		newTableCmd(opts),
		newNextCmd(),
		newCompareCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewCmd().Execute()
}

// load resolves the configuration for cmd and builds the logger it asks for.
// Logs go to the command's error stream so they never mix with reports.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, logr.Logger, error) {
	v, err := config.New(o.cfgFile)
	if err != nil {
		return nil, logr.Discard(), err
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, logr.Discard(), fmt.Errorf("binding flags: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, logr.Discard(), err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Output = cmd.ErrOrStderr()
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, logr.Discard(), err
	}

	if used := v.ConfigFileUsed(); used != "" {
		logger.V(1).Info("Using config file", "path", used)
	}
	return cfg, logger, nil
}

// addSimulationFlags adds the flags shared by table and compare.
func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().IntP(config.KeyCount, "n", 100000, "number of elements to append")
	cmd.Flags().Int(config.KeyInitial, 0, "initial capacity")
	cmd.Flags().Int(config.KeyThreshold, 1024, "length below which capacity doubles")
	cmd.Flags().StringP(config.KeyOutput, "o", "text", "Output format. One of text|json|yaml")
}
