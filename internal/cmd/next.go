package cmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/slicegrow"
)

// newNextCmd creates the "next" subcommand
func newNextCmd() *cobra.Command {
	var oldCap, oldLen, add, threshold int

	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Compute the capacity chosen for a single growth",
		Long: `Print the capacity an array with --cap and --len would grow to when --add
more elements are appended. If they already fit, the capacity is unchanged.

Examples:
  slicegrow next --cap 1024 --len 1024          # 1280
  slicegrow next --cap 4 --len 4 --add 10       # 14`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateNext(oldCap, oldLen, add); err != nil {
				return err
			}

			required := oldLen + add
			next := oldCap
			if required > oldCap {
				next = slicegrow.TieredPolicy{Threshold: threshold}.NextCapacity(oldCap, oldLen, required)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), next)
			return err
		},
	}

	nextCmd.Flags().IntVar(&oldCap, "cap", 0, "current capacity")
	nextCmd.Flags().IntVar(&oldLen, "len", -1, "current length (default: equal to --cap)")
	nextCmd.Flags().IntVar(&add, "add", 1, "number of elements being appended")
	nextCmd.Flags().IntVar(&threshold, "threshold", slicegrow.GrowthThreshold, "length below which capacity doubles")

	nextCmd.PreRun = func(cmd *cobra.Command, _ []string) {
		if !cmd.Flags().Changed("len") {
			oldLen = oldCap
		}
	}

	return nextCmd
}

func validateNext(oldCap, oldLen, add int) error {
	switch {
	case oldCap < 0:
		return fmt.Errorf("--cap must not be negative, got %d", oldCap)
	case oldLen < 0 || oldLen > oldCap:
		return fmt.Errorf("--len must be between 0 and --cap (%d), got %d", oldCap, oldLen)
	case add < 1:
		return fmt.Errorf("--add must be at least 1, got %d", add)
	case oldLen > math.MaxInt-add:
		return errors.New("--len plus --add overflows int")
	}
	return nil
}
