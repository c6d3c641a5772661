package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func exampleCmd(st *state) *cobra.Command {
	var (
		count int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print example palindromes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			cfg := st.cfg
			if cmd.Flags().Changed("seed") {
				cfg = cfg.Clone()
				cfg.Examples.Seed = seed
			}
			picker, err := cfg.NewPicker()
			if err != nil {
				return err
			}

			for range count {
				fmt.Fprintln(cmd.OutOrStdout(), picker.Next())
				st.metrics.RecordExample()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of phrases to print")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible sequence")
	return cmd
}
