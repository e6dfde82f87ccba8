package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSolveCmd(root *rootOptions) *cobra.Command {
	var (
		input string
		part2 bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the farthest loop distance, or the enclosed tile count",
		Long: `Solve traces the loop through S and prints one answer:

  part 1 (default): farthest=<steps>, half the loop's length
  part 2 (--part2): interior=<tiles>, the number of tiles the loop encloses`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("open") {
				cfg.Input = input
			}
			if part2 {
				cfg.Part = 2
			}

			rep, err := run(cmd, cfg)
			if err != nil {
				return err
			}
			if cfg.Part == 2 {
				fmt.Fprintf(cmd.OutOrStdout(), "interior=%d\n", rep.Interior)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "farthest=%d\n", rep.Farthest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "open", "o", "", "input grid file (default: built-in sample)")
	cmd.Flags().BoolVar(&part2, "part2", false, "count the tiles enclosed by the loop")

	return cmd
}
