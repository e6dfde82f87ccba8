package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the loop and mark enclosed and outside tiles",
		Long: fmt.Sprintf(`Render redraws the grid with box-drawing glyphs for the loop and marks
every other tile:

  %c  enclosed by the loop
  %c  reachable from outside the grid
  %c  outside the loop but boxed in between pipes`,
			pipeloop.MarkInterior, pipeloop.MarkOpenExterior, pipeloop.MarkSealed),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("open") {
				cfg.Input = input
			}

			rep, err := run(cmd, cfg)
			if err != nil {
				return err
			}
			return pipeloop.Render(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().StringVarP(&input, "open", "o", "", "input grid file (default: built-in sample)")

	return cmd
}
