package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Johannes-Berggren/goblin-prune/internal/logging"
)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the candidate branches without starting the UI",
		Long:  "Print every remote branch matching the filter. Protected branches are marked with '*'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			remote, err := opts.newRemote(cfg)
			if err != nil {
				return err
			}

			list, err := loadBranches(cmd.Context(), remote, cfg, logging.Nop())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if list.Empty() {
				fmt.Fprintf(out, "no remote branches match %q\n", cfg.Filter)
				return nil
			}
			for i := 0; i < list.Len(); i++ {
				b := list.At(i)
				marker := " "
				if b.Protected() {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, b.Name())
			}
			return nil
		},
	}
}
