package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <manifest.yaml>",
		Short: "Drive one transform invocation through the engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := c.app.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, path := range output {
				fmt.Fprintln(cmd.OutOrStdout(), path) //nolint:errcheck // best effort CLI output
			}
			return nil
		},
	}
}
