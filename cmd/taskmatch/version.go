package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/taskmatch/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "taskmatch %s\n", version.String())
			return err
		},
	}
}
