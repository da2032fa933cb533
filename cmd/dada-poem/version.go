package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionText() string {
	return fmt.Sprintf("dada-poem %s\n  Build time: %s\n  Git commit: %s\n", Version, BuildTime, GitCommit)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionText())
		},
	}
}
