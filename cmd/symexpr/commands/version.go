package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print symexpr version information",
		Long:  `Print detailed version information including version number, git commit, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "symexpr %s\n", Version)
			if GitCommit != "none" {
				fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
			}
			if BuildDate != "unknown" {
				fmt.Fprintf(out, "Build date: %s\n", BuildDate)
			}
		},
	}
}
