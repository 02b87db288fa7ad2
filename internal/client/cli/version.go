package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

func (c *Cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{annotationNoSession: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.flags.json {
				return c.printJSON(map[string]string{
					"version":    c.build.Version,
					"build_date": c.build.BuildDate,
					"git_commit": c.build.GitCommit,
					"go_version": runtime.Version(),
				})
			}
			c.io.Printf("khutwa %s\n", c.build.Version)
			c.io.Printf("  Build date: %s\n", c.build.BuildDate)
			c.io.Printf("  Git commit: %s\n", c.build.GitCommit)
			c.io.Printf("  Go version: %s\n", runtime.Version())
			return nil
		},
	}
}
