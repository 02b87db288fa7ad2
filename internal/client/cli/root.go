package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// RootCommand builds the khutwa command tree
func (c *Cli) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "khutwa",
		Short: "Khutwa: diabetic foot care from the terminal",
		Long: `Khutwa keeps track of your foot health: sign in, follow live insole
sensor readings, share your data with your doctor or family and browse
the foot care library.

Get started:
  khutwa signup              Create an account
  khutwa signin              Sign in to an existing account
  khutwa dashboard           Follow live sensor readings
  khutwa share search ann    Find someone to share your data with`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoSession] == "true" {
				return nil
			}
			return c.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.configPath, "config", "c", "", "Path to JSON config file")
	pf.StringVar(&c.flags.server, "server", "", "Server URL (default http://localhost:10000)")
	pf.StringVar(&c.flags.db, "db", "", "Path to the local session database (default khutwa-client.db)")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&c.flags.timeout, "timeout", "", "Request timeout, e.g. 30s")
	pf.StringVar(&c.flags.pollInterval, "poll-interval", "", "Dashboard refresh interval, e.g. 5s")
	pf.BoolVar(&c.flags.json, "json", false, "Output as JSON")

	root.AddCommand(
		c.signUpCommand(),
		c.signInCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.profileCommand(),
		c.shareCommand(),
		c.contentCommand(),
		c.dashboardCommand(),
		c.versionCommand(),
	)

	return root
}

func parseDuration(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}
