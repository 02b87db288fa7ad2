package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/khutwa/internal/models"
)

func (c *Cli) shareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Manage who can see your foot health data",
		Long: `Share your data with your doctor or family, and see whose data is
shared with you.

  khutwa share list
  khutwa share search ann
  khutwa share grant <user-id>
  khutwa share revoke <user-id>
  khutwa share stop <user-id>`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show both directions of sharing",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireAuth(); err != nil {
					return err
				}
				overview, err := c.sharing.Load(cmd.Context())
				if err != nil {
					return err
				}
				if c.flags.json {
					return c.printJSON(map[string]any{
						"granted":  nonNil(overview.Granted),
						"received": nonNil(overview.Received),
					})
				}
				c.printSharedUsers("People who can see your data:", overview.Granted, "You are not sharing your data with anyone.")
				c.io.Println()
				c.printSharedUsers("People sharing their data with you:", overview.Received, "No one is sharing their data with you.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "search <query>",
			Short: "Find users to share with (at least 2 characters)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireAuth(); err != nil {
					return err
				}
				candidates, err := c.sharing.Search(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if c.flags.json {
					return c.printJSON(candidates)
				}
				c.printCandidates(candidates)
				return nil
			},
		},
		&cobra.Command{
			Use:   "grant <user-id>",
			Short: "Let a user see your data",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireAuth(); err != nil {
					return err
				}
				users, err := c.sharing.GrantAndReload(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.afterMutation("✓ Access granted.", "People who can see your data:", users, "You are not sharing your data with anyone.")
			},
		},
		&cobra.Command{
			Use:   "revoke <user-id>",
			Short: "Stop sharing your data with a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireAuth(); err != nil {
					return err
				}
				users, err := c.sharing.RevokeAndReload(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.afterMutation("✓ Access revoked.", "People who can see your data:", users, "You are not sharing your data with anyone.")
			},
		},
		&cobra.Command{
			Use:   "stop <user-id>",
			Short: "Stop seeing data a user shares with you",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireAuth(); err != nil {
					return err
				}
				users, err := c.sharing.StopSeeingAndReload(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.afterMutation("✓ Removed.", "People sharing their data with you:", users, "No one is sharing their data with you.")
			},
		},
	)

	return cmd
}

func (c *Cli) afterMutation(done, title string, users []models.SharedUser, empty string) error {
	if c.flags.json {
		return c.printJSON(nonNil(users))
	}
	c.io.Println(done)
	c.printSharedUsers(title, users, empty)
	return nil
}

func nonNil(users []models.SharedUser) []models.SharedUser {
	if users == nil {
		return []models.SharedUser{}
	}
	return users
}
