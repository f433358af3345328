package cmd

import (
	"github.com/spf13/cobra"
)

func (c *CLI) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <user id>",
		Short: "Act as the given user from now on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.Session.Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.success("Logged in as %s", user.Name)
			return nil
		},
	}
}

func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			c.success("Logged out")
			return nil
		},
	}
}

func (c *CLI) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := c.app.Session.Current()
			if c.display.JSON {
				if !ok {
					return c.printJSON(nil)
				}
				return c.printJSON(user)
			}
			if !ok {
				c.muted("Nobody is logged in. Pick a user with: echosphere login <user id>")
				return nil
			}
			table := newTable(c.out, "ID", "Name", "Avatar")
			table.Append([]string{user.ID, user.Name, user.Avatar})
			table.Render()
			return nil
		},
	}
}
