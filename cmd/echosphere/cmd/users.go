package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) usersCommand() *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "List and create users",
	}

	users.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every known user, the current one marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Directory.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			if c.display.JSON {
				return c.printJSON(list)
			}
			currentID := c.app.Session.CurrentID()
			table := newTable(c.out, "", "ID", "Name", "Avatar")
			for _, user := range list {
				marker := ""
				if user.ID == currentID {
					marker = "*"
				}
				table.Append([]string{marker, user.ID, user.Name, user.Avatar})
			}
			table.Render()
			return nil
		},
	})

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a user; names are unique regardless of case",
		Example: `  echosphere users create "Carol Ann"
  echosphere users create -- -Zed-`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.Directory.CreateUser(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if c.display.JSON {
				return c.printJSON(user)
			}
			c.success("Created %s (%s)", user.Name, user.ID)
			return nil
		},
	}
	create.Flags().SetInterspersed(false)
	users.AddCommand(create)
	return users
}
