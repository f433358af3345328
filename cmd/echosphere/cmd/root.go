package cmd

import (
	"context"
	"echosphere/internal"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Opener opens the application for the duration of one command.
type Opener func(ctx context.Context) (*internal.App, error)

// CLI carries what every command needs: the opened application, where to
// print, and how.
type CLI struct {
	open    Opener
	app     *internal.App
	fs      afero.Fs
	out     io.Writer
	base    Display
	display Display
}

func New(open Opener, fs afero.Fs, out io.Writer, display Display) *CLI {
	return &CLI{open: open, fs: fs, out: out, base: display, display: display}
}

// Command builds the command tree. Flags start from the display preferences
// given to New on every call.
func (c *CLI) Command() *cobra.Command {
	c.display = c.base
	root := &cobra.Command{
		Use:   "echosphere",
		Short: "EchoSphere local chat",
		Long: `EchoSphere keeps users, two-party chats and their messages on this machine.

Start by choosing who you are:
  echosphere users list
  echosphere login alice@echosphere

Then talk:
  echosphere chats start bob@echosphere
  echosphere send alice@echosphere--bob@echosphere "hello Bob"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			c.app = app
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.app == nil {
				return nil
			}
			err := c.app.Close()
			c.app = nil
			return err
		},
	}
	root.PersistentFlags().BoolVar(&c.display.JSON, "json", c.display.JSON, "print results as JSON")
	root.SetOut(c.out)

	root.AddCommand(
		c.usersCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.chatsCommand(),
		c.sendCommand(),
		c.attachCommand(),
		c.recordCommand(),
		c.downloadCommand(),
		c.searchCommand(),
		c.reindexCommand(),
		c.inspectCommand(),
	)
	return root
}

// Execute runs the command line against args and closes the application
// even when the command fails.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.Command()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if c.app != nil {
		_ = c.app.Close()
		c.app = nil
	}
	return err
}
