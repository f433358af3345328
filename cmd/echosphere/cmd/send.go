package cmd

import (
	"echosphere/domain"
	"echosphere/domain/chat"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func (c *CLI) sendCommand() *cobra.Command {
	send := &cobra.Command{
		Use:     "send <chat id> <text>",
		Short:   "Send a text message as the current user",
		Example: `  echosphere send alice@echosphere--bob@echosphere "see you at noon"`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := c.app.Conversations.SendMessage(cmd.Context(), chat.SendMessageCommand{
				SenderID: c.app.Session.CurrentID(),
				ChatID:   args[0],
				Content:  strings.Join(args[1:], " "),
				Type:     domain.MessageText,
			})
			if err != nil {
				return err
			}
			return c.sent(message)
		},
	}
	// Message text such as "-1 works" must not be read as flags.
	send.Flags().SetInterspersed(false)
	return send
}

func (c *CLI) attachCommand() *cobra.Command {
	var mimeType string
	attach := &cobra.Command{
		Use:   "attach <chat id> <path>",
		Short: "Send a file; videos are posted as VIDEO, anything else as DOCUMENT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := afero.ReadFile(c.fs, args[1])
			if err != nil {
				return fmt.Errorf("read attachment: %w", err)
			}
			message, err := c.app.Conversations.SendAttachment(cmd.Context(), chat.AttachmentCommand{
				SenderID: c.app.Session.CurrentID(),
				ChatID:   args[0],
				FileName: filepath.Base(args[1]),
				MIMEType: mimeType,
				Data:     data,
			})
			if err != nil {
				return err
			}
			return c.sent(message)
		},
	}
	attach.Flags().StringVar(&mimeType, "type", "", "MIME type of the file, sniffed from its content when empty")
	return attach
}

func (c *CLI) recordCommand() *cobra.Command {
	var mimeType string
	record := &cobra.Command{
		Use:   "record <chat id> <path>",
		Short: "Send a captured audio clip as a voice message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := afero.ReadFile(c.fs, args[1])
			if err != nil {
				return fmt.Errorf("read recording: %w", err)
			}
			message, err := c.app.Conversations.SendRecording(cmd.Context(), chat.RecordingCommand{
				SenderID: c.app.Session.CurrentID(),
				ChatID:   args[0],
				MIMEType: mimeType,
				Data:     data,
			})
			if err != nil {
				return err
			}
			return c.sent(message)
		},
	}
	record.Flags().StringVar(&mimeType, "type", "", "MIME type of the clip, sniffed from its content when empty")
	return record
}

func (c *CLI) sent(message domain.Message) error {
	if c.display.JSON {
		return c.printJSON(message)
	}
	c.success("Sent %s %s", message.Type, message.ID)
	return nil
}
