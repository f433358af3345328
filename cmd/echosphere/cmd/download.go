package cmd

import (
	"echosphere/domain"
	"echosphere/errors"
	"echosphere/storage"
	"fmt"
	"io"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (c *CLI) downloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download <chat id> <message id> <directory>",
		Short: "Copy the file of a media message into a directory",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			currentID := c.app.Session.CurrentID()
			if currentID == "" {
				return errors.ErrNotAuthenticated
			}
			chat, err := c.app.Conversations.GetChat(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !chat.IsParticipant(currentID) {
				return fmt.Errorf("%w: %s", errors.ErrNotParticipant, currentID)
			}
			message, ok := lo.Find(chat.Messages, func(m domain.Message) bool { return m.ID == args[1] })
			if !ok {
				return fmt.Errorf("message %s not found in %s", args[1], chat.ID)
			}
			if !storage.IsMediaRef(message.Content) || message.FileName == nil {
				return fmt.Errorf("message %s has no stored file", message.ID)
			}

			src, err := c.app.Media.Open(cmd.Context(), message.Content)
			if err != nil {
				return err
			}
			defer src.Close()

			if err = c.fs.MkdirAll(args[2], 0o755); err != nil {
				return err
			}
			target := filepath.Join(args[2], filepath.Base(*message.FileName))
			dst, err := c.fs.Create(target)
			if err != nil {
				return err
			}
			defer dst.Close()
			written, err := io.Copy(dst, src)
			if err != nil {
				return fmt.Errorf("copy %s: %w", target, err)
			}
			c.success("Saved %s (%d bytes)", target, written)
			return nil
		},
	}
}
