package cmd

import (
	"echosphere/domain"
	"echosphere/errors"
	"echosphere/services"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type summaryView struct {
	ChatID       string      `json:"chatId"`
	Partner      domain.User `json:"partner"`
	Preview      string      `json:"preview"`
	LastActivity *int64      `json:"lastActivity,omitempty"`
}

func toSummaryView(summary services.ChatSummary) summaryView {
	view := summaryView{ChatID: summary.Chat.ID, Partner: summary.Partner, Preview: summary.Preview}
	if summary.LastActivity != nil {
		view.LastActivity = lo.ToPtr(summary.LastActivity.UnixMilli())
	}
	return view
}

func (c *CLI) chatsCommand() *cobra.Command {
	chats := &cobra.Command{
		Use:   "chats",
		Short: "Browse and start conversations of the current user",
	}

	chats.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List conversations, most recent activity first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentID := c.app.Session.CurrentID()
			if currentID == "" {
				return errors.ErrNotAuthenticated
			}
			summaries, err := c.app.Conversations.Summaries(cmd.Context(), currentID)
			if err != nil {
				return err
			}
			if c.display.JSON {
				return c.printJSON(lo.Map(summaries, func(s services.ChatSummary, _ int) summaryView { return toSummaryView(s) }))
			}
			if len(summaries) == 0 {
				c.muted("No conversations yet. Start one with: echosphere chats start <user id>")
				return nil
			}
			table := newTable(c.out, "Chat", "With", "Last message", "When")
			for _, summary := range summaries {
				when := ""
				if summary.LastActivity != nil {
					when = formatTime(*summary.LastActivity)
				}
				name := summary.Partner.Name
				if name == "" {
					name = summary.Partner.ID
				}
				table.Append([]string{summary.Chat.ID, name, summary.Preview, when})
			}
			table.Render()
			return nil
		},
	})

	chats.AddCommand(&cobra.Command{
		Use:   "start <user id>",
		Short: "Open the conversation with another user, creating it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, err := c.app.Conversations.StartChat(cmd.Context(), c.app.Session.CurrentID(), args[0])
			if err != nil {
				return err
			}
			if c.display.JSON {
				return c.printJSON(chat)
			}
			c.success("Chat %s ready", chat.ID)
			return nil
		},
	})

	chats.AddCommand(&cobra.Command{
		Use:   "show <chat id>",
		Short: "Print every message of a conversation",
		Args:  cobra.ExactArgs(1),
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
			if c.display.JSON {
				return c.printJSON(chat)
			}
			if len(chat.Messages) == 0 {
				c.muted("No messages yet")
				return nil
			}
			users, err := c.app.Directory.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			names := lo.SliceToMap(users, func(u domain.User) (string, string) { return u.ID, u.Name })
			table := newTable(c.out, "When", "From", "Type", "Content")
			for _, message := range chat.Messages {
				from := names[message.SenderID]
				if message.SenderID == currentID {
					from = "You"
				}
				table.Append([]string{formatTime(message.SentAt()), from, string(message.Type), messageText(message)})
			}
			table.Render()
			return nil
		},
	})
	return chats
}

func messageText(message domain.Message) string {
	if message.Type.IsMedia() && message.FileName != nil {
		return fmt.Sprintf("%s (%s)", *message.FileName, message.Content)
	}
	return message.Content
}
