package cmd

import (
	domainsearch "echosphere/domain/search"
	"echosphere/errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) searchCommand() *cobra.Command {
	var (
		chatID string
		limit  int
	)
	search := &cobra.Command{
		Use:   "search <terms>",
		Short: "Search messages in your conversations",
		Example: `  echosphere search invoice
  echosphere search invoice --chat alice@echosphere--bob@echosphere --limit 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			currentID := c.app.Session.CurrentID()
			if currentID == "" {
				return errors.ErrNotAuthenticated
			}
			terms := strings.Join(args, " ")
			hits, err := c.app.Conversations.SearchQuery(cmd.Context(), currentID, domainsearch.Query{
				RawInput: terms,
				Terms:    terms,
				ChatID:   chatID,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if c.display.JSON {
				return c.printJSON(hits)
			}
			if len(hits) == 0 {
				c.muted("No message matches")
				return nil
			}
			table := newTable(c.out, "When", "Chat", "From", "Type", "Message", "Score")
			for _, hit := range hits {
				table.Append([]string{
					formatTime(time.UnixMilli(hit.Timestamp)),
					hit.ChatID,
					hit.SenderID,
					string(hit.Type),
					hit.Content,
					fmt.Sprintf("%.2f", hit.Score),
				})
			}
			table.Render()
			return nil
		},
	}
	search.Flags().StringVar(&chatID, "chat", "", "only search this chat")
	search.Flags().IntVar(&limit, "limit", 0, "maximum number of hits, SEARCH_LIMIT when 0")
	return search
}

func (c *CLI) reindexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the search index from the stored chats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.app.Index == nil {
				return errors.ErrIndexDisabled
			}
			if err := c.app.Reindex(cmd.Context()); err != nil {
				return err
			}
			c.success("Search index rebuilt")
			return nil
		},
	}
}
