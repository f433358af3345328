package cmd

import (
	"echosphere/domain"
	"echosphere/repositories"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type recordView struct {
	Key    string `json:"key"`
	Bytes  int    `json:"bytes"`
	Detail string `json:"detail"`
}

func (c *CLI) inspectCommand() *cobra.Command {
	var prefix string
	inspect := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the records held by the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := c.app.Store.Keys(cmd.Context())
			if err != nil {
				return err
			}
			keys = lo.Filter(keys, func(key string, _ int) bool { return strings.HasPrefix(key, prefix) })

			rows := make([]recordView, 0, len(keys))
			for _, key := range keys {
				value, err := c.app.Store.Get(cmd.Context(), key)
				if err != nil {
					return fmt.Errorf("read %s: %w", key, err)
				}
				rows = append(rows, recordView{Key: key, Bytes: len(value), Detail: describeRecord(key, value)})
			}
			if c.display.JSON {
				return c.printJSON(rows)
			}
			table := newTable(c.out, "Key", "Bytes", "Detail")
			for _, row := range rows {
				table.Append([]string{row.Key, fmt.Sprint(row.Bytes), row.Detail})
			}
			table.Render()
			return nil
		},
	}
	inspect.Flags().StringVar(&prefix, "prefix", "", "only show keys starting with this prefix")
	return inspect
}

// describeRecord summarises a record; unreadable values are reported, not fatal.
func describeRecord(key string, value []byte) string {
	switch key {
	case repositories.UsersKey:
		var users []domain.User
		if err := json.Unmarshal(value, &users); err != nil {
			return "unreadable: " + err.Error()
		}
		return fmt.Sprintf("%d users", len(users))
	case repositories.ChatsKey:
		var chats []domain.Chat
		if err := json.Unmarshal(value, &chats); err != nil {
			return "unreadable: " + err.Error()
		}
		messages := lo.SumBy(chats, func(c domain.Chat) int { return len(c.Messages) })
		return fmt.Sprintf("%d chats, %d messages", len(chats), messages)
	case repositories.CurrentUserKey:
		return "current user " + string(value)
	default:
		return "unknown record"
	}
}
