package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSearchQuery(t *testing.T) {
	t.Run("should keep plain terms with the default limit", func(t *testing.T) {
		req := require.New(t)
		q := NewSearchQuery("lunch tomorrow")
		req.Equal("lunch tomorrow", q.Terms)
		req.Empty(q.ChatID)
		req.Equal(DefaultLimit, q.Limit)
	})

	t.Run("should extract chat and limit flags", func(t *testing.T) {
		req := require.New(t)
		q := NewSearchQuery("invoice --chat alice@echosphere--bob@echosphere --limit 3 march")
		req.Equal("invoice march", q.Terms)
		req.Equal("alice@echosphere--bob@echosphere", q.ChatID)
		req.Equal(3, q.Limit)
	})

	t.Run("should ignore an invalid limit", func(t *testing.T) {
		q := NewSearchQuery("report --limit zero")
		require.Equal(t, DefaultLimit, q.Limit)
		require.Equal(t, "report", q.Terms)
	})

	t.Run("should use the caller default unless a limit is given", func(t *testing.T) {
		req := require.New(t)
		req.Equal(25, NewSearchQueryWithLimit("report", 25).Limit)
		req.Equal(2, NewSearchQueryWithLimit("report --limit 2", 25).Limit)
		req.Equal(DefaultLimit, NewSearchQueryWithLimit("report", 0).Limit)
	})
}
