package search

import (
	"context"
	"echosphere/domain"
	domainsearch "echosphere/domain/search"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newIndex(t *testing.T) *Index {
	t.Helper()
	index, err := OpenInMemory(logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })
	return index
}

func fixtureChats() []domain.Chat {
	aliceBob := domain.NewChat("alice@echosphere", "bob@echosphere").
		Append(domain.Message{ID: "msg-1", SenderID: "alice@echosphere", Content: "lunch at noon tomorrow?", Timestamp: 100, Type: domain.MessageText}).
		Append(domain.Message{ID: "msg-2", SenderID: "bob@echosphere", Content: "media://msg-2/invoice.pdf", Timestamp: 200, Type: domain.MessageDocument, FileName: lo.ToPtr("invoice.pdf")})
	aliceCarol := domain.NewChat("alice@echosphere", "carol@echosphere").
		Append(domain.Message{ID: "msg-3", SenderID: "carol@echosphere", Content: "lunch is cancelled", Timestamp: 300, Type: domain.MessageText})
	return []domain.Chat{aliceBob, aliceCarol}
}

func TestIndex_Search_Only_Within_User_Chats(t *testing.T) {
	req := require.New(t)
	index := newIndex(t)
	req.NoError(index.Rebuild(fixtureChats()))

	hits, err := index.Search(context.Background(), "bob@echosphere", *domainsearch.NewSearchQuery("lunch"))
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("msg-1", hits[0].MessageID)
	req.Equal("alice@echosphere--bob@echosphere", hits[0].ChatID)
	req.Equal("alice@echosphere", hits[0].SenderID)
	req.Equal(int64(100), hits[0].Timestamp)
	req.Equal(domain.MessageText, hits[0].Type)

	hits, err = index.Search(context.Background(), "alice@echosphere", *domainsearch.NewSearchQuery("lunch"))
	req.NoError(err)
	req.Len(hits, 2)
}

func TestIndex_Search_Restricted_To_Chat(t *testing.T) {
	req := require.New(t)
	index := newIndex(t)
	req.NoError(index.Rebuild(fixtureChats()))

	q := domainsearch.NewSearchQuery("lunch --chat alice@echosphere--carol@echosphere")
	hits, err := index.Search(context.Background(), "alice@echosphere", *q)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("msg-3", hits[0].MessageID)
}

func TestIndex_Media_Is_Found_By_File_Name(t *testing.T) {
	req := require.New(t)
	index := newIndex(t)
	chats := fixtureChats()
	req.NoError(index.IndexMessage(chats[0], chats[0].Messages[1]))

	hits, err := index.Search(context.Background(), "alice@echosphere", *domainsearch.NewSearchQuery("invoice"))
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("msg-2", hits[0].MessageID)
	req.Equal(domain.MessageDocument, hits[0].Type)
}

func TestIndex_Empty_Terms(t *testing.T) {
	index := newIndex(t)
	hits, err := index.Search(context.Background(), "alice@echosphere", domainsearch.Query{Terms: "  "})
	require.NoError(t, err)
	require.Empty(t, hits)
}
