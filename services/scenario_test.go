package services

import (
	"context"
	"echosphere/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenario_TwoUsersExchangeAMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t, true)

	req.NoError(f.directory.EnsureSeeded(ctx))
	users, err := f.directory.ListUsers(ctx)
	req.NoError(err)
	req.Len(users, 2)

	me, err := f.session.Login(ctx, alice)
	req.NoError(err)

	c, err := f.conversations.StartChat(ctx, me.ID, bob)
	req.NoError(err)
	req.Equal(strings.Join(domain.SortedPair(alice, bob), domain.ChatIDSeparator), c.ID)

	_, err = f.conversations.SendMessage(ctx, text(me.ID, c.ID, "hi"))
	req.NoError(err)

	req.NoError(f.session.Logout(ctx))
	other, err := f.session.Login(ctx, bob)
	req.NoError(err)

	chats, err := f.conversations.ListChatsFor(ctx, other.ID)
	req.NoError(err)
	req.Len(chats, 1)
	req.Len(chats[0].Messages, 1)
	req.Equal(alice, chats[0].Messages[0].SenderID)
	req.Equal("hi", chats[0].Messages[0].Content)

	hits, err := f.conversations.Search(ctx, other.ID, "hi")
	req.NoError(err)
	req.Len(hits, 1)
}
