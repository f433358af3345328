package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	req := require.New(t)
	at := time.UnixMilli(1700000000123)

	user := NewUser("Mary Jane", at)

	req.Equal("maryjane1700000000123@echosphere", user.ID)
	req.Equal("Mary Jane", user.Name)
	req.Equal("https://i.pravatar.cc/150?u=maryjane1700000000123@echosphere", user.Avatar)
}

func TestSlug_StripsAllWhitespace(t *testing.T) {
	require.Equal(t, "johnnydoe", Slug("  Johnny\tDoe \n"))
}

func TestSameName(t *testing.T) {
	req := require.New(t)
	req.True(SameName("Alice", "alice"))
	req.True(SameName(" ALICE ", "alice"))
	req.False(SameName("Alice", "Alicia"))
}

func TestMessageType_Valid(t *testing.T) {
	req := require.New(t)
	req.True(MessageText.Valid())
	req.True(MessageDocument.IsMedia())
	req.False(MessageText.IsMedia())
	req.False(MessageType("STICKER").Valid())
}

func TestMessageID_Format(t *testing.T) {
	req := require.New(t)
	at := time.UnixMilli(1700000000123)

	first := MessageID(at)
	second := MessageID(at)

	req.Regexp(`^msg-1700000000123-[0-9a-f]{8}$`, first)
	req.NotEqual(first, second)
}
