// Package domain contains core concepts of the chat system.
// This file defines Chat aggregates between exactly two users.
package domain

import (
	"slices"
	"strings"
)

// ChatIDSeparator joins the two sorted participant ids of a chat.
const ChatIDSeparator = "--"

// Chat is a two-party conversation. Its messages are append-only.
type Chat struct {
	ID             string    `json:"id"`
	ParticipantIDs []string  `json:"participantIds"`
	Messages       []Message `json:"messages"`
}

// SortedPair returns both ids in lexicographic order.
func SortedPair(a, b string) []string {
	pair := []string{a, b}
	slices.Sort(pair)
	return pair
}

// ChatID is order-independent: ChatID(a, b) == ChatID(b, a).
func ChatID(a, b string) string {
	return strings.Join(SortedPair(a, b), ChatIDSeparator)
}

func NewChat(a, b string) Chat {
	return Chat{
		ID:             ChatID(a, b),
		ParticipantIDs: SortedPair(a, b),
		Messages:       []Message{},
	}
}

func (c Chat) IsParticipant(userID string) bool {
	return slices.Contains(c.ParticipantIDs, userID)
}

// Partner returns the other participant, or "" when userID is not part of the chat.
func (c Chat) Partner(userID string) string {
	if !c.IsParticipant(userID) {
		return ""
	}
	for _, id := range c.ParticipantIDs {
		if id != userID {
			return id
		}
	}
	return ""
}

// LastMessage returns the most recently appended message.
func (c Chat) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// Append returns a copy of the chat with the message added at the end.
// The receiver's message slice is never shared with the result.
func (c Chat) Append(message Message) Chat {
	messages := make([]Message, 0, len(c.Messages)+1)
	messages = append(messages, c.Messages...)
	c.Messages = append(messages, message)
	return c
}

// SortByRecentActivity orders chats by their last message timestamp,
// newest first. Chats without messages go last and keep their relative order.
func SortByRecentActivity(chats []Chat) {
	slices.SortStableFunc(chats, func(a, b Chat) int {
		lastA, okA := a.LastMessage()
		lastB, okB := b.LastMessage()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		case lastA.Timestamp > lastB.Timestamp:
			return -1
		case lastA.Timestamp < lastB.Timestamp:
			return 1
		}
		return 0
	})
}
