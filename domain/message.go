// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable once appended to a chat.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageText     MessageType = "TEXT"
	MessageAudio    MessageType = "AUDIO"
	MessageVideo    MessageType = "VIDEO"
	MessageDocument MessageType = "DOCUMENT"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageText, MessageAudio, MessageVideo, MessageDocument:
		return true
	}
	return false
}

func (t MessageType) IsMedia() bool {
	return t.Valid() && t != MessageText
}

// Message represents an immutable chat event.
// Content holds the text, or a local media reference for non-text types.
type Message struct {
	ID        string      `json:"id"`
	SenderID  string      `json:"senderId"`
	Content   string      `json:"content"`
	Timestamp int64       `json:"timestamp"` // epoch milliseconds
	Type      MessageType `json:"type"`
	FileName  *string     `json:"fileName,omitempty"`
	FileType  *string     `json:"fileType,omitempty"`
}

// MessageID returns "msg-<epoch-ms>-<suffix>". The random suffix keeps two
// messages created in the same millisecond apart.
func MessageID(at time.Time) string {
	return fmt.Sprintf("msg-%d-%s", at.UnixMilli(), uuid.NewString()[:8])
}

func (m Message) SentAt() time.Time {
	return time.UnixMilli(m.Timestamp).UTC()
}
