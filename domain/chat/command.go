// Package chat holds the commands the presentation layer hands to the conversation service.
package chat

import "echosphere/domain"

// SendMessageCommand carries a message exactly as the user composed it.
// FileName and FileType are only set for media messages.
type SendMessageCommand struct {
	SenderID string             `validate:"required"`
	ChatID   string             `validate:"required"`
	Content  string             // text, or a local media reference
	Type     domain.MessageType `validate:"required,oneof=TEXT AUDIO VIDEO DOCUMENT"`
	FileName *string
	FileType *string
}

// AttachmentCommand is a file picked by the user. An empty MIMEType is sniffed from Data.
type AttachmentCommand struct {
	SenderID string `validate:"required"`
	ChatID   string `validate:"required"`
	FileName string
	MIMEType string
	Data     []byte `validate:"min=1"`
}

// RecordingCommand is a finished microphone capture.
type RecordingCommand struct {
	SenderID string `validate:"required"`
	ChatID   string `validate:"required"`
	MIMEType string
	Data     []byte `validate:"min=1"`
}

func (c RecordingCommand) Size() int {
	return len(c.Data)
}
