package errors

import "fmt"

var (
	// Directory
	ErrEmptyName     = fmt.Errorf("name is empty")
	ErrDuplicateName = fmt.Errorf("user with this name already exists")
	ErrUserNotFound  = fmt.Errorf("user not found")

	// Conversations
	ErrNotAuthenticated   = fmt.Errorf("no current user")
	ErrSelfChat           = fmt.Errorf("cannot start a chat with yourself")
	ErrUnknownParticipant = fmt.Errorf("participant not found")
	ErrChatNotFound       = fmt.Errorf("chat not found")
	ErrNotParticipant     = fmt.Errorf("sender is not a participant of the chat")
	ErrInvalidMessageType = fmt.Errorf("invalid message type")
	ErrEmptyAttachment    = fmt.Errorf("attachment payload is empty")

	// Infrastructure
	ErrNotFound      = fmt.Errorf("key not found")
	ErrIndexDisabled = fmt.Errorf("search index is not configured")
)
