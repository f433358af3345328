package services

import (
	"context"
	"echosphere/domain"
	"echosphere/domain/chat"
	"echosphere/domain/mimetypes"
	domainsearch "echosphere/domain/search"
	"echosphere/errors"
	"echosphere/repositories"
	"echosphere/search"
	"echosphere/storage"
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	NoMessagesPreview  = "No messages yet"
	recordingExtension = ".wav"
)

type IConversationService interface {
	StartChat(ctx context.Context, currentUserID, participantID string) (domain.Chat, error)
	SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (domain.Message, error)
	SendAttachment(ctx context.Context, cmd chat.AttachmentCommand) (domain.Message, error)
	SendRecording(ctx context.Context, cmd chat.RecordingCommand) (domain.Message, error)
	GetChat(ctx context.Context, chatID string) (domain.Chat, error)
	ListChatsFor(ctx context.Context, userID string) ([]domain.Chat, error)
	Summaries(ctx context.Context, userID string) ([]ChatSummary, error)
	Search(ctx context.Context, userID, input string) ([]search.Hit, error)
	SearchQuery(ctx context.Context, userID string, q domainsearch.Query) ([]search.Hit, error)
}

// MediaStore keeps attachment payloads outside the chats record.
type MediaStore interface {
	Save(ctx context.Context, owner, fileName string, data []byte) (string, error)
	Remove(ctx context.Context, ref string) error
}

type MessageIndex interface {
	IndexMessage(chat domain.Chat, message domain.Message) error
	Search(ctx context.Context, userID string, q domainsearch.Query) ([]search.Hit, error)
}

// ChatSummary is one sidebar row: the other participant and the last message preview.
type ChatSummary struct {
	Chat         domain.Chat
	Partner      domain.User
	Preview      string
	LastActivity *time.Time
}

type ConversationService struct {
	chatRepository repositories.IChatRepository
	directory      IDirectoryService
	media          MediaStore
	index          MessageIndex
	log            *slog.Logger
	now            func() time.Time
	searchLimit    int
	mu             sync.Mutex
}

// NewConversationService wires the service. media and index may be nil, in
// which case attachments are kept inline and search is disabled.
func NewConversationService(
	repo repositories.IChatRepository,
	directory IDirectoryService,
	media MediaStore,
	index MessageIndex,
	log *slog.Logger,
	now func() time.Time,
) *ConversationService {
	if now == nil {
		now = time.Now
	}
	return &ConversationService{
		chatRepository: repo,
		directory:      directory,
		media:          media,
		index:          index,
		log:            log,
		now:            now,
	}
}

// StartChat returns the chat shared by both users, creating it on first contact.
func (s *ConversationService) StartChat(ctx context.Context, currentUserID, participantID string) (domain.Chat, error) {
	if currentUserID == "" {
		return domain.Chat{}, errors.ErrNotAuthenticated
	}
	if currentUserID == participantID {
		return domain.Chat{}, errors.ErrSelfChat
	}
	if _, err := s.directory.GetUser(ctx, currentUserID); err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return domain.Chat{}, errors.ErrNotAuthenticated
		}
		return domain.Chat{}, err
	}
	if _, err := s.directory.GetUser(ctx, participantID); err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return domain.Chat{}, fmt.Errorf("%w: %s", errors.ErrUnknownParticipant, participantID)
		}
		return domain.Chat{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	chats, err := s.chatRepository.GetChats(ctx)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("load chats: %w", err)
	}
	chatID := domain.ChatID(currentUserID, participantID)
	if existing, ok := lo.Find(chats, func(c domain.Chat) bool { return c.ID == chatID }); ok {
		return existing, nil
	}

	created := domain.NewChat(currentUserID, participantID)
	if err = s.chatRepository.SaveChats(ctx, append(chats, created)); err != nil {
		return domain.Chat{}, fmt.Errorf("save chats: %w", err)
	}
	s.log.Info("Chat started", "chat", created.ID)
	return created, nil
}

// SendMessage appends one message to an existing chat the sender belongs to.
func (s *ConversationService) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (domain.Message, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.Message{}, err
	}
	return s.appendMessage(ctx, cmd.SenderID, cmd.ChatID, func(id string, at time.Time) (domain.Message, error) {
		return domain.Message{
			Content:  cmd.Content,
			Type:     cmd.Type,
			FileName: cmd.FileName,
			FileType: cmd.FileType,
		}, nil
	})
}

// SendAttachment stores a picked file and posts it as a VIDEO or DOCUMENT message.
func (s *ConversationService) SendAttachment(ctx context.Context, cmd chat.AttachmentCommand) (domain.Message, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.Message{}, err
	}
	contentType := cmd.MIMEType
	if contentType == "" {
		contentType = mimetypes.Detect(cmd.Data)
	}
	return s.appendMessage(ctx, cmd.SenderID, cmd.ChatID, func(id string, at time.Time) (domain.Message, error) {
		fileName := filepath.Base(strings.TrimSpace(cmd.FileName))
		if fileName == "." || fileName == string(filepath.Separator) {
			fileName = fmt.Sprintf("attachment-%d%s", at.UnixMilli(), mimetypes.Extension(contentType))
		}
		content, err := s.storeMedia(ctx, id, fileName, cmd.Data)
		if err != nil {
			return domain.Message{}, err
		}
		return domain.Message{
			Content:  content,
			Type:     mimetypes.Classify(contentType),
			FileName: lo.ToPtr(fileName),
			FileType: lo.ToPtr(contentType),
		}, nil
	})
}

// SendRecording posts a finished audio capture.
func (s *ConversationService) SendRecording(ctx context.Context, cmd chat.RecordingCommand) (domain.Message, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.Message{}, err
	}
	contentType := cmd.MIMEType
	if contentType == "" {
		contentType = mimetypes.RecordingType(cmd.Data)
	}
	return s.appendMessage(ctx, cmd.SenderID, cmd.ChatID, func(id string, at time.Time) (domain.Message, error) {
		fileName := fmt.Sprintf("audio-recording-%d%s", at.UnixMilli(), recordingExtension)
		content, err := s.storeMedia(ctx, id, fileName, cmd.Data)
		if err != nil {
			return domain.Message{}, err
		}
		s.log.Debug("Recording received", "bytes", cmd.Size(), "type", contentType)
		return domain.Message{
			Content:  content,
			Type:     domain.MessageAudio,
			FileName: lo.ToPtr(fileName),
			FileType: lo.ToPtr(contentType),
		}, nil
	})
}

func (s *ConversationService) storeMedia(ctx context.Context, messageID, fileName string, data []byte) (string, error) {
	if s.media == nil {
		return fileName, nil
	}
	ref, err := s.media.Save(ctx, messageID, fileName, data)
	if err != nil {
		return "", fmt.Errorf("store media: %w", err)
	}
	return ref, nil
}

// discardMedia drops the payload of a message that never made it into the chats record.
func (s *ConversationService) discardMedia(ctx context.Context, message domain.Message) {
	if s.media == nil || !storage.IsMediaRef(message.Content) {
		return
	}
	if err := s.media.Remove(ctx, message.Content); err != nil {
		s.log.Warn("Orphan media left behind", "ref", message.Content, "error", err)
	}
}

// appendMessage runs one read-modify-write of the chats record. compose fills
// the payload fields; id, sender and timestamp are set here.
func (s *ConversationService) appendMessage(
	ctx context.Context,
	senderID, chatID string,
	compose func(id string, at time.Time) (domain.Message, error),
) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats, err := s.chatRepository.GetChats(ctx)
	if err != nil {
		return domain.Message{}, fmt.Errorf("load chats: %w", err)
	}
	_, idx, found := lo.FindIndexOf(chats, func(c domain.Chat) bool { return c.ID == chatID })
	if !found {
		s.log.Warn("Message dropped, chat not found", "chat", chatID, "sender", senderID)
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrChatNotFound, chatID)
	}
	if !chats[idx].IsParticipant(senderID) {
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrNotParticipant, senderID)
	}

	at := s.now()
	id := domain.MessageID(at)
	message, err := compose(id, at)
	if err != nil {
		return domain.Message{}, err
	}
	message.ID = id
	message.SenderID = senderID
	message.Timestamp = at.UnixMilli()

	updated := chats[idx].Append(message)
	chats[idx] = updated
	if err = s.chatRepository.SaveChats(ctx, chats); err != nil {
		s.discardMedia(ctx, message)
		return domain.Message{}, fmt.Errorf("save chats: %w", err)
	}
	s.log.Info("Message sent", "chat", chatID, "id", message.ID, "type", message.Type)

	if s.index != nil {
		if err = s.index.IndexMessage(updated, message); err != nil {
			s.log.Warn("Message not indexed", "id", message.ID, "error", err)
		}
	}
	return message, nil
}

func (s *ConversationService) GetChat(ctx context.Context, chatID string) (domain.Chat, error) {
	chats, err := s.chatRepository.GetChats(ctx)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("load chats: %w", err)
	}
	found, ok := lo.Find(chats, func(c domain.Chat) bool { return c.ID == chatID })
	if !ok {
		return domain.Chat{}, fmt.Errorf("%w: %s", errors.ErrChatNotFound, chatID)
	}
	return found, nil
}

// ListChatsFor returns the user's chats, most recently active first.
// Chats without messages come last, in storage order.
func (s *ConversationService) ListChatsFor(ctx context.Context, userID string) ([]domain.Chat, error) {
	chats, err := s.chatRepository.GetChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chats: %w", err)
	}
	mine := lo.Filter(chats, func(c domain.Chat, _ int) bool { return c.IsParticipant(userID) })
	domain.SortByRecentActivity(mine)
	return mine, nil
}

func (s *ConversationService) Summaries(ctx context.Context, userID string) ([]ChatSummary, error) {
	chats, err := s.ListChatsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(users, func(u domain.User) string { return u.ID })

	return lo.Map(chats, func(c domain.Chat, _ int) ChatSummary {
		partnerID := c.Partner(userID)
		partner, ok := byID[partnerID]
		if !ok {
			partner = domain.User{ID: partnerID}
		}
		summary := ChatSummary{Chat: c, Partner: partner, Preview: NoMessagesPreview}
		if last, ok := c.LastMessage(); ok {
			summary.Preview = preview(last)
			summary.LastActivity = lo.ToPtr(last.SentAt())
		}
		return summary
	}), nil
}

func preview(message domain.Message) string {
	if message.Type.IsMedia() && message.FileName != nil {
		return fmt.Sprintf("[%s] %s", message.Type, *message.FileName)
	}
	return message.Content
}

// Search looks up messages in the user's chats. Flags such as --chat and
// --limit are parsed out of input.
func (s *ConversationService) Search(ctx context.Context, userID, input string) ([]search.Hit, error) {
	return s.SearchQuery(ctx, userID, *domainsearch.NewSearchQueryWithLimit(input, s.searchLimit))
}

// SearchQuery runs an already parsed query. A zero limit falls back to the
// configured search limit.
func (s *ConversationService) SearchQuery(ctx context.Context, userID string, q domainsearch.Query) ([]search.Hit, error) {
	if s.index == nil {
		return nil, errors.ErrIndexDisabled
	}
	if userID == "" {
		return nil, errors.ErrNotAuthenticated
	}
	if q.Limit <= 0 {
		q.Limit = s.searchLimit
	}
	return s.index.Search(ctx, userID, q)
}

// WithSearchLimit sets how many hits Search returns when the input has no --limit.
func (s *ConversationService) WithSearchLimit(limit int) *ConversationService {
	s.searchLimit = limit
	return s
}
