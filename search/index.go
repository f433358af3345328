// Package search keeps a Bluge full-text index of chat messages. The index is
// derived data: it can always be rebuilt from the chats record.
package search

import (
	"context"
	"echosphere/domain"
	domainsearch "echosphere/domain/search"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blugelabs/bluge"
)

const (
	fieldID          = "_id"
	fieldContent     = "content"
	fieldDisplay     = "display"
	fieldChat        = "chat_id"
	fieldSender      = "sender_id"
	fieldType        = "type"
	fieldTimestamp   = "timestamp"
	fieldParticipant = "participant"
)

// Hit is one message matching a search.
type Hit struct {
	MessageID string             `json:"messageId"`
	ChatID    string             `json:"chatId"`
	SenderID  string             `json:"senderId"`
	Content   string             `json:"content"`
	Type      domain.MessageType `json:"type"`
	Timestamp int64              `json:"timestamp"`
	Score     float64            `json:"score"`
}

type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

// Open opens (or creates) an on-disk index in dir.
func Open(dir string, log *slog.Logger) (*Index, error) {
	return open(bluge.DefaultConfig(dir), log)
}

// OpenInMemory is meant for tests and throwaway sessions.
func OpenInMemory(log *slog.Logger) (*Index, error) {
	return open(bluge.InMemoryOnlyConfig(), log)
}

func open(config bluge.Config, log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(config)
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	return &Index{writer: writer, log: log}, nil
}

// IndexMessage adds or replaces a single message of the given chat.
func (i *Index) IndexMessage(chat domain.Chat, message domain.Message) error {
	doc := toDocument(chat, message)
	return i.writer.Update(doc.ID(), doc)
}

// Rebuild indexes every message of every chat in one batch.
func (i *Index) Rebuild(chats []domain.Chat) error {
	batch := bluge.NewBatch()
	count := 0
	for _, chat := range chats {
		for _, message := range chat.Messages {
			doc := toDocument(chat, message)
			batch.Update(doc.ID(), doc)
			count++
		}
	}
	if err := i.writer.Batch(batch); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	i.log.Info("Search index rebuilt", "chats", len(chats), "messages", count)
	return nil
}

// Search returns the best matches among the chats userID takes part in.
func (i *Index) Search(ctx context.Context, userID string, q domainsearch.Query) ([]Hit, error) {
	if strings.TrimSpace(q.Terms) == "" {
		return []Hit{}, nil
	}
	limit := q.Limit
	if limit <= 0 {
		limit = domainsearch.DefaultLimit
	}

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(q.Terms).SetField(fieldContent)).
		AddMust(bluge.NewTermQuery(userID).SetField(fieldParticipant))
	if q.ChatID != "" {
		query.AddMust(bluge.NewTermQuery(q.ChatID).SetField(fieldChat))
	}

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer reader.Close()

	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := []Hit{}
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case fieldID:
				hit.MessageID = string(value)
			case fieldDisplay:
				hit.Content = string(value)
			case fieldChat:
				hit.ChatID = string(value)
			case fieldSender:
				hit.SenderID = string(value)
			case fieldType:
				hit.Type = domain.MessageType(value)
			case fieldTimestamp:
				if ts, decodeErr := bluge.DecodeNumericFloat64(value); decodeErr == nil {
					hit.Timestamp = int64(ts)
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func (i *Index) Close() error {
	i.log.Info("Closing Bluge...")
	return i.writer.Close()
}

var fileNameSeparators = strings.NewReplacer(".", " ", "_", " ", "-", " ")

// toDocument indexes text content, or the file name words for media messages.
func toDocument(chat domain.Chat, message domain.Message) *bluge.Document {
	content, display := message.Content, message.Content
	if message.Type.IsMedia() && message.FileName != nil {
		content = fileNameSeparators.Replace(*message.FileName)
		display = *message.FileName
	}
	doc := bluge.NewDocument(message.ID).
		AddField(bluge.NewTextField(fieldContent, content)).
		AddField(bluge.NewStoredOnlyField(fieldDisplay, []byte(display))).
		AddField(bluge.NewKeywordField(fieldChat, chat.ID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSender, message.SenderID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldType, string(message.Type)).StoreValue()).
		AddField(bluge.NewNumericField(fieldTimestamp, float64(message.Timestamp)).StoreValue())
	for _, participant := range chat.ParticipantIDs {
		doc.AddField(bluge.NewKeywordField(fieldParticipant, participant))
	}
	return doc
}
