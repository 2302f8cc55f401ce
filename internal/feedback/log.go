// Package feedback keeps the contact-form messages: an append-only, capped
// log persisted as one blob, newest first. Messages beyond the retention
// count are silently dropped from the tail.
package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/astrogid/astrogid/internal/logging"
	"github.com/astrogid/astrogid/internal/model"
	"github.com/astrogid/astrogid/internal/storage"
)

// DefaultRetention is the number of messages kept when no explicit
// retention is configured.
const DefaultRetention = 50

// Log stores feedback messages through the persistent store.
type Log struct {
	store     *storage.Store
	log       logging.Logger
	retention int
}

// New returns a feedback log capped at retention messages; values below one
// fall back to DefaultRetention.
func New(store *storage.Store, log logging.Logger, retention int) *Log {
	if retention < 1 {
		retention = DefaultRetention
	}
	return &Log{store: store, log: log, retention: retention}
}

// Append records a new message at the head of the log and persists it,
// dropping the oldest entries beyond the retention cap.
func (l *Log) Append(ctx context.Context, name, email, body string) (model.FeedbackMessage, error) {
	msgs, err := l.List(ctx)
	if err != nil {
		return model.FeedbackMessage{}, err
	}

	now := time.Now().UTC()
	msg := model.FeedbackMessage{
		ID:        now.UnixMilli(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Body:      body,
		CreatedAt: now,
	}
	if len(msgs) > 0 && msg.ID <= msgs[0].ID {
		msg.ID = msgs[0].ID + 1
	}

	msgs = append([]model.FeedbackMessage{msg}, msgs...)
	if len(msgs) > l.retention {
		msgs = msgs[:l.retention]
	}

	raw, err := json.Marshal(msgs)
	if err != nil {
		return model.FeedbackMessage{}, err
	}
	if err := l.store.Set(ctx, storage.KeyFeedback, raw); err != nil {
		return model.FeedbackMessage{}, err
	}
	return msg, nil
}

// List returns the stored messages, newest first. A missing or corrupt blob
// yields an empty list.
func (l *Log) List(ctx context.Context) ([]model.FeedbackMessage, error) {
	raw, err := l.store.Get(ctx, storage.KeyFeedback)
	if err != nil {
		l.log.Warn(ctx, "feedback log unreadable, starting empty", "error", err)
		return nil, nil
	}
	if raw == nil {
		return nil, nil
	}
	var msgs []model.FeedbackMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		l.log.Warn(ctx, "feedback log corrupt, starting empty", "error", err)
		return nil, nil
	}
	return msgs, nil
}

// Clear removes every stored message.
func (l *Log) Clear(ctx context.Context) error {
	return l.store.Delete(ctx, storage.KeyFeedback)
}
