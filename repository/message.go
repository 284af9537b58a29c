package repository

import (
	"context"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/model"
)

// Message is the append-only conversation history sink
type Message interface {
	Insert(ctx context.Context, message model.Message) error
	ListByPhone(ctx context.Context, phone string, limit int) ([]model.Message, error)
}

type messageImpl struct {
}

// NewMessage ...
func NewMessage() Message {
	return &messageImpl{}
}

// Insert ...
func (m *messageImpl) Insert(ctx context.Context, message model.Message) error {
	query := `
INSERT INTO message (lead_phone, role, content, tags)
VALUES (:lead_phone, :role, :content, :tags)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, message)
	return err
}

// ListByPhone ...
func (m *messageImpl) ListByPhone(ctx context.Context, phone string, limit int) ([]model.Message, error) {
	query := `
SELECT id, lead_phone, role, content, tags, created_at
FROM message
WHERE lead_phone = ?
ORDER BY id DESC
LIMIT ?
`
	var result []model.Message
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, phone, limit)
	return result, err
}
