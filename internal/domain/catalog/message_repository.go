package catalog

import (
	"context"

	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MessageQuery narrows public message listings
type MessageQuery struct {
	CategoryID *uuid.UUID
	Search     string
	ActiveOnly bool
}

// MessageRepository defines persistence operations for messages
type MessageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Message, error)
	Query(ctx context.Context, q MessageQuery) ([]Message, error)
	Save(ctx context.Context, message *Message) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
