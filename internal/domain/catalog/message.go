package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SnippetLength is the number of characters of the body exposed in
// public listings.
const SnippetLength = 160

// Message is a template text customers can attach to an order.
// The category reference is checked at creation time only; deactivating
// or deleting the category does not cascade.
type Message struct {
	shared.BaseEntity
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:varchar(200);not null"`
	Body       string    `gorm:"type:text;not null"`
	Active     bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// NewMessage creates a new active message under a category
func NewMessage(categoryID uuid.UUID, title, body string) (*Message, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Message title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Message title cannot exceed 200 characters")
	}
	if body == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Message body cannot be empty")
	}

	return &Message{
		BaseEntity: shared.NewBaseEntity(),
		CategoryID: categoryID,
		Title:      title,
		Body:       body,
		Active:     true,
	}, nil
}

// Update replaces title and body
func (m *Message) Update(title, body string) error {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Message title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Message title cannot exceed 200 characters")
	}
	if body == "" {
		return shared.NewDomainError("INVALID_BODY", "Message body cannot be empty")
	}
	m.Title = title
	m.Body = body
	m.Touch()
	return nil
}

// Activate makes the message visible in public listings
func (m *Message) Activate() {
	m.Active = true
	m.Touch()
}

// Deactivate hides the message from public listings
func (m *Message) Deactivate() {
	m.Active = false
	m.Touch()
}

// Snippet returns the first SnippetLength characters of the body,
// with an ellipsis when truncated.
func (m *Message) Snippet() string {
	if utf8.RuneCountInString(m.Body) <= SnippetLength {
		return m.Body
	}
	runes := []rune(m.Body)
	return string(runes[:SnippetLength]) + "…"
}
