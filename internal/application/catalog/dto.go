package catalog

import (
	"time"

	"github.com/diskmensagem/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// =============================================================================
// Category DTOs
// =============================================================================

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Active *bool   `json:"active"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(category *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Active:    category.Active,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of categories to response DTOs
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// =============================================================================
// Message DTOs
// =============================================================================

// CreateMessageRequest represents a request to create a message
type CreateMessageRequest struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	Title      string    `json:"title" binding:"required,min=1,max=200"`
	Body       string    `json:"body" binding:"required,min=1"`
}

// UpdateMessageRequest represents a request to update a message
type UpdateMessageRequest struct {
	Title  *string `json:"title" binding:"omitempty,min=1,max=200"`
	Body   *string `json:"body" binding:"omitempty,min=1"`
	Active *bool   `json:"active"`
}

// MessageListFilter represents filter options for listing messages
type MessageListFilter struct {
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
	CategoryID *uuid.UUID `form:"category_id"`
	Search     string     `form:"search"`
}

// MessageResponse represents a message in admin API responses
type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PublicMessageResponse represents a message in the public storefront.
// Only a snippet of the body is exposed; the full text shows up on the
// delivered message, not the listing.
type PublicMessageResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Title      string    `json:"title"`
	Snippet    string    `json:"snippet"`
}

// ToMessageResponse converts a domain message to a response DTO
func ToMessageResponse(message *catalog.Message) MessageResponse {
	return MessageResponse{
		ID:         message.ID,
		CategoryID: message.CategoryID,
		Title:      message.Title,
		Body:       message.Body,
		Active:     message.Active,
		CreatedAt:  message.CreatedAt,
		UpdatedAt:  message.UpdatedAt,
	}
}

// ToMessageResponses converts a slice of messages to response DTOs
func ToMessageResponses(messages []catalog.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i := range messages {
		responses[i] = ToMessageResponse(&messages[i])
	}
	return responses
}

// ToPublicMessageResponses converts messages to public snippet DTOs
func ToPublicMessageResponses(messages []catalog.Message) []PublicMessageResponse {
	responses := make([]PublicMessageResponse, len(messages))
	for i := range messages {
		responses[i] = PublicMessageResponse{
			ID:         messages[i].ID,
			CategoryID: messages[i].CategoryID,
			Title:      messages[i].Title,
			Snippet:    messages[i].Snippet(),
		}
	}
	return responses
}

// =============================================================================
// Bulk import DTOs
// =============================================================================

// ImportRequest carries the raw catalog text to import
type ImportRequest struct {
	Text string `json:"text" binding:"required"`
}

// ImportResult summarizes a bulk import run
type ImportResult struct {
	CategoriesCreated int      `json:"categories_created"`
	MessagesCreated   int      `json:"messages_created"`
	Skipped           []string `json:"skipped,omitempty"`
}
