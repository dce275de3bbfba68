package ordering

import (
	"time"

	"github.com/diskmensagem/backend/internal/domain/ordering"
	"github.com/google/uuid"
)

// CreateOrderRequest represents a public request to place an order
type CreateOrderRequest struct {
	RecipientName   string     `json:"recipient_name" binding:"required,min=1,max=120"`
	SenderName      string     `json:"sender_name" binding:"required,min=1,max=120"`
	Address         string     `json:"address" binding:"required,min=1,max=300"`
	DeliveryDate    string     `json:"delivery_date" binding:"required,datestr"`
	DeliveryTime    string     `json:"delivery_time" binding:"required,min=1,max=40"`
	MessageID       *uuid.UUID `json:"message_id"`
	CustomText      string     `json:"custom_text" binding:"max=4000"`
	IntroMediaRef   string     `json:"intro_media_ref" binding:"max=200"`
	ClosingMediaRef string     `json:"closing_media_ref" binding:"max=200"`
}

// UpdateOrderStatusRequest relabels an order
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid scheduled done canceled"`
}

// OrderListFilter represents filter options for listing orders
type OrderListFilter struct {
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
	Status      string `form:"status" binding:"omitempty,oneof=pending paid scheduled done canceled"`
	Search      string `form:"search"`
	CreatedFrom string `form:"created_from"`
	CreatedTo   string `form:"created_to"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID  `json:"id"`
	RecipientName   string     `json:"recipient_name"`
	SenderName      string     `json:"sender_name"`
	Address         string     `json:"address"`
	DeliveryDate    string     `json:"delivery_date"`
	DeliveryTime    string     `json:"delivery_time"`
	MessageID       *uuid.UUID `json:"message_id,omitempty"`
	CustomText      string     `json:"custom_text,omitempty"`
	IntroMediaRef   string     `json:"intro_media_ref,omitempty"`
	ClosingMediaRef string     `json:"closing_media_ref,omitempty"`
	AmountCents     int64      `json:"amount_cents"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(order *ordering.Order) OrderResponse {
	return OrderResponse{
		ID:              order.ID,
		RecipientName:   order.RecipientName,
		SenderName:      order.SenderName,
		Address:         order.Address,
		DeliveryDate:    order.DeliveryDateString(),
		DeliveryTime:    order.DeliveryTime,
		MessageID:       order.MessageID,
		CustomText:      order.CustomText,
		IntroMediaRef:   order.IntroMediaRef,
		ClosingMediaRef: order.ClosingMediaRef,
		AmountCents:     order.AmountCents,
		Status:          order.Status.String(),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders to response DTOs
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
