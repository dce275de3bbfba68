package agenda

import (
	"github.com/google/uuid"
)

// AgendaRow is one delivery slot on the daily run sheet
type AgendaRow struct {
	OrderID       uuid.UUID `json:"order_id"`
	DeliveryTime  string    `json:"delivery_time"`
	RecipientName string    `json:"recipient_name"`
	SenderName    string    `json:"sender_name"`
	Address       string    `json:"address"`
	MessageTitle  string    `json:"message_title,omitempty"`
	CustomText    string    `json:"custom_text,omitempty"`
	AmountCents   int64     `json:"amount_cents"`
	Status        string    `json:"status"`
	Canceled      bool      `json:"canceled"`
}

// AgendaResponse is the full run sheet for one calendar date
type AgendaResponse struct {
	Date string      `json:"date"`
	Rows []AgendaRow `json:"rows"`
}
