package ordering

import (
	"strings"
	"time"

	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusScheduled OrderStatus = "scheduled"
	OrderStatusDone      OrderStatus = "done"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusScheduled, OrderStatusDone, OrderStatusCanceled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// DateLayout is the wire format for delivery dates
const DateLayout = "2006-01-02"

// Order is a customer request for a scheduled message delivery.
// Status transitions are deliberately unrestricted: staff may relabel an
// order to any valid status to correct operational mistakes. Orders are
// never deleted, only canceled.
type Order struct {
	shared.BaseEntity
	RecipientName   string      `gorm:"type:varchar(120);not null"`
	SenderName      string      `gorm:"type:varchar(120);not null"`
	Address         string      `gorm:"type:varchar(300);not null"`
	DeliveryDate    time.Time   `gorm:"type:date;not null;index"`
	DeliveryTime    string      `gorm:"type:varchar(40);not null"`
	MessageID       *uuid.UUID  `gorm:"type:uuid;index"`
	CustomText      string      `gorm:"type:text"`
	IntroMediaRef   string      `gorm:"type:varchar(200)"`
	ClosingMediaRef string      `gorm:"type:varchar(200)"`
	AmountCents     int64       `gorm:"not null"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrderInput carries the validated fields for order creation.
// AmountCents must come from the settings snapshot taken by the caller.
type NewOrderInput struct {
	RecipientName   string
	SenderName      string
	Address         string
	DeliveryDate    string
	DeliveryTime    string
	MessageID       *uuid.UUID
	CustomText      string
	IntroMediaRef   string
	ClosingMediaRef string
	AmountCents     int64
}

// NewOrder creates a pending order. The delivery date must be a valid
// calendar date not before today.
func NewOrder(in NewOrderInput, now time.Time) (*Order, error) {
	in.RecipientName = strings.TrimSpace(in.RecipientName)
	in.SenderName = strings.TrimSpace(in.SenderName)
	in.Address = strings.TrimSpace(in.Address)
	in.DeliveryTime = strings.TrimSpace(in.DeliveryTime)

	if in.RecipientName == "" {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient name cannot be empty")
	}
	if in.SenderName == "" {
		return nil, shared.NewDomainError("INVALID_SENDER", "Sender name cannot be empty")
	}
	if in.Address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}
	if in.DeliveryTime == "" {
		return nil, shared.NewDomainError("INVALID_DELIVERY_TIME", "Delivery time cannot be empty")
	}
	if in.AmountCents < 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}

	deliveryDate, err := time.ParseInLocation(DateLayout, in.DeliveryDate, now.Location())
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DELIVERY_DATE", "Delivery date must be in YYYY-MM-DD format")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if deliveryDate.Before(today) {
		return nil, shared.NewDomainError("INVALID_DELIVERY_DATE", "Delivery date cannot be in the past")
	}

	return &Order{
		BaseEntity:      shared.NewBaseEntity(),
		RecipientName:   in.RecipientName,
		SenderName:      in.SenderName,
		Address:         in.Address,
		DeliveryDate:    deliveryDate,
		DeliveryTime:    in.DeliveryTime,
		MessageID:       in.MessageID,
		CustomText:      strings.TrimSpace(in.CustomText),
		IntroMediaRef:   strings.TrimSpace(in.IntroMediaRef),
		ClosingMediaRef: strings.TrimSpace(in.ClosingMediaRef),
		AmountCents:     in.AmountCents,
		Status:          OrderStatusPending,
	}, nil
}

// SetStatus relabels the order. Any valid status is reachable from any
// other; only unknown status values are rejected.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+status.String())
	}
	o.Status = status
	o.Touch()
	return nil
}

// IsCanceled reports whether the order was canceled
func (o *Order) IsCanceled() bool {
	return o.Status == OrderStatusCanceled
}

// DeliveryDateString returns the delivery date in wire format
func (o *Order) DeliveryDateString() string {
	return o.DeliveryDate.Format(DateLayout)
}
