package billing

import (
	"context"

	"github.com/google/uuid"
)

// PaymentRepository defines persistence operations for payment records
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentRecord, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*PaymentRecord, error)
	FindByReferenceCode(ctx context.Context, referenceCode string) (*PaymentRecord, error)
	// Create inserts the record. It returns shared.ErrAlreadyExists when a
	// record for the same order was inserted concurrently; callers must
	// then load and return the winner's record.
	Create(ctx context.Context, record *PaymentRecord) error
	Save(ctx context.Context, record *PaymentRecord) error
}
