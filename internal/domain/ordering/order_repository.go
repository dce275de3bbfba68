package ordering

import (
	"context"
	"time"

	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindAll returns orders sorted by created_at descending unless the
	// filter says otherwise. Supported filter keys: "status" (exact match),
	// "created_from"/"created_to" (time.Time bounds on created_at). Search
	// matches recipient name, address and custom text.
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	// FindByDeliveryDate returns every order for the given calendar date,
	// canceled ones included, sorted by delivery_time then created_at.
	FindByDeliveryDate(ctx context.Context, date time.Time) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
