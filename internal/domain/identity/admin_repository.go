package identity

import (
	"context"

	"github.com/google/uuid"
)

// AdminRepository defines persistence operations for admin accounts
type AdminRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	Save(ctx context.Context, admin *Admin) error
	Count(ctx context.Context) (int64, error)
}
