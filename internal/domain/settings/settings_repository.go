package settings

import "context"

// Repository defines persistence operations for the settings singleton
type Repository interface {
	// Get returns the settings row, creating it with defaults when absent
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
