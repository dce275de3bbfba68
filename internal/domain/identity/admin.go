package identity

import (
	"strings"

	"github.com/diskmensagem/backend/internal/domain/shared"
)

// Admin is a staff account for the management console. There are no
// customer accounts; public orders are anonymous and keyed by order id.
type Admin struct {
	shared.BaseEntity
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Admin) TableName() string {
	return "admins"
}

// NewAdmin creates an admin account with an already-hashed password
func NewAdmin(email, passwordHash string) (*Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid email address is required")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}

	return &Admin{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

// ChangePassword replaces the stored password hash
func (a *Admin) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	a.PasswordHash = passwordHash
	a.Touch()
	return nil
}
