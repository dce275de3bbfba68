package catalog

import (
	"strings"

	"github.com/diskmensagem/backend/internal/domain/shared"
)

// Category groups message templates in the public storefront.
// Inactive categories stay referenced by historical messages but are
// hidden from new-order pickers.
type Category struct {
	shared.BaseEntity
	Name   string `gorm:"type:varchar(100);not null"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new active category
func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Active:     true,
	}, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	c.Name = name
	c.Touch()
	return nil
}

// Activate makes the category visible to new-order pickers
func (c *Category) Activate() {
	c.Active = true
	c.Touch()
}

// Deactivate hides the category from new-order pickers.
// Existing messages keep their reference.
func (c *Category) Deactivate() {
	c.Active = false
	c.Touch()
}
