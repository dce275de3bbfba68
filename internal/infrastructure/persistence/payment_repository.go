package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/diskmensagem/backend/internal/domain/billing"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentRepository implements billing.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment record by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.PaymentRecord, error) {
	var record billing.PaymentRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByOrderID finds the payment record for an order
func (r *GormPaymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*billing.PaymentRecord, error) {
	var record billing.PaymentRecord
	if err := r.db.WithContext(ctx).First(&record, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByReferenceCode finds a payment record by its reference code
func (r *GormPaymentRepository) FindByReferenceCode(ctx context.Context, referenceCode string) (*billing.PaymentRecord, error) {
	var record billing.PaymentRecord
	if err := r.db.WithContext(ctx).First(&record, "reference_code = ?", referenceCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create inserts the record. The unique index on order_id turns a
// concurrent duplicate into shared.ErrAlreadyExists so the caller can
// load the winner's record.
func (r *GormPaymentRepository) Create(ctx context.Context, record *billing.PaymentRecord) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil && isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// Save updates an existing payment record
func (r *GormPaymentRepository) Save(ctx context.Context, record *billing.PaymentRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// isUniqueViolation detects unique-constraint errors from both the
// postgres and sqlite drivers.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)
