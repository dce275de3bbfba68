package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/diskmensagem/backend/internal/domain/billing"
	"github.com/diskmensagem/backend/internal/domain/ordering"
	"github.com/diskmensagem/backend/internal/domain/settings"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/diskmensagem/backend/internal/infrastructure/payment"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService coordinates PIX charge generation and settlement
type PaymentService struct {
	orderRepo    ordering.OrderRepository
	paymentRepo  billing.PaymentRepository
	settingsRepo settings.Repository
	providers    *payment.Selector
	logger       *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	orderRepo ordering.OrderRepository,
	paymentRepo billing.PaymentRepository,
	settingsRepo settings.Repository,
	providers *payment.Selector,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		settingsRepo: settingsRepo,
		providers:    providers,
		logger:       logger,
	}
}

// Generate mints the payment material for an order. Repeated calls for
// the same order return the record created first; two concurrent calls
// both return the winner of the insert race.
func (s *PaymentService) Generate(ctx context.Context, orderID uuid.UUID) (*PaymentResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsCanceled() {
		return nil, shared.ErrInvalidState
	}

	if existing, err := s.paymentRepo.FindByOrderID(ctx, orderID); err == nil {
		response := ToPaymentResponse(existing)
		return &response, nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	snap := current.Snapshot()

	referenceCode := billing.ReferenceCodeForOrder(orderID)
	provider := s.providers.For(snap)
	charge, err := provider.CreateCharge(ctx, payment.ChargeRequest{
		OrderID:       orderID,
		ReferenceCode: referenceCode,
		AmountCents:   order.AmountCents,
		Description:   fmt.Sprintf("Mensagem para %s", order.RecipientName),
		Settings:      snap,
	})
	if err != nil {
		s.logger.Error("PIX charge creation failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return nil, err
	}

	record, err := billing.NewPaymentRecord(
		orderID,
		referenceCode,
		charge.Provider,
		charge.Payload,
		charge.QRDataURL,
		charge.TicketURL,
		order.AmountCents,
	)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, record); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			winner, findErr := s.paymentRepo.FindByOrderID(ctx, orderID)
			if findErr != nil {
				return nil, findErr
			}
			response := ToPaymentResponse(winner)
			return &response, nil
		}
		return nil, err
	}

	s.logger.Info("Payment generated",
		zap.String("order_id", orderID.String()),
		zap.String("reference_code", referenceCode),
		zap.String("provider", string(charge.Provider)))

	response := ToPaymentResponse(record)
	return &response, nil
}

// GetByOrderID returns the payment material for an order
func (s *PaymentService) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*PaymentResponse, error) {
	record, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(record)
	return &response, nil
}

// ConfirmByReference settles the payment identified by its reference
// code and marks the order paid. Canceled orders keep their status; the
// settlement is still recorded so staff can sort out the refund.
func (s *PaymentService) ConfirmByReference(ctx context.Context, referenceCode string) error {
	record, err := s.paymentRepo.FindByReferenceCode(ctx, referenceCode)
	if err != nil {
		return err
	}

	record.Confirm()
	if err := s.paymentRepo.Save(ctx, record); err != nil {
		return err
	}

	order, err := s.orderRepo.FindByID(ctx, record.OrderID)
	if err != nil {
		return err
	}
	if !order.IsCanceled() {
		if err := order.SetStatus(ordering.OrderStatusPaid); err != nil {
			return err
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}
	}

	s.logger.Info("Payment confirmed",
		zap.String("reference_code", referenceCode),
		zap.String("order_id", record.OrderID.String()))
	return nil
}

// FailByReference records a PSP rejection for the payment
func (s *PaymentService) FailByReference(ctx context.Context, referenceCode string) error {
	record, err := s.paymentRepo.FindByReferenceCode(ctx, referenceCode)
	if err != nil {
		return err
	}

	record.Fail()
	if err := s.paymentRepo.Save(ctx, record); err != nil {
		return err
	}

	s.logger.Warn("Payment failed",
		zap.String("reference_code", referenceCode),
		zap.String("order_id", record.OrderID.String()))
	return nil
}
