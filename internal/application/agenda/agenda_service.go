package agenda

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diskmensagem/backend/internal/domain/catalog"
	"github.com/diskmensagem/backend/internal/domain/ordering"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/diskmensagem/backend/internal/infrastructure/printing"
	"go.uber.org/zap"
)

// AgendaService builds the daily delivery run sheet
type AgendaService struct {
	orderRepo   ordering.OrderRepository
	messageRepo catalog.MessageRepository
	renderer    printing.PDFRenderer
	logger      *zap.Logger
}

// NewAgendaService creates a new AgendaService. The renderer may be nil
// when PDF output is disabled.
func NewAgendaService(orderRepo ordering.OrderRepository, messageRepo catalog.MessageRepository, renderer printing.PDFRenderer, logger *zap.Logger) *AgendaService {
	return &AgendaService{
		orderRepo:   orderRepo,
		messageRepo: messageRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// Build assembles the run sheet for one calendar date. Canceled orders
// stay on the sheet, flagged, so drivers see freed slots.
func (s *AgendaService) Build(ctx context.Context, date string) (*AgendaResponse, error) {
	day, err := time.ParseInLocation(ordering.DateLayout, date, time.Local)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Agenda date must be in YYYY-MM-DD format")
	}

	orders, err := s.orderRepo.FindByDeliveryDate(ctx, day)
	if err != nil {
		return nil, err
	}

	rows := make([]AgendaRow, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		row := AgendaRow{
			OrderID:       order.ID,
			DeliveryTime:  order.DeliveryTime,
			RecipientName: order.RecipientName,
			SenderName:    order.SenderName,
			Address:       order.Address,
			CustomText:    order.CustomText,
			AmountCents:   order.AmountCents,
			Status:        order.Status.String(),
			Canceled:      order.IsCanceled(),
		}
		if order.MessageID != nil {
			message, err := s.messageRepo.FindByID(ctx, *order.MessageID)
			if err == nil {
				row.MessageTitle = message.Title
			} else if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
		}
		rows = append(rows, row)
	}

	return &AgendaResponse{Date: day.Format(ordering.DateLayout), Rows: rows}, nil
}

// RenderPDF builds the run sheet and renders it as a printable PDF
func (s *AgendaService) RenderPDF(ctx context.Context, date string) ([]byte, error) {
	if s.renderer == nil {
		return nil, shared.NewDomainError("PRINTING_DISABLED", "PDF rendering is not enabled")
	}

	response, err := s.Build(ctx, date)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	if err := agendaTemplate.Execute(&html, newAgendaPage(response)); err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html.String(),
		Title: fmt.Sprintf("Agenda %s", response.Date),
	})
	if err != nil {
		s.logger.Error("Agenda PDF rendering failed",
			zap.String("date", response.Date),
			zap.Error(err))
		return nil, err
	}

	return result.PDFData, nil
}
