package ordering

import (
	"context"
	"errors"
	"time"

	"github.com/diskmensagem/backend/internal/domain/catalog"
	"github.com/diskmensagem/backend/internal/domain/ordering"
	"github.com/diskmensagem/backend/internal/domain/settings"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order lifecycle operations
type OrderService struct {
	orderRepo    ordering.OrderRepository
	messageRepo  catalog.MessageRepository
	settingsRepo settings.Repository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo ordering.OrderRepository, messageRepo catalog.MessageRepository, settingsRepo settings.Repository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		messageRepo:  messageRepo,
		settingsRepo: settingsRepo,
	}
}

// Create places a new pending order. The price is snapshotted from the
// current settings so later price changes never touch existing orders.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if req.MessageID != nil {
		message, err := s.messageRepo.FindByID(ctx, *req.MessageID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_MESSAGE", "Selected message does not exist")
			}
			return nil, err
		}
		if !message.Active {
			return nil, shared.NewDomainError("INVALID_MESSAGE", "Selected message is not available")
		}
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	order, err := ordering.NewOrder(ordering.NewOrderInput{
		RecipientName:   req.RecipientName,
		SenderName:      req.SenderName,
		Address:         req.Address,
		DeliveryDate:    req.DeliveryDate,
		DeliveryTime:    req.DeliveryTime,
		MessageID:       req.MessageID,
		CustomText:      req.CustomText,
		IntroMediaRef:   req.IntroMediaRef,
		ClosingMediaRef: req.ClosingMediaRef,
		AmountCents:     current.BasePriceCents,
	}, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination, newest first
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.CreatedFrom != "" {
		from, err := time.ParseInLocation(ordering.DateLayout, filter.CreatedFrom, time.Local)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "created_from must be in YYYY-MM-DD format")
		}
		domainFilter.Filters["created_from"] = from
	}
	if filter.CreatedTo != "" {
		to, err := time.ParseInLocation(ordering.DateLayout, filter.CreatedTo, time.Local)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "created_to must be in YYYY-MM-DD format")
		}
		// Inclusive upper bound covers the whole day
		domainFilter.Filters["created_to"] = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToOrderResponses(orders), total, filter.Page, filter.PageSize)
	return &result, nil
}

// SetStatus relabels an order to any valid status
func (s *OrderService) SetStatus(ctx context.Context, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.SetStatus(ordering.OrderStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}
