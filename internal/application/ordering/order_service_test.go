package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/diskmensagem/backend/internal/domain/catalog"
	"github.com/diskmensagem/backend/internal/domain/ordering"
	"github.com/diskmensagem/backend/internal/domain/settings"
	"github.com/diskmensagem/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockOrderRepository is a mock implementation of ordering.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByDeliveryDate(ctx context.Context, date time.Time) ([]ordering.Order, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessageRepository is a mock implementation of catalog.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Message), args.Error(1)
}

func (m *MockMessageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Message, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Message), args.Error(1)
}

func (m *MockMessageRepository) Query(ctx context.Context, q catalog.MessageQuery) ([]catalog.Message, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]catalog.Message), args.Error(1)
}

func (m *MockMessageRepository) Save(ctx context.Context, message *catalog.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettingsRepository is a mock implementation of settings.Repository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// =============================================================================
// Tests
// =============================================================================

func futureDate() string {
	return time.Now().AddDate(0, 1, 0).Format(ordering.DateLayout)
}

func validCreateRequest() CreateOrderRequest {
	return CreateOrderRequest{
		RecipientName: "Maria",
		SenderName:    "João",
		Address:       "Rua A, 10",
		DeliveryDate:  futureDate(),
		DeliveryTime:  "09:00",
	}
}

func newServiceWithMocks() (*OrderService, *MockOrderRepository, *MockMessageRepository, *MockSettingsRepository) {
	orderRepo := new(MockOrderRepository)
	messageRepo := new(MockMessageRepository)
	settingsRepo := new(MockSettingsRepository)
	return NewOrderService(orderRepo, messageRepo, settingsRepo), orderRepo, messageRepo, settingsRepo
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending order priced from settings", func(t *testing.T) {
		service, orderRepo, _, settingsRepo := newServiceWithMocks()

		current := settings.NewDefaultSettings()
		current.BasePriceCents = 8500
		settingsRepo.On("Get", ctx).Return(current, nil)
		orderRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)

		response, err := service.Create(ctx, validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, "pending", response.Status)
		assert.Equal(t, int64(8500), response.AmountCents)
		assert.Equal(t, "Maria", response.RecipientName)
		orderRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown message reference", func(t *testing.T) {
		service, _, messageRepo, _ := newServiceWithMocks()

		messageID := uuid.New()
		messageRepo.On("FindByID", ctx, messageID).Return(nil, shared.ErrNotFound)

		req := validCreateRequest()
		req.MessageID = &messageID
		response, err := service.Create(ctx, req)

		assert.Nil(t, response)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_MESSAGE", domainErr.Code)
	})

	t.Run("rejects inactive message reference", func(t *testing.T) {
		service, _, messageRepo, _ := newServiceWithMocks()

		message, err := catalog.NewMessage(uuid.New(), "Parabéns", "Texto")
		require.NoError(t, err)
		message.Deactivate()
		messageRepo.On("FindByID", ctx, message.ID).Return(message, nil)

		req := validCreateRequest()
		req.MessageID = &message.ID
		response, createErr := service.Create(ctx, req)

		assert.Nil(t, response)
		require.Error(t, createErr)
	})

	t.Run("accepts active message reference", func(t *testing.T) {
		service, orderRepo, messageRepo, settingsRepo := newServiceWithMocks()

		message, err := catalog.NewMessage(uuid.New(), "Parabéns", "Texto")
		require.NoError(t, err)
		messageRepo.On("FindByID", ctx, message.ID).Return(message, nil)
		settingsRepo.On("Get", ctx).Return(settings.NewDefaultSettings(), nil)
		orderRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)

		req := validCreateRequest()
		req.MessageID = &message.ID
		response, createErr := service.Create(ctx, req)

		require.NoError(t, createErr)
		require.NotNil(t, response.MessageID)
		assert.Equal(t, message.ID, *response.MessageID)
	})

	t.Run("rejects past delivery date", func(t *testing.T) {
		service, _, _, settingsRepo := newServiceWithMocks()
		settingsRepo.On("Get", ctx).Return(settings.NewDefaultSettings(), nil)

		req := validCreateRequest()
		req.DeliveryDate = "2020-01-01"
		response, err := service.Create(ctx, req)

		assert.Nil(t, response)
		assert.Error(t, err)
	})
}

func TestOrderService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the order", func(t *testing.T) {
		service, orderRepo, _, _ := newServiceWithMocks()

		order, err := ordering.NewOrder(ordering.NewOrderInput{
			RecipientName: "Maria",
			SenderName:    "João",
			Address:       "Rua A, 10",
			DeliveryDate:  futureDate(),
			DeliveryTime:  "09:00",
			AmountCents:   7000,
		}, time.Now())
		require.NoError(t, err)
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		response, getErr := service.GetByID(ctx, order.ID)

		require.NoError(t, getErr)
		assert.Equal(t, order.ID, response.ID)
	})

	t.Run("propagates ErrNotFound", func(t *testing.T) {
		service, orderRepo, _, _ := newServiceWithMocks()
		orderRepo.On("FindByID", ctx, mock.Anything).Return(nil, shared.ErrNotFound)

		response, err := service.GetByID(ctx, uuid.New())

		assert.Nil(t, response)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults and status filter", func(t *testing.T) {
		service, orderRepo, _, _ := newServiceWithMocks()

		orderRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 1 && f.PageSize == 20 && f.Filters["status"] == "paid"
		})).Return([]ordering.Order{}, nil)
		orderRepo.On("Count", ctx, mock.Anything).Return(int64(0), nil)

		result, err := service.List(ctx, OrderListFilter{Status: "paid"})

		require.NoError(t, err)
		assert.Empty(t, result.Items)
		orderRepo.AssertExpectations(t)
	})

	t.Run("rejects malformed date bounds", func(t *testing.T) {
		service, _, _, _ := newServiceWithMocks()

		result, err := service.List(ctx, OrderListFilter{CreatedFrom: "25/12/2025"})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestOrderService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("relabels and saves", func(t *testing.T) {
		service, orderRepo, _, _ := newServiceWithMocks()

		order, err := ordering.NewOrder(ordering.NewOrderInput{
			RecipientName: "Maria",
			SenderName:    "João",
			Address:       "Rua A, 10",
			DeliveryDate:  futureDate(),
			DeliveryTime:  "09:00",
			AmountCents:   7000,
		}, time.Now())
		require.NoError(t, err)
		orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		orderRepo.On("Save", ctx, order).Return(nil)

		response, setErr := service.SetStatus(ctx, order.ID, UpdateOrderStatusRequest{Status: "done"})

		require.NoError(t, setErr)
		assert.Equal(t, "done", response.Status)
		orderRepo.AssertExpectations(t)
	})

	t.Run("returns ErrNotFound for unknown order", func(t *testing.T) {
		service, orderRepo, _, _ := newServiceWithMocks()
		orderRepo.On("FindByID", ctx, mock.Anything).Return(nil, shared.ErrNotFound)

		response, err := service.SetStatus(ctx, uuid.New(), UpdateOrderStatusRequest{Status: "paid"})

		assert.Nil(t, response)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
