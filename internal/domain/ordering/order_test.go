package ordering

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() NewOrderInput {
	return NewOrderInput{
		RecipientName: "Maria",
		SenderName:    "João",
		Address:       "Rua A, 10",
		DeliveryDate:  "2025-12-25",
		DeliveryTime:  "09:00",
		AmountCents:   7000,
	}
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	t.Run("creates pending order with valid inputs", func(t *testing.T) {
		order, err := NewOrder(validInput(), now)
		require.NoError(t, err)
		require.NotNil(t, order)

		assert.Equal(t, "Maria", order.RecipientName)
		assert.Equal(t, "João", order.SenderName)
		assert.Equal(t, "Rua A, 10", order.Address)
		assert.Equal(t, "2025-12-25", order.DeliveryDateString())
		assert.Equal(t, "09:00", order.DeliveryTime)
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Equal(t, int64(7000), order.AmountCents)
		assert.NotEqual(t, uuid.Nil, order.ID)
	})

	t.Run("trims whitespace from fields", func(t *testing.T) {
		in := validInput()
		in.RecipientName = "  Maria  "
		in.Address = " Rua A, 10 "
		order, err := NewOrder(in, now)
		require.NoError(t, err)
		assert.Equal(t, "Maria", order.RecipientName)
		assert.Equal(t, "Rua A, 10", order.Address)
	})

	t.Run("allows delivery today", func(t *testing.T) {
		in := validInput()
		in.DeliveryDate = "2025-12-01"
		_, err := NewOrder(in, now)
		require.NoError(t, err)
	})

	t.Run("rejects delivery date in the past", func(t *testing.T) {
		in := validInput()
		in.DeliveryDate = "2025-11-30"
		_, err := NewOrder(in, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "past")
	})

	t.Run("rejects malformed delivery date", func(t *testing.T) {
		in := validInput()
		in.DeliveryDate = "25/12/2025"
		_, err := NewOrder(in, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	})

	t.Run("rejects empty required fields", func(t *testing.T) {
		for name, mutate := range map[string]func(*NewOrderInput){
			"recipient": func(in *NewOrderInput) { in.RecipientName = "" },
			"sender":    func(in *NewOrderInput) { in.SenderName = " " },
			"address":   func(in *NewOrderInput) { in.Address = "" },
			"time":      func(in *NewOrderInput) { in.DeliveryTime = "" },
		} {
			t.Run(name, func(t *testing.T) {
				in := validInput()
				mutate(&in)
				_, err := NewOrder(in, now)
				require.Error(t, err)
			})
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		in := validInput()
		in.AmountCents = -1
		_, err := NewOrder(in, now)
		require.Error(t, err)
	})

	t.Run("keeps optional message reference", func(t *testing.T) {
		id := uuid.New()
		in := validInput()
		in.MessageID = &id
		order, err := NewOrder(in, now)
		require.NoError(t, err)
		require.NotNil(t, order.MessageID)
		assert.Equal(t, id, *order.MessageID)
	})
}

func TestOrderSetStatus(t *testing.T) {
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	t.Run("any valid status is reachable from any other", func(t *testing.T) {
		statuses := []OrderStatus{
			OrderStatusPending, OrderStatusPaid, OrderStatusScheduled,
			OrderStatusDone, OrderStatusCanceled,
		}
		for _, from := range statuses {
			for _, to := range statuses {
				order, err := NewOrder(validInput(), now)
				require.NoError(t, err)
				require.NoError(t, order.SetStatus(from))
				require.NoError(t, order.SetStatus(to))
				assert.Equal(t, to, order.Status)
			}
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		order, err := NewOrder(validInput(), now)
		require.NoError(t, err)
		err = order.SetStatus("shipped")
		require.Error(t, err)
		assert.Equal(t, OrderStatusPending, order.Status)
	})
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusCanceled.IsValid())
	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("PENDING").IsValid())
}
