//go:build unit

package order_test

import (
	"testing"
	"time"

	"order-fulfillment/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Jordan Lee", "jordan@example.com", "+15551234567", "42 Harbour St, Springfield")
	require.NoError(t, err)
	return c
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("builds a valid order", func(t *testing.T) {
		id := uuid.New()

		o, err := order.NewOrder(id, "PROD-001", "Laptop Pro 15", 2, validCustomer(t), now)
		require.NoError(t, err)

		assert.Equal(t, id, o.ID())
		assert.Equal(t, "PROD-001", o.SkuCode().String())
		assert.Equal(t, "Laptop Pro 15", o.ProductName())
		assert.Equal(t, 2, o.Quantity().Value())
		assert.Equal(t, now, o.OrderDate())
	})

	t.Run("assigns an id when none is given", func(t *testing.T) {
		o, err := order.NewOrder(uuid.Nil, "PROD-001", "Laptop Pro 15", 1, validCustomer(t), now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, o.ID())
	})

	t.Run("trims the sku code", func(t *testing.T) {
		o, err := order.NewOrder(uuid.New(), "  PROD-001  ", "Laptop Pro 15", 1, validCustomer(t), now)
		require.NoError(t, err)
		assert.Equal(t, "PROD-001", o.SkuCode().String())
	})

	tests := []struct {
		name     string
		skuCode  string
		quantity int
		wantErr  error
	}{
		{"blank sku code", "   ", 1, order.ErrEmptySkuCode},
		{"zero quantity", "PROD-001", 0, order.ErrInvalidQuantity},
		{"negative quantity", "PROD-001", -3, order.ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewOrder(uuid.New(), tt.skuCode, "Laptop Pro 15", tt.quantity, validCustomer(t), now)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCustomer(t *testing.T) {
	tests := []struct {
		name    string
		cname   string
		email   string
		phone   string
		address string
		wantErr error
	}{
		{"blank name", "  ", "jordan@example.com", "+15551234567", "42 Harbour St", order.ErrEmptyCustomerName},
		{"blank email", "Jordan Lee", "", "+15551234567", "42 Harbour St", order.ErrInvalidCustomerEmail},
		{"email without at sign", "Jordan Lee", "jordan.example.com", "+15551234567", "42 Harbour St", order.ErrInvalidCustomerEmail},
		{"blank phone", "Jordan Lee", "jordan@example.com", "  ", "42 Harbour St", order.ErrEmptyCustomerPhone},
		{"blank address", "Jordan Lee", "jordan@example.com", "+15551234567", "", order.ErrEmptyShippingAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewCustomer(tt.cname, tt.email, tt.phone, tt.address)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("trims every field", func(t *testing.T) {
		c, err := order.NewCustomer(" Jordan Lee ", " jordan@example.com ", " +15551234567 ", " 42 Harbour St ")
		require.NoError(t, err)
		assert.Equal(t, "Jordan Lee", c.Name())
		assert.Equal(t, "jordan@example.com", c.Email())
		assert.Equal(t, "+15551234567", c.Phone())
		assert.Equal(t, "42 Harbour St", c.ShippingAddress())
	})
}

func TestNewCreatedEvent(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	o, err := order.NewOrder(id, "PROD-001", "Laptop Pro 15", 2, validCustomer(t), now)
	require.NoError(t, err)

	evt := order.NewCreatedEvent(o)
	assert.Equal(t, id.String(), evt.OrderID)
	assert.Equal(t, "PROD-001", evt.SkuCode)
	assert.Equal(t, "Laptop Pro 15", evt.ProductName)
	assert.Equal(t, 2, evt.Quantity)
	assert.Equal(t, "Jordan Lee", evt.CustomerName)
	assert.Equal(t, "+15551234567", evt.CustomerPhone)
	assert.Equal(t, "42 Harbour St, Springfield", evt.ShippingAddress)
	assert.Equal(t, now, evt.OrderDate)
}
