//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"order-fulfillment/internal/domain/order"
	reqdto "order-fulfillment/internal/handler/dto/request"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/memory"
	"order-fulfillment/internal/pkg/clock"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductGateway struct {
	mock.Mock
}

func (m *MockProductGateway) GetBySku(ctx context.Context, skuCode string) (*commands.ProductSnapshot, error) {
	args := m.Called(ctx, skuCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.ProductSnapshot), args.Error(1)
}

func (m *MockProductGateway) Exists(ctx context.Context, skuCode string) (bool, error) {
	args := m.Called(ctx, skuCode)
	return args.Bool(0), args.Error(1)
}

type MockInventoryGateway struct {
	mock.Mock
}

func (m *MockInventoryGateway) Reserve(ctx context.Context, skuCode string, quantity int) (int, error) {
	args := m.Called(ctx, skuCode, quantity)
	return args.Int(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, evt order.CreatedEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

var testTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func validRequest() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		SkuCode:         "PROD-001",
		Quantity:        10,
		CustomerName:    "Jordan Lee",
		CustomerEmail:   "jordan@example.com",
		CustomerPhone:   "+15551234567",
		ShippingAddress: "42 Harbour St, Springfield",
	}
}

func laptopSnapshot() *commands.ProductSnapshot {
	return &commands.ProductSnapshot{
		SkuCode:     "PROD-001",
		ProductName: "Laptop Pro 15",
		Category:    "electronics",
		Price:       decimal.NewFromInt(1499),
		Vendor:      "Acme",
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("full saga succeeds and publishes the enriched event", func(t *testing.T) {
		products := new(MockProductGateway)
		inventory := new(MockInventoryGateway)
		orders := new(MockOrderRepository)
		events := new(MockEventPublisher)

		products.On("GetBySku", ctx, "PROD-001").Return(laptopSnapshot(), nil)
		inventory.On("Reserve", ctx, "PROD-001", 10).Return(90, nil)
		orders.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(uuid.New(), nil)
		events.On("PublishOrderCreated", ctx, mock.AnythingOfType("order.CreatedEvent")).Return(nil)

		uc := commands.NewOrderCommands(products, inventory, orders, events, clock.NewMockClock(testTime))

		result, err := uc.CreateOrder(ctx, validRequest())
		require.NoError(t, err)
		require.NotNil(t, result)

		// The requested quantity is persisted, not the remaining stock the
		// reservation reported back.
		assert.Equal(t, 10, result.Quantity)
		assert.Equal(t, "Laptop Pro 15", result.ProductName)
		assert.Equal(t, testTime, result.OrderDate)
		assert.NotEqual(t, uuid.Nil, result.ID)

		saved := orders.Calls[0].Arguments.Get(1).(*order.Order)
		assert.Equal(t, 10, saved.Quantity().Value())
		assert.Equal(t, "Laptop Pro 15", saved.ProductName())

		published := events.Calls[0].Arguments.Get(1).(order.CreatedEvent)
		assert.Equal(t, "Laptop Pro 15", published.ProductName)
		assert.Equal(t, 10, published.Quantity)

		products.AssertExpectations(t)
		inventory.AssertExpectations(t)
		orders.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("unknown product aborts before any side effect", func(t *testing.T) {
		products := new(MockProductGateway)
		inventory := new(MockInventoryGateway)
		orders := new(MockOrderRepository)
		events := new(MockEventPublisher)

		products.On("GetBySku", ctx, "PROD-001").Return(nil, errs.ErrProductNotFound)

		uc := commands.NewOrderCommands(products, inventory, orders, events, clock.NewMockClock(testTime))

		_, err := uc.CreateOrder(ctx, validRequest())
		require.ErrorIs(t, err, errs.ErrProductNotFound)

		inventory.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
		orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		events.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
	})

	t.Run("insufficient stock aborts before persistence and publish", func(t *testing.T) {
		products := new(MockProductGateway)
		inventory := new(MockInventoryGateway)
		orders := new(MockOrderRepository)
		events := new(MockEventPublisher)

		products.On("GetBySku", ctx, "PROD-003").Return(&commands.ProductSnapshot{
			SkuCode:     "PROD-003",
			ProductName: "Desk Lamp",
			Price:       decimal.NewFromInt(30),
		}, nil)
		inventory.On("Reserve", ctx, "PROD-003", 10).Return(0, errs.ErrInsufficientStock)

		uc := commands.NewOrderCommands(products, inventory, orders, events, clock.NewMockClock(testTime))

		req := validRequest()
		req.SkuCode = "PROD-003"

		_, err := uc.CreateOrder(ctx, req)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		events.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
	})

	t.Run("persistence failure is store-unavailable and suppresses the event", func(t *testing.T) {
		products := new(MockProductGateway)
		inventory := new(MockInventoryGateway)
		orders := new(MockOrderRepository)
		events := new(MockEventPublisher)

		products.On("GetBySku", ctx, "PROD-001").Return(laptopSnapshot(), nil)
		inventory.On("Reserve", ctx, "PROD-001", 10).Return(90, nil)
		orders.On("Save", ctx, mock.AnythingOfType("*order.Order")).
			Return(uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "insert failed", nil))

		uc := commands.NewOrderCommands(products, inventory, orders, events, clock.NewMockClock(testTime))

		_, err := uc.CreateOrder(ctx, validRequest())
		require.ErrorIs(t, err, errs.ErrStoreUnavailable)

		// The reservation has already been committed by this point; there is
		// no compensation, only the terminal error.
		inventory.AssertExpectations(t)
		events.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail the order", func(t *testing.T) {
		products := new(MockProductGateway)
		inventory := new(MockInventoryGateway)
		orders := new(MockOrderRepository)
		events := new(MockEventPublisher)

		products.On("GetBySku", ctx, "PROD-001").Return(laptopSnapshot(), nil)
		inventory.On("Reserve", ctx, "PROD-001", 10).Return(90, nil)
		orders.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(uuid.New(), nil)
		events.On("PublishOrderCreated", ctx, mock.AnythingOfType("order.CreatedEvent")).
			Return(errs.New("broker unreachable"))

		uc := commands.NewOrderCommands(products, inventory, orders, events, clock.NewMockClock(testTime))

		result, err := uc.CreateOrder(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, "Laptop Pro 15", result.ProductName)
	})

	t.Run("invalid customer contact is a bad request and reserves nothing", func(t *testing.T) {
		products := new(MockProductGateway)
		inventory := new(MockInventoryGateway)
		orders := new(MockOrderRepository)
		events := new(MockEventPublisher)

		products.On("GetBySku", ctx, "PROD-001").Return(laptopSnapshot(), nil)

		uc := commands.NewOrderCommands(products, inventory, orders, events, clock.NewMockClock(testTime))

		req := validRequest()
		req.CustomerEmail = "not-an-email"

		_, err := uc.CreateOrder(ctx, req)
		require.ErrorIs(t, err, errs.ErrBadRequest)

		// A request that fails validation must not decrement stock.
		inventory.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
		orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

// End to end through the real engine: the orchestrator drives a local
// reservation engine and memory stores, mimicking the single-process wiring.
func TestCreateOrderWithRealEngine(t *testing.T) {
	ctx := context.Background()

	store := memory.NewInventoryStore()
	store.Seed("PROD-001", 100)
	engine := commands.NewInventoryCommands(store)

	products := new(MockProductGateway)
	products.On("GetBySku", ctx, "PROD-001").Return(laptopSnapshot(), nil)

	events := new(MockEventPublisher)
	events.On("PublishOrderCreated", ctx, mock.AnythingOfType("order.CreatedEvent")).Return(nil)

	orders := memory.NewOrderRepository()

	uc := commands.NewOrderCommands(products, engineGateway{engine}, orders, events, clock.NewMockClock(testTime))

	result, err := uc.CreateOrder(ctx, validRequest())
	require.NoError(t, err)

	stock, err := store.Get(ctx, "PROD-001")
	require.NoError(t, err)
	assert.Equal(t, 90, stock.Quantity)

	saved, ok := orders.FindByID(result.ID)
	require.True(t, ok)
	assert.Equal(t, 10, saved.Quantity().Value())
	assert.Equal(t, "Laptop Pro 15", saved.ProductName())
	assert.Equal(t, 1, orders.Len())
}

// engineGateway adapts the local reservation engine to the orchestrator's
// remote-inventory port, the shape the wiring has when both services run in
// one process.
type engineGateway struct {
	engine commands.InventoryCommands
}

func (g engineGateway) Reserve(ctx context.Context, skuCode string, quantity int) (int, error) {
	return g.engine.Reserve(ctx, skuCode, quantity)
}
