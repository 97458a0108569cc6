package order

import (
	"time"

	"order-fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptySkuCode         = errs.New("sku code must not be blank")
	ErrInvalidQuantity      = errs.New("quantity must be greater than zero")
	ErrEmptyCustomerName    = errs.New("customer name must not be blank")
	ErrInvalidCustomerEmail = errs.New("customer email is invalid")
	ErrEmptyCustomerPhone   = errs.New("customer phone must not be blank")
	ErrEmptyShippingAddress = errs.New("shipping address must not be blank")
)

// Order is persisted only after a successful stock reservation and is
// immutable afterwards; there is no update or cancel path.
type Order struct {
	id          uuid.UUID
	skuCode     SkuCode
	productName string
	quantity    Quantity
	customer    Customer
	orderDate   time.Time
}

func NewOrder(id uuid.UUID, skuCode, productName string, quantity int, customer Customer, now time.Time) (*Order, error) {
	sku, err := NewSkuCode(skuCode)
	if err != nil {
		return nil, err
	}

	qty, err := NewQuantity(quantity)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Order{
		id:          id,
		skuCode:     sku,
		productName: productName,
		quantity:    qty,
		customer:    customer,
		orderDate:   now,
	}, nil
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) SkuCode() SkuCode     { return o.skuCode }
func (o *Order) ProductName() string  { return o.productName }
func (o *Order) Quantity() Quantity   { return o.quantity }
func (o *Order) Customer() Customer   { return o.customer }
func (o *Order) OrderDate() time.Time { return o.orderDate }
