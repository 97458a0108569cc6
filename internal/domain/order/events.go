package order

import "time"

// CreatedEvent is the denormalized snapshot published to the order-created
// topic after an order has been persisted. Delivery is best effort; a lost
// event is not recovered.
type CreatedEvent struct {
	OrderID         string    `json:"orderId"`
	SkuCode         string    `json:"skuCode"`
	ProductName     string    `json:"productName"`
	Quantity        int       `json:"quantity"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	ShippingAddress string    `json:"shippingAddress"`
	OrderDate       time.Time `json:"orderDate"`
}

func NewCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{
		OrderID:         o.ID().String(),
		SkuCode:         o.SkuCode().String(),
		ProductName:     o.ProductName(),
		Quantity:        o.Quantity().Value(),
		CustomerName:    o.Customer().Name(),
		CustomerEmail:   o.Customer().Email(),
		CustomerPhone:   o.Customer().Phone(),
		ShippingAddress: o.Customer().ShippingAddress(),
		OrderDate:       o.OrderDate(),
	}
}
