package request

type CreateOrderRequest struct {
	SkuCode         string `json:"skuCode" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,gt=0"`
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
}
