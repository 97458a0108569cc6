package request

// InventoryUpdateRequest serves both reserve and absolute update. Quantity
// deliberately has no binding constraint: zero and negative values must
// reach the usecase layer, which owns their (different) error semantics.
type InventoryUpdateRequest struct {
	SkuCode  string `json:"skuCode" binding:"required"`
	Quantity int    `json:"quantity"`
}
