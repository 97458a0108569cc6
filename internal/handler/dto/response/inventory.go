package response

type InventoryResponse struct {
	SkuCode  string `json:"skuCode"`
	Quantity int    `json:"quantity"`
}
