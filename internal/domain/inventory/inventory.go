package inventory

// Stock is the per-SKU record mutated exclusively by the reservation engine.
// Quantity never goes below zero.
type Stock struct {
	SkuCode  string
	Quantity int
}

func (s *Stock) CanFulfill(quantity int) bool {
	return s.Quantity >= quantity
}
