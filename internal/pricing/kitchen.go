package pricing

// LineAmount is the priced slice of a kitchen order line item.
type LineAmount struct {
	Name      string
	Quantity  float64
	UnitPrice float64
}

// KitchenBreakdown itemizes a kitchen order's total per line.
type KitchenBreakdown struct {
	Lines map[string]float64 `json:"lines"`
	Total float64            `json:"totalCost"`
}

// PriceKitchenOrder sums quantity times unit price over all line items.
// There is no category-level multiplier.
func PriceKitchenOrder(items []LineAmount) KitchenBreakdown {
	b := KitchenBreakdown{Lines: make(map[string]float64, len(items))}
	for _, it := range items {
		sub := it.Quantity * it.UnitPrice
		b.Lines[it.Name] = sub
		b.Total += sub
	}
	return b
}
