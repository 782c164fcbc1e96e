package kitchen

// countBound is one row of the line-item count rule table.
type countBound struct {
	Category string
	Type     string // empty matches any type within the category
	Min      int
	Max      int
	Exempt   bool // no bound applies (Water only)
}

// countBounds maps (category, type) pairs to their allowed line-item count
// range. Kept as data so the rules can be tested in isolation and changed
// without touching validator code.
var countBounds = []countBound{
	{Category: CategoryFood, Type: TypeVegetables, Min: 4, Max: 10},
	{Category: CategoryFood, Type: TypeFruits, Min: 4, Max: 10},
	{Category: CategoryFood, Type: TypeMeat, Min: 3, Max: 10},
	{Category: CategoryBeverage, Type: TypeWater, Exempt: true},
	{Category: CategoryBeverage, Type: TypeSoftDrinks, Min: 3, Max: 10},
	{Category: CategoryEquipment, Min: 2, Max: 10},
}

// typesByCategory enumerates the valid item types per category. Equipment
// accepts free-form types.
var typesByCategory = map[string][]string{
	CategoryFood:     {TypeVegetables, TypeFruits, TypeMeat},
	CategoryBeverage: {TypeWater, TypeSoftDrinks},
}

// ValidCategory reports whether the category is one of the known three.
func ValidCategory(category string) bool {
	switch category {
	case CategoryFood, CategoryBeverage, CategoryEquipment:
		return true
	}
	return false
}

// ValidType reports whether itemType is valid within category. Equipment
// takes any non-empty type.
func ValidType(category, itemType string) bool {
	if category == CategoryEquipment {
		return itemType != ""
	}
	for _, t := range typesByCategory[category] {
		if t == itemType {
			return true
		}
	}
	return false
}

// ValidPaymentStatus reports whether the payment status is recognized.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentPartial:
		return true
	}
	return false
}

// BoundsFor resolves the count bound for a (category, type) pair. ok is
// false when no rule matches; exempt is true for the Water exemption.
func BoundsFor(category, itemType string) (min, max int, exempt, ok bool) {
	for _, b := range countBounds {
		if b.Category != category {
			continue
		}
		if b.Type != "" && b.Type != itemType {
			continue
		}
		return b.Min, b.Max, b.Exempt, true
	}
	return 0, 0, false, false
}
