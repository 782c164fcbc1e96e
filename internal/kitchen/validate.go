package kitchen

import (
	"fmt"
	"time"

	"github.com/HeshanJay/hotel-manager-app/internal/pricing"
	"github.com/HeshanJay/hotel-manager-app/internal/validation"
)

// Validate runs every kitchen order check and accumulates all violations.
// Line-item count bounds are evaluated against the resolved (category, type)
// pair; Water is the sole exemption.
func Validate(req *CreateOrderRequest, today time.Time) validation.Result {
	res := validation.NewResult()

	if validation.Missing(req.OrderID) {
		res.Add("orderId", "Order ID is required")
	}

	categoryOK := false
	if validation.Missing(req.ItemCategory) {
		res.Add("itemCategory", "Item category is required")
	} else if !ValidCategory(req.ItemCategory) {
		res.Add("itemCategory", "Item category is invalid")
	} else {
		categoryOK = true
	}

	typeOK := false
	if validation.Missing(req.ItemType) {
		res.Add("itemType", "Item type is required")
	} else if categoryOK && !ValidType(req.ItemCategory, req.ItemType) {
		res.Add("itemType", fmt.Sprintf("%q is not a valid type for category %q", req.ItemType, req.ItemCategory))
	} else {
		typeOK = true
	}

	if len(req.ItemDetails) == 0 {
		res.Add("itemDetails", "At least one item is required")
	}

	// Count bounds apply once the pair resolves to a rule; an unresolved
	// pair already carries a type violation above, so no count violation is
	// stacked on top of it.
	if categoryOK && typeOK {
		if min, max, exempt, ok := BoundsFor(req.ItemCategory, req.ItemType); ok && !exempt {
			if count := len(req.ItemDetails); count < min || count > max {
				res.Add("itemDetails", fmt.Sprintf("For %s, select between %d and %d items", req.ItemType, min, max))
			}
		}
	}

	seen := make(map[string]bool, len(req.ItemDetails))
	for _, item := range req.ItemDetails {
		if validation.Missing(item.Name) {
			res.Add("itemDetails", "Each item must have a name")
			continue
		}
		if seen[item.Name] {
			res.Add("itemDetails", fmt.Sprintf("Duplicate item %q in order", item.Name))
			continue
		}
		seen[item.Name] = true

		if item.Quantity == nil || !validation.NonNegative(*item.Quantity) {
			res.Add("itemDetails", fmt.Sprintf("Quantity for %q must be non-negative", item.Name))
		}
		if item.Price == nil || !validation.NonNegative(*item.Price) {
			res.Add("itemDetails", fmt.Sprintf("Price for %q must be non-negative", item.Name))
		}
	}

	var orderDate, deliveryDate time.Time
	var orderDateOK, deliveryDateOK bool

	if validation.Missing(req.OrderDate) {
		res.Add("orderDate", "Order date is required")
	} else if parsed, err := validation.ParseDate(req.OrderDate); err != nil {
		res.Add("orderDate", "Order date is invalid")
	} else {
		orderDate, orderDateOK = parsed, true
		if validation.InPast(orderDate, today) {
			res.Add("orderDate", "Dates cannot be in the past")
		}
	}

	if validation.Missing(req.ExpectedDeliveryDate) {
		res.Add("expectedDeliveryDate", "Expected delivery date is required")
	} else if parsed, err := validation.ParseDate(req.ExpectedDeliveryDate); err != nil {
		res.Add("expectedDeliveryDate", "Expected delivery date is invalid")
	} else {
		deliveryDate, deliveryDateOK = parsed, true
		if validation.InPast(deliveryDate, today) {
			res.Add("expectedDeliveryDate", "Dates cannot be in the past")
		}
	}

	if orderDateOK && deliveryDateOK && deliveryDate.Before(orderDate) {
		res.Add("expectedDeliveryDate", "Expected delivery date cannot be before the order date")
	}

	if validation.Missing(req.SupplierName) {
		res.Add("supplierName", "Supplier name is required")
	}

	if validation.Missing(req.SupplierContact) {
		res.Add("supplierContact", "Supplier contact is required")
	} else if !validation.ValidContact(req.SupplierContact) {
		res.Add("supplierContact", "Enter a valid email or 10-digit phone number")
	}

	if validation.Missing(req.PaymentStatus) {
		res.Add("paymentStatus", "Payment status is required")
	} else if !ValidPaymentStatus(req.PaymentStatus) {
		res.Add("paymentStatus", "Payment status must be paid, pending or partial")
	}

	if validation.Missing(req.OrderedBy) {
		res.Add("orderedBy", "Ordered by is required")
	}

	return res
}

// LineAmounts converts a validated order's items into the calculator input.
// Call only after Validate returned an empty result.
func LineAmounts(req *CreateOrderRequest) []pricing.LineAmount {
	amounts := make([]pricing.LineAmount, 0, len(req.ItemDetails))
	for _, item := range req.ItemDetails {
		amounts = append(amounts, pricing.LineAmount{
			Name:      item.Name,
			Quantity:  *item.Quantity,
			UnitPrice: *item.Price,
		})
	}
	return amounts
}

// StoredItems converts a validated order's items into their persisted form.
func StoredItems(req *CreateOrderRequest) []StoredLineItem {
	items := make([]StoredLineItem, 0, len(req.ItemDetails))
	for _, item := range req.ItemDetails {
		items = append(items, StoredLineItem{
			Name:     item.Name,
			Quantity: *item.Quantity,
			Price:    *item.Price,
		})
	}
	return items
}
