package kitchen

import "time"

// Order statuses
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
)

// Item categories
const (
	CategoryFood      = "Food"
	CategoryBeverage  = "Beverage"
	CategoryEquipment = "Equipment"
)

// Item types by category
const (
	TypeVegetables = "Vegetables"
	TypeFruits     = "Fruits"
	TypeMeat       = "Meat"
	TypeWater      = "Water"
	TypeSoftDrinks = "Soft Drinks"
)

// Payment statuses
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentPartial = "partial"
)

// LineItem is one named, quantity-and-price-bearing entry of an order.
// Quantity and price are pointers so a missing value is distinguishable from
// an explicit zero (zero is valid, absent is not).
type LineItem struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
}

// CreateOrderRequest is the payload for POST /api/kitchen-orders.
type CreateOrderRequest struct {
	OrderID              string     `json:"orderId"`
	ItemCategory         string     `json:"itemCategory"`
	ItemType             string     `json:"itemType"`
	ItemDetails          []LineItem `json:"itemDetails"`
	OrderDate            string     `json:"orderDate"`
	ExpectedDeliveryDate string     `json:"expectedDeliveryDate"`
	SupplierName         string     `json:"supplierName"`
	SupplierContact      string     `json:"supplierContact"`
	PaymentStatus        string     `json:"paymentStatus"`
	OrderedBy            string     `json:"orderedBy"`
	Remarks              string     `json:"remarks"`
}

// StoredLineItem is the persisted form of a line item.
type StoredLineItem struct {
	Name     string  `dynamodbav:"name"`
	Quantity float64 `dynamodbav:"quantity"`
	Price    float64 `dynamodbav:"price"`
}

// Order is the item stored in the kitchen orders DynamoDB table.
type Order struct {
	OrderID              string           `dynamodbav:"order_id"` // PK
	ItemCategory         string           `dynamodbav:"item_category"`
	ItemType             string           `dynamodbav:"item_type"`
	ItemDetails          []StoredLineItem `dynamodbav:"item_details"`
	OrderDate            time.Time        `dynamodbav:"order_date"`
	ExpectedDeliveryDate time.Time        `dynamodbav:"expected_delivery_date"`
	SupplierName         string           `dynamodbav:"supplier_name"`
	SupplierContact      string           `dynamodbav:"supplier_contact"`
	PaymentStatus        string           `dynamodbav:"payment_status"`
	OrderedBy            string           `dynamodbav:"ordered_by"`
	Remarks              string           `dynamodbav:"remarks,omitempty"`
	TotalCost            float64          `dynamodbav:"total_cost"`
	Status               string           `dynamodbav:"status"`
	CreatedAt            time.Time        `dynamodbav:"created_at"`
	UpdatedAt            time.Time        `dynamodbav:"updated_at"`
}
