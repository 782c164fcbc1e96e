package events

import "time"

// Event booking statuses
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
)

// CreateEventBookingRequest is the payload for POST /api/event-bookings.
// The consent flag is a pointer so an explicit false is distinguishable from
// an omitted field.
type CreateEventBookingRequest struct {
	EventName       string `json:"eventName"`
	EventType       string `json:"eventType"`
	EventDate       string `json:"eventDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	NumberOfGuests  *int   `json:"numberOfGuests"`
	ContactName     string `json:"contactName"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	SpecialRequests string `json:"specialRequests"`
	AgreeTerms      *bool  `json:"agreeTerms"`
}

// EventBooking is the item stored in the event bookings DynamoDB table. Ids
// are engine-generated, so no caller-supplied identifier can collide.
type EventBooking struct {
	EventID         string    `dynamodbav:"event_id"` // PK
	EventName       string    `dynamodbav:"event_name"`
	EventType       string    `dynamodbav:"event_type"`
	EventDate       time.Time `dynamodbav:"event_date"`
	StartTime       string    `dynamodbav:"start_time"`
	EndTime         string    `dynamodbav:"end_time"`
	NumberOfGuests  int       `dynamodbav:"number_of_guests"`
	ContactName     string    `dynamodbav:"contact_name"`
	ContactEmail    string    `dynamodbav:"contact_email"`
	ContactPhone    string    `dynamodbav:"contact_phone"`
	SpecialRequests string    `dynamodbav:"special_requests,omitempty"`
	AgreeTerms      bool      `dynamodbav:"agree_terms"`
	TotalCost       float64   `dynamodbav:"total_cost"`
	Status          string    `dynamodbav:"status"`
	CreatedAt       time.Time `dynamodbav:"created_at"`
	UpdatedAt       time.Time `dynamodbav:"updated_at"`
}
