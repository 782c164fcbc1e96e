package bookings

import "time"

// Booking statuses
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
)

// CreateBookingRequest is the payload for POST /api/bookings. Pointer fields
// distinguish "never sent" from zero values: an explicit false consent flag
// or an explicit 0 adults is present (and invalid), not missing.
type CreateBookingRequest struct {
	BookingID       string `json:"bookingId"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address1        string `json:"address1"`
	Address2        string `json:"address2"`
	Address3        string `json:"address3"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	Country         string `json:"country"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Adults          *int   `json:"adults"`
	Children        *int   `json:"children"`
	RoomType        string `json:"roomType"`
	NumberOfRooms   *int   `json:"numberOfRooms"`
	AgreeTerms      *bool  `json:"agreeTerms"`
	Breakfast       bool   `json:"breakfast"`
	Parking         bool   `json:"parking"`
	AirportTransfer bool   `json:"airportTransfer"`
	Golf            bool   `json:"golf"`
	Spa             bool   `json:"spa"`
}

// Booking is the item stored in the bookings DynamoDB table.
type Booking struct {
	BookingID       string    `dynamodbav:"booking_id"` // PK
	FullName        string    `dynamodbav:"full_name"`
	Email           string    `dynamodbav:"email"`
	Phone           string    `dynamodbav:"phone"`
	Address1        string    `dynamodbav:"address1"`
	Address2        string    `dynamodbav:"address2,omitempty"`
	Address3        string    `dynamodbav:"address3,omitempty"`
	State           string    `dynamodbav:"state"`
	Zip             string    `dynamodbav:"zip"`
	Country         string    `dynamodbav:"country"`
	CheckIn         time.Time `dynamodbav:"check_in"`
	CheckOut        time.Time `dynamodbav:"check_out"`
	Adults          int       `dynamodbav:"adults"`
	Children        int       `dynamodbav:"children"`
	RoomType        string    `dynamodbav:"room_type"`
	NumberOfRooms   int       `dynamodbav:"number_of_rooms"`
	AgreeTerms      bool      `dynamodbav:"agree_terms"`
	Breakfast       bool      `dynamodbav:"breakfast"`
	Parking         bool      `dynamodbav:"parking"`
	AirportTransfer bool      `dynamodbav:"airport_transfer"`
	Golf            bool      `dynamodbav:"golf"`
	Spa             bool      `dynamodbav:"spa"`
	TotalCost       float64   `dynamodbav:"total_cost"`
	Status          string    `dynamodbav:"status"` // PENDING | CONFIRMED
	CreatedAt       time.Time `dynamodbav:"created_at"`
	UpdatedAt       time.Time `dynamodbav:"updated_at"`
}
