package pricing

import (
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Room types offered for booking.
const (
	RoomStandard = "standard"
	RoomDeluxe   = "deluxe"
	RoomSuite    = "suite"
)

// Event types offered for booking.
const (
	EventWedding    = "wedding"
	EventConference = "conference"
	EventParty      = "party"
	EventOther      = "other"
)

// Employment types for staff records.
const (
	EmploymentFullTime = "Full-Time"
	EmploymentPartTime = "Part-Time"
)

// Rates is the static rule table that parameterizes every calculator. It is
// loaded once at startup and treated as read-only for the process lifetime.
type Rates struct {
	// Per-night room prices keyed by room type.
	RoomNightly map[string]float64 `validate:"required,dive,gt=0"`

	// Add-on service rates.
	BreakfastRate      float64 `validate:"gte=0"` // per adult per night
	ParkingRate        float64 `validate:"gte=0"` // per room per night
	AirportTransferFee float64 `validate:"gte=0"` // flat per booking
	GolfRate           float64 `validate:"gte=0"` // per adult per night
	SpaRate            float64 `validate:"gte=0"` // per adult per night

	// ChildHalfPrice switches add-on services to the alternate policy where
	// children are charged half the adult rate. The canonical policy charges
	// adults only.
	ChildHalfPrice bool

	// Event pricing: flat base per event type plus per-guest and per-hour
	// components.
	EventBase    map[string]float64 `validate:"required,dive,gt=0"`
	PerGuestRate float64            `validate:"gt=0"`
	PerHourRate  float64            `validate:"gt=0"`

	// Staff allowance rates by employment type (fraction of base salary).
	AllowanceRates map[string]float64 `validate:"required,dive,gte=0"`
}

// DefaultRates returns the production rule table.
func DefaultRates() *Rates {
	return &Rates{
		RoomNightly: map[string]float64{
			RoomStandard: 100,
			RoomDeluxe:   150,
			RoomSuite:    250,
		},
		BreakfastRate:      10,
		ParkingRate:        10,
		AirportTransferFee: 50,
		GolfRate:           30,
		SpaRate:            40,
		EventBase: map[string]float64{
			EventWedding:    200000,
			EventConference: 100000,
			EventParty:      50000,
			EventOther:      25000,
		},
		PerGuestRate: 3000,
		PerHourRate:  8000,
		AllowanceRates: map[string]float64{
			EmploymentFullTime: 0.30,
			EmploymentPartTime: 0.15,
		},
	}
}

// Validate checks the table's structural sanity. Called once at startup;
// calculators assume a validated table.
func (r *Rates) Validate() error {
	v := validatorv10.New()
	if err := v.Struct(r); err != nil {
		return fmt.Errorf("invalid rate table: %w", err)
	}
	for _, rt := range []string{RoomStandard, RoomDeluxe, RoomSuite} {
		if _, ok := r.RoomNightly[rt]; !ok {
			return fmt.Errorf("invalid rate table: missing room rate for %q", rt)
		}
	}
	for _, et := range []string{EventWedding, EventConference, EventParty, EventOther} {
		if _, ok := r.EventBase[et]; !ok {
			return fmt.Errorf("invalid rate table: missing event base for %q", et)
		}
	}
	return nil
}

// ValidRoomType reports whether the table prices the given room type.
func (r *Rates) ValidRoomType(roomType string) bool {
	_, ok := r.RoomNightly[roomType]
	return ok
}

// ValidEventType reports whether the table prices the given event type.
func (r *Rates) ValidEventType(eventType string) bool {
	_, ok := r.EventBase[eventType]
	return ok
}

// ValidEmploymentType reports whether an allowance rate exists for the type.
func (r *Rates) ValidEmploymentType(employmentType string) bool {
	_, ok := r.AllowanceRates[employmentType]
	return ok
}
