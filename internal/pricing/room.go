package pricing

import (
	"math"
	"time"
)

// RoomStay is the validated slice of a room booking the calculator needs.
type RoomStay struct {
	CheckIn         time.Time
	CheckOut        time.Time
	RoomType        string
	Rooms           int
	Adults          int
	Children        int
	Breakfast       bool
	Parking         bool
	AirportTransfer bool
	Golf            bool
	Spa             bool
}

// RoomBreakdown itemizes a room booking's total for display and audit.
type RoomBreakdown struct {
	Nights        int     `json:"nights"`
	RoomCost      float64 `json:"roomCost"`
	BreakfastCost float64 `json:"breakfastCost"`
	ParkingCost   float64 `json:"parkingCost"`
	AirportCost   float64 `json:"airportCost"`
	GolfCost      float64 `json:"golfCost"`
	SpaCost       float64 `json:"spaCost"`
	Total         float64 `json:"totalCost"`
}

// Nights returns the stay length in nights, rounding partial days up.
// Zero when checkout is not after checkin.
func Nights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// PriceRoomStay computes the booking total from the rule table. Deterministic
// for identical input; must only run on a validated request.
func (r *Rates) PriceRoomStay(in RoomStay) RoomBreakdown {
	nights := Nights(in.CheckIn, in.CheckOut)
	b := RoomBreakdown{Nights: nights}

	b.RoomCost = float64(in.Rooms) * float64(nights) * r.RoomNightly[in.RoomType]

	// Per-person services charge adults at the full rate. Under the alternate
	// child-half-price policy, children are added at half the adult rate.
	perPerson := func(rate float64) float64 {
		cost := float64(in.Adults) * float64(nights) * rate
		if r.ChildHalfPrice {
			cost += float64(in.Children) * float64(nights) * rate / 2
		}
		return cost
	}

	if in.Breakfast {
		b.BreakfastCost = perPerson(r.BreakfastRate)
	}
	if in.Parking {
		b.ParkingCost = float64(in.Rooms) * float64(nights) * r.ParkingRate
	}
	if in.AirportTransfer {
		b.AirportCost = r.AirportTransferFee
	}
	if in.Golf {
		b.GolfCost = perPerson(r.GolfRate)
	}
	if in.Spa {
		b.SpaCost = perPerson(r.SpaRate)
	}

	b.Total = b.RoomCost + b.BreakfastCost + b.ParkingCost + b.AirportCost + b.GolfCost + b.SpaCost
	return b
}
