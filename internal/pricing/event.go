package pricing

import "time"

// EventBreakdown itemizes an event booking's total.
type EventBreakdown struct {
	BaseCost     float64 `json:"baseCost"`
	GuestsCost   float64 `json:"guestsCost"`
	DurationCost float64 `json:"durationCost"`
	Total        float64 `json:"totalCost"`
}

// PriceEvent computes the tiered event total: a flat base per event type,
// a per-guest component, and a per-hour component for the booked window.
// start and end must share a reference date (see validation.ParseClockTime).
func (r *Rates) PriceEvent(eventType string, guests int, start, end time.Time) EventBreakdown {
	b := EventBreakdown{
		BaseCost:   r.EventBase[eventType],
		GuestsCost: float64(guests) * r.PerGuestRate,
	}
	if hours := end.Sub(start).Hours(); hours > 0 {
		b.DurationCost = hours * r.PerHourRate
	}
	b.Total = b.BaseCost + b.GuestsCost + b.DurationCost
	return b
}
