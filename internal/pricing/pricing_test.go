package pricing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		t.Fatalf("parse %q: %v", hhmm, err)
	}
	return parsed
}

func TestDefaultRatesValid(t *testing.T) {
	if err := DefaultRates().Validate(); err != nil {
		t.Fatalf("default rate table should validate: %v", err)
	}
}

func TestRatesValidateRejectsIncompleteTable(t *testing.T) {
	r := DefaultRates()
	delete(r.RoomNightly, RoomSuite)
	if err := r.Validate(); err == nil {
		t.Fatal("table missing a room rate must not validate")
	}

	r = DefaultRates()
	r.PerGuestRate = 0
	if err := r.Validate(); err == nil {
		t.Fatal("zero per-guest rate must not validate")
	}
}

func TestNights(t *testing.T) {
	in := date(2026, 9, 10)
	cases := []struct {
		out  time.Time
		want int
	}{
		{date(2026, 9, 13), 3},
		{date(2026, 9, 11), 1},
		{in, 0},
		{date(2026, 9, 9), 0},
	}
	for _, c := range cases {
		if got := Nights(in, c.out); got != c.want {
			t.Errorf("Nights(%v, %v) = %d, want %d", in, c.out, got, c.want)
		}
	}
}

func TestPriceRoomStay_DeluxeWithBreakfast(t *testing.T) {
	// 2 deluxe rooms (150/night) for 3 nights with breakfast for 2 adults:
	// roomCost 900, breakfastCost 60, total 960.
	r := DefaultRates()
	b := r.PriceRoomStay(RoomStay{
		CheckIn:   date(2026, 9, 10),
		CheckOut:  date(2026, 9, 13),
		RoomType:  RoomDeluxe,
		Rooms:     2,
		Adults:    2,
		Children:  1, // ignored under the canonical adults-only policy
		Breakfast: true,
	})
	if b.Nights != 3 {
		t.Fatalf("nights = %d, want 3", b.Nights)
	}
	if b.RoomCost != 900 {
		t.Errorf("roomCost = %v, want 900", b.RoomCost)
	}
	if b.BreakfastCost != 60 {
		t.Errorf("breakfastCost = %v, want 60", b.BreakfastCost)
	}
	if b.Total != 960 {
		t.Errorf("total = %v, want 960", b.Total)
	}
}

func TestPriceRoomStay_AllAddOns(t *testing.T) {
	r := DefaultRates()
	b := r.PriceRoomStay(RoomStay{
		CheckIn:         date(2026, 9, 10),
		CheckOut:        date(2026, 9, 12),
		RoomType:        RoomStandard,
		Rooms:           1,
		Adults:          2,
		Breakfast:       true,
		Parking:         true,
		AirportTransfer: true,
		Golf:            true,
		Spa:             true,
	})
	// 2 nights: room 200, breakfast 40, parking 20, airport 50 flat,
	// golf 120, spa 160.
	if b.ParkingCost != 20 {
		t.Errorf("parkingCost = %v, want 20", b.ParkingCost)
	}
	if b.AirportCost != 50 {
		t.Errorf("airportCost = %v, want 50 regardless of nights/rooms", b.AirportCost)
	}
	want := 200.0 + 40 + 20 + 50 + 120 + 160
	if b.Total != want {
		t.Errorf("total = %v, want %v", b.Total, want)
	}
}

func TestPriceRoomStay_ChildHalfPricePolicy(t *testing.T) {
	r := DefaultRates()
	r.ChildHalfPrice = true
	b := r.PriceRoomStay(RoomStay{
		CheckIn:   date(2026, 9, 10),
		CheckOut:  date(2026, 9, 11),
		RoomType:  RoomStandard,
		Rooms:     1,
		Adults:    2,
		Children:  2,
		Breakfast: true,
	})
	// 1 night: adults 2*10, children 2*5.
	if b.BreakfastCost != 30 {
		t.Errorf("breakfastCost = %v, want 30 under child-half-price", b.BreakfastCost)
	}
}

func TestPriceEvent_WeddingScenario(t *testing.T) {
	// wedding base 200000 + 50 guests * 3000 + 4h * 8000 = 382000
	r := DefaultRates()
	b := r.PriceEvent(EventWedding, 50, clock(t, "10:00"), clock(t, "14:00"))
	if b.BaseCost != 200000 {
		t.Errorf("baseCost = %v, want 200000", b.BaseCost)
	}
	if b.GuestsCost != 150000 {
		t.Errorf("guestsCost = %v, want 150000", b.GuestsCost)
	}
	if b.DurationCost != 32000 {
		t.Errorf("durationCost = %v, want 32000", b.DurationCost)
	}
	if b.Total != 382000 {
		t.Errorf("total = %v, want 382000", b.Total)
	}
}

func TestPriceEvent_NonPositiveDuration(t *testing.T) {
	r := DefaultRates()
	b := r.PriceEvent(EventParty, 10, clock(t, "14:00"), clock(t, "14:00"))
	if b.DurationCost != 0 {
		t.Errorf("zero-length window should cost 0 duration, got %v", b.DurationCost)
	}
	if b.Total != 50000+30000 {
		t.Errorf("total = %v, want 80000", b.Total)
	}
}

func TestPriceKitchenOrder(t *testing.T) {
	b := PriceKitchenOrder([]LineAmount{
		{Name: "Tomato", Quantity: 5, UnitPrice: 20},
		{Name: "Onion", Quantity: 3, UnitPrice: 15},
	})
	if b.Total != 145 {
		t.Fatalf("total = %v, want 145", b.Total)
	}
	if b.Lines["Tomato"] != 100 || b.Lines["Onion"] != 45 {
		t.Errorf("line subtotals wrong: %+v", b.Lines)
	}
}

func TestPriceKitchenOrder_Empty(t *testing.T) {
	if got := PriceKitchenOrder(nil).Total; got != 0 {
		t.Errorf("empty order total = %v, want 0", got)
	}
}

func TestComputeSalary(t *testing.T) {
	r := DefaultRates()
	full := r.ComputeSalary(100000, EmploymentFullTime)
	if full.Allowance != 30000 || full.Total != 130000 {
		t.Errorf("full-time breakdown wrong: %+v", full)
	}
	part := r.ComputeSalary(100000, EmploymentPartTime)
	if part.Allowance != 15000 || part.Total != 115000 {
		t.Errorf("part-time breakdown wrong: %+v", part)
	}
}

func TestCalculatorsDeterministic(t *testing.T) {
	r := DefaultRates()
	stay := RoomStay{
		CheckIn:  date(2026, 9, 10),
		CheckOut: date(2026, 9, 13),
		RoomType: RoomSuite,
		Rooms:    1,
		Adults:   2,
		Golf:     true,
	}
	first := r.PriceRoomStay(stay)
	second := r.PriceRoomStay(stay)
	if first != second {
		t.Errorf("room calculator is not idempotent: %+v vs %+v", first, second)
	}

	e1 := r.PriceEvent(EventConference, 120, clock(t, "09:00"), clock(t, "17:00"))
	e2 := r.PriceEvent(EventConference, 120, clock(t, "09:00"), clock(t, "17:00"))
	if e1 != e2 {
		t.Errorf("event calculator is not idempotent: %+v vs %+v", e1, e2)
	}
}
