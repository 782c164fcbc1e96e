package bookings

import (
	"testing"
	"time"

	"github.com/HeshanJay/hotel-manager-app/internal/pricing"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func today() time.Time { return time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC) }

func validRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		BookingID:     "BK-TEST1",
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "0712345678",
		Address1:      "12 Lake Road",
		State:         "Western",
		Zip:           "10100",
		Country:       "Sri Lanka",
		CheckIn:       "2026-03-15",
		CheckOut:      "2026-03-18",
		Adults:        intPtr(2),
		Children:      intPtr(0),
		RoomType:      "deluxe",
		NumberOfRooms: intPtr(1),
		AgreeTerms:    boolPtr(true),
	}
}

func TestValidateAcceptsCleanRequest(t *testing.T) {
	res := Validate(validRequest(), pricing.DefaultRates(), today())
	if !res.Valid() {
		t.Fatalf("expected no violations, got %v", res)
	}
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	req := &CreateBookingRequest{}
	res := Validate(req, pricing.DefaultRates(), today())
	if res.Valid() {
		t.Fatal("empty request must not validate")
	}
	for _, field := range []string{
		"fullName", "email", "phone", "address1", "state", "zip", "country",
		"checkIn", "checkOut", "adults", "roomType", "numberOfRooms", "agreeTerms",
	} {
		if _, ok := res[field]; !ok {
			t.Errorf("expected a violation for %s", field)
		}
	}
}

func TestValidateFieldRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateBookingRequest)
		field   string
		message string
	}{
		{"name with digits", func(r *CreateBookingRequest) { r.FullName = "Jane 2" }, "fullName", "Only letters and spaces allowed"},
		{"bad email", func(r *CreateBookingRequest) { r.Email = "jane@" }, "email", "Email is invalid"},
		{"short phone", func(r *CreateBookingRequest) { r.Phone = "12345" }, "phone", "Phone number must be 10-15 digits"},
		{"phone with letters", func(r *CreateBookingRequest) { r.Phone = "07one234567" }, "phone", "Phone number must be 10-15 digits"},
		{"check-in in the past", func(r *CreateBookingRequest) { r.CheckIn = "2026-03-09" }, "checkIn", "Check-in date cannot be in the past"},
		{"unparseable check-in", func(r *CreateBookingRequest) { r.CheckIn = "15/03/2026" }, "checkIn", "Check-in date is invalid"},
		{"checkout equal to checkin", func(r *CreateBookingRequest) { r.CheckOut = r.CheckIn }, "checkOut", "Check-out must be after check-in"},
		{"checkout before checkin", func(r *CreateBookingRequest) { r.CheckOut = "2026-03-14" }, "checkOut", "Check-out must be after check-in"},
		{"zero adults", func(r *CreateBookingRequest) { r.Adults = intPtr(0) }, "adults", "At least one adult is required"},
		{"negative children", func(r *CreateBookingRequest) { r.Children = intPtr(-1) }, "children", "Number of children cannot be negative"},
		{"unknown room type", func(r *CreateBookingRequest) { r.RoomType = "penthouse" }, "roomType", "Room type is invalid"},
		{"zero rooms", func(r *CreateBookingRequest) { r.NumberOfRooms = intPtr(0) }, "numberOfRooms", "At least one room is required"},
		{"explicit false consent", func(r *CreateBookingRequest) { r.AgreeTerms = boolPtr(false) }, "agreeTerms", "You must agree to the terms and conditions"},
		{"missing consent", func(r *CreateBookingRequest) { r.AgreeTerms = nil }, "agreeTerms", "You must agree to the terms and conditions"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			res := Validate(req, pricing.DefaultRates(), today())
			got, ok := res[tc.field]
			if !ok {
				t.Fatalf("expected a violation for %s, got %v", tc.field, res)
			}
			if got != tc.message {
				t.Fatalf("message = %q, want %q", got, tc.message)
			}
		})
	}
}

func TestValidateCheckInTodayAllowed(t *testing.T) {
	req := validRequest()
	req.CheckIn = "2026-03-10"
	req.CheckOut = "2026-03-11"
	res := Validate(req, pricing.DefaultRates(), today())
	if !res.Valid() {
		t.Fatalf("check-in today must be allowed, got %v", res)
	}
}

func TestStayConversion(t *testing.T) {
	req := validRequest()
	req.Children = nil
	req.Breakfast = true
	stay := Stay(req)
	if stay.Children != 0 {
		t.Fatalf("nil children should convert to 0, got %d", stay.Children)
	}
	if stay.Rooms != 1 || stay.Adults != 2 || !stay.Breakfast {
		t.Fatalf("unexpected stay: %+v", stay)
	}
	if stay.CheckOut.Sub(stay.CheckIn) != 72*time.Hour {
		t.Fatalf("expected a 3-night window, got %v", stay.CheckOut.Sub(stay.CheckIn))
	}
}
