package bookings

import (
	"time"

	"github.com/HeshanJay/hotel-manager-app/internal/pricing"
	"github.com/HeshanJay/hotel-manager-app/internal/validation"
)

// Validate runs every field and cross-field check for a room booking and
// accumulates all violations; it never stops at the first problem. today is
// injected so date rules stay deterministic under test.
func Validate(req *CreateBookingRequest, rates *pricing.Rates, today time.Time) validation.Result {
	res := validation.NewResult()

	if validation.Missing(req.FullName) {
		res.Add("fullName", "Full Name is required")
	} else if !validation.ValidName(req.FullName) {
		res.Add("fullName", "Only letters and spaces allowed")
	}

	if validation.Missing(req.Email) {
		res.Add("email", "Email is required")
	} else if !validation.ValidStrictEmail(req.Email) {
		res.Add("email", "Email is invalid")
	}

	if validation.Missing(req.Phone) {
		res.Add("phone", "Phone number is required")
	} else if !validation.ValidPhoneRange(req.Phone) {
		res.Add("phone", "Phone number must be 10-15 digits")
	}

	if validation.Missing(req.Address1) {
		res.Add("address1", "Address Line 1 is required")
	}
	if validation.Missing(req.State) {
		res.Add("state", "State/Province is required")
	}
	if validation.Missing(req.Zip) {
		res.Add("zip", "Zip/Postal Code is required")
	}
	if validation.Missing(req.Country) {
		res.Add("country", "Country is required")
	}

	var checkIn, checkOut time.Time
	var checkInOK, checkOutOK bool

	if validation.Missing(req.CheckIn) {
		res.Add("checkIn", "Check-in date is required")
	} else if parsed, err := validation.ParseDate(req.CheckIn); err != nil {
		res.Add("checkIn", "Check-in date is invalid")
	} else {
		checkIn, checkInOK = parsed, true
		if validation.InPast(checkIn, today) {
			res.Add("checkIn", "Check-in date cannot be in the past")
		}
	}

	if validation.Missing(req.CheckOut) {
		res.Add("checkOut", "Check-out date is required")
	} else if parsed, err := validation.ParseDate(req.CheckOut); err != nil {
		res.Add("checkOut", "Check-out date is invalid")
	} else {
		checkOut, checkOutOK = parsed, true
	}

	// Checkout must be strictly after checkin; equal dates fail.
	if checkInOK && checkOutOK && !checkOut.After(checkIn) {
		res.Add("checkOut", "Check-out must be after check-in")
	}

	if req.Adults == nil || *req.Adults < 1 {
		res.Add("adults", "At least one adult is required")
	}
	if req.Children != nil && *req.Children < 0 {
		res.Add("children", "Number of children cannot be negative")
	}

	if validation.Missing(req.RoomType) {
		res.Add("roomType", "Room type is required")
	} else if !rates.ValidRoomType(req.RoomType) {
		res.Add("roomType", "Room type is invalid")
	}

	if req.NumberOfRooms == nil || *req.NumberOfRooms < 1 {
		res.Add("numberOfRooms", "At least one room is required")
	}

	if validation.MissingBool(req.AgreeTerms) || !*req.AgreeTerms {
		res.Add("agreeTerms", "You must agree to the terms and conditions")
	}

	return res
}

// Stay converts a validated request into the calculator's input. Call only
// after Validate returned an empty result.
func Stay(req *CreateBookingRequest) pricing.RoomStay {
	checkIn, _ := validation.ParseDate(req.CheckIn)
	checkOut, _ := validation.ParseDate(req.CheckOut)
	children := 0
	if req.Children != nil {
		children = *req.Children
	}
	return pricing.RoomStay{
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		RoomType:        req.RoomType,
		Rooms:           *req.NumberOfRooms,
		Adults:          *req.Adults,
		Children:        children,
		Breakfast:       req.Breakfast,
		Parking:         req.Parking,
		AirportTransfer: req.AirportTransfer,
		Golf:            req.Golf,
		Spa:             req.Spa,
	}
}
