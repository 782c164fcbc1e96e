package events

import (
	"time"

	"github.com/HeshanJay/hotel-manager-app/internal/pricing"
	"github.com/HeshanJay/hotel-manager-app/internal/validation"
)

// Validate runs every event booking check and accumulates all violations.
// today is injected; the validator never reads the system clock.
func Validate(req *CreateEventBookingRequest, rates *pricing.Rates, today time.Time) validation.Result {
	res := validation.NewResult()

	if validation.Missing(req.EventName) {
		res.Add("eventName", "Event name is required")
	}

	if validation.Missing(req.EventType) {
		res.Add("eventType", "Event type is required")
	} else if !rates.ValidEventType(req.EventType) {
		res.Add("eventType", "Event type is invalid")
	}

	if validation.Missing(req.EventDate) {
		res.Add("eventDate", "Event date is required")
	} else if parsed, err := validation.ParseDate(req.EventDate); err != nil {
		res.Add("eventDate", "Event date is invalid")
	} else if validation.InPast(parsed, today) {
		res.Add("eventDate", "Event date must be in the future")
	}

	var start, end time.Time
	var startOK, endOK bool

	if validation.Missing(req.StartTime) {
		res.Add("startTime", "Start time is required")
	} else if parsed, err := validation.ParseClockTime(req.StartTime); err != nil {
		res.Add("startTime", "Start time is invalid")
	} else {
		start, startOK = parsed, true
	}

	if validation.Missing(req.EndTime) {
		res.Add("endTime", "End time is required")
	} else if parsed, err := validation.ParseClockTime(req.EndTime); err != nil {
		res.Add("endTime", "End time is invalid")
	} else {
		end, endOK = parsed, true
	}

	// End must be strictly after start; both sit on the same reference date.
	if startOK && endOK && !end.After(start) {
		res.Add("endTime", "End time must be after start time")
	}

	if req.NumberOfGuests == nil || *req.NumberOfGuests < 1 {
		res.Add("numberOfGuests", "Number of guests must be at least 1")
	} else if *req.NumberOfGuests > 1000 {
		res.Add("numberOfGuests", "Number of guests cannot exceed 1000")
	}

	if validation.Missing(req.ContactName) {
		res.Add("contactName", "Contact name is required")
	}

	if validation.Missing(req.ContactEmail) || !validation.ValidLooseEmail(req.ContactEmail) {
		res.Add("contactEmail", "Valid email is required")
	}

	if validation.Missing(req.ContactPhone) || !validation.ValidPhone10(req.ContactPhone) {
		res.Add("contactPhone", "Phone number must be 10 digits")
	}

	if validation.MissingBool(req.AgreeTerms) || !*req.AgreeTerms {
		res.Add("agreeTerms", "You must agree to the terms and conditions")
	}

	return res
}

// Window returns the parsed time window of a validated request.
func Window(req *CreateEventBookingRequest) (start, end time.Time) {
	start, _ = validation.ParseClockTime(req.StartTime)
	end, _ = validation.ParseClockTime(req.EndTime)
	return start, end
}
