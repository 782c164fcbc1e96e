// Package engine is the validate-then-price façade. Each entry point runs
// every applicable validator for its request kind, accumulating violations,
// and computes the pricing breakdown only when validation passed. Entry
// points never return Go errors for semantic violations; the Result carries
// them. today is always injected by the caller.
package engine

import (
	"time"

	"github.com/HeshanJay/hotel-manager-app/internal/bookings"
	"github.com/HeshanJay/hotel-manager-app/internal/events"
	"github.com/HeshanJay/hotel-manager-app/internal/kitchen"
	"github.com/HeshanJay/hotel-manager-app/internal/pricing"
	"github.com/HeshanJay/hotel-manager-app/internal/staff"
	"github.com/HeshanJay/hotel-manager-app/internal/validation"
)

// Engine holds the process-wide rule tables. Read-only after New.
type Engine struct {
	rates *pricing.Rates
}

// New builds an engine around a validated rate table.
func New(rates *pricing.Rates) (*Engine, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Engine{rates: rates}, nil
}

// Rates exposes the rule table for handlers that need enum checks.
func (e *Engine) Rates() *pricing.Rates {
	return e.rates
}

// RoomBooking validates a room booking request and, when it is clean, prices
// the stay.
func (e *Engine) RoomBooking(req *bookings.CreateBookingRequest, today time.Time) (validation.Result, *pricing.RoomBreakdown) {
	res := bookings.Validate(req, e.rates, today)
	if !res.Valid() {
		return res, nil
	}
	b := e.rates.PriceRoomStay(bookings.Stay(req))
	return res, &b
}

// EventBooking validates an event booking request and, when it is clean,
// prices the event.
func (e *Engine) EventBooking(req *events.CreateEventBookingRequest, today time.Time) (validation.Result, *pricing.EventBreakdown) {
	res := events.Validate(req, e.rates, today)
	if !res.Valid() {
		return res, nil
	}
	start, end := events.Window(req)
	b := e.rates.PriceEvent(req.EventType, *req.NumberOfGuests, start, end)
	return res, &b
}

// KitchenOrder validates a kitchen supply order and, when it is clean, sums
// its line items.
func (e *Engine) KitchenOrder(req *kitchen.CreateOrderRequest, today time.Time) (validation.Result, *pricing.KitchenBreakdown) {
	res := kitchen.Validate(req, today)
	if !res.Valid() {
		return res, nil
	}
	b := pricing.PriceKitchenOrder(kitchen.LineAmounts(req))
	return res, &b
}

// Employee validates an employee registration and, when it is clean,
// computes the salary breakdown.
func (e *Engine) Employee(req *staff.CreateEmployeeRequest, today time.Time) (validation.Result, *pricing.SalaryBreakdown) {
	res := staff.Validate(req, e.rates, today)
	if !res.Valid() {
		return res, nil
	}
	b := e.rates.ComputeSalary(*req.Salary, req.EmploymentType)
	return res, &b
}
