package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
	"github.com/HeshanJay/hotel-manager-app/internal/bookings"
	"github.com/HeshanJay/hotel-manager-app/internal/events"
	"github.com/HeshanJay/hotel-manager-app/internal/kitchen"
)

// Processor consumes accepted-request messages and confirms the persisted
// records they point at.
type Processor struct {
	validate     *validatorv10.Validate
	bookingStore *bookings.Store
	eventStore   *events.Store
	kitchenStore *kitchen.Store
}

// NewProcessor creates a worker processor with AWS clients injected.
func NewProcessor(dynamo aws.DynamoDBAPI, bookingsTable, eventsTable, kitchenTable string) *Processor {
	return &Processor{
		validate:     validatorv10.New(),
		bookingStore: bookings.NewStore(dynamo, bookingsTable),
		eventStore:   events.NewStore(dynamo, eventsTable),
		kitchenStore: kitchen.NewStore(dynamo, kitchenTable),
	}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev lambdaevents.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry. If failed too many times, message goes to DLQ.
			log.Printf("worker error: %v", err)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec lambdaevents.SQSMessage) error {
	var msg aws.AcceptedMessage
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if err := p.validate.Struct(msg); err != nil {
		return fmt.Errorf("malformed message for id %q: %w", msg.ID, err)
	}

	log.Printf("[worker] received kind=%s id=%s corr=%s", msg.Kind, msg.ID, msg.CorrelationID)

	switch msg.Kind {
	case "booking":
		return p.confirmBooking(ctx, msg.ID)
	case "event":
		return p.confirmEvent(ctx, msg.ID)
	case "kitchen":
		return p.confirmKitchenOrder(ctx, msg.ID)
	default:
		return fmt.Errorf("unknown message kind %q", msg.Kind)
	}
}

func (p *Processor) confirmBooking(ctx context.Context, id string) error {
	b, err := p.bookingStore.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch booking: %w", err)
	}
	if b == nil {
		// Should never happen, the API persists before enqueueing. DLQ if it does.
		return fmt.Errorf("booking not found: %s", id)
	}

	err = p.bookingStore.UpdateStatus(ctx, id, bookings.StatusPending, bookings.StatusConfirmed)
	if err == bookings.ErrStatusMismatch {
		// Competing worker or redelivered message; confirmed already is success.
		b2, _ := p.bookingStore.Get(ctx, id)
		if b2 != nil && b2.Status == bookings.StatusConfirmed {
			log.Printf("[worker] booking %s already confirmed", id)
			return nil
		}
		return fmt.Errorf("unexpected status for booking %s", id)
	}
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	log.Printf("[worker] confirmed booking %s", id)
	return nil
}

func (p *Processor) confirmEvent(ctx context.Context, id string) error {
	e, err := p.eventStore.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch event booking: %w", err)
	}
	if e == nil {
		return fmt.Errorf("event booking not found: %s", id)
	}

	err = p.eventStore.UpdateStatus(ctx, id, events.StatusPending, events.StatusConfirmed)
	if err == events.ErrStatusMismatch {
		e2, _ := p.eventStore.Get(ctx, id)
		if e2 != nil && e2.Status == events.StatusConfirmed {
			log.Printf("[worker] event booking %s already confirmed", id)
			return nil
		}
		return fmt.Errorf("unexpected status for event booking %s", id)
	}
	if err != nil {
		return fmt.Errorf("confirm event booking: %w", err)
	}

	log.Printf("[worker] confirmed event booking %s", id)
	return nil
}

func (p *Processor) confirmKitchenOrder(ctx context.Context, id string) error {
	o, err := p.kitchenStore.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch kitchen order: %w", err)
	}
	if o == nil {
		return fmt.Errorf("kitchen order not found: %s", id)
	}

	err = p.kitchenStore.UpdateStatus(ctx, id, kitchen.StatusPending, kitchen.StatusConfirmed)
	if err == kitchen.ErrStatusMismatch {
		o2, _ := p.kitchenStore.Get(ctx, id)
		if o2 != nil && o2.Status == kitchen.StatusConfirmed {
			log.Printf("[worker] kitchen order %s already confirmed", id)
			return nil
		}
		return fmt.Errorf("unexpected status for kitchen order %s", id)
	}
	if err != nil {
		return fmt.Errorf("confirm kitchen order: %w", err)
	}

	log.Printf("[worker] confirmed kitchen order %s", id)
	return nil
}
