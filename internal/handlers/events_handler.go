package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
	"github.com/HeshanJay/hotel-manager-app/internal/events"
	"github.com/HeshanJay/hotel-manager-app/internal/validation"
)

// RegisterEventRoutes registers the event booking API.
func RegisterEventRoutes(r *gin.Engine, cfg HandlerConfig) {
	store := events.NewStore(cfg.DynamoDBClient, cfg.EventsTable)
	publisher := aws.NewPublisher(cfg.SQSClient, cfg.QueueURL)

	r.POST("/api/event-bookings", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req events.CreateEventBookingRequest
		if err := validation.BindJSON(c, &req); err != nil {
			return
		}

		today := cfg.clock().Now()
		res, breakdown := cfg.Engine.EventBooking(&req, today)
		if !res.Valid() {
			cfg.Metrics.Count(ctx, aws.MetricValidationFailed, KindEvent)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "validation_failed",
				"errors": res,
			})
			return
		}

		eventDate, _ := validation.ParseDate(req.EventDate)
		booking := events.EventBooking{
			EventID:         uuid.NewString(),
			EventName:       req.EventName,
			EventType:       req.EventType,
			EventDate:       eventDate,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			NumberOfGuests:  *req.NumberOfGuests,
			ContactName:     req.ContactName,
			ContactEmail:    req.ContactEmail,
			ContactPhone:    req.ContactPhone,
			SpecialRequests: req.SpecialRequests,
			AgreeTerms:      *req.AgreeTerms,
			TotalCost:       breakdown.Total,
			Status:          events.StatusPending,
		}

		if err := store.Create(ctx, booking); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persistence_failed", "detail": err.Error()})
			return
		}

		msg := aws.AcceptedMessage{
			Kind:          KindEvent,
			ID:            booking.EventID,
			CorrelationID: c.GetHeader("X-Request-Id"),
		}
		if err := publisher.SendAccepted(ctx, msg); err != nil {
			log.Printf("enqueue event booking %s failed: %v", booking.EventID, err)
		}

		cfg.Metrics.Count(ctx, aws.MetricRequestAccepted, KindEvent)
		c.JSON(http.StatusCreated, gin.H{
			"message":   "Event booking saved successfully",
			"eventId":   booking.EventID,
			"totalCost": breakdown.Total,
			"breakdown": breakdown,
		})
	})
}
