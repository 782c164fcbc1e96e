package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
	"github.com/HeshanJay/hotel-manager-app/internal/bookings"
	"github.com/HeshanJay/hotel-manager-app/internal/validation"
)

// newBookingID generates a caller-friendly booking id when the request did
// not supply one.
func newBookingID() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// RegisterBookingRoutes registers the room booking API.
func RegisterBookingRoutes(r *gin.Engine, cfg HandlerConfig) {
	store := bookings.NewStore(cfg.DynamoDBClient, cfg.BookingsTable)
	publisher := aws.NewPublisher(cfg.SQSClient, cfg.QueueURL)

	r.POST("/api/bookings", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req bookings.CreateBookingRequest
		if err := validation.BindJSON(c, &req); err != nil {
			// BindJSON already wrote a 400
			return
		}

		if req.BookingID == "" {
			req.BookingID = newBookingID()
		}

		today := cfg.clock().Now()
		res, breakdown := cfg.Engine.RoomBooking(&req, today)
		if !res.Valid() {
			cfg.Metrics.Count(ctx, aws.MetricValidationFailed, KindBooking)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "validation_failed",
				"errors": res,
			})
			return
		}

		stay := bookings.Stay(&req)
		booking := bookings.Booking{
			BookingID:       req.BookingID,
			FullName:        req.FullName,
			Email:           req.Email,
			Phone:           req.Phone,
			Address1:        req.Address1,
			Address2:        req.Address2,
			Address3:        req.Address3,
			State:           req.State,
			Zip:             req.Zip,
			Country:         req.Country,
			CheckIn:         stay.CheckIn,
			CheckOut:        stay.CheckOut,
			Adults:          stay.Adults,
			Children:        stay.Children,
			RoomType:        stay.RoomType,
			NumberOfRooms:   stay.Rooms,
			AgreeTerms:      *req.AgreeTerms,
			Breakfast:       req.Breakfast,
			Parking:         req.Parking,
			AirportTransfer: req.AirportTransfer,
			Golf:            req.Golf,
			Spa:             req.Spa,
			TotalCost:       breakdown.Total,
			Status:          bookings.StatusPending,
		}

		if err := store.Create(ctx, booking); err != nil {
			if errors.Is(err, bookings.ErrDuplicateBooking) {
				cfg.Metrics.Count(ctx, aws.MetricDuplicateIdentifier, KindBooking)
				c.JSON(http.StatusConflict, gin.H{
					"error":  "duplicate_identifier",
					"errors": gin.H{"bookingId": "Booking ID already exists"},
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persistence_failed", "detail": err.Error()})
			return
		}

		// Confirmation is asynchronous; an enqueue failure must not undo the
		// accepted booking, so it is logged and the worker catches up later.
		msg := aws.AcceptedMessage{
			Kind:          KindBooking,
			ID:            booking.BookingID,
			CorrelationID: c.GetHeader("X-Request-Id"),
		}
		if err := publisher.SendAccepted(ctx, msg); err != nil {
			log.Printf("enqueue booking %s failed: %v", booking.BookingID, err)
		}

		cfg.Metrics.Count(ctx, aws.MetricRequestAccepted, KindBooking)
		c.Header("Location", fmt.Sprintf("/api/bookings/%s", booking.BookingID))
		c.JSON(http.StatusCreated, gin.H{
			"message":   "Booking saved successfully",
			"bookingId": booking.BookingID,
			"totalCost": breakdown.Total,
			"breakdown": breakdown,
		})
	})
}
