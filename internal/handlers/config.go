package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/zoobzio/clockz"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
	"github.com/HeshanJay/hotel-manager-app/internal/engine"
)

// Request kinds as reported in queue messages and metrics.
const (
	KindBooking  = "booking"
	KindEvent    = "event"
	KindKitchen  = "kitchen"
	KindEmployee = "employee"
)

// HandlerConfig groups dependencies for all request handlers.
type HandlerConfig struct {
	DynamoDBClient aws.DynamoDBAPI
	SQSClient      aws.SQSAPI
	Metrics        *aws.Metrics
	Engine         *engine.Engine

	BookingsTable  string
	EventsTable    string
	KitchenTable   string
	EmployeesTable string
	QueueURL       string

	// Clock supplies "today" for date-relative validation; the engine never
	// reads the system clock itself.
	Clock clockz.Clock
}

func (cfg HandlerConfig) clock() clockz.Clock {
	if cfg.Clock != nil {
		return cfg.Clock
	}
	return clockz.RealClock
}

// RegisterRoutes registers every request route on the router.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	RegisterBookingRoutes(r, cfg)
	RegisterEventRoutes(r, cfg)
	RegisterKitchenRoutes(r, cfg)
	RegisterEmployeeRoutes(r, cfg)
}
