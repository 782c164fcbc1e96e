package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
	"github.com/HeshanJay/hotel-manager-app/internal/engine"
	"github.com/HeshanJay/hotel-manager-app/internal/handlers"
	"github.com/HeshanJay/hotel-manager-app/internal/pricing"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)

	return r
}

func main() {
	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	eng, err := engine.New(pricing.DefaultRates())
	if err != nil {
		log.Fatalf("invalid rate table: %v", err)
	}

	cfg := handlers.HandlerConfig{
		DynamoDBClient: clients.DynamoDB,
		SQSClient:      clients.SQS,
		Metrics:        aws.NewMetrics(clients.CloudWatch, "HotelManager"),
		Engine:         eng,
		BookingsTable:  os.Getenv("BOOKINGS_TABLE"),
		EventsTable:    os.Getenv("EVENTS_TABLE"),
		KitchenTable:   os.Getenv("KITCHEN_TABLE"),
		EmployeesTable: os.Getenv("EMPLOYEES_TABLE"),
		QueueURL:       os.Getenv("QUEUE_URL"),
	}

	r := setupRouter(cfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":8080"
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		}
		log.Printf("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		// the adapter handles proxying; use adapter.ProxyWithContext for proper context propagation
		return adapter.ProxyWithContext(ctx, req)
	})
}
