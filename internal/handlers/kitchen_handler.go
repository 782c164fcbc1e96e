package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
	"github.com/HeshanJay/hotel-manager-app/internal/kitchen"
	"github.com/HeshanJay/hotel-manager-app/internal/validation"
)

// RegisterKitchenRoutes registers the kitchen supply order API.
func RegisterKitchenRoutes(r *gin.Engine, cfg HandlerConfig) {
	store := kitchen.NewStore(cfg.DynamoDBClient, cfg.KitchenTable)
	publisher := aws.NewPublisher(cfg.SQSClient, cfg.QueueURL)

	r.POST("/api/kitchen-orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req kitchen.CreateOrderRequest
		if err := validation.BindJSON(c, &req); err != nil {
			return
		}

		today := cfg.clock().Now()
		res, breakdown := cfg.Engine.KitchenOrder(&req, today)
		if !res.Valid() {
			cfg.Metrics.Count(ctx, aws.MetricValidationFailed, KindKitchen)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "validation_failed",
				"errors": res,
			})
			return
		}

		orderDate, _ := validation.ParseDate(req.OrderDate)
		deliveryDate, _ := validation.ParseDate(req.ExpectedDeliveryDate)
		order := kitchen.Order{
			OrderID:              req.OrderID,
			ItemCategory:         req.ItemCategory,
			ItemType:             req.ItemType,
			ItemDetails:          kitchen.StoredItems(&req),
			OrderDate:            orderDate,
			ExpectedDeliveryDate: deliveryDate,
			SupplierName:         req.SupplierName,
			SupplierContact:      req.SupplierContact,
			PaymentStatus:        req.PaymentStatus,
			OrderedBy:            req.OrderedBy,
			Remarks:              req.Remarks,
			TotalCost:            breakdown.Total,
			Status:               kitchen.StatusPending,
		}

		if err := store.Create(ctx, order); err != nil {
			if errors.Is(err, kitchen.ErrDuplicateOrder) {
				cfg.Metrics.Count(ctx, aws.MetricDuplicateIdentifier, KindKitchen)
				c.JSON(http.StatusConflict, gin.H{
					"error":  "duplicate_identifier",
					"errors": gin.H{"orderId": "Order ID already exists"},
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persistence_failed", "detail": err.Error()})
			return
		}

		msg := aws.AcceptedMessage{
			Kind:          KindKitchen,
			ID:            order.OrderID,
			CorrelationID: c.GetHeader("X-Request-Id"),
		}
		if err := publisher.SendAccepted(ctx, msg); err != nil {
			log.Printf("enqueue kitchen order %s failed: %v", order.OrderID, err)
		}

		cfg.Metrics.Count(ctx, aws.MetricRequestAccepted, KindKitchen)
		c.JSON(http.StatusCreated, gin.H{
			"message":   "Kitchen order saved successfully",
			"orderId":   order.OrderID,
			"totalCost": breakdown.Total,
			"breakdown": breakdown,
		})
	})
}
