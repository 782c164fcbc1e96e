package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
	"github.com/HeshanJay/hotel-manager-app/internal/staff"
	"github.com/HeshanJay/hotel-manager-app/internal/validation"
)

// RegisterEmployeeRoutes registers the employee management API. Employee
// records are administrative data, so no queue message is published for them.
func RegisterEmployeeRoutes(r *gin.Engine, cfg HandlerConfig) {
	store := staff.NewStore(cfg.DynamoDBClient, cfg.EmployeesTable)

	r.GET("/api/employees/next-id", func(c *gin.Context) {
		id, err := store.NextEmployeeID(c.Request.Context())
		if err != nil {
			// The random fallback id is still usable; the conditional
			// create catches any collision.
			c.JSON(http.StatusOK, gin.H{"employeeId": id, "fallback": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"employeeId": id})
	})

	r.POST("/api/employees", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req staff.CreateEmployeeRequest
		if err := validation.BindJSON(c, &req); err != nil {
			return
		}

		today := cfg.clock().Now()
		res, breakdown := cfg.Engine.Employee(&req, today)
		if !res.Valid() {
			cfg.Metrics.Count(ctx, aws.MetricValidationFailed, KindEmployee)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "validation_failed",
				"errors": res,
			})
			return
		}

		dob, _ := validation.ParseDate(req.DateOfBirth)
		doj, _ := validation.ParseDate(req.DateOfJoining)
		employee := staff.Employee{
			EmployeeID:     req.EmployeeID,
			FullName:       req.FullName,
			NIC:            req.NIC,
			DateOfBirth:    dob,
			Email:          req.Email,
			Phone:          req.Phone,
			Address:        req.Address,
			Department:     req.Department,
			Position:       req.Position,
			DateOfJoining:  doj,
			Salary:         breakdown.BaseSalary,
			EmploymentType: req.EmploymentType,
			AllowanceRate:  cfg.Engine.Rates().AllowanceRates[req.EmploymentType],
			TotalSalary:    breakdown.Total,
		}

		if err := store.Create(ctx, employee); err != nil {
			if errors.Is(err, staff.ErrDuplicateEmployee) {
				cfg.Metrics.Count(ctx, aws.MetricDuplicateIdentifier, KindEmployee)
				c.JSON(http.StatusConflict, gin.H{
					"error":  "duplicate_identifier",
					"errors": gin.H{"employeeId": "Employee ID already exists"},
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persistence_failed", "detail": err.Error()})
			return
		}

		cfg.Metrics.Count(ctx, aws.MetricRequestAccepted, KindEmployee)
		c.JSON(http.StatusCreated, gin.H{
			"message":     "Employee created successfully",
			"employeeId":  employee.EmployeeID,
			"totalSalary": breakdown.Total,
			"breakdown":   breakdown,
		})
	})
}
