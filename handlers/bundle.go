package handlers

import (
	"net/http"

	"doctorportal/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Appointments *AppointmentHandler
	Bookings     *BookingHandler
	Users        *UserHandler
	Doctors      *DoctorHandler
	Payments     *PaymentHandler
	Health       *utils.HealthChecker
}

// Root answers GET / with a greeting.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Doctors portal server is running")
}

// HealthHandler answers GET /health.
func (hb *HandlerBundle) HealthHandler(c *gin.Context) {
	if hb.Health == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	c.JSON(http.StatusOK, hb.Health.Check(c.Request.Context()))
}
