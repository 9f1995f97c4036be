package handlers

import (
	"net/http"

	"doctorportal/services/availability"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the treatment catalog.
type AppointmentHandler struct {
	Calculator *availability.Calculator
	Logger     *zap.Logger
}

func NewAppointmentHandler(calc *availability.Calculator, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Calculator: calc, Logger: logger}
}

// GetAppointmentOptions answers GET /appointmentOptions?date=D with the
// remaining slots of every treatment on D.
func (h *AppointmentHandler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")
	opts, err := h.Calculator.ForDate(c.Request.Context(), date)
	if err != nil {
		utils.InternalError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// GetSpecialties answers GET /appointmentSpecialty.
func (h *AppointmentHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.Calculator.Specialties(c.Request.Context())
	if err != nil {
		utils.InternalError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, specialties)
}
