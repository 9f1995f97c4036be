package handlers

import (
	"net/http"

	"doctorportal/middleware"
	"doctorportal/models"
	"doctorportal/services/booking"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking creation and lookup.
type BookingHandler struct {
	Registrar *booking.Registrar
	Logger    *zap.Logger
}

func NewBookingHandler(r *booking.Registrar, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Registrar: r, Logger: logger}
}

// CreateBooking answers POST /bookings. A conflict is a 200 with
// acknowledged=false so existing clients keep working.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "invalid booking", err.Error())
		return
	}

	res, err := h.Registrar.Create(c.Request.Context(), input)
	if err != nil {
		utils.InternalError(c, logger, err)
		return
	}
	if !res.Accepted {
		c.JSON(http.StatusOK, models.InsertResult{Acknowledged: false, Message: res.Conflict.Message})
		return
	}
	c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID})
}

// ListBookings answers GET /bookings?email=E for the caller's own email only.
func (h *BookingHandler) ListBookings(c *gin.Context, id middleware.Identity) {
	email := c.Query("email")
	if email != id.Email {
		c.JSON(http.StatusForbidden, utils.ErrorResponse{Message: "forbidden access"})
		return
	}
	bookings, err := h.Registrar.ListByEmail(c.Request.Context(), email)
	if err != nil {
		utils.InternalError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking answers GET /bookings/:id. An unknown id yields null.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Registrar.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, b)
}
