package handlers

import (
	"errors"
	"net/http"

	"doctorportal/middleware"
	"doctorportal/models"
	"doctorportal/services/payment"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler opens card payments for bookings.
type PaymentHandler struct {
	Payments payment.PaymentService
	Logger   *zap.Logger
}

func NewPaymentHandler(ps payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Payments: ps, Logger: logger}
}

// CreatePaymentIntent answers POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context, id middleware.Identity) {
	logger := getLogger(c, h.Logger)

	var input models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "invalid payment request", err.Error())
		return
	}

	secret, err := h.Payments.CreateIntent(c.Request.Context(), input.Price)
	switch {
	case errors.Is(err, payment.ErrDisabled):
		utils.JSONError(c, logger, http.StatusServiceUnavailable, "payments are not available", "")
		return
	case errors.Is(err, payment.ErrInvalidAmount):
		utils.JSONError(c, logger, http.StatusBadRequest, "invalid payment request", err.Error())
		return
	case err != nil:
		utils.InternalError(c, logger, err)
		return
	}
	logger.Debug("payment intent issued", zap.String("email", id.Email))
	c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}
