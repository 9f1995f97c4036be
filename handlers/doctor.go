package handlers

import (
	"net/http"

	"doctorportal/middleware"
	"doctorportal/models"
	"doctorportal/services/doctor"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes the admin-only doctor catalog.
type DoctorHandler struct {
	Doctors doctor.DoctorService
	Logger  *zap.Logger
}

func NewDoctorHandler(ds doctor.DoctorService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Doctors: ds, Logger: logger}
}

func (h *DoctorHandler) AddDoctor(c *gin.Context, _ middleware.AdminIdentity) {
	logger := getLogger(c, h.Logger)

	var input models.Doctor
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, "invalid doctor", err.Error())
		return
	}
	res, err := h.Doctors.Add(c.Request.Context(), input)
	if err != nil {
		utils.InternalError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *DoctorHandler) ListDoctors(c *gin.Context, _ middleware.AdminIdentity) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		utils.InternalError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context, _ middleware.AdminIdentity) {
	n, err := h.Doctors.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": n})
}
