package handlers

import (
	"net/http"

	"medicore/models"
	doctorSvc "medicore/services/doctor"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes doctor management and review endpoints.
type DoctorHandler struct {
	Service doctorSvc.DoctorService
}

func NewDoctorHandler(svc doctorSvc.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// GetDoctorHandler handles GET /api/doctors/:id.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doc, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListDoctorsHandler handles GET /api/doctors. An optional "department"
// query filters by department membership.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	docs, err := h.Service.GetAll(c.Query("department"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// RegisterDoctorHandler handles POST /api/doctors.
func (h *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Register(&doc)
	if err != nil {
		logger.Error("Doctor registration failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDoctorHandler handles PUT /api/doctors/:id.
func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc.ID = c.Param("id")
	updated, err := h.Service.Update(&doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDoctorHandler handles DELETE /api/doctors/:id.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

// SetScheduleHandler handles PUT /api/doctors/:id/schedule.
func (h *DoctorHandler) SetScheduleHandler(c *gin.Context) {
	var schedule []models.ScheduleEntry
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.Service.SetSchedule(c.Param("id"), schedule)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// AddReviewHandler handles POST /api/doctors/:id/reviews.
func (h *DoctorHandler) AddReviewHandler(c *gin.Context) {
	uid, ok := requesterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.Service.AddReview(c.Param("id"), uid, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// RemoveReviewHandler handles DELETE /api/doctors/:id/reviews/:reviewId.
func (h *DoctorHandler) RemoveReviewHandler(c *gin.Context) {
	uid, ok := requesterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	doc, err := h.Service.RemoveReview(c.Param("id"), c.Param("reviewId"), uid, requesterRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
