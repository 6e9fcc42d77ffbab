package handlers

import (
	"net/http"
	"time"

	"medicore/models"
	"medicore/services/scheduling"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking and lifecycle endpoints.
type AppointmentHandler struct {
	Service scheduling.AppointmentService
}

func NewAppointmentHandler(svc scheduling.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// BookHandler handles POST /api/appointments.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Patients always book for themselves; staff may book on a patient's behalf.
	uid, ok := requesterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if input.PatientID == "" || !requesterRole(c).IsStaff() {
		input.PatientID = uid
	}

	appt, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		logger.Warn("Booking rejected",
			zap.String("doctorId", input.DoctorID),
			zap.Time("startTime", input.StartTime),
			zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelHandler handles DELETE /api/appointments/:id. The record is kept in
// "cancelled" state rather than removed.
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	uid, ok := requesterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	appt, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), uid, requesterRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ConfirmHandler handles PUT /api/appointments/:id/confirm.
func (h *AppointmentHandler) ConfirmHandler(c *gin.Context) {
	appt, err := h.Service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CompleteHandler handles PUT /api/appointments/:id/complete. Completion
// settles the insurance-adjusted bill.
func (h *AppointmentHandler) CompleteHandler(c *gin.Context) {
	appt, err := h.Service.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// NoShowHandler handles PUT /api/appointments/:id/no-show.
func (h *AppointmentHandler) NoShowHandler(c *gin.Context) {
	appt, err := h.Service.MarkNoShow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListMyAppointmentsHandler handles GET /api/appointments/mine.
func (h *AppointmentHandler) ListMyAppointmentsHandler(c *gin.Context) {
	uid, ok := requesterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	appts, err := h.Service.ListForPatient(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListDoctorAppointmentsHandler handles GET /api/appointments/doctor/:doctorId.
// Optional "from" and "to" query params (RFC 3339) bound the range; the
// default is the next 7 days.
func (h *AppointmentHandler) ListDoctorAppointmentsHandler(c *gin.Context) {
	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 7)
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp"})
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp"})
			return
		}
		to = parsed
	}

	appts, err := h.Service.ListForDoctor(c.Request.Context(), c.Param("doctorId"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// AvailabilityHandler handles GET /api/doctors/:id/availability?date=2026-09-01.
func (h *AppointmentHandler) AvailabilityHandler(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'date' is required (YYYY-MM-DD)"})
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'date', expected YYYY-MM-DD"})
		return
	}

	avail, err := h.Service.Availability(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// FeedbackHandler handles POST /api/appointments/:id/feedback.
func (h *AppointmentHandler) FeedbackHandler(c *gin.Context) {
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

	appt, err := h.Service.SubmitFeedback(c.Request.Context(), c.Param("id"), uid, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
