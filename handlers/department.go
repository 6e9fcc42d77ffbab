package handlers

import (
	"net/http"

	"medicore/models"
	departmentSvc "medicore/services/department"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler exposes department management and statistics endpoints.
type DepartmentHandler struct {
	Service departmentSvc.DepartmentService
}

func NewDepartmentHandler(svc departmentSvc.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{Service: svc}
}

// GetDepartmentHandler handles GET /api/departments/:id.
func (h *DepartmentHandler) GetDepartmentHandler(c *gin.Context) {
	dept, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dept)
}

// ListDepartmentsHandler handles GET /api/departments.
func (h *DepartmentHandler) ListDepartmentsHandler(c *gin.Context) {
	depts, err := h.Service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, depts)
}

// CreateDepartmentHandler handles POST /api/departments.
func (h *DepartmentHandler) CreateDepartmentHandler(c *gin.Context) {
	var dept models.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Create(&dept)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDepartmentHandler handles PUT /api/departments/:id.
func (h *DepartmentHandler) UpdateDepartmentHandler(c *gin.Context) {
	var dept models.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Service.Update(c.Param("id"), &dept)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDepartmentHandler handles DELETE /api/departments/:id.
func (h *DepartmentHandler) DeleteDepartmentHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Department deleted"})
}

// AssignDoctorHandler handles PUT /api/departments/:id/doctors/:doctorId.
func (h *DepartmentHandler) AssignDoctorHandler(c *gin.Context) {
	dept, err := h.Service.AssignDoctor(c.Param("id"), c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dept)
}

// UnassignDoctorHandler handles DELETE /api/departments/:id/doctors/:doctorId.
func (h *DepartmentHandler) UnassignDoctorHandler(c *gin.Context) {
	dept, err := h.Service.UnassignDoctor(c.Param("id"), c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dept)
}

// RefreshStatsHandler handles POST /api/departments/:id/stats/refresh.
func (h *DepartmentHandler) RefreshStatsHandler(c *gin.Context) {
	stats, err := h.Service.RefreshStats(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
