package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single argument.
type HandlerBundle struct {
	// Auth and account endpoints
	RegisterUserHandler         gin.HandlerFunc
	LoginHandler                gin.HandlerFunc
	LogoutHandler               gin.HandlerFunc
	GetProfileHandler           gin.HandlerFunc
	UpdateProfileHandler        gin.HandlerFunc
	UpdateMedicalProfileHandler gin.HandlerFunc
	GetUserHandler              gin.HandlerFunc
	ListUsersHandler            gin.HandlerFunc
	DeleteUserHandler           gin.HandlerFunc

	// Appointment endpoints
	BookHandler                   gin.HandlerFunc
	GetAppointmentHandler         gin.HandlerFunc
	CancelHandler                 gin.HandlerFunc
	ConfirmHandler                gin.HandlerFunc
	CompleteHandler               gin.HandlerFunc
	NoShowHandler                 gin.HandlerFunc
	ListMyAppointmentsHandler     gin.HandlerFunc
	ListDoctorAppointmentsHandler gin.HandlerFunc
	AvailabilityHandler           gin.HandlerFunc
	FeedbackHandler               gin.HandlerFunc

	// Doctor endpoints
	GetDoctorHandler      gin.HandlerFunc
	ListDoctorsHandler    gin.HandlerFunc
	RegisterDoctorHandler gin.HandlerFunc
	UpdateDoctorHandler   gin.HandlerFunc
	DeleteDoctorHandler   gin.HandlerFunc
	SetScheduleHandler    gin.HandlerFunc
	AddReviewHandler      gin.HandlerFunc
	RemoveReviewHandler   gin.HandlerFunc

	// Department endpoints
	GetDepartmentHandler    gin.HandlerFunc
	ListDepartmentsHandler  gin.HandlerFunc
	CreateDepartmentHandler gin.HandlerFunc
	UpdateDepartmentHandler gin.HandlerFunc
	DeleteDepartmentHandler gin.HandlerFunc
	AssignDoctorHandler     gin.HandlerFunc
	UnassignDoctorHandler   gin.HandlerFunc
	RefreshStatsHandler     gin.HandlerFunc
}
