package routes

import (
	"net/http"
	"time"

	"medicore/handlers"
	"medicore/middleware"
	"medicore/models"
	"medicore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", middleware.JWTAuthMiddleware(), hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers account profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/medical", hb.UpdateMedicalProfileHandler)

		staff := api.Group("")
		staff.Use(middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin))
		staff.GET("/:id", hb.GetUserHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.GET("", hb.ListUsersHandler)
		admin.DELETE("/:id", hb.DeleteUserHandler)
	}
}

// RegisterAppointmentRoutes registers booking and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", hb.BookHandler)
		api.GET("/mine", hb.ListMyAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.DELETE("/:id", hb.CancelHandler)
		api.POST("/:id/feedback", hb.FeedbackHandler)

		// State transitions past "scheduled" are staff actions.
		staff := api.Group("")
		staff.Use(middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin))
		staff.GET("/doctor/:doctorId", hb.ListDoctorAppointmentsHandler)
		staff.PUT("/:id/confirm", hb.ConfirmHandler)
		staff.PUT("/:id/complete", hb.CompleteHandler)
		staff.PUT("/:id/no-show", hb.NoShowHandler)
	}
}

// RegisterDoctorRoutes registers doctor directory and management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		// The directory and availability are public.
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/:id", hb.GetDoctorHandler)
		api.GET("/:id/availability", hb.AvailabilityHandler)

		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware())
		authed.POST("/:id/reviews", hb.AddReviewHandler)
		authed.DELETE("/:id/reviews/:reviewId", hb.RemoveReviewHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.RegisterDoctorHandler)
		admin.PUT("/:id", hb.UpdateDoctorHandler)
		admin.DELETE("/:id", hb.DeleteDoctorHandler)
		admin.PUT("/:id/schedule", hb.SetScheduleHandler)
	}
}

// RegisterDepartmentRoutes registers department endpoints.
func RegisterDepartmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/departments")
	{
		api.GET("", hb.ListDepartmentsHandler)
		api.GET("/:id", hb.GetDepartmentHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.CreateDepartmentHandler)
		admin.PUT("/:id", hb.UpdateDepartmentHandler)
		admin.DELETE("/:id", hb.DeleteDepartmentHandler)
		admin.PUT("/:id/doctors/:doctorId", hb.AssignDoctorHandler)
		admin.DELETE("/:id/doctors/:doctorId", hb.UnassignDoctorHandler)
		admin.POST("/:id/stats/refresh", hb.RefreshStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterDepartmentRoutes(r, hb)
	RegisterHealthRoute(r)
}
