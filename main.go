package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicore/config"
	"medicore/cron"
	"medicore/database"
	appointmentRepoPkg "medicore/database/repository/appointment"
	departmentRepoPkg "medicore/database/repository/department"
	doctorRepoPkg "medicore/database/repository/doctor"
	userRepoPkg "medicore/database/repository/user"
	"medicore/handlers"
	"medicore/routes"
	"medicore/services/billing"
	"medicore/services/department"
	"medicore/services/doctor"
	"medicore/services/notification"
	"medicore/services/scheduling"
	"medicore/services/tasks"
	"medicore/services/user"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	deptRepo := departmentRepoPkg.NewMongoDepartmentRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// shared infrastructure.
	notifier := notification.NewEmailNotifier(logger)
	reminderQueue := tasks.NewReminderQueue()
	defer reminderQueue.Close()
	billingProcessor := billing.NewStripeBillingProcessor(logger)
	doctorLocker := scheduling.NewRedisDoctorLocker(utils.GetLockClient(), 10*time.Second)

	// services.
	appointmentService := &scheduling.DefaultAppointmentService{
		Repo:       apptRepo,
		DoctorRepo: docRepo,
		UserRepo:   usrRepo,
		Locker:     doctorLocker,
		Reminders:  reminderQueue,
		Billing:    billingProcessor,
		Notifier:   notifier,
		Logger:     logger,
	}
	doctorService := &doctor.DefaultDoctorService{Repo: docRepo}
	departmentService := &department.DefaultDepartmentService{
		Repo:         deptRepo,
		DoctorRepo:   docRepo,
		Appointments: apptRepo,
		Logger:       logger,
	}
	userService := &user.DefaultUserService{
		Repo:   usrRepo,
		Mailer: notifier,
		Logger: logger,
	}

	// handlers.
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	userHandler := handlers.NewUserHandler(userService)

	handlerBundle := &handlers.HandlerBundle{
		// Auth and account endpoints.
		RegisterUserHandler:         userHandler.RegisterUserHandler,
		LoginHandler:                userHandler.LoginHandler,
		LogoutHandler:               userHandler.LogoutHandler,
		GetProfileHandler:           userHandler.GetProfileHandler,
		UpdateProfileHandler:        userHandler.UpdateProfileHandler,
		UpdateMedicalProfileHandler: userHandler.UpdateMedicalProfileHandler,
		GetUserHandler:              userHandler.GetUserHandler,
		ListUsersHandler:            userHandler.ListUsersHandler,
		DeleteUserHandler:           userHandler.DeleteUserHandler,

		// Appointment endpoints.
		BookHandler:                   appointmentHandler.BookHandler,
		GetAppointmentHandler:         appointmentHandler.GetAppointmentHandler,
		CancelHandler:                 appointmentHandler.CancelHandler,
		ConfirmHandler:                appointmentHandler.ConfirmHandler,
		CompleteHandler:               appointmentHandler.CompleteHandler,
		NoShowHandler:                 appointmentHandler.NoShowHandler,
		ListMyAppointmentsHandler:     appointmentHandler.ListMyAppointmentsHandler,
		ListDoctorAppointmentsHandler: appointmentHandler.ListDoctorAppointmentsHandler,
		AvailabilityHandler:           appointmentHandler.AvailabilityHandler,
		FeedbackHandler:               appointmentHandler.FeedbackHandler,

		// Doctor endpoints.
		GetDoctorHandler:      doctorHandler.GetDoctorHandler,
		ListDoctorsHandler:    doctorHandler.ListDoctorsHandler,
		RegisterDoctorHandler: doctorHandler.RegisterDoctorHandler,
		UpdateDoctorHandler:   doctorHandler.UpdateDoctorHandler,
		DeleteDoctorHandler:   doctorHandler.DeleteDoctorHandler,
		SetScheduleHandler:    doctorHandler.SetScheduleHandler,
		AddReviewHandler:      doctorHandler.AddReviewHandler,
		RemoveReviewHandler:   doctorHandler.RemoveReviewHandler,

		// Department endpoints.
		GetDepartmentHandler:    departmentHandler.GetDepartmentHandler,
		ListDepartmentsHandler:  departmentHandler.ListDepartmentsHandler,
		CreateDepartmentHandler: departmentHandler.CreateDepartmentHandler,
		UpdateDepartmentHandler: departmentHandler.UpdateDepartmentHandler,
		DeleteDepartmentHandler: departmentHandler.DeleteDepartmentHandler,
		AssignDoctorHandler:     departmentHandler.AssignDoctorHandler,
		UnassignDoctorHandler:   departmentHandler.UnassignDoctorHandler,
		RefreshStatsHandler:     departmentHandler.RefreshStatsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder delivery.
	cron.InitReminderWorker(cron.WorkerDeps{
		Appointments: apptRepo,
		Users:        usrRepo,
		Doctors:      docRepo,
		Mailer:       notifier,
	})

	utils.StartHealthMonitor([]*goredis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetLockClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
