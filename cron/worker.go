package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"medicore/config"
	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	userRepo "medicore/database/repository/user"
	"medicore/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// ReminderMailer delivers the reminder email once the task fires.
type ReminderMailer interface {
	SendAppointmentReminder(ctx context.Context, patient *models.User, appt *models.Appointment, doctorName string) error
}

// WorkerDeps are the collaborators the reminder worker needs at delivery time.
type WorkerDeps struct {
	Appointments appointmentRepo.AppointmentRepository
	Users        userRepo.UserRepository
	Doctors      doctorRepo.DoctorRepository
	Mailer       ReminderMailer
}

const TypeSendReminder = "reminder:send"

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(deps WorkerDeps) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSendReminder, handleReminderTask(deps))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(deps WorkerDeps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		appt, err := deps.Appointments.GetByID(p.AppointmentID)
		if err != nil {
			// The appointment may have been removed; nothing to remind about.
			log.Printf("[ReminderHandler] ⚠️ Appointment %s not loadable: %v", p.AppointmentID, err)
			return nil
		}
		if !appt.Status.CountsForConflict() {
			// Cancelled or no-show since the reminder was enqueued.
			return nil
		}

		patient, err := deps.Users.GetByID(appt.PatientID)
		if err != nil {
			log.Printf("[ReminderHandler] ⚠️ Patient %s not loadable: %v", appt.PatientID, err)
			return nil
		}

		doctorName := "your doctor"
		if doc, err := deps.Doctors.GetByID(appt.DoctorID); err == nil {
			doctorName = doc.Name
		}

		log.Printf("[ReminderHandler] ⏰ Sending reminder for appointment %s to %s", appt.ID, patient.Email)
		if err := deps.Mailer.SendAppointmentReminder(ctx, patient, appt, doctorName); err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
