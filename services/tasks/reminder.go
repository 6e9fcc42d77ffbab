package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicore/config"
	"medicore/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderLeadTime is how far ahead of the appointment the reminder fires.
const ReminderLeadTime = 24 * time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderQueue enqueues appointment reminders on the asynq queue.
type ReminderQueue struct {
	client *asynq.Client
}

func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleAppointmentReminder enqueues a reminder to fire 24 hours before the
// appointment starts. Appointments starting sooner get the reminder right away.
func (q *ReminderQueue) ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	fireAt := appt.StartTime.Add(-ReminderLeadTime)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		ScheduledFor:  appt.StartTime,
		Message:       fmt.Sprintf("Your appointment is on %s", appt.StartTime.Format("Monday, 2 January 2006 at 15:04")),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("building reminder task: %w", err)
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueueing reminder: %w", err)
	}
	return nil
}

func (q *ReminderQueue) Close() error {
	return q.client.Close()
}
