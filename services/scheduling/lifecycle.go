package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	userRepo "medicore/database/repository/user"
	"medicore/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo       appointmentRepo.AppointmentRepository
	DoctorRepo doctorRepo.DoctorRepository
	UserRepo   userRepo.UserRepository
	Locker     DoctorLocker
	Reminders  ReminderScheduler
	Billing    BillingProcessor
	Notifier   Notifier
	Logger     *zap.Logger
}

// Create books a new appointment. The conflict check and the insert run as
// one critical section under the per-doctor lock, so concurrent bookings for
// the same doctor serialize; the unique (doctorId, startTime) index catches
// anything that slips past a lost lock. Reminder and mail side effects run
// after the lock is released.
func (s *DefaultAppointmentService) Create(ctx context.Context, input models.BookingInput) (*models.Appointment, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	doctor, err := s.DoctorRepo.GetByID(input.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: doctor %s", ErrNotFound, input.DoctorID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if !doctor.IsAvailable {
		return nil, fmt.Errorf("%w: doctor %s is not accepting appointments", ErrOutsideWorkingHours, doctor.ID)
	}

	avail, err := ResolveDay(doctor, input.StartTime)
	if err != nil {
		return nil, err
	}

	duration := input.DurationMinutes
	if duration <= 0 {
		duration = int(models.DefaultAppointmentDuration / time.Minute)
	}
	startMin := MinutesOfDay(input.StartTime)
	endMin := startMin + duration
	if endMin > 24*60 || !FitsOpenInterval(avail, startMin, endMin) {
		return nil, ErrOutsideWorkingHours
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		PatientID:       input.PatientID,
		DoctorID:        input.DoctorID,
		StartTime:       input.StartTime,
		DurationMinutes: duration,
		Status:          models.StatusScheduled,
		Type:            input.Type,
		ReasonForVisit:  input.ReasonForVisit,
		Symptoms:        input.Symptoms,
		PatientNotes:    input.PatientNotes,
		Payment: models.Payment{
			Amount:    input.PaymentAmount,
			Status:    "pending",
			Method:    input.PaymentMethod,
			Insurance: input.Insurance,
		},
	}

	dayStart, dayEnd := DayBounds(input.StartTime)

	err = s.Locker.WithDoctorLock(ctx, doctor.ID, func(lockCtx context.Context) error {
		existing, err := s.Repo.FindByDoctorAndDateRange(doctor.ID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}

		// Capacity and conflict are independent gates: a day can be full
		// of non-overlapping slots, and a conflicting slot is rejected
		// even with capacity to spare.
		if avail.MaxAppointments > 0 && CountActive(doctor.ID, existing) >= avail.MaxAppointments {
			return ErrCapacityExceeded
		}
		if HasConflict(doctor.ID, appt.ID, appt.StartTime, appt.EndTime(), existing) {
			return ErrSlotConflict
		}

		if err := s.Repo.Insert(appt); err != nil {
			if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
				return ErrSlotConflict
			}
			return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrLockNotAcquired) {
			return nil, ErrDoctorBusy
		}
		return nil, err
	}

	s.afterCreate(ctx, appt, doctor)
	return appt, nil
}

// afterCreate runs post-booking side effects. Failures here are logged, not
// surfaced: the appointment is already persisted.
func (s *DefaultAppointmentService) afterCreate(ctx context.Context, appt *models.Appointment, doctor *models.Doctor) {
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(ctx, appt); err != nil {
			s.Logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	if s.Notifier == nil || s.UserRepo == nil {
		return
	}
	patient, err := s.UserRepo.GetByID(appt.PatientID)
	if err != nil {
		s.Logger.Warn("failed to load patient for confirmation mail",
			zap.String("patientId", appt.PatientID), zap.Error(err))
		return
	}
	if err := s.Notifier.SendAppointmentConfirmation(ctx, patient, appt, doctor.Name); err != nil {
		s.Logger.Warn("failed to send confirmation mail",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func validateBookingInput(input models.BookingInput) error {
	switch {
	case input.PatientID == "":
		return fmt.Errorf("%w: patientId is required", ErrValidation)
	case input.DoctorID == "":
		return fmt.Errorf("%w: doctorId is required", ErrValidation)
	case input.StartTime.IsZero():
		return fmt.Errorf("%w: startTime is required", ErrValidation)
	case input.ReasonForVisit == "":
		return fmt.Errorf("%w: reasonForVisit is required", ErrValidation)
	case input.PaymentAmount < 0:
		return fmt.Errorf("%w: paymentAmount must not be negative", ErrValidation)
	case input.DurationMinutes < 0:
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrValidation)
	}
	if ins := input.Insurance; ins != nil && (ins.Coverage < 0 || ins.Coverage > 100) {
		return fmt.Errorf("%w: insurance coverage must be between 0 and 100", ErrValidation)
	}
	return nil
}

// ApplyElapsed moves a scheduled or confirmed appointment whose start time
// has passed into in_progress. It is the lazy, read-triggered transition:
// there is no background clock, so callers must apply it to a loaded
// appointment before trusting its status. Calling it again is a no-op.
func ApplyElapsed(appt *models.Appointment, now time.Time) bool {
	if appt.Status != models.StatusScheduled && appt.Status != models.StatusConfirmed {
		return false
	}
	if appt.StartTime.Before(now) {
		appt.Status = models.StatusInProgress
		return true
	}
	return false
}

// GetByID loads an appointment, persisting the elapsed-time transition if it
// fired.
func (s *DefaultAppointmentService) GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := s.load(appointmentID)
	if err != nil {
		return nil, err
	}
	if ApplyElapsed(appt, time.Now()) {
		if err := s.Repo.Save(appt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}
	return appt, nil
}

func (s *DefaultAppointmentService) load(appointmentID string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, appointmentID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return appt, nil
}

// Cancel soft-deletes an appointment on behalf of its owning patient or a
// staff member.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, appointmentID, requesterID string, requesterRole models.Role) (*models.Appointment, error) {
	appt, err := s.load(appointmentID)
	if err != nil {
		return nil, err
	}
	if requesterID != appt.PatientID && !requesterRole.IsStaff() {
		return nil, ErrForbidden
	}
	return s.transition(appt, models.StatusCancelled)
}

// Confirm moves a scheduled appointment to confirmed.
func (s *DefaultAppointmentService) Confirm(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := s.load(appointmentID)
	if err != nil {
		return nil, err
	}
	return s.transition(appt, models.StatusConfirmed)
}

// MarkNoShow records that the patient did not attend.
func (s *DefaultAppointmentService) MarkNoShow(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := s.load(appointmentID)
	if err != nil {
		return nil, err
	}
	return s.transition(appt, models.StatusNoShow)
}

// Complete closes out a visit and hands the insurance-adjusted amount to
// billing. The elapsed-time transition is applied first so a scheduled
// appointment whose start has passed can complete directly.
func (s *DefaultAppointmentService) Complete(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := s.load(appointmentID)
	if err != nil {
		return nil, err
	}
	ApplyElapsed(appt, time.Now())
	if !appt.Status.CanTransitionTo(models.StatusCompleted) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, models.StatusCompleted)
	}
	appt.Status = models.StatusCompleted

	amountDue := ComputeCost(appt)
	if s.Billing != nil {
		txID, err := s.Billing.ChargeCompleted(ctx, appt, amountDue)
		if err != nil {
			s.Logger.Error("billing charge failed; payment left pending",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		} else if txID != "" {
			appt.Payment.TransactionID = txID
			appt.Payment.Status = "paid"
		}
	}

	if err := s.Repo.Save(appt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) transition(appt *models.Appointment, next models.AppointmentStatus) (*models.Appointment, error) {
	ApplyElapsed(appt, time.Now())
	if !appt.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, next)
	}
	appt.Status = next
	if err := s.Repo.Save(appt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return appt, nil
}

// ListForPatient returns a patient's appointments, applying the elapsed-time
// transition to each loaded record.
func (s *DefaultAppointmentService) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	appts, err := s.Repo.FindByPatient(patientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	s.applyElapsedAll(appts)
	return appts, nil
}

// ListForDoctor returns a doctor's appointments in [from, to).
func (s *DefaultAppointmentService) ListForDoctor(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	appts, err := s.Repo.FindByDoctorAndDateRange(doctorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	s.applyElapsedAll(appts)
	return appts, nil
}

func (s *DefaultAppointmentService) applyElapsedAll(appts []models.Appointment) {
	now := time.Now()
	for i := range appts {
		if ApplyElapsed(&appts[i], now) {
			if err := s.Repo.Save(&appts[i]); err != nil {
				s.Logger.Warn("failed to persist elapsed-time transition",
					zap.String("appointmentId", appts[i].ID), zap.Error(err))
			}
		}
	}
}

// Availability resolves a doctor's open interval for a date.
func (s *DefaultAppointmentService) Availability(ctx context.Context, doctorID string, date time.Time) (models.DayAvailability, error) {
	doctor, err := s.DoctorRepo.GetByID(doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return models.DayAvailability{}, fmt.Errorf("%w: doctor %s", ErrNotFound, doctorID)
		}
		return models.DayAvailability{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return ResolveDay(doctor, date)
}

// SubmitFeedback records the patient's 1-5 rating of a completed visit.
func (s *DefaultAppointmentService) SubmitFeedback(ctx context.Context, appointmentID, requesterID string, rating int, comment string) (*models.Appointment, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	appt, err := s.load(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.PatientID != requesterID {
		return nil, ErrForbidden
	}
	if appt.Status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: feedback is only accepted on completed appointments", ErrInvalidTransition)
	}

	appt.Feedback = &models.Feedback{
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Save(appt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return appt, nil
}
