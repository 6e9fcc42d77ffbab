package scheduling

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"

	"go.uber.org/zap"
)

// fakeAppointmentRepo is an in-memory stand-in that mirrors the Mongo repo's
// behavior, including the unique (doctorId, startTime) constraint over
// slot-holding statuses.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	byID  map[string]models.Appointment
	saves int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: make(map[string]models.Appointment)}
}

func (r *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &appt, nil
}

func (r *fakeAppointmentRepo) Insert(appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.DoctorID == appt.DoctorID &&
			existing.StartTime.Equal(appt.StartTime) &&
			existing.Status.CountsForConflict() {
			return appointmentRepo.ErrDuplicateSlot
		}
	}
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	r.byID[appt.ID] = *appt
	return nil
}

func (r *fakeAppointmentRepo) Save(appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[appt.ID]; !ok {
		return appointmentRepo.ErrNotFound
	}
	appt.UpdatedAt = time.Now()
	r.byID[appt.ID] = *appt
	r.saves++
	return nil
}

func (r *fakeAppointmentRepo) FindByDoctorAndDateRange(doctorID string, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.byID {
		if appt.DoctorID == doctorID && !appt.StartTime.Before(start) && appt.StartTime.Before(end) {
			out = append(out, appt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeAppointmentRepo) FindByPatient(patientID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.byID {
		if appt.PatientID == patientID {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindCompletedByDoctors(doctorIDs []string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.byID {
		if appt.Status != models.StatusCompleted {
			continue
		}
		for _, id := range doctorIDs {
			if appt.DoctorID == id {
				out = append(out, appt)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) DistinctPatientsByDoctors(doctorIDs []string) ([]string, error) {
	completed, _ := r.FindCompletedByDoctors(doctorIDs)
	seen := make(map[string]bool)
	var out []string
	for _, appt := range completed {
		if !seen[appt.PatientID] {
			seen[appt.PatientID] = true
			out = append(out, appt.PatientID)
		}
	}
	return out, nil
}

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (r *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	doc, ok := r.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrNotFound
	}
	return doc, nil
}

func (r *fakeDoctorRepo) GetAll() ([]models.Doctor, error)                    { return nil, nil }
func (r *fakeDoctorRepo) GetByDepartment(string) ([]models.Doctor, error)     { return nil, nil }
func (r *fakeDoctorRepo) Create(*models.Doctor) error                         { return nil }
func (r *fakeDoctorRepo) Update(*models.Doctor) error                         { return nil }
func (r *fakeDoctorRepo) Delete(string) error                                 { return nil }
func (r *fakeDoctorRepo) SetReviews(string, []models.Review, float64) error   { return nil }
func (r *fakeDoctorRepo) SetSchedule(string, []models.ScheduleEntry) error    { return nil }

type fakeBilling struct {
	charged float64
	calls   int
	fail    bool
}

func (b *fakeBilling) ChargeCompleted(ctx context.Context, appt *models.Appointment, amountDue float64) (string, error) {
	b.calls++
	b.charged = amountDue
	if b.fail {
		return "", errors.New("card declined")
	}
	return "pi_test_123", nil
}

func newTestService(t *testing.T) (*DefaultAppointmentService, *fakeAppointmentRepo, *fakeBilling) {
	t.Helper()
	repo := newFakeAppointmentRepo()
	billing := &fakeBilling{}
	svc := &DefaultAppointmentService{
		Repo:       repo,
		DoctorRepo: &fakeDoctorRepo{doctors: map[string]*models.Doctor{"doc-1": testDoctor()}},
		Locker:     NewMutexDoctorLocker(),
		Billing:    billing,
		Logger:     zap.NewNop(),
	}
	return svc, repo, billing
}

// tuesdayAt returns a time on 2026-09-01, a Tuesday covered by the test
// doctor's schedule, far enough in the future that the elapsed-time
// transition never interferes. Tests needing elapsed behavior build their
// own past times.
func tuesdayAt(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func booking(hour, min, duration int) models.BookingInput {
	return models.BookingInput{
		PatientID:       "pat-1",
		DoctorID:        "doc-1",
		StartTime:       tuesdayAt(hour, min),
		DurationMinutes: duration,
		Type:            models.TypeConsultation,
		ReasonForVisit:  "checkup",
		PaymentAmount:   200,
		PaymentMethod:   models.PaymentMethodCash,
	}
}

func TestCreate(t *testing.T) {
	t.Run("BooksOpenSlot", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		appt, err := svc.Create(context.Background(), booking(9, 0, 30))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if appt.Status != models.StatusScheduled {
			t.Fatalf("status = %s, want scheduled", appt.Status)
		}
		if appt.Payment.Status != "pending" {
			t.Fatalf("payment status = %s, want pending", appt.Payment.Status)
		}
	})

	t.Run("DefaultDuration", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		appt, err := svc.Create(context.Background(), booking(9, 0, 0))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if appt.DurationMinutes != 30 {
			t.Fatalf("duration = %d, want 30", appt.DurationMinutes)
		}
	})

	t.Run("RejectsOverlap", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		if _, err := svc.Create(context.Background(), booking(9, 0, 30)); err != nil {
			t.Fatalf("first booking: %v", err)
		}
		_, err := svc.Create(context.Background(), booking(9, 15, 30))
		if !errors.Is(err, ErrSlotConflict) {
			t.Fatalf("err = %v, want ErrSlotConflict", err)
		}
	})

	t.Run("AcceptsAdjacent", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		if _, err := svc.Create(context.Background(), booking(9, 0, 30)); err != nil {
			t.Fatalf("first booking: %v", err)
		}
		if _, err := svc.Create(context.Background(), booking(9, 30, 30)); err != nil {
			t.Fatalf("adjacent booking: %v", err)
		}
	})

	t.Run("RejectsBreakOverlap", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		// The test doctor's break is 12:00-13:00.
		_, err := svc.Create(context.Background(), booking(12, 30, 30))
		if !errors.Is(err, ErrOutsideWorkingHours) {
			t.Fatalf("err = %v, want ErrOutsideWorkingHours", err)
		}
	})

	t.Run("RejectsOutsideHours", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.Create(context.Background(), booking(7, 0, 30))
		if !errors.Is(err, ErrOutsideWorkingHours) {
			t.Fatalf("err = %v, want ErrOutsideWorkingHours", err)
		}
	})

	t.Run("RejectsClosedDay", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		input := booking(9, 0, 30)
		input.StartTime = time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC) // Wednesday, unavailable
		_, err := svc.Create(context.Background(), input)
		if !errors.Is(err, ErrOutsideWorkingHours) {
			t.Fatalf("err = %v, want ErrOutsideWorkingHours", err)
		}
	})

	t.Run("UnknownDoctor", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		input := booking(9, 0, 30)
		input.DoctorID = "doc-missing"
		_, err := svc.Create(context.Background(), input)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		input := booking(9, 0, 30)
		input.ReasonForVisit = ""
		_, err := svc.Create(context.Background(), input)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("CapacityExceeded", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		capped := testDoctor()
		capped.Schedule[0].MaxAppointments = 2
		svc.DoctorRepo = &fakeDoctorRepo{doctors: map[string]*models.Doctor{"doc-1": capped}}

		if _, err := svc.Create(context.Background(), booking(9, 0, 30)); err != nil {
			t.Fatalf("booking 1: %v", err)
		}
		if _, err := svc.Create(context.Background(), booking(10, 0, 30)); err != nil {
			t.Fatalf("booking 2: %v", err)
		}
		_, err := svc.Create(context.Background(), booking(11, 0, 30))
		if !errors.Is(err, ErrCapacityExceeded) {
			t.Fatalf("err = %v, want ErrCapacityExceeded", err)
		}
	})
}

func TestCancelThenRebook(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	appt, err := svc.Create(ctx, booking(9, 0, 30))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("ForbiddenForStranger", func(t *testing.T) {
		_, err := svc.Cancel(ctx, appt.ID, "pat-2", models.RolePatient)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}
	})

	cancelled, err := svc.Cancel(ctx, appt.ID, "pat-1", models.RolePatient)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", cancelled.Status)
	}

	// The record survives as history but releases its slot.
	if _, err := svc.GetByID(ctx, appt.ID); err != nil {
		t.Fatalf("cancelled appointment should still load: %v", err)
	}
	if _, err := svc.Create(ctx, booking(9, 0, 30)); err != nil {
		t.Fatalf("rebooking a cancelled slot: %v", err)
	}
}

func TestTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("ConfirmScheduled", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		appt, _ := svc.Create(ctx, booking(9, 0, 30))
		confirmed, err := svc.Confirm(ctx, appt.ID)
		if err != nil {
			t.Fatalf("Confirm: %v", err)
		}
		if confirmed.Status != models.StatusConfirmed {
			t.Fatalf("status = %s", confirmed.Status)
		}
	})

	t.Run("CancelAfterCancelFails", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		appt, _ := svc.Create(ctx, booking(9, 0, 30))
		if _, err := svc.Cancel(ctx, appt.ID, "pat-1", models.RolePatient); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		_, err := svc.Cancel(ctx, appt.ID, "pat-1", models.RolePatient)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("err = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("NoShow", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		appt, _ := svc.Create(ctx, booking(9, 0, 30))
		marked, err := svc.MarkNoShow(ctx, appt.ID)
		if err != nil {
			t.Fatalf("MarkNoShow: %v", err)
		}
		if marked.Status != models.StatusNoShow {
			t.Fatalf("status = %s", marked.Status)
		}
	})
}

func TestApplyElapsed(t *testing.T) {
	now := time.Now()
	appt := &models.Appointment{Status: models.StatusScheduled, StartTime: now.Add(-time.Hour)}

	if !ApplyElapsed(appt, now) {
		t.Fatal("expected elapsed transition to fire")
	}
	if appt.Status != models.StatusInProgress {
		t.Fatalf("status = %s, want in_progress", appt.Status)
	}
	// Idempotent: a second application changes nothing.
	if ApplyElapsed(appt, now) {
		t.Fatal("second application must be a no-op")
	}

	confirmed := &models.Appointment{Status: models.StatusConfirmed, StartTime: now.Add(-time.Hour)}
	if !ApplyElapsed(confirmed, now) {
		t.Fatal("confirmed appointment past its start must transition")
	}
	if confirmed.Status != models.StatusInProgress {
		t.Fatalf("status = %s, want in_progress", confirmed.Status)
	}

	future := &models.Appointment{Status: models.StatusScheduled, StartTime: now.Add(time.Hour)}
	if ApplyElapsed(future, now) {
		t.Fatal("future appointment must not transition")
	}

	cancelled := &models.Appointment{Status: models.StatusCancelled, StartTime: now.Add(-time.Hour)}
	if ApplyElapsed(cancelled, now) {
		t.Fatal("cancelled appointment must not transition")
	}
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	// seed inserts an already-started appointment directly, bypassing the
	// working-hours validation that a past start time would fail.
	seed := func(repo *fakeAppointmentRepo, insurance *models.Insurance) *models.Appointment {
		appt := &models.Appointment{
			ID:              "appt-past",
			PatientID:       "pat-1",
			DoctorID:        "doc-1",
			StartTime:       time.Now().Add(-time.Hour),
			DurationMinutes: 30,
			Status:          models.StatusScheduled,
			Payment: models.Payment{
				Amount:    200,
				Status:    "pending",
				Method:    models.PaymentMethodCard,
				Insurance: insurance,
			},
		}
		if err := repo.Insert(appt); err != nil {
			t.Fatalf("seed insert: %v", err)
		}
		return appt
	}

	t.Run("ChargesInsuranceAdjustedAmount", func(t *testing.T) {
		svc, repo, billing := newTestService(t)
		appt := seed(repo, &models.Insurance{Coverage: 50})

		completed, err := svc.Complete(ctx, appt.ID)
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if completed.Status != models.StatusCompleted {
			t.Fatalf("status = %s", completed.Status)
		}
		if billing.charged != 100 {
			t.Fatalf("charged = %v, want 100", billing.charged)
		}
		if completed.Payment.TransactionID != "pi_test_123" || completed.Payment.Status != "paid" {
			t.Fatalf("payment = %+v", completed.Payment)
		}
	})

	t.Run("BillingFailureLeavesPaymentPending", func(t *testing.T) {
		svc, repo, billing := newTestService(t)
		billing.fail = true
		appt := seed(repo, nil)

		completed, err := svc.Complete(ctx, appt.ID)
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if completed.Status != models.StatusCompleted {
			t.Fatalf("status = %s", completed.Status)
		}
		if completed.Payment.Status != "pending" || completed.Payment.TransactionID != "" {
			t.Fatalf("payment = %+v, want pending with no transaction", completed.Payment)
		}
	})

	t.Run("CompletesConfirmedVisit", func(t *testing.T) {
		svc, repo, billing := newTestService(t)
		appt := seed(repo, nil)
		appt.Status = models.StatusConfirmed
		if err := repo.Save(appt); err != nil {
			t.Fatalf("seed save: %v", err)
		}

		completed, err := svc.Complete(ctx, appt.ID)
		if err != nil {
			t.Fatalf("Complete after Confirm: %v", err)
		}
		if completed.Status != models.StatusCompleted {
			t.Fatalf("status = %s", completed.Status)
		}
		if billing.calls != 1 {
			t.Fatalf("billing calls = %d, want 1", billing.calls)
		}
	})

	t.Run("CannotCompleteFutureScheduled", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		appt, _ := svc.Create(ctx, booking(9, 0, 30))
		_, err := svc.Complete(ctx, appt.ID)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("err = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestSubmitFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("OnCompletedVisit", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		appt := &models.Appointment{
			ID:        "appt-done",
			PatientID: "pat-1",
			DoctorID:  "doc-1",
			StartTime: time.Now().Add(-2 * time.Hour),
			Status:    models.StatusCompleted,
		}
		if err := repo.Insert(appt); err != nil {
			t.Fatalf("seed: %v", err)
		}

		rated, err := svc.SubmitFeedback(ctx, appt.ID, "pat-1", 4, "helpful")
		if err != nil {
			t.Fatalf("SubmitFeedback: %v", err)
		}
		if rated.Feedback == nil || rated.Feedback.Rating != 4 {
			t.Fatalf("feedback = %+v", rated.Feedback)
		}

		if _, err := svc.SubmitFeedback(ctx, appt.ID, "pat-2", 4, ""); !errors.Is(err, ErrForbidden) {
			t.Fatalf("stranger feedback err = %v, want ErrForbidden", err)
		}
		if _, err := svc.SubmitFeedback(ctx, appt.ID, "pat-1", 6, ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("out-of-range rating err = %v, want ErrValidation", err)
		}
	})

	t.Run("RejectedBeforeCompletion", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		appt, _ := svc.Create(ctx, booking(9, 0, 30))
		_, err := svc.SubmitFeedback(ctx, appt.ID, "pat-1", 5, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("err = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestConcurrentBookingSameSlot(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, booking(9, 0, 30))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, conflicted := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("succeeded = %d, want exactly 1", succeeded)
	}
	if conflicted != attempts-1 {
		t.Fatalf("conflicted = %d, want %d", conflicted, attempts-1)
	}
}
