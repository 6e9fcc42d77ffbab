package department

import (
	"testing"
	"time"

	departmentRepo "medicore/database/repository/department"
	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"

	"go.uber.org/zap"
)

type fakeDeptRepo struct {
	depts map[string]*models.Department
}

func (r *fakeDeptRepo) GetByID(id string) (*models.Department, error) {
	d, ok := r.depts[id]
	if !ok {
		return nil, departmentRepo.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDeptRepo) GetAll() ([]models.Department, error) { return nil, nil }

func (r *fakeDeptRepo) Create(dept *models.Department) error {
	copied := *dept
	r.depts[dept.ID] = &copied
	return nil
}

func (r *fakeDeptRepo) Update(dept *models.Department) error {
	if _, ok := r.depts[dept.ID]; !ok {
		return departmentRepo.ErrNotFound
	}
	copied := *dept
	r.depts[dept.ID] = &copied
	return nil
}

func (r *fakeDeptRepo) Delete(id string) error { delete(r.depts, id); return nil }

func (r *fakeDeptRepo) AddDoctor(id, doctorID string) error {
	d, ok := r.depts[id]
	if !ok {
		return departmentRepo.ErrNotFound
	}
	if !d.HasDoctor(doctorID) {
		d.DoctorIDs = append(d.DoctorIDs, doctorID)
	}
	return nil
}

func (r *fakeDeptRepo) RemoveDoctor(id, doctorID string) error {
	d, ok := r.depts[id]
	if !ok {
		return departmentRepo.ErrNotFound
	}
	kept := d.DoctorIDs[:0]
	for _, existing := range d.DoctorIDs {
		if existing != doctorID {
			kept = append(kept, existing)
		}
	}
	d.DoctorIDs = kept
	return nil
}

func (r *fakeDeptRepo) SetStats(id string, stats models.DepartmentStats) error {
	d, ok := r.depts[id]
	if !ok {
		return departmentRepo.ErrNotFound
	}
	d.Stats = stats
	return nil
}

type fakeDocRepo struct {
	doctors map[string]*models.Doctor
}

func (r *fakeDocRepo) GetByID(id string) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrNotFound
	}
	return d, nil
}

func (r *fakeDocRepo) GetAll() ([]models.Doctor, error)                  { return nil, nil }
func (r *fakeDocRepo) GetByDepartment(string) ([]models.Doctor, error)   { return nil, nil }
func (r *fakeDocRepo) Create(*models.Doctor) error                       { return nil }
func (r *fakeDocRepo) Update(*models.Doctor) error                       { return nil }
func (r *fakeDocRepo) Delete(string) error                               { return nil }
func (r *fakeDocRepo) SetReviews(string, []models.Review, float64) error { return nil }
func (r *fakeDocRepo) SetSchedule(string, []models.ScheduleEntry) error  { return nil }

// fakeApptQueries serves only the two statistics queries.
type fakeApptQueries struct {
	completed []models.Appointment
}

func (r *fakeApptQueries) GetByID(string) (*models.Appointment, error) { return nil, nil }
func (r *fakeApptQueries) Insert(*models.Appointment) error            { return nil }
func (r *fakeApptQueries) Save(*models.Appointment) error              { return nil }
func (r *fakeApptQueries) FindByDoctorAndDateRange(string, time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (r *fakeApptQueries) FindByPatient(string) ([]models.Appointment, error) { return nil, nil }

func (r *fakeApptQueries) FindCompletedByDoctors(doctorIDs []string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range r.completed {
		for _, id := range doctorIDs {
			if appt.DoctorID == id {
				out = append(out, appt)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeApptQueries) DistinctPatientsByDoctors(doctorIDs []string) ([]string, error) {
	matched, _ := r.FindCompletedByDoctors(doctorIDs)
	seen := make(map[string]bool)
	var out []string
	for _, appt := range matched {
		if !seen[appt.PatientID] {
			seen[appt.PatientID] = true
			out = append(out, appt.PatientID)
		}
	}
	return out, nil
}

func TestRefreshStats(t *testing.T) {
	fb := func(rating int) *models.Feedback { return &models.Feedback{Rating: rating} }
	appts := []models.Appointment{
		{DoctorID: "doc-1", PatientID: "pat-1", Status: models.StatusCompleted, Feedback: fb(5)},
		{DoctorID: "doc-1", PatientID: "pat-2", Status: models.StatusCompleted, Feedback: fb(4)},
		{DoctorID: "doc-2", PatientID: "pat-1", Status: models.StatusCompleted}, // repeat patient, unrated
		{DoctorID: "doc-9", PatientID: "pat-3", Status: models.StatusCompleted, Feedback: fb(1)}, // other department
	}

	deptRepo := &fakeDeptRepo{depts: map[string]*models.Department{
		"cardio": {ID: "cardio", Name: "Cardiology", DoctorIDs: []string{"doc-1", "doc-2"}},
	}}
	svc := &DefaultDepartmentService{
		Repo:         deptRepo,
		DoctorRepo:   &fakeDocRepo{doctors: map[string]*models.Doctor{}},
		Appointments: &fakeApptQueries{completed: appts},
		Logger:       zap.NewNop(),
	}

	stats, err := svc.RefreshStats("cardio")
	if err != nil {
		t.Fatalf("RefreshStats: %v", err)
	}
	if stats.TotalPatients != 2 {
		t.Fatalf("totalPatients = %d, want 2", stats.TotalPatients)
	}
	if stats.SatisfactionRate != 4.5 {
		t.Fatalf("satisfactionRate = %v, want 4.5", stats.SatisfactionRate)
	}

	// Stats are persisted on the department record.
	stored, err := svc.GetByID("cardio")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Stats.TotalPatients != 2 || stored.Stats.SatisfactionRate != 4.5 {
		t.Fatalf("stored stats = %+v", stored.Stats)
	}
}

func TestRefreshStatsEmptyDepartment(t *testing.T) {
	deptRepo := &fakeDeptRepo{depts: map[string]*models.Department{
		"newdept": {ID: "newdept", Name: "Neurology"},
	}}
	svc := &DefaultDepartmentService{
		Repo:         deptRepo,
		DoctorRepo:   &fakeDocRepo{doctors: map[string]*models.Doctor{}},
		Appointments: &fakeApptQueries{},
		Logger:       zap.NewNop(),
	}

	stats, err := svc.RefreshStats("newdept")
	if err != nil {
		t.Fatalf("RefreshStats: %v", err)
	}
	if stats.TotalPatients != 0 || stats.SatisfactionRate != 0 {
		t.Fatalf("stats = %+v, want zeros", stats)
	}
}
