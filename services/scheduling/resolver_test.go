package scheduling

import (
	"testing"
	"time"

	"medicore/models"
)

func testDoctor() *models.Doctor {
	return &models.Doctor{
		ID:          "doc-1",
		Name:        "Ada Okafor",
		IsAvailable: true,
		Schedule: []models.ScheduleEntry{
			{
				Day:             "tuesday",
				StartTime:       "09:00",
				EndTime:         "17:00",
				IsAvailable:     true,
				MaxAppointments: 10,
				Break:           &models.BreakWindow{Start: "12:00", End: "13:00"},
			},
			{
				Day:         "wednesday",
				StartTime:   "09:00",
				EndTime:     "13:00",
				IsAvailable: false,
			},
		},
	}
}

func TestResolveDay(t *testing.T) {
	doc := testDoctor()

	t.Run("ConfiguredDay", func(t *testing.T) {
		// 2026-09-01 is a Tuesday.
		avail, err := ResolveDay(doc, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("ResolveDay: %v", err)
		}
		if !avail.Open {
			t.Fatal("expected day to be open")
		}
		if avail.Start != 540 || avail.End != 1020 {
			t.Fatalf("bounds = %d-%d, want 540-1020", avail.Start, avail.End)
		}
		if avail.Break == nil || avail.Break.Start != 720 || avail.Break.End != 780 {
			t.Fatalf("break = %+v, want 720-780", avail.Break)
		}
		if avail.MaxAppointments != 10 {
			t.Fatalf("maxAppointments = %d", avail.MaxAppointments)
		}
	})

	t.Run("UnavailableDay", func(t *testing.T) {
		avail, err := ResolveDay(doc, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("ResolveDay: %v", err)
		}
		if avail.Open {
			t.Fatal("expected day with IsAvailable=false to be closed")
		}
	})

	t.Run("UnconfiguredDay", func(t *testing.T) {
		// Thursday has no entry at all.
		avail, err := ResolveDay(doc, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("ResolveDay: %v", err)
		}
		if avail.Open {
			t.Fatal("expected unconfigured day to be closed")
		}
	})

	t.Run("MalformedSchedule", func(t *testing.T) {
		bad := testDoctor()
		bad.Schedule[0].EndTime = "25:00"
		if _, err := ResolveDay(bad, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)); err == nil {
			t.Fatal("expected error for malformed end time")
		}
		bad.Schedule[0].EndTime = "08:00"
		if _, err := ResolveDay(bad, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)); err == nil {
			t.Fatal("expected error for end before start")
		}
	})
}

func TestFitsOpenInterval(t *testing.T) {
	avail := models.DayAvailability{
		Open:  true,
		Start: 540,  // 09:00
		End:   1020, // 17:00
		Break: &models.Interval{Start: 720, End: 780}, // 12:00-13:00
	}

	cases := []struct {
		name     string
		startMin int
		endMin   int
		want     bool
	}{
		{"well inside", 600, 630, true},
		{"at opening", 540, 570, true},
		{"ends at close", 990, 1020, true},
		{"before opening", 510, 540, false},
		{"past close", 1000, 1030, false},
		{"overlaps break", 750, 780, false},
		{"straddles break start", 710, 740, false},
		{"ends at break start", 690, 720, true},
		{"starts at break end", 780, 810, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FitsOpenInterval(avail, tc.startMin, tc.endMin); got != tc.want {
				t.Fatalf("FitsOpenInterval(%d, %d) = %v, want %v", tc.startMin, tc.endMin, got, tc.want)
			}
		})
	}

	if FitsOpenInterval(models.DayAvailability{Open: false}, 600, 630) {
		t.Fatal("closed day must not fit any interval")
	}
}
