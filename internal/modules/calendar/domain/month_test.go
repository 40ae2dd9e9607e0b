package domain

import (
	"testing"
	"time"

	examdomain "studyplan/internal/modules/exam/domain"
)

func TestLeadingBlanksMondayFirst(t *testing.T) {
	t.Parallel()
	// March 2026 starts on a Sunday, the last column of a Monday-first grid.
	m := Project(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), nil, WeekStartMonday)
	if m.Leading != 6 {
		t.Fatalf("month starting on Sunday must get 6 leading blanks, got %d", m.Leading)
	}

	// June 2026 starts on a Monday.
	m = Project(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), nil, WeekStartMonday)
	if m.Leading != 0 {
		t.Fatalf("month starting on Monday must get 0 leading blanks, got %d", m.Leading)
	}
}

func TestLeadingBlanksSundayFirst(t *testing.T) {
	t.Parallel()
	m := Project(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), nil, WeekStartSunday)
	if m.Leading != 0 {
		t.Fatalf("Sunday-start grid puts a Sunday month opener in column 0, got %d blanks", m.Leading)
	}
	m = Project(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), nil, WeekStartSunday)
	if m.Leading != 1 {
		t.Fatalf("Monday opener in a Sunday-start grid needs 1 blank, got %d", m.Leading)
	}
}

func TestProjectMarksTodayAndAttachesMarkers(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	exams := []examdomain.Exam{
		{ID: 1, Code: "CS101", Date: "2026-03-12", Time: "09:00"},
		{ID: 2, Code: "MA201", Date: "2026-03-12", Time: "14:00"},
		{ID: 3, Code: "PH110", Date: "2026-04-01"},
	}

	m := Project(today, exams, WeekStartMonday)
	if m.Year != 2026 || m.Month != time.March {
		t.Fatalf("unexpected month: %d-%v", m.Year, m.Month)
	}
	if m.Label != "MARCH_2026" {
		t.Fatalf("unexpected label %q", m.Label)
	}
	if len(m.Days) != 31 {
		t.Fatalf("March has 31 days, got %d", len(m.Days))
	}

	for _, day := range m.Days {
		if day.Today != (day.Num == 10) {
			t.Fatalf("day %d today flag wrong", day.Num)
		}
	}

	day12 := m.Days[11]
	if len(day12.Markers) != 2 {
		t.Fatalf("expected 2 markers on the 12th, got %d", len(day12.Markers))
	}
	if day12.Markers[0].Code != "CS101" || day12.Markers[1].Code != "MA201" {
		t.Fatalf("markers must preserve collection order, got %+v", day12.Markers)
	}
	for _, day := range m.Days {
		if day.Num != 12 && len(day.Markers) != 0 {
			t.Fatalf("day %d must carry no markers, got %+v", day.Num, day.Markers)
		}
	}
}

func TestDateKeyZeroPads(t *testing.T) {
	t.Parallel()
	if got := DateKey(2026, time.March, 5); got != "2026-03-05" {
		t.Fatalf("DateKey = %q", got)
	}
	if got := DateKey(2026, time.November, 28); got != "2026-11-28" {
		t.Fatalf("DateKey = %q", got)
	}
}

func TestProjectIsPure(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	exams := []examdomain.Exam{{ID: 1, Code: "CS101", Date: "2026-03-12"}}

	first := Project(today, exams, WeekStartMonday)
	second := Project(today, exams, WeekStartMonday)
	if first.Leading != second.Leading || len(first.Days) != len(second.Days) {
		t.Fatalf("projection must be deterministic")
	}
	for i := range first.Days {
		if first.Days[i].Key != second.Days[i].Key || len(first.Days[i].Markers) != len(second.Days[i].Markers) {
			t.Fatalf("day %d differs between projections", i+1)
		}
	}
}
