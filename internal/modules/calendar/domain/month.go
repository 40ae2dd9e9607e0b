package domain

import (
	"fmt"
	"strings"
	"time"

	examdomain "studyplan/internal/modules/exam/domain"
)

// WeekStart selects which weekday opens a calendar row.
type WeekStart string

const (
	WeekStartMonday WeekStart = "monday"
	WeekStartSunday WeekStart = "sunday"
)

// Marker is one exam attached to a day cell, carrying just enough for
// click-through to the detail view.
type Marker struct {
	ID   int64
	Code string
	Time string
}

// Day is one populated cell of the month grid.
type Day struct {
	Num     int
	Key     string // canonical YYYY-MM-DD
	Today   bool
	Markers []Marker
}

// Month is the render model for one calendar month: Leading empty cells
// followed by the populated days, seven cells per row.
type Month struct {
	Year    int
	Month   time.Month
	Label   string // e.g. "MARCH_2026"
	Leading int
	Days    []Day
}

// Project derives the month grid for today's month from the exam
// collection. It is a pure function of its inputs: no hidden state, fully
// recomputable.
func Project(today time.Time, exams []examdomain.Exam, weekStart WeekStart) Month {
	year, month, _ := today.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, today.Location()).Day()

	m := Month{
		Year:    year,
		Month:   month,
		Label:   fmt.Sprintf("%s_%d", strings.ToUpper(month.String()), year),
		Leading: leadingBlanks(first.Weekday(), weekStart),
		Days:    make([]Day, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		key := DateKey(year, month, day)
		cell := Day{
			Num:   day,
			Key:   key,
			Today: day == today.Day(),
		}
		for _, e := range examdomain.FilterByDate(exams, key) {
			cell.Markers = append(cell.Markers, Marker{ID: e.ID, Code: e.Code, Time: e.Time})
		}
		m.Days = append(m.Days, cell)
	}
	return m
}

// DateKey formats a calendar date in canonical zero-padded form.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// leadingBlanks is the weekday offset of the month's first day relative
// to the configured week start. Monday-first grids treat Sunday as the
// last weekday, so a month starting on Sunday gets 6 blanks.
func leadingBlanks(first time.Weekday, weekStart WeekStart) int {
	if weekStart == WeekStartSunday {
		return int(first)
	}
	return (int(first) + 6) % 7
}
