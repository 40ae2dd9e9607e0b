package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "studyplan/internal/platform/errors"
)

// Exam is one scheduled exam. The JSON shape matches the persisted slot
// layout: {id, code, date, time, notes}.
type Exam struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Date  string `json:"date"` // canonical YYYY-MM-DD
	Time  string `json:"time"`
	Notes string `json:"notes,omitempty"`
}

const DateLayout = "2006-01-02"

// ValidateDraft enforces the required-field policy for create and update:
// code and date must be present, and the date must be a real calendar date.
func ValidateDraft(code, date string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: module code is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(date) == "" {
		return fmt.Errorf("%w: exam date is required", apperrors.ErrInvalidInput)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: exam date must be YYYY-MM-DD", apperrors.ErrInvalidInput)
	}
	return nil
}

// FilterByDate returns all exams whose date equals the query date,
// preserving collection order.
func FilterByDate(exams []Exam, date string) []Exam {
	var matched []Exam
	for _, e := range exams {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched
}

// FindByID returns the exam with the given id, if present.
func FindByID(exams []Exam, id int64) (Exam, bool) {
	for _, e := range exams {
		if e.ID == id {
			return e, true
		}
	}
	return Exam{}, false
}
