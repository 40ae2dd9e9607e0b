package dto

// ExamInput carries the editable fields of an exam record.
type ExamInput struct {
	Code  string
	Date  string
	Time  string
	Notes string
}

type ExamOutput struct {
	ID    int64
	Code  string
	Date  string
	Time  string
	Notes string
}
