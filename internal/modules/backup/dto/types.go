package dto

// Document is the single-file backup format. It round-trips the three
// persisted collections wholesale; import never merges.
type Document struct {
	Exams []ExamRecord `json:"exams"`
	Tasks []string     `json:"tasks"`
	Theme *ThemeColors `json:"theme"`
}

type ExamRecord struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes,omitempty"`
}

type ThemeColors struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Summary reports what an import or export touched.
type Summary struct {
	Path       string
	ExamCount  int
	TaskCount  int
	ThemeSaved bool
}
