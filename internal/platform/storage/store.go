package storage

import "context"

// Well-known slot names. A slot holds one JSON-serialized collection or value.
const (
	SlotExams       = "exams"
	SlotTasks       = "tasks"
	SlotTheme       = "theme"
	SlotThemeColors = "theme_colors"
	SlotLastSection = "last_section"
)

// Store is a slot-addressed key-value port. Load fills v from the named
// slot; a missing or corrupt slot leaves v at the caller's default and is
// not an error. Save durably overwrites the slot's prior value.
type Store interface {
	Load(ctx context.Context, slot string, v any) error
	Save(ctx context.Context, slot string, v any) error
	Delete(ctx context.Context, slot string) error
}
