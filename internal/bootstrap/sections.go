package bootstrap

import (
	"context"

	"studyplan/internal/platform/storage"
)

// SectionStore remembers which section was viewed last, so the TUI can
// reopen where the user left off. The slot is durable on purpose: the
// memory survives restarts, and tui --fresh skips the restore.
type SectionStore struct {
	store storage.Store
}

func NewSectionStore(store storage.Store) *SectionStore {
	return &SectionStore{store: store}
}

// LoadSection returns the persisted section name, defaulting to the
// dashboard.
func (s *SectionStore) LoadSection(ctx context.Context) string {
	section := "dashboard"
	_ = s.store.Load(ctx, storage.SlotLastSection, &section)
	return section
}

func (s *SectionStore) SaveSection(ctx context.Context, name string) error {
	return s.store.Save(ctx, storage.SlotLastSection, name)
}
