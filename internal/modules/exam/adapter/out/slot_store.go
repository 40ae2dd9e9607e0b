package out

import (
	"context"

	"studyplan/internal/modules/exam/domain"
	examout "studyplan/internal/modules/exam/port/out"
	"studyplan/internal/platform/storage"
)

// SlotCollectionStore persists the exam collection into the exams slot.
type SlotCollectionStore struct {
	store storage.Store
}

func NewSlotCollectionStore(store storage.Store) examout.CollectionStore {
	return &SlotCollectionStore{store: store}
}

func (s *SlotCollectionStore) Load(ctx context.Context) ([]domain.Exam, error) {
	exams := []domain.Exam{}
	if err := s.store.Load(ctx, storage.SlotExams, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (s *SlotCollectionStore) Save(ctx context.Context, exams []domain.Exam) error {
	if exams == nil {
		exams = []domain.Exam{}
	}
	return s.store.Save(ctx, storage.SlotExams, exams)
}
