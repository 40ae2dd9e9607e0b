package out

import (
	"context"

	taskout "studyplan/internal/modules/task/port/out"
	"studyplan/internal/platform/storage"
)

// SlotCollectionStore persists the task list into the tasks slot.
type SlotCollectionStore struct {
	store storage.Store
}

func NewSlotCollectionStore(store storage.Store) taskout.CollectionStore {
	return &SlotCollectionStore{store: store}
}

func (s *SlotCollectionStore) Load(ctx context.Context) ([]string, error) {
	tasks := []string{}
	if err := s.store.Load(ctx, storage.SlotTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *SlotCollectionStore) Save(ctx context.Context, tasks []string) error {
	if tasks == nil {
		tasks = []string{}
	}
	return s.store.Save(ctx, storage.SlotTasks, tasks)
}
