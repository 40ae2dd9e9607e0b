package service

import (
	"context"
	"fmt"
	"strings"

	taskout "studyplan/internal/modules/task/port/out"
)

// Repository owns the ordered task list. Task identity is positional;
// deleting shifts later indices down by one. That is safe here because
// every mutation runs to completion on the single UI thread before the
// next event is handled.
type Repository struct {
	store  taskout.CollectionStore
	tasks  []string
	loaded bool
}

func NewRepository(store taskout.CollectionStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) ensure(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	tasks, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	r.tasks = tasks
	r.loaded = true
	return nil
}

// Invalidate drops the in-memory list so the next read goes back to the
// store. Called after a backup import rewrites the slots behind the
// repository's back.
func (r *Repository) Invalidate() {
	r.tasks = nil
	r.loaded = false
}

// Append adds the trimmed text at the end. Blank text is a no-op.
func (r *Repository) Append(ctx context.Context, text string) (string, bool, error) {
	if err := r.ensure(ctx); err != nil {
		return "", false, err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false, nil
	}
	r.tasks = append(r.tasks, trimmed)
	if err := r.store.Save(ctx, r.tasks); err != nil {
		return "", false, fmt.Errorf("persist tasks: %w", err)
	}
	return trimmed, true, nil
}

// DeleteAt removes the task at index. Out-of-range indices are a no-op.
func (r *Repository) DeleteAt(ctx context.Context, index int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	if index < 0 || index >= len(r.tasks) {
		return nil
	}
	r.tasks = append(r.tasks[:index], r.tasks[index+1:]...)
	if err := r.store.Save(ctx, r.tasks); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]string, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	out := make([]string, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}
