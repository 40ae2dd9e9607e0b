package service

import (
	"context"
	"fmt"

	"studyplan/internal/modules/exam/domain"
	examout "studyplan/internal/modules/exam/port/out"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/id"
)

// Repository owns the in-memory exam collection and mirrors it to the
// injected store after every mutation.
type Repository struct {
	ids    id.Generator
	store  examout.CollectionStore
	exams  []domain.Exam
	loaded bool
}

func NewRepository(ids id.Generator, store examout.CollectionStore) *Repository {
	return &Repository{ids: ids, store: store}
}

func (r *Repository) ensure(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	exams, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load exams: %w", err)
	}
	r.exams = exams
	r.loaded = true
	return nil
}

// Invalidate drops the in-memory collection so the next read goes back
// to the store. Called after a backup import rewrites the slots behind
// the repository's back.
func (r *Repository) Invalidate() {
	r.exams = nil
	r.loaded = false
}

func (r *Repository) persist(ctx context.Context) error {
	if err := r.store.Save(ctx, r.exams); err != nil {
		return fmt.Errorf("persist exams: %w", err)
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, code, date, timeStr, notes string) (domain.Exam, error) {
	if err := r.ensure(ctx); err != nil {
		return domain.Exam{}, err
	}
	exam := domain.Exam{
		ID:    r.ids.Next(),
		Code:  code,
		Date:  date,
		Time:  timeStr,
		Notes: notes,
	}
	r.exams = append(r.exams, exam)
	if err := r.persist(ctx); err != nil {
		return domain.Exam{}, err
	}
	return exam, nil
}

// Update replaces every field but the id. A stale id is a visible error,
// never a silent append.
func (r *Repository) Update(ctx context.Context, examID int64, code, date, timeStr, notes string) (domain.Exam, error) {
	if err := r.ensure(ctx); err != nil {
		return domain.Exam{}, err
	}
	for i, e := range r.exams {
		if e.ID != examID {
			continue
		}
		r.exams[i] = domain.Exam{ID: examID, Code: code, Date: date, Time: timeStr, Notes: notes}
		if err := r.persist(ctx); err != nil {
			return domain.Exam{}, err
		}
		return r.exams[i], nil
	}
	return domain.Exam{}, fmt.Errorf("exam %d: %w", examID, apperrors.ErrNotFound)
}

// Delete removes the exam with the given id. An absent id is a no-op.
func (r *Repository) Delete(ctx context.Context, examID int64) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	for i, e := range r.exams {
		if e.ID != examID {
			continue
		}
		r.exams = append(r.exams[:i], r.exams[i+1:]...)
		return r.persist(ctx)
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, examID int64) (domain.Exam, bool, error) {
	if err := r.ensure(ctx); err != nil {
		return domain.Exam{}, false, err
	}
	exam, ok := domain.FindByID(r.exams, examID)
	return exam, ok, nil
}

func (r *Repository) FilterByDate(ctx context.Context, date string) ([]domain.Exam, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	return domain.FilterByDate(r.exams, date), nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Exam, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Exam, len(r.exams))
	copy(out, r.exams)
	return out, nil
}
