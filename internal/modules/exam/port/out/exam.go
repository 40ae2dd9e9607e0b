package out

import (
	"context"

	"studyplan/internal/modules/exam/domain"
)

// CollectionStore persists the whole exam collection. Load on a missing
// or corrupt slot returns an empty collection, never an error the caller
// must surface.
type CollectionStore interface {
	Load(ctx context.Context) ([]domain.Exam, error)
	Save(ctx context.Context, exams []domain.Exam) error
}
