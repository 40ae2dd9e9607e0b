package in

import (
	"context"

	"studyplan/internal/modules/exam/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.ExamInput) (dto.ExamOutput, error)
	Update(ctx context.Context, id int64, input dto.ExamInput) (dto.ExamOutput, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (dto.ExamOutput, error)
	OnDate(ctx context.Context, date string) ([]dto.ExamOutput, error)
	List(ctx context.Context) ([]dto.ExamOutput, error)
}
