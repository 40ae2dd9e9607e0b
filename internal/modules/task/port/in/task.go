package in

import (
	"context"

	"studyplan/internal/modules/task/dto"
)

type Usecase interface {
	Append(ctx context.Context, text string) (dto.AppendOutput, error)
	DeleteAt(ctx context.Context, index int) error
	List(ctx context.Context) ([]string, error)
}
